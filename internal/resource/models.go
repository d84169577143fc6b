package resource

// Resource types in the learning library.
const (
	TypeGuide    = "guide"
	TypeTemplate = "template"
	TypeVideo    = "video"
	TypeArticle  = "article"
)

// Resource is an entry in the learning library. The catalog is curated and
// ships with the application; resources are not user-editable.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Rating      float64  `json:"rating"`
	ReadTime    int      `json:"read_time"` // minutes
	Tags        []string `json:"tags"`
	DownloadURL string   `json:"download_url,omitempty"`
	ViewURL     string   `json:"view_url,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}
