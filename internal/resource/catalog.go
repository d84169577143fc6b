package resource

// builtin is the curated library shipped with the application.
var builtin = []Resource{
	{
		ID:          "1",
		Title:       "The Complete Guide to Effective Mentoring",
		Type:        TypeGuide,
		Category:    "Mentoring Best Practices",
		Description: "A comprehensive guide covering everything from setting expectations to measuring success in mentoring relationships.",
		Author:      "Dr. Sarah Mitchell",
		Rating:      4.8,
		ReadTime:    15,
		Tags:        []string{"mentoring", "best-practices", "relationships"},
		DownloadURL: "#",
		Featured:    true,
	},
	{
		ID:          "2",
		Title:       "Goal Setting Template for Mentees",
		Type:        TypeTemplate,
		Category:    "Templates",
		Description: "A structured template to help mentees define SMART goals and track progress throughout their mentoring journey.",
		Author:      "MentorLoop Team",
		Rating:      4.6,
		ReadTime:    5,
		Tags:        []string{"goals", "template", "planning"},
		DownloadURL: "#",
	},
	{
		ID:          "3",
		Title:       "Building Effective Communication Skills",
		Type:        TypeVideo,
		Category:    "Professional Development",
		Description: "Learn key communication strategies that will help you in both professional and mentoring relationships.",
		Author:      "Prof. Michael Chen",
		Rating:      4.9,
		ReadTime:    22,
		Tags:        []string{"communication", "skills", "professional-development"},
		ViewURL:     "#",
		Featured:    true,
	},
	{
		ID:          "4",
		Title:       "First Session Checklist",
		Type:        TypeTemplate,
		Category:    "Templates",
		Description: "Essential items to cover in your first mentoring session to set a strong foundation.",
		Author:      "Lisa Rodriguez",
		Rating:      4.7,
		ReadTime:    3,
		Tags:        []string{"first-session", "checklist", "preparation"},
		DownloadURL: "#",
	},
	{
		ID:          "5",
		Title:       "Overcoming Career Transitions",
		Type:        TypeArticle,
		Category:    "Career Development",
		Description: "Strategies and insights for successfully navigating career changes with the help of mentorship.",
		Author:      "James Thompson",
		Rating:      4.5,
		ReadTime:    8,
		Tags:        []string{"career-change", "transition", "strategy"},
		ViewURL:     "#",
	},
	{
		ID:          "6",
		Title:       "Building Your Personal Brand",
		Type:        TypeVideo,
		Category:    "Professional Development",
		Description: "Master the art of personal branding to advance your career and attract the right opportunities.",
		Author:      "Angela Park",
		Rating:      4.4,
		ReadTime:    18,
		Tags:        []string{"personal-brand", "career", "visibility"},
		ViewURL:     "#",
	},
}

// Catalog returns a copy of the built-in resource library.
func Catalog() []Resource {
	out := make([]Resource, len(builtin))
	copy(out, builtin)
	return out
}
