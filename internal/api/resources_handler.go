package api

import (
	"net/http"

	"github.com/alecgard/mentorloop/internal/resource"
)

// resourcesHandler serves the built-in learning resource catalog.
type resourcesHandler struct {
	catalog []resource.Resource
}

func newResourcesHandler() *resourcesHandler {
	return &resourcesHandler{catalog: resource.Catalog()}
}

// ListResources handles GET /api/v1/resources. Filters combine conjunctively;
// empty filters match everything.
func (h *resourcesHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resources": resource.Search(h.catalog, q.Get("q"), q.Get("category"), q.Get("type")),
	})
}

// ListFeatured handles GET /api/v1/resources/featured.
func (h *resourcesHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resources": resource.Featured(h.catalog),
	})
}

// ListCategories handles GET /api/v1/resources/categories.
func (h *resourcesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": resource.Categories(h.catalog),
	})
}
