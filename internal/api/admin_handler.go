package api

import (
	"net/http"

	"github.com/alecgard/mentorloop/internal/store"
)

// adminHandler serves the admin overview.
type adminHandler struct {
	store *store.Store
}

func newAdminHandler(st *store.Store) *adminHandler {
	return &adminHandler{store: st}
}

// GetOverview handles GET /api/v1/admin/overview.
func (h *adminHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AdminOverview())
}
