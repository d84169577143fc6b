package api

import (
	"net/http"
	"time"

	"github.com/alecgard/mentorloop/internal/store"
)

// dashboardHandler serves the logged-in user's summary stats.
type dashboardHandler struct {
	store *store.Store
}

func newDashboardHandler(st *store.Store) *dashboardHandler {
	return &dashboardHandler{store: st}
}

// GetStats handles GET /api/v1/dashboard.
func (h *dashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, ok := h.store.DashboardStats(time.Now())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
