package api

import (
	"net/http"
	"time"

	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/store"
)

// sessionsHandler groups session-list and session-request handlers.
type sessionsHandler struct {
	store *store.Store
}

func newSessionsHandler(st *store.Store) *sessionsHandler {
	return &sessionsHandler{store: st}
}

// ListSessions handles GET /api/v1/sessions. The tab query parameter selects
// upcoming, completed, or all; anything else falls back to all.
func (h *sessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}

	mine := session.ForUser(h.store.Sessions(), u.ID)
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = session.TabAll
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tab":      tab,
		"sessions": session.FilterByTab(mine, tab, time.Now()),
	})
}

// CreateSession handles POST /api/v1/sessions. Only mentees can request
// sessions; the mentee side is always the logged-in user.
func (h *sessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input session.CreateInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	created, err := h.store.CreateSession(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
