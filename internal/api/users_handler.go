package api

import (
	"net/http"

	"github.com/alecgard/mentorloop/internal/store"
	"github.com/alecgard/mentorloop/internal/user"
)

// usersHandler groups profile and mentor-directory handlers.
type usersHandler struct {
	store *store.Store
}

func newUsersHandler(st *store.Store) *usersHandler {
	return &usersHandler{store: st}
}

// GetMe handles GET /api/v1/me.
func (h *usersHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

// UpdateMe handles PATCH /api/v1/me.
func (h *usersHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}

	var input user.UpdateInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	updated, err := h.store.UpdateUser(r.Context(), u.ID, input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated.Public())
}

// ListMentors handles GET /api/v1/mentors. All three filters are optional and
// combine conjunctively. The response carries the full skill list so the
// directory can offer it as filter options regardless of the active filters.
func (h *usersHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := h.store.Users()
	mentors := user.SearchMentors(
		user.Mentors(users),
		q.Get("q"),
		q.Get("skill"),
		q.Get("experience"),
	)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mentors": publicViews(mentors),
		"skills":  user.AllSkills(users),
	})
}

// ListAvailableMentors handles GET /api/v1/mentors/available. The current
// user is excluded so a mentor browsing the list never sees themselves.
func (h *usersHandler) ListAvailableMentors(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	currentID := ""
	if u != nil {
		currentID = u.ID
	}
	mentors := user.AvailableMentors(h.store.Users(), currentID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mentors": publicViews(mentors),
	})
}

// ListSkills handles GET /api/v1/skills.
func (h *usersHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skills": user.AllSkills(h.store.Users()),
	})
}

// publicViews strips stored credentials from a slice of users.
func publicViews(users []user.User) []user.User {
	out := make([]user.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
