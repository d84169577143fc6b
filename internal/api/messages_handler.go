package api

import (
	"net/http"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/go-chi/chi/v5"
)

// messagesHandler groups conversation and messaging handlers.
type messagesHandler struct {
	store *store.Store
}

func newMessagesHandler(st *store.Store) *messagesHandler {
	return &messagesHandler{store: st}
}

// ListConversations handles GET /api/v1/conversations. An optional q
// parameter filters by counterpart name.
func (h *messagesHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}

	convs := message.GroupConversations(h.store.Messages(), u.ID)
	if q := r.URL.Query().Get("q"); q != "" {
		convs = message.FilterConversations(convs, h.store.Users(), q)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"conversations": convs,
	})
}

// GetThread handles GET /api/v1/conversations/{userID}/messages. The thread
// covers both directions between the current user and the counterpart, oldest
// first. An empty thread is a valid response, not an error.
func (h *messagesHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	u := h.store.CurrentUser()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not_authenticated", "log in first")
		return
	}

	otherID := chi.URLParam(r, "userID")
	if otherID == "" {
		writeError(w, http.StatusBadRequest, "invalid_id", "user id is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": message.Thread(h.store.Messages(), u.ID, otherID),
	})
}

// SendMessage handles POST /api/v1/messages.
func (h *messagesHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input message.CreateInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	sent, err := h.store.SendMessage(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sent)
}
