package api

import (
	"net/http"
	"strings"

	"github.com/alecgard/mentorloop/internal/ratelimit"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/alecgard/mentorloop/internal/user"
)

// authHandler groups login, registration, and page-state handlers.
type authHandler struct {
	store   *store.Store
	limiter *ratelimit.Limiter
}

func newAuthHandler(st *store.Store, limiter *ratelimit.Limiter) *authHandler {
	return &authHandler{store: st, limiter: limiter}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login. Attempts are throttled per email so
// an account cannot be brute-forced.
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))
	if h.limiter != nil && !h.limiter.Allow(key) {
		writeError(w, http.StatusTooManyRequests, "rate_limited", "too many login attempts, try again later")
		return
	}

	if !h.store.Authenticate(req.Email, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
		return
	}
	if h.limiter != nil {
		h.limiter.Reset(key)
	}

	u := h.store.CurrentUser()
	writeJSON(w, http.StatusOK, u.Public())
}

// Register handles POST /api/v1/auth/register. The new account becomes the
// logged-in user, matching the sign-up flow.
func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input user.RegisterInput
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	u, err := h.store.Register(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, u.Public())
}

// Logout handles POST /api/v1/auth/logout.
func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

type navigateRequest struct {
	Page string `json:"page"`
}

// Navigate handles POST /api/v1/navigate.
func (h *authHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}
	if strings.TrimSpace(req.Page) == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "page is required")
		return
	}

	h.store.Navigate(req.Page)
	writeJSON(w, http.StatusOK, map[string]string{"page": h.store.CurrentPage()})
}
