package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/platform"
	"github.com/alecgard/mentorloop/internal/ratelimit"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/alecgard/mentorloop/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// fakePlatform is an in-memory stand-in for the platform API.
type fakePlatform struct {
	users    []user.User
	sessions []session.Session
	messages []message.Message

	createErr error
}

func (f *fakePlatform) FetchUsers(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakePlatform) FetchSessions(_ context.Context) ([]session.Session, error) {
	return f.sessions, nil
}

func (f *fakePlatform) FetchMessages(_ context.Context) ([]message.Message, error) {
	return f.messages, nil
}

func (f *fakePlatform) CreateUser(_ context.Context, u user.User) (*user.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &u, nil
}

func (f *fakePlatform) UpdateUser(_ context.Context, id string, in user.UpdateInput) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			in.Apply(&u)
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakePlatform) CreateSession(_ context.Context, s session.Session) (*session.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &s, nil
}

func (f *fakePlatform) CreateMessage(_ context.Context, m message.Message) (*message.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &m, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func newTestServer(t *testing.T, p *fakePlatform) (http.Handler, *store.Store) {
	t.Helper()
	st := store.New(p)
	st.SetBcryptCost(bcrypt.MinCost)
	st.Initialize(context.Background())
	return NewRouter(RouterDeps{Store: st}), st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func login(t *testing.T, h http.Handler, email, password string) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: email, Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
}

func testUsers(t *testing.T) []user.User {
	t.Helper()
	hash := mustHash(t, "secret")
	return []user.User{
		{ID: "u1", Name: "Sarah Chen", Email: "sarah@example.com", Password: hash, Role: user.RoleMentor, Skills: []string{"Go", "Kubernetes"}, Experience: "8 years", Bio: "Platform engineer"},
		{ID: "u2", Name: "Marcus Lee", Email: "marcus@example.com", Password: hash, Role: user.RoleMentor, Skills: []string{"Product Strategy"}, Experience: "12 years"},
		{ID: "u3", Name: "Priya Nair", Email: "priya@example.com", Password: hash, Role: user.RoleMentee},
		{ID: "u4", Name: "Ada Root", Email: "admin@example.com", Password: hash, Role: user.RoleAdmin},
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{})
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: "sarah@example.com", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password returned %d, want 401", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: "sarah@example.com", Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	var got user.User
	decodeBody(t, rec, &got)
	if got.ID != "u1" {
		t.Errorf("logged in as %q, want u1", got.ID)
	}
	if got.Password != "" {
		t.Error("response leaked the stored credential")
	}
}

func TestLogin_Throttled(t *testing.T) {
	p := &fakePlatform{users: testUsers(t)}
	st := store.New(p)
	st.SetBcryptCost(bcrypt.MinCost)
	st.Initialize(context.Background())
	h := NewRouter(RouterDeps{Store: st, LoginLimiter: ratelimit.New(2, time.Minute)})

	bad := loginRequest{Email: "sarah@example.com", Password: "wrong"}
	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", bad)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d returned %d, want 401", i+1, rec.Code)
		}
	}

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", bad)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("attempt over the limit returned %d, want 429", rec.Code)
	}

	// Other accounts are unaffected.
	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: "priya@example.com", Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Errorf("unrelated account returned %d, want 200", rec.Code)
	}
}

func TestAuthenticatedRoutesRejectAnonymous(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})

	paths := []string{"/api/v1/me", "/api/v1/dashboard", "/api/v1/mentors", "/api/v1/sessions", "/api/v1/conversations"}
	for _, p := range paths {
		rec := doJSON(t, h, http.MethodGet, p, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s returned %d, want 401", p, rec.Code)
		}
	}
}

func TestRegister(t *testing.T) {
	h, st := newTestServer(t, &fakePlatform{})

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", user.RegisterInput{
		Name: "New Mentee", Email: "new@example.com", Password: "pw", Role: user.RoleMentee,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	var got user.User
	decodeBody(t, rec, &got)
	if got.Password != "" {
		t.Error("response leaked the stored credential")
	}

	// Registration logs the new account in.
	cur := st.CurrentUser()
	if cur == nil || cur.Email != "new@example.com" {
		t.Fatalf("expected new account to be the current user, got %+v", cur)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/me", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("me returned %d after register", rec.Code)
	}
}

func TestRegister_ValidationError(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{})

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", user.RegisterInput{
		Email: "no-name@example.com", Password: "pw", Role: user.RoleMentee,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("register returned %d, want 422", rec.Code)
	}
}

func TestRegister_PlatformRejection(t *testing.T) {
	p := &fakePlatform{createErr: fmt.Errorf("status 500: %w", platform.ErrRejected)}
	h, st := newTestServer(t, p)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", user.RegisterInput{
		Name: "X", Email: "x@example.com", Password: "pw", Role: user.RoleMentee,
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("register returned %d, want 502", rec.Code)
	}
	var env errorEnvelope
	decodeBody(t, rec, &env)
	if env.Error.Code != "platform_rejected" {
		t.Errorf("error code = %q, want platform_rejected", env.Error.Code)
	}
	if st.CurrentUser() != nil {
		t.Error("rejected registration must not log anyone in")
	}
}

func TestUpdateMe(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "sarah@example.com", "secret")

	bio := "Updated bio"
	rec := doJSON(t, h, http.MethodPatch, "/api/v1/me", user.UpdateInput{Bio: &bio})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	var got user.User
	decodeBody(t, rec, &got)
	if got.Bio != "Updated bio" {
		t.Errorf("bio = %q, want updated value", got.Bio)
	}
}

func TestListMentors_Filters(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/mentors?skill=Go", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mentors returned %d", rec.Code)
	}
	var resp struct {
		Mentors []user.User `json:"mentors"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Mentors) != 1 || resp.Mentors[0].ID != "u1" {
		t.Errorf("skill filter returned %+v, want just u1", resp.Mentors)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/mentors", nil)
	decodeBody(t, rec, &resp)
	if len(resp.Mentors) != 2 {
		t.Errorf("unfiltered mentors = %d, want 2", len(resp.Mentors))
	}
	for _, m := range resp.Mentors {
		if m.Password != "" {
			t.Error("mentor listing leaked a stored credential")
		}
	}
}

func TestSessionsCreateAndList(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions", session.CreateInput{
		MentorID: "u1",
		Title:    "Roadmap review",
		DateTime: time.Now().Add(48 * time.Hour),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session returned %d: %s", rec.Code, rec.Body.String())
	}
	var created session.Session
	decodeBody(t, rec, &created)
	if created.MenteeID != "u3" {
		t.Errorf("mentee id = %q, want the logged-in user", created.MenteeID)
	}
	if created.Status != session.StatusScheduled {
		t.Errorf("status = %q, want scheduled", created.Status)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/sessions?tab=upcoming", nil)
	var resp struct {
		Sessions []session.Session `json:"sessions"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Sessions) != 1 || resp.Sessions[0].ID != created.ID {
		t.Errorf("upcoming tab = %+v, want the new session", resp.Sessions)
	}
}

func TestCreateSession_MentorCannotRequest(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "sarah@example.com", "secret")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions", session.CreateInput{
		MentorID: "u2",
		Title:    "Not allowed",
		DateTime: time.Now().Add(time.Hour),
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("mentor-initiated session returned %d, want 422", rec.Code)
	}
}

func TestConversationsAndThread(t *testing.T) {
	t1 := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	p := &fakePlatform{
		users: testUsers(t),
		messages: []message.Message{
			{ID: "m1", SenderID: "u3", ReceiverID: "u1", Content: "Hi Sarah", Timestamp: t1, Read: true},
			{ID: "m2", SenderID: "u1", ReceiverID: "u3", Content: "Hi Priya", Timestamp: t1.Add(time.Hour)},
			{ID: "m3", SenderID: "u2", ReceiverID: "u3", Content: "Intro", Timestamp: t1.Add(2 * time.Hour)},
		},
	}
	h, _ := newTestServer(t, p)
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/conversations", nil)
	var convResp struct {
		Conversations []message.Conversation `json:"conversations"`
	}
	decodeBody(t, rec, &convResp)
	if len(convResp.Conversations) != 2 {
		t.Fatalf("got %d conversations, want 2", len(convResp.Conversations))
	}
	// Sorted by most recent message first.
	if convResp.Conversations[0].ParticipantID != "u2" {
		t.Errorf("first conversation is with %q, want u2", convResp.Conversations[0].ParticipantID)
	}
	if convResp.Conversations[1].UnreadCount != 1 {
		t.Errorf("unread count = %d, want 1", convResp.Conversations[1].UnreadCount)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/conversations?q=sarah", nil)
	decodeBody(t, rec, &convResp)
	if len(convResp.Conversations) != 1 || convResp.Conversations[0].ParticipantID != "u1" {
		t.Errorf("name filter = %+v, want just the Sarah conversation", convResp.Conversations)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/conversations/u1/messages", nil)
	var threadResp struct {
		Messages []message.Message `json:"messages"`
	}
	decodeBody(t, rec, &threadResp)
	if len(threadResp.Messages) != 2 {
		t.Fatalf("thread has %d messages, want 2", len(threadResp.Messages))
	}
	if threadResp.Messages[0].ID != "m1" {
		t.Error("thread is not in chronological order")
	}
}

func TestSendMessage(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/messages", message.CreateInput{
		ReceiverID: "u1",
		Content:    "  hello  ",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("send returned %d: %s", rec.Code, rec.Body.String())
	}
	var sent message.Message
	decodeBody(t, rec, &sent)
	if sent.Content != "hello" {
		t.Errorf("content = %q, want trimmed", sent.Content)
	}
	if sent.Read {
		t.Error("new message must start unread")
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/messages", message.CreateInput{ReceiverID: "nobody", Content: "x"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown receiver returned %d, want 404", rec.Code)
	}
}

func TestResources(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/resources", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("resources returned %d", rec.Code)
	}
	var resp struct {
		Resources []struct {
			ID string `json:"id"`
		} `json:"resources"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Resources) == 0 {
		t.Error("expected the built-in catalog to be non-empty")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/resources/featured", nil)
	decodeBody(t, rec, &resp)
	for _, res := range resp.Resources {
		if res.ID == "" {
			t.Error("featured resource missing id")
		}
	}
}

func TestAdminOverview(t *testing.T) {
	h, _ := newTestServer(t, &fakePlatform{users: testUsers(t)})

	login(t, h, "priya@example.com", "secret")
	rec := doJSON(t, h, http.MethodGet, "/api/v1/admin/overview", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin overview returned %d, want 403", rec.Code)
	}

	login(t, h, "admin@example.com", "secret")
	rec = doJSON(t, h, http.MethodGet, "/api/v1/admin/overview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin overview returned %d", rec.Code)
	}
}

func TestNavigate(t *testing.T) {
	h, st := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/navigate", navigateRequest{Page: "messages"})
	if rec.Code != http.StatusOK {
		t.Fatalf("navigate returned %d", rec.Code)
	}
	if st.CurrentPage() != "messages" {
		t.Errorf("current page = %q, want messages", st.CurrentPage())
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/navigate", navigateRequest{})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty page returned %d, want 422", rec.Code)
	}
}

func TestLogout(t *testing.T) {
	h, st := newTestServer(t, &fakePlatform{users: testUsers(t)})
	login(t, h, "priya@example.com", "secret")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/logout", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout returned %d", rec.Code)
	}
	if st.CurrentUser() != nil {
		t.Error("expected no current user after logout")
	}
	if st.CurrentPage() != store.PageLanding {
		t.Errorf("page = %q, want landing after logout", st.CurrentPage())
	}
}
