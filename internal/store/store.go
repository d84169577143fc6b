package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Pages the application can sit on. Navigation is a plain state flip; the
// store does not validate page names beyond non-empty.
const (
	PageLanding   = "landing"
	PageDashboard = "dashboard"
)

// Errors returned by store mutations.
var (
	ErrNotAuthenticated = errors.New("no user is logged in")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrNotAMentor       = errors.New("selected user is not a mentor")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrMenteeOnly       = errors.New("only mentees can request sessions")
)

// defaultSessionDuration is applied when a session request omits a duration.
const defaultSessionDuration = 60 // minutes

// Platform is the data-access API the store mediates every mutation through.
// *platform.Client satisfies it; tests substitute a fake.
type Platform interface {
	FetchUsers(ctx context.Context) ([]user.User, error)
	FetchSessions(ctx context.Context) ([]session.Session, error)
	FetchMessages(ctx context.Context) ([]message.Message, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, id string, in user.UpdateInput) (*user.User, error)
	CreateSession(ctx context.Context, s session.Session) (*session.Session, error)
	CreateMessage(ctx context.Context, m message.Message) (*message.Message, error)
}

// MetricsRecorder is an optional interface for recording authentication
// outcomes.
type MetricsRecorder interface {
	IncAuthSuccess()
	IncAuthFailure()
}

// Store is the single source of truth for the three entity collections, the
// current user, and the current page. All mutations go through the platform
// API and only apply locally once the platform confirms them; a rejected or
// failed call leaves local state untouched.
type Store struct {
	platform   Platform
	bcryptCost int
	metrics    MetricsRecorder

	mu       sync.RWMutex
	users    []user.User
	sessions []session.Session
	messages []message.Message
	current  *user.User
	page     string
	loaded   bool
}

// New creates a store backed by the given platform API.
func New(p Platform) *Store {
	return &Store{
		platform:   p,
		bcryptCost: bcrypt.DefaultCost,
		page:       PageLanding,
	}
}

// SetBcryptCost overrides the bcrypt cost used when hashing credentials.
func (s *Store) SetBcryptCost(cost int) {
	s.bcryptCost = cost
}

// SetMetrics sets the optional metrics recorder.
func (s *Store) SetMetrics(m MetricsRecorder) {
	s.metrics = m
}

// Initialize fetches the three collections concurrently and installs them.
// The degrade policy is all-or-nothing: if any fetch fails, all three
// collections reset to empty rather than keeping a partial view. Loading is
// reported complete either way, so Initialize never blocks startup on a
// broken upstream.
func (s *Store) Initialize(ctx context.Context) {
	var (
		users    []user.User
		sessions []session.Session
		messages []message.Message
		errs     [3]error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		users, errs[0] = s.platform.FetchUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		sessions, errs[1] = s.platform.FetchSessions(ctx)
	}()
	go func() {
		defer wg.Done()
		messages, errs[2] = s.platform.FetchMessages(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			slog.Error("initial data load failed, starting empty", "error", err)
			users, sessions, messages = nil, nil, nil
			break
		}
	}

	s.mu.Lock()
	s.users = users
	s.sessions = sessions
	s.messages = messages
	s.loaded = true
	s.mu.Unlock()

	slog.Info("store initialized",
		"users", len(users),
		"sessions", len(sessions),
		"messages", len(messages),
	)
}

// Authenticate checks the credentials against the local user collection and,
// on success, sets the current user and moves to the dashboard. A mismatch
// returns false with no state change; it is not an error.
func (s *Store) Authenticate(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		u := &s.users[i]
		if u.Email != email || !verifyPassword(u.Password, password) {
			continue
		}
		cp := *u
		s.current = &cp
		s.page = PageDashboard
		if s.metrics != nil {
			s.metrics.IncAuthSuccess()
		}
		return true
	}

	if s.metrics != nil {
		s.metrics.IncAuthFailure()
	}
	return false
}

// verifyPassword compares the submitted password against the stored
// credential. Accounts created by this application store a bcrypt hash;
// records predating the hashing change carry plaintext and fall back to
// direct equality.
func verifyPassword(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored != "" && stored == password
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Register creates a new account: fresh id, hashed password, zeroed stats.
// On a confirmed creation the returned record is appended locally and
// becomes the current user.
func (s *Store) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := user.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hash),
		Role:         in.Role,
		Avatar:       in.Avatar,
		Bio:          in.Bio,
		Skills:       in.Skills,
		Experience:   in.Experience,
		Goals:        in.Goals,
		Availability: in.Availability,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.platform.CreateUser(ctx, u)
	if err != nil {
		slog.Error("registration failed", "email", in.Email, "error", err)
		return nil, fmt.Errorf("registering user: %w", err)
	}

	s.mu.Lock()
	s.users = append(s.users, *created)
	cp := *created
	s.current = &cp
	s.page = PageDashboard
	s.mu.Unlock()

	return created, nil
}

// Logout clears the current user and returns to the landing page.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.page = PageLanding
	s.mu.Unlock()
}

// UpdateUser submits a partial profile update. A non-nil Password is hashed
// before it leaves the process. On confirmation the returned record replaces
// the local one, and the current user when it is the same account.
func (s *Store) UpdateUser(ctx context.Context, id string, in user.UpdateInput) (*user.User, error) {
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		h := string(hash)
		in.Password = &h
	}

	updated, err := s.platform.UpdateUser(ctx, id, in)
	if err != nil {
		slog.Error("user update failed", "user_id", id, "error", err)
		return nil, fmt.Errorf("updating user: %w", err)
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = *updated
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		cp := *updated
		s.current = &cp
	}
	s.mu.Unlock()

	return updated, nil
}

// CreateSession schedules a session between the current user (the mentee)
// and the requested mentor. The mentor must resolve to a known user holding
// the mentor role.
func (s *Store) CreateSession(ctx context.Context, in session.CreateInput) (*session.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	current := s.current
	mentor := user.ByID(s.users, in.MentorID)
	s.mu.RUnlock()

	if current == nil {
		return nil, ErrNotAuthenticated
	}
	if current.Role != user.RoleMentee {
		return nil, ErrMenteeOnly
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}
	if mentor.Role != user.RoleMentor {
		return nil, ErrNotAMentor
	}

	duration := in.Duration
	if duration == 0 {
		duration = defaultSessionDuration
	}

	sess := session.Session{
		ID:          uuid.NewString(),
		MentorID:    in.MentorID,
		MenteeID:    current.ID,
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		Duration:    duration,
		Status:      session.StatusScheduled,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.platform.CreateSession(ctx, sess)
	if err != nil {
		slog.Error("session creation failed", "mentor_id", in.MentorID, "error", err)
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.mu.Lock()
	s.sessions = append(s.sessions, *created)
	s.mu.Unlock()

	return created, nil
}

// SendMessage sends a message from the current user to a known receiver.
func (s *Store) SendMessage(ctx context.Context, in message.CreateInput) (*message.Message, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	current := s.current
	receiver := user.ByID(s.users, in.ReceiverID)
	s.mu.RUnlock()

	if current == nil {
		return nil, ErrNotAuthenticated
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	msg := message.Message{
		ID:         uuid.NewString(),
		SenderID:   current.ID,
		ReceiverID: in.ReceiverID,
		Content:    strings.TrimSpace(in.Content),
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}

	created, err := s.platform.CreateMessage(ctx, msg)
	if err != nil {
		slog.Error("message send failed", "receiver_id", in.ReceiverID, "error", err)
		return nil, fmt.Errorf("sending message: %w", err)
	}

	s.mu.Lock()
	s.messages = append(s.messages, *created)
	s.mu.Unlock()

	return created, nil
}

// Navigate flips the current page.
func (s *Store) Navigate(page string) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// Users returns a copy of the user collection.
func (s *Store) Users() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out
}

// Sessions returns a copy of the session collection.
func (s *Store) Sessions() []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]session.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Messages returns a copy of the message collection.
func (s *Store) Messages() []message.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]message.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *Store) CurrentUser() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// CurrentPage returns the page the application is on.
func (s *Store) CurrentPage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Loaded reports whether the initial fetch has completed (successfully or
// degraded).
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Counts returns the sizes of the three collections, for the metrics
// collector.
func (s *Store) Counts() (users, sessions, messages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.sessions), len(s.messages)
}
