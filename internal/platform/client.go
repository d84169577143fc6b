package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/user"
)

// ErrRejected signals that the platform API answered with a non-success
// status. Callers treat it the same as a transport failure: the mutation did
// not happen.
var ErrRejected = errors.New("platform rejected the request")

// MetricsRecorder is an optional interface for recording platform call
// metrics.
type MetricsRecorder interface {
	IncPlatformRequest(op, outcome string)
	ObservePlatformDuration(op string, seconds float64)
}

// Client talks to the mentorship platform's data API over JSON/HTTP. It is
// the only component that performs network I/O; everything downstream works
// on the records it returns.
type Client struct {
	baseURL string
	http    *http.Client
	metrics MetricsRecorder
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetMetrics sets the optional metrics recorder.
func (c *Client) SetMetrics(m MetricsRecorder) {
	c.metrics = m
}

// FetchUsers retrieves the full user collection.
func (c *Client) FetchUsers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.do(ctx, "fetch_users", http.MethodGet, "/users", nil, &out, http.StatusOK); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return out, nil
}

// FetchSessions retrieves the full session collection.
func (c *Client) FetchSessions(ctx context.Context) ([]session.Session, error) {
	var out []session.Session
	if err := c.do(ctx, "fetch_sessions", http.MethodGet, "/sessions", nil, &out, http.StatusOK); err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	return out, nil
}

// FetchMessages retrieves the full message collection.
func (c *Client) FetchMessages(ctx context.Context) ([]message.Message, error) {
	var out []message.Message
	if err := c.do(ctx, "fetch_messages", http.MethodGet, "/messages", nil, &out, http.StatusOK); err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	return out, nil
}

// CreateUser submits a fully-formed user record. Success is a 201 with the
// stored record echoed back.
func (c *Client) CreateUser(ctx context.Context, u user.User) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, "create_user", http.MethodPost, "/users", u, &out, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &out, nil
}

// UpdateUser submits a partial update and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id string, in user.UpdateInput) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, "update_user", http.MethodPatch, "/users/"+id, in, &out, http.StatusOK); err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}
	return &out, nil
}

// CreateSession submits a fully-formed session record.
func (c *Client) CreateSession(ctx context.Context, s session.Session) (*session.Session, error) {
	var out session.Session
	if err := c.do(ctx, "create_session", http.MethodPost, "/sessions", s, &out, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &out, nil
}

// CreateMessage submits a fully-formed message record.
func (c *Client) CreateMessage(ctx context.Context, m message.Message) (*message.Message, error) {
	var out message.Message
	if err := c.do(ctx, "create_message", http.MethodPost, "/messages", m, &out, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	return &out, nil
}

// do executes one API call. Any status other than wantStatus is reported as
// ErrRejected wrapped with the status code, so callers can distinguish "the
// API said no" from "the API returned nothing" without parsing bodies.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any, wantStatus int) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.ObservePlatformDuration(op, time.Since(start).Seconds())
	}
	if err != nil {
		c.recordOutcome(op, ClassifyError(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.recordOutcome(op, "rejected")
		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrRejected)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.recordOutcome(op, "decode_error")
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	c.recordOutcome(op, "ok")
	return nil
}

func (c *Client) recordOutcome(op, outcome string) {
	if c.metrics != nil {
		c.metrics.IncPlatformRequest(op, outcome)
	}
}

// ClassifyError categorizes a transport error for metrics labels.
func ClassifyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return "connection_refused"
		}
		return "network"
	}
	return "other"
}
