package user

import (
	"errors"
	"strings"
	"time"
)

// Roles a user account can hold. A user has exactly one role, fixed at
// registration.
const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
	RoleAdmin  = "admin"
)

// Validation errors for registration input.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrRoleInvalid      = errors.New("role must be one of: mentor, mentee")
)

// User represents a platform member. The Password field carries the stored
// credential as returned by the platform API: a bcrypt hash for accounts
// created by this application, or plaintext on legacy records. It must never
// be written to an HTTP response; use Public() before serializing.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"password,omitempty"`
	Role          string    `json:"role"`
	Avatar        string    `json:"avatar,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Skills        []string  `json:"skills,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	Goals         []string  `json:"goals,omitempty"`
	Availability  []string  `json:"availability,omitempty"`
	Rating        float64   `json:"rating"`
	TotalSessions int       `json:"total_sessions"`
	CreatedAt     time.Time `json:"created_at"`
}

// Public returns a copy of the user with the stored credential blanked out.
func (u User) Public() User {
	u.Password = ""
	return u
}

// RegisterInput holds the fields required to create a new account.
type RegisterInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	Avatar       string   `json:"avatar"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Goals        []string `json:"goals"`
	Availability []string `json:"availability"`
}

// Validate checks the registration input. Admin accounts are provisioned
// out of band and cannot be self-registered.
func (in RegisterInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrEmailRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	if in.Role != RoleMentor && in.Role != RoleMentee {
		return ErrRoleInvalid
	}
	return nil
}

// UpdateInput holds optional fields for a partial profile update. Nil fields
// are left untouched.
type UpdateInput struct {
	Name         *string   `json:"name,omitempty"`
	Password     *string   `json:"password,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Goals        *[]string `json:"goals,omitempty"`
	Availability *[]string `json:"availability,omitempty"`
}

// Apply merges the non-nil fields of in into u.
func (in UpdateInput) Apply(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		u.Password = *in.Password
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Skills != nil {
		u.Skills = *in.Skills
	}
	if in.Experience != nil {
		u.Experience = *in.Experience
	}
	if in.Goals != nil {
		u.Goals = *in.Goals
	}
	if in.Availability != nil {
		u.Availability = *in.Availability
	}
}
