package user

import (
	"sort"
	"strings"
)

// Mentors returns the subset of users holding the mentor role, in input order.
func Mentors(users []User) []User {
	out := []User{}
	for _, u := range users {
		if u.Role == RoleMentor {
			out = append(out, u)
		}
	}
	return out
}

// SearchMentors filters mentors by a free-text query, an exact skill, and an
// exact experience tier. All present filters must match (AND); an absent
// filter matches everything, so calling with three empty strings returns the
// input unchanged.
//
// The query is a case-insensitive substring match against the mentor's name,
// bio, or any of their skills.
func SearchMentors(mentors []User, query, skill, experience string) []User {
	out := []User{}
	q := strings.ToLower(query)
	for _, m := range mentors {
		if q != "" && !matchesQuery(m, q) {
			continue
		}
		if skill != "" && !hasSkill(m, skill) {
			continue
		}
		if experience != "" && m.Experience != experience {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesQuery(u User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(u.Bio), q) {
		return true
	}
	for _, s := range u.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func hasSkill(u User, skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// AllSkills returns every distinct skill appearing across the given users,
// sorted alphabetically. Used to populate the directory's skill filter.
func AllSkills(users []User) []string {
	seen := map[string]bool{}
	for _, u := range users {
		for _, s := range u.Skills {
			seen[s] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AvailableMentors returns all mentors except the current user, for the
// session booking form.
func AvailableMentors(users []User, currentUserID string) []User {
	out := []User{}
	for _, u := range users {
		if u.Role == RoleMentor && u.ID != currentUserID {
			out = append(out, u)
		}
	}
	return out
}

// ByID looks up a user by id. Returns nil when no user matches.
func ByID(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
