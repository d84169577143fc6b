package resource

import (
	"sort"
	"strings"
)

// Search filters resources by a free-text term, an exact category, and an
// exact type. All present filters must match; absent filters match
// everything. The term is a case-insensitive substring match against the
// title, description, or any tag.
func Search(resources []Resource, term, category, resourceType string) []Resource {
	out := []Resource{}
	t := strings.ToLower(term)
	for _, r := range resources {
		if t != "" && !matchesTerm(r, t) {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		if resourceType != "" && r.Type != resourceType {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesTerm(r Resource, t string) bool {
	if strings.Contains(strings.ToLower(r.Title), t) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), t) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), t) {
			return true
		}
	}
	return false
}

// Featured returns the resources flagged for the library's featured row.
func Featured(resources []Resource) []Resource {
	out := []Resource{}
	for _, r := range resources {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns every distinct category, sorted alphabetically.
func Categories(resources []Resource) []string {
	seen := map[string]bool{}
	for _, r := range resources {
		seen[r.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
