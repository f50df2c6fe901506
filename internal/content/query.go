package content

import (
	"regexp"
	"sort"
	"strings"

	"uniformnavi/internal/models"
)

// RE2 \s is ASCII only; \p{Zs} adds ideographic space and NBSP.
var whitespaceRe = regexp.MustCompile(`[\s\p{Zs}]+`)

// NormalizeCategory lower-cases s and collapses whitespace runs into "-",
// so "Cooling  Wear" and "cooling-wear" compare equal.
func NormalizeCategory(s string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// SortByDateDesc returns a copy ordered newest first. Posts with equal dates
// keep their input order. Dates are ISO 8601 strings and compare lexically.
func SortByDateDesc(posts []*models.Post) []*models.Post {
	out := make([]*models.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func FilterByCategory(posts []*models.Post, category string) []*models.Post {
	want := NormalizeCategory(category)
	return filter(posts, func(p *models.Post) bool {
		return NormalizeCategory(p.Category) == want
	})
}

func FilterByTag(posts []*models.Post, tag string) []*models.Post {
	want := strings.ToLower(strings.TrimSpace(tag))
	return filter(posts, func(p *models.Post) bool {
		for _, t := range p.Tags {
			if strings.ToLower(t) == want {
				return true
			}
		}
		return false
	})
}

func FilterByTitle(posts []*models.Post, substr string) []*models.Post {
	want := strings.ToLower(substr)
	return filter(posts, func(p *models.Post) bool {
		return strings.Contains(strings.ToLower(p.Title), want)
	})
}

// FilterByDate keeps posts published on day (YYYY-MM-DD).
func FilterByDate(posts []*models.Post, day string) []*models.Post {
	day = strings.TrimSpace(day)
	return filter(posts, func(p *models.Post) bool {
		return len(p.Date) >= len(day) && p.Date[:len(day)] == day
	})
}

// Query sorts the collection and applies every non-empty criterion of f.
func Query(posts []*models.Post, f models.PostFilter) []*models.Post {
	out := SortByDateDesc(posts)
	if f.IsEmpty() {
		return out
	}
	if f.Category != "" {
		out = FilterByCategory(out, f.Category)
	}
	if f.Tag != "" {
		out = FilterByTag(out, f.Tag)
	}
	if f.Title != "" {
		out = FilterByTitle(out, f.Title)
	}
	if f.Date != "" {
		out = FilterByDate(out, f.Date)
	}
	return out
}

// FindByID returns the post with id, if present.
func FindByID(posts []*models.Post, id string) (*models.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func filter(posts []*models.Post, keep func(*models.Post) bool) []*models.Post {
	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
