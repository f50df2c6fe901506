package services

import (
	"context"
	"sort"
	"strings"

	"uniformnavi/internal/content"
	"uniformnavi/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var categoryNames = map[string]string{
	"workwear": "作業服",
	"cooling":  "空調服",
	"security": "警備服",
	"news":     "ニュース",
}

// CategoryDisplayName returns the Japanese label of a known category and a
// title-cased form of the slug otherwise ("safety-shoes" -> "Safety Shoes").
func CategoryDisplayName(category string) string {
	slug := content.NormalizeCategory(category)
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(slug, "-", " "))
}

// TaxonomyService derives categories and tags from the post collection.
type TaxonomyService struct{ posts *PostService }

func NewTaxonomyService(posts *PostService) *TaxonomyService {
	return &TaxonomyService{posts: posts}
}

// Categories counts posts per normalised category, most used first.
func (s *TaxonomyService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	return CountCategories(posts), nil
}

// Tags counts posts per tag, case-insensitively. The first spelling seen wins.
func (s *TaxonomyService) Tags(ctx context.Context) ([]models.TagCount, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	return CountTags(posts), nil
}

func CountCategories(posts []*models.Post) []models.CategoryCount {
	idx := map[string]int{}
	var out []models.CategoryCount
	for _, p := range posts {
		slug := content.NormalizeCategory(p.Category)
		if slug == "" {
			continue
		}
		if i, ok := idx[slug]; ok {
			out[i].Count++
			continue
		}
		idx[slug] = len(out)
		out = append(out, models.CategoryCount{Slug: slug, Name: CategoryDisplayName(slug), Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Slug < out[j].Slug
	})
	if out == nil {
		out = []models.CategoryCount{}
	}
	return out
}

func CountTags(posts []*models.Post) []models.TagCount {
	idx := map[string]int{}
	var out []models.TagCount
	for _, p := range posts {
		counted := map[string]bool{}
		for _, t := range p.Tags {
			key := strings.ToLower(strings.TrimSpace(t))
			if key == "" || counted[key] {
				continue
			}
			counted[key] = true
			if i, ok := idx[key]; ok {
				out[i].Count++
				continue
			}
			idx[key] = len(out)
			out = append(out, models.TagCount{Name: t, Count: 1})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if out == nil {
		out = []models.TagCount{}
	}
	return out
}
