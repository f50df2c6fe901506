package models

// Post is one assembled article. Records are never mutated after loading.
type Post struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Category     string   `json:"category"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	Keywords     []string `json:"keywords"`
	Tags         []string `json:"tags"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Author       string   `json:"author"`
	UpdatedAt    string   `json:"updatedAt"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
}

// PostFilter combines query criteria with AND. Empty fields are ignored.
type PostFilter struct {
	Category string `json:"category,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f PostFilter) IsEmpty() bool {
	return f.Category == "" && f.Tag == "" && f.Title == "" && f.Date == ""
}

// PostSummary is the list view of a post, without the rendered body.
type PostSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	UpdatedAt string   `json:"updatedAt"`
}

func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		Date:      p.Date,
		Category:  p.Category,
		Excerpt:   p.Excerpt,
		Tags:      p.Tags,
		Thumbnail: p.Thumbnail,
		UpdatedAt: p.UpdatedAt,
	}
}
