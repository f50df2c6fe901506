package content

import (
	"errors"
	"io/fs"
	"strings"

	"uniformnavi/internal/models"
)

const Ext = ".md"

// Assembler turns one content file into a models.Post.
type Assembler struct {
	fsys          fs.FS
	renderer      *Renderer
	defaultAuthor string
}

// NewAssembler reads content files from fsys (usually os.DirFS of the
// content directory).
func NewAssembler(fsys fs.FS, renderer *Renderer, defaultAuthor string) *Assembler {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Assembler{fsys: fsys, renderer: renderer, defaultAuthor: defaultAuthor}
}

// LoadByID reads <id>.md and assembles it. A missing or unreadable file is a
// NotFoundError.
func (a *Assembler) LoadByID(id string) (*models.Post, error) {
	if !validID(id) {
		return nil, &NotFoundError{ID: id}
	}
	raw, err := fs.ReadFile(a.fsys, id+Ext)
	if err != nil {
		return nil, &NotFoundError{ID: id, Err: err}
	}
	return a.Assemble(id, raw)
}

// Assemble parses, renders and fills defaults. Missing required fields
// (title, date, category) are left empty rather than failing the record.
func (a *Assembler) Assemble(id string, raw []byte) (*models.Post, error) {
	meta, body, err := ParseFrontmatter(raw)
	if err != nil {
		var mce *MalformedContentError
		if errors.As(err, &mce) {
			mce.ID = id
		}
		return nil, err
	}

	html, err := a.renderer.Render(body)
	if err != nil {
		var re *RenderError
		if errors.As(err, &re) {
			re.ID = id
		}
		return nil, err
	}

	date := meta.String("date")
	post := &models.Post{
		ID:           id,
		Title:        meta.String("title"),
		Date:         date,
		Category:     meta.String("category"),
		Excerpt:      meta.String("excerpt"),
		Content:      html,
		Keywords:     meta.Strings("keywords"),
		Tags:         meta.Strings("tags"),
		Thumbnail:    InferThumbnail(meta.String("thumbnail"), body),
		Author:       meta.String("author"),
		UpdatedAt:    meta.String("updatedAt"),
		RelatedPosts: meta.Strings("relatedPosts"),
	}
	if post.Author == "" {
		post.Author = a.defaultAuthor
	}
	if post.UpdatedAt == "" {
		post.UpdatedAt = date
	}
	return post, nil
}

// MissingRequired lists the required fields a post lacks.
func MissingRequired(p *models.Post) []string {
	var missing []string
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(p.Category) == "" {
		missing = append(missing, "category")
	}
	return missing
}

func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	if strings.ContainsAny(id, `/\`) {
		return false
	}
	return fs.ValidPath(id + Ext)
}
