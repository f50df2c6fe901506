package generator

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"uniformnavi/internal/content"
	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"
	"uniformnavi/internal/services"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Generated subtrees are removed before every build; anything else in the
// output directory (static assets, robots.txt) is left alone.
var generatedDirs = []string{"posts", "category", "tag"}

type Site struct {
	Name string
	URL  string
}

// Generator renders the post collection into a static site tree.
type Generator struct {
	OutDir string
	Site   Site
	Now    func() time.Time

	pages map[string]*template.Template
}

func New(outDir string, site Site) (*Generator, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{"index", "post", "list"} {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Generator{
		OutDir: outDir,
		Site:   Site{Name: site.Name, URL: strings.TrimRight(site.URL, "/")},
		Now:    time.Now,
		pages:  pages,
	}, nil
}

type tagLink struct {
	Name string
	Href string
}

type pageData struct {
	Site Site
	Path string

	Heading    string
	Posts      []*models.Post
	Categories []models.CategoryCount

	Post         *models.Post
	Body         template.HTML
	CategorySlug string
	CategoryName string
	Tags         []tagLink
	Related      []*models.Post
}

// Build writes index, post, category and tag pages plus sitemap.xml.
// posts must already be sorted newest first.
func (g *Generator) Build(ctx context.Context, posts []*models.Post) error {
	log := logger.WithCtx(ctx)
	start := time.Now()

	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, d := range generatedDirs {
		if err := os.RemoveAll(filepath.Join(g.OutDir, d)); err != nil {
			return fmt.Errorf("clean %s: %w", d, err)
		}
	}

	categories := services.CountCategories(posts)
	if err := g.render("index", "index.html", pageData{
		Site:       g.Site,
		Path:       "/",
		Posts:      posts,
		Categories: categories,
	}); err != nil {
		return err
	}

	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.render("post", filepath.Join("posts", p.ID, "index.html"), g.postPage(posts, p)); err != nil {
			return err
		}
	}

	for _, c := range categories {
		slug := pathSegment(c.Slug)
		if err := g.render("list", filepath.Join("category", slug, "index.html"), pageData{
			Site:    g.Site,
			Path:    "/category/" + url.PathEscape(slug) + "/",
			Heading: c.Name,
			Posts:   content.FilterByCategory(posts, c.Slug),
		}); err != nil {
			return err
		}
	}

	tags := services.CountTags(posts)
	for _, t := range tags {
		slug := tagSlug(t.Name)
		if err := g.render("list", filepath.Join("tag", slug, "index.html"), pageData{
			Site:    g.Site,
			Path:    tagHref(t.Name),
			Heading: "#" + t.Name,
			Posts:   content.FilterByTag(posts, t.Name),
		}); err != nil {
			return err
		}
	}

	if err := g.writeSitemap(posts); err != nil {
		return err
	}

	log.Info("site built",
		zap.String("out", g.OutDir),
		zap.Int("posts", len(posts)),
		zap.Int("categories", len(categories)),
		zap.Int("tags", len(tags)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func (g *Generator) postPage(posts []*models.Post, p *models.Post) pageData {
	tags := make([]tagLink, 0, len(p.Tags))
	for _, t := range p.Tags {
		if strings.TrimSpace(t) == "" {
			continue
		}
		tags = append(tags, tagLink{Name: t, Href: tagHref(t)})
	}
	slug := pathSegment(content.NormalizeCategory(p.Category))
	return pageData{
		Site: g.Site,
		Path: "/posts/" + p.ID + "/",
		Post: p,
		// rendered from local markdown, raw HTML is intentionally kept
		Body:         template.HTML(p.Content),
		CategorySlug: url.PathEscape(slug),
		CategoryName: services.CategoryDisplayName(p.Category),
		Tags:         tags,
		Related:      services.RelatedPosts(posts, p, 0),
	}
}

func (g *Generator) render(page, rel string, data pageData) error {
	var buf bytes.Buffer
	if err := g.pages[page].ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	return g.write(rel, buf.Bytes())
}

func (g *Generator) write(rel string, data []byte) error {
	path := filepath.Join(g.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

func tagSlug(tag string) string {
	return pathSegment(strings.ToLower(strings.TrimSpace(tag)))
}

func tagHref(tag string) string {
	return "/tag/" + url.PathEscape(tagSlug(tag)) + "/"
}

// pathSegment keeps a value inside a single directory level.
func pathSegment(s string) string {
	s = strings.NewReplacer("/", "-", `\`, "-").Replace(s)
	if s == "." || s == ".." || s == "" {
		return "_"
	}
	return s
}
