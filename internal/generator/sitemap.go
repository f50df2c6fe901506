package generator

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"uniformnavi/internal/models"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

var staticRoutes = []string{"", "/contact", "/privacy-policy"}

// Sitemap lists the fixed pages followed by one entry per post.
func (g *Generator) Sitemap(posts []*models.Post) ([]byte, error) {
	today := g.Now().Format("2006-01-02")

	set := urlSet{XMLNS: sitemapNS}
	for _, r := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        g.Site.URL + r,
			LastMod:    today,
			ChangeFreq: "monthly",
			Priority:   "1.0",
		})
	}
	for _, p := range posts {
		lastMod := p.UpdatedAt
		if lastMod == "" {
			lastMod = p.Date
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        g.Site.URL + "/posts/" + p.ID,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (g *Generator) writeSitemap(posts []*models.Post) error {
	data, err := g.Sitemap(posts)
	if err != nil {
		return err
	}
	return g.write("sitemap.xml", data)
}
