package generator

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uniformnavi/internal/models"
)

func testPosts() []*models.Post {
	return []*models.Post{
		{
			ID: "fan-guide", Title: "空調服の選び方", Date: "2024-06-01", UpdatedAt: "2024-07-01",
			Category: "cooling", Tags: []string{"夏", "Fan"}, Author: "編集部",
			Content: "<h2 id=\"x\">見出し</h2><p>本文</p>", RelatedPosts: []string{"boots"},
		},
		{
			ID: "battery", Title: "バッテリー比較", Date: "2024-05-01", UpdatedAt: "2024-05-01",
			Category: "cooling", Tags: []string{"fan"}, Author: "編集部", Content: "<p>b</p>",
		},
		{
			ID: "boots", Title: "Safety Boots", Date: "2024-03-01",
			Category: "Safety Shoes", Tags: []string{}, Author: "編集部", Content: "<p>c</p>",
		},
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(t.TempDir(), Site{Name: "ユニフォームナビ", URL: "https://example.com/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Now = func() time.Time { return time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC) }
	return g
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestGenerator_Build(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.Build(context.Background(), testPosts()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	index := readFile(t, filepath.Join(g.OutDir, "index.html"))
	for _, want := range []string{"空調服の選び方", `href="/posts/boots/"`, `href="/category/cooling/"`, "空調服"} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	post := readFile(t, filepath.Join(g.OutDir, "posts", "fan-guide", "index.html"))
	if !strings.Contains(post, `<h2 id="x">見出し</h2>`) {
		t.Error("post body must not be escaped")
	}
	if !strings.Contains(post, "<title>空調服の選び方 | ユニフォームナビ</title>") {
		t.Error("post title missing")
	}
	if !strings.Contains(post, `href="/posts/boots/"`) || !strings.Contains(post, `href="/posts/battery/"`) {
		t.Error("related posts missing")
	}
	if !strings.Contains(post, "2024-07-01") {
		t.Error("updated date missing")
	}

	for _, rel := range []string{
		"category/cooling/index.html",
		"category/safety-shoes/index.html",
		"tag/fan/index.html",
		"tag/夏/index.html",
		"sitemap.xml",
	} {
		if _, err := os.Stat(filepath.Join(g.OutDir, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	tag := readFile(t, filepath.Join(g.OutDir, "tag", "fan", "index.html"))
	if !strings.Contains(tag, "空調服の選び方") || !strings.Contains(tag, "バッテリー比較") {
		t.Error("tag page must list both fan posts")
	}
}

func TestGenerator_Build_RemovesStalePages(t *testing.T) {
	g := newTestGenerator(t)
	stale := filepath.Join(g.OutDir, "posts", "deleted", "index.html")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(g.OutDir, "robots.txt")
	if err := os.WriteFile(keep, []byte("User-agent: *"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := g.Build(context.Background(), testPosts()); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale post page was not removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("unrelated files must be kept")
	}
}

func TestGenerator_Sitemap(t *testing.T) {
	g := newTestGenerator(t)

	data, err := g.Sitemap(testPosts())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}

	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatalf("sitemap is not valid XML: %v", err)
	}
	if len(set.URLs) != 6 {
		t.Fatalf("expected 6 urls, got %d", len(set.URLs))
	}

	home := set.URLs[0]
	if home.Loc != "https://example.com" || home.Priority != "1.0" || home.ChangeFreq != "monthly" || home.LastMod != "2024-08-01" {
		t.Errorf("unexpected home entry: %+v", home)
	}
	if set.URLs[1].Loc != "https://example.com/contact" || set.URLs[2].Loc != "https://example.com/privacy-policy" {
		t.Errorf("unexpected static routes: %+v", set.URLs[1:3])
	}

	fan := set.URLs[3]
	if fan.Loc != "https://example.com/posts/fan-guide" || fan.LastMod != "2024-07-01" || fan.Priority != "0.8" || fan.ChangeFreq != "weekly" {
		t.Errorf("unexpected post entry: %+v", fan)
	}
	if boots := set.URLs[5]; boots.LastMod != "2024-03-01" {
		t.Errorf("lastmod must fall back to date, got %q", boots.LastMod)
	}
}

func TestGenerator_Build_Cancelled(t *testing.T) {
	g := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Build(ctx, testPosts()); err == nil {
		t.Fatal("expected context error")
	}
}
