package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"uniformnavi/internal/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func postFile(title, date, category string) []byte {
	return []byte("---\ntitle: " + title + "\ndate: \"" + date + "\"\ncategory: " + category + "\n---\nbody\n")
}

func TestLoader_LoadAll_SkipsMalformed(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	fsys := fstest.MapFS{
		"a.md":        {Data: postFile("A", "2024-01-01", "workwear")},
		"b.md":        {Data: postFile("B", "2024-02-01", "cooling")},
		"bad.md":      {Data: []byte("---\ntitle: [oops\n---\n")},
		"notes.txt":   {Data: []byte("ignored")},
		"drafts/c.md": {Data: postFile("C", "2024-03-01", "security")},
	}
	loader := NewLoader(fsys, NewAssembler(fsys, nil, testAuthor))

	posts, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "a" || posts[1].ID != "b" {
		t.Fatalf("unexpected order: %s, %s", posts[0].ID, posts[1].ID)
	}

	skipped := logs.FilterMessage("content: post skipped").All()
	if len(skipped) != 1 {
		t.Fatalf("expected one skip log entry, got %d", len(skipped))
	}
	if skipped[0].ContextMap()["id"] != "bad" {
		t.Fatalf("skip logged for wrong id: %v", skipped[0].ContextMap())
	}
}

func TestLoader_LoadAll_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	fsys := os.DirFS(dir)

	posts, err := NewLoader(fsys, NewAssembler(fsys, nil, testAuthor)).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty collection, got %d", len(posts))
	}
}

func TestLoader_LoadAll_MissingDirectory(t *testing.T) {
	fsys := os.DirFS(filepath.Join(t.TempDir(), "nope"))

	if _, err := NewLoader(fsys, NewAssembler(fsys, nil, testAuthor)).LoadAll(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoader_LoadAll_Cancelled(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: postFile("A", "2024-01-01", "workwear")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader(fsys, NewAssembler(fsys, nil, testAuthor)).LoadAll(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
