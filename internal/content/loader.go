package content

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"

	"go.uber.org/zap"
)

// Loader materialises the whole collection from the content directory.
type Loader struct {
	fsys      fs.FS
	assembler *Assembler
}

func NewLoader(fsys fs.FS, assembler *Assembler) *Loader {
	return &Loader{fsys: fsys, assembler: assembler}
}

func (l *Loader) Assembler() *Assembler { return l.assembler }

// LoadAll assembles every *.md file in filename order. A record that fails to
// assemble is logged and skipped; an empty result is not an error. Only an
// unreadable content directory fails the whole load.
func (l *Loader) LoadAll(ctx context.Context) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content directory: %w", err)
	}

	posts := make([]*models.Post, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		id := strings.TrimSuffix(name, Ext)

		post, err := l.assembler.LoadByID(id)
		if err != nil {
			skipped++
			log.Warn("content: post skipped", zap.String("id", id), zap.Error(err))
			continue
		}
		if missing := MissingRequired(post); len(missing) > 0 {
			log.Warn("content: post is missing required fields",
				zap.String("id", id), zap.Strings("fields", missing))
		}
		posts = append(posts, post)
	}

	log.Debug("content: collection loaded",
		zap.Int("count", len(posts)),
		zap.Int("skipped", skipped),
	)
	return posts, nil
}
