package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"uniformnavi/internal/content"
	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const (
	collectionKey       = "posts"
	defaultRelatedLimit = 3
)

// PostService serves the post collection from a TTL cache in front of the
// content loader. The cached slice is shared by all readers and never mutated.
type PostService struct {
	loader *content.Loader
	cache  *collectionCache

	loadMu sync.Mutex
	// genMu guards gen, which Purge bumps. A load that overlaps a purge
	// returns its result but does not cache it.
	genMu sync.Mutex
	gen   uint64
}

func NewPostService(loader *content.Loader, ttl time.Duration) *PostService {
	return &PostService{
		loader: loader,
		cache:  newCollectionCache(ttl),
	}
}

// All returns the whole collection, newest first.
func (s *PostService) All(ctx context.Context) ([]*models.Post, error) {
	if posts, ok := s.cache.get(collectionKey); ok {
		return posts, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	// another request may have loaded it while we waited
	if posts, ok := s.cache.lru.Get(collectionKey); ok {
		return posts, nil
	}
	return s.load(ctx)
}

func (s *PostService) load(ctx context.Context) ([]*models.Post, error) {
	s.genMu.Lock()
	gen := s.gen
	s.genMu.Unlock()

	posts, err := s.loader.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	sorted := content.SortByDateDesc(posts)
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.gen == gen {
		s.cache.set(collectionKey, sorted)
	}
	return sorted, nil
}

// Reload drops the cache and loads the directory again.
func (s *PostService) Reload(ctx context.Context) (int, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.cache.purge()
	posts, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	logger.WithCtx(ctx).Info("posts: collection reloaded", zap.Int("count", len(posts)))
	return len(posts), nil
}

// Purge makes the next read load from disk.
func (s *PostService) Purge() {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	s.gen++
	s.cache.purge()
}

func (s *PostService) Query(ctx context.Context, f models.PostFilter) ([]*models.Post, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return content.Query(posts, f), nil
}

// Search matches the query against post titles.
func (s *PostService) Search(ctx context.Context, query string) ([]*models.Post, error) {
	return s.Query(ctx, models.PostFilter{Title: strings.TrimSpace(query)})
}

// GetByID returns the post from the collection. Posts that were skipped at
// load time are read again so the caller gets the precise error
// (*content.NotFoundError or *content.MalformedContentError).
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	posts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	if p, ok := content.FindByID(posts, id); ok {
		return p, nil
	}
	return s.loader.Assembler().LoadByID(id)
}

// Related lists the posts named in the post's relatedPosts field, then fills
// up to limit with the newest posts of the same category.
func (s *PostService) Related(ctx context.Context, id string, limit int) ([]*models.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return RelatedPosts(posts, post, limit), nil
}

// RelatedPosts picks related posts for post out of a date-sorted collection.
func RelatedPosts(posts []*models.Post, post *models.Post, limit int) []*models.Post {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	seen := map[string]bool{post.ID: true}
	out := make([]*models.Post, 0, limit)
	for _, rid := range post.RelatedPosts {
		if len(out) == limit {
			return out
		}
		if seen[rid] {
			continue
		}
		if p, ok := content.FindByID(posts, rid); ok {
			seen[rid] = true
			out = append(out, p)
		}
	}
	for _, p := range content.FilterByCategory(posts, post.Category) {
		if len(out) == limit {
			break
		}
		if !seen[p.ID] {
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out
}

// Watch purges the cache whenever a file in dir changes. It blocks until ctx
// is cancelled.
func (s *PostService) Watch(ctx context.Context, dir string) error {
	log := logger.WithCtx(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info("posts: watching content directory", zap.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantChange(event) {
				continue
			}
			s.Purge()
			log.Info("posts: content changed, cache purged",
				zap.String("file", filepath.Base(event.Name)), zap.String("op", event.Op.String()))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				s.Purge()
			}
			log.Warn("posts: watcher error", zap.Error(err))
		}
	}
}

func relevantChange(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, content.Ext) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// ContentDirExists reports whether dir can be used as a content directory.
func ContentDirExists(dir string) bool {
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}
