package services

import (
	"time"

	"uniformnavi/internal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformnavi_content_cache_hits_total",
		Help: "Post collection reads served from the cache.",
	})
	contentCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uniformnavi_content_cache_misses_total",
		Help: "Post collection reads that had to load the content directory.",
	})
	contentPostsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "uniformnavi_content_posts",
		Help: "Number of posts in the last loaded collection.",
	})
)

// collectionCache holds loaded post collections with a TTL. There is one key
// per content directory, so the size limit is small.
type collectionCache struct {
	lru *expirable.LRU[string, []*models.Post]
}

func newCollectionCache(ttl time.Duration) *collectionCache {
	return &collectionCache{lru: expirable.NewLRU[string, []*models.Post](4, nil, ttl)}
}

func (c *collectionCache) get(key string) ([]*models.Post, bool) {
	posts, ok := c.lru.Get(key)
	if ok {
		contentCacheHits.Inc()
		return posts, true
	}
	contentCacheMisses.Inc()
	return nil, false
}

func (c *collectionCache) set(key string, posts []*models.Post) {
	c.lru.Add(key, posts)
	contentPostsLoaded.Set(float64(len(posts)))
}

func (c *collectionCache) purge() {
	c.lru.Purge()
}
