package ephemeris

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedSource memoizes per-instant position lookups of an inner
// source. Position maps are immutable once produced, so sharing the
// cached map between callers is safe.
type CachedSource struct {
	inner Source
	cache *gocache.Cache
}

// NewCachedSource wraps a source with an in-memory cache.
func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedSource{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Name returns the inner source name.
func (s *CachedSource) Name() string {
	return s.inner.Name()
}

// PositionsAt returns cached positions when present, otherwise asks the
// inner source and caches the result.
func (s *CachedSource) PositionsAt(utc time.Time) (map[string]Result, error) {
	key := utc.UTC().Format(time.RFC3339)
	if val, found := s.cache.Get(key); found {
		return val.(map[string]Result), nil
	}

	out, err := s.inner.PositionsAt(utc)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}
