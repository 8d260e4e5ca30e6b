package store

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rajveda/jyotish/internal/model"
)

// CachedStore is a read-through cache over another store. Name lookups
// are cached; every write invalidates the cache.
type CachedStore struct {
	inner Store
	cache *gocache.Cache
}

// NewCachedStore wraps a store with an in-memory name-lookup cache.
func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedStore{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Create delegates to the inner store and invalidates cached lookups.
func (s *CachedStore) Create(name string, birth model.BirthDetails) (*model.Profile, error) {
	profile, err := s.inner.Create(name, birth)
	if err != nil {
		return nil, err
	}
	s.cache.Flush()
	return profile, nil
}

// List always reads through to the inner store.
func (s *CachedStore) List() ([]model.Profile, error) {
	return s.inner.List()
}

// GetByName returns a cached profile when present.
func (s *CachedStore) GetByName(name string) (*model.Profile, error) {
	key := strings.ToLower(name)
	if val, found := s.cache.Get(key); found {
		cached := val.(model.Profile)
		return &cached, nil
	}

	profile, err := s.inner.GetByName(name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *profile, gocache.DefaultExpiration)
	return profile, nil
}

// Upsert delegates to the inner store and invalidates cached lookups.
func (s *CachedStore) Upsert(profile *model.Profile) error {
	if err := s.inner.Upsert(profile); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}
