package scan

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// NewMemStore keeps values in process for expiration; expiration <= 0 keeps
// them until the process exits.
func NewMemStore(expiration time.Duration) *MemStore {
	cleanupInterval := expiration * 2

	if expiration <= 0 {
		expiration = cache.NoExpiration
		cleanupInterval = 0
	}

	return &MemStore{
		expiration: expiration,
		cachedVs:   cache.New(expiration, cleanupInterval),
	}
}

type MemStore struct {
	expiration time.Duration
	cachedVs   *cache.Cache
}

func (stg *MemStore) Load(_ context.Context, key string) (v float64, ok bool, err error) {
	i, ok := stg.cachedVs.Get(key)
	if !ok {
		return
	}

	v, ok = i.(float64)

	return
}

func (stg *MemStore) Save(_ context.Context, key string, v float64) error {
	stg.cachedVs.Set(key, v, stg.expiration)

	return nil
}

func (stg *MemStore) Len() int {
	return stg.cachedVs.ItemCount()
}

func (stg *MemStore) Flush() {
	stg.cachedVs.Flush()
}
