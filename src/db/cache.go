package db

import (
	"log"
	"sync"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked alongside the ristretto cache so all entries of one
// kind can be dropped together (ristretto has no prefix scan).
var (
	Cache             *ristretto.Cache
	CategoryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func categoryCacheKey(userID string) string {
	return "categories:" + userID
}

// GetCategoryCache returns the cached category list for a user, if present.
func GetCategoryCache(userID string) ([]models.Category, bool) {
	if Cache == nil {
		return nil, false
	}
	value, found := Cache.Get(categoryCacheKey(userID))
	if !found {
		return nil, false
	}
	categories, ok := value.([]models.Category)
	return categories, ok
}

func SetCategoryCache(userID string, categories []models.Category) {
	if Cache == nil {
		return
	}
	key := categoryCacheKey(userID)
	CategoryCacheKeys.Lock()
	CategoryCacheKeys.m[key] = struct{}{}
	CategoryCacheKeys.Unlock()
	Cache.Set(key, categories, 1)
}

// DelCategoryCache drops one user's cached categories. Called on every
// category write so the dashboard never serves a deleted category's metadata.
func DelCategoryCache(userID string) {
	if Cache == nil {
		return
	}
	key := categoryCacheKey(userID)
	CategoryCacheKeys.Lock()
	delete(CategoryCacheKeys.m, key)
	CategoryCacheKeys.Unlock()
	Cache.Del(key)
}

func ClearAllCategoryCaches() {
	if Cache == nil {
		return
	}
	CategoryCacheKeys.Lock()
	for key := range CategoryCacheKeys.m {
		Cache.Del(key)
	}
	CategoryCacheKeys.m = make(map[string]struct{})
	CategoryCacheKeys.Unlock()
}
