package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/logger"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/redis"
)

// DefaultRegionTTL is the freshness window for cached region lists.
const DefaultRegionTTL = 5 * time.Minute

type regionCacheEntry struct {
	regions   []domain.Region
	fetchedAt time.Time
}

type locationUsecase struct {
	provider domain.LocationProvider
	ttl      time.Duration

	mu     sync.Mutex
	memory map[string]regionCacheEntry
	now    func() time.Time
}

// NewLocationUsecase wraps the reference-data provider with a per-country
// region cache. Entries younger than ttl are served without touching the
// provider. When Redis is configured the cache is additionally shared across
// instances; otherwise the in-memory layer stands alone.
func NewLocationUsecase(provider domain.LocationProvider, ttl time.Duration) domain.LocationUsecase {
	if ttl <= 0 {
		ttl = DefaultRegionTTL
	}
	return &locationUsecase{
		provider: provider,
		ttl:      ttl,
		memory:   make(map[string]regionCacheEntry),
		now:      time.Now,
	}
}

func (uc *locationUsecase) Countries(ctx context.Context, locale string) []domain.Country {
	return uc.provider.Countries(locale)
}

// Regions serves the region list for a country code, cached for the
// freshness window. An unknown code yields an empty list, never an error.
func (uc *locationUsecase) Regions(ctx context.Context, countryCode, locale string) ([]domain.Region, error) {
	key := strings.ToUpper(countryCode) + ":" + locale

	uc.mu.Lock()
	if entry, ok := uc.memory[key]; ok && uc.now().Sub(entry.fetchedAt) < uc.ttl {
		uc.mu.Unlock()
		return entry.regions, nil
	}
	uc.mu.Unlock()

	if regions, ok := uc.fromRedis(ctx, key); ok {
		uc.store(key, regions)
		return regions, nil
	}

	regions := uc.provider.Regions(countryCode, locale)
	uc.store(key, regions)
	uc.toRedis(ctx, key, regions)
	return regions, nil
}

func (uc *locationUsecase) store(key string, regions []domain.Region) {
	uc.mu.Lock()
	uc.memory[key] = regionCacheEntry{regions: regions, fetchedAt: uc.now()}
	uc.mu.Unlock()
}

func (uc *locationUsecase) fromRedis(ctx context.Context, key string) ([]domain.Region, bool) {
	rdb := redis.Client()
	if rdb == nil {
		return nil, false
	}

	raw, err := rdb.Get(ctx, "regions:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var regions []domain.Region
	if err := json.Unmarshal(raw, &regions); err != nil {
		logger.Log.Warn("corrupt region cache entry", "key", key, "error", err)
		return nil, false
	}
	return regions, true
}

func (uc *locationUsecase) toRedis(ctx context.Context, key string, regions []domain.Region) {
	rdb := redis.Client()
	if rdb == nil {
		return
	}

	raw, err := json.Marshal(regions)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, "regions:"+key, raw, uc.ttl).Err(); err != nil {
		// Cache write failures degrade to in-memory only.
		logger.Log.Warn("region cache write failed", "key", key, "error", err)
	}
}
