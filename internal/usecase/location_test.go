package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
)

type countingProvider struct {
	regionCalls int
	regions     map[string][]domain.Region
}

func (p *countingProvider) Countries(locale string) []domain.Country {
	return []domain.Country{{Code: "TR", Name: "Türkiye", DialCode: "90"}}
}

func (p *countingProvider) Regions(countryCode, locale string) []domain.Region {
	p.regionCalls++
	return p.regions[countryCode]
}

func (p *countingProvider) ResolveCountry(displayName, locale string) (string, bool) {
	if displayName == "Türkiye" {
		return "TR", true
	}
	return "", false
}

func newCachedLocationUsecase(provider domain.LocationProvider, ttl time.Duration, now *time.Time) domain.LocationUsecase {
	uc := NewLocationUsecase(provider, ttl).(*locationUsecase)
	uc.now = func() time.Time { return *now }
	return uc
}

func TestRegionsCachedWithinFreshnessWindow(t *testing.T) {
	provider := &countingProvider{regions: map[string][]domain.Region{
		"TR": {{Name: "Adana"}, {Name: "İstanbul"}},
	}}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newCachedLocationUsecase(provider, DefaultRegionTTL, &now)

	first, err := uc.Regions(context.Background(), "TR", "tr")
	require.NoError(t, err)
	require.Len(t, first, 2)

	now = now.Add(4 * time.Minute)
	second, err := uc.Regions(context.Background(), "TR", "tr")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.regionCalls)
}

func TestRegionsRefetchedAfterExpiry(t *testing.T) {
	provider := &countingProvider{regions: map[string][]domain.Region{
		"TR": {{Name: "İstanbul"}},
	}}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newCachedLocationUsecase(provider, DefaultRegionTTL, &now)

	_, err := uc.Regions(context.Background(), "TR", "tr")
	require.NoError(t, err)

	now = now.Add(DefaultRegionTTL + time.Second)
	_, err = uc.Regions(context.Background(), "TR", "tr")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.regionCalls)
}

func TestRegionsCacheKeyedByCountryAndLocale(t *testing.T) {
	provider := &countingProvider{regions: map[string][]domain.Region{
		"TR": {{Name: "İstanbul"}},
		"DE": {{Name: "Berlin"}},
	}}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newCachedLocationUsecase(provider, DefaultRegionTTL, &now)

	_, _ = uc.Regions(context.Background(), "TR", "tr")
	_, _ = uc.Regions(context.Background(), "DE", "tr")
	_, _ = uc.Regions(context.Background(), "TR", "en")
	assert.Equal(t, 3, provider.regionCalls)

	// Case-insensitive on the country code side.
	_, _ = uc.Regions(context.Background(), "tr", "tr")
	assert.Equal(t, 3, provider.regionCalls)
}

func TestRegionsUnknownCountryEmptyNotError(t *testing.T) {
	provider := &countingProvider{regions: map[string][]domain.Region{}}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newCachedLocationUsecase(provider, DefaultRegionTTL, &now)

	regions, err := uc.Regions(context.Background(), "ZZ", "en")
	require.NoError(t, err)
	assert.Empty(t, regions)
}
