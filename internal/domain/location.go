package domain

import "context"

// Country is one entry of the bundled country dataset. Name is the localized
// display name for the locale it was listed with.
type Country struct {
	Code     string `json:"isoCode"`
	Name     string `json:"name"`
	DialCode string `json:"dialCode"`
}

// Region is an administrative subdivision (state/province) of a country. The
// form presents regions as the "city" option set.
type Region struct {
	Name string `json:"name"`
}

// LocationProvider is the bundled reference-data source for countries and
// their regions. Implementations are pure reads: an unknown country code
// yields an empty region list, not an error.
type LocationProvider interface {
	Countries(locale string) []Country
	Regions(countryCode, locale string) []Region
	// ResolveCountry maps a display name back to its ISO2 code, matching
	// against the localized names of the given locale. Second return is
	// false when no country carries that name.
	ResolveCountry(displayName, locale string) (string, bool)
}

// LocationUsecase serves country and region reads over the provider, with
// region results cached per country for a bounded freshness window.
type LocationUsecase interface {
	Countries(ctx context.Context, locale string) []Country
	Regions(ctx context.Context, countryCode, locale string) ([]Region, error)
}
