// Package geodata serves the bundled country and region reference data the
// contact form's location fields are built from. Country display names are
// localized through the CLDR region names shipped with x/text, and all
// user-facing ordering is collation-aware for the requested locale.
package geodata

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
)

//go:embed data
var dataFS embed.FS

// pinnedCountry is kept at the front of every user-facing country list.
const pinnedCountry = "TR"

type countryRecord struct {
	Code     string `json:"isoCode"`
	Name     string `json:"name"`
	DialCode string `json:"dialCode"`
}

// Store is an in-memory view over the embedded dataset. It is immutable after
// New and safe for concurrent reads.
type Store struct {
	countries []countryRecord
	regions   map[string][]string
}

// New parses the embedded dataset. Returns an error only when the bundled
// files are malformed, which is a build defect rather than a runtime state.
func New() (*Store, error) {
	s := &Store{regions: make(map[string][]string)}

	raw, err := dataFS.ReadFile("data/countries.json")
	if err != nil {
		return nil, fmt.Errorf("geodata: read countries: %w", err)
	}
	if err := json.Unmarshal(raw, &s.countries); err != nil {
		return nil, fmt.Errorf("geodata: parse countries: %w", err)
	}

	raw, err = dataFS.ReadFile("data/regions.json")
	if err != nil {
		return nil, fmt.Errorf("geodata: read regions: %w", err)
	}
	if err := json.Unmarshal(raw, &s.regions); err != nil {
		return nil, fmt.Errorf("geodata: parse regions: %w", err)
	}

	return s, nil
}

// Countries returns the country list with display names localized for the
// given locale, sorted by that locale's collation, with Turkey pinned first.
func (s *Store) Countries(locale string) []domain.Country {
	tag := language.Make(locale)
	namer := display.Regions(tag)
	coll := collate.New(tag)

	out := make([]domain.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, domain.Country{
			Code:     c.Code,
			Name:     localizedName(namer, c),
			DialCode: c.DialCode,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Code == pinnedCountry {
			return out[j].Code != pinnedCountry
		}
		if out[j].Code == pinnedCountry {
			return false
		}
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Regions lists the administrative subdivisions of a country, sorted for the
// given locale. A syntactically valid but unknown code yields an empty list.
func (s *Store) Regions(countryCode, locale string) []domain.Region {
	names, ok := s.regions[strings.ToUpper(countryCode)]
	if !ok {
		return []domain.Region{}
	}

	coll := collate.New(language.Make(locale))
	sorted := make([]string, len(names))
	copy(sorted, names)
	coll.SortStrings(sorted)

	out := make([]domain.Region, len(sorted))
	for i, n := range sorted {
		out[i] = domain.Region{Name: n}
	}
	return out
}

// ResolveCountry maps a display name back to its ISO2 code, checking both the
// localized and the bundled English names.
func (s *Store) ResolveCountry(displayName, locale string) (string, bool) {
	namer := display.Regions(language.Make(locale))
	for _, c := range s.countries {
		if strings.EqualFold(displayName, localizedName(namer, c)) || strings.EqualFold(displayName, c.Name) {
			return c.Code, true
		}
	}
	return "", false
}

func localizedName(namer display.Namer, c countryRecord) string {
	if namer == nil {
		return c.Name
	}
	region, err := language.ParseRegion(c.Code)
	if err != nil {
		return c.Name
	}
	if name := namer.Name(region); name != "" {
		return name
	}
	return c.Name
}
