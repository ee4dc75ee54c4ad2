// Package form implements the stateful controller behind a single contact
// form instance: field values, per-field errors, the submit state machine and
// the country→city dependent fetch. A presentation layer owns one Session per
// rendered form and reads all of its UI state from here.
package form

import (
	"context"
	"sync"
	"time"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/internal/validation"
)

// State is the submit lifecycle of a form instance.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// noticeTimeout is how long transient messages stay up, and how long a failed
// submit keeps the form in StateFailed before it drops back to editing.
const noticeTimeout = 5 * time.Second

// NoticeKind distinguishes the transient banner flavors.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient user-facing message with a fixed lifetime.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Submitter is the submission pipeline the session hands validated values to.
type Submitter interface {
	SubmitLead(ctx context.Context, form *domain.ContactForm, meta domain.SubmissionMeta) (*domain.SubmissionResult, []domain.FieldError)
}

// Session is the form state controller. All methods are safe for use from
// UI-event and fetch-completion callbacks.
type Session struct {
	mu sync.Mutex

	locale   string
	schema   *validation.Schema
	provider domain.LocationProvider
	regions  domain.LocationUsecase
	pipeline Submitter

	values    domain.ContactForm
	errors    map[string]string
	submitted bool // first submit attempted; fields revalidate on change from then on

	state    State
	failedAt time.Time

	notice   *Notice
	noticeAt time.Time

	cityOptions   []string
	loadingCities bool
	countryGen    uint64

	now       func() time.Time
	onRegions func(countryCode string) // fires after a region fetch resolves, stale or not
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRegionListener registers a hook invoked after each region fetch
// resolves, with the country code the fetch was issued for.
func WithRegionListener(fn func(countryCode string)) Option {
	return func(s *Session) { s.onRegions = fn }
}

// NewSession creates a form session with default values for the locale.
func NewSession(locale string, provider domain.LocationProvider, regions domain.LocationUsecase, pipeline Submitter, opts ...Option) *Session {
	s := &Session{
		locale:   locale,
		schema:   validation.NewSchema(locale),
		provider: provider,
		regions:  regions,
		pipeline: pipeline,
		values:   domain.NewContactForm(),
		errors:   make(map[string]string),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Values returns a copy of the current form values.
func (s *Session) Values() domain.ContactForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Errors returns a copy of the current per-field errors.
func (s *Session) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// State returns the current lifecycle state. A failed submit drops back to
// editing once its notice window has lapsed.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	if s.state == StateFailed && s.now().Sub(s.failedAt) >= noticeTimeout {
		s.state = StateEditing
	}
	return s.state
}

// Notice returns the active transient message, or nil once it has expired.
func (s *Session) Notice() *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice == nil || s.now().Sub(s.noticeAt) >= noticeTimeout {
		s.notice = nil
		return nil
	}
	n := *s.notice
	return &n
}

// CityOptions returns the region names currently offered for the city field.
func (s *Session) CityOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.cityOptions))
	copy(out, s.cityOptions)
	return out
}

// LoadingCities reports whether a region fetch is in flight.
func (s *Session) LoadingCities() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingCities
}

// SetField updates one field by its wire name. Before the first submit
// attempt the form never shows errors; after it, the changed field
// revalidates immediately. Unknown names are ignored.
func (s *Session) SetField(field string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state := s.stateLocked(); state == StateFailed || state == StateSucceeded {
		s.state = StateEditing
	}

	str, _ := value.(string)
	b, _ := value.(bool)

	switch field {
	case "name":
		s.values.Name = str
	case "surname":
		s.values.Surname = str
	case "countryCode":
		s.values.CountryCode = str
	case "phone":
		s.values.Phone = str
	case "email":
		s.values.Email = str
	case "country":
		// Plain value set; SelectCountry is the path that resets the
		// city and fetches its options.
		s.values.Country = str
	case "city":
		s.values.City = str
	case "residenceType":
		s.values.ResidenceType = str
	case "howDidYouHearAboutUs":
		s.values.HowDidYouHearAboutUs = str
	case "message":
		s.values.Message = str
	case "consent":
		s.values.Consent = b
	case "consentElectronicMessage":
		s.values.ConsentElectronicMessage = b
	case "consentSms":
		s.values.ConsentSms = b
	case "consentEmail":
		s.values.ConsentEmail = b
	case "consentPhone":
		s.values.ConsentPhone = b
	default:
		return
	}

	if s.submitted {
		s.revalidateFieldLocked(field)
		if field == "countryCode" {
			// Phone validity is conditioned on the dial code.
			s.revalidateFieldLocked("phone")
		}
	}
}

// ToggleResidenceType adds or removes one residence-type option from the
// multi-select, keeping the delimited encoding consistent.
func (s *Session) ToggleResidenceType(option string, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.values.ResidenceTypes()
	next := current[:0:0]
	for _, t := range current {
		if t != option {
			next = append(next, t)
		}
	}
	if checked {
		next = append(next, option)
	}
	s.values.SetResidenceTypes(next)

	if s.submitted {
		s.revalidateFieldLocked("residenceType")
	}
}

func (s *Session) revalidateFieldLocked(field string) {
	delete(s.errors, field)
	for _, fe := range s.schema.Validate(&s.values) {
		if fe.Field == field {
			s.errors[field] = fe.Message
			return
		}
	}
}

// SelectCountry sets the country field, clears the dependent city field
// synchronously and starts an asynchronous region fetch for the resolved
// country code. A fetch whose country is no longer selected when it resolves
// is discarded.
func (s *Session) SelectCountry(displayName string) {
	s.mu.Lock()

	if state := s.stateLocked(); state == StateFailed || state == StateSucceeded {
		s.state = StateEditing
	}

	s.values.Country = displayName
	s.values.City = "" // invalidated by the country change, before any fetch
	s.cityOptions = nil
	s.countryGen++
	gen := s.countryGen

	if s.submitted {
		s.revalidateFieldLocked("country")
		s.revalidateFieldLocked("city")
	}

	if displayName == "" {
		s.loadingCities = false
		s.mu.Unlock()
		return
	}

	code, ok := s.provider.ResolveCountry(displayName, s.locale)
	if !ok {
		s.loadingCities = false
		s.mu.Unlock()
		return
	}

	s.loadingCities = true
	s.mu.Unlock()

	go s.fetchRegions(code, gen)
}

func (s *Session) fetchRegions(code string, gen uint64) {
	regions, err := s.regions.Regions(context.Background(), code, s.locale)

	s.mu.Lock()
	if gen == s.countryGen {
		s.loadingCities = false
		// Empty options are always nil internally; CityOptions hands out
		// a non-nil slice either way. Fetch failure is non-fatal and
		// degrades to no options.
		s.cityOptions = nil
		if err == nil && len(regions) > 0 {
			names := make([]string, len(regions))
			for i, r := range regions {
				names[i] = r.Name
			}
			s.cityOptions = names
		}
	}
	hook := s.onRegions
	s.mu.Unlock()

	if hook != nil {
		hook(code)
	}
}

// Submit runs the full pipeline: validate, then hand off to the submission
// pipeline, then transition on the single result. Returns the result of the
// attempt, or nil when validation failed or a submit was already in flight.
func (s *Session) Submit(ctx context.Context, meta domain.SubmissionMeta) *domain.SubmissionResult {
	s.mu.Lock()
	if s.stateLocked() == StateSubmitting {
		s.mu.Unlock()
		return nil
	}
	s.state = StateValidating
	s.submitted = true
	values := s.values
	s.mu.Unlock()

	errs := s.schema.Validate(&values)
	if len(errs) > 0 {
		s.applyFieldErrors(errs)
		return nil
	}

	s.mu.Lock()
	s.errors = make(map[string]string)
	s.state = StateSubmitting
	s.mu.Unlock()

	result, fieldErrs := s.pipeline.SubmitLead(ctx, &values, meta)
	if len(fieldErrs) > 0 {
		s.applyFieldErrors(fieldErrs)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if result != nil && result.Success {
		s.resetLocked()
		s.state = StateSucceeded
		s.notice = &Notice{Kind: NoticeSuccess, Text: result.Message}
		s.noticeAt = s.now()
		return result
	}

	msg := ""
	if result != nil {
		msg = result.Message
	}
	s.state = StateFailed
	s.failedAt = s.now()
	s.notice = &Notice{Kind: NoticeError, Text: msg}
	s.noticeAt = s.now()
	return result
}

func (s *Session) applyFieldErrors(errs []domain.FieldError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = make(map[string]string, len(errs))
	for _, fe := range errs {
		s.errors[fe.Field] = fe.Message
	}
	s.state = StateEditing
}

// resetLocked restores the defaults after a successful submission: values,
// errors, dropdown options and any in-flight region fetch.
func (s *Session) resetLocked() {
	s.values = domain.NewContactForm()
	s.errors = make(map[string]string)
	s.submitted = false
	s.cityOptions = nil
	s.loadingCities = false
	s.countryGen++ // discard in-flight fetches
}
