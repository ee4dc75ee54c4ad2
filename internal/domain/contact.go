package domain

import (
	"context"
	"strings"
)

// DefaultCountryCode is the dial code preselected in the phone input (Turkey).
const DefaultCountryCode = "90"

// ResidenceTypeOptions is the fixed option list for the residence-type
// multi-select. Values double as wire tokens.
var ResidenceTypeOptions = []string{"1+1", "2+1", "3+1", "4+1", "5+1", "6+1"}

// ContactForm holds the values of a single contact-form instance. String
// multi-selects (ResidenceType) are stored in their comma-joined wire encoding;
// use ResidenceTypes/SetResidenceTypes to work with them as sets.
type ContactForm struct {
	Name                 string `json:"name" validate:"required,min=2,person_name"`
	Surname              string `json:"surname" validate:"required,min=2,person_name"`
	CountryCode          string `json:"countryCode"`
	Phone                string `json:"phone"`
	Email                string `json:"email" validate:"required,email"`
	Country              string `json:"country" validate:"required"`
	City                 string `json:"city" validate:"required"`
	ResidenceType        string `json:"residenceType" validate:"required"`
	HowDidYouHearAboutUs string `json:"howDidYouHearAboutUs" validate:"required"`
	Message              string `json:"message"`

	Consent                  bool `json:"consent" validate:"eq=true"`
	ConsentElectronicMessage bool `json:"consentElectronicMessage" validate:"eq=true"`
	ConsentSms               bool `json:"consentSms"`
	ConsentEmail             bool `json:"consentEmail"`
	ConsentPhone             bool `json:"consentPhone"`
}

// NewContactForm returns a form populated with the defaults the UI starts
// from. The dial code defaults to Turkey; everything else is empty or false.
func NewContactForm() ContactForm {
	return ContactForm{CountryCode: DefaultCountryCode}
}

// ResidenceTypes decodes the comma-joined residence-type value into its
// individual option tokens. An empty value decodes to an empty set.
func (f *ContactForm) ResidenceTypes() []string {
	if f.ResidenceType == "" {
		return nil
	}
	return strings.Split(f.ResidenceType, ",")
}

// SetResidenceTypes encodes the given option tokens back into the delimited
// wire representation, dropping empty entries.
func (f *ContactForm) SetResidenceTypes(types []string) {
	kept := types[:0:0]
	for _, t := range types {
		if t != "" {
			kept = append(kept, t)
		}
	}
	f.ResidenceType = strings.Join(kept, ",")
}

// FieldError is a single validation failure attached to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmissionMeta carries the request-scoped metadata attached to a lead at
// submit time. UTM parameters are derived from PageURL, not stored here.
type SubmissionMeta struct {
	Locale  string
	PageURL string
}

// SubmissionResult is the outcome of one submission attempt.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ContactUsecase validates a contact form and forwards it to the external
// lead-ingestion endpoint.
type ContactUsecase interface {
	// SubmitLead validates the form and, when valid, performs a single
	// submission attempt. Validation failures come back as field errors with
	// a nil result; transport or server failures come back as a failed
	// result, never as a panic.
	SubmitLead(ctx context.Context, form *ContactForm, meta SubmissionMeta) (*SubmissionResult, []FieldError)
}
