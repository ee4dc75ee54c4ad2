// Package validation builds the contact-form validation schema. A Schema is
// constructed for one locale: every error message is resolved from the
// translation catalog at construction time, so callers rebuild the schema
// when the active locale changes.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
)

// fieldOrder fixes the order field errors are reported in, independent of the
// order the underlying validator emits them.
var fieldOrder = []string{
	"name", "surname", "email", "country", "city",
	"residenceType", "howDidYouHearAboutUs", "phone",
	"consent", "consentElectronicMessage",
}

// Schema validates ContactForm values with localized error messages.
type Schema struct {
	locale   string
	validate *validator.Validate
	messages map[string]string
}

// NewSchema builds the schema for a locale.
func NewSchema(locale string) *Schema {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("person_name", personName)
	v.RegisterStructValidation(contactFormRefinements, domain.ContactForm{})

	return &Schema{
		locale:   locale,
		validate: v,
		messages: map[string]string{
			"name":                     i18n.T(locale, "form.input.name.required"),
			"surname":                  i18n.T(locale, "form.input.surname.required"),
			"email.required":           i18n.T(locale, "form.input.email.required"),
			"email.email":              i18n.T(locale, "form.input.email.invalid"),
			"phone":                    i18n.T(locale, "form.input.phone.invalid"),
			"country":                  i18n.T(locale, "form.input.country.required"),
			"city":                     i18n.T(locale, "form.input.city.required"),
			"residenceType":            i18n.T(locale, "form.input.residenceType.required"),
			"howDidYouHearAboutUs":     i18n.T(locale, "form.input.howDidYouHearAboutUs.required"),
			"consent":                  i18n.T(locale, "form.input.consent.required"),
			"consentElectronicMessage": i18n.T(locale, "form.input.consentElectronicMessage.required"),
		},
	}
}

// Locale returns the locale the schema was built for.
func (s *Schema) Locale() string { return s.locale }

// Validate checks the form and returns one error per failing field, in the
// form's visual field order. A nil result means the form is valid.
func (s *Schema) Validate(form *domain.ContactForm) []domain.FieldError {
	f := *form
	f.Name = strings.TrimSpace(f.Name)
	f.Surname = strings.TrimSpace(f.Surname)
	f.Email = strings.TrimSpace(f.Email)
	f.Country = strings.TrimSpace(f.Country)
	f.City = strings.TrimSpace(f.City)

	err := s.validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "form", Message: i18n.T(s.locale, "form.message.error")}}
	}

	byField := make(map[string]domain.FieldError, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if _, seen := byField[field]; seen {
			continue
		}
		byField[field] = domain.FieldError{Field: field, Message: s.messageFor(field, e.Tag())}
	}

	out := make([]domain.FieldError, 0, len(byField))
	for _, field := range fieldOrder {
		if fe, ok := byField[field]; ok {
			out = append(out, fe)
			delete(byField, field)
		}
	}
	for _, fe := range byField {
		out = append(out, fe)
	}
	return out
}

// messageFor resolves the message captured at construction for a field/tag
// pair. Only email distinguishes between its rules; every other field carries
// a single message regardless of which sub-check failed.
func (s *Schema) messageFor(field, tag string) string {
	if field == "email" {
		if tag == "email" {
			return s.messages["email.email"]
		}
		return s.messages["email.required"]
	}
	if msg, ok := s.messages[field]; ok {
		return msg
	}
	return i18n.T(s.locale, "form.message.error")
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
