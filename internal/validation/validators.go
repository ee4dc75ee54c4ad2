package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
)

// Letters and spaces only, Turkish alphabet included. Mirrors the input
// filtering the site applies while typing.
var personNameRegex = regexp.MustCompile(`^[a-zA-ZğĞıİöÖüÜşŞçÇ\s]+$`)

// personName rejects digits and symbols in name fields.
func personName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // required is a separate rule
	}
	return personNameRegex.MatchString(val)
}

// ValidPhone reports whether the national digits form a valid number under
// the numbering plan of the given dial code (e.g. digits "5551234567" with
// dial code "90"). Validity is delegated to libphonenumber metadata, not a
// length or shape heuristic.
func ValidPhone(digits, dialCode string) bool {
	if digits == "" || dialCode == "" {
		return false
	}
	num, err := phonenumbers.Parse("+"+dialCode+digits, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// contactFormRefinements carries the cross-field rules: phone validity
// depends on the selected dial code, and an electronic-message consent must
// be backed by at least one channel sub-consent. Both report on a single
// field regardless of which sub-check failed.
func contactFormRefinements(sl validator.StructLevel) {
	form := sl.Current().Interface().(domain.ContactForm)

	if !ValidPhone(form.Phone, form.CountryCode) {
		sl.ReportError(form.Phone, "phone", "Phone", "phone", "")
	}

	if form.ConsentElectronicMessage && !(form.ConsentSms || form.ConsentEmail || form.ConsentPhone) {
		sl.ReportError(form.ConsentElectronicMessage,
			"consentElectronicMessage", "ConsentElectronicMessage", "consent_channel", "")
	}
}
