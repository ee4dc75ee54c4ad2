package validation_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/internal/validation"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// validForm returns a form that passes every rule.
func validForm() domain.ContactForm {
	f := domain.NewContactForm()
	f.Name = "Ada"
	f.Surname = "Lovelace"
	f.Phone = "5551234567"
	f.Email = "ada@example.com"
	f.Country = "Türkiye"
	f.City = "İstanbul"
	f.ResidenceType = "2+1"
	f.HowDidYouHearAboutUs = "instagram"
	f.Consent = true
	f.ConsentElectronicMessage = true
	f.ConsentSms = true
	return f
}

func errorFields(errs []domain.FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidFormPasses(t *testing.T) {
	schema := validation.NewSchema("en")
	form := validForm()
	require.Nil(t, schema.Validate(&form))
}

func TestConsentRequired(t *testing.T) {
	schema := validation.NewSchema("en")

	// Whatever else is filled in, consent=false must fail on consent.
	form := validForm()
	form.Consent = false
	errs := schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "consent", errs[0].Field)

	// And also on an otherwise empty form.
	empty := domain.NewContactForm()
	assert.Contains(t, errorFields(schema.Validate(&empty)), "consent")
}

func TestElectronicMessageNeedsChannel(t *testing.T) {
	schema := validation.NewSchema("en")

	form := validForm()
	form.ConsentSms = false
	form.ConsentEmail = false
	form.ConsentPhone = false

	errs := schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "consentElectronicMessage", errs[0].Field)

	// Any one channel satisfies the refinement.
	for _, set := range []func(*domain.ContactForm){
		func(f *domain.ContactForm) { f.ConsentSms = true },
		func(f *domain.ContactForm) { f.ConsentEmail = true },
		func(f *domain.ContactForm) { f.ConsentPhone = true },
	} {
		f := form
		set(&f)
		assert.Nil(t, schema.Validate(&f))
	}
}

func TestPhoneNumberingPlan(t *testing.T) {
	schema := validation.NewSchema("en")

	cases := []struct {
		phone       string
		countryCode string
		valid       bool
	}{
		{"5551234567", "90", true},
		{"123", "90", false},
		{"", "90", false},
		{"5551234567", "", false},
	}

	for _, tc := range cases {
		form := validForm()
		form.Phone = tc.phone
		form.CountryCode = tc.countryCode

		errs := schema.Validate(&form)
		if tc.valid {
			assert.Nil(t, errs, "phone=%q code=%q", tc.phone, tc.countryCode)
		} else {
			require.Len(t, errs, 1, "phone=%q code=%q", tc.phone, tc.countryCode)
			assert.Equal(t, "phone", errs[0].Field)
		}
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validation.ValidPhone("5551234567", "90"))
	assert.False(t, validation.ValidPhone("123", "90"))
}

func TestNameRules(t *testing.T) {
	schema := validation.NewSchema("en")

	form := validForm()
	form.Name = "A" // below minimum length
	errs := schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	form.Name = "Ada1" // digits rejected
	errs = schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	form.Name = "Gülşah" // Turkish letters allowed
	assert.Nil(t, schema.Validate(&form))

	form.Name = "   " // whitespace only counts as empty
	errs = schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestEmailMessages(t *testing.T) {
	schema := validation.NewSchema("en")

	form := validForm()
	form.Email = ""
	errs := schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, i18n.T("en", "form.input.email.required"), errs[0].Message)

	form.Email = "not-an-email"
	errs = schema.Validate(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, i18n.T("en", "form.input.email.invalid"), errs[0].Message)
}

func TestMessagesFollowSchemaLocale(t *testing.T) {
	form := domain.NewContactForm()

	en := validation.NewSchema("en").Validate(&form)
	tr := validation.NewSchema("tr").Validate(&form)
	require.NotEmpty(t, en)
	require.Equal(t, len(en), len(tr))

	assert.Equal(t, i18n.T("en", "form.input.name.required"), en[0].Message)
	assert.Equal(t, i18n.T("tr", "form.input.name.required"), tr[0].Message)
	assert.NotEqual(t, en[0].Message, tr[0].Message)
}

func TestErrorsCollectedPerFieldInFormOrder(t *testing.T) {
	schema := validation.NewSchema("en")

	form := domain.NewContactForm()
	errs := schema.Validate(&form)

	assert.Equal(t, []string{
		"name", "surname", "email", "country", "city",
		"residenceType", "howDidYouHearAboutUs", "phone", "consent", "consentElectronicMessage",
	}, errorFields(errs))
}
