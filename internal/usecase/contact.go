package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/internal/validation"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/lead"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/logger"
)

type contactUsecase struct {
	client lead.Client

	mu      sync.Mutex
	schemas map[string]*validation.Schema
}

// NewContactUsecase creates the contact submission pipeline backed by the
// given lead client.
func NewContactUsecase(client lead.Client) domain.ContactUsecase {
	return &contactUsecase{
		client:  client,
		schemas: make(map[string]*validation.Schema),
	}
}

// schemaFor returns the validation schema for a locale, building it on first
// use. Schemas capture their messages at construction, so one instance per
// locale is kept for the process lifetime.
func (uc *contactUsecase) schemaFor(locale string) *validation.Schema {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.schemas[locale]; ok {
		return s
	}
	s := validation.NewSchema(locale)
	uc.schemas[locale] = s
	return s
}

// SubmitLead validates the form and performs a single submission attempt.
// Nothing escapes this boundary: transport errors, server rejections and
// unexpected panics all come back as a failed SubmissionResult.
func (uc *contactUsecase) SubmitLead(ctx context.Context, form *domain.ContactForm, meta domain.SubmissionMeta) (result *domain.SubmissionResult, fieldErrs []domain.FieldError) {
	locale := strings.ToLower(meta.Locale)
	if !i18n.IsSupported(locale) {
		locale = i18n.MatchLocale(meta.Locale)
	}
	meta.Locale = locale

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("panic during lead submission", "panic", r)
			result = &domain.SubmissionResult{Success: false, Message: i18n.T(locale, "form.message.error")}
			fieldErrs = nil
		}
	}()

	if errs := uc.schemaFor(locale).Validate(form); len(errs) > 0 {
		return nil, errs
	}

	res, err := uc.client.Submit(ctx, serializeLead(form, meta))
	if err != nil {
		logger.Log.Error("lead submission failed", "error", err)
		return &domain.SubmissionResult{Success: false, Message: i18n.T(locale, "form.message.error")}, nil
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = i18n.T(locale, "form.message.error")
		}
		logger.Log.Warn("lead rejected by endpoint", "message", res.Message)
		return &domain.SubmissionResult{Success: false, Message: msg}, nil
	}

	msg := res.Message
	if msg == "" {
		msg = i18n.T(locale, "form.message.success")
	}
	logger.Log.Info("lead submitted", "locale", locale)
	return &domain.SubmissionResult{Success: true, Message: msg}, nil
}

// serializeLead flattens the form and its metadata into the transport field
// set. Booleans serialize as their string form; the delimited multi-select
// encodings cross the wire untouched. Campaign parameters are read from the
// page URL here, at submit time.
func serializeLead(form *domain.ContactForm, meta domain.SubmissionMeta) map[string]string {
	utmSource, utmMedium, utmCampaign := campaignParams(meta.PageURL)

	return map[string]string{
		"name":                     form.Name,
		"surname":                  form.Surname,
		"countryCode":              form.CountryCode,
		"phone":                    form.Phone,
		"email":                    form.Email,
		"country":                  form.Country,
		"city":                     form.City,
		"residenceType":            form.ResidenceType,
		"howDidYouHearAboutUs":     form.HowDidYouHearAboutUs,
		"message":                  form.Message,
		"consent":                  strconv.FormatBool(form.Consent),
		"consentElectronicMessage": strconv.FormatBool(form.ConsentElectronicMessage),
		"consentSms":               strconv.FormatBool(form.ConsentSms),
		"consentEmail":             strconv.FormatBool(form.ConsentEmail),
		"consentPhone":             strconv.FormatBool(form.ConsentPhone),
		"language":                 meta.Locale,
		"utm_source":               utmSource,
		"utm_medium":               utmMedium,
		"utm_campaign":             utmCampaign,
		"url":                      meta.PageURL,
	}
}

func campaignParams(pageURL string) (source, medium, campaign string) {
	if pageURL == "" {
		return "", "", ""
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", "", ""
	}
	q := u.Query()
	return q.Get("utm_source"), q.Get("utm_medium"), q.Get("utm_campaign")
}
