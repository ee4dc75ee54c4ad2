package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justdesigndev/citys-residences-contact-form/internal/delivery/http/response"
	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/apperror"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
)

// SubmitContactRequest is the contact form payload plus the page context the
// frontend captured at submit time.
type SubmitContactRequest struct {
	domain.ContactForm
	Language string `json:"language"`
	URL      string `json:"url"`
}

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submitLimiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	if submitLimiter != nil {
		public.POST("/contact", submitLimiter, handler.SubmitContact)
	} else {
		public.POST("/contact", handler.SubmitContact)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact-form submission and forward it to the lead endpoint. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      SubmitContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Lowercase before the support check so "EN" resolves to the same
	// catalog entries as "en".
	locale := strings.ToLower(req.Language)
	if !i18n.IsSupported(locale) {
		locale = i18n.MatchLocale(c.GetHeader("Accept-Language"))
	}

	meta := domain.SubmissionMeta{
		Locale:  locale,
		PageURL: req.URL,
	}

	result, fieldErrs := h.contactUC.SubmitLead(c.Request.Context(), &req.ContactForm, meta)
	if len(fieldErrs) > 0 {
		response.Error(c, http.StatusUnprocessableEntity, i18n.T(locale, "form.message.error"), fieldErrs)
		return
	}

	if !result.Success {
		response.Error(c, http.StatusBadGateway, result.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}
