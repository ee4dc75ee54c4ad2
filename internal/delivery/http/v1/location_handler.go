package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/apperror"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
)

type LocationHandler struct {
	locationUC domain.LocationUsecase
}

// NewLocationHandler registers the reference-data routes. Both return bare
// JSON arrays: they feed select inputs directly.
func NewLocationHandler(public *gin.RouterGroup, locationUC domain.LocationUsecase) {
	handler := &LocationHandler{
		locationUC: locationUC,
	}

	public.GET("/countries", handler.ListCountries)
	public.GET("/cities", handler.ListCities)
}

// ListCountries godoc
// @Summary      List Countries
// @Description  Country reference data with display names localized for the requested language, Turkey first.
// @Tags         location
// @Produce      json
// @Param        lang  query     string  false  "Locale code (defaults to Accept-Language)"
// @Success      200   {array}   domain.Country
// @Router       /countries [get]
func (h *LocationHandler) ListCountries(c *gin.Context) {
	locale := h.locale(c)
	c.JSON(http.StatusOK, h.locationUC.Countries(c.Request.Context(), locale))
}

// ListCities godoc
// @Summary      List Cities
// @Description  Administrative regions of a country, used as the city option set. Unknown codes yield an empty array.
// @Tags         location
// @Produce      json
// @Param        countryCode  query     string  true   "ISO2 country code"
// @Param        lang         query     string  false  "Locale code (defaults to Accept-Language)"
// @Success      200          {array}   domain.Region
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /cities [get]
func (h *LocationHandler) ListCities(c *gin.Context) {
	countryCode := c.Query("countryCode")
	if countryCode == "" {
		c.Error(apperror.BadRequest("countryCode is required"))
		return
	}

	regions, err := h.locationUC.Regions(c.Request.Context(), countryCode, h.locale(c))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.JSON(http.StatusOK, regions)
}

func (h *LocationHandler) locale(c *gin.Context) string {
	if lang := strings.ToLower(c.Query("lang")); i18n.IsSupported(lang) {
		return lang
	}
	return i18n.MatchLocale(c.GetHeader("Accept-Language"))
}
