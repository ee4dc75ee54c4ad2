package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/justdesigndev/citys-residences-contact-form/config"
	"github.com/justdesigndev/citys-residences-contact-form/internal/delivery/http/middleware"
	"github.com/justdesigndev/citys-residences-contact-form/internal/delivery/http/response"
	"github.com/justdesigndev/citys-residences-contact-form/internal/domain"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	LocationUC domain.LocationUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so even rejected requests
	// carry the right headers.
	r.Use(middleware.CORSMiddleware(deps.Config.ExtraCORSOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// All routes are public: this service fronts a marketing site.
	NewContactHandler(v1, deps.ContactUC, middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig()))
	NewLocationHandler(v1, deps.LocationUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
