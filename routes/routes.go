package routes

import (
	"net/http"
	"time"

	"sagashealth/handlers"
	"sagashealth/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/categories", hb.GetServiceCategories)
		api.GET("/map", hb.GetServiceMap)
		api.GET("/:id", hb.GetServiceByID)
	}
}

// RegisterQuestionnaireRoutes registers the eligibility wizard endpoints.
func RegisterQuestionnaireRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking/questionnaire")
	{
		api.POST("", hb.StartQuestionnaire)
		api.GET("", hb.GetQuestionnaire)
		api.PUT("/answer", hb.AnswerQuestionnaire)
		api.POST("/next", hb.AdvanceQuestionnaire)
		api.POST("/back", hb.RewindQuestionnaire)
		api.POST("/complete", hb.CompleteQuestionnaire)
		api.DELETE("", hb.CancelQuestionnaire)
	}
}

// RegisterCheckoutRoutes registers the checkout endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.GET("", hb.GetCheckout)
		api.POST("/payment-intent", hb.CreatePaymentIntent)
		api.POST("/card", hb.ConfirmCardPayment)
		api.POST("/hsa", hb.CompleteHSAPayment)
	}
}

// RegisterConfirmationRoutes registers the confirmation endpoints.
func RegisterConfirmationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/confirmation")
	{
		api.GET("", hb.GetConfirmation)
		api.DELETE("", hb.TeardownBooking)
	}
}

// RegisterCertificationRoutes registers the LMN endpoints.
func RegisterCertificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/certification")
	{
		api.GET("/providers", hb.ListHSAProviders)
		api.POST("/lmn", hb.GenerateLMN)
		api.POST("/lmn/submit", hb.SubmitLMN)
		api.GET("/lmn/download", hb.DownloadLMN)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Sagas Health",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterQuestionnaireRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterConfirmationRoutes(r, hb)
	RegisterCertificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
