package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookerly/handlers"
	"bookerly/middleware"
)

// RegisterPublicRoutes registers the unauthenticated booking-page endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		// Slug resolution lives on its own segment; gin's router cannot mix a
		// static child with the :id wildcard under /links.
		api.GET("/booking-pages/:slug", hb.Link.ResolveSlugHandler)
		api.GET("/links/:id/availability", hb.Availability.MonthAvailabilityHandler)
		api.GET("/links/:id/slots", hb.Availability.DaySlotsHandler)

		api.POST("/bookings", hb.Booking.CreateBookingHandler)
		api.GET("/bookings/token/:token", hb.Booking.GetBookingByTokenHandler)
		api.POST("/bookings/token/:token/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/bookings/token/:token/reschedule", hb.Booking.RescheduleBookingHandler)
	}
}

// RegisterAdminRoutes registers the management endpoints behind Basic Auth.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminBasicAuthMiddleware())

		api.POST("/templates", hb.Template.CreateTemplateHandler)
		api.GET("/templates", hb.Template.ListTemplatesHandler)
		api.GET("/templates/:id", hb.Template.GetTemplateHandler)
		api.PUT("/templates/:id", hb.Template.UpdateTemplateHandler)
		api.DELETE("/templates/:id", hb.Template.DeleteTemplateHandler)

		api.POST("/links", hb.Link.CreateLinkHandler)
		api.GET("/links", hb.Link.ListLinksHandler)
		api.GET("/links/:id", hb.Link.GetLinkHandler)
		api.PUT("/links/:id", hb.Link.UpdateLinkHandler)
		api.DELETE("/links/:id", hb.Link.DeleteLinkHandler)
		api.GET("/links/:id/bookings", hb.Link.ListLinkBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The route table is resolved once at startup.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
