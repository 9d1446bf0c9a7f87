package routes

import (
	"net/http"
	"time"

	"cooptaxi/handlers"
	"cooptaxi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route registrations need.
type HandlerBundle struct {
	Auth      *handlers.AuthHandler
	Fleet     *handlers.FleetHandler
	Assistant *handlers.AssistantHandler
	Settings  *handlers.SettingsHandler
}

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterFleetRoutes registers the service-record endpoints.
func RegisterFleetRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("", hb.Fleet.ListServicesHandler)
		api.POST("", hb.Fleet.AddServiceHandler)
		api.DELETE("/:id", hb.Fleet.DeleteServiceHandler)
	}
}

// RegisterAssistantRoutes registers the chat endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("/conversations", hb.Assistant.GetConversationsHandler)
		api.POST("/send", hb.Assistant.SendHandler)
	}
}

// RegisterSettingsRoutes registers the settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("", hb.Settings.GetSettingsHandler)
		api.PUT("", hb.Settings.SaveSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the Co-op Taxi dashboard"})
	})
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterFleetRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterHealthRoute(r)
}
