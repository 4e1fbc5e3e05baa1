package handlers

import (
	"controlling_lights/internal/logger"
	"controlling_lights/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	limiter  *ipRateLimiter
}

// RateLimit configures the per-IP limiter applied to every route.
type RateLimit struct {
	RPS   float64
	Burst int
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, rl RateLimit) *Handler {
	return &Handler{
		services: services,
		log:      log,
		limiter:  newIPRateLimiter(rl.RPS, rl.Burst),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.rateLimitMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	router.POST("/auth/sign-in", h.signIn)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket stream, served on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.authMiddleware)
	{
		h.registerLightRoutes(api)
		h.registerGroupRoutes(api)
		h.registerScheduleRoutes(api)
		h.registerStateRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerLightRoutes(api *gin.RouterGroup) {
	lights := api.Group("/lights")
	{
		lights.GET("", h.listLights)
		lights.POST("", h.addLight)
		lights.GET("/:id", h.getLight)
		lights.POST("/:id/on", h.turnOn)
		lights.POST("/:id/off", h.turnOff)
		// Body example: {"brightness":70}
		lights.PUT("/:id/brightness", h.setBrightness)
		// Body example: {"color":"blue"}
		lights.PUT("/:id/color", h.setColor)
		lights.DELETE("/:id", h.deleteLight)
	}
}

func (h *Handler) registerGroupRoutes(api *gin.RouterGroup) {
	groups := api.Group("/groups")
	{
		groups.GET("", h.listGroups)
		groups.POST("", h.createGroup)
		groups.GET("/:id", h.getGroup)
		// Body example: {"action":"on"}
		groups.POST("/:id/control", h.controlGroup)
		groups.POST("/:id/lights", h.addLightToGroup)
		groups.DELETE("/:id/lights/:lightId", h.removeLightFromGroup)
		groups.DELETE("/:id", h.deleteGroup)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	// Body example: {"light_id":1,"at":"2025-08-01T22:00:00Z","action":"off"}
	api.POST("/schedule", h.scheduleAction)
}

func (h *Handler) registerStateRoutes(api *gin.RouterGroup) {
	state := api.Group("/state")
	{
		state.POST("/save", h.saveState)
		state.POST("/load", h.loadState)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
