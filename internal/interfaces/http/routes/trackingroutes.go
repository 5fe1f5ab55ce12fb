package routes

import (
	"github.com/gin-gonic/gin"

	trackinghandlers "fixflow/internal/interfaces/http/handlers/tracking"
	"fixflow/internal/interfaces/http/middleware"
)

type TrackingRouteConfig struct {
	TrackingHandler *trackinghandlers.TrackingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	LookupRateLimit gin.HandlerFunc
}

func SetupTrackingRoutes(engine *gin.Engine, config *TrackingRouteConfig) {
	// Anonymous, rate-limited lookup. POST keeps the email credential out of
	// URLs and access logs.
	engine.POST("/track", config.LookupRateLimit, config.TrackingHandler.Track)

	engine.GET("/dashboard",
		config.AuthMiddleware.RequireAuth(),
		config.TrackingHandler.Dashboard)
}
