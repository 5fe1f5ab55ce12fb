package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "fixflow/internal/interfaces/http/handlers/ticket"
	"fixflow/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	// Tracking numbers contain a slash (TK-12/25), so they travel as query
	// values and request bodies rather than path segments.
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.GetTicket)
		tickets.POST("/convert", config.TicketHandler.ConvertTicket)
	}
}
