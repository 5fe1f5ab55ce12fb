package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fixflow/internal/application/tracking/services"
	"fixflow/internal/application/tracking/usecases"
	"fixflow/internal/infrastructure/auth"
	"fixflow/internal/infrastructure/config"
	"fixflow/internal/infrastructure/ratelimit"
	"fixflow/internal/infrastructure/repository"
	tickethandlers "fixflow/internal/interfaces/http/handlers/ticket"
	trackinghandlers "fixflow/internal/interfaces/http/handlers/tracking"
	"fixflow/internal/interfaces/http/middleware"
	"fixflow/internal/interfaces/http/routes"
	"fixflow/internal/shared/db"
	"fixflow/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a gin
// engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	ticketRepo := repository.NewTicketRepository(gormDB)
	workOrderRepo := repository.NewWorkOrderRepository(gormDB)
	quoteRepo := repository.NewQuoteRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	resolver := services.NewConversionResolver(ticketRepo, workOrderRepo)

	publicLookupUC := usecases.NewPublicLookupUseCase(ticketRepo, workOrderRepo, quoteRepo, resolver, log)
	dashboardUC := usecases.NewGetDashboardUseCase(ticketRepo, workOrderRepo, quoteRepo, log)
	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, txManager, log)
	convertTicketUC := usecases.NewConvertTicketUseCase(ticketRepo, workOrderRepo, txManager, log)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, resolver, log)

	trackingHandler := trackinghandlers.NewTrackingHandler(publicLookupUC, dashboardUC)
	ticketHandler := tickethandlers.NewTicketHandler(createTicketUC, convertTicketUC, getTicketUC)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	lookupLimit := middleware.LookupRateLimit(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.Lookup.RequestsPerMinute,
		RequestsPerHour:   cfg.Lookup.RequestsPerHour,
	}, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTrackingRoutes(engine, &routes.TrackingRouteConfig{
		TrackingHandler: trackingHandler,
		AuthMiddleware:  authMiddleware,
		LookupRateLimit: lookupLimit,
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
