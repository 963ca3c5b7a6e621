package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leave-ledger-api/internal/handler/api"
	"leave-ledger-api/internal/handler/middleware"
	"leave-ledger-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// IdempotencyMiddleware guards POST /api/v1/leave/apply; nil when Redis is
// not configured.
type IdempotencyMiddleware gin.HandlerFunc

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	leaveHandler *api.LeaveHandler,
	balanceHandler *api.BalanceHandler,
	idempotency IdempotencyMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, leaveHandler, balanceHandler, idempotency)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	leaveHandler *api.LeaveHandler,
	balanceHandler *api.BalanceHandler,
	idempotency IdempotencyMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		leaveGroup := apiGroup.Group("/leave")
		{
			applyMw := []gin.HandlerFunc{}
			if idempotency != nil {
				applyMw = append(applyMw, gin.HandlerFunc(idempotency))
			}

			addRoutes(leaveGroup, []route{
				{Method: http.MethodPost, Path: "/apply", Handler: leaveHandler.Submit, Mw: applyMw},
				{Method: http.MethodGet, Path: "/requests", Handler: leaveHandler.List},
				{Method: http.MethodGet, Path: "/requests/:id", Handler: leaveHandler.Get},
				{Method: http.MethodGet, Path: "/balances/:employeeId", Handler: balanceHandler.Get},
				{Method: http.MethodPost, Path: "/balances", Handler: balanceHandler.Grant},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// Per-route middleware joins gin's native chain so that c.Next() inside a
// middleware runs the downstream handler before the middleware resumes.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
