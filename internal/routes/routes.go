package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/repositories"
	"workorder-system/pkg/config"
	"workorder-system/pkg/middleware"
	"workorder-system/pkg/service"
)

// InitRouter wires every resource router under /api. Login and token
// refresh stay public; everything else requires a valid access token.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	txManager := repositories.NewTxManager(dbConn)

	runAuthRouter(api, dbConn, jwtSvc, logger)

	secureGroup := api.Group("", authMW.Auth)
	runCompanyRouter(secureGroup, dbConn, cacheRepo, logger)
	runEmployeeRouter(secureGroup, dbConn, cacheRepo, logger)
	runServiceOrderRouter(secureGroup, dbConn, txManager, cacheRepo, logger)
	runDashboardRouter(secureGroup, dbConn, cacheRepo, cfg, logger)
	runReportRouter(secureGroup, dbConn, txManager, cacheRepo, logger)
}
