package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
	"workorder-system/pkg/service"
)

func runAuthRouter(api *echo.Group, dbConn *pgxpool.Pool, jwtSvc service.JWTService, logger *zap.Logger) {
	userRepository := repositories.NewUserRepository(dbConn, logger)
	authService := services.NewAuthService(userRepository, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh-token", authCtrl.RefreshToken)
}
