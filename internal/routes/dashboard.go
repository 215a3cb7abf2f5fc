package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
	"workorder-system/pkg/config"
)

func runDashboardRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, cacheRepo repositories.CacheRepositoryInterface, cfg *config.Config, logger *zap.Logger) {
	orderRepository := repositories.NewServiceOrderRepository(dbConn, logger)
	employeeRepository := repositories.NewEmployeeRepository(dbConn, logger)
	companyRepository := repositories.NewCompanyRepository(dbConn, logger)

	dashboardService := services.NewDashboardService(
		orderRepository,
		employeeRepository,
		companyRepository,
		cacheRepo,
		cfg.Dashboard.CacheTTL,
		logger,
	)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard/stats", dashboardCtrl.GetStats)
	secureGroup.GET("/dashboard/recent-orders", dashboardCtrl.GetRecentOrders)
}
