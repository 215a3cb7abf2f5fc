package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
)

func runReportRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger) {
	orderRepository := repositories.NewServiceOrderRepository(dbConn, logger)
	assignmentRepository := repositories.NewAssignmentRepository(dbConn)
	companyRepository := repositories.NewCompanyRepository(dbConn, logger)
	employeeRepository := repositories.NewEmployeeRepository(dbConn, logger)

	orderService := services.NewServiceOrderService(
		txManager,
		orderRepository,
		assignmentRepository,
		companyRepository,
		employeeRepository,
		cacheRepo,
		services.NewOrderCodeGenerator(),
		logger,
	)
	reportService := services.NewReportService(orderService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/reports/service-orders.xlsx", reportCtrl.ExportOrders)
}
