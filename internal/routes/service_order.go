package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
)

func runServiceOrderRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger) {
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
	orderCtrl := controllers.NewServiceOrderController(orderService, logger)

	secureGroup.GET("/service-orders", orderCtrl.GetServiceOrders)
	secureGroup.GET("/service-orders/:id", orderCtrl.FindServiceOrder)
	secureGroup.POST("/service-orders", orderCtrl.CreateServiceOrder)
	secureGroup.PUT("/service-orders/:id", orderCtrl.UpdateServiceOrder)
	secureGroup.PATCH("/service-orders/:id/status", orderCtrl.TransitionStatus)
	secureGroup.DELETE("/service-orders/:id", orderCtrl.DeleteServiceOrder)
}
