package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
)

func runEmployeeRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger) {
	employeeRepository := repositories.NewEmployeeRepository(dbConn, logger)
	employeeService := services.NewEmployeeService(employeeRepository, cacheRepo, logger)
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	secureGroup.GET("/employees", employeeCtrl.GetEmployees)
	secureGroup.GET("/employees/:id", employeeCtrl.FindEmployee)
	secureGroup.POST("/employees", employeeCtrl.CreateEmployee)
	secureGroup.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
	secureGroup.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)
}
