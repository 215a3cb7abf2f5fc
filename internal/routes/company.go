package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workorder-system/internal/controllers"
	"workorder-system/internal/repositories"
	"workorder-system/internal/services"
)

func runCompanyRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger) {
	companyRepository := repositories.NewCompanyRepository(dbConn, logger)
	companyService := services.NewCompanyService(companyRepository, cacheRepo, logger)
	companyCtrl := controllers.NewCompanyController(companyService, logger)

	secureGroup.GET("/companies", companyCtrl.GetCompanies)
	secureGroup.GET("/companies/:id", companyCtrl.FindCompany)
	secureGroup.POST("/companies", companyCtrl.CreateCompany)
	secureGroup.PUT("/companies/:id", companyCtrl.UpdateCompany)
	secureGroup.DELETE("/companies/:id", companyCtrl.DeleteCompany)
}
