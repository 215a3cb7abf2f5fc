package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/internal/services"
	"workorder-system/pkg/utils"
)

var orderExportHeaders = []interface{}{
	"Code", "Company", "Service Type", "Priority", "Status", "Description",
	"Assigned Employees", "Opened At", "Expected Completion", "Completed At", "Closing Notes",
}

type ReportController struct {
	service services.ReportServiceInterface
	logger  *zap.Logger
}

func NewReportController(service services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{service: service, logger: logger}
}

// ExportOrders streams the filtered order list as an XLSX attachment.
func (c *ReportController) ExportOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	orders, err := c.service.GetOrdersForExport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return c.respondWithXLSX(ctx, orders)
}

func orderToRow(order dto.ServiceOrderDTO) []interface{} {
	company := ""
	if order.Company != nil {
		company = order.Company.TradeName
	}
	employees := make([]string, 0, len(order.Employees))
	for _, employee := range order.Employees {
		employees = append(employees, employee.FullName)
	}
	expected := ""
	if order.ExpectedCompletionAt != nil {
		expected = *order.ExpectedCompletionAt
	}
	completed := ""
	if order.CompletedAt != nil {
		completed = *order.CompletedAt
	}
	closingNotes := ""
	if order.ClosingNotes != nil {
		closingNotes = *order.ClosingNotes
	}
	return []interface{}{
		order.Code, company, order.ServiceTypeLabel, order.Priority, order.StatusLabel,
		order.Description, strings.Join(employees, ", "), order.OpenedAt, expected, completed, closingNotes,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, orders []dto.ServiceOrderDTO) error {
	f := excelize.NewFile()
	sheet := "Service Orders"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &orderExportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, order := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderToRow(order)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "F", "F", 50)
	f.SetColWidth(sheet, "G", "G", 35)
	f.SetColWidth(sheet, "H", "K", 20)

	fileName := fmt.Sprintf("service_orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
