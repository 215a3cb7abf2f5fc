package services

import (
	"context"

	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/pkg/types"
)

type ReportServiceInterface interface {
	GetOrdersForExport(ctx context.Context, filter types.Filter) ([]dto.ServiceOrderDTO, error)
}

type reportService struct {
	orderService ServiceOrderServiceInterface
	logger       *zap.Logger
}

func NewReportService(orderService ServiceOrderServiceInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{orderService: orderService, logger: logger}
}

// GetOrdersForExport returns the full filtered order set, pagination
// disabled, for spreadsheet rendering.
func (s *reportService) GetOrdersForExport(ctx context.Context, filter types.Filter) ([]dto.ServiceOrderDTO, error) {
	filter.WithPagination = false
	filter.Limit = 0
	filter.Offset = 0

	orders, _, err := s.orderService.GetServiceOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return orders, nil
}
