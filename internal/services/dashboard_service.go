package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	"workorder-system/internal/repositories"
)

const dashboardStatsCacheKey = "dashboard:stats"

const defaultRecentOrdersLimit = 5

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	GetRecentOrders(ctx context.Context, limit int) ([]dto.RecentOrderDTO, error)
}

type DashboardService struct {
	orderRepo    repositories.ServiceOrderRepositoryInterface
	employeeRepo repositories.EmployeeRepositoryInterface
	companyRepo  repositories.CompanyRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	cacheTTL     time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

func NewDashboardService(
	orderRepo repositories.ServiceOrderRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, dashboardStatsCacheKey); err == nil && cached != "" {
			var stats dto.DashboardStatsDTO
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.logger.Warn("discarding unreadable dashboard cache entry")
		}
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.GetAllCompanies(ctx)
	if err != nil {
		return nil, err
	}

	stats := BuildDashboardStats(orders, employees, companies, s.now())

	if s.cacheRepo != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cacheRepo.Set(ctx, dashboardStatsCacheKey, payload, s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *DashboardService) GetRecentOrders(ctx context.Context, limit int) ([]dto.RecentOrderDTO, error) {
	if limit <= 0 {
		limit = defaultRecentOrdersLimit
	}
	orders, err := s.orderRepo.GetRecentOrders(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RecentOrderDTO, 0, len(orders))
	for _, order := range orders {
		item := dto.RecentOrderDTO{
			ID:               order.ID.String(),
			Code:             order.Code,
			ServiceTypeLabel: order.ServiceType.Label(),
			Status:           string(order.Status),
			StatusLabel:      order.Status.Label(),
			Priority:         string(order.Priority),
			OpenedAt:         order.OpenedAt.Format(timeLayout),
		}
		if order.Company != nil {
			item.CompanyTradeName = order.Company.TradeName
		}
		result = append(result, item)
	}
	return result, nil
}

// BuildDashboardStats computes every dashboard metric from one pass
// over the full order set. It is a pure function of its inputs, so an
// empty collection yields zero counts and empty distributions.
func BuildDashboardStats(orders []entities.ServiceOrder, employees []entities.Employee, companies []entities.Company, now time.Time) *dto.DashboardStatsDTO {
	stats := &dto.DashboardStatsDTO{
		BySpecialty: []dto.DistributionItemDTO{},
		ByStatus:    []dto.DistributionItemDTO{},
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	specialtyIndex := make(map[entities.Specialty]int)
	statusIndex := make(map[entities.OrderStatus]int)

	for _, order := range orders {
		switch order.Status {
		case entities.OrderStatusOpen:
			stats.OpenCount++
		case entities.OrderStatusInProgress:
			stats.InProgressCount++
		}

		// Keyed on updated_at rather than completed_at: an edit to an
		// already completed order this month counts it again.
		if order.Status == entities.OrderStatusCompleted && !order.UpdatedAt.Before(monthStart) {
			stats.CompletedThisMonth++
		}

		if order.Overdue(now) {
			stats.OverdueCount++
		}

		if idx, ok := specialtyIndex[order.ServiceType]; ok {
			stats.BySpecialty[idx].Count++
		} else {
			specialtyIndex[order.ServiceType] = len(stats.BySpecialty)
			stats.BySpecialty = append(stats.BySpecialty, dto.DistributionItemDTO{
				Key:   string(order.ServiceType),
				Label: order.ServiceType.Label(),
				Count: 1,
			})
		}

		if idx, ok := statusIndex[order.Status]; ok {
			stats.ByStatus[idx].Count++
		} else {
			statusIndex[order.Status] = len(stats.ByStatus)
			stats.ByStatus = append(stats.ByStatus, dto.DistributionItemDTO{
				Key:   string(order.Status),
				Label: order.Status.Label(),
				Count: 1,
				Color: order.Status.Color(),
			})
		}
	}

	for _, employee := range employees {
		if employee.Status == entities.EntityStatusActive {
			stats.ActiveEmployeeCount++
		}
	}
	stats.CompanyCount = len(companies)

	return stats
}
