package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"workorder-system/internal/entities"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildDashboardStats_EmptyInputs(t *testing.T) {
	stats := BuildDashboardStats(nil, nil, nil, fixedNow)

	assert.Zero(t, stats.OpenCount)
	assert.Zero(t, stats.InProgressCount)
	assert.Zero(t, stats.CompletedThisMonth)
	assert.Zero(t, stats.OverdueCount)
	assert.Zero(t, stats.ActiveEmployeeCount)
	assert.Zero(t, stats.CompanyCount)
	assert.Empty(t, stats.BySpecialty)
	assert.Empty(t, stats.ByStatus)
}

func TestBuildDashboardStats_Counts(t *testing.T) {
	thisMonth := time.Date(fixedNow.Year(), fixedNow.Month(), 5, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	orders := []entities.ServiceOrder{
		{Status: entities.OrderStatusOpen, ServiceType: entities.SpecialtyElectrical},
		{Status: entities.OrderStatusOpen, ServiceType: entities.SpecialtyHydraulic},
		{Status: entities.OrderStatusCompleted, ServiceType: entities.SpecialtyElectrical, UpdatedAt: thisMonth},
		{Status: entities.OrderStatusCompleted, ServiceType: entities.SpecialtyPainting, UpdatedAt: lastMonth},
		{Status: entities.OrderStatusInProgress, ServiceType: entities.SpecialtyElectrical},
	}
	employees := []entities.Employee{
		{Status: entities.EntityStatusActive},
		{Status: entities.EntityStatusActive},
		{Status: entities.EntityStatusInactive},
	}
	companies := []entities.Company{{}, {}}

	stats := BuildDashboardStats(orders, employees, companies, fixedNow)

	assert.Equal(t, 2, stats.OpenCount)
	assert.Equal(t, 1, stats.InProgressCount)
	assert.Equal(t, 1, stats.CompletedThisMonth, "only completions updated this month count")
	assert.Equal(t, 2, stats.ActiveEmployeeCount)
	assert.Equal(t, 2, stats.CompanyCount)
}

func TestBuildDashboardStats_CompletedThisMonthUsesUpdatedAt(t *testing.T) {
	// An already completed order edited this month counts, no matter
	// when it was actually completed.
	longAgo := fixedNow.AddDate(-1, 0, 0)
	editedThisMonth := time.Date(fixedNow.Year(), fixedNow.Month(), 2, 0, 0, 0, 0, time.UTC)

	orders := []entities.ServiceOrder{
		{Status: entities.OrderStatusCompleted, CompletedAt: timePtr(longAgo), UpdatedAt: editedThisMonth},
	}

	stats := BuildDashboardStats(orders, nil, nil, fixedNow)
	assert.Equal(t, 1, stats.CompletedThisMonth)
}

func TestBuildDashboardStats_Overdue(t *testing.T) {
	yesterday := fixedNow.AddDate(0, 0, -1)
	tomorrow := fixedNow.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		order entities.ServiceOrder
		want  int
	}{
		{
			name:  "in progress past due",
			order: entities.ServiceOrder{Status: entities.OrderStatusInProgress, ExpectedCompletionAt: timePtr(yesterday)},
			want:  1,
		},
		{
			name:  "paused past due",
			order: entities.ServiceOrder{Status: entities.OrderStatusPaused, ExpectedCompletionAt: timePtr(yesterday)},
			want:  1,
		},
		{
			name:  "completed past due is not overdue",
			order: entities.ServiceOrder{Status: entities.OrderStatusCompleted, ExpectedCompletionAt: timePtr(yesterday)},
			want:  0,
		},
		{
			name:  "cancelled past due is not overdue",
			order: entities.ServiceOrder{Status: entities.OrderStatusCancelled, ExpectedCompletionAt: timePtr(yesterday)},
			want:  0,
		},
		{
			name:  "due in the future",
			order: entities.ServiceOrder{Status: entities.OrderStatusOpen, ExpectedCompletionAt: timePtr(tomorrow)},
			want:  0,
		},
		{
			name:  "no due date",
			order: entities.ServiceOrder{Status: entities.OrderStatusOpen},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := BuildDashboardStats([]entities.ServiceOrder{tt.order}, nil, nil, fixedNow)
			assert.Equal(t, tt.want, stats.OverdueCount)
		})
	}
}

func TestBuildDashboardStats_DistributionOrderingAndColors(t *testing.T) {
	orders := []entities.ServiceOrder{
		{Status: entities.OrderStatusPaused, ServiceType: entities.SpecialtyMasonry},
		{Status: entities.OrderStatusOpen, ServiceType: entities.SpecialtyElectrical},
		{Status: entities.OrderStatusPaused, ServiceType: entities.SpecialtyElectrical},
		{Status: entities.OrderStatusCompleted, ServiceType: entities.SpecialtyMasonry},
	}

	stats := BuildDashboardStats(orders, nil, nil, fixedNow)

	// Distribution entries appear in first-seen scan order.
	require.Len(t, stats.BySpecialty, 2)
	assert.Equal(t, "masonry", stats.BySpecialty[0].Key)
	assert.Equal(t, 2, stats.BySpecialty[0].Count)
	assert.Equal(t, "electrical", stats.BySpecialty[1].Key)
	assert.Equal(t, 2, stats.BySpecialty[1].Count)

	require.Len(t, stats.ByStatus, 3)
	assert.Equal(t, "paused", stats.ByStatus[0].Key)
	assert.Equal(t, 2, stats.ByStatus[0].Count)
	assert.Equal(t, "open", stats.ByStatus[1].Key)
	assert.Equal(t, "completed", stats.ByStatus[2].Key)

	// Statuses carry their fixed chart colors, with a fallback for any
	// status that has none.
	assert.Equal(t, entities.DefaultStatusColor, stats.ByStatus[0].Color)
	assert.Equal(t, "#3b82f6", stats.ByStatus[1].Color)
	assert.Equal(t, "#10b981", stats.ByStatus[2].Color)
}

func TestDashboardService_GetStatsCachesResult(t *testing.T) {
	scans := 0
	orderRepo := &mockOrderRepo{
		getAllOrders: func(ctx context.Context) ([]entities.ServiceOrder, error) {
			scans++
			return []entities.ServiceOrder{{Status: entities.OrderStatusOpen, ServiceType: entities.SpecialtyOther}}, nil
		},
	}
	employeeRepo := &mockEmployeeRepo{
		getAll: func(ctx context.Context) ([]entities.Employee, error) {
			return []entities.Employee{{Status: entities.EntityStatusActive}}, nil
		},
	}
	companyRepo := &mockCompanyRepo{
		getAll: func(ctx context.Context) ([]entities.Company, error) {
			return []entities.Company{{}}, nil
		},
	}
	cache := newMockCache()

	svc := NewDashboardService(orderRepo, employeeRepo, companyRepo, cache, time.Second*30, zaptest.NewLogger(t))

	first, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.OpenCount)
	assert.Equal(t, 1, scans)

	second, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, scans, "second call must be served from cache")
}

func TestDashboardService_GetRecentOrders(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getRecent: func(ctx context.Context, limit int) ([]entities.ServiceOrder, error) {
			assert.Equal(t, defaultRecentOrdersLimit, limit)
			return []entities.ServiceOrder{
				{
					Code:        "OS-2025-1234",
					ServiceType: entities.SpecialtyElectrical,
					Status:      entities.OrderStatusOpen,
					Priority:    entities.PriorityHigh,
					OpenedAt:    fixedNow,
					Company:     &entities.Company{TradeName: "Jardim Azul"},
				},
			}, nil
		},
	}

	svc := NewDashboardService(orderRepo, &mockEmployeeRepo{}, &mockCompanyRepo{}, nil, time.Second*30, zaptest.NewLogger(t))

	orders, err := svc.GetRecentOrders(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "OS-2025-1234", orders[0].Code)
	assert.Equal(t, "Jardim Azul", orders[0].CompanyTradeName)
	assert.Equal(t, "Electrical", orders[0].ServiceTypeLabel)
	assert.Equal(t, "Open", orders[0].StatusLabel)
}
