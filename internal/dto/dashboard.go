package dto

// DistributionItemDTO is one slice of a dashboard chart. Items keep the
// order in which their key was first seen while scanning the orders.
type DistributionItemDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

type DashboardStatsDTO struct {
	OpenCount           int `json:"open_count"`
	InProgressCount     int `json:"in_progress_count"`
	CompletedThisMonth  int `json:"completed_this_month"`
	OverdueCount        int `json:"overdue_count"`
	ActiveEmployeeCount int `json:"active_employee_count"`
	CompanyCount        int `json:"company_count"`

	BySpecialty []DistributionItemDTO `json:"by_specialty"`
	ByStatus    []DistributionItemDTO `json:"by_status"`
}

// RecentOrderDTO backs the "latest orders" dashboard widget.
type RecentOrderDTO struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	CompanyTradeName string `json:"company_trade_name"`
	ServiceTypeLabel string `json:"service_type_label"`
	Status           string `json:"status"`
	StatusLabel      string `json:"status_label"`
	Priority         string `json:"priority"`
	OpenedAt         string `json:"opened_at"`
}
