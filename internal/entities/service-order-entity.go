package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "open"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusPaused     OrderStatus = "paused"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var OrderStatusLabels = map[OrderStatus]string{
	OrderStatusOpen:       "Open",
	OrderStatusInProgress: "In Progress",
	OrderStatusPaused:     "Paused",
	OrderStatusCompleted:  "Completed",
	OrderStatusCancelled:  "Cancelled",
}

// DefaultStatusColor is used for any status missing from OrderStatusColors.
const DefaultStatusColor = "#64748b"

// OrderStatusColors are the fixed display colors of the status chart.
var OrderStatusColors = map[OrderStatus]string{
	OrderStatusOpen:       "#3b82f6",
	OrderStatusInProgress: "#f59e0b",
	OrderStatusCompleted:  "#10b981",
	OrderStatusCancelled:  "#64748b",
}

func (s OrderStatus) Valid() bool {
	_, ok := OrderStatusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	if label, ok := OrderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Color() string {
	if color, ok := OrderStatusColors[s]; ok {
		return color
	}
	return DefaultStatusColor
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type ServiceOrder struct {
	ID                   uuid.UUID
	Code                 string
	CompanyID            uuid.UUID
	ServiceType          Specialty
	Priority             Priority
	Status               OrderStatus
	Description          string
	InternalNotes        *string
	ClosingNotes         *string
	OpenedAt             time.Time
	ExpectedCompletionAt *time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Expanded relations, populated on demand.
	Company   *Company
	Employees []Employee
}

// Overdue reports whether the order has passed its expected completion
// date while still in a non-terminal status.
func (o *ServiceOrder) Overdue(now time.Time) bool {
	if o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled {
		return false
	}
	return o.ExpectedCompletionAt != nil && o.ExpectedCompletionAt.Before(now)
}
