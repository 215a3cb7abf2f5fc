package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateServiceOrderDTO struct {
	CompanyID            uuid.UUID   `json:"company_id" validate:"required"`
	ServiceType          string      `json:"service_type" validate:"required"`
	Priority             string      `json:"priority" validate:"required"`
	Description          string      `json:"description" validate:"required,min=5"`
	InternalNotes        null.String `json:"internal_notes,omitempty"`
	ExpectedCompletionAt null.Time   `json:"expected_completion_at,omitempty"`
	EmployeeIDs          []uuid.UUID `json:"employee_ids" validate:"required,min=1"`

	// Ignored on create: new orders always start open.
	Status null.String `json:"status,omitempty"`
}

type UpdateServiceOrderDTO struct {
	CompanyID            uuid.UUID   `json:"company_id" validate:"required"`
	ServiceType          string      `json:"service_type" validate:"required"`
	Priority             string      `json:"priority" validate:"required"`
	Status               null.String `json:"status,omitempty"`
	Description          string      `json:"description" validate:"required,min=5"`
	InternalNotes        null.String `json:"internal_notes,omitempty"`
	ClosingNotes         null.String `json:"closing_notes,omitempty"`
	ExpectedCompletionAt null.Time   `json:"expected_completion_at,omitempty"`
	EmployeeIDs          []uuid.UUID `json:"employee_ids" validate:"required,min=1"`
}

type TransitionStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type ShortCompanyDTO struct {
	ID        uuid.UUID `json:"id"`
	TradeName string    `json:"trade_name"`
}

type ShortEmployeeDTO struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	BadgeNumber string    `json:"badge_number"`
}

type ServiceOrderDTO struct {
	ID                   uuid.UUID          `json:"id"`
	Code                 string             `json:"code"`
	CompanyID            uuid.UUID          `json:"company_id"`
	Company              *ShortCompanyDTO   `json:"company,omitempty"`
	ServiceType          string             `json:"service_type"`
	ServiceTypeLabel     string             `json:"service_type_label"`
	Priority             string             `json:"priority"`
	Status               string             `json:"status"`
	StatusLabel          string             `json:"status_label"`
	Description          string             `json:"description"`
	InternalNotes        *string            `json:"internal_notes,omitempty"`
	ClosingNotes         *string            `json:"closing_notes,omitempty"`
	OpenedAt             string             `json:"opened_at"`
	ExpectedCompletionAt *string            `json:"expected_completion_at,omitempty"`
	CompletedAt          *string            `json:"completed_at,omitempty"`
	Employees            []ShortEmployeeDTO `json:"employees"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}
