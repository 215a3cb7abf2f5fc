package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateEmployeeDTO struct {
	FullName    string      `json:"full_name" validate:"required"`
	TaxID       string      `json:"tax_id" validate:"required"`
	BadgeNumber string      `json:"badge_number" validate:"required"`
	Role        string      `json:"role" validate:"required,oneof=junior mid senior lead supervisor"`
	Specialties []string    `json:"specialties" validate:"required,min=1"`
	Status      string      `json:"status" validate:"omitempty,oneof=active inactive"`
	Email       null.String `json:"email,omitempty" validate:"omitempty"`
	Phone       null.String `json:"phone,omitempty"`
	HireDate    null.Time   `json:"hire_date,omitempty"`
}

type UpdateEmployeeDTO struct {
	FullName    string      `json:"full_name" validate:"required"`
	TaxID       string      `json:"tax_id" validate:"required"`
	BadgeNumber string      `json:"badge_number" validate:"required"`
	Role        string      `json:"role" validate:"required,oneof=junior mid senior lead supervisor"`
	Specialties []string    `json:"specialties" validate:"required,min=1"`
	Status      string      `json:"status" validate:"required,oneof=active inactive"`
	Email       null.String `json:"email,omitempty"`
	Phone       null.String `json:"phone,omitempty"`
	HireDate    null.Time   `json:"hire_date,omitempty"`
}

type EmployeeDTO struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	TaxID       string    `json:"tax_id"`
	BadgeNumber string    `json:"badge_number"`
	Role        string    `json:"role"`
	Specialties []string  `json:"specialties"`
	Status      string    `json:"status"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	HireDate    *string   `json:"hire_date,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}
