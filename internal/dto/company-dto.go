package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type AddressDTO struct {
	Street     string      `json:"street" validate:"required"`
	Number     string      `json:"number" validate:"required"`
	Complement null.String `json:"complement,omitempty"`
	District   string      `json:"district" validate:"required"`
	City       string      `json:"city" validate:"required"`
	State      string      `json:"state" validate:"required,br_state"`
	PostalCode string      `json:"postal_code" validate:"required"`
}

type ContactDTO struct {
	Name  string      `json:"name" validate:"required"`
	Role  null.String `json:"role,omitempty"`
	Email string      `json:"email" validate:"required,email"`
	Phone string      `json:"phone" validate:"required"`
}

type CreateCompanyDTO struct {
	LegalName       string     `json:"legal_name" validate:"required"`
	TradeName       string     `json:"trade_name" validate:"required"`
	TaxID           string     `json:"tax_id" validate:"required"`
	Kind            string     `json:"kind" validate:"required,oneof=headquarters branch"`
	ParentCompanyID *uuid.UUID `json:"parent_company_id,omitempty"`
	Address         AddressDTO `json:"address" validate:"required"`
	PrimaryContact  ContactDTO `json:"primary_contact" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCompanyDTO struct {
	LegalName       string     `json:"legal_name" validate:"required"`
	TradeName       string     `json:"trade_name" validate:"required"`
	TaxID           string     `json:"tax_id" validate:"required"`
	Kind            string     `json:"kind" validate:"required,oneof=headquarters branch"`
	ParentCompanyID *uuid.UUID `json:"parent_company_id,omitempty"`
	Address         AddressDTO `json:"address" validate:"required"`
	PrimaryContact  ContactDTO `json:"primary_contact" validate:"required"`
	Status          string     `json:"status" validate:"required,oneof=active inactive"`
}

type CompanyDTO struct {
	ID              uuid.UUID  `json:"id"`
	LegalName       string     `json:"legal_name"`
	TradeName       string     `json:"trade_name"`
	TaxID           string     `json:"tax_id"`
	Kind            string     `json:"kind"`
	ParentCompanyID *uuid.UUID `json:"parent_company_id,omitempty"`
	Address         AddressDTO `json:"address"`
	PrimaryContact  ContactDTO `json:"primary_contact"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}
