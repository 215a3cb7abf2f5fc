package entities

import (
	"time"

	"github.com/google/uuid"
)

type CompanyKind string

const (
	CompanyKindHeadquarters CompanyKind = "headquarters"
	CompanyKindBranch       CompanyKind = "branch"
)

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusInactive EntityStatus = "inactive"
)

// Address is stored as a JSONB document on the companies row.
type Address struct {
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement,omitempty"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
}

// Contact is the primary back-office contact of a client company.
type Contact struct {
	Name  string  `json:"name"`
	Role  *string `json:"role,omitempty"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
}

type Company struct {
	ID              uuid.UUID
	LegalName       string
	TradeName       string
	TaxID           string
	Kind            CompanyKind
	ParentCompanyID *uuid.UUID
	Address         Address
	PrimaryContact  Contact
	Status          EntityStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
