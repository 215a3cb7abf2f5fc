package entities

import (
	"time"

	"github.com/google/uuid"
)

// Specialty classifies both employee capability and the nature of a
// service order.
type Specialty string

const (
	SpecialtyElectrical      Specialty = "electrical"
	SpecialtyHydraulic       Specialty = "hydraulic"
	SpecialtyGeneralServices Specialty = "general_services"
	SpecialtyPainting        Specialty = "painting"
	SpecialtyMasonry         Specialty = "masonry"
	SpecialtyRefrigeration   Specialty = "refrigeration"
	SpecialtyOther           Specialty = "other"
)

var SpecialtyLabels = map[Specialty]string{
	SpecialtyElectrical:      "Electrical",
	SpecialtyHydraulic:       "Hydraulic",
	SpecialtyGeneralServices: "General Services",
	SpecialtyPainting:        "Painting",
	SpecialtyMasonry:         "Masonry",
	SpecialtyRefrigeration:   "Refrigeration",
	SpecialtyOther:           "Other",
}

func (s Specialty) Valid() bool {
	_, ok := SpecialtyLabels[s]
	return ok
}

// Label returns the display name, falling back to the raw value for
// anything the map does not know.
func (s Specialty) Label() string {
	if label, ok := SpecialtyLabels[s]; ok {
		return label
	}
	return string(s)
}

type RoleLevel string

const (
	RoleLevelJunior     RoleLevel = "junior"
	RoleLevelMid        RoleLevel = "mid"
	RoleLevelSenior     RoleLevel = "senior"
	RoleLevelLead       RoleLevel = "lead"
	RoleLevelSupervisor RoleLevel = "supervisor"
)

type Employee struct {
	ID          uuid.UUID
	FullName    string
	TaxID       string
	BadgeNumber string
	Role        RoleLevel
	Specialties []Specialty
	Status      EntityStatus
	Email       *string
	Phone       *string
	HireDate    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
