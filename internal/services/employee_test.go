package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	apperrors "workorder-system/pkg/errors"
)

func TestCreateEmployee_ParsesSpecialties(t *testing.T) {
	var captured entities.Employee
	repo := &mockEmployeeRepo{
		create: func(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
			captured = employee
			employee.ID = uuid.New()
			return &employee, nil
		},
	}
	svc := NewEmployeeService(repo, newMockCache(), zaptest.NewLogger(t))

	payload := dto.CreateEmployeeDTO{
		FullName:    "Joao Pereira",
		TaxID:       "123.456.789-00",
		BadgeNumber: "EMP-0001",
		Role:        "senior",
		Specialties: []string{"electrical", "refrigeration"},
	}

	result, err := svc.CreateEmployee(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, []entities.Specialty{entities.SpecialtyElectrical, entities.SpecialtyRefrigeration}, captured.Specialties)
	assert.Equal(t, entities.EntityStatusActive, captured.Status, "status defaults to active")
	assert.Equal(t, []string{"electrical", "refrigeration"}, result.Specialties)
}

func TestCreateEmployee_RejectsBadSpecialties(t *testing.T) {
	svc := NewEmployeeService(&mockEmployeeRepo{}, newMockCache(), zaptest.NewLogger(t))

	tests := []struct {
		name        string
		specialties []string
		wantMsg     string
	}{
		{name: "empty set", specialties: nil, wantMsg: "at least one specialty"},
		{name: "unknown tag", specialties: []string{"electrical", "carpentry"}, wantMsg: "unknown specialty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := dto.CreateEmployeeDTO{
				FullName:    "Joao Pereira",
				TaxID:       "123.456.789-00",
				BadgeNumber: "EMP-0001",
				Role:        "senior",
				Specialties: tt.specialties,
			}
			_, err := svc.CreateEmployee(context.Background(), payload)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Error(), tt.wantMsg)
		})
	}
}
