package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	"workorder-system/internal/repositories"
	apperrors "workorder-system/pkg/errors"
	"workorder-system/pkg/types"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]dto.EmployeeDTO, uint64, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeDTO, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	logger       *zap.Logger
}

func NewEmployeeService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{employeeRepo: employeeRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) ([]dto.EmployeeDTO, uint64, error) {
	employees, total, err := s.employeeRepo.GetEmployees(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, *toEmployeeDTO(&employee))
	}
	return result, total, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepo.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeDTO(employee), nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	specialties, err := parseSpecialties(payload.Specialties)
	if err != nil {
		return nil, err
	}

	status := entities.EntityStatus(payload.Status)
	if status == "" {
		status = entities.EntityStatusActive
	}

	employee := entities.Employee{
		FullName:    payload.FullName,
		TaxID:       payload.TaxID,
		BadgeNumber: payload.BadgeNumber,
		Role:        entities.RoleLevel(payload.Role),
		Specialties: specialties,
		Status:      status,
		Email:       payload.Email.Ptr(),
		Phone:       payload.Phone.Ptr(),
		HireDate:    payload.HireDate.Ptr(),
	}

	created, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)
	return toEmployeeDTO(created), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error) {
	specialties, err := parseSpecialties(payload.Specialties)
	if err != nil {
		return nil, err
	}

	employee := entities.Employee{
		FullName:    payload.FullName,
		TaxID:       payload.TaxID,
		BadgeNumber: payload.BadgeNumber,
		Role:        entities.RoleLevel(payload.Role),
		Specialties: specialties,
		Status:      entities.EntityStatus(payload.Status),
		Email:       payload.Email.Ptr(),
		Phone:       payload.Phone.Ptr(),
		HireDate:    payload.HireDate.Ptr(),
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, id, employee)
	if err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)
	return toEmployeeDTO(updated), nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *EmployeeService) invalidateDashboard(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Del(ctx, dashboardStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func parseSpecialties(raw []string) ([]entities.Specialty, error) {
	if len(raw) == 0 {
		return nil, apperrors.NewValidationError("at least one specialty is required")
	}
	specialties := make([]entities.Specialty, 0, len(raw))
	for _, value := range raw {
		specialty := entities.Specialty(value)
		if !specialty.Valid() {
			return nil, apperrors.NewValidationError("unknown specialty: %s", value)
		}
		specialties = append(specialties, specialty)
	}
	return specialties, nil
}

func toEmployeeDTO(employee *entities.Employee) *dto.EmployeeDTO {
	specialties := make([]string, 0, len(employee.Specialties))
	for _, specialty := range employee.Specialties {
		specialties = append(specialties, string(specialty))
	}

	result := &dto.EmployeeDTO{
		ID:          employee.ID,
		FullName:    employee.FullName,
		TaxID:       employee.TaxID,
		BadgeNumber: employee.BadgeNumber,
		Role:        string(employee.Role),
		Specialties: specialties,
		Status:      string(employee.Status),
		Email:       employee.Email,
		Phone:       employee.Phone,
		CreatedAt:   employee.CreatedAt.Format(timeLayout),
		UpdatedAt:   employee.UpdatedAt.Format(timeLayout),
	}
	if employee.HireDate != nil {
		formatted := employee.HireDate.Format(timeLayout)
		result.HireDate = &formatted
	}
	return result
}
