package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	"workorder-system/internal/repositories"
	apperrors "workorder-system/pkg/errors"
	"workorder-system/pkg/types"
)

type CompanyServiceInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]dto.CompanyDTO, uint64, error)
	FindCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyDTO, error)
	CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*dto.CompanyDTO, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, payload dto.UpdateCompanyDTO) (*dto.CompanyDTO, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

type CompanyService struct {
	companyRepo repositories.CompanyRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	logger      *zap.Logger
}

func NewCompanyService(
	companyRepo repositories.CompanyRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) CompanyServiceInterface {
	return &CompanyService{companyRepo: companyRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *CompanyService) GetCompanies(ctx context.Context, filter types.Filter) ([]dto.CompanyDTO, uint64, error) {
	companies, total, err := s.companyRepo.GetCompanies(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		result = append(result, *toCompanyDTO(&company))
	}
	return result, total, nil
}

func (s *CompanyService) FindCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.FindCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyDTO(company), nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*dto.CompanyDTO, error) {
	kind := entities.CompanyKind(payload.Kind)
	if err := s.validateParent(ctx, kind, payload.ParentCompanyID, nil); err != nil {
		return nil, err
	}

	status := entities.EntityStatus(payload.Status)
	if status == "" {
		status = entities.EntityStatusActive
	}

	company := entities.Company{
		LegalName:       payload.LegalName,
		TradeName:       payload.TradeName,
		TaxID:           payload.TaxID,
		Kind:            kind,
		ParentCompanyID: payload.ParentCompanyID,
		Address:         toAddress(payload.Address),
		PrimaryContact:  toContact(payload.PrimaryContact),
		Status:          status,
	}

	created, err := s.companyRepo.CreateCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)
	return toCompanyDTO(created), nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, payload dto.UpdateCompanyDTO) (*dto.CompanyDTO, error) {
	kind := entities.CompanyKind(payload.Kind)
	if err := s.validateParent(ctx, kind, payload.ParentCompanyID, &id); err != nil {
		return nil, err
	}

	company := entities.Company{
		LegalName:       payload.LegalName,
		TradeName:       payload.TradeName,
		TaxID:           payload.TaxID,
		Kind:            kind,
		ParentCompanyID: payload.ParentCompanyID,
		Address:         toAddress(payload.Address),
		PrimaryContact:  toContact(payload.PrimaryContact),
		Status:          entities.EntityStatus(payload.Status),
	}

	updated, err := s.companyRepo.UpdateCompany(ctx, id, company)
	if err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)
	return toCompanyDTO(updated), nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := s.companyRepo.DeleteCompany(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// validateParent enforces that a branch points at an existing
// headquarters company and that a company never parents itself.
func (s *CompanyService) validateParent(ctx context.Context, kind entities.CompanyKind, parentID *uuid.UUID, selfID *uuid.UUID) error {
	if kind == entities.CompanyKindBranch {
		if parentID == nil {
			return apperrors.NewValidationError("a branch requires a parent company")
		}
		if selfID != nil && *parentID == *selfID {
			return apperrors.NewValidationError("a company cannot be its own parent")
		}
		parent, err := s.companyRepo.FindCompany(ctx, *parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("parent company %s does not exist", parentID)
			}
			return err
		}
		if parent.Kind != entities.CompanyKindHeadquarters {
			return apperrors.NewValidationError("parent company must be a headquarters")
		}
		return nil
	}
	if parentID != nil {
		return apperrors.NewValidationError("only a branch may have a parent company")
	}
	return nil
}

func (s *CompanyService) invalidateDashboard(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Del(ctx, dashboardStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func toAddress(payload dto.AddressDTO) entities.Address {
	return entities.Address{
		Street:     payload.Street,
		Number:     payload.Number,
		Complement: payload.Complement.Ptr(),
		District:   payload.District,
		City:       payload.City,
		State:      payload.State,
		PostalCode: payload.PostalCode,
	}
}

func toContact(payload dto.ContactDTO) entities.Contact {
	return entities.Contact{
		Name:  payload.Name,
		Role:  payload.Role.Ptr(),
		Email: payload.Email,
		Phone: payload.Phone,
	}
}

func toCompanyDTO(company *entities.Company) *dto.CompanyDTO {
	return &dto.CompanyDTO{
		ID:              company.ID,
		LegalName:       company.LegalName,
		TradeName:       company.TradeName,
		TaxID:           company.TaxID,
		Kind:            string(company.Kind),
		ParentCompanyID: company.ParentCompanyID,
		Address: dto.AddressDTO{
			Street:     company.Address.Street,
			Number:     company.Address.Number,
			Complement: null.StringFromPtr(company.Address.Complement),
			District:   company.Address.District,
			City:       company.Address.City,
			State:      company.Address.State,
			PostalCode: company.Address.PostalCode,
		},
		PrimaryContact: dto.ContactDTO{
			Name:  company.PrimaryContact.Name,
			Role:  null.StringFromPtr(company.PrimaryContact.Role),
			Email: company.PrimaryContact.Email,
			Phone: company.PrimaryContact.Phone,
		},
		Status:    string(company.Status),
		CreatedAt: company.CreatedAt.Format(timeLayout),
		UpdatedAt: company.UpdatedAt.Format(timeLayout),
	}
}
