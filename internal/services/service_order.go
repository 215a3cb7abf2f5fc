package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	"workorder-system/internal/repositories"
	apperrors "workorder-system/pkg/errors"
	"workorder-system/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

const minDescriptionLength = 5

type ServiceOrderServiceInterface interface {
	GetServiceOrders(ctx context.Context, filter types.Filter) ([]dto.ServiceOrderDTO, uint64, error)
	FindServiceOrder(ctx context.Context, id uuid.UUID) (*dto.ServiceOrderDTO, error)
	CreateServiceOrder(ctx context.Context, payload dto.CreateServiceOrderDTO) (*dto.ServiceOrderDTO, error)
	UpdateServiceOrder(ctx context.Context, id uuid.UUID, payload dto.UpdateServiceOrderDTO) (*dto.ServiceOrderDTO, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, payload dto.TransitionStatusDTO) (*dto.ServiceOrderDTO, error)
	DeleteServiceOrder(ctx context.Context, id uuid.UUID) error
}

type ServiceOrderService struct {
	txManager      repositories.TxManagerInterface
	orderRepo      repositories.ServiceOrderRepositoryInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	employeeRepo   repositories.EmployeeRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	codeGenerator  OrderCodeGeneratorInterface
	logger         *zap.Logger
	now            func() time.Time
}

func NewServiceOrderService(
	txManager repositories.TxManagerInterface,
	orderRepo repositories.ServiceOrderRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	codeGenerator OrderCodeGeneratorInterface,
	logger *zap.Logger,
) ServiceOrderServiceInterface {
	return &ServiceOrderService{
		txManager:      txManager,
		orderRepo:      orderRepo,
		assignmentRepo: assignmentRepo,
		companyRepo:    companyRepo,
		employeeRepo:   employeeRepo,
		cacheRepo:      cacheRepo,
		codeGenerator:  codeGenerator,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *ServiceOrderService) GetServiceOrders(ctx context.Context, filter types.Filter) ([]dto.ServiceOrderDTO, uint64, error) {
	orders, total, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if len(orders) == 0 {
		return []dto.ServiceOrderDTO{}, total, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}
	employeesByOrder, err := s.assignmentRepo.GetEmployeesByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.ServiceOrderDTO, 0, len(orders))
	for _, order := range orders {
		order.Employees = employeesByOrder[order.ID]
		result = append(result, *toServiceOrderDTO(&order))
	}
	return result, total, nil
}

func (s *ServiceOrderService) FindServiceOrder(ctx context.Context, id uuid.UUID) (*dto.ServiceOrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	employees, err := s.assignmentRepo.GetEmployeesByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Employees = employees
	return toServiceOrderDTO(order), nil
}

func (s *ServiceOrderService) CreateServiceOrder(ctx context.Context, payload dto.CreateServiceOrderDTO) (*dto.ServiceOrderDTO, error) {
	if err := s.validateOrderInput(ctx, payload.CompanyID, payload.ServiceType, payload.Priority, payload.Description, payload.EmployeeIDs); err != nil {
		return nil, err
	}

	now := s.now()
	order := entities.ServiceOrder{
		Code:        s.codeGenerator.Generate(now),
		CompanyID:   payload.CompanyID,
		ServiceType: entities.Specialty(payload.ServiceType),
		Priority:    entities.Priority(payload.Priority),
		// Whatever status the caller asked for, a new order starts open.
		Status:               entities.OrderStatusOpen,
		Description:          payload.Description,
		InternalNotes:        payload.InternalNotes.Ptr(),
		OpenedAt:             now,
		ExpectedCompletionAt: payload.ExpectedCompletionAt.Ptr(),
	}

	var created *entities.ServiceOrder
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = s.orderRepo.CreateOrderInTx(ctx, tx, order)
		if txErr != nil {
			return txErr
		}
		return s.assignmentRepo.CreateAssignmentsInTx(ctx, tx, created.ID, payload.EmployeeIDs)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboardCache(ctx)
	return s.FindServiceOrder(ctx, created.ID)
}

func (s *ServiceOrderService) UpdateServiceOrder(ctx context.Context, id uuid.UUID, payload dto.UpdateServiceOrderDTO) (*dto.ServiceOrderDTO, error) {
	current, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateOrderInput(ctx, payload.CompanyID, payload.ServiceType, payload.Priority, payload.Description, payload.EmployeeIDs); err != nil {
		return nil, err
	}

	status := current.Status
	if payload.Status.Valid {
		status = entities.OrderStatus(payload.Status.String)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("unknown status: %s", payload.Status.String)
		}
	}

	order := entities.ServiceOrder{
		CompanyID:            payload.CompanyID,
		ServiceType:          entities.Specialty(payload.ServiceType),
		Priority:             entities.Priority(payload.Priority),
		Status:               status,
		Description:          payload.Description,
		InternalNotes:        payload.InternalNotes.Ptr(),
		ClosingNotes:         payload.ClosingNotes.Ptr(),
		ExpectedCompletionAt: payload.ExpectedCompletionAt.Ptr(),
		CompletedAt:          s.completedAtFor(status),
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, txErr := s.orderRepo.UpdateOrderInTx(ctx, tx, id, order); txErr != nil {
			return txErr
		}
		// Replace the whole assignment set: delete everything, insert
		// the new list. Both sides ride the same transaction so a
		// failure never strands the order with zero assignments.
		if txErr := s.assignmentRepo.DeleteByOrderInTx(ctx, tx, id); txErr != nil {
			return txErr
		}
		return s.assignmentRepo.CreateAssignmentsInTx(ctx, tx, id, payload.EmployeeIDs)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboardCache(ctx)
	return s.FindServiceOrder(ctx, id)
}

func (s *ServiceOrderService) TransitionStatus(ctx context.Context, id uuid.UUID, payload dto.TransitionStatusDTO) (*dto.ServiceOrderDTO, error) {
	newStatus := entities.OrderStatus(payload.Status)
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("unknown status: %s", payload.Status)
	}

	current, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// Same status means nothing to do; return the current state
	// without touching the store.
	if current.Status == newStatus {
		employees, err := s.assignmentRepo.GetEmployeesByOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		current.Employees = employees
		return toServiceOrderDTO(current), nil
	}

	completedAt := s.completedAtFor(newStatus)
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		_, txErr := s.orderRepo.UpdateStatusInTx(ctx, tx, id, newStatus, completedAt)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboardCache(ctx)
	return s.FindServiceOrder(ctx, id)
}

func (s *ServiceOrderService) DeleteServiceOrder(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if txErr := s.assignmentRepo.DeleteByOrderInTx(ctx, tx, id); txErr != nil {
			return txErr
		}
		return s.orderRepo.DeleteOrderInTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.invalidateDashboardCache(ctx)
	return nil
}

// completedAtFor applies the completion timestamp rule: completed_at
// is stamped whenever the order is saved as completed and cleared on
// any other status, including a reopen of a previously completed order.
func (s *ServiceOrderService) completedAtFor(status entities.OrderStatus) *time.Time {
	if status != entities.OrderStatusCompleted {
		return nil
	}
	now := s.now()
	return &now
}

func (s *ServiceOrderService) validateOrderInput(ctx context.Context, companyID uuid.UUID, serviceType, priority, description string, employeeIDs []uuid.UUID) error {
	if len(employeeIDs) == 0 {
		return apperrors.NewValidationError("at least one employee must be assigned")
	}
	if len(description) < minDescriptionLength {
		return apperrors.NewValidationError("description must be at least %d characters", minDescriptionLength)
	}
	if !entities.Specialty(serviceType).Valid() {
		return apperrors.NewValidationError("unknown service type: %s", serviceType)
	}
	if !entities.Priority(priority).Valid() {
		return apperrors.NewValidationError("unknown priority: %s", priority)
	}

	if _, err := s.companyRepo.FindCompany(ctx, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("company %s does not exist", companyID)
		}
		return err
	}

	unique := make(map[uuid.UUID]struct{}, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		unique[employeeID] = struct{}{}
	}
	uniqueIDs := make([]uuid.UUID, 0, len(unique))
	for employeeID := range unique {
		uniqueIDs = append(uniqueIDs, employeeID)
	}
	count, err := s.employeeRepo.CountByIDs(ctx, uniqueIDs)
	if err != nil {
		return err
	}
	if count != len(uniqueIDs) {
		return apperrors.NewValidationError("one or more assigned employees do not exist")
	}
	return nil
}

func (s *ServiceOrderService) invalidateDashboardCache(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Del(ctx, dashboardStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func toServiceOrderDTO(order *entities.ServiceOrder) *dto.ServiceOrderDTO {
	result := &dto.ServiceOrderDTO{
		ID:               order.ID,
		Code:             order.Code,
		CompanyID:        order.CompanyID,
		ServiceType:      string(order.ServiceType),
		ServiceTypeLabel: order.ServiceType.Label(),
		Priority:         string(order.Priority),
		Status:           string(order.Status),
		StatusLabel:      order.Status.Label(),
		Description:      order.Description,
		InternalNotes:    order.InternalNotes,
		ClosingNotes:     order.ClosingNotes,
		OpenedAt:         order.OpenedAt.Format(timeLayout),
		CreatedAt:        order.CreatedAt.Format(timeLayout),
		UpdatedAt:        order.UpdatedAt.Format(timeLayout),
		Employees:        make([]dto.ShortEmployeeDTO, 0, len(order.Employees)),
	}
	if order.Company != nil {
		result.Company = &dto.ShortCompanyDTO{ID: order.Company.ID, TradeName: order.Company.TradeName}
	}
	if order.ExpectedCompletionAt != nil {
		formatted := order.ExpectedCompletionAt.Format(timeLayout)
		result.ExpectedCompletionAt = &formatted
	}
	if order.CompletedAt != nil {
		formatted := order.CompletedAt.Format(timeLayout)
		result.CompletedAt = &formatted
	}
	for _, employee := range order.Employees {
		result.Employees = append(result.Employees, dto.ShortEmployeeDTO{
			ID:          employee.ID,
			FullName:    employee.FullName,
			BadgeNumber: employee.BadgeNumber,
		})
	}
	return result
}
