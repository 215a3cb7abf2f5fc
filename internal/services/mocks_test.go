package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"workorder-system/internal/entities"
	"workorder-system/pkg/types"
)

// Function-field test doubles for the repository interfaces. Only the
// fields a test sets are expected to be called.

type mockTxManager struct {
	runs int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.runs++
	return fn(nil)
}

type mockOrderRepo struct {
	getOrders      func(context.Context, types.Filter) ([]entities.ServiceOrder, uint64, error)
	getAllOrders   func(context.Context) ([]entities.ServiceOrder, error)
	getRecent      func(context.Context, int) ([]entities.ServiceOrder, error)
	findOrder      func(context.Context, uuid.UUID) (*entities.ServiceOrder, error)
	createInTx     func(context.Context, pgx.Tx, entities.ServiceOrder) (*entities.ServiceOrder, error)
	updateInTx     func(context.Context, pgx.Tx, uuid.UUID, entities.ServiceOrder) (*entities.ServiceOrder, error)
	updateStatus   func(context.Context, pgx.Tx, uuid.UUID, entities.OrderStatus, *time.Time) (*entities.ServiceOrder, error)
	deleteInTx     func(context.Context, pgx.Tx, uuid.UUID) error
	writeCallCount int
}

func (m *mockOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.ServiceOrder, uint64, error) {
	return m.getOrders(ctx, filter)
}

func (m *mockOrderRepo) GetAllOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	return m.getAllOrders(ctx)
}

func (m *mockOrderRepo) GetRecentOrders(ctx context.Context, limit int) ([]entities.ServiceOrder, error) {
	return m.getRecent(ctx, limit)
}

func (m *mockOrderRepo) FindOrder(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error) {
	return m.findOrder(ctx, id)
}

func (m *mockOrderRepo) CreateOrderInTx(ctx context.Context, tx pgx.Tx, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	m.writeCallCount++
	return m.createInTx(ctx, tx, order)
}

func (m *mockOrderRepo) UpdateOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	m.writeCallCount++
	return m.updateInTx(ctx, tx, id, order)
}

func (m *mockOrderRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status entities.OrderStatus, completedAt *time.Time) (*entities.ServiceOrder, error) {
	m.writeCallCount++
	return m.updateStatus(ctx, tx, id, status, completedAt)
}

func (m *mockOrderRepo) DeleteOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	m.writeCallCount++
	return m.deleteInTx(ctx, tx, id)
}

type mockAssignmentRepo struct {
	getByOrder     func(context.Context, uuid.UUID) ([]entities.Employee, error)
	getByOrderIDs  func(context.Context, []uuid.UUID) (map[uuid.UUID][]entities.Employee, error)
	createInTx     func(context.Context, pgx.Tx, uuid.UUID, []uuid.UUID) error
	deleteInTx     func(context.Context, pgx.Tx, uuid.UUID) error
	writeCallCount int
}

func (m *mockAssignmentRepo) GetEmployeesByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Employee, error) {
	return m.getByOrder(ctx, orderID)
}

func (m *mockAssignmentRepo) GetEmployeesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entities.Employee, error) {
	return m.getByOrderIDs(ctx, orderIDs)
}

func (m *mockAssignmentRepo) CreateAssignmentsInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, employeeIDs []uuid.UUID) error {
	m.writeCallCount++
	return m.createInTx(ctx, tx, orderID, employeeIDs)
}

func (m *mockAssignmentRepo) DeleteByOrderInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	m.writeCallCount++
	return m.deleteInTx(ctx, tx, orderID)
}

type mockCompanyRepo struct {
	getCompanies func(context.Context, types.Filter) ([]entities.Company, uint64, error)
	getAll       func(context.Context) ([]entities.Company, error)
	find         func(context.Context, uuid.UUID) (*entities.Company, error)
	create       func(context.Context, entities.Company) (*entities.Company, error)
	update       func(context.Context, uuid.UUID, entities.Company) (*entities.Company, error)
	delete       func(context.Context, uuid.UUID) error
}

func (m *mockCompanyRepo) GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	return m.getCompanies(ctx, filter)
}

func (m *mockCompanyRepo) GetAllCompanies(ctx context.Context) ([]entities.Company, error) {
	return m.getAll(ctx)
}

func (m *mockCompanyRepo) FindCompany(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return m.find(ctx, id)
}

func (m *mockCompanyRepo) CreateCompany(ctx context.Context, company entities.Company) (*entities.Company, error) {
	return m.create(ctx, company)
}

func (m *mockCompanyRepo) UpdateCompany(ctx context.Context, id uuid.UUID, company entities.Company) (*entities.Company, error) {
	return m.update(ctx, id, company)
}

func (m *mockCompanyRepo) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockEmployeeRepo struct {
	getEmployees func(context.Context, types.Filter) ([]entities.Employee, uint64, error)
	getAll       func(context.Context) ([]entities.Employee, error)
	find         func(context.Context, uuid.UUID) (*entities.Employee, error)
	countByIDs   func(context.Context, []uuid.UUID) (int, error)
	create       func(context.Context, entities.Employee) (*entities.Employee, error)
	update       func(context.Context, uuid.UUID, entities.Employee) (*entities.Employee, error)
	delete       func(context.Context, uuid.UUID) error
}

func (m *mockEmployeeRepo) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	return m.getEmployees(ctx, filter)
}

func (m *mockEmployeeRepo) GetAllEmployees(ctx context.Context) ([]entities.Employee, error) {
	return m.getAll(ctx)
}

func (m *mockEmployeeRepo) FindEmployee(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	return m.find(ctx, id)
}

func (m *mockEmployeeRepo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	return m.countByIDs(ctx, ids)
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	return m.create(ctx, employee)
}

func (m *mockEmployeeRepo) UpdateEmployee(ctx context.Context, id uuid.UUID, employee entities.Employee) (*entities.Employee, error) {
	return m.update(ctx, id, employee)
}

func (m *mockEmployeeRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockCache struct {
	data map[string]string
	sets int
	dels int
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string]string{}}
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.sets++
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	}
	return nil
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *mockCache) Del(ctx context.Context, keys ...string) error {
	m.dels++
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}
