package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workorder-system/internal/entities"
	apperrors "workorder-system/pkg/errors"
)

const assignmentTable = "service_order_assignments"

type AssignmentRepositoryInterface interface {
	GetEmployeesByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Employee, error)
	GetEmployeesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entities.Employee, error)
	CreateAssignmentsInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, employeeIDs []uuid.UUID) error
	DeleteByOrderInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

const assignedEmployeeQuery = `
	SELECT a.order_id, e.id, e.full_name, e.tax_id, e.badge_number, e.role, e.specialties,
	       e.status, e.email, e.phone, e.hire_date, e.created_at, e.updated_at
	FROM service_order_assignments a
	JOIN employees e ON e.id = a.employee_id`

func scanAssignedEmployees(rows pgx.Rows) (map[uuid.UUID][]entities.Employee, error) {
	byOrder := make(map[uuid.UUID][]entities.Employee)
	for rows.Next() {
		var orderID uuid.UUID
		var e entities.Employee
		var specialties []string
		err := rows.Scan(
			&orderID, &e.ID, &e.FullName, &e.TaxID, &e.BadgeNumber, &e.Role, &specialties,
			&e.Status, &e.Email, &e.Phone, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		for _, s := range specialties {
			e.Specialties = append(e.Specialties, entities.Specialty(s))
		}
		byOrder[orderID] = append(byOrder[orderID], e)
	}
	return byOrder, rows.Err()
}

func (r *AssignmentRepository) GetEmployeesByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Employee, error) {
	rows, err := r.storage.Query(ctx, assignedEmployeeQuery+` WHERE a.order_id = $1`, orderID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	byOrder, err := scanAssignedEmployees(rows)
	if err != nil {
		return nil, err
	}
	employees := byOrder[orderID]
	if employees == nil {
		employees = []entities.Employee{}
	}
	return employees, nil
}

func (r *AssignmentRepository) GetEmployeesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]entities.Employee, error) {
	if len(orderIDs) == 0 {
		return map[uuid.UUID][]entities.Employee{}, nil
	}
	rows, err := r.storage.Query(ctx, assignedEmployeeQuery+` WHERE a.order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	return scanAssignedEmployees(rows)
}

// CreateAssignmentsInTx inserts one row per employee for the order.
func (r *AssignmentRepository) CreateAssignmentsInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, employeeIDs []uuid.UUID) error {
	batch := &pgx.Batch{}
	for _, employeeID := range employeeIDs {
		batch.Queue(
			`INSERT INTO service_order_assignments (order_id, employee_id) VALUES ($1, $2)`,
			orderID, employeeID,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range employeeIDs {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewStoreError(err)
		}
	}
	return nil
}

// DeleteByOrderInTx removes the order's whole assignment set.
func (r *AssignmentRepository) DeleteByOrderInTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM service_order_assignments WHERE order_id = $1`, orderID); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}
