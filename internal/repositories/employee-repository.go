package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"workorder-system/internal/entities"
	"workorder-system/internal/infrastructure/db"
	apperrors "workorder-system/pkg/errors"
	"workorder-system/pkg/types"
)

const employeeTable = "employees"

const employeeFields = `id, full_name, tax_id, badge_number, role, specialties,
	status, email, phone, hire_date, created_at, updated_at`

var employeeMap = map[string]string{
	"id":           "e.id",
	"full_name":    "e.full_name",
	"tax_id":       "e.tax_id",
	"badge_number": "e.badge_number",
	"role":         "e.role",
	"status":       "e.status",
	"created_at":   "e.created_at",
	"updated_at":   "e.updated_at",
}

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	GetAllEmployees(ctx context.Context) ([]entities.Employee, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*entities.Employee, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, employee entities.Employee) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	var specialties []string
	err := row.Scan(
		&e.ID, &e.FullName, &e.TaxID, &e.BadgeNumber, &e.Role, &specialties,
		&e.Status, &e.Email, &e.Phone, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	e.Specialties = make([]entities.Specialty, 0, len(specialties))
	for _, s := range specialties {
		e.Specialties = append(e.Specialties, entities.Specialty(s))
	}
	return &e, nil
}

func specialtiesToStrings(specialties []entities.Specialty) []string {
	out := make([]string, 0, len(specialties))
	for _, s := range specialties {
		out = append(out, string(s))
	}
	return out
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.full_name": pat},
				sq.ILike{"e.badge_number": pat},
				sq.ILike{"e.tax_id": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(e.id)").From(employeeTable + " AS e")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, employeeMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	if total == 0 {
		return []entities.Employee{}, 0, nil
	}

	baseBuilder := psql.Select(
		"e.id", "e.full_name", "e.tax_id", "e.badge_number", "e.role", "e.specialties",
		"e.status", "e.email", "e.phone", "e.hire_date", "e.created_at", "e.updated_at",
	).From(employeeTable + " AS e")
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.full_name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, employeeMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0, filter.Limit)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *employee)
	}
	return employees, total, rows.Err()
}

// GetAllEmployees returns the full employee set for the aggregation engine.
func (r *EmployeeRepository) GetAllEmployees(ctx context.Context) ([]entities.Employee, error) {
	query := `SELECT ` + employeeFields + ` FROM employees ORDER BY created_at ASC`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	query := `SELECT ` + employeeFields + ` FROM employees WHERE id = $1`
	return scanEmployee(r.storage.QueryRow(ctx, query, id))
}

// CountByIDs counts how many of the given ids resolve to stored employees.
func (r *EmployeeRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return count, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	query := `
		INSERT INTO employees (full_name, tax_id, badge_number, role, specialties, status, email, phone, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeFields
	return scanEmployee(r.storage.QueryRow(ctx, query,
		employee.FullName, employee.TaxID, employee.BadgeNumber, employee.Role,
		specialtiesToStrings(employee.Specialties), employee.Status,
		employee.Email, employee.Phone, employee.HireDate,
	))
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id uuid.UUID, employee entities.Employee) (*entities.Employee, error) {
	query := `
		UPDATE employees
		SET full_name = $1, tax_id = $2, badge_number = $3, role = $4, specialties = $5,
		    status = $6, email = $7, phone = $8, hire_date = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + employeeFields
	return scanEmployee(r.storage.QueryRow(ctx, query,
		employee.FullName, employee.TaxID, employee.BadgeNumber, employee.Role,
		specialtiesToStrings(employee.Specialties), employee.Status,
		employee.Email, employee.Phone, employee.HireDate, id,
	))
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
