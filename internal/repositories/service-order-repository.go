package repositories

import (
	"context"
	"errors"
	"time"

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

const serviceOrderTable = "service_orders"

const serviceOrderFields = `id, code, company_id, service_type, priority, status, description,
	internal_notes, closing_notes, opened_at, expected_completion_at, completed_at, created_at, updated_at`

var serviceOrderMap = map[string]string{
	"id":           "o.id",
	"code":         "o.code",
	"company_id":   "o.company_id",
	"service_type": "o.service_type",
	"priority":     "o.priority",
	"status":       "o.status",
	"opened_at":    "o.opened_at",
	"created_at":   "o.created_at",
	"updated_at":   "o.updated_at",
}

type ServiceOrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.ServiceOrder, uint64, error)
	GetAllOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	GetRecentOrders(ctx context.Context, limit int) ([]entities.ServiceOrder, error)
	FindOrder(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error)
	CreateOrderInTx(ctx context.Context, tx pgx.Tx, order entities.ServiceOrder) (*entities.ServiceOrder, error)
	UpdateOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, order entities.ServiceOrder) (*entities.ServiceOrder, error)
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status entities.OrderStatus, completedAt *time.Time) (*entities.ServiceOrder, error)
	DeleteOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type ServiceOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewServiceOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) ServiceOrderRepositoryInterface {
	return &ServiceOrderRepository{storage: storage, logger: logger}
}

func scanServiceOrder(row pgx.Row) (*entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	err := row.Scan(
		&o.ID, &o.Code, &o.CompanyID, &o.ServiceType, &o.Priority, &o.Status, &o.Description,
		&o.InternalNotes, &o.ClosingNotes, &o.OpenedAt, &o.ExpectedCompletionAt, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return &o, nil
}

func scanServiceOrderWithCompany(row pgx.Row) (*entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	var companyTradeName string
	err := row.Scan(
		&o.ID, &o.Code, &o.CompanyID, &o.ServiceType, &o.Priority, &o.Status, &o.Description,
		&o.InternalNotes, &o.ClosingNotes, &o.OpenedAt, &o.ExpectedCompletionAt, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt, &companyTradeName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if companyTradeName != "" {
		o.Company = &entities.Company{ID: o.CompanyID, TradeName: companyTradeName}
	}
	return &o, nil
}

var serviceOrderJoinedColumns = []string{
	"o.id", "o.code", "o.company_id", "o.service_type", "o.priority", "o.status", "o.description",
	"o.internal_notes", "o.closing_notes", "o.opened_at", "o.expected_completion_at", "o.completed_at",
	"o.created_at", "o.updated_at",
	"COALESCE(c.trade_name, '')",
}

func (r *ServiceOrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.ServiceOrder, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"o.code": pat},
				sq.ILike{"o.description": pat},
				sq.ILike{"c.trade_name": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(o.id)").
		From(serviceOrderTable + " AS o").
		LeftJoin("companies c ON o.company_id = c.id")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, serviceOrderMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	if total == 0 {
		return []entities.ServiceOrder{}, 0, nil
	}

	baseBuilder := psql.Select(serviceOrderJoinedColumns...).
		From(serviceOrderTable + " AS o").
		LeftJoin("companies c ON o.company_id = c.id")
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("o.created_at DESC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, serviceOrderMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	orders := make([]entities.ServiceOrder, 0, filter.Limit)
	for rows.Next() {
		order, err := scanServiceOrderWithCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

// GetAllOrders returns every order in scan (insertion) order. The
// aggregation engine depends on this ordering for its distributions.
func (r *ServiceOrderRepository) GetAllOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderFields + ` FROM service_orders ORDER BY created_at ASC`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	orders := make([]entities.ServiceOrder, 0)
	for rows.Next() {
		order, err := scanServiceOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *ServiceOrderRepository) GetRecentOrders(ctx context.Context, limit int) ([]entities.ServiceOrder, error) {
	query := `
		SELECT o.id, o.code, o.company_id, o.service_type, o.priority, o.status, o.description,
		       o.internal_notes, o.closing_notes, o.opened_at, o.expected_completion_at, o.completed_at,
		       o.created_at, o.updated_at, COALESCE(c.trade_name, '')
		FROM service_orders o
		LEFT JOIN companies c ON o.company_id = c.id
		ORDER BY o.created_at DESC
		LIMIT $1`
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	orders := make([]entities.ServiceOrder, 0, limit)
	for rows.Next() {
		order, err := scanServiceOrderWithCompany(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *ServiceOrderRepository) FindOrder(ctx context.Context, id uuid.UUID) (*entities.ServiceOrder, error) {
	query := `
		SELECT o.id, o.code, o.company_id, o.service_type, o.priority, o.status, o.description,
		       o.internal_notes, o.closing_notes, o.opened_at, o.expected_completion_at, o.completed_at,
		       o.created_at, o.updated_at, COALESCE(c.trade_name, '')
		FROM service_orders o
		LEFT JOIN companies c ON o.company_id = c.id
		WHERE o.id = $1`
	return scanServiceOrderWithCompany(r.storage.QueryRow(ctx, query, id))
}

func (r *ServiceOrderRepository) CreateOrderInTx(ctx context.Context, tx pgx.Tx, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	query := `
		INSERT INTO service_orders (code, company_id, service_type, priority, status, description,
			internal_notes, opened_at, expected_completion_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + serviceOrderFields
	return scanServiceOrder(tx.QueryRow(ctx, query,
		order.Code, order.CompanyID, order.ServiceType, order.Priority, order.Status,
		order.Description, order.InternalNotes, order.OpenedAt, order.ExpectedCompletionAt,
	))
}

func (r *ServiceOrderRepository) UpdateOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	query := `
		UPDATE service_orders
		SET company_id = $1, service_type = $2, priority = $3, status = $4, description = $5,
		    internal_notes = $6, closing_notes = $7, expected_completion_at = $8, completed_at = $9,
		    updated_at = NOW()
		WHERE id = $10
		RETURNING ` + serviceOrderFields
	return scanServiceOrder(tx.QueryRow(ctx, query,
		order.CompanyID, order.ServiceType, order.Priority, order.Status, order.Description,
		order.InternalNotes, order.ClosingNotes, order.ExpectedCompletionAt, order.CompletedAt, id,
	))
}

func (r *ServiceOrderRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status entities.OrderStatus, completedAt *time.Time) (*entities.ServiceOrder, error) {
	query := `
		UPDATE service_orders
		SET status = $1, completed_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + serviceOrderFields
	return scanServiceOrder(tx.QueryRow(ctx, query, status, completedAt, id))
}

func (r *ServiceOrderRepository) DeleteOrderInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
