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

const companyTable = "companies"

const companyFields = `id, legal_name, trade_name, tax_id, kind, parent_company_id,
	address, primary_contact, status, created_at, updated_at`

var companyMap = map[string]string{
	"id":         "c.id",
	"legal_name": "c.legal_name",
	"trade_name": "c.trade_name",
	"tax_id":     "c.tax_id",
	"kind":       "c.kind",
	"status":     "c.status",
	"created_at": "c.created_at",
	"updated_at": "c.updated_at",
}

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error)
	GetAllCompanies(ctx context.Context) ([]entities.Company, error)
	FindCompany(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	CreateCompany(ctx context.Context, company entities.Company) (*entities.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, company entities.Company) (*entities.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

type CompanyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCompanyRepository(storage *pgxpool.Pool, logger *zap.Logger) CompanyRepositoryInterface {
	return &CompanyRepository{storage: storage, logger: logger}
}

func scanCompany(row pgx.Row) (*entities.Company, error) {
	var c entities.Company
	err := row.Scan(
		&c.ID, &c.LegalName, &c.TradeName, &c.TaxID, &c.Kind, &c.ParentCompanyID,
		&c.Address, &c.PrimaryContact, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return &c, nil
}

func (r *CompanyRepository) GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"c.legal_name": pat},
				sq.ILike{"c.trade_name": pat},
				sq.ILike{"c.tax_id": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(c.id)").From(companyTable + " AS c")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, companyMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	if total == 0 {
		return []entities.Company{}, 0, nil
	}

	baseBuilder := psql.Select(
		"c.id", "c.legal_name", "c.trade_name", "c.tax_id", "c.kind", "c.parent_company_id",
		"c.address", "c.primary_contact", "c.status", "c.created_at", "c.updated_at",
	).From(companyTable + " AS c")
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("c.trade_name ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, companyMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0, filter.Limit)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *company)
	}
	return companies, total, rows.Err()
}

// GetAllCompanies returns the full, unfiltered company set for the
// aggregation engine.
func (r *CompanyRepository) GetAllCompanies(ctx context.Context) ([]entities.Company, error) {
	query := `SELECT ` + companyFields + ` FROM companies ORDER BY created_at ASC`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) FindCompany(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	query := `SELECT ` + companyFields + ` FROM companies WHERE id = $1`
	return scanCompany(r.storage.QueryRow(ctx, query, id))
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company entities.Company) (*entities.Company, error) {
	query := `
		INSERT INTO companies (legal_name, trade_name, tax_id, kind, parent_company_id, address, primary_contact, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + companyFields
	return scanCompany(r.storage.QueryRow(ctx, query,
		company.LegalName, company.TradeName, company.TaxID, company.Kind,
		company.ParentCompanyID, company.Address, company.PrimaryContact, company.Status,
	))
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, id uuid.UUID, company entities.Company) (*entities.Company, error) {
	query := `
		UPDATE companies
		SET legal_name = $1, trade_name = $2, tax_id = $3, kind = $4, parent_company_id = $5,
		    address = $6, primary_contact = $7, status = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + companyFields
	return scanCompany(r.storage.QueryRow(ctx, query,
		company.LegalName, company.TradeName, company.TaxID, company.Kind,
		company.ParentCompanyID, company.Address, company.PrimaryContact, company.Status, id,
	))
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
