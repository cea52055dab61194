package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	"github.com/recovhq/recov_backend/internal/models"
	"github.com/recovhq/recov_backend/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer master data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerSelectColumns = `
	customer_id, tenant_id, name, category, credit_limit, phone, email, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanCustomerRow(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.TenantID,
		&m.Name,
		&m.Category,
		&m.CreditLimit,
		&m.Phone,
		&m.Email,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (
			customer_id, tenant_id, name, category, credit_limit, phone, email, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.TenantID,
		m.Name,
		m.Category,
		m.CreditLimit,
		m.Phone,
		m.Email,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("customer " + customer.Name + " already exists in tenant")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save customer "+customer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $1, category = $2, credit_limit = $3, phone = $4, email = $5,
		    is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE tenant_id = $9 AND customer_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Category,
		m.CreditLimit,
		m.Phone,
		m.Email,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TenantID,
		m.CustomerID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update customer "+customer.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, tenantID, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerSelectColumns + ` FROM customers WHERE tenant_id = $1 AND customer_id = $2;`
	m, err := scanCustomerRow(r.Pool.QueryRow(ctx, query, tenantID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID, err)
	}
	customer := mapping.ToDomainCustomer(*m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Customer, error) {
	query := `SELECT ` + customerSelectColumns + ` FROM customers WHERE tenant_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	// Stable ordering keeps report output deterministic.
	query += ` ORDER BY name ASC, customer_id ASC;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelCustomers := []models.Customer{}
	for rows.Next() {
		m, scanErr := scanCustomerRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", scanErr)
		}
		modelCustomers = append(modelCustomers, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer rows", rows.Err())
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}
