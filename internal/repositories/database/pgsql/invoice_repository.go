package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	"github.com/recovhq/recov_backend/internal/models"
	"github.com/recovhq/recov_backend/internal/utils/mapping"
	"github.com/recovhq/recov_backend/internal/utils/pagination"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceSelectColumns = `
	invoice_id, tenant_id, customer_id, customer_name, invoice_number, amount,
	invoice_date, due_date, created_at, created_by, last_updated_at, last_updated_by
`

func scanInvoiceRow(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.TenantID,
		&m.CustomerID,
		&m.CustomerName,
		&m.InvoiceNumber,
		&m.Amount,
		&m.InvoiceDate,
		&m.DueDate,
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

func (r *PgxInvoiceRepository) collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	defer rows.Close()
	modelInvoices := []models.Invoice{}
	for rows.Next() {
		m, scanErr := scanInvoiceRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", scanErr)
		}
		modelInvoices = append(modelInvoices, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", rows.Err())
	}
	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (
			invoice_id, tenant_id, customer_id, customer_name, invoice_number, amount,
			invoice_date, due_date, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.TenantID,
		m.CustomerID,
		m.CustomerName,
		m.InvoiceNumber,
		m.Amount,
		m.InvoiceDate,
		m.DueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("invoice number " + invoice.InvoiceNumber + " already exists in tenant")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("customer does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save invoice "+invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET invoice_number = $1, invoice_date = $2, due_date = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND invoice_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.InvoiceNumber,
		m.InvoiceDate,
		m.DueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TenantID,
		m.InvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, tenantID, invoiceID string) error {
	query := `DELETE FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceSelectColumns + ` FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	m, err := scanInvoiceRow(r.Pool.QueryRow(ctx, query, tenantID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(*m)
	return &invoice, nil
}

// ListInvoices retrieves a paginated list of invoices using token-based pagination.
// Ordering is invoice_date DESC, created_at DESC; the token carries the cursor values.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, tenantID string, customerID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + invoiceSelectColumns + ` FROM invoices`
	filterClause := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if customerID != nil && *customerID != "" {
		args = append(args, *customerID)
		filterClause += ` AND customer_id = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison is concise and efficient in Postgres
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (invoice_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + ` ORDER BY invoice_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices for tenant "+tenantID, err)
	}

	invoices, err := r.collectInvoices(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(invoices) > limit {
		last := invoices[limit-1]
		newToken := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		nextTokenVal = &newToken
		invoices = invoices[:limit]
	}

	return invoices, nextTokenVal, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByCustomer(ctx context.Context, tenantID, customerID string, asOf time.Time) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceSelectColumns + `
		FROM invoices
		WHERE tenant_id = $1 AND customer_id = $2 AND invoice_date <= $3
		ORDER BY invoice_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, customerID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for customer "+customerID, err)
	}
	return r.collectInvoices(rows)
}

func (r *PgxInvoiceRepository) FindInvoicesByTenant(ctx context.Context, tenantID string, asOf time.Time) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceSelectColumns + `
		FROM invoices
		WHERE tenant_id = $1 AND invoice_date <= $2
		ORDER BY invoice_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for tenant "+tenantID, err)
	}
	return r.collectInvoices(rows)
}
