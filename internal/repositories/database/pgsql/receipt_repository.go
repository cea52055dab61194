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

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptSelectColumns = `
	receipt_id, tenant_id, customer_id, customer_name, voucher_type, voucher_number,
	amount, receipt_date, created_at, created_by, last_updated_at, last_updated_by
`

func scanReceiptRow(row pgx.Row) (*models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.TenantID,
		&m.CustomerID,
		&m.CustomerName,
		&m.VoucherType,
		&m.VoucherNumber,
		&m.Amount,
		&m.ReceiptDate,
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

func (r *PgxReceiptRepository) collectReceipts(rows pgx.Rows) ([]domain.Receipt, error) {
	defer rows.Close()
	modelReceipts := []models.Receipt{}
	for rows.Next() {
		m, scanErr := scanReceiptRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt row", scanErr)
		}
		modelReceipts = append(modelReceipts, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating receipt rows", rows.Err())
	}
	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO receipts (
			receipt_id, tenant_id, customer_id, customer_name, voucher_type, voucher_number,
			amount, receipt_date, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.TenantID,
		m.CustomerID,
		m.CustomerName,
		m.VoucherType,
		m.VoucherNumber,
		m.Amount,
		m.ReceiptDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("voucher number " + receipt.VoucherNumber + " already exists in tenant")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("customer does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save receipt "+receipt.ReceiptID, err)
	}
	return nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, tenantID, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptSelectColumns + ` FROM receipts WHERE tenant_id = $1 AND receipt_id = $2;`
	m, err := scanReceiptRow(r.Pool.QueryRow(ctx, query, tenantID, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receipt by ID "+receiptID, err)
	}
	receipt := mapping.ToDomainReceipt(*m)
	return &receipt, nil
}

// ListReceipts retrieves a paginated list of receipts using token-based pagination.
// Ordering is receipt_date DESC, created_at DESC; the token carries the cursor values.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, tenantID string, customerID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + receiptSelectColumns + ` FROM receipts`
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
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (receipt_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + ` ORDER BY receipt_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query receipts for tenant "+tenantID, err)
	}

	receipts, err := r.collectReceipts(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(receipts) > limit {
		last := receipts[limit-1]
		newToken := pagination.EncodeToken(last.ReceiptDate, last.CreatedAt)
		nextTokenVal = &newToken
		receipts = receipts[:limit]
	}

	return receipts, nextTokenVal, nil
}

func (r *PgxReceiptRepository) FindReceiptsByCustomer(ctx context.Context, tenantID, customerID string, asOf time.Time) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptSelectColumns + `
		FROM receipts
		WHERE tenant_id = $1 AND customer_id = $2 AND receipt_date <= $3
		ORDER BY receipt_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, customerID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receipts for customer "+customerID, err)
	}
	return r.collectReceipts(rows)
}

func (r *PgxReceiptRepository) FindReceiptsByTenant(ctx context.Context, tenantID string, asOf time.Time) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptSelectColumns + `
		FROM receipts
		WHERE tenant_id = $1 AND receipt_date <= $2
		ORDER BY receipt_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receipts for tenant "+tenantID, err)
	}
	return r.collectReceipts(rows)
}
