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

type PgxFollowUpRepository struct {
	BaseRepository
}

// newPgxFollowUpRepository creates a new repository for follow-up data.
func newPgxFollowUpRepository(pool *pgxpool.Pool) portsrepo.FollowUpRepositoryFacade {
	return &PgxFollowUpRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFollowUpRepository implements portsrepo.FollowUpRepositoryFacade
var _ portsrepo.FollowUpRepositoryFacade = (*PgxFollowUpRepository)(nil)

const followUpSelectColumns = `
	follow_up_id, tenant_id, customer_id, scheduled_at, note, priority, status,
	completed_at, created_at, created_by, last_updated_at, last_updated_by
`

func scanFollowUpRow(row pgx.Row) (*models.FollowUp, error) {
	var m models.FollowUp
	err := row.Scan(
		&m.FollowUpID,
		&m.TenantID,
		&m.CustomerID,
		&m.ScheduledAt,
		&m.Note,
		&m.Priority,
		&m.Status,
		&m.CompletedAt,
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

func (r *PgxFollowUpRepository) collectFollowUps(rows pgx.Rows) ([]domain.FollowUp, error) {
	defer rows.Close()
	modelFollowUps := []models.FollowUp{}
	for rows.Next() {
		m, scanErr := scanFollowUpRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan follow-up row", scanErr)
		}
		modelFollowUps = append(modelFollowUps, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating follow-up rows", rows.Err())
	}
	return mapping.ToDomainFollowUpSlice(modelFollowUps), nil
}

func (r *PgxFollowUpRepository) SaveFollowUp(ctx context.Context, followUp domain.FollowUp) error {
	m := mapping.ToModelFollowUp(followUp)
	query := `
		INSERT INTO follow_ups (
			follow_up_id, tenant_id, customer_id, scheduled_at, note, priority, status,
			completed_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FollowUpID,
		m.TenantID,
		m.CustomerID,
		m.ScheduledAt,
		m.Note,
		m.Priority,
		m.Status,
		m.CompletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("customer does not exist")
		}
		return apperrors.NewAppError(500, "failed to save follow-up "+followUp.FollowUpID, err)
	}
	return nil
}

func (r *PgxFollowUpRepository) UpdateFollowUp(ctx context.Context, followUp domain.FollowUp) error {
	m := mapping.ToModelFollowUp(followUp)
	query := `
		UPDATE follow_ups
		SET scheduled_at = $1, note = $2, priority = $3, status = $4, completed_at = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $8 AND follow_up_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ScheduledAt,
		m.Note,
		m.Priority,
		m.Status,
		m.CompletedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TenantID,
		m.FollowUpID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update follow-up "+followUp.FollowUpID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFollowUpRepository) DeleteFollowUp(ctx context.Context, tenantID, followUpID string) error {
	query := `DELETE FROM follow_ups WHERE tenant_id = $1 AND follow_up_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, followUpID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete follow-up "+followUpID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFollowUpRepository) FindFollowUpByID(ctx context.Context, tenantID, followUpID string) (*domain.FollowUp, error) {
	query := `SELECT ` + followUpSelectColumns + ` FROM follow_ups WHERE tenant_id = $1 AND follow_up_id = $2;`
	m, err := scanFollowUpRow(r.Pool.QueryRow(ctx, query, tenantID, followUpID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find follow-up by ID "+followUpID, err)
	}
	followUp := mapping.ToDomainFollowUp(*m)
	return &followUp, nil
}

func (r *PgxFollowUpRepository) ListFollowUps(ctx context.Context, tenantID string, status *domain.FollowUpStatus) ([]domain.FollowUp, error) {
	query := `SELECT ` + followUpSelectColumns + ` FROM follow_ups WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	if status != nil {
		args = append(args, string(*status))
		query += ` AND status = $2`
	}
	query += ` ORDER BY scheduled_at ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query follow-ups for tenant "+tenantID, err)
	}
	return r.collectFollowUps(rows)
}

func (r *PgxFollowUpRepository) ListFollowUpsByCustomer(ctx context.Context, tenantID, customerID string) ([]domain.FollowUp, error) {
	query := `SELECT ` + followUpSelectColumns + `
		FROM follow_ups
		WHERE tenant_id = $1 AND customer_id = $2
		ORDER BY scheduled_at ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query follow-ups for customer "+customerID, err)
	}
	return r.collectFollowUps(rows)
}
