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

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryWithTx {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTenantRepository implements portsrepo.TenantRepositoryWithTx
var _ portsrepo.TenantRepositoryWithTx = (*PgxTenantRepository)(nil)

const tenantSelectColumns = `
	t.tenant_id, t.name, t.description, t.is_active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
`

func scanTenantRow(row pgx.Row) (*models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID,
		&m.Name,
		&m.Description,
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

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (
			tenant_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("tenant ID " + tenant.TenantID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save tenant "+tenant.TenantID, err)
	}
	return nil
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		UPDATE tenants
		SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant "+tenant.TenantID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantSelectColumns + ` FROM tenants t WHERE t.tenant_id = $1;`
	m, err := scanTenantRow(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tenant by ID "+tenantID, err)
	}
	tenant := mapping.ToDomainTenant(*m)
	return &tenant, nil
}

func (r *PgxTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantSelectColumns + `
		FROM tenants t
		JOIN user_tenants ut ON ut.tenant_id = t.tenant_id
		WHERE ut.user_id = $1 AND ut.role != 'REMOVED'
		ORDER BY t.created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants for user "+userID, err)
	}
	defer rows.Close()

	modelTenants := []models.Tenant{}
	for rows.Next() {
		m, scanErr := scanTenantRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tenant row", scanErr)
		}
		modelTenants = append(modelTenants, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating tenant rows", rows.Err())
	}

	return mapping.ToDomainTenantSlice(modelTenants), nil
}

func (r *PgxTenantRepository) AddUserToTenant(ctx context.Context, membership domain.UserTenant) error {
	// Upsert: add user or update their role if they already exist
	query := `
		INSERT INTO user_tenants (user_id, tenant_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tenant_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.TenantID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in tenant "+membership.TenantID, err)
	}
	return nil
}

func (r *PgxTenantRepository) FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error) {
	query := `
		SELECT ut.user_id, u.name, ut.tenant_id, ut.role, ut.joined_at
		FROM user_tenants ut
		JOIN users u ON u.user_id = ut.user_id
		WHERE ut.user_id = $1 AND ut.tenant_id = $2;
	`
	var m models.UserTenant
	err := r.Pool.QueryRow(ctx, query, userID, tenantID).Scan(
		&m.UserID,
		&m.UserName,
		&m.TenantID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID+" in tenant "+tenantID, err)
	}
	membership := mapping.ToDomainUserTenant(m)
	return &membership, nil
}

func (r *PgxTenantRepository) UpdateUserTenantRole(ctx context.Context, userID, tenantID string, role domain.UserTenantRole) error {
	query := `
		UPDATE user_tenants
		SET role = $1
		WHERE user_id = $2 AND tenant_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, role, userID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role for user "+userID+" in tenant "+tenantID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTenantRepository) ListTenantUsers(ctx context.Context, tenantID string) ([]domain.UserTenant, error) {
	query := `
		SELECT ut.user_id, u.name, ut.tenant_id, ut.role, ut.joined_at
		FROM user_tenants ut
		JOIN users u ON u.user_id = ut.user_id
		WHERE ut.tenant_id = $1 AND ut.role != 'REMOVED'
		ORDER BY ut.joined_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users for tenant "+tenantID, err)
	}
	defer rows.Close()

	memberships := []models.UserTenant{}
	for rows.Next() {
		var m models.UserTenant
		scanErr := rows.Scan(&m.UserID, &m.UserName, &m.TenantID, &m.Role, &m.JoinedAt)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan membership row", scanErr)
		}
		memberships = append(memberships, m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating membership rows", rows.Err())
	}

	return mapping.ToDomainUserTenantSlice(memberships), nil
}
