package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository into a provider for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		TenantRepo:   newPgxTenantRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		ReceiptRepo:  newPgxReceiptRepository(dbPool),
		FollowUpRepo: newPgxFollowUpRepository(dbPool),
	}
}
