package services

import (
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and returns
// the container handlers consume.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	tenantService := NewTenantService(repos.TenantRepo, repos.UserRepo)

	// The tenant service doubles as the authorizer for everything tenant-scoped.
	var authorizer portssvc.TenantAuthorizerSvc = tenantService

	customerService := NewCustomerService(repos.CustomerRepo, authorizer)
	invoiceService := NewInvoiceService(repos.InvoiceRepo, repos.ReceiptRepo, repos.CustomerRepo, authorizer)
	receiptService := NewReceiptService(repos.ReceiptRepo, repos.CustomerRepo, authorizer)
	followUpService := NewFollowUpService(repos.FollowUpRepo, repos.CustomerRepo, authorizer)

	debtorsService := NewDebtorsService(repos.CustomerRepo, repos.InvoiceRepo, repos.ReceiptRepo, authorizer)
	ledgerService := NewLedgerService(repos.CustomerRepo, repos.InvoiceRepo, repos.ReceiptRepo, authorizer)
	scorecardService := NewScorecardService(repos.CustomerRepo, repos.InvoiceRepo, repos.ReceiptRepo, authorizer)

	tokenService := NewTokenService(cfg, userService)
	googleOAuthHandlerService := NewGoogleOAuthHandlerService(cfg)

	return &portssvc.ServiceContainer{
		User:               userService,
		Tenant:             tenantService,
		Customer:           customerService,
		Invoice:            invoiceService,
		Receipt:            receiptService,
		FollowUp:           followUpService,
		Debtors:            debtorsService,
		Ledger:             ledgerService,
		Scorecard:          scorecardService,
		TokenService:       tokenService,
		GoogleOAuthHandler: googleOAuthHandlerService,
	}
}
