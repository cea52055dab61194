package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/utils/receivables"
	"github.com/shopspring/decimal"
)

// DebtorsService builds the tenant-wide outstanding receivables report.
type DebtorsService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
}

// NewDebtorsService creates a new DebtorsService.
func NewDebtorsService(cr portsrepo.CustomerRepositoryFacade, ir portsrepo.InvoiceRepositoryFacade, rr portsrepo.ReceiptRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.DebtorsSvcFacade {
	return &DebtorsService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		customerRepo: cr,
		invoiceRepo:  ir,
		receiptRepo:  rr,
	}
}

// Ensure DebtorsService implements the portssvc.DebtorsSvcFacade interface
var _ portssvc.DebtorsSvcFacade = (*DebtorsService)(nil)

// customerDocs collects one customer's invoices and receipts dated on or before asOf.
type customerDocs struct {
	invoices []domain.Invoice
	receipts []domain.Receipt
}

// DebtorsReport aggregates per-customer invoice and receipt totals as of a date
// and returns the customers that still owe money, grouped by category.
// Deactivated customers with outstanding balances are still reported.
// Requires READONLY role.
func (s *DebtorsService) DebtorsReport(ctx context.Context, tenantID string, asOf time.Time, requestingUserID string) (*domain.DebtorsReport, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListCustomers(ctx, tenantID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers for debtors report", slog.String("tenant_id", tenantID))
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindInvoicesByTenant(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for debtors report", slog.String("tenant_id", tenantID))
		return nil, err
	}
	receipts, err := s.receiptRepo.FindReceiptsByTenant(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load receipts for debtors report", slog.String("tenant_id", tenantID))
		return nil, err
	}

	docsByCustomer := make(map[string]*customerDocs, len(customers))
	for _, inv := range invoices {
		docs := docsByCustomer[inv.CustomerID]
		if docs == nil {
			docs = &customerDocs{}
			docsByCustomer[inv.CustomerID] = docs
		}
		docs.invoices = append(docs.invoices, inv)
	}
	for _, rct := range receipts {
		docs := docsByCustomer[rct.CustomerID]
		if docs == nil {
			docs = &customerDocs{}
			docsByCustomer[rct.CustomerID] = docs
		}
		docs.receipts = append(docs.receipts, rct)
	}

	debtorsByCategory := make(map[domain.CustomerCategory][]domain.DebtorSummary, len(domain.CustomerCategories))
	totalInvoiced := decimal.Zero
	totalReceived := decimal.Zero
	debtorCount := 0

	for _, customer := range customers {
		docs := docsByCustomer[customer.CustomerID]
		if docs == nil {
			continue
		}

		summary := summarizeDebtor(customer, docs, asOf)
		// Customers that owe nothing (or are in credit) are not debtors.
		if !summary.Balance.IsPositive() {
			continue
		}

		debtorsByCategory[customer.Category] = append(debtorsByCategory[customer.Category], summary)
		totalInvoiced = totalInvoiced.Add(summary.TotalInvoices)
		totalReceived = totalReceived.Add(summary.TotalReceipts)
		debtorCount++
	}

	// Groups appear in fixed category order; within a group, biggest debt first.
	groups := make([]domain.DebtorCategoryGroup, 0, len(domain.CustomerCategories))
	for _, category := range domain.CustomerCategories {
		debtors := debtorsByCategory[category]
		sort.SliceStable(debtors, func(i, j int) bool {
			if !debtors[i].Balance.Equal(debtors[j].Balance) {
				return debtors[i].Balance.GreaterThan(debtors[j].Balance)
			}
			if debtors[i].CustomerName != debtors[j].CustomerName {
				return debtors[i].CustomerName < debtors[j].CustomerName
			}
			return debtors[i].CustomerID < debtors[j].CustomerID
		})

		groupTotal := decimal.Zero
		for _, d := range debtors {
			groupTotal = groupTotal.Add(d.Balance)
		}
		if debtors == nil {
			debtors = []domain.DebtorSummary{}
		}
		groups = append(groups, domain.DebtorCategoryGroup{
			Category:     category,
			Debtors:      debtors,
			TotalBalance: groupTotal,
			DebtorCount:  len(debtors),
		})
	}

	report := &domain.DebtorsReport{
		TenantID:      tenantID,
		AsOf:          asOf,
		Groups:        groups,
		TotalInvoiced: totalInvoiced,
		TotalReceived: totalReceived,
		TotalBalance:  totalInvoiced.Sub(totalReceived),
		DebtorCount:   debtorCount,
	}

	s.LogDebug(ctx, "Debtors report built", slog.String("tenant_id", tenantID), slog.Int("debtor_count", debtorCount))
	return report, nil
}

// summarizeDebtor computes one customer's report row from their documents.
func summarizeDebtor(customer domain.Customer, docs *customerDocs, asOf time.Time) domain.DebtorSummary {
	totalInvoices := decimal.Zero
	var lastInvoiceDate *time.Time
	for i := range docs.invoices {
		totalInvoices = totalInvoices.Add(docs.invoices[i].Amount)
		d := docs.invoices[i].InvoiceDate
		if lastInvoiceDate == nil || d.After(*lastInvoiceDate) {
			lastInvoiceDate = &d
		}
	}

	totalReceipts := decimal.Zero
	var lastPaymentDate *time.Time
	for i := range docs.receipts {
		totalReceipts = totalReceipts.Add(docs.receipts[i].Amount)
		d := docs.receipts[i].ReceiptDate
		if lastPaymentDate == nil || d.After(*lastPaymentDate) {
			lastPaymentDate = &d
		}
	}

	settlements := receivables.SettleFIFO(docs.invoices, docs.receipts)

	return domain.DebtorSummary{
		CustomerID:      customer.CustomerID,
		CustomerName:    customer.Name,
		Category:        customer.Category,
		TotalInvoices:   totalInvoices,
		TotalReceipts:   totalReceipts,
		Balance:         totalInvoices.Sub(totalReceipts),
		InvoiceCount:    len(docs.invoices),
		ReceiptCount:    len(docs.receipts),
		LastInvoiceDate: lastInvoiceDate,
		LastPaymentDate: lastPaymentDate,
		Aging:           receivables.AgingBuckets(settlements, asOf),
	}
}
