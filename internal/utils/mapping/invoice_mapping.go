package mapping

import (
	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		TenantID:      d.TenantID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		InvoiceNumber: d.InvoiceNumber,
		Amount:        d.Amount,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		TenantID:      m.TenantID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		InvoiceNumber: m.InvoiceNumber,
		Amount:        m.Amount,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
