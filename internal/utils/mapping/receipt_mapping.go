package mapping

import (
	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:     d.ReceiptID,
		TenantID:      d.TenantID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		VoucherType:   models.VoucherType(d.VoucherType),
		VoucherNumber: d.VoucherNumber,
		Amount:        d.Amount,
		ReceiptDate:   d.ReceiptDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		TenantID:      m.TenantID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		VoucherType:   domain.VoucherType(m.VoucherType),
		VoucherNumber: m.VoucherNumber,
		Amount:        m.Amount,
		ReceiptDate:   m.ReceiptDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to a slice of domain Receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
