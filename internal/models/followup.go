package models

import "time"

// FollowUp is a scheduled collection action against a customer.
type FollowUp struct {
	FollowUpID  string     `db:"follow_up_id"`
	TenantID    string     `db:"tenant_id"`
	CustomerID  string     `db:"customer_id"`
	ScheduledAt time.Time  `db:"scheduled_at"`
	Note        string     `db:"note"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	CompletedAt *time.Time `db:"completed_at"`
	AuditFields
}
