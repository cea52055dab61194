package domain

import "time"

// FollowUpStatus indicates the state of a collection follow-up.
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "PENDING"
	FollowUpCompleted FollowUpStatus = "COMPLETED"
)

// FollowUpPriority ranks how urgently a follow-up should happen.
type FollowUpPriority string

const (
	PriorityLow    FollowUpPriority = "LOW"
	PriorityMedium FollowUpPriority = "MEDIUM"
	PriorityHigh   FollowUpPriority = "HIGH"
)

// FollowUp is a scheduled collection action against a customer.
type FollowUp struct {
	FollowUpID  string           `json:"followUpID"` // Primary Key (e.g., UUID)
	TenantID    string           `json:"tenantID"`   // FK -> tenants.tenant_id (NON-NULL)
	CustomerID  string           `json:"customerID"` // FK -> customers.customer_id (NON-NULL)
	ScheduledAt time.Time        `json:"scheduledAt"`
	Note        string           `json:"note"`
	Priority    FollowUpPriority `json:"priority"`
	Status      FollowUpStatus   `json:"status"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	AuditFields
}
