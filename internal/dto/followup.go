package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// CreateFollowUpRequest defines data for scheduling a collection follow-up.
type CreateFollowUpRequest struct {
	CustomerID  string    `json:"customerID" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Note        string    `json:"note"`
	Priority    string    `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
}

// ListFollowUpsParams defines query parameters for listing follow-ups.
type ListFollowUpsParams struct {
	Status *string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
}

// FollowUpResponse defines data returned for a follow-up.
type FollowUpResponse struct {
	FollowUpID  string     `json:"followUpID"`
	TenantID    string     `json:"tenantID"`
	CustomerID  string     `json:"customerID"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Note        string     `json:"note,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
}

// ToFollowUpResponse converts domain.FollowUp to DTO.
func ToFollowUpResponse(f *domain.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		FollowUpID:  f.FollowUpID,
		TenantID:    f.TenantID,
		CustomerID:  f.CustomerID,
		ScheduledAt: f.ScheduledAt,
		Note:        f.Note,
		Priority:    string(f.Priority),
		Status:      string(f.Status),
		CompletedAt: f.CompletedAt,
		CreatedAt:   f.CreatedAt,
		CreatedBy:   f.CreatedBy,
	}
}

// ListFollowUpsResponse wraps a list of follow-ups.
type ListFollowUpsResponse struct {
	FollowUps []FollowUpResponse `json:"followUps"`
}

// ToListFollowUpsResponse converts a slice of domain.FollowUp to DTO.
func ToListFollowUpsResponse(fs []domain.FollowUp) ListFollowUpsResponse {
	list := make([]FollowUpResponse, len(fs))
	for i := range fs {
		list[i] = ToFollowUpResponse(&fs[i])
	}
	return ListFollowUpsResponse{FollowUps: list}
}
