package models

import (
	"time"

	"github.com/lib/pq"
)

type WorkflowStatus string

const (
	PlannedWorkflowStatus    WorkflowStatus = "planned"
	InProgressWorkflowStatus WorkflowStatus = "in_progress"
	PublishedWorkflowStatus  WorkflowStatus = "published"
)

// ValidWorkflowStatus reports whether s is one of the known statuses.
func ValidWorkflowStatus(s WorkflowStatus) bool {
	switch s {
	case PlannedWorkflowStatus, InProgressWorkflowStatus, PublishedWorkflowStatus:
		return true
	}
	return false
}

// CanTransition reports whether a workflow may move from one status to the
// next. Statuses form a strict forward-only chain:
// planned -> in_progress -> published.
func CanTransition(from, to WorkflowStatus) bool {
	switch from {
	case PlannedWorkflowStatus:
		return to == InProgressWorkflowStatus
	case InProgressWorkflowStatus:
		return to == PublishedWorkflowStatus
	}
	return false
}

// Workflow represents a content project tracked from planning to publication.
type Workflow struct {
	ID          string         `json:"id" db:"id"`                     // UUID assigned at insert
	UserID      string         `json:"user_id" db:"user_id"`           // Owning user
	Title       string         `json:"title" db:"title"`               // Descriptive title (e.g., "March newsletter")
	ContentType string         `json:"content_type" db:"content_type"` // e.g., "Blog Post", "Video Script"
	Platforms   pq.StringArray `json:"platforms" db:"platforms"`       // Target platforms
	TargetDate  *time.Time     `json:"target_date,omitempty" db:"target_date"`
	Status      WorkflowStatus `json:"status" db:"status"` // "planned", "in_progress", "published"
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	Tasks       []WorkflowTask `json:"tasks,omitempty"` // Populated at runtime, not a column
}
