package models

import "time"

type TaskStatus string

const (
	PendingTaskStatus    TaskStatus = "pending"
	TodoTaskStatus       TaskStatus = "todo"
	InProgressTaskStatus TaskStatus = "in_progress"
	CompletedTaskStatus  TaskStatus = "completed"
)

// WorkflowTask is a checklist item attached to a workflow. Order indexes are
// assigned sequentially 0..N-1 at creation and define the display sequence.
type WorkflowTask struct {
	ID          string     `json:"id" db:"id"`                   // UUID assigned at insert
	WorkflowID  string     `json:"workflow_id" db:"workflow_id"` // Foreign key to Workflow
	Title       string     `json:"title" db:"title"`
	OrderIndex  int        `json:"order_index" db:"order_index"`
	Status      TaskStatus `json:"status" db:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"` // Set only on completion
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// ContentTask is a unit of work attached to a content pipeline item. Unlike
// workflow checklist tasks it carries a priority, a due date and effort
// estimates.
type ContentTask struct {
	ID                string     `json:"id" db:"id"`
	UserID            string     `json:"user_id" db:"user_id"`
	ContentPipelineID string     `json:"content_pipeline_id" db:"content_pipeline_id"` // Parent pipeline item
	Title             string     `json:"title" db:"title"`
	Description       string     `json:"description,omitempty" db:"description"`
	TaskType          string     `json:"task_type" db:"task_type"` // e.g., "writing", "editing", "design"
	Priority          Priority   `json:"priority" db:"priority"`
	DueDate           *time.Time `json:"due_date,omitempty" db:"due_date"`
	EstimatedHours    *float64   `json:"estimated_hours,omitempty" db:"estimated_hours"`
	ActualHours       *float64   `json:"actual_hours,omitempty" db:"actual_hours"` // Recorded on completion
	AssignedTo        string     `json:"assigned_to" db:"assigned_to"`
	Status            TaskStatus `json:"status" db:"status"`
	CompletedAt       *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}
