package storage

import (
	"time"

	"github.com/pkg/errors"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations the services depend on. Every
// write is a single remote round trip; the adapter does no local batching
// and no optimistic locking, so concurrent writers to the same record race
// with last-write-wins semantics at the store.
type Store interface {
	// Workflow operations
	SaveWorkflow(w models.Workflow) (models.Workflow, error)
	GetWorkflow(id string) (models.Workflow, error)
	ListWorkflows(userID string) ([]models.Workflow, error)
	UpdateWorkflowStatus(id string, status models.WorkflowStatus) error
	DeleteWorkflow(id string) error

	// Workflow checklist tasks
	SaveWorkflowTask(t models.WorkflowTask) (models.WorkflowTask, error)
	ListWorkflowTasks(workflowID string) ([]models.WorkflowTask, error)
	UpdateWorkflowTaskStatus(id string, status models.TaskStatus, completedAt *time.Time) error

	// Content projects
	SaveContentProject(p models.ContentProject) (models.ContentProject, error)
	ListContentProjects(userID string) ([]models.ContentProject, error)

	// Content pipeline items
	SaveContentItem(c models.ContentItem) (models.ContentItem, error)
	GetContentItem(id string) (models.ContentItem, error)
	ListContentItems(userID string, stage *models.Stage) ([]models.ContentItem, error)
	UpdateContentStage(id string, stage models.Stage, publishedAt *time.Time) error
	RecordPublication(id string, publishedAt time.Time, postID, url string) error

	// Content tasks
	SaveContentTask(t models.ContentTask) (models.ContentTask, error)
	GetContentTask(id string) (models.ContentTask, error)
	ListContentTasks(userID string, status *models.TaskStatus) ([]models.ContentTask, error)
	CompleteContentTask(id string, completedAt time.Time, actualHours *float64) error

	// Analytics (append-only)
	InsertAnalytics(a models.Analytics) (models.Analytics, error)
	ListAnalytics(contentID string) ([]models.Analytics, error)

	// DashboardSummary runs the store-side aggregate query for a user.
	DashboardSummary(userID string) (models.DashboardSummary, error)

	Close() error
}
