package service

import (
	"time"

	"github.com/pkg/errors"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

// Logger defines the logging interface for the services.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ErrInvalidTransition is returned when a workflow status update would skip
// or reverse the planned -> in_progress -> published chain.
var ErrInvalidTransition = errors.New("invalid workflow status transition")

// WorkflowService manages content workflows and their task checklists.
// A workflow is one content project tracked from planning to publication;
// the store is the single source of truth and callers re-fetch after
// mutation.
type WorkflowService struct {
	store  storage.Store
	logger Logger
}

func NewWorkflowService(store storage.Store, logger Logger) *WorkflowService {
	return &WorkflowService{
		store:  store,
		logger: logger,
	}
}

// CreateWorkflow creates a workflow in status "planned" and attaches the
// default task checklist for its content type. Checklist creation failure is
// reported but does not roll back the already created workflow.
func (s *WorkflowService) CreateWorkflow(userID, title, contentType string, platforms []string, targetDate *time.Time) (models.Workflow, error) {
	if userID == "" {
		return models.Workflow{}, errors.New("user id cannot be empty")
	}
	if title == "" {
		return models.Workflow{}, errors.New("workflow title cannot be empty")
	}
	if len(title) > 200 {
		return models.Workflow{}, errors.New("workflow title too long (max 200 characters)")
	}

	wf := models.Workflow{
		UserID:      userID,
		Title:       title,
		ContentType: contentType,
		Platforms:   platforms,
		TargetDate:  targetDate,
		Status:      models.PlannedWorkflowStatus,
	}
	wf, err := s.store.SaveWorkflow(wf)
	if err != nil {
		return models.Workflow{}, errors.Wrap(err, "create workflow")
	}

	for i, taskTitle := range DefaultTasks(contentType) {
		_, err := s.store.SaveWorkflowTask(models.WorkflowTask{
			WorkflowID: wf.ID,
			Title:      taskTitle,
			OrderIndex: i,
			Status:     models.PendingTaskStatus,
		})
		if err != nil {
			s.logger.Warnf("Could not create default task %q for workflow %s: %v", taskTitle, wf.ID, err)
		}
	}

	s.logger.Infof("Created workflow '%s' with ID %s", title, wf.ID)
	return wf, nil
}

// UpdateWorkflowStatus moves a workflow one step forward along the status
// chain. Arbitrary overwrites are rejected with ErrInvalidTransition.
func (s *WorkflowService) UpdateWorkflowStatus(id string, status models.WorkflowStatus) error {
	if id == "" {
		return errors.New("workflow id cannot be empty")
	}
	if !models.ValidWorkflowStatus(status) {
		return errors.Errorf("invalid status %q; must be 'planned', 'in_progress' or 'published'", status)
	}

	wf, err := s.store.GetWorkflow(id)
	if err != nil {
		return errors.Wrapf(err, "get workflow %s", id)
	}
	if !models.CanTransition(wf.Status, status) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", wf.Status, status)
	}
	if err := s.store.UpdateWorkflowStatus(id, status); err != nil {
		return errors.Wrapf(err, "update workflow %s", id)
	}
	s.logger.Infof("Updated workflow %s to status '%s'", id, status)
	return nil
}

// DeleteWorkflow removes a workflow. Cascading to its tasks is the store's
// responsibility, not guaranteed at this layer.
func (s *WorkflowService) DeleteWorkflow(id string) error {
	if id == "" {
		return errors.New("workflow id cannot be empty")
	}
	if err := s.store.DeleteWorkflow(id); err != nil {
		return errors.Wrapf(err, "delete workflow %s", id)
	}
	s.logger.Infof("Deleted workflow %s", id)
	return nil
}

func (s *WorkflowService) GetWorkflow(id string) (models.Workflow, error) {
	wf, err := s.store.GetWorkflow(id)
	if err != nil {
		return models.Workflow{}, errors.Wrapf(err, "get workflow %s", id)
	}
	return wf, nil
}

func (s *WorkflowService) ListWorkflows(userID string) ([]models.Workflow, error) {
	return s.store.ListWorkflows(userID)
}

// GetWorkflowTasks returns a workflow's checklist ordered by order_index.
func (s *WorkflowService) GetWorkflowTasks(workflowID string) ([]models.WorkflowTask, error) {
	return s.store.ListWorkflowTasks(workflowID)
}

// UpdateTaskStatus sets a checklist task's status. Completion stamps
// completed_at; moving away from completed clears it.
func (s *WorkflowService) UpdateTaskStatus(taskID string, status models.TaskStatus) error {
	if taskID == "" {
		return errors.New("task id cannot be empty")
	}
	var completedAt *time.Time
	if status == models.CompletedTaskStatus {
		now := time.Now()
		completedAt = &now
	}
	if err := s.store.UpdateWorkflowTaskStatus(taskID, status, completedAt); err != nil {
		return errors.Wrapf(err, "update task %s", taskID)
	}
	return nil
}

// WorkflowMetrics aggregates a user's workflows for the dashboard.
type WorkflowMetrics struct {
	Total                   int            `json:"total"`
	Planned                 int            `json:"planned"`
	InProgress              int            `json:"in_progress"`
	Completed               int            `json:"completed"`
	CompletionRate          float64        `json:"completion_rate"`
	PlatformDistribution    map[string]int `json:"platform_distribution"`
	ContentTypeDistribution map[string]int `json:"content_type_distribution"`
}

// DashboardMetrics computes per-status counts, the completion rate and the
// platform/content-type distributions for a user. Zero workflows yield a
// zero-rate aggregate, not an error; a store failure returns the zero
// aggregate together with the error so callers can tell "empty" from
// "broken".
func (s *WorkflowService) DashboardMetrics(userID string) (WorkflowMetrics, error) {
	metrics := WorkflowMetrics{
		PlatformDistribution:    map[string]int{},
		ContentTypeDistribution: map[string]int{},
	}

	workflows, err := s.store.ListWorkflows(userID)
	if err != nil {
		return metrics, errors.Wrap(err, "dashboard metrics")
	}

	metrics.Total = len(workflows)
	for _, wf := range workflows {
		switch wf.Status {
		case models.PlannedWorkflowStatus:
			metrics.Planned++
		case models.InProgressWorkflowStatus:
			metrics.InProgress++
		case models.PublishedWorkflowStatus:
			metrics.Completed++
		}
		for _, platform := range wf.Platforms {
			metrics.PlatformDistribution[platform]++
		}
		contentType := wf.ContentType
		if contentType == "" {
			contentType = "Unknown"
		}
		metrics.ContentTypeDistribution[contentType]++
	}
	if metrics.Total > 0 {
		metrics.CompletionRate = float64(metrics.Completed) / float64(metrics.Total) * 100
	}
	return metrics, nil
}
