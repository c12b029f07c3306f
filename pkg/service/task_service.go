package service

import (
	"time"

	"github.com/pkg/errors"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

// TaskService manages the tasks attached to content pipeline items.
type TaskService struct {
	store  storage.Store
	logger Logger
}

func NewTaskService(store storage.Store, logger Logger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger,
	}
}

// CreateTaskInput carries the caller-supplied fields for a new content task.
type CreateTaskInput struct {
	ContentPipelineID string
	Title             string
	Description       string
	TaskType          string
	Priority          models.Priority
	DueDate           *time.Time
	EstimatedHours    *float64
	AssignedTo        string
}

// CreateTask attaches a task to a content pipeline item. The priority
// defaults to medium and the assignee defaults to the owning user.
func (ts *TaskService) CreateTask(userID string, in CreateTaskInput) (models.ContentTask, error) {
	if userID == "" {
		return models.ContentTask{}, errors.New("user id cannot be empty")
	}
	if in.Title == "" {
		return models.ContentTask{}, errors.New("task title cannot be empty")
	}
	if in.ContentPipelineID == "" {
		return models.ContentTask{}, errors.New("content pipeline id cannot be empty")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.MediumPriority
	}
	assignedTo := in.AssignedTo
	if assignedTo == "" {
		assignedTo = userID
	}

	task := models.ContentTask{
		UserID:            userID,
		ContentPipelineID: in.ContentPipelineID,
		Title:             in.Title,
		Description:       in.Description,
		TaskType:          in.TaskType,
		Priority:          priority,
		DueDate:           in.DueDate,
		EstimatedHours:    in.EstimatedHours,
		AssignedTo:        assignedTo,
		Status:            models.TodoTaskStatus,
	}
	task, err := ts.store.SaveContentTask(task)
	if err != nil {
		return models.ContentTask{}, errors.Wrap(err, "create task")
	}
	ts.logger.Infof("Created task '%s' with ID %s", task.Title, task.ID)
	return task, nil
}

// CompleteTask marks a task completed, stamps the completion time and
// optionally records the actual effort. Returns the persisted task.
func (ts *TaskService) CompleteTask(taskID string, actualHours *float64) (models.ContentTask, error) {
	if taskID == "" {
		return models.ContentTask{}, errors.New("task id cannot be empty")
	}
	if err := ts.store.CompleteContentTask(taskID, time.Now(), actualHours); err != nil {
		return models.ContentTask{}, errors.Wrapf(err, "complete task %s", taskID)
	}
	task, err := ts.store.GetContentTask(taskID)
	if err != nil {
		return models.ContentTask{}, errors.Wrapf(err, "refetch task %s", taskID)
	}
	ts.logger.Infof("Completed task %s", taskID)
	return task, nil
}

// ListTasks returns a user's content tasks ordered by due date, optionally
// filtered by status.
func (ts *TaskService) ListTasks(userID string, status *models.TaskStatus) ([]models.ContentTask, error) {
	tasks, err := ts.store.ListContentTasks(userID, status)
	if err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}
	return tasks, nil
}
