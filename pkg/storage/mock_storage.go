package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
)

// mockStore implements Store with in-memory slices. Intended for unit tests;
// lookups are linear scans.
type mockStore struct {
	workflows     []models.Workflow
	workflowTasks []models.WorkflowTask
	projects      []models.ContentProject
	items         []models.ContentItem
	contentTasks  []models.ContentTask
	analytics     []models.Analytics
}

// NewMockStore returns an empty in-memory store.
func NewMockStore() Store {
	return &mockStore{}
}

func (m *mockStore) Close() error { return nil }

func (m *mockStore) SaveWorkflow(w models.Workflow) (models.Workflow, error) {
	w.ID = uuid.NewString()
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	m.workflows = append(m.workflows, w)
	return w, nil
}

func (m *mockStore) GetWorkflow(id string) (models.Workflow, error) {
	for _, w := range m.workflows {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Workflow{}, ErrNotFound
}

func (m *mockStore) ListWorkflows(userID string) ([]models.Workflow, error) {
	out := []models.Workflow{}
	for _, w := range m.workflows {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	// created_at descending, matching the Postgres adapter
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockStore) UpdateWorkflowStatus(id string, status models.WorkflowStatus) error {
	for i, w := range m.workflows {
		if w.ID == id {
			m.workflows[i].Status = status
			m.workflows[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) DeleteWorkflow(id string) error {
	for i, w := range m.workflows {
		if w.ID == id {
			m.workflows = append(m.workflows[:i], m.workflows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) SaveWorkflowTask(t models.WorkflowTask) (models.WorkflowTask, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	m.workflowTasks = append(m.workflowTasks, t)
	return t, nil
}

func (m *mockStore) ListWorkflowTasks(workflowID string) ([]models.WorkflowTask, error) {
	out := []models.WorkflowTask{}
	for _, t := range m.workflowTasks {
		if t.WorkflowID == workflowID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out, nil
}

func (m *mockStore) UpdateWorkflowTaskStatus(id string, status models.TaskStatus, completedAt *time.Time) error {
	for i, t := range m.workflowTasks {
		if t.ID == id {
			m.workflowTasks[i].Status = status
			m.workflowTasks[i].CompletedAt = completedAt
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) SaveContentProject(p models.ContentProject) (models.ContentProject, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	m.projects = append(m.projects, p)
	return p, nil
}

func (m *mockStore) ListContentProjects(userID string) ([]models.ContentProject, error) {
	out := []models.ContentProject{}
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) SaveContentItem(c models.ContentItem) (models.ContentItem, error) {
	c.ID = uuid.NewString()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.items = append(m.items, c)
	return c, nil
}

func (m *mockStore) GetContentItem(id string) (models.ContentItem, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ContentItem{}, ErrNotFound
}

func (m *mockStore) ListContentItems(userID string, stage *models.Stage) ([]models.ContentItem, error) {
	out := []models.ContentItem{}
	for _, c := range m.items {
		if c.UserID != userID {
			continue
		}
		if stage != nil && c.WorkflowStage != *stage {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockStore) UpdateContentStage(id string, stage models.Stage, publishedAt *time.Time) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items[i].WorkflowStage = stage
			m.items[i].UpdatedAt = time.Now()
			if publishedAt != nil {
				m.items[i].ActualPublishDate = publishedAt
			}
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) RecordPublication(id string, publishedAt time.Time, postID, url string) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items[i].WorkflowStage = models.StagePublished
			m.items[i].ActualPublishDate = &publishedAt
			m.items[i].PlatformPostID = &postID
			m.items[i].PlatformURL = &url
			m.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) SaveContentTask(t models.ContentTask) (models.ContentTask, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	m.contentTasks = append(m.contentTasks, t)
	return t, nil
}

func (m *mockStore) GetContentTask(id string) (models.ContentTask, error) {
	for _, t := range m.contentTasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.ContentTask{}, ErrNotFound
}

func (m *mockStore) ListContentTasks(userID string, status *models.TaskStatus) ([]models.ContentTask, error) {
	out := []models.ContentTask{}
	for _, t := range m.contentTasks {
		if t.UserID != userID {
			continue
		}
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, t)
	}
	// due_date ascending, nil dates last
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return out, nil
}

func (m *mockStore) CompleteContentTask(id string, completedAt time.Time, actualHours *float64) error {
	for i, t := range m.contentTasks {
		if t.ID == id {
			m.contentTasks[i].Status = models.CompletedTaskStatus
			m.contentTasks[i].CompletedAt = &completedAt
			if actualHours != nil {
				m.contentTasks[i].ActualHours = actualHours
			}
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockStore) InsertAnalytics(a models.Analytics) (models.Analytics, error) {
	a.ID = uuid.NewString()
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	m.analytics = append(m.analytics, a)
	return a, nil
}

func (m *mockStore) ListAnalytics(contentID string) ([]models.Analytics, error) {
	out := []models.Analytics{}
	for _, a := range m.analytics {
		if a.ContentPipelineID == contentID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

func (m *mockStore) DashboardSummary(userID string) (models.DashboardSummary, error) {
	var s models.DashboardSummary
	for _, p := range m.projects {
		if p.UserID == userID {
			s.TotalProjects++
		}
	}
	for _, c := range m.items {
		if c.UserID != userID {
			continue
		}
		s.TotalContentPieces++
		if c.WorkflowStage == models.StagePublished {
			s.PublishedPieces++
		}
	}
	for _, t := range m.contentTasks {
		if t.UserID == userID && t.Status != models.CompletedTaskStatus {
			s.PendingTasks++
		}
	}
	seen := map[string]bool{}
	for _, a := range m.analytics {
		item, err := m.GetContentItem(a.ContentPipelineID)
		if err != nil || item.UserID != userID {
			continue
		}
		// one record per item counts toward the total, mirroring the SQL view
		if seen[a.ContentPipelineID] {
			continue
		}
		seen[a.ContentPipelineID] = true
		s.TotalViews += a.Views
	}
	return s, nil
}
