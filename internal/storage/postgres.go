package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

// PostgresStore implements storage.Store against PostgreSQL. Every write is
// one statement, one round trip; there is no statement batching here.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveWorkflow inserts a new workflow and returns it with its generated ID.
func (s *PostgresStore) SaveWorkflow(w models.Workflow) (models.Workflow, error) {
	w.ID = uuid.NewString()
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	_, err := s.db.Exec(`
		INSERT INTO workflows (id, user_id, title, content_type, platforms, target_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.UserID, w.Title, w.ContentType, w.Platforms, w.TargetDate, w.Status, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return models.Workflow{}, fmt.Errorf("save workflow: %w", err)
	}
	return w, nil
}

func (s *PostgresStore) GetWorkflow(id string) (models.Workflow, error) {
	var wf models.Workflow
	err := s.db.Get(&wf, "SELECT * FROM workflows WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return models.Workflow{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Workflow{}, fmt.Errorf("get workflow %s: %w", id, err)
	}
	return wf, nil
}

func (s *PostgresStore) ListWorkflows(userID string) ([]models.Workflow, error) {
	workflows := []models.Workflow{}
	err := s.db.Select(&workflows,
		"SELECT * FROM workflows WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return workflows, nil
}

func (s *PostgresStore) UpdateWorkflowStatus(id string, status models.WorkflowStatus) error {
	res, err := s.db.Exec(
		"UPDATE workflows SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("update workflow status: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteWorkflow(id string) error {
	res, err := s.db.Exec("DELETE FROM workflows WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) SaveWorkflowTask(t models.WorkflowTask) (models.WorkflowTask, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	_, err := s.db.Exec(`
		INSERT INTO workflow_tasks (id, workflow_id, title, order_index, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.WorkflowID, t.Title, t.OrderIndex, t.Status, t.CreatedAt)
	if err != nil {
		return models.WorkflowTask{}, fmt.Errorf("save workflow task: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) ListWorkflowTasks(workflowID string) ([]models.WorkflowTask, error) {
	tasks := []models.WorkflowTask{}
	err := s.db.Select(&tasks,
		"SELECT * FROM workflow_tasks WHERE workflow_id = $1 ORDER BY order_index", workflowID)
	if err != nil {
		return nil, fmt.Errorf("list workflow tasks: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) UpdateWorkflowTaskStatus(id string, status models.TaskStatus, completedAt *time.Time) error {
	res, err := s.db.Exec(
		"UPDATE workflow_tasks SET status = $1, completed_at = $2 WHERE id = $3",
		status, completedAt, id)
	if err != nil {
		return fmt.Errorf("update workflow task status: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) SaveContentProject(p models.ContentProject) (models.ContentProject, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	_, err := s.db.Exec(`
		INSERT INTO content_projects (id, user_id, name, description, content_segment, target_audience,
			start_date, end_date, target_platforms, total_content_pieces, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.UserID, p.Name, p.Description, p.ContentSegment, p.TargetAudience,
		p.StartDate, p.EndDate, p.TargetPlatforms, p.TotalContentPieces, p.CreatedAt)
	if err != nil {
		return models.ContentProject{}, fmt.Errorf("save content project: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListContentProjects(userID string) ([]models.ContentProject, error) {
	projects := []models.ContentProject{}
	err := s.db.Select(&projects,
		"SELECT * FROM content_projects WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list content projects: %w", err)
	}
	return projects, nil
}

func (s *PostgresStore) SaveContentItem(c models.ContentItem) (models.ContentItem, error) {
	c.ID = uuid.NewString()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := s.db.Exec(`
		INSERT INTO content_pipeline (id, user_id, project_id, content_generation_id, title, content_type,
			platform, workflow_stage, content_data, scheduled_publish_date, hashtags, call_to_action,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		c.ID, c.UserID, c.ProjectID, c.ContentGenerationID, c.Title, c.ContentType,
		c.Platform, c.WorkflowStage, c.ContentData, c.ScheduledPublishDate, c.Hashtags, c.CallToAction,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("save content item: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) GetContentItem(id string) (models.ContentItem, error) {
	var c models.ContentItem
	err := s.db.Get(&c, "SELECT * FROM content_pipeline WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return models.ContentItem{}, storage.ErrNotFound
	}
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("get content item %s: %w", id, err)
	}
	return c, nil
}

func (s *PostgresStore) ListContentItems(userID string, stage *models.Stage) ([]models.ContentItem, error) {
	items := []models.ContentItem{}
	var err error
	if stage != nil {
		err = s.db.Select(&items, `
			SELECT * FROM content_pipeline
			WHERE user_id = $1 AND workflow_stage = $2 ORDER BY created_at DESC`, userID, *stage)
	} else {
		err = s.db.Select(&items,
			"SELECT * FROM content_pipeline WHERE user_id = $1 ORDER BY created_at DESC", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) UpdateContentStage(id string, stage models.Stage, publishedAt *time.Time) error {
	res, err := s.db.Exec(`
		UPDATE content_pipeline
		SET workflow_stage = $1,
		    actual_publish_date = COALESCE($2, actual_publish_date),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`,
		stage, publishedAt, id)
	if err != nil {
		return fmt.Errorf("update content stage: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) RecordPublication(id string, publishedAt time.Time, postID, url string) error {
	res, err := s.db.Exec(`
		UPDATE content_pipeline
		SET workflow_stage = $1,
		    actual_publish_date = $2,
		    platform_post_id = $3,
		    platform_url = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5`,
		models.StagePublished, publishedAt, postID, url, id)
	if err != nil {
		return fmt.Errorf("record publication: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) SaveContentTask(t models.ContentTask) (models.ContentTask, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	_, err := s.db.Exec(`
		INSERT INTO content_tasks (id, user_id, content_pipeline_id, title, description, task_type,
			priority, due_date, estimated_hours, assigned_to, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		t.ID, t.UserID, t.ContentPipelineID, t.Title, t.Description, t.TaskType,
		t.Priority, t.DueDate, t.EstimatedHours, t.AssignedTo, t.Status, t.CreatedAt)
	if err != nil {
		return models.ContentTask{}, fmt.Errorf("save content task: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) GetContentTask(id string) (models.ContentTask, error) {
	var t models.ContentTask
	err := s.db.Get(&t, "SELECT * FROM content_tasks WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return models.ContentTask{}, storage.ErrNotFound
	}
	if err != nil {
		return models.ContentTask{}, fmt.Errorf("get content task %s: %w", id, err)
	}
	return t, nil
}

func (s *PostgresStore) ListContentTasks(userID string, status *models.TaskStatus) ([]models.ContentTask, error) {
	tasks := []models.ContentTask{}
	var err error
	if status != nil {
		err = s.db.Select(&tasks, `
			SELECT * FROM content_tasks
			WHERE user_id = $1 AND status = $2 ORDER BY due_date ASC NULLS LAST`, userID, *status)
	} else {
		err = s.db.Select(&tasks,
			"SELECT * FROM content_tasks WHERE user_id = $1 ORDER BY due_date ASC NULLS LAST", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list content tasks: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) CompleteContentTask(id string, completedAt time.Time, actualHours *float64) error {
	res, err := s.db.Exec(`
		UPDATE content_tasks
		SET status = $1,
		    completed_at = $2,
		    actual_hours = COALESCE($3, actual_hours)
		WHERE id = $4`,
		models.CompletedTaskStatus, completedAt, actualHours, id)
	if err != nil {
		return fmt.Errorf("complete content task: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) InsertAnalytics(a models.Analytics) (models.Analytics, error) {
	a.ID = uuid.NewString()
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO content_analytics (id, content_pipeline_id, views, likes, comments, shares,
			clicks, impressions, engagement_rate, revenue, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.ContentPipelineID, a.Views, a.Likes, a.Comments, a.Shares,
		a.Clicks, a.Impressions, a.EngagementRate, a.Revenue, a.RecordedAt)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("insert analytics: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListAnalytics(contentID string) ([]models.Analytics, error) {
	records := []models.Analytics{}
	err := s.db.Select(&records,
		"SELECT * FROM content_analytics WHERE content_pipeline_id = $1 ORDER BY recorded_at DESC", contentID)
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	return records, nil
}

// DashboardSummary runs the aggregate summary query server-side, one round
// trip for the whole dashboard header.
func (s *PostgresStore) DashboardSummary(userID string) (models.DashboardSummary, error) {
	var summary models.DashboardSummary
	err := s.db.Get(&summary, `
		SELECT
			(SELECT COUNT(*) FROM content_projects WHERE user_id = $1) AS total_projects,
			(SELECT COUNT(*) FROM content_pipeline WHERE user_id = $1) AS total_content_pieces,
			(SELECT COUNT(*) FROM content_pipeline WHERE user_id = $1 AND workflow_stage = 'published') AS published_pieces,
			(SELECT COUNT(*) FROM content_tasks WHERE user_id = $1 AND status <> 'completed') AS pending_tasks,
			(SELECT COALESCE(SUM(latest.views), 0) FROM (
				SELECT DISTINCT ON (ca.content_pipeline_id) ca.views
				FROM content_analytics ca
				JOIN content_pipeline cp ON cp.id = ca.content_pipeline_id
				WHERE cp.user_id = $1
				ORDER BY ca.content_pipeline_id, ca.recorded_at DESC
			) latest) AS total_views`, userID)
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}

// requireRow converts a zero-row update/delete into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
