package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_storage "github.com/simplyaiforall-coder/simplyAiForAll/internal/storage"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/testutil"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

func TestPostgresStore(t *testing.T) {
	testDB := testutil.SetupTestDB(t)
	defer testDB.Teardown(t)

	store, err := internal_storage.NewPostgresStore(testDB.ConnStr)
	require.NoError(t, err)
	defer store.Close()

	newWorkflow := func(t *testing.T, userID string) models.Workflow {
		wf, err := store.SaveWorkflow(models.Workflow{
			UserID:      userID,
			Title:       "Test workflow",
			ContentType: "Blog Post",
			Platforms:   []string{"Blog", "LinkedIn"},
			Status:      models.PlannedWorkflowStatus,
		})
		require.NoError(t, err)
		return wf
	}

	newContent := func(t *testing.T, userID, title string) models.ContentItem {
		item, err := store.SaveContentItem(models.ContentItem{
			UserID:        userID,
			Title:         title,
			ContentType:   "short_video",
			Platform:      "YouTube",
			WorkflowStage: models.StageIdea,
			Hashtags:      []string{"ai"},
		})
		require.NoError(t, err)
		return item
	}

	t.Run("SaveAndGetWorkflow", func(t *testing.T) {
		defer testDB.Truncate(t)
		wf := newWorkflow(t, "user-1")
		assert.NotEmpty(t, wf.ID)

		saved, err := store.GetWorkflow(wf.ID)
		assert.NoError(t, err)
		assert.Equal(t, wf.Title, saved.Title)
		assert.Equal(t, models.PlannedWorkflowStatus, saved.Status)
		assert.Equal(t, []string{"Blog", "LinkedIn"}, []string(saved.Platforms))
	})

	t.Run("GetNonExistingWorkflow", func(t *testing.T) {
		_, err := store.GetWorkflow("11111111-1111-1111-1111-111111111111")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListWorkflowsScopedToUser", func(t *testing.T) {
		defer testDB.Truncate(t)
		mine := newWorkflow(t, "user-1")
		newWorkflow(t, "user-2")

		workflows, err := store.ListWorkflows("user-1")
		assert.NoError(t, err)
		require.Len(t, workflows, 1)
		assert.Equal(t, mine.ID, workflows[0].ID)
	})

	t.Run("UpdateWorkflowStatus", func(t *testing.T) {
		defer testDB.Truncate(t)
		wf := newWorkflow(t, "user-1")

		err := store.UpdateWorkflowStatus(wf.ID, models.InProgressWorkflowStatus)
		assert.NoError(t, err)

		updated, err := store.GetWorkflow(wf.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.InProgressWorkflowStatus, updated.Status)

		err = store.UpdateWorkflowStatus("22222222-2222-2222-2222-222222222222", models.InProgressWorkflowStatus)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DeleteWorkflowCascadesToTasks", func(t *testing.T) {
		defer testDB.Truncate(t)
		wf := newWorkflow(t, "user-1")
		_, err := store.SaveWorkflowTask(models.WorkflowTask{
			WorkflowID: wf.ID,
			Title:      "Draft post",
			OrderIndex: 0,
			Status:     models.PendingTaskStatus,
		})
		require.NoError(t, err)

		err = store.DeleteWorkflow(wf.ID)
		assert.NoError(t, err)

		_, err = store.GetWorkflow(wf.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		tasks, err := store.ListWorkflowTasks(wf.ID)
		assert.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("WorkflowTasksOrderedByIndex", func(t *testing.T) {
		defer testDB.Truncate(t)
		wf := newWorkflow(t, "user-1")
		for i, title := range []string{"Research", "Outline", "Draft"} {
			_, err := store.SaveWorkflowTask(models.WorkflowTask{
				WorkflowID: wf.ID,
				Title:      title,
				OrderIndex: i,
				Status:     models.PendingTaskStatus,
			})
			require.NoError(t, err)
		}

		tasks, err := store.ListWorkflowTasks(wf.ID)
		assert.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "Research", tasks[0].Title)
		assert.Equal(t, "Draft", tasks[2].Title)
	})

	t.Run("UpdateWorkflowTaskStatus", func(t *testing.T) {
		defer testDB.Truncate(t)
		wf := newWorkflow(t, "user-1")
		task, err := store.SaveWorkflowTask(models.WorkflowTask{
			WorkflowID: wf.ID,
			Title:      "Draft post",
			OrderIndex: 0,
			Status:     models.PendingTaskStatus,
		})
		require.NoError(t, err)

		now := time.Now()
		err = store.UpdateWorkflowTaskStatus(task.ID, models.CompletedTaskStatus, &now)
		assert.NoError(t, err)

		tasks, err := store.ListWorkflowTasks(wf.ID)
		assert.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, models.CompletedTaskStatus, tasks[0].Status)
		assert.NotNil(t, tasks[0].CompletedAt)
	})

	t.Run("ContentItemLifecycle", func(t *testing.T) {
		defer testDB.Truncate(t)
		item := newContent(t, "user-1", "5 prompts that save an hour a day")

		saved, err := store.GetContentItem(item.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.StageIdea, saved.WorkflowStage)

		err = store.UpdateContentStage(item.ID, models.StageOutlined, nil)
		assert.NoError(t, err)

		publishedAt := time.Now()
		err = store.RecordPublication(item.ID, publishedAt, "yt-abc123", "https://youtube.com/watch?v=abc123")
		assert.NoError(t, err)

		published, err := store.GetContentItem(item.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.StagePublished, published.WorkflowStage)
		require.NotNil(t, published.ActualPublishDate)
		require.NotNil(t, published.PlatformPostID)
		assert.Equal(t, "yt-abc123", *published.PlatformPostID)
	})

	t.Run("ListContentItemsStageFilter", func(t *testing.T) {
		defer testDB.Truncate(t)
		a := newContent(t, "user-1", "a")
		newContent(t, "user-1", "b")

		err := store.UpdateContentStage(a.ID, models.StageDrafted, nil)
		require.NoError(t, err)

		stage := models.StageDrafted
		items, err := store.ListContentItems("user-1", &stage)
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, a.ID, items[0].ID)

		all, err := store.ListContentItems("user-1", nil)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("ContentTasks", func(t *testing.T) {
		defer testDB.Truncate(t)
		item := newContent(t, "user-1", "Editing deep dive")

		due := time.Now().Add(48 * time.Hour)
		estimated := 3.0
		task, err := store.SaveContentTask(models.ContentTask{
			UserID:            "user-1",
			ContentPipelineID: item.ID,
			Title:             "Cut b-roll",
			TaskType:          "editing",
			Priority:          models.HighPriority,
			DueDate:           &due,
			EstimatedHours:    &estimated,
			AssignedTo:        "user-1",
			Status:            models.TodoTaskStatus,
		})
		require.NoError(t, err)

		hours := 2.5
		err = store.CompleteContentTask(task.ID, time.Now(), &hours)
		assert.NoError(t, err)

		done, err := store.GetContentTask(task.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.CompletedTaskStatus, done.Status)
		require.NotNil(t, done.ActualHours)
		assert.Equal(t, 2.5, *done.ActualHours)

		status := models.TodoTaskStatus
		open, err := store.ListContentTasks("user-1", &status)
		assert.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("AnalyticsNewestFirst", func(t *testing.T) {
		defer testDB.Truncate(t)
		item := newContent(t, "user-1", "AI tool of the week")

		older, err := store.InsertAnalytics(models.Analytics{
			ContentPipelineID: item.ID,
			Views:             100,
			Likes:             10,
			RecordedAt:        time.Now().Add(-time.Hour),
		})
		require.NoError(t, err)
		newer, err := store.InsertAnalytics(models.Analytics{
			ContentPipelineID: item.ID,
			Views:             500,
			Likes:             40,
			RecordedAt:        time.Now(),
		})
		require.NoError(t, err)

		records, err := store.ListAnalytics(item.ID)
		assert.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, newer.ID, records[0].ID)
		assert.Equal(t, older.ID, records[1].ID)
	})

	t.Run("DashboardSummary", func(t *testing.T) {
		defer testDB.Truncate(t)
		_, err := store.SaveContentProject(models.ContentProject{
			UserID: "user-1",
			Name:   "Autumn push",
		})
		require.NoError(t, err)

		a := newContent(t, "user-1", "a")
		newContent(t, "user-1", "b")
		newContent(t, "user-2", "not mine")

		err = store.RecordPublication(a.ID, time.Now(), "p", "u")
		require.NoError(t, err)
		_, err = store.InsertAnalytics(models.Analytics{ContentPipelineID: a.ID, Views: 1200})
		require.NoError(t, err)

		_, err = store.SaveContentTask(models.ContentTask{
			UserID:            "user-1",
			ContentPipelineID: a.ID,
			Title:             "Reply to comments",
			Priority:          models.MediumPriority,
			AssignedTo:        "user-1",
			Status:            models.TodoTaskStatus,
		})
		require.NoError(t, err)

		summary, err := store.DashboardSummary("user-1")
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.TotalProjects)
		assert.Equal(t, 2, summary.TotalContentPieces)
		assert.Equal(t, 1, summary.PublishedPieces)
		assert.Equal(t, 1, summary.PendingTasks)
		assert.Equal(t, int64(1200), summary.TotalViews)
	})
}
