package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_http "github.com/simplyaiforall-coder/simplyAiForAll/internal/http"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/log"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/service"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

func newServer(store storage.Store) *httptest.Server {
	logger := log.GetLogger()
	workflows := service.NewWorkflowService(store, logger)
	pipeline := service.NewPipelineService(store, logger)
	tasks := service.NewTaskService(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", internal_http.HealthHandler)
	mux.HandleFunc("/workflows", internal_http.WorkflowsHandler(workflows))
	mux.HandleFunc("/workflows/status", internal_http.WorkflowStatusHandler(workflows))
	mux.HandleFunc("/workflows/tasks", internal_http.WorkflowTasksHandler(workflows))
	mux.HandleFunc("/dashboard", internal_http.DashboardHandler(workflows, pipeline))
	mux.HandleFunc("/pipeline", internal_http.PipelineHandler(pipeline))
	mux.HandleFunc("/pipeline/advance", internal_http.AdvanceStageHandler(pipeline))
	mux.HandleFunc("/pipeline/publish", internal_http.RecordPublicationHandler(pipeline))
	mux.HandleFunc("/tasks", internal_http.TasksHandler(tasks))
	mux.HandleFunc("/tasks/complete", internal_http.CompleteTaskHandler(tasks))
	return httptest.NewServer(mux)
}

func postForm(t *testing.T, rawURL string, form url.Values) *http.Response {
	t.Helper()
	resp, err := http.Post(rawURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServer(t *testing.T) {
	server := newServer(storage.NewMockStore())
	defer server.Close()

	t.Run("Health", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Server is running", string(body))
	})

	t.Run("WorkflowLifecycle", func(t *testing.T) {
		resp := postForm(t, server.URL+"/workflows", url.Values{
			"user_id":      {"user-1"},
			"title":        {"Q3 launch post"},
			"content_type": {"Blog Post"},
			"platform":     {"Blog", "LinkedIn"},
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var wf models.Workflow
		decodeBody(t, resp, &wf)
		assert.NotEmpty(t, wf.ID)
		assert.Equal(t, models.PlannedWorkflowStatus, wf.Status)

		resp, err := http.Get(server.URL + "/workflows?user_id=user-1")
		require.NoError(t, err)
		var workflows []models.Workflow
		decodeBody(t, resp, &workflows)
		require.Len(t, workflows, 1)

		resp, err = http.Get(server.URL + "/workflows/tasks?workflow_id=" + wf.ID)
		require.NoError(t, err)
		var tasks []models.WorkflowTask
		decodeBody(t, resp, &tasks)
		assert.Len(t, tasks, len(service.DefaultTasks("Blog Post")))

		resp = postForm(t, server.URL+"/workflows/status", url.Values{
			"id":     {wf.ID},
			"status": {"in_progress"},
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// repeating a transition is rejected at the service layer
		resp = postForm(t, server.URL+"/workflows/status", url.Values{
			"id":     {wf.ID},
			"status": {"in_progress"},
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingUserIsRejected", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/workflows")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("PipelineLifecycle", func(t *testing.T) {
		resp := postForm(t, server.URL+"/pipeline", url.Values{
			"user_id":  {"user-2"},
			"title":    {"5 prompts that save an hour a day"},
			"platform": {"YouTube"},
			"hashtag":  {"ai", "productivity"},
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var item models.ContentItem
		decodeBody(t, resp, &item)
		assert.Equal(t, models.StageIdea, item.WorkflowStage)

		resp = postForm(t, server.URL+"/pipeline/advance", url.Values{"id": {item.ID}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var advanced map[string]string
		decodeBody(t, resp, &advanced)
		assert.Equal(t, string(models.StageOutlined), advanced["workflow_stage"])

		resp = postForm(t, server.URL+"/pipeline/publish", url.Values{
			"id":      {item.ID},
			"post_id": {"yt-abc123"},
			"url":     {"https://youtube.com/watch?v=abc123"},
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var published models.ContentItem
		decodeBody(t, resp, &published)
		assert.Equal(t, models.StagePublished, published.WorkflowStage)
		require.NotNil(t, published.PlatformPostID)
		assert.Equal(t, "yt-abc123", *published.PlatformPostID)

		resp, err := http.Get(server.URL + "/pipeline?user_id=user-2&stage=published")
		require.NoError(t, err)
		var items []models.ContentItem
		decodeBody(t, resp, &items)
		require.Len(t, items, 1)

		resp, err = http.Get(server.URL + "/pipeline?user_id=user-2&stage=polished")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ContentTasks", func(t *testing.T) {
		resp := postForm(t, server.URL+"/pipeline", url.Values{
			"user_id":  {"user-3"},
			"title":    {"Editing deep dive"},
			"platform": {"YouTube"},
		})
		var item models.ContentItem
		decodeBody(t, resp, &item)

		resp = postForm(t, server.URL+"/tasks", url.Values{
			"user_id":    {"user-3"},
			"content_id": {item.ID},
			"title":      {"Cut b-roll"},
			"priority":   {"high"},
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var task models.ContentTask
		decodeBody(t, resp, &task)
		assert.Equal(t, models.HighPriority, task.Priority)
		assert.Equal(t, models.TodoTaskStatus, task.Status)

		resp = postForm(t, server.URL+"/tasks/complete", url.Values{
			"id":           {task.ID},
			"actual_hours": {"1.5"},
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var done models.ContentTask
		decodeBody(t, resp, &done)
		assert.Equal(t, models.CompletedTaskStatus, done.Status)
		require.NotNil(t, done.ActualHours)
		assert.Equal(t, 1.5, *done.ActualHours)

		resp, err := http.Get(server.URL + "/tasks?user_id=user-3&status=todo")
		require.NoError(t, err)
		var open []models.ContentTask
		decodeBody(t, resp, &open)
		assert.Empty(t, open)
	})

	t.Run("Dashboard", func(t *testing.T) {
		resp := postForm(t, server.URL+"/workflows", url.Values{
			"user_id": {"user-4"},
			"title":   {"Campaign video"},
		})
		resp.Body.Close()

		resp, err := http.Get(server.URL + "/dashboard?user_id=user-4")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var dashboard struct {
			Workflows service.WorkflowMetrics `json:"workflows"`
			Content   models.DashboardSummary `json:"content"`
		}
		decodeBody(t, resp, &dashboard)
		assert.Equal(t, 1, dashboard.Workflows.Total)
		assert.Equal(t, 0.0, dashboard.Workflows.CompletionRate)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, server.URL+"/workflows", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
