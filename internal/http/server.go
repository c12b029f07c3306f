package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/simplyaiforall-coder/simplyAiForAll/internal/log"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/service"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

// StartServer exposes the workflow and pipeline services over HTTP.
func StartServer(port string, store storage.Store) error {
	logger := log.GetLogger()
	workflows := service.NewWorkflowService(store, logger)
	pipeline := service.NewPipelineService(store, logger)
	tasks := service.NewTaskService(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/workflows", WorkflowsHandler(workflows))
	mux.HandleFunc("/workflows/status", WorkflowStatusHandler(workflows))
	mux.HandleFunc("/workflows/tasks", WorkflowTasksHandler(workflows))
	mux.HandleFunc("/dashboard", DashboardHandler(workflows, pipeline))
	mux.HandleFunc("/pipeline", PipelineHandler(pipeline))
	mux.HandleFunc("/pipeline/advance", AdvanceStageHandler(pipeline))
	mux.HandleFunc("/pipeline/publish", RecordPublicationHandler(pipeline))
	mux.HandleFunc("/tasks", TasksHandler(tasks))
	mux.HandleFunc("/tasks/complete", CompleteTaskHandler(tasks))

	logger.Infof("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, mux)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Server is running")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Errorf("Failed to encode response: %v", err)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = r.FormValue("user_id")
	}
	if userID == "" {
		http.Error(w, "Missing 'user_id' parameter", http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

func WorkflowsHandler(svc *service.WorkflowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listWorkflowsHTTP(w, r, svc)
		case http.MethodPost:
			createWorkflowHTTP(w, r, svc)
		case http.MethodDelete:
			deleteWorkflowHTTP(w, r, svc)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func createWorkflowHTTP(w http.ResponseWriter, r *http.Request, svc *service.WorkflowService) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	title := r.FormValue("title")
	if title == "" {
		http.Error(w, "Missing 'title' parameter", http.StatusBadRequest)
		return
	}
	contentType := r.FormValue("content_type")
	platforms := r.Form["platform"]

	wf, err := svc.CreateWorkflow(userID, title, contentType, platforms, nil)
	if err != nil {
		log.GetLogger().Errorf("Failed to create workflow: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create workflow: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, wf)
}

func listWorkflowsHTTP(w http.ResponseWriter, r *http.Request, svc *service.WorkflowService) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workflows, err := svc.ListWorkflows(userID)
	if err != nil {
		log.GetLogger().Errorf("Failed to list workflows: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list workflows: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, workflows)
}

func deleteWorkflowHTTP(w http.ResponseWriter, r *http.Request, svc *service.WorkflowService) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
		return
	}
	if err := svc.DeleteWorkflow(id); err != nil {
		log.GetLogger().Errorf("Failed to delete workflow: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete workflow: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func WorkflowStatusHandler(svc *service.WorkflowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := r.FormValue("id")
		status := r.FormValue("status")
		if id == "" || status == "" {
			http.Error(w, "Missing 'id' or 'status' parameter", http.StatusBadRequest)
			return
		}
		if err := svc.UpdateWorkflowStatus(id, models.WorkflowStatus(status)); err != nil {
			log.GetLogger().Errorf("Failed to update workflow status: %v", err)
			http.Error(w, fmt.Sprintf("Failed to update workflow status: %v", err), http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, "Updated workflow %s to status '%s'\n", id, status)
	}
}

func WorkflowTasksHandler(svc *service.WorkflowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		workflowID := r.URL.Query().Get("workflow_id")
		if workflowID == "" {
			http.Error(w, "Missing 'workflow_id' parameter", http.StatusBadRequest)
			return
		}
		tasks, err := svc.GetWorkflowTasks(workflowID)
		if err != nil {
			log.GetLogger().Errorf("Failed to list workflow tasks: %v", err)
			http.Error(w, fmt.Sprintf("Failed to list workflow tasks: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	}
}

func DashboardHandler(workflows *service.WorkflowService, pipeline *service.PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		metrics, err := workflows.DashboardMetrics(userID)
		if err != nil {
			log.GetLogger().Errorf("Failed to compute dashboard metrics: %v", err)
			http.Error(w, fmt.Sprintf("Failed to compute dashboard metrics: %v", err), http.StatusInternalServerError)
			return
		}
		summary, err := pipeline.DashboardSummary(userID)
		if err != nil {
			log.GetLogger().Errorf("Failed to load dashboard summary: %v", err)
			http.Error(w, fmt.Sprintf("Failed to load dashboard summary: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"workflows": metrics,
			"content":   summary,
		})
	}
}

func PipelineHandler(svc *service.PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listPipelineHTTP(w, r, svc)
		case http.MethodPost:
			addContentHTTP(w, r, svc)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func listPipelineHTTP(w http.ResponseWriter, r *http.Request, svc *service.PipelineService) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var stage *models.Stage
	if s := r.URL.Query().Get("stage"); s != "" {
		st := models.Stage(s)
		if !models.ValidStage(st) {
			http.Error(w, fmt.Sprintf("Unknown stage %q", s), http.StatusBadRequest)
			return
		}
		stage = &st
	}
	items, err := svc.GetPipeline(userID, stage)
	if err != nil {
		log.GetLogger().Errorf("Failed to list pipeline: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list pipeline: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func addContentHTTP(w http.ResponseWriter, r *http.Request, svc *service.PipelineService) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	title := r.FormValue("title")
	if title == "" {
		http.Error(w, "Missing 'title' parameter", http.StatusBadRequest)
		return
	}
	item, err := svc.AddContent(userID, service.AddContentInput{
		Title:        title,
		ContentType:  r.FormValue("content_type"),
		Platform:     r.FormValue("platform"),
		Hashtags:     r.Form["hashtag"],
		CallToAction: r.FormValue("call_to_action"),
	})
	if err != nil {
		log.GetLogger().Errorf("Failed to add content: %v", err)
		http.Error(w, fmt.Sprintf("Failed to add content: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func AdvanceStageHandler(svc *service.PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := r.FormValue("id")
		if id == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}
		stage, err := svc.AdvanceStage(id)
		if err != nil {
			log.GetLogger().Errorf("Failed to advance stage: %v", err)
			http.Error(w, fmt.Sprintf("Failed to advance stage: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "workflow_stage": string(stage)})
	}
}

func RecordPublicationHandler(svc *service.PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := r.FormValue("id")
		if id == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}
		item, err := svc.RecordPublication(id, service.PublicationData{
			PostID: r.FormValue("post_id"),
			URL:    r.FormValue("url"),
		})
		if err != nil {
			log.GetLogger().Errorf("Failed to record publication: %v", err)
			http.Error(w, fmt.Sprintf("Failed to record publication: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func TasksHandler(svc *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userID, ok := requireUser(w, r)
			if !ok {
				return
			}
			var status *models.TaskStatus
			if s := r.URL.Query().Get("status"); s != "" {
				st := models.TaskStatus(s)
				status = &st
			}
			tasks, err := svc.ListTasks(userID, status)
			if err != nil {
				log.GetLogger().Errorf("Failed to list tasks: %v", err)
				http.Error(w, fmt.Sprintf("Failed to list tasks: %v", err), http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, tasks)
		case http.MethodPost:
			createTaskHTTP(w, r, svc)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func createTaskHTTP(w http.ResponseWriter, r *http.Request, svc *service.TaskService) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	title := r.FormValue("title")
	contentID := r.FormValue("content_id")
	if title == "" || contentID == "" {
		http.Error(w, "Missing 'title' or 'content_id' parameter", http.StatusBadRequest)
		return
	}
	task, err := svc.CreateTask(userID, service.CreateTaskInput{
		ContentPipelineID: contentID,
		Title:             title,
		Description:       r.FormValue("description"),
		TaskType:          r.FormValue("task_type"),
		Priority:          models.Priority(r.FormValue("priority")),
		AssignedTo:        r.FormValue("assigned_to"),
	})
	if err != nil {
		log.GetLogger().Errorf("Failed to create task: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create task: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func CompleteTaskHandler(svc *service.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		completeTaskHTTP(w, r, svc)
	}
}

func completeTaskHTTP(w http.ResponseWriter, r *http.Request, svc *service.TaskService) {
	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
		return
	}
	var actualHours *float64
	if h := r.FormValue("actual_hours"); h != "" {
		var v float64
		if _, err := fmt.Sscanf(h, "%f", &v); err != nil {
			http.Error(w, "Invalid 'actual_hours' parameter", http.StatusBadRequest)
			return
		}
		actualHours = &v
	}
	task, err := svc.CompleteTask(id, actualHours)
	if err != nil {
		log.GetLogger().Errorf("Failed to complete task: %v", err)
		http.Error(w, fmt.Sprintf("Failed to complete task: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
