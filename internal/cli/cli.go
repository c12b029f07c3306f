package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simplyaiforall-coder/simplyAiForAll/internal/config"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/llm"
	"github.com/simplyaiforall-coder/simplyAiForAll/internal/log"
	internal_storage "github.com/simplyaiforall-coder/simplyAiForAll/internal/storage"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/generation"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/service"
)

// SetupCLI registers all commands on the root command.
func SetupCLI(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("db", "", "Database connection string (falls back to DATABASE_URL / DB_* env vars)")
	rootCmd.PersistentFlags().String("user", "", "User ID owning the records")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new workflow with its default task checklist",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			svc := service.NewWorkflowService(store, log.GetLogger())

			title, _ := cmd.Flags().GetString("title")
			contentType, _ := cmd.Flags().GetString("content-type")
			platforms, _ := cmd.Flags().GetStringSlice("platforms")

			wf, err := svc.CreateWorkflow(userID(cmd), title, contentType, platforms, nil)
			if err != nil {
				fail("create workflow", err)
			}
			fmt.Fprintf(os.Stdout, "Created workflow '%s' with ID %s\n", wf.Title, wf.ID)
		},
	}
	createCmd.Flags().String("title", "", "Workflow title")
	createCmd.Flags().String("content-type", "", "Content type (e.g. 'Blog Post')")
	createCmd.Flags().StringSlice("platforms", nil, "Target platforms")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all workflows for a user",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			svc := service.NewWorkflowService(store, log.GetLogger())

			workflows, err := svc.ListWorkflows(userID(cmd))
			if err != nil {
				fail("list workflows", err)
			}
			if len(workflows) == 0 {
				fmt.Fprintf(os.Stdout, "No workflows found.\n")
				return
			}
			rows := make([][]string, 0, len(workflows))
			for _, wf := range workflows {
				rows = append(rows, []string{
					wf.ID, wf.Title, wf.ContentType, string(wf.Status),
					wf.CreatedAt.Format(time.RFC3339),
				})
			}
			fmt.Fprintln(os.Stdout, renderTable(
				[]string{"ID", "Title", "Type", "Status", "Created"}, rows))
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update a workflow's status",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			svc := service.NewWorkflowService(store, log.GetLogger())

			id, _ := cmd.Flags().GetString("id")
			status, _ := cmd.Flags().GetString("status")
			if id == "" || status == "" {
				fmt.Fprintln(os.Stderr, "Error: --id and --status are required")
				os.Exit(1)
			}
			if err := svc.UpdateWorkflowStatus(id, models.WorkflowStatus(status)); err != nil {
				fail("update workflow status", err)
			}
			fmt.Fprintf(os.Stdout, "Updated the status of workflow %s to '%s'\n", id, status)
		},
	}
	updateCmd.Flags().String("id", "", "Workflow ID")
	updateCmd.Flags().String("status", "", "New status (planned|in_progress|published)")

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List a workflow's task checklist",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			svc := service.NewWorkflowService(store, log.GetLogger())

			workflowID, _ := cmd.Flags().GetString("workflow")
			if workflowID == "" {
				fmt.Fprintln(os.Stderr, "Error: --workflow is required")
				os.Exit(1)
			}
			tasks, err := svc.GetWorkflowTasks(workflowID)
			if err != nil {
				fail("list tasks", err)
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				completed := ""
				if t.CompletedAt != nil {
					completed = t.CompletedAt.Format(time.RFC3339)
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", t.OrderIndex), t.Title, string(t.Status), completed,
				})
			}
			fmt.Fprintln(os.Stdout, renderTable([]string{"#", "Title", "Status", "Completed"}, rows))
		},
	}
	tasksCmd.Flags().String("workflow", "", "Workflow ID")

	advanceCmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance a content item one pipeline stage",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			svc := service.NewPipelineService(store, log.GetLogger())

			id, _ := cmd.Flags().GetString("id")
			if id == "" {
				fmt.Fprintln(os.Stderr, "Error: --id is required")
				os.Exit(1)
			}
			stage, err := svc.AdvanceStage(id)
			if err != nil {
				fail("advance stage", err)
			}
			fmt.Fprintf(os.Stdout, "Content %s is now at stage '%s'\n", id, stage)
		},
	}
	advanceCmd.Flags().String("id", "", "Content item ID")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show workflow and content metrics for a user",
		Run: func(cmd *cobra.Command, args []string) {
			store := initStore(cmd)
			defer store.Close()
			uid := userID(cmd)
			workflows := service.NewWorkflowService(store, log.GetLogger())
			pipeline := service.NewPipelineService(store, log.GetLogger())

			metrics, err := workflows.DashboardMetrics(uid)
			if err != nil {
				fail("compute dashboard metrics", err)
			}
			summary, err := pipeline.DashboardSummary(uid)
			if err != nil {
				fail("load dashboard summary", err)
			}

			fmt.Fprintln(os.Stdout, renderTable(
				[]string{"Total", "Planned", "In Progress", "Published", "Completion"},
				[][]string{{
					fmt.Sprintf("%d", metrics.Total),
					fmt.Sprintf("%d", metrics.Planned),
					fmt.Sprintf("%d", metrics.InProgress),
					fmt.Sprintf("%d", metrics.Completed),
					fmt.Sprintf("%.1f%%", metrics.CompletionRate),
				}}))

			platformRows := make([][]string, 0, len(metrics.PlatformDistribution))
			for platform, count := range metrics.PlatformDistribution {
				platformRows = append(platformRows, []string{platform, fmt.Sprintf("%d", count)})
			}
			if len(platformRows) > 0 {
				fmt.Fprintln(os.Stdout, renderTable([]string{"Platform", "Workflows"}, platformRows))
			}

			fmt.Fprintln(os.Stdout, renderTable(
				[]string{"Projects", "Content Pieces", "Published", "Pending Tasks", "Total Views"},
				[][]string{{
					fmt.Sprintf("%d", summary.TotalProjects),
					fmt.Sprintf("%d", summary.TotalContentPieces),
					fmt.Sprintf("%d", summary.PublishedPieces),
					fmt.Sprintf("%d", summary.PendingTasks),
					fmt.Sprintf("%d", summary.TotalViews),
				}}))
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a multi-day content calendar",
		Run: func(cmd *cobra.Command, args []string) {
			segment, _ := cmd.Flags().GetString("segment")
			audience, _ := cmd.Flags().GetString("audience")
			topic, _ := cmd.Flags().GetString("topic")
			days, _ := cmd.Flags().GetInt("days")
			model, _ := cmd.Flags().GetString("model")

			pipeline := initGeneration()
			calendar, err := pipeline.GenerateCalendar(context.Background(), generation.GenerateRequest{
				Segment:  generation.Segment(segment),
				Audience: audience,
				Topic:    topic,
				Days:     days,
				Model:    model,
			})
			if err != nil {
				fail("generate calendar", err)
			}
			for day, body := range calendar {
				fmt.Fprintf(os.Stdout, "=== %s ===\n%s\n", day, body)
			}
		},
	}
	generateCmd.Flags().String("segment", string(generation.SegmentAIEducation), "Content segment")
	generateCmd.Flags().String("audience", "", "Audience persona name")
	generateCmd.Flags().String("topic", "", "Optional topic focus")
	generateCmd.Flags().Int("days", 7, "Number of days to plan")
	generateCmd.Flags().String("model", "GPT-3.5 Turbo", "Desired model")

	rootCmd.AddCommand(createCmd, listCmd, updateCmd, tasksCmd, advanceCmd, dashboardCmd, generateCmd)
}

func userID(cmd *cobra.Command) string {
	uid, _ := cmd.Flags().GetString("user")
	if uid == "" {
		fmt.Fprintln(os.Stderr, "Error: --user is required")
		os.Exit(1)
	}
	return uid
}

func fail(action string, err error) {
	log.GetLogger().Errorf("Failed to %s: %v", action, err)
	fmt.Fprintf(os.Stderr, "Error: failed to %s: %v\n", action, err)
	os.Exit(1)
}

func initStore(cmd *cobra.Command) *internal_storage.PostgresStore {
	connStr, err := cmd.Flags().GetString("db")
	if err != nil || connStr == "" {
		cfg, cfgErr := config.Load()
		if cfgErr != nil {
			fail("load configuration", cfgErr)
		}
		connStr = cfg.ConnString()
	}
	if connStr == "" {
		fmt.Fprintln(os.Stderr, "Error: --db flag or DATABASE_URL / DB_* env vars required")
		os.Exit(1)
	}
	store, err := internal_storage.InitStore(connStr)
	if err != nil {
		fail("initialize store", err)
	}
	return store
}

// initGeneration wires the generation pipeline from whichever provider keys
// are configured. With no keys the router reports no model available.
func initGeneration() *generation.Pipeline {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration", err)
	}
	logger := log.GetLogger()
	var providers []generation.Provider
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, llm.NewOpenAIClient(cfg.OpenAIAPIKey))
	}
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, llm.NewAnthropicClient(cfg.AnthropicAPIKey))
	}
	router := generation.NewRouter(logger, providers...)
	return generation.NewPipeline(router, logger)
}
