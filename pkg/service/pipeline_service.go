package service

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/models"
	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/storage"
)

// PipelineService manages content pieces through the fixed stage pipeline
// (idea ... analyzed) and their performance analytics.
type PipelineService struct {
	store  storage.Store
	logger Logger
}

func NewPipelineService(store storage.Store, logger Logger) *PipelineService {
	return &PipelineService{
		store:  store,
		logger: logger,
	}
}

// AddContentInput carries the caller-supplied fields for a new pipeline item.
type AddContentInput struct {
	ProjectID           *string
	ContentGenerationID *string
	Title               string
	ContentType         string
	Platform            string
	ContentData         json.RawMessage
	ScheduledDate       *time.Time
	Hashtags            []string
	CallToAction        string
}

// AddContent inserts a content piece at the "idea" stage.
func (s *PipelineService) AddContent(userID string, in AddContentInput) (models.ContentItem, error) {
	if userID == "" {
		return models.ContentItem{}, errors.New("user id cannot be empty")
	}
	if in.Title == "" {
		return models.ContentItem{}, errors.New("content title cannot be empty")
	}

	item := models.ContentItem{
		UserID:               userID,
		ProjectID:            in.ProjectID,
		ContentGenerationID:  in.ContentGenerationID,
		Title:                in.Title,
		ContentType:          in.ContentType,
		Platform:             in.Platform,
		WorkflowStage:        models.StageIdea,
		ContentData:          in.ContentData,
		ScheduledPublishDate: in.ScheduledDate,
		Hashtags:             in.Hashtags,
		CallToAction:         in.CallToAction,
	}
	item, err := s.store.SaveContentItem(item)
	if err != nil {
		return models.ContentItem{}, errors.Wrap(err, "add content")
	}
	s.logger.Infof("Added content '%s' to pipeline with ID %s", item.Title, item.ID)
	return item, nil
}

// AdvanceStage moves a content item one step forward in the pipeline. An
// item already at the terminal stage stays put; the current stage is
// returned and no write happens.
func (s *PipelineService) AdvanceStage(contentID string) (models.Stage, error) {
	item, err := s.store.GetContentItem(contentID)
	if err != nil {
		return "", errors.Wrapf(err, "get content %s", contentID)
	}
	next, ok := models.NextStage(item.WorkflowStage)
	if !ok {
		s.logger.Infof("Content %s already at terminal stage '%s'", contentID, item.WorkflowStage)
		return item.WorkflowStage, nil
	}
	var publishedAt *time.Time
	if next == models.StagePublished {
		now := time.Now()
		publishedAt = &now
	}
	if err := s.store.UpdateContentStage(contentID, next, publishedAt); err != nil {
		return "", errors.Wrapf(err, "advance content %s", contentID)
	}
	s.logger.Infof("Advanced content %s from '%s' to '%s'", contentID, item.WorkflowStage, next)
	return next, nil
}

// UpdateStage sets a content item's stage directly, stamping the actual
// publish date when the new stage is "published". The optional note is
// recorded in the log.
func (s *PipelineService) UpdateStage(contentID string, stage models.Stage, note string) error {
	if !models.ValidStage(stage) {
		return errors.Errorf("unknown workflow stage %q", stage)
	}
	var publishedAt *time.Time
	if stage == models.StagePublished {
		now := time.Now()
		publishedAt = &now
	}
	if err := s.store.UpdateContentStage(contentID, stage, publishedAt); err != nil {
		return errors.Wrapf(err, "update stage for content %s", contentID)
	}
	if note != "" {
		s.logger.Infof("Content %s stage updated to '%s': %s", contentID, stage, note)
	} else {
		s.logger.Infof("Content %s stage updated to '%s'", contentID, stage)
	}
	return nil
}

// PublicationData carries the platform-assigned identifiers recorded when a
// piece goes live.
type PublicationData struct {
	PublishDate *time.Time `json:"publish_date,omitempty"`
	PostID      string     `json:"post_id"`
	URL         string     `json:"url"`
}

// RecordPublication marks a content item published and stores the platform
// post id and URL. The publish date defaults to now.
func (s *PipelineService) RecordPublication(contentID string, pub PublicationData) (models.ContentItem, error) {
	publishedAt := time.Now()
	if pub.PublishDate != nil {
		publishedAt = *pub.PublishDate
	}
	if err := s.store.RecordPublication(contentID, publishedAt, pub.PostID, pub.URL); err != nil {
		return models.ContentItem{}, errors.Wrapf(err, "record publication for %s", contentID)
	}
	item, err := s.store.GetContentItem(contentID)
	if err != nil {
		return models.ContentItem{}, errors.Wrapf(err, "refetch content %s", contentID)
	}
	s.logger.Infof("Recorded publication of content %s on %s", contentID, item.Platform)
	return item, nil
}

// MetricsInput is one performance snapshot to append for a content item.
type MetricsInput struct {
	Views          int64    `json:"views"`
	Likes          int64    `json:"likes"`
	Comments       int64    `json:"comments"`
	Shares         int64    `json:"shares"`
	Clicks         int64    `json:"clicks"`
	Impressions    int64    `json:"impressions"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
	Revenue        float64  `json:"revenue"`
}

// RecordMetrics appends an analytics record for a content item. Records are
// never updated in place.
func (s *PipelineService) RecordMetrics(contentID string, in MetricsInput) (models.Analytics, error) {
	if contentID == "" {
		return models.Analytics{}, errors.New("content id cannot be empty")
	}
	rec := models.Analytics{
		ContentPipelineID: contentID,
		Views:             in.Views,
		Likes:             in.Likes,
		Comments:          in.Comments,
		Shares:            in.Shares,
		Clicks:            in.Clicks,
		Impressions:       in.Impressions,
		EngagementRate:    in.EngagementRate,
		Revenue:           in.Revenue,
	}
	rec, err := s.store.InsertAnalytics(rec)
	if err != nil {
		return models.Analytics{}, errors.Wrapf(err, "record metrics for %s", contentID)
	}
	return rec, nil
}

// GetPipeline returns a user's content pipeline, optionally filtered by
// stage, with each item's analytics attached (newest first).
func (s *PipelineService) GetPipeline(userID string, stage *models.Stage) ([]models.ContentItem, error) {
	items, err := s.store.ListContentItems(userID, stage)
	if err != nil {
		return nil, errors.Wrap(err, "get pipeline")
	}
	for i := range items {
		records, err := s.store.ListAnalytics(items[i].ID)
		if err != nil {
			s.logger.Warnf("Could not load analytics for content %s: %v", items[i].ID, err)
			continue
		}
		items[i].Analytics = records
	}
	return items, nil
}

// CreateProject creates a content project grouping pipeline items.
func (s *PipelineService) CreateProject(userID string, p models.ContentProject) (models.ContentProject, error) {
	if userID == "" {
		return models.ContentProject{}, errors.New("user id cannot be empty")
	}
	if p.Name == "" {
		return models.ContentProject{}, errors.New("project name cannot be empty")
	}
	p.UserID = userID
	p, err := s.store.SaveContentProject(p)
	if err != nil {
		return models.ContentProject{}, errors.Wrap(err, "create project")
	}
	s.logger.Infof("Created content project '%s' with ID %s", p.Name, p.ID)
	return p, nil
}

func (s *PipelineService) ListProjects(userID string) ([]models.ContentProject, error) {
	return s.store.ListContentProjects(userID)
}

// DashboardSummary proxies the store-side aggregate for the dashboard header.
func (s *PipelineService) DashboardSummary(userID string) (models.DashboardSummary, error) {
	summary, err := s.store.DashboardSummary(userID)
	if err != nil {
		return models.DashboardSummary{}, errors.Wrap(err, "dashboard summary")
	}
	return summary, nil
}

// PlatformPerformance aggregates published-item analytics for one platform.
type PlatformPerformance struct {
	Views      int64 `json:"views"`
	Engagement int64 `json:"engagement"`
	Count      int   `json:"count"`
}

// PerformanceSummary aggregates views and engagement across published items.
type PerformanceSummary struct {
	TotalViews        int64                          `json:"total_views"`
	TotalEngagement   int64                          `json:"total_engagement"`
	AvgEngagementRate float64                        `json:"avg_engagement_rate"`
	Platforms         map[string]PlatformPerformance `json:"platforms"`
}

// ComputePerformanceSummary sums views and engagement (likes + comments)
// across published items, using each item's first analytics record. The
// average engagement rate is engagement/views*100, zero when there are no
// views.
func ComputePerformanceSummary(items []models.ContentItem) PerformanceSummary {
	summary := PerformanceSummary{Platforms: map[string]PlatformPerformance{}}
	for _, item := range items {
		if item.WorkflowStage != models.StagePublished {
			continue
		}
		var rec models.Analytics
		if len(item.Analytics) > 0 {
			rec = item.Analytics[0]
		}
		summary.TotalViews += rec.Views
		summary.TotalEngagement += rec.Engagement()

		p := summary.Platforms[item.Platform]
		p.Views += rec.Views
		p.Engagement += rec.Engagement()
		p.Count++
		summary.Platforms[item.Platform] = p
	}
	if summary.TotalViews > 0 {
		summary.AvgEngagementRate = float64(summary.TotalEngagement) / float64(summary.TotalViews) * 100
	}
	return summary
}
