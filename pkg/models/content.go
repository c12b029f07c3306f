package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// ContentItem is a single content piece tracked through the pipeline stages.
type ContentItem struct {
	ID                   string          `json:"id" db:"id"` // UUID assigned at insert
	UserID               string          `json:"user_id" db:"user_id"`
	ProjectID            *string         `json:"project_id,omitempty" db:"project_id"` // Optional parent project
	ContentGenerationID  *string         `json:"content_generation_id,omitempty" db:"content_generation_id"`
	Title                string          `json:"title" db:"title"`
	ContentType          string          `json:"content_type" db:"content_type"` // "video", "post", "story", "thread", "article"
	Platform             string          `json:"platform" db:"platform"`
	WorkflowStage        Stage           `json:"workflow_stage" db:"workflow_stage"`
	ContentData          json.RawMessage `json:"content_data,omitempty" db:"content_data"` // Free-form payload
	ScheduledPublishDate *time.Time      `json:"scheduled_publish_date,omitempty" db:"scheduled_publish_date"`
	ActualPublishDate    *time.Time      `json:"actual_publish_date,omitempty" db:"actual_publish_date"`
	Hashtags             pq.StringArray  `json:"hashtags" db:"hashtags"`
	CallToAction         string          `json:"call_to_action,omitempty" db:"call_to_action"`
	PlatformPostID       *string         `json:"platform_post_id,omitempty" db:"platform_post_id"` // Assigned by the platform on publish
	PlatformURL          *string         `json:"platform_url,omitempty" db:"platform_url"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
	Analytics            []Analytics     `json:"analytics,omitempty"` // Populated at runtime, not a column
}

// ContentProject groups pipeline items under a named campaign.
type ContentProject struct {
	ID                 string         `json:"id" db:"id"`
	UserID             string         `json:"user_id" db:"user_id"`
	Name               string         `json:"name" db:"name"`
	Description        string         `json:"description,omitempty" db:"description"`
	ContentSegment     string         `json:"content_segment" db:"content_segment"`
	TargetAudience     string         `json:"target_audience" db:"target_audience"`
	StartDate          *time.Time     `json:"start_date,omitempty" db:"start_date"`
	EndDate            *time.Time     `json:"end_date,omitempty" db:"end_date"`
	TargetPlatforms    pq.StringArray `json:"target_platforms" db:"target_platforms"`
	TotalContentPieces int            `json:"total_content_pieces" db:"total_content_pieces"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
}
