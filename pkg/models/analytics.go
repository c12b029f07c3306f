package models

import "time"

// Analytics is one append-only performance snapshot for a content item.
// Multiple records per item form a time series; the newest is authoritative
// for dashboard display.
type Analytics struct {
	ID                string    `json:"id" db:"id"`
	ContentPipelineID string    `json:"content_pipeline_id" db:"content_pipeline_id"`
	Views             int64     `json:"views" db:"views"`
	Likes             int64     `json:"likes" db:"likes"`
	Comments          int64     `json:"comments" db:"comments"`
	Shares            int64     `json:"shares" db:"shares"`
	Clicks            int64     `json:"clicks" db:"clicks"`
	Impressions       int64     `json:"impressions" db:"impressions"`
	EngagementRate    *float64  `json:"engagement_rate,omitempty" db:"engagement_rate"`
	Revenue           float64   `json:"revenue" db:"revenue"`
	RecordedAt        time.Time `json:"recorded_at" db:"recorded_at"`
}

// Engagement is the combined interaction count used by the performance
// summary (likes plus comments).
func (a Analytics) Engagement() int64 {
	return a.Likes + a.Comments
}

// DashboardSummary is the single aggregate record returned by the store's
// remote summary query.
type DashboardSummary struct {
	TotalProjects      int   `json:"total_projects" db:"total_projects"`
	TotalContentPieces int   `json:"total_content_pieces" db:"total_content_pieces"`
	PublishedPieces    int   `json:"published_pieces" db:"published_pieces"`
	PendingTasks       int   `json:"pending_tasks" db:"pending_tasks"`
	TotalViews         int64 `json:"total_views" db:"total_views"`
}
