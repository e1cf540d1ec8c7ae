package dto

import "time"

// DashboardStats backs the admin dashboard view.
type DashboardStats struct {
	TotalImages   int64          `json:"total_images"`
	TotalVideos   int64          `json:"total_videos"`
	FeaturedMedia int64          `json:"featured_media"`
	TotalMedia    int64          `json:"total_media"`
	RecentUploads []RecentUpload `json:"recent_uploads"`
}

// RecentUpload is one row of the dashboard's recent list. Thumbnail is empty
// for videos.
type RecentUpload struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
}
