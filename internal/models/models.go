package models

import "time"

// SearchRecord is one completed search, kept for the history endpoint.
// The full results blob is not stored, only the derived query, the keyword
// list the model produced, and how many postings came back.
type SearchRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobRole       string `json:"job_role"`
	Qualification string `json:"qualification"`
	Location      string `json:"location"`
	SearchQuery   string `gorm:"type:text" json:"search_query"`
	Keywords      string `gorm:"type:text" json:"keywords"`
	ResultCount   int    `json:"result_count"`
}
