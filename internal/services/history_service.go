package services

import (
	"strings"

	"github.com/nikhilworks/gemini-job-search/internal/dtos"
	"github.com/nikhilworks/gemini-job-search/internal/models"
	"gorm.io/gorm"
)

// HistoryService persists completed searches. A nil *HistoryService is a
// valid no-op: history is only wired when DATABASE_URL is set, and the rest
// of the request flow must behave identically either way.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// Record stores one completed search. Errors are returned so the caller can
// log them; they must never fail the client request.
func (s *HistoryService) Record(req *dtos.SearchRequest, resp *dtos.SearchResponse) error {
	if s == nil {
		return nil
	}
	record := &models.SearchRecord{
		JobRole:       req.JobRole,
		Qualification: req.Qualification,
		Location:      req.Location,
		SearchQuery:   resp.SearchQuery,
		Keywords:      strings.Join(resp.Keywords, ", "),
		ResultCount:   countResults(resp.Results),
	}
	return s.DB.Create(record).Error
}

// Recent returns the newest records, most recent first.
func (s *HistoryService) Recent(limit int) ([]models.SearchRecord, error) {
	var records []models.SearchRecord
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

// countResults copes with the unvalidated shape the model returns: a JSON
// array counts its elements, anything else counts as zero.
func countResults(results any) int {
	if arr, ok := results.([]any); ok {
		return len(arr)
	}
	return 0
}
