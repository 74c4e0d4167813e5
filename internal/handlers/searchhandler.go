package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikhilworks/gemini-job-search/internal/dtos"
	"github.com/nikhilworks/gemini-job-search/internal/services"
)

// searchFailedMessage is the only detail a caller ever sees for an
// orchestration failure; the real error stays in the server log.
const searchFailedMessage = "The AI search service failed to process the request. Try refining your query."

// SearchHandler holds the injected services (no module-level singletons).
type SearchHandler struct {
	SearchService  *services.SearchService
	HistoryService *services.HistoryService
}

// NewSearchHandler creates the handler with dependencies.
func NewSearchHandler(search *services.SearchService, history *services.HistoryService) *SearchHandler {
	return &SearchHandler{
		SearchService:  search,
		HistoryService: history,
	}
}

// SearchJobs is the POST /search-jobs endpoint.
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	// Optional resume upload: read the full bytes and wrap them in a single
	// inline part for the keyword-expansion call.
	var resumeParts []services.Part
	if fileHeader, err := c.FormFile("resume_file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "File reading failed: " + err.Error()})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "File reading failed: " + err.Error()})
			return
		}
		if len(data) > 0 {
			resumeParts = append(resumeParts, services.Part{
				Data:     data,
				MIMEType: fileHeader.Header.Get("Content-Type"),
			})
		}
	}

	resp, err := h.SearchService.RunJobSearch(c.Request.Context(), &req, resumeParts)
	if err != nil {
		// Every failure kind maps to the same opaque 500. The switch keeps
		// that mapping exhaustive rather than a blanket catch.
		switch {
		case errors.Is(err, services.ErrKeywordExpansion),
			errors.Is(err, services.ErrJobSearch),
			errors.Is(err, services.ErrResponseParse):
			log.Printf("Gemini/Search error: %v", err)
		default:
			log.Printf("Unexpected search error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": searchFailedMessage})
		return
	}

	// Best effort: history must never fail the request.
	if err := h.HistoryService.Record(&req, resp); err != nil {
		log.Printf("Failed to record search history: %v", err)
	}

	c.JSON(http.StatusOK, resp)
}

// SearchHistory is the GET /search-history endpoint.
func (h *SearchHandler) SearchHistory(c *gin.Context) {
	if h.HistoryService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search history is not enabled"})
		return
	}

	records, err := h.HistoryService.Recent(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}
