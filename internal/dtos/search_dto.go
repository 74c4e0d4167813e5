package dtos

// SearchRequest is the multipart form body of POST /search-jobs.
// The optional resume upload (resume_file) is read separately by the handler.
type SearchRequest struct {
	JobRole       string `form:"job_role" binding:"required"`
	Qualification string `form:"qualification" binding:"required"`
	Location      string `form:"location" binding:"required"`

	// Optional free-text keywords, folded into the expansion prompt.
	CustomKeywords string `form:"custom_keywords"`
}

// SearchResponse is the aggregate returned to the caller.
//
// Results carries whatever JSON the model produced — the shape is not
// validated against a schema, so a malformed job object passes through
// to the client untouched.
type SearchResponse struct {
	SearchQuery string   `json:"search_query"`
	Keywords    []string `json:"keywords"`
	Results     any      `json:"results"`
}
