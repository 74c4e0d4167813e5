package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nikhilworks/gemini-job-search/internal/dtos"
)

// Sentinel errors for the three orchestration stages. The handler maps every
// one of them to the same opaque 500 on purpose; the split exists so logs can
// tell the stages apart.
var (
	ErrKeywordExpansion = errors.New("keyword expansion failed")
	ErrJobSearch        = errors.New("job search failed")
	ErrResponseParse    = errors.New("search response is not valid JSON")
)

// SearchService runs the two-step search flow against a Generator.
type SearchService struct {
	Generator Generator
}

// NewSearchService creates the orchestrator with its model dependency.
func NewSearchService(g Generator) *SearchService {
	return &SearchService{Generator: g}
}

// RunJobSearch expands the user's criteria into keywords (conditioned on the
// resume when one is attached), then asks the model to search the web and
// return structured postings. The two calls are strictly sequential: the
// second depends on the search query derived from the first.
func (s *SearchService) RunJobSearch(ctx context.Context, req *dtos.SearchRequest, resumeParts []Part) (*dtos.SearchResponse, error) {
	// Step 1: keyword expansion. Resume parts (if any) ride along with the
	// instruction in a single turn.
	parts := append([]Part{}, resumeParts...)
	parts = append(parts, Part{
		Text: buildKeywordPrompt(req.JobRole, req.Qualification, req.Location, req.CustomKeywords),
	})

	raw, err := s.Generator.GenerateContent(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeywordExpansion, err)
	}

	keywords := splitKeywords(raw)
	searchQuery := buildSearchQuery(keywords, req.Qualification, req.Location)

	// Step 2: search + analysis in one round trip. Only the derived query is
	// forwarded; the keyword list stays behind (it is already baked into the
	// query string).
	reply, err := s.Generator.GenerateWithSearch(ctx, buildSearchPrompt(searchQuery), searchSystemInstruction)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJobSearch, err)
	}

	// Step 3: parse. No retry, no fallback, no partial result — and no
	// schema validation of the job objects.
	var results any
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	return &dtos.SearchResponse{
		SearchQuery: searchQuery,
		Keywords:    keywords,
		Results:     results,
	}, nil
}

// splitKeywords turns the model's comma-separated reply into an ordered list,
// trimming whitespace and dropping empty segments.
func splitKeywords(raw string) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// buildSearchQuery joins the keywords with single spaces and appends the
// qualification and location, always in that order. The query string is
// never supplied independently of its inputs.
func buildSearchQuery(keywords []string, qualification, location string) string {
	joined := append(append([]string{}, keywords...), qualification, location)
	return strings.Join(joined, " ")
}

// stripCodeFence removes the triple-backtick block the model sometimes wraps
// around JSON output: 7 leading / 3 trailing bytes for a ```json fence,
// 3 bytes each side for a plain one.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") && len(text) >= 10:
		text = text[7 : len(text)-3]
	case strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") && len(text) >= 6:
		text = text[3 : len(text)-3]
	}
	return strings.TrimSpace(text)
}
