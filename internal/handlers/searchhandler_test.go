package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nikhilworks/gemini-job-search/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator stubs the Gemini calls behind a real SearchService.
type fakeGenerator struct {
	keywordReply string
	keywordErr   error
	searchReply  string

	gotParts []services.Part
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts []services.Part) (string, error) {
	f.gotParts = parts
	return f.keywordReply, f.keywordErr
}

func (f *fakeGenerator) GenerateWithSearch(_ context.Context, _, _ string) (string, error) {
	return f.searchReply, nil
}

func newTestRouter(gen services.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSearchHandler(services.NewSearchService(gen), nil)
	r := gin.New()
	r.GET("/health", HealthCheck)
	r.POST("/search-jobs", h.SearchJobs)
	r.GET("/search-history", h.SearchHistory)
	return r
}

// searchForm builds a multipart body with the given text fields and an
// optional resume payload.
func searchForm(t *testing.T, fields map[string]string, resume []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if resume != nil {
		fw, err := w.CreateFormFile("resume_file", "resume.pdf")
		require.NoError(t, err)
		_, err = fw.Write(resume)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"job_role":      "Backend Engineer",
		"qualification": "BSc",
		"location":      "Remote",
	}
}

func TestSearchJobs_Success(t *testing.T) {
	gen := &fakeGenerator{
		keywordReply: "Python, Remote, Backend",
		searchReply:  `[{"title":"Go Dev","link":"https://x","snippet":"s","analysis":{"Type":"Remote","Requirement":"Go","USP":"u"}}]`,
	}
	r := newTestRouter(gen)

	body, contentType := searchForm(t, validFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/search-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SearchQuery string   `json:"search_query"`
		Keywords    []string `json:"keywords"`
		Results     []any    `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Python Remote Backend BSc Remote", resp.SearchQuery)
	assert.Equal(t, []string{"Python", "Remote", "Backend"}, resp.Keywords)
	assert.Len(t, resp.Results, 1)
}

func TestSearchJobs_MissingRequiredField(t *testing.T) {
	gen := &fakeGenerator{keywordReply: "Go", searchReply: `[]`}
	r := newTestRouter(gen)

	fields := validFields()
	delete(fields, "location")
	body, contentType := searchForm(t, fields, nil)
	req := httptest.NewRequest(http.MethodPost, "/search-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSearchJobs_ResumeUploadReachesGenerator(t *testing.T) {
	gen := &fakeGenerator{keywordReply: "Go", searchReply: `[]`}
	r := newTestRouter(gen)

	body, contentType := searchForm(t, validFields(), []byte("%PDF-1.4 fake resume"))
	req := httptest.NewRequest(http.MethodPost, "/search-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.gotParts, 2)
	assert.Equal(t, []byte("%PDF-1.4 fake resume"), gen.gotParts[0].Data)
	assert.NotEmpty(t, gen.gotParts[1].Text)
}

func TestSearchJobs_GeneratorFailure_OpaqueError(t *testing.T) {
	gen := &fakeGenerator{keywordErr: errors.New("401 invalid api key")}
	r := newTestRouter(gen)

	body, contentType := searchForm(t, validFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/search-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, searchFailedMessage, resp["detail"])
	// The underlying error must not leak to the caller.
	assert.NotContains(t, rec.Body.String(), "api key")
}

func TestSearchJobs_InvalidModelJSON_NoPartialBody(t *testing.T) {
	gen := &fakeGenerator{keywordReply: "Go", searchReply: "no jobs found, try again"}
	r := newTestRouter(gen)

	body, contentType := searchForm(t, validFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/search-jobs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "search_query")
	assert.NotContains(t, rec.Body.String(), "keywords")
}

func TestSearchHistory_DisabledWithoutDatabase(t *testing.T) {
	r := newTestRouter(&fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/search-history", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(&fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
