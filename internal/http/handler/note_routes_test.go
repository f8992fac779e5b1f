package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scripturenotes/internal/contract"
	"scripturenotes/internal/domain/sqlite"
	"scripturenotes/internal/domain/sqlite/repository"
	"scripturenotes/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	noteRoutes := NewNoteDefault(service.NewNoteService(repository.NewNoteRepository(db), validator.New()))

	e := echo.New()
	e.GET("/api/health", HealthCheck)
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.GET("/api/notes/:id", noteRoutes.GetNote)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.PUT("/api/notes/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeNote(t *testing.T, rec *httptest.ResponseRecorder) contract.NoteResponse {
	t.Helper()
	var note contract.NoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	return note
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp contract.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestListNotesEmptyIsArray(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestNoteLifecycle(t *testing.T) {
	e := newTestServer(t)

	// Create with a generated id.
	rec := doRequest(e, http.MethodPost, "/api/notes", `{"title":"Exodus"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeNote(t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Exodus", created.Title)

	// Fetch returns four empty arrays, not nulls.
	rec = doRequest(e, http.MethodGet, "/api/notes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, pane := range []string{"people", "places", "events", "verses"} {
		assert.Contains(t, body, `"`+pane+`":[]`)
	}

	// Replace panes.
	rec = doRequest(e, http.MethodPut, "/api/notes/"+created.ID,
		`{"title":"Exodus","people":[{"id":"p1","content":"Moses"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeNote(t, rec)
	require.Len(t, updated.People, 1)
	assert.Equal(t, "p1", updated.People[0].ID)
	assert.Equal(t, "Moses", updated.People[0].Content)

	// The summary list reflects the note.
	rec = doRequest(e, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []contract.NoteSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, created.ID, summaries[0].ID)

	// Delete, then every lookup 404s.
	rec = doRequest(e, http.MethodDelete, "/api/notes/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/notes/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rec.Body.String())
}

func TestCreateNoteValidation(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{}`},
		{"blank title", `{"title":"   "}`},
		{"non-string title", `{"title":123}`},
		{"malformed body", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/notes", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateNoteErrors(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/notes", `{"id":"n1","title":"Exodus"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPut, "/api/notes/n1", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPut, "/api/notes/ghost", `{"title":"Exodus"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateNoteDropsMalformedItems(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/notes", `{"id":"n1","title":"Exodus"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPut, "/api/notes/n1",
		`{"title":"Exodus","people":[{"id":"a"},"bad",{"id":"b","content":"ok"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeNote(t, rec)
	require.Len(t, updated.People, 1)
	assert.Equal(t, "b", updated.People[0].ID)
	assert.Equal(t, "ok", updated.People[0].Content)
}

func TestDeleteMissingNote(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodDelete, "/api/notes/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rec.Body.String())
}
