package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msgsearch "github.com/coregx/msgsearch"
	"github.com/coregx/msgsearch/model"
)

func newTestHandler(t *testing.T, loaded bool) *Handler {
	t.Helper()

	corpus := []model.Message{
		model.NewMessage("m-1", "u-1", "Sophia Al-Farsi", time.Now(),
			"Please book a private jet to Paris for this Friday."),
		model.NewMessage("m-2", "u-2", "Armand Dupont", time.Now(),
			"I met an art collector in Paris last week."),
	}

	svc, err := msgsearch.NewService(
		msgsearch.WithSource(msgsearch.NewStaticSource(corpus)),
		msgsearch.WithLogger(&msgsearch.NoopLogger{}),
	)
	require.NoError(t, err)

	if loaded {
		require.NoError(t, svc.Load(context.Background()))
	}

	return NewHandler(svc, &msgsearch.NoopLogger{})
}

func doSearch(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)
	return rec
}

func TestHandleSearch(t *testing.T) {
	h := newTestHandler(t, true)

	rec := doSearch(h, "/search?q=Paris&page=1&page_size=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Paris", resp.Query)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "m-1", resp.Items[0].ID)
	assert.Equal(t, "m-2", resp.Items[1].ID)
}

func TestHandleSearch_Defaults(t *testing.T) {
	h := newTestHandler(t, true)

	rec := doSearch(h, "/search?q=paris")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.DefaultPage, resp.Page)
	assert.Equal(t, model.DefaultPageSize, resp.PageSize)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	h := newTestHandler(t, true)

	rec := doSearch(h, "/search")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
}

func TestHandleSearch_InvalidParams(t *testing.T) {
	h := newTestHandler(t, true)

	tests := []string{
		"/search?q=paris&page=0",
		"/search?q=paris&page=-3",
		"/search?q=paris&page_size=0",
		"/search?q=paris&page_size=101",
		"/search?q=paris&page=abc",
		"/search?q=paris&page_size=abc",
	}

	for _, target := range tests {
		rec := doSearch(h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandleSearch_NotReady(t *testing.T) {
	h := newTestHandler(t, false)

	rec := doSearch(h, "/search?q=paris")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_READY", resp.Code)
}

func TestHandleSearch_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodPost, "/search?q=paris", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Ready)
	assert.Equal(t, 2, resp.IndexedMessages)
}

func TestHandleHealth_NotReady(t *testing.T) {
	h := newTestHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.False(t, resp.Ready)
	assert.Equal(t, 0, resp.IndexedMessages)
}

func TestHandleRoot(t *testing.T) {
	h := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleRoot(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec = httptest.NewRecorder()
	h.HandleRoot(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
