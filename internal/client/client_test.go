package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhd-selfcheck/backend/internal/api"
	"github.com/adhd-selfcheck/backend/internal/client"
	"github.com/adhd-selfcheck/backend/internal/service"
	"github.com/adhd-selfcheck/backend/internal/store"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(service.NewAssessmentService(store.NewMemory(), logger), logger))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", 5*time.Second)
}

func uniform(v int) []int {
	out := make([]int, 18)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestClient_Questions(t *testing.T) {
	c := newTestClient(t)

	cat, err := c.Questions(context.Background())
	require.NoError(t, err)
	assert.Len(t, cat.Questions, 18)
	assert.Equal(t, 72, cat.MaxTotal)
}

func TestClient_ScoreDoesNotStore(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	eval, err := c.Score(ctx, uniform(4))
	require.NoError(t, err)
	assert.Equal(t, 72, eval.Scores.TotalScore)
	assert.Equal(t, "high_risk", eval.Interpretation.Level)

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClient_SubmitGetListReport(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	created, err := c.Submit(ctx, uniform(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 18, created.TotalScore)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Answers, got.Answers)

	rep, err := c.Report(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mild", rep.Interpretation.Level)

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestClient_Errors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Get(ctx, 99)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "assessment not found", apiErr.Message)

	_, err = c.Submit(ctx, []int{1, 2})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Details)
}

func TestClient_ExportXLSX(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Submit(ctx, uniform(2))
	require.NoError(t, err)

	body, err := c.ExportXLSX(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(body[:2]), "xlsx is a zip archive")
}

func TestClient_Unreachable(t *testing.T) {
	c := client.New("http://127.0.0.1:1", time.Second)

	_, err := c.Questions(context.Background())
	assert.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
