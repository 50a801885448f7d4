//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heshanf/agridataset-backend/internal/adapter/llm"
	datasetrepo "github.com/heshanf/agridataset-backend/internal/adapter/postgres/dataset"
	"github.com/heshanf/agridataset-backend/internal/adapter/postgres/testhelper"
	"github.com/heshanf/agridataset-backend/internal/config"
	"github.com/heshanf/agridataset-backend/internal/generation"
	datasetservice "github.com/heshanf/agridataset-backend/internal/service/dataset"
	"github.com/heshanf/agridataset-backend/internal/transport/middleware"
	"github.com/heshanf/agridataset-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// setupTestServer starts the full HTTP stack against a shared test database
// and a stubbed completion endpoint that always returns llmResponse.
func setupTestServer(t *testing.T, llmResponse string) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":      "chatcmpl-e2e",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": llmResponse,
					},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(upstream.Close)

	llmClient := llm.New(config.OpenAIConfig{
		APIKey:              "test-key",
		BaseURL:             upstream.URL + "/v1",
		Model:               "gpt-4o",
		MaxCompletionTokens: 1000,
		Temperature:         0.7,
		RequestTimeout:      10 * time.Second,
	})

	repo := datasetrepo.New(pool)
	generationSvc := generation.NewService(logger, repo, llmClient, config.GenerationConfig{
		DefaultCount:     50,
		MaxCount:         100,
		KnownTermsBudget: 800,
	})
	datasetSvc := datasetservice.NewService(logger, repo)

	mux := rest.NewRouter(rest.Handlers{
		Generate: rest.NewGenerateHandler(generationSvc, logger),
		Dataset:  rest.NewDatasetHandler(datasetSvc, logger),
		Health:   rest.NewHealthHandler(pool, datasetSvc, "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postJSON sends a JSON POST and decodes the JSON response into out.
func postJSON(t *testing.T, ts *testServer, path string, body any, out any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// getJSON sends a GET and decodes the JSON response into out.
func getJSON(t *testing.T, ts *testServer, path string, out any) *http.Response {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// getBody sends a GET and returns the raw body.
func getBody(t *testing.T, ts *testServer, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// clearDatasets empties the datasets table so counters start from zero.
func clearDatasets(t *testing.T, ts *testServer) {
	t.Helper()
	_, err := ts.Pool.Exec(t.Context(), "TRUNCATE datasets RESTART IDENTITY")
	require.NoError(t, err)
}
