package httpserver_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-management/config"
	commandHTTP "voice-task-management/internal/command/delivery/http"
	"voice-task-management/internal/command/usecase"
	"voice-task-management/internal/httpserver"
	"voice-task-management/internal/middleware"
	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

type stubLLM struct{}

func (stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Parts: []llmprovider.Part{{Text: `{"intent":"create","taskTitle":"Buy milk"}`}}},
		FinishReason: llmprovider.FinishStop,
	}, nil
}

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	uc := usecase.New(log.NewNop(), stubLLM{}, memory.NewFactory(), parser, nil, m, usecase.Options{})

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:           8080,
		Mode:           "test",
		Environment:    "development",
		Middleware:     middleware.New(log.NewNop(), config.RateLimitConfig{}),
		Metrics:        m,
		CommandHandler: commandHTTP.New(log.NewNop(), uc),
	})
	require.NoError(t, err)
	return srv
}

func TestNewValidates(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)

	_, err = httpserver.New(log.NewNop(), httpserver.Config{Mode: "test"})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "voice-task-management", path)
	}
}

func TestCommandsAreCountedInMetrics(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands/voice", bytes.NewBufferString(`{"transcript":"buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if strings.HasPrefix(line, "voice_commands_total{") && strings.Contains(line, `intent="create"`) && strings.Contains(line, `outcome="success"`) {
			found = true
		}
	}
	assert.True(t, found, w.Body.String())
}

func TestTelegramRouteOnlyWhenConfigured(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
