package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-management/config"
	commandHTTP "voice-task-management/internal/command/delivery/http"
	"voice-task-management/internal/command/usecase"
	"voice-task-management/internal/middleware"
	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
)

type stubLLM struct {
	text string
	err  error
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Parts: []llmprovider.Part{{Text: s.text}}},
		FinishReason: llmprovider.FinishStop,
		ProviderName: "stub",
		ModelName:    "stub-1",
	}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(t *testing.T, llm usecase.LLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

	uc := usecase.New(log.NewNop(), llm, memory.NewFactory(memory.WithClock(now)), parser, nil, nil, usecase.Options{Clock: now})
	h := commandHTTP.New(log.NewNop(), uc)

	r := gin.New()
	commandHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), config.RateLimitConfig{}))
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestVoiceDelete(t *testing.T) {
	r := newRouter(t, &stubLLM{text: `{"intent":"delete","searchQuery":"compliance"}`})

	code, env := post(t, r, "/api/v1/commands/voice", map[string]any{
		"transcript": "delete the compliance task",
		"currentTasks": []map[string]any{
			{"id": "1", "title": "Fix bug"},
			{"id": "2", "title": "Write docs"},
			{"id": "3", "title": "Compliance review"},
		},
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Success  bool   `json:"success"`
		Deleted  *bool  `json:"deleted"`
		Message  string `json:"message"`
		Snapshot []struct {
			Title string `json:"title"`
		} `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Success)
	require.NotNil(t, data.Deleted)
	assert.True(t, *data.Deleted)
	require.Len(t, data.Snapshot, 2)
	assert.Equal(t, "Fix bug", data.Snapshot[0].Title)
	assert.Equal(t, "Write docs", data.Snapshot[1].Title)
}

func TestVoiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		llm        *stubLLM
		transcript string
		wantCode   int
		wantMsg    string
	}{
		{name: "empty transcript", llm: &stubLLM{}, transcript: "", wantCode: http.StatusBadRequest, wantMsg: "Transcript is required"},
		{name: "unknown intent", llm: &stubLLM{text: `{"intent":"archive"}`}, transcript: "archive", wantCode: http.StatusBadRequest, wantMsg: "Unknown intent: archive"},
		{name: "malformed", llm: &stubLLM{text: "no json here"}, transcript: "hm", wantCode: http.StatusUnprocessableEntity},
		{name: "provider down", llm: &stubLLM{err: errors.New("boom")}, transcript: "list", wantCode: http.StatusBadGateway},
		{name: "not found", llm: &stubLLM{text: `{"intent":"update","taskIndex":3,"priority":"high"}`}, transcript: "third task high", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, tt.llm)
			code, env := post(t, r, "/api/v1/commands/voice", map[string]any{"transcript": tt.transcript})
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Message)
			}
		})
	}
}

func TestVoiceNotFoundIncludesAvailableTasks(t *testing.T) {
	r := newRouter(t, &stubLLM{text: `{"intent":"update","searchQuery":"gym","priority":"high"}`})

	code, env := post(t, r, "/api/v1/commands/voice", map[string]any{
		"transcript":   "make gym high priority",
		"currentTasks": []map[string]any{{"id": "1", "title": "Fix bug"}},
	})
	require.Equal(t, http.StatusNotFound, code)

	var data struct {
		Success        bool     `json:"success"`
		AvailableTasks []string `json:"availableTasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Success)
	assert.Equal(t, []string{"Fix bug"}, data.AvailableTasks)
}

func TestParse(t *testing.T) {
	r := newRouter(t, &stubLLM{text: `{"intent":"create","taskTitle":"Dentist","scheduledTime":"tomorrow"}`})

	code, env := post(t, r, "/api/v1/commands/parse", map[string]any{"transcript": "dentist tomorrow"})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Intent struct {
			Intent        string `json:"intent"`
			ScheduledTime string `json:"scheduledTime"`
		} `json:"intent"`
		Provider string `json:"provider"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "create", data.Intent.Intent)
	assert.Equal(t, "2026-10-20", data.Intent.ScheduledTime)
	assert.Equal(t, "stub", data.Provider)
}

func TestExecute(t *testing.T) {
	r := newRouter(t, &stubLLM{err: errors.New("model must not be called")})

	code, env := post(t, r, "/api/v1/commands/execute", map[string]any{
		"intent": map[string]any{"intent": "filter", "priority": "high"},
		"currentTasks": []map[string]any{
			{"id": "1", "title": "Taxes", "priority": "high"},
			{"id": "2", "title": "Laundry", "priority": "low"},
		},
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
		Snapshot []json.RawMessage `json:"snapshot"`
		Message  string            `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, "Taxes", data.Tasks[0].Title)
	assert.Len(t, data.Snapshot, 2)
	assert.Equal(t, "Found 1 tasks with high priority", data.Message)
}

func TestExecuteResolvesRelativeSchedule(t *testing.T) {
	r := newRouter(t, &stubLLM{err: errors.New("model must not be called")})

	code, env := post(t, r, "/api/v1/commands/execute", map[string]any{
		"intent": map[string]any{"intent": "update", "taskIndex": 1, "scheduledTime": "tomorrow"},
		"currentTasks": []map[string]any{
			{"id": "1", "title": "Fix bug"},
		},
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Intent struct {
			ScheduledTime string `json:"scheduledTime"`
		} `json:"intent"`
		Task struct {
			Title         string `json:"title"`
			ScheduledTime string `json:"scheduledTime"`
		} `json:"task"`
		Snapshot []struct {
			ScheduledTime string `json:"scheduledTime"`
		} `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Fix bug", data.Task.Title)
	assert.Equal(t, "2026-10-20", data.Task.ScheduledTime)
	assert.Equal(t, "2026-10-20", data.Intent.ScheduledTime)
	require.Len(t, data.Snapshot, 1)
	assert.Equal(t, "2026-10-20", data.Snapshot[0].ScheduledTime)
}

func TestExecuteRejectsZeroIndex(t *testing.T) {
	r := newRouter(t, &stubLLM{})

	code, _ := post(t, r, "/api/v1/commands/execute", map[string]any{
		"intent": map[string]any{"intent": "delete", "taskIndex": 0},
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTasks(t *testing.T) {
	r := newRouter(t, &stubLLM{})

	t.Run("hydrate", func(t *testing.T) {
		code, env := post(t, r, "/api/v1/tasks", map[string]any{
			"tasks": []map[string]any{{"title": ""}, {"id": "k", "title": "Keep"}},
		})
		require.Equal(t, http.StatusOK, code)

		var data struct {
			Tasks []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Tasks, 2)
		assert.Equal(t, "Untitled Task", data.Tasks[0].Title)
		assert.NotEmpty(t, data.Tasks[0].ID)
		assert.Equal(t, "k", data.Tasks[1].ID)
	})

	t.Run("create", func(t *testing.T) {
		code, env := post(t, r, "/api/v1/tasks", map[string]any{
			"title":        "Water plants",
			"priority":     "low",
			"currentTasks": []map[string]any{{"id": "1", "title": "Fix bug"}},
		})
		require.Equal(t, http.StatusOK, code)

		var data struct {
			Task struct {
				Title    string `json:"title"`
				Priority string `json:"priority"`
			} `json:"task"`
			Tasks []json.RawMessage `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Water plants", data.Task.Title)
		assert.Equal(t, "low", data.Task.Priority)
		assert.Len(t, data.Tasks, 2)
	})

	t.Run("create without title", func(t *testing.T) {
		code, env := post(t, r, "/api/v1/tasks", map[string]any{"priority": "low"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Task title is required", env.Message)
	})
}
