package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// LLM is the part of llmprovider.Manager the use case needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// CalendarScheduler is the part of gcalendar.Client the use case needs.
type CalendarScheduler interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}

// Options tunes model calls. A nil Temperature and a non-positive
// MaxOutputTokens fall back to defaults; an explicit zero temperature is kept.
type Options struct {
	Temperature     *float64
	MaxOutputTokens int
	CalendarID      string
	Clock           func() time.Time
}

type implUseCase struct {
	l           log.Logger
	llm         LLM
	newRepo     repository.Factory
	resolver    *datemath.Parser
	calendar    CalendarScheduler
	calendarID  string
	metrics     *metrics.Metrics
	temperature float64
	maxTokens   int
	now         func() time.Time
}

// New creates a new command UseCase. calendar and m may be nil.
func New(
	l log.Logger,
	llm LLM,
	newRepo repository.Factory,
	resolver *datemath.Parser,
	calendar CalendarScheduler,
	m *metrics.Metrics,
	opts Options,
) *implUseCase {
	uc := &implUseCase{
		l:           l,
		llm:         llm,
		newRepo:     newRepo,
		resolver:    resolver,
		calendar:    calendar,
		calendarID:  opts.CalendarID,
		metrics:     m,
		temperature: defaultTemperature,
		maxTokens:   opts.MaxOutputTokens,
		now:         opts.Clock,
	}
	if opts.Temperature != nil && *opts.Temperature >= 0 {
		uc.temperature = *opts.Temperature
	}
	if uc.maxTokens <= 0 {
		uc.maxTokens = defaultMaxOutputTokens
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
