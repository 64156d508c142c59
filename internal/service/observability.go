package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// UseCaseEvent describes one finished counter use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one slog text record per use case to w.
// Snapshot events fire on every dashboard tick, so they are logged at debug
// level and only show up when verbose is set.
func NewLogUseCaseObserver(w io.Writer, verbose bool) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)

	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, event.Fields[k])
	}

	switch {
	case event.Err != nil:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "counter_use_case", attrs...)
	case event.Name == "snapshot":
		o.logger.DebugContext(ctx, "counter_use_case", attrs...)
	default:
		o.logger.InfoContext(ctx, "counter_use_case", attrs...)
	}
}

// RecordingUseCaseObserver keeps every event in memory.
type RecordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *RecordingUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order.
func (r *RecordingUseCaseObserver) Events() []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UseCaseEvent, len(r.events))
	copy(out, r.events)
	return out
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
