package db

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type EventLevel string

const (
	EventQuery EventLevel = "query"
	EventInfo  EventLevel = "info"
	EventWarn  EventLevel = "warn"
	EventError EventLevel = "error"
)

// Event is delivered to handlers registered with Client.On.
type Event struct {
	Level     EventLevel
	Timestamp time.Time
	Message   string
	Target    string

	// query events only
	Query    string
	Duration time.Duration
	Err      error
}

type EventHandler func(Event)

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cms",
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Duration of SQL queries by statement kind.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"statement", "status"})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cms",
		Subsystem: "db",
		Name:      "events_total",
		Help:      "Client events by level.",
	}, []string{"level"})
)

type emitter struct {
	mu       sync.RWMutex
	handlers map[EventLevel][]EventHandler
}

func newEmitter() *emitter {
	return &emitter{handlers: make(map[EventLevel][]EventHandler)}
}

func (e *emitter) on(level EventLevel, h EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[level] = append(e.handlers[level], h)
}

func (e *emitter) emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	eventsTotal.WithLabelValues(string(ev.Level)).Inc()

	e.mu.RLock()
	hs := e.handlers[ev.Level]
	e.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
}

func (e *emitter) log(level EventLevel, target, msg string) {
	e.emit(Event{Level: level, Target: target, Message: msg})
}

// queryHook turns go-pg query events into client query events.
type queryHook struct {
	events *emitter
}

var _ pg.QueryHook = (*queryHook)(nil)

func (h *queryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *queryHook) AfterQuery(_ context.Context, event *pg.QueryEvent) error {
	duration := time.Since(event.StartTime)

	query, err := event.FormattedQuery()
	if err != nil {
		h.events.log(EventError, "query", "failed to format query: "+err.Error())
		return nil
	}

	status := "ok"
	if event.Err != nil && event.Err != pg.ErrNoRows {
		status = "error"
	}
	queryDuration.WithLabelValues(statementKind(string(query)), status).Observe(duration.Seconds())

	h.events.emit(Event{
		Level:     EventQuery,
		Timestamp: event.StartTime,
		Target:    "query",
		Query:     string(query),
		Duration:  duration,
		Err:       event.Err,
	})

	return nil
}

// statementKind returns the lower-cased leading keyword of an SQL statement.
func statementKind(query string) string {
	query = strings.TrimSpace(query)
	if i := strings.IndexAny(query, " \n\t("); i > 0 {
		query = query[:i]
	}
	switch kind := strings.ToLower(query); kind {
	case "select", "insert", "update", "delete", "with", "begin", "commit", "rollback", "set":
		return kind
	}
	return "other"
}
