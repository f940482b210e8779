package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

const defaultBootstrapLimit = 256

type bootstrapEntry struct {
	ctx    context.Context
	level  string
	msg    string
	fields []interface{}
}

// BootstrapLogger records entries emitted before the configured logger
// exists (config discovery, env overrides) and replays them on Attach.
// Once attached it forwards directly to the delegate.
type BootstrapLogger struct {
	state  *bootstrapState
	fields []interface{}
}

type bootstrapState struct {
	mu       sync.Mutex
	limit    int
	entries  []bootstrapEntry
	delegate ports.Logger
}

// NewBootstrapLogger creates a logger that keeps at most limit pending
// entries, dropping the oldest first.
func NewBootstrapLogger(limit int) *BootstrapLogger {
	if limit <= 0 {
		limit = defaultBootstrapLimit
	}
	return &BootstrapLogger{state: &bootstrapState{limit: limit}}
}

// Attach replays pending entries into delegate in order and routes future
// entries to it.
func (l *BootstrapLogger) Attach(delegate ports.Logger) {
	if l == nil || delegate == nil {
		return
	}
	l.state.mu.Lock()
	pending := l.state.entries
	l.state.entries = nil
	l.state.delegate = delegate
	l.state.mu.Unlock()

	for _, e := range pending {
		emit(delegate, e)
	}
}

// Pending returns the number of entries waiting for a delegate.
func (l *BootstrapLogger) Pending() int {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	return len(l.state.entries)
}

func (l *BootstrapLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "debug", msg, fields)
}

func (l *BootstrapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "info", msg, fields)
}

func (l *BootstrapLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "warn", msg, fields)
}

func (l *BootstrapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, "error", msg, fields)
}

// With returns a child logger sharing the same pending queue.
func (l *BootstrapLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &BootstrapLogger{state: l.state, fields: next}
}

func (l *BootstrapLogger) record(ctx context.Context, level, msg string, fields []interface{}) {
	if l == nil || l.state == nil {
		return
	}
	entry := bootstrapEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	}

	l.state.mu.Lock()
	delegate := l.state.delegate
	if delegate == nil {
		if len(l.state.entries) == l.state.limit {
			l.state.entries = l.state.entries[1:]
		}
		l.state.entries = append(l.state.entries, entry)
	}
	l.state.mu.Unlock()

	if delegate != nil {
		emit(delegate, entry)
	}
}

func emit(delegate ports.Logger, e bootstrapEntry) {
	switch e.level {
	case "debug":
		delegate.Debug(e.ctx, e.msg, e.fields...)
	case "warn":
		delegate.Warn(e.ctx, e.msg, e.fields...)
	case "error":
		delegate.Error(e.ctx, e.msg, e.fields...)
	default:
		delegate.Info(e.ctx, e.msg, e.fields...)
	}
}

var _ ports.Logger = (*BootstrapLogger)(nil)
