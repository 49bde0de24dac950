// Package diagnostics is the sink for non-fatal findings about source
// entities, such as a degenerate line direction.
package diagnostics

import (
	"context"
	"sync"

	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// Sink accepts one finding about one source entity.
type Sink interface {
	Report(ctx context.Context, source ifc.ID, message string, isError bool)
}

// Entry is one recorded finding.
type Entry struct {
	Source  ifc.ID
	Message string
	IsError bool
}

// SlogSink writes findings to the logger carried by ctx.
type SlogSink struct{}

func (SlogSink) Report(ctx context.Context, source ifc.ID, message string, isError bool) {
	logger := ctxlog.FromContext(ctx)
	if isError {
		logger.Error(message, "entity", source.String())
		return
	}
	logger.Warn(message, "entity", source.String())
}

// Recorder keeps every finding in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(_ context.Context, source ifc.ID, message string, isError bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Source: source, Message: message, IsError: isError})
}

// Entries returns a copy of the recorded findings in report order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Counts returns the number of warnings and errors recorded.
func (r *Recorder) Counts() (warnings, errors int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.IsError {
			errors++
		} else {
			warnings++
		}
	}
	return warnings, errors
}

// Tee fans a finding out to several sinks.
type Tee []Sink

func (t Tee) Report(ctx context.Context, source ifc.ID, message string, isError bool) {
	for _, s := range t {
		s.Report(ctx, source, message, isError)
	}
}
