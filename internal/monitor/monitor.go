// Package monitor runs the clipboard polling loop.
//
// One goroutine, one tick at a time: read the clipboard, ask the detector,
// and if the value is a new clip, insert it before the next tick. There is
// no queue between polling and storage; ticks are never pipelined.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"go.klb.dev/copyhist/internal/clip"
	"go.klb.dev/copyhist/internal/detector"
)

// DefaultInterval is the wall-clock spacing between polls.
const DefaultInterval = 400 * time.Millisecond

// Inserter is the slice of the store the monitor writes through.
type Inserter interface {
	Insert(ctx context.Context, content string) (int64, error)
}

// Monitor drives the poll → detect → insert pipeline.
type Monitor struct {
	source   clip.Source
	store    Inserter
	det      *detector.Detector
	interval time.Duration
}

// New returns a monitor polling source every interval and recording
// accepted clips through st. A non-positive interval falls back to
// DefaultInterval.
func New(source clip.Source, st Inserter, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		source:   source,
		store:    st,
		det:      detector.New(),
		interval: interval,
	}
}

// Run polls until ctx is cancelled. It always returns ctx.Err().
//
// Failures inside a tick never stop the loop: a clipboard read error is
// logged and the next tick proceeds on schedule; a store insert error drops
// that capture (the detector baseline has already advanced, so the value is
// not retried) and is logged. Cancellation is observed between ticks —
// an in-flight insert is never interrupted.
func (m *Monitor) Run(ctx context.Context) error {
	slog.Info("clipboard monitor started", "interval", m.interval)
	m.det.Reset()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.tick(ctx)

		select {
		case <-ctx.Done():
			slog.Info("clipboard monitor stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	text, err := m.source.Read()
	if err != nil {
		// A failed read is not a state change; the detector never sees it,
		// so its baseline survives and the loop keeps its cadence.
		slog.Warn("clipboard read failed", "err", err)
		return
	}

	d := m.det.Observe(detector.Reading{Text: text, OK: true})
	if !d.Capture {
		return
	}

	id, err := m.store.Insert(ctx, d.Text)
	if err != nil {
		slog.Error("failed to record clip, capture dropped", "err", err)
		return
	}
	slog.Info("captured new clip", "id", id, "bytes", len(d.Text))
}
