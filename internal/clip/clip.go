// Package clip wraps the system clipboard behind a small text-only
// interface so the monitor loop and copy-back path can be tested without
// a display server.
package clip

import (
	"errors"
	"log/slog"

	"golang.design/x/clipboard"
)

// ErrUnavailable reports that no clipboard is reachable (headless host,
// missing display server).
var ErrUnavailable = errors.New("clipboard unavailable")

// Source is the capability the core needs from the OS clipboard.
type Source interface {
	// Read returns the current clipboard text. An empty string with a nil
	// error means the clipboard is empty or holds non-text content.
	Read() (string, error)

	// Write replaces the clipboard contents with text.
	Write(text string) error
}

type systemSource struct{}

// New returns the system clipboard, or a failing stub if the display
// environment is unavailable. clipboard.Init is called here rather than in
// init() so that sub-commands that never touch the clipboard (list, export)
// don't trigger the probe.
func New() Source {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return headlessSource{}
	}
	return systemSource{}
}

func (systemSource) Read() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (systemSource) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// headlessSource fails every operation; the monitor loop treats that as a
// transient read error and keeps its cadence.
type headlessSource struct{}

func (headlessSource) Read() (string, error) { return "", ErrUnavailable }
func (headlessSource) Write(string) error    { return ErrUnavailable }
