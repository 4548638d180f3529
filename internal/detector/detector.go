// Package detector decides which raw clipboard reads are new clips.
//
// The detector is a two-state machine: unarmed until its first observation,
// armed forever after. The first observation establishes a baseline so that
// whatever was already on the clipboard when monitoring started is never
// captured as if it had just been copied. It is driven entirely by its
// caller; it does no polling or sleeping of its own, so an identical
// sequence of readings always yields an identical sequence of decisions.
package detector

// Reading is one successfully polled clipboard state. OK is false when the
// clipboard held no textual value; Text is meaningful only when OK. Failed
// reads never become Readings — the monitor drops them before the detector.
type Reading struct {
	Text string
	OK   bool
}

// Decision is the detector's verdict on a single reading. When Capture is
// true, Text carries the value to record.
type Decision struct {
	Capture bool
	Text    string
}

var skip = Decision{}

// Detector tracks the last observed clipboard value across polls.
// Not safe for concurrent use; the monitor loop is its only caller.
type Detector struct {
	armed   bool
	last    string
	hasLast bool
}

// New returns a detector in the unarmed state.
func New() *Detector { return &Detector{} }

// Observe consumes one reading and decides whether it is a new clip.
//
// The first observation always skips: a textual read becomes the baseline,
// a non-text one leaves the baseline unset. Once armed, a reading
// is captured iff it is textual, non-empty, and differs exactly from the
// baseline; the baseline advances to the captured value before the
// decision is returned. Failed reads never change state — a repeat of the
// pre-failure value is still recognized as unchanged.
func (d *Detector) Observe(r Reading) Decision {
	if !d.armed {
		d.armed = true
		if r.OK {
			d.last = r.Text
			d.hasLast = true
		}
		return skip
	}

	if !r.OK || r.Text == "" {
		return skip
	}
	if d.hasLast && r.Text == d.last {
		return skip
	}

	d.last = r.Text
	d.hasLast = true
	return Decision{Capture: true, Text: r.Text}
}

// Reset returns the detector to the unarmed state, discarding the baseline.
// Used when monitoring restarts.
func (d *Detector) Reset() { *d = Detector{} }
