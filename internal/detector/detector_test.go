package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) Reading { return Reading{Text: s, OK: true} }

func nonText() Reading { return Reading{} }

func TestObserveSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		readings []Reading
		want     []string // captured texts, in order
	}{
		{
			name:     "startup value is never captured",
			readings: []Reading{text("pre-existing"), text("pre-existing")},
			want:     nil,
		},
		{
			name:     "new value after baseline is captured once",
			readings: []Reading{text(""), text("A"), text("A"), text("B")},
			want:     []string{"A", "B"},
		},
		{
			name:     "empty text is never captured",
			readings: []Reading{text("x"), text(""), text(""), text("y")},
			want:     []string{"y"},
		},
		{
			name:     "non-text baseline then first text captured",
			readings: []Reading{nonText(), text("A")},
			want:     []string{"A"},
		},
		{
			name:     "non-text reads do not disturb the baseline",
			readings: []Reading{text("A"), nonText(), text("A"), text("B")},
			want:     []string{"B"},
		},
		{
			name:     "alternating values are all captured",
			readings: []Reading{text(""), text("A"), text("B"), text("A")},
			want:     []string{"A", "B", "A"},
		},
		{
			name:     "exact string inequality, case matters",
			readings: []Reading{text("a"), text("A")},
			want:     []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := New()
			var got []string
			for _, r := range tt.readings {
				if dec := d.Observe(r); dec.Capture {
					got = append(got, dec.Text)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObserveDeterminism(t *testing.T) {
	t.Parallel()

	readings := []Reading{text("A"), nonText(), text("B"), text("B"), text("")}

	run := func() []Decision {
		d := New()
		out := make([]Decision, 0, len(readings))
		for _, r := range readings {
			out = append(out, d.Observe(r))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestBaselineAdvancesOnCapture(t *testing.T) {
	t.Parallel()

	d := New()
	d.Observe(text("old"))

	dec := d.Observe(text("new"))
	require.True(t, dec.Capture)

	// An immediate repeat of the captured value is unchanged.
	assert.False(t, d.Observe(text("new")).Capture)
	// Going back to the pre-capture value is a change again.
	assert.True(t, d.Observe(text("old")).Capture)
}

func TestReset(t *testing.T) {
	t.Parallel()

	d := New()
	d.Observe(text("A"))
	require.True(t, d.Observe(text("B")).Capture)

	d.Reset()

	// After reset the next observation re-establishes the baseline.
	assert.False(t, d.Observe(text("C")).Capture)
	assert.True(t, d.Observe(text("D")).Capture)
}
