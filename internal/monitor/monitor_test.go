package monitor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/copyhist/internal/store"
)

// scriptedSource replays a fixed sequence of poll results.
type scriptedSource struct {
	reads []readResult
	pos   int
}

type readResult struct {
	text string
	err  error
}

func (s *scriptedSource) Read() (string, error) {
	if s.pos >= len(s.reads) {
		last := s.reads[len(s.reads)-1]
		return last.text, last.err
	}
	r := s.reads[s.pos]
	s.pos++
	return r.text, r.err
}

func (s *scriptedSource) Write(string) error { return nil }

// failingStore rejects every insert.
type failingStore struct{ calls int }

func (f *failingStore) Insert(context.Context, string) (int64, error) {
	f.calls++
	return 0, errors.New("disk gone")
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func contents(t *testing.T, st *store.Store) []string {
	t.Helper()
	clips, err := st.ListAll(context.Background())
	require.NoError(t, err)
	// ListAll is newest first; reverse into insertion order.
	var out []string
	for i := len(clips) - 1; i >= 0; i-- {
		out = append(out, clips[i].Content)
	}
	return out
}

func TestTickPipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reads []readResult
		want  []string // stored contents in insertion order
	}{
		{
			name:  "baseline then repeats then new value",
			reads: []readResult{{text: ""}, {text: "A"}, {text: "A"}, {text: "B"}},
			want:  []string{"A", "B"},
		},
		{
			name:  "pre-existing clipboard content is never stored",
			reads: []readResult{{text: "secret"}, {text: "secret"}},
			want:  nil,
		},
		{
			name: "read failure does not reset the baseline",
			reads: []readResult{
				{text: "X"},
				{err: errors.New("clipboard busy")},
				{text: "X"},
				{text: "Y"},
			},
			want: []string{"Y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := openTestStore(t)
			m := New(&scriptedSource{reads: tt.reads}, st, time.Second)

			ctx := context.Background()
			for range tt.reads {
				m.tick(ctx)
			}
			assert.Equal(t, tt.want, contents(t, st))
		})
	}
}

func TestInsertFailureDropsCaptureWithoutRetry(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{reads: []readResult{
		{text: ""}, {text: "A"}, {text: "A"}, {text: "B"},
	}}
	fs := &failingStore{}
	m := New(src, fs, time.Second)

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		m.tick(ctx)
	}

	// "A" failed once and was not retried on its repeat; "B" failed once.
	assert.Equal(t, 2, fs.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	src := &scriptedSource{reads: []readResult{{text: ""}, {text: "A"}}}
	m := New(src, st, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// Give the loop a few ticks to capture "A", then stop it.
	require.Eventually(t, func() bool {
		clips, err := st.ListAll(context.Background())
		return err == nil && len(clips) == 1
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}

	assert.Equal(t, []string{"A"}, contents(t, st))
}

func TestNewDefaultsInterval(t *testing.T) {
	t.Parallel()

	m := New(&scriptedSource{reads: []readResult{{}}}, &failingStore{}, 0)
	assert.Equal(t, DefaultInterval, m.interval)
}
