// Package export writes the full clipboard history as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"go.klb.dev/copyhist/internal/store"
)

var header = []string{"ID", "Created At", "Title", "Category", "Content"}

// WriteCSV writes clips to w with a header row, one row per clip in the
// given order. Nil title/category become empty cells.
func WriteCSV(w io.Writer, clips []store.Clip) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	for _, c := range clips {
		row := []string{
			fmt.Sprintf("%d", c.ID),
			c.CreatedAt,
			deref(c.Title),
			deref(c.Category),
			c.Content,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: clip %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
