// Package query implements the read shapes consumers use over the store:
// "most recent N, optionally substring-filtered" and "by id". Filtering and
// ordering are pushed down to the store's SQL so a backing index can serve
// them; this layer owns argument validation and the blank-search rule.
package query

import (
	"context"
	"fmt"
	"strings"

	"go.klb.dev/copyhist/internal/store"
)

// DefaultLimit matches the list command's default page size.
const DefaultLimit = 20

// Engine answers read queries against a Store.
type Engine struct {
	store *store.Store
}

// New returns an Engine over st.
func New(st *store.Store) *Engine { return &Engine{store: st} }

// List returns up to limit clips, newest first. A blank or
// whitespace-only term applies no filter; otherwise a clip matches when
// term occurs as a case-insensitive substring of its content, title, or
// category. The limit must be positive.
func (e *Engine) List(ctx context.Context, limit int, term string) ([]store.Clip, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("query: limit must be positive, got %d", limit)
	}
	return e.store.ListRecent(ctx, limit, strings.TrimSpace(term))
}

// ByID returns the clip with the given id, or store.ErrNotFound.
func (e *Engine) ByID(ctx context.Context, id int64) (store.Clip, error) {
	return e.store.GetByID(ctx, id)
}
