// Package pagination turns an ordered collection into bounded pages with
// count metadata.
package pagination

import "context"

const (
	// DefaultLimit is used when a caller supplies no page size.
	DefaultLimit = 10
	// MaxLimit caps the page size a caller can request.
	MaxLimit = 100
)

// Page is a bounded slice of an ordered collection plus count metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// CountFunc returns the size of the full matching set, independent of
// page/limit.
type CountFunc func(ctx context.Context) (int, error)

// SliceFunc returns the elements in [offset, offset+limit) of the source
// collection in its defined order. The engine never re-sorts.
type SliceFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Clamp normalizes a requested page and limit: page is at least 1 and limit
// is forced into [1, MaxLimit].
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	} else if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate builds a page from a count and slice capability over the
// underlying collection. A page past the end yields empty items with
// total/total_pages still accurate. TotalPages is never below 1 so UIs can
// render "page 1 of 1" on empty result sets.
func Paginate[T any](ctx context.Context, page, limit int, count CountFunc, slice SliceFunc[T]) (*Page[T], error) {
	page, limit = Clamp(page, limit)

	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := 1
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	offset := (page - 1) * limit
	items, err := slice(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
