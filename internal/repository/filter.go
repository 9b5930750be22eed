package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Column is a fixed, qualified column name. Filters only ever reference
// Column constants declared in this package; user input is always bound.
type Column string

// Predicate narrows a query. A nil Predicate is ignored.
type Predicate func(db *gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// Contains matches rows where any of columns contains value, ignoring case.
// Blank values produce no predicate.
func Contains(value string, columns ...Column) Predicate {
	value = strings.TrimSpace(value)
	if value == "" || len(columns) == 0 {
		return nil
	}
	pattern := likePattern(value)
	return func(db *gorm.DB) *gorm.DB {
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			parts[i] = "LOWER(" + string(col) + ") LIKE LOWER(?)"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// Equals matches rows where column equals value.
func Equals(column Column, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(string(column)+" = ?", value)
	}
}

// AtLeast matches rows where column >= value.
func AtLeast(column Column, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(string(column)+" >= ?", value)
	}
}

// AtMost matches rows where column <= value.
func AtMost(column Column, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(string(column)+" <= ?", value)
	}
}

// Exists matches rows for which the subquery built by sub returns a row.
// sub is called once per query so concurrent queries never share it.
func Exists(sub func() *gorm.DB) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (?)", sub())
	}
}

func applyAll(db *gorm.DB, preds []Predicate) *gorm.DB {
	for _, p := range preds {
		if p != nil {
			db = p(db)
		}
	}
	return db
}

// orderBy resolves a named sort key against a fixed set of ORDER BY clauses.
func orderBy(sorts map[string]string, key, fallback string) string {
	if clause, ok := sorts[key]; ok {
		return clause
	}
	return sorts[fallback]
}

// Page selects one page of a listing. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads a page number from raw; absent, non-numeric or
// non-positive values select the first page.
func ParsePage(raw string, size int) Page {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		n = 1
	}
	if size < 1 {
		size = 1
	}
	return Page{Number: n, Size: size}
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Result is one page of rows plus the total matching the filters.
type Result[T any] struct {
	Rows       []T
	Total      int64
	TotalPages int
	Page       int
	PageSize   int
}

// NewResult builds a Result. An empty listing has zero pages.
func NewResult[T any](rows []T, total int64, page Page) *Result[T] {
	if rows == nil {
		rows = []T{}
	}
	pages := 0
	if total > 0 && page.Size > 0 {
		pages = int(math.Ceil(float64(total) / float64(page.Size)))
	}
	return &Result[T]{
		Rows:       rows,
		Total:      total,
		TotalPages: pages,
		Page:       page.Number,
		PageSize:   page.Size,
	}
}

// HasPrev reports whether a previous page exists.
func (r *Result[T]) HasPrev() bool { return r.Page > 1 }

// HasNext reports whether a following page exists.
func (r *Result[T]) HasNext() bool { return r.Page < r.TotalPages }

// paginate runs the count and the page query concurrently. from must return
// a fresh query (table, joins and filters) on every call; the select list and
// order only apply to the rows query.
func paginate[T any](ctx context.Context, from func() *gorm.DB, selects, order string, page Page) (*Result[T], error) {
	var (
		total int64
		rows  []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return from().WithContext(gctx).Count(&total).Error
	})
	g.Go(func() error {
		return from().WithContext(gctx).
			Select(selects).
			Order(order).
			Limit(page.Size).
			Offset(page.Offset()).
			Scan(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewResult(rows, total, page), nil
}
