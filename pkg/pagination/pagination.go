// Package pagination converts (page, page_size) query parameters into a
// bounded offset/limit window and computes page counts.
//
// Behaviour for out-of-range input is deliberate and asymmetric: page below 1
// is clamped to 1 (a harmless client mistake), while page_size outside
// [1,100] is rejected, because silently serving a different window size than
// the client asked for would corrupt client-side paging arithmetic.
package pagination

import (
	"errors"
	"fmt"
)

const (
	// DefaultPageSize is used when the client omits page_size.
	DefaultPageSize = 10
	// MaxPageSize bounds how many rows one request may fetch.
	MaxPageSize = 100
)

// ErrPageSizeRange reports a page_size outside [1, MaxPageSize].
var ErrPageSizeRange = fmt.Errorf("page_size must be between 1 and %d", MaxPageSize)

// Params is a validated pagination window.
type Params struct {
	Page     int
	PageSize int
}

// Normalize validates and normalizes raw query values.
// pageSize 0 means "not supplied" and takes the default.
func Normalize(page, pageSize int) (Params, error) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Params{}, ErrPageSizeRange
	}
	return Params{Page: page, PageSize: pageSize}, nil
}

// Offset returns the number of leading rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of rows to fetch.
func (p Params) Limit() int {
	return p.PageSize
}

// TotalPages returns ceil(totalCount / pageSize). An empty result set still
// has one (empty) page, and pageSize is guarded so this never divides by
// zero even on unvalidated input.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalCount <= 0 {
		return 1
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// IsPageSizeErr reports whether err is the page_size range violation.
func IsPageSizeErr(err error) bool {
	return errors.Is(err, ErrPageSizeRange)
}
