package pagination_test

import (
	"testing"

	"github.com/merchstore/merchstore/pkg/pagination"
)

func TestNormalizeDefaults(t *testing.T) {
	p, err := pagination.Normalize(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PageSize != pagination.DefaultPageSize {
		t.Errorf("expected page_size %d, got %d", pagination.DefaultPageSize, p.PageSize)
	}
}

func TestNormalizeClampsNegativePage(t *testing.T) {
	p, err := pagination.Normalize(-5, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", p.Page)
	}
	if p.PageSize != 20 {
		t.Errorf("expected page_size 20, got %d", p.PageSize)
	}
}

func TestNormalizeRejectsPageSizeOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 101, 1000} {
		if _, err := pagination.Normalize(1, size); !pagination.IsPageSizeErr(err) {
			t.Errorf("page_size %d: expected range error, got %v", size, err)
		}
	}

	// Boundaries are inclusive.
	for _, size := range []int{1, 100} {
		if _, err := pagination.Normalize(1, size); err != nil {
			t.Errorf("page_size %d: unexpected error: %v", size, err)
		}
	}
}

func TestOffsetAndLimit(t *testing.T) {
	p := pagination.Params{Page: 3, PageSize: 25}
	if got := p.Offset(); got != 50 {
		t.Errorf("expected offset 50, got %d", got)
	}
	if got := p.Limit(); got != 25 {
		t.Errorf("expected limit 25, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 1},  // empty set still has one page
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 1},   // guarded against bad page size
	}

	for _, c := range cases {
		if got := pagination.TotalPages(c.total, c.pageSize); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}
