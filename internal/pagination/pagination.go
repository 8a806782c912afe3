// Package pagination plans the condensed page selector shown under the
// gallery: page numbers around the current page, the first and last page,
// and ellipsis markers for the gaps.
package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidPage is returned when a requested page is not a number in
// [1, TotalPages].
var ErrInvalidPage = errors.New("invalid page")

// fullWindowLimit is the largest page count rendered without ellipses.
const fullWindowLimit = 7

// Token is one entry of the page selector: a page number or an ellipsis.
type Token struct {
	Page     int
	Ellipsis bool
}

// String renders a token the way the selector shows it.
func (t Token) String() string {
	if t.Ellipsis {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// Plan describes the pages of a result set. CurrentPage is reported as
// given; the planner never renumbers it.
type Plan struct {
	TotalItems  int
	PageSize    int
	TotalPages  int
	CurrentPage int
	Tokens      []Token
}

// TotalPages is max(1, ceil(total/pageSize)). A non-positive page size is
// treated as one item per page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Visible reports whether a page selector is shown at all: not when every
// item fits on one page.
func Visible(total, pageSize int) bool {
	return total > pageSize
}

// New plans the selector for current within a result set of total items.
func New(total, pageSize, current int) Plan {
	totalPages := TotalPages(total, pageSize)
	return Plan{
		TotalItems:  total,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		CurrentPage: current,
		Tokens:      tokens(totalPages, current),
	}
}

func tokens(totalPages, current int) []Token {
	if totalPages <= fullWindowLimit {
		out := make([]Token, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			out = append(out, Token{Page: p})
		}
		return out
	}

	candidates := map[int]struct{}{
		1:           {},
		totalPages:  {},
		current - 1: {},
		current:     {},
		current + 1: {},
	}
	if current <= 3 {
		candidates[2] = struct{}{}
		candidates[3] = struct{}{}
	}
	if current >= totalPages-2 {
		candidates[totalPages-1] = struct{}{}
		candidates[totalPages-2] = struct{}{}
	}

	pages := make([]int, 0, len(candidates))
	for p := range candidates {
		if p >= 1 && p <= totalPages {
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)

	out := make([]Token, 0, len(pages)+2)
	last := 0
	for _, p := range pages {
		if p > last+1 {
			out = append(out, Token{Ellipsis: true})
		}
		out = append(out, Token{Page: p})
		last = p
	}
	return out
}

// Clamp moves p into [1, TotalPages].
func (p Plan) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if page > p.TotalPages {
		return p.TotalPages
	}
	return page
}

// Contains reports whether page is a valid page of the plan.
func (p Plan) Contains(page int) bool {
	return page >= 1 && page <= p.TotalPages
}

// HasPrev reports whether a previous page exists.
func (p Plan) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p Plan) HasNext() bool { return p.CurrentPage < p.TotalPages }

// Prev returns the previous page, or the current one on the first page.
func (p Plan) Prev() int {
	if !p.HasPrev() {
		return p.CurrentPage
	}
	return p.CurrentPage - 1
}

// Next returns the next page, or the current one on the last page.
func (p Plan) Next() int {
	if !p.HasNext() {
		return p.CurrentPage
	}
	return p.CurrentPage + 1
}

// ShowJump reports whether the free-form page input is offered.
func (p Plan) ShowJump() bool { return p.TotalPages > fullWindowLimit }

// Bounds returns the half-open item range [start, end) of page.
func (p Plan) Bounds(page int) (int, int) {
	size := p.PageSize
	if size < 1 {
		size = 1
	}
	start := (page - 1) * size
	if start < 0 {
		start = 0
	}
	if start > p.TotalItems {
		start = p.TotalItems
	}
	end := start + size
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}

// ParsePage validates free-form jump input against totalPages.
func ParsePage(input string, totalPages int) (int, error) {
	trimmed := strings.TrimSpace(input)
	page, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPage, input)
	}
	if err := CheckPage(page, totalPages); err != nil {
		return 0, err
	}
	return page, nil
}

// CheckPage returns ErrInvalidPage unless page is within [1, totalPages].
func CheckPage(page, totalPages int) error {
	if page < 1 || page > totalPages {
		return fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidPage, page, totalPages)
	}
	return nil
}
