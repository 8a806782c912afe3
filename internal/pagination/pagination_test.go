package pagination

import (
	"errors"
	"strings"
	"testing"
)

func render(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 50, want: 1},
		{total: 1, size: 50, want: 1},
		{total: 50, size: 50, want: 1},
		{total: 51, size: 50, want: 2},
		{total: 2100, size: 50, want: 42},
		{total: 7, size: 0, want: 7},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestTokensWindow(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		current    int
		want       string
	}{
		{name: "single page", totalPages: 1, current: 1, want: "1"},
		{name: "full run at limit", totalPages: 7, current: 4, want: "1 2 3 4 5 6 7"},
		{name: "middle of 42", totalPages: 42, current: 9, want: "1 … 8 9 10 … 42"},
		{name: "first page", totalPages: 42, current: 1, want: "1 2 3 … 42"},
		{name: "third page", totalPages: 42, current: 3, want: "1 2 3 4 … 42"},
		{name: "fourth page", totalPages: 42, current: 4, want: "1 … 3 4 5 … 42"},
		{name: "last page", totalPages: 42, current: 42, want: "1 … 40 41 42"},
		{name: "third from last", totalPages: 42, current: 40, want: "1 … 39 40 41 42"},
		{name: "eight pages middle", totalPages: 8, current: 5, want: "1 … 4 5 6 … 8"},
		{name: "current out of range above", totalPages: 10, current: 15, want: "1 … 8 9 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := New(tt.totalPages*10, 10, tt.current)
			if got := render(plan.Tokens); got != tt.want {
				t.Fatalf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanExampleFortyTwoPages(t *testing.T) {
	plan := New(42*50, 50, 9)
	want := []Token{
		{Page: 1}, {Ellipsis: true}, {Page: 8}, {Page: 9}, {Page: 10}, {Ellipsis: true}, {Page: 42},
	}
	if plan.TotalPages != 42 {
		t.Fatalf("expected 42 pages, got %d", plan.TotalPages)
	}
	if len(plan.Tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", plan.Tokens, want)
	}
	for i := range want {
		if plan.Tokens[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, plan.Tokens[i], want[i])
		}
	}
}

func TestTokensProperties(t *testing.T) {
	for _, size := range []int{1, 3, 50} {
		for total := 0; total <= 400; total += 7 {
			totalPages := TotalPages(total, size)
			for current := 1; current <= totalPages; current++ {
				plan := New(total, size, current)
				if plan.TotalPages != totalPages {
					t.Fatalf("TotalPages mismatch for %d/%d", total, size)
				}
				last := 0
				prevEllipsis := false
				var pages []int
				for _, tok := range plan.Tokens {
					if tok.Ellipsis {
						if prevEllipsis {
							t.Fatalf("adjacent ellipses for total=%d size=%d current=%d", total, size, current)
						}
						prevEllipsis = true
						continue
					}
					prevEllipsis = false
					if tok.Page <= last {
						t.Fatalf("pages not strictly increasing: %s", render(plan.Tokens))
					}
					last = tok.Page
					pages = append(pages, tok.Page)
				}
				if pages[0] != 1 || pages[len(pages)-1] != totalPages {
					t.Fatalf("window must start at 1 and end at %d: %s", totalPages, render(plan.Tokens))
				}
				if totalPages <= 7 && len(pages) != len(plan.Tokens) {
					t.Fatalf("short runs must not contain ellipses: %s", render(plan.Tokens))
				}
			}
		}
	}
}

func TestTokenForCurrentPageAlwaysPresent(t *testing.T) {
	for current := 1; current <= 42; current++ {
		plan := New(42, 1, current)
		found := false
		for _, tok := range plan.Tokens {
			if !tok.Ellipsis && tok.Page == current {
				found = true
			}
		}
		if !found {
			t.Fatalf("current page %d missing from %s", current, render(plan.Tokens))
		}
	}
}

func TestVisible(t *testing.T) {
	if Visible(50, 50) {
		t.Fatal("selector must be hidden when items fit on one page")
	}
	if !Visible(51, 50) {
		t.Fatal("selector must be shown for a second page")
	}
}

func TestPlanHelpers(t *testing.T) {
	plan := New(120, 50, 1)
	if plan.HasPrev() || !plan.HasNext() {
		t.Fatalf("unexpected prev/next on first page: %+v", plan)
	}
	if plan.Prev() != 1 || plan.Next() != 2 {
		t.Fatalf("Prev/Next on first page = %d/%d", plan.Prev(), plan.Next())
	}
	if last := New(120, 50, 3); last.Next() != 3 || last.Prev() != 2 {
		t.Fatalf("Prev/Next on last page = %d/%d", last.Prev(), last.Next())
	}
	if plan.ShowJump() {
		t.Fatal("jump input is only offered beyond 7 pages")
	}
	if got := plan.Clamp(0); got != 1 {
		t.Fatalf("Clamp(0) = %d", got)
	}
	if got := plan.Clamp(9); got != 3 {
		t.Fatalf("Clamp(9) = %d", got)
	}
	start, end := plan.Bounds(3)
	if start != 100 || end != 120 {
		t.Fatalf("Bounds(3) = %d,%d", start, end)
	}
	if !New(401, 50, 9).ShowJump() {
		t.Fatal("expected jump input for 9 pages")
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "3", want: 3, ok: true},
		{input: " 42 ", want: 42, ok: true},
		{input: "1", want: 1, ok: true},
		{input: "0", ok: false},
		{input: "43", ok: false},
		{input: "-2", ok: false},
		{input: "abc", ok: false},
		{input: "", ok: false},
		{input: "4.5", ok: false},
	}
	for _, tt := range tests {
		got, err := ParsePage(tt.input, 42)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParsePage(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("ParsePage(%q) error = %v, want ErrInvalidPage", tt.input, err)
		}
	}
}
