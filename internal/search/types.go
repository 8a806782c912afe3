package search

import "fmt"

// Scope selects which assets a search considers.
type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopeCategory Scope = "category"
)

// ParseScope accepts "global" or "category".
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeGlobal, ScopeCategory:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown search scope %q (want %q or %q)", s, ScopeGlobal, ScopeCategory)
}

// Toggle returns the other scope.
func (s Scope) Toggle() Scope {
	if s == ScopeCategory {
		return ScopeGlobal
	}
	return ScopeCategory
}

// Selection is the group/category a category-scoped search is limited to.
type Selection struct {
	Group    int
	Category int
}
