// Package catalog holds the immutable group → category → asset hierarchy
// browsed by rgal and the loader for its JSON wire format.
package catalog

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// AssetID identifies one image (a path or URL). It is opaque to everything
// except the filename helpers below.
type AssetID string

// Category is a named, ordered list of assets.
type Category struct {
	Name   string
	Assets []AssetID
}

// Group is a named, ordered list of categories. A group may have none.
type Group struct {
	Name       string
	Categories []Category
}

// Catalog is loaded once and never mutated afterwards.
type Catalog struct {
	Groups []Group
}

// Group returns the group at index g, or nil when out of range.
func (c *Catalog) Group(g int) *Group {
	if c == nil || g < 0 || g >= len(c.Groups) {
		return nil
	}
	return &c.Groups[g]
}

// Category returns the category at (g, cat), or nil when either index is out
// of range.
func (c *Catalog) Category(g, cat int) *Category {
	group := c.Group(g)
	if group == nil || cat < 0 || cat >= len(group.Categories) {
		return nil
	}
	return &group.Categories[cat]
}

// Assets returns the assets of (g, cat); an absent category yields nil.
func (c *Catalog) Assets(g, cat int) []AssetID {
	if category := c.Category(g, cat); category != nil {
		return category.Assets
	}
	return nil
}

// AssetCount is the number of assets across all groups.
func (c *Catalog) AssetCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, group := range c.Groups {
		for _, category := range group.Categories {
			n += len(category.Assets)
		}
	}
	return n
}

// Basename is the path segment after the last '/'.
func (id AssetID) Basename() string {
	s := string(id)
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// Stem is the basename with the extension after the last '.' removed. A name
// without a dot is returned whole.
func (id AssetID) Stem() string {
	base := id.Basename()
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		return base[:idx]
	}
	return base
}

// DecodedBasename percent-decodes the basename, falling back to the raw text.
func (id AssetID) DecodedBasename() string {
	decoded, _ := Unescape(id.Basename())
	return decoded
}

// DecodedStem percent-decodes the stem, falling back to the raw text.
func (id AssetID) DecodedStem() string {
	decoded, _ := Unescape(id.Stem())
	return decoded
}

// Unescape decodes %XX sequences. '+' is left alone. When the input holds a
// malformed escape, or decodes to invalid UTF-8, the raw input is returned
// together with false.
func Unescape(s string) (string, bool) {
	if !strings.ContainsRune(s, '%') {
		return s, true
	}
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s, false
	}
	return decoded, true
}
