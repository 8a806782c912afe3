// Package decode turns opaque asset filenames into a human-readable label and
// the value copied to the clipboard.
//
// Naming conventions are expressed as an ordered table of rules. The first
// rule that accepts the percent-decoded stem wins; when none does, the
// uppercased stem serves as both label and value.
package decode

import (
	"strings"

	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/textutil"
)

// Decoded is the derived presentation of an asset name.
type Decoded struct {
	DisplayLabel string
	CopyValue    string
}

// Rule recognises one naming convention. Apply reports false when the stem
// does not follow the convention.
type Rule struct {
	Name  string
	Apply func(stem string) (Decoded, bool)
}

// DefaultRules is the arrow rule followed by the hex color rule.
var DefaultRules = []Rule{ArrowRule, HexColorRule}

// Decoder applies a rule table. The zero value uses DefaultRules.
type Decoder struct {
	rules []Rule
}

// New returns a decoder trying rules in order. With no rules it uses
// DefaultRules.
func New(rules ...Rule) *Decoder {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Decoder{rules: rules}
}

var defaultDecoder = New()

// Decode decodes id with DefaultRules.
func Decode(id catalog.AssetID) Decoded {
	return defaultDecoder.Decode(id)
}

// Decode never fails: malformed percent-encoding degrades to the raw stem.
func (d *Decoder) Decode(id catalog.AssetID) Decoded {
	return d.DecodeStem(id.DecodedStem())
}

// DecodeStem runs the rule table over an already decoded stem.
func (d *Decoder) DecodeStem(stem string) Decoded {
	if stem == "" {
		return Decoded{}
	}
	rules := DefaultRules
	if d != nil && d.rules != nil {
		rules = d.rules
	}
	for _, rule := range rules {
		if rule.Apply == nil {
			continue
		}
		if decoded, ok := rule.Apply(stem); ok {
			return decoded
		}
	}
	upper := textutil.Upper(stem)
	return Decoded{DisplayLabel: upper, CopyValue: upper}
}

const arrow = "→"

// ArrowRule handles "From→To" names: the label spells the mapping out in
// upper case, the copy value is the left-hand side.
var ArrowRule = Rule{
	Name: "arrow",
	Apply: func(stem string) (Decoded, bool) {
		if !strings.Contains(stem, arrow) {
			return Decoded{}, false
		}
		label := textutil.Upper(strings.TrimSpace(strings.ReplaceAll(stem, arrow, " "+arrow+" ")))
		value, _, _ := strings.Cut(label, arrow)
		return Decoded{DisplayLabel: label, CopyValue: strings.TrimSpace(value)}, true
	},
}
