package decode

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kk-code-lab/rgal/internal/textutil"
)

// Six digits are tried before three at each position.
var hexColorPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)

// HexColorRule handles names carrying a "#RGB" or "#RRGGBB" token, such as
// "Sakura-さくら-#FFB7C5". The copy value is the token; the label is the
// leading Latin name, upper-cased like every other label, followed by the
// token.
var HexColorRule = Rule{
	Name: "hex-color",
	Apply: func(stem string) (Decoded, bool) {
		loc := hexColorPattern.FindStringIndex(stem)
		if loc == nil {
			return Decoded{}, false
		}
		value := strings.ToUpper(stem[loc[0]:loc[1]])
		name := textutil.Upper(leadingName(stem[:loc[0]]))
		if name == "" {
			return Decoded{DisplayLabel: value, CopyValue: value}, true
		}
		return Decoded{DisplayLabel: name + " " + value, CopyValue: value}, true
	},
}

// leadingName drops a trailing "-<kana>" transliteration and a dangling
// hyphen, then keeps the text before the first remaining hyphen.
func leadingName(prefix string) string {
	name := strings.TrimSpace(prefix)
	name = trimKanaSuffix(name)
	if r, size := utf8.DecodeLastRuneInString(name); isHyphen(r) {
		name = name[:len(name)-size]
	}
	name, _, _ = strings.Cut(name, "-")
	return strings.TrimSpace(name)
}

// trimKanaSuffix cuts at the last hyphen when everything after it is kana or
// whitespace. Earlier hyphens can never qualify because a later hyphen is
// neither.
func trimKanaSuffix(s string) string {
	cut := strings.LastIndexFunc(s, isHyphen)
	if cut < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[cut:])
	for _, r := range s[cut+size:] {
		if !isKana(r) && !unicode.IsSpace(r) {
			return s
		}
	}
	return s[:cut]
}

func isHyphen(r rune) bool {
	return r == '-' || r == '‐'
}

// isKana covers the Hiragana and Katakana blocks, including the prolonged
// sound mark and middle dot that unicode.Katakana leaves out.
func isKana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}

// Color reports whether CopyValue is a hex color and returns it in #RRGGBB
// form.
func (d Decoded) Color() (string, bool) {
	v := d.CopyValue
	if len(v) != 4 && len(v) != 7 {
		return "", false
	}
	if v[0] != '#' || !isHexDigits(v[1:]) {
		return "", false
	}
	v = strings.ToUpper(v)
	if len(v) == 7 {
		return v, true
	}
	return string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]}), true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
