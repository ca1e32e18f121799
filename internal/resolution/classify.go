package resolution

import (
	"strings"
	"unicode"
)

// ClassifyShape buckets a nominal layout name into the shape taxonomy. The
// name is lowercased, the literal substring "layout" and all non-alphanumeric
// characters are stripped, and the result is tested for exact membership
// against the shape rule sets in priority order. No match yields ShapeUnknown.
func ClassifyShape(layoutName string) ShapeTag {
	key := normalizeShapeKey(layoutName)
	for _, rule := range shapeRules {
		if _, ok := rule.keys[key]; ok {
			return rule.tag
		}
	}
	return ShapeUnknown
}

// PieceCount parses the panel count from a nominal layout name. After
// lowercasing and stripping the substring "layout", a leading decimal digit is
// the count. Names without a leading digit describe single-panel products.
// Out-of-catalog digits are passed through unclamped.
func PieceCount(layoutName string) int {
	s := strings.ToLower(layoutName)
	s = strings.ReplaceAll(s, "layout", "")
	s = strings.TrimSpace(s)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 1
}

// ClassifyFormatType maps a variant's short format label to its format type.
// The seven "N Piece" labels are all canvas products; the named formats map to
// their own type; anything else, including an empty label, is FormatUnknown.
func ClassifyFormatType(shortLabel string) FormatType {
	for _, rule := range formatRules {
		if _, ok := rule.keys[shortLabel]; ok {
			return rule.tag
		}
	}
	return FormatUnknown
}

func normalizeShapeKey(layoutName string) string {
	s := strings.ToLower(layoutName)
	s = strings.ReplaceAll(s, "layout", "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
