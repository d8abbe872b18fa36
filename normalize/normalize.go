// Package normalize implements the input-contract pre-pass: it
// maps half-width ASCII to full-width (with the documented punctuation
// exceptions), half-width katakana to full-width, and applies combining
// voiced/semi-voiced marks to the kana they follow. It runs before
// tokenization and never fails: anything outside its known domain (Latin
// text, already-normalized kana, emoji, ...) passes through unchanged.
package normalize

import (
	"github.com/rivo/uniseg"
)

// combining marks recognized as voiced/semi-voiced diacritics:
// U+3099/U+309B are voiced (dakuten), U+309A/U+309C are semi-voiced
// (handakuten), and their half-width JIS X 0201 counterparts U+FF9E/U+FF9F.
const (
	markVoicedCombining     = 0x3099
	markSemivoicedCombining = 0x309A
	markVoicedSpacing       = 0x309B
	markSemivoicedSpacing   = 0x309C
	markVoicedHalfwidth     = 0xFF9E
	markSemivoicedHalfwidth = 0xFF9F
)

func isVoicedMark(r rune) bool {
	return r == markVoicedCombining || r == markVoicedSpacing || r == markVoicedHalfwidth
}

func isSemivoicedMark(r rune) bool {
	return r == markSemivoicedCombining || r == markSemivoicedSpacing || r == markSemivoicedHalfwidth
}

func isMark(r rune) bool {
	return isVoicedMark(r) || isSemivoicedMark(r)
}

// Normalize applies the input-contract transforms to s, scanning grapheme
// clusters rather than raw runes so a combining mark already joined to its
// base by Unicode (U+3099/U+309A) is resolved against the correct kana
// even when the base itself needed half-width-to-full-width conversion.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Runes()
		switch {
		case len(cluster) >= 2 && isMark(cluster[len(cluster)-1]):
			out = append(out, mapRune(cluster[0]))
			applyMark(out, len(out)-1, cluster[len(cluster)-1])
		case len(cluster) == 1 && isMark(cluster[0]):
			// A spacing diacritic (U+309B/U+309C), or a mark with no base
			// before it, forms its own grapheme cluster; apply it against
			// whatever kana precedes it.
			if len(out) > 0 {
				applyMark(out, len(out)-1, cluster[0])
			}
		case len(cluster) == 1:
			out = append(out, mapRune(cluster[0]))
		default:
			out = append(out, cluster...)
		}
	}
	return string(out)
}

func applyMark(out []rune, idx int, mark rune) {
	base := out[idx]
	if isVoicedMark(mark) {
		if v, ok := voicedRuneMap[base]; ok {
			out[idx] = v
		}
		return
	}
	if v, ok := semivoicedRuneMap[base]; ok {
		out[idx] = v
	}
}

func mapRune(r rune) rune {
	if fw, ok := halfwidthKatakana[r]; ok {
		return fw
	}
	return mapASCII(r)
}

// mapASCII implements the half-to-full-width ASCII offset (+U+FEE0) with
// the documented exceptions: space, backslash/yen, hyphen-minus, and tilde
// render as their conventional Japanese typesetting counterparts rather
// than their generic full-width forms.
func mapASCII(r rune) rune {
	switch r {
	case ' ':
		return '　'
	case '\\', '¥':
		return '￥'
	case '-':
		return '−'
	case '~':
		return '〜'
	}
	if r >= 0x21 && r <= 0x7E {
		return r + 0xFEE0
	}
	return r
}
