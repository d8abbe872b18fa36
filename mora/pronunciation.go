package mora

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
)

// unvoicedQuotationMark (U+2019, RIGHT SINGLE QUOTATION MARK) follows a
// mora span in the pronunciation dictionary's own serialization to mark it
// devoiced.
const unvoicedQuotationMark = "’"

// Mora is one entry in a Pronunciation: a MoraEnum plus its voicing state.
type Mora struct {
	Enum     MoraEnum
	IsVoiced bool
}

// Phoneme returns the (Consonant, Vowel) pair for this mora, applying
// devoicing if IsVoiced is false.
func (m Mora) Phoneme() Phoneme {
	return m.Enum.Phoneme(m.IsVoiced)
}

// Pronunciation is an ordered sequence of Mora.
type Pronunciation []Mora

// MoraSize counts only real moras, excluding the Touten/Question sentinels.
func (p Pronunciation) MoraSize() int {
	n := 0
	for _, m := range p {
		if !m.Enum.IsSentinel() {
			n++
		}
	}
	return n
}

// IsTouten reports whether p is the single-mora Touten sentinel.
func (p Pronunciation) IsTouten() bool {
	return len(p) == 1 && p[0].Enum == Touten
}

// IsQuestion reports whether p is the single-mora Question sentinel.
func (p Pronunciation) IsQuestion() bool {
	return len(p) == 1 && p[0].Enum == Question
}

// Parse parses a katakana/hiragana/halfwidth-alphabet string (optionally
// containing the unvoiced-quotation marker) into a Pronunciation via
// leftmost-longest matching over the static mora dictionary.
//
// Special cases: "*" parses to an empty Pronunciation; an
// input from which nothing at all could be matched parses to a single
// Question mora if the input is exactly "？", to a single Touten mora if
// the input is any other non-empty string, and to an empty Pronunciation
// if the input is empty.
func Parse(s string) (Pronunciation, error) {
	if s == "*" {
		return Pronunciation{}, nil
	}

	var result Pronunciation
	idx := 0
	for idx < len(s) {
		text, enums, ok := matchLongest(s[idx:])
		if !ok {
			if idx == 0 {
				return emptyResultFallback(s), nil
			}
			return nil, jperror.New(jperror.KindPronunciationParse, s[idx:], nil)
		}

		consumed := len(text)
		voiced := true
		if strings.HasPrefix(s[idx+consumed:], unvoicedQuotationMark) {
			voiced = false
			consumed += len(unvoicedQuotationMark)
		}
		for _, e := range enums {
			result = append(result, Mora{Enum: e, IsVoiced: voiced})
		}
		idx += consumed
	}
	return result, nil
}

func emptyResultFallback(s string) Pronunciation {
	switch {
	case s == "？":
		return Pronunciation{{Enum: Question, IsVoiced: true}}
	case s != "":
		return Pronunciation{{Enum: Touten, IsVoiced: true}}
	default:
		return Pronunciation{}
	}
}

func matchLongest(s string) (string, []MoraEnum, bool) {
	for _, p := range allPatterns {
		if strings.HasPrefix(s, p.Text) {
			return p.Text, p.Morae, true
		}
	}
	return "", nil, false
}

// FromMorasWithSize reconstructs a Pronunciation from an explicit slice of
// Mora, asserting that its MoraSize equals expected. This mirrors the
// import path where a dictionary-provided mora count must match the parsed
// pronunciation.
func FromMorasWithSize(moras []Mora, expected int) (Pronunciation, error) {
	p := Pronunciation(moras)
	if actual := p.MoraSize(); actual != expected {
		return nil, jperror.New(jperror.KindMoraSizeMismatch, [2]int{expected, actual}, nil)
	}
	return p, nil
}

// ToPureString renders the Pronunciation to its pure-katakana spelling,
// without any unvoiced-quotation markers.
func (p Pronunciation) ToPureString() string {
	var b strings.Builder
	for _, m := range p {
		b.WriteString(kanaSpellingOf(m.Enum))
	}
	return b.String()
}

// String renders the full pronunciation, emitting the unvoiced-quotation
// marker after every unvoiced mora. Pronunciation.Parse(p.String()) == p
// for any p this package itself produces (round-trip invariant).
func (p Pronunciation) String() string {
	var b strings.Builder
	for _, m := range p {
		b.WriteString(kanaSpellingOf(m.Enum))
		if !m.IsVoiced {
			b.WriteString(unvoicedQuotationMark)
		}
	}
	return b.String()
}

var kanaSpellingByEnum = buildKanaSpellingIndex()

func buildKanaSpellingIndex() map[MoraEnum]string {
	idx := make(map[MoraEnum]string)
	for _, s := range moraSpellings {
		idx[s.Enum] = s.Kana
	}
	for _, s := range irregularSpellings {
		idx[s.Enum] = s.Kana
	}
	idx[Touten] = "、"
	idx[Question] = "？"
	return idx
}

func kanaSpellingOf(e MoraEnum) string {
	return kanaSpellingByEnum[e]
}
