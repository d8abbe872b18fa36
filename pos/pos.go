// Package pos implements the POS/CType/CForm tagged variants and the
// ChainRules accent-inheritance rule language.
//
// POS sub-variants are represented the way the source dictionaries
// themselves represent them: a top-level Kind plus three further
// comma-separated Japanese-language columns (Sub1/Sub2/Sub3), mirroring
// the 4-column IPAdic-style POS scheme its canonical example
// ("名詞,固有名詞,人名,姓") is drawn from. Rewrite-pass logic never does ad
// hoc string comparison against those columns directly - it goes through
// named predicate methods (IsMeishiKoyuMeishiSei, IsMeishiFukushiKanou, ...) so the
// tagged variant is pattern-matched at the call site even though the
// underlying storage is the dictionary's own strings.
package pos

import "github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"

// Kind is the top-level POS tag.
type Kind int

const (
	Unknown Kind = iota
	Others
	Filler
	Kandoushi
	Kigou
	Keiyoushi
	Joshi
	Jodoushi
	Setsuzokushi
	Settoushi
	Doushi
	Fukushi
	Meishi
	Rentaishi
)

var kindToLabel = map[Kind]string{
	Unknown:      "未知語",
	Others:       "その他",
	Filler:       "フィラー",
	Kandoushi:    "感動詞",
	Kigou:        "記号",
	Keiyoushi:    "形容詞",
	Joshi:        "助詞",
	Jodoushi:     "助動詞",
	Setsuzokushi: "接続詞",
	Settoushi:    "接頭詞",
	Doushi:       "動詞",
	Fukushi:      "副詞",
	Meishi:       "名詞",
	Rentaishi:    "連体詞",
}

var labelToKind = reverseStrMap(kindToLabel)

func reverseStrMap(m map[Kind]string) map[string]Kind {
	out := make(map[string]Kind, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func (k Kind) String() string {
	if s, ok := kindToLabel[k]; ok {
		return s
	}
	return "未知語"
}

// POS is a parsed four-column POS tag. Sub1/Sub2/Sub3 hold "*" when the
// dictionary leaves a column unspecified, exactly as the source text does.
type POS struct {
	Kind Kind
	Sub1 string
	Sub2 string
	Sub3 string
}

// FromStrings parses the four comma-separated POS columns into a POS,
// returning a POSParseError if g0 is not a recognized top-level tag.
func FromStrings(g0, g1, g2, g3 string) (POS, error) {
	kind, ok := labelToKind[g0]
	if !ok {
		return POS{}, jperror.New(jperror.KindPOSParse, [2]string{"0", g0}, nil)
	}
	return POS{Kind: kind, Sub1: normalize(g1), Sub2: normalize(g2), Sub3: normalize(g3)}, nil
}

func normalize(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

// String reconstructs the canonical four-column form, satisfying
// FromStrings(p.String()).String() == p.String().
func (p POS) String() string {
	return p.Kind.String() + "," + p.Sub1 + "," + p.Sub2 + "," + p.Sub3
}

// Default returns the fallback POS used for unknown dictionary entries:
// Meishi(None) - i.e. 名詞,*,*,*.
func Default() POS {
	return POS{Kind: Meishi, Sub1: "*", Sub2: "*", Sub3: "*"}
}

// ---- Named sub-variant predicates, grounded in IPAdic-style columns ----

// IsJiritsu reports the "自立" (independent) sub-form, used by Doushi and
// Keiyoushi.
func (p POS) IsJiritsu() bool { return p.Sub1 == "自立" }

// IsHijiritsu reports the "非自立" (dependent) sub-form, used by Doushi and
// Keiyoushi.
func (p POS) IsHijiritsu() bool { return p.Sub1 == "非自立" }

// IsSetsubi reports the "接尾" (suffix) sub-form shared by Meishi, Keiyoushi
// and Doushi.
func (p POS) IsSetsubi() bool { return p.Sub1 == "接尾" }

// IsMeishiGeneral reports plain common-noun Meishi (普通名詞).
func (p POS) IsMeishiGeneral() bool { return p.Kind == Meishi && p.Sub1 == "一般" }

// IsMeishiSahenSetsuzoku reports Meishi with the サ変接続 sub-tag (a noun
// that can take する to form a verb).
func (p POS) IsMeishiSahenSetsuzoku() bool { return p.Kind == Meishi && p.Sub1 == "サ変接続" }

// IsMeishiDaimeishi reports Meishi(代名詞) - a pronoun.
func (p POS) IsMeishiDaimeishi() bool { return p.Kind == Meishi && p.Sub1 == "代名詞" }

// IsMeishiKazu reports Meishi(数) - a cardinal-number noun.
func (p POS) IsMeishiKazu() bool { return p.Kind == Meishi && p.Sub1 == "数" }

// IsMeishiFukushiKanou reports Meishi(副詞可能) - a noun usable adverbially.
func (p POS) IsMeishiFukushiKanou() bool { return p.Kind == Meishi && p.Sub1 == "副詞可能" }

// IsMeishiKeiyoudoushiGokan reports Meishi(形容動詞語幹) - the stem of a
// na-adjective.
func (p POS) IsMeishiKeiyoudoushiGokan() bool {
	return p.Kind == Meishi && p.Sub1 == "形容動詞語幹"
}

// IsMeishiSetsubiJosuushi reports Meishi(接尾,助数詞) - a numeral counter
// suffix (年, 人, 本, ...).
func (p POS) IsMeishiSetsubiJosuushi() bool {
	return p.Kind == Meishi && p.Sub1 == "接尾" && p.Sub2 == "助数詞"
}

// IsMeishiSetsubiKeiyoudoushiGokan reports the suffix-form na-adjective
// stem sub-tag.
func (p POS) IsMeishiSetsubiKeiyoudoushiGokan() bool {
	return p.Kind == Meishi && p.Sub1 == "接尾" && p.Sub2 == "形容動詞語幹"
}

// IsMeishiKoyuMeishi reports any Meishi(固有名詞,...) - a proper noun.
func (p POS) IsMeishiKoyuMeishi() bool { return p.Kind == Meishi && p.Sub1 == "固有名詞" }

// IsMeishiKoyuMeishiSei reports Meishi(固有名詞,人名,姓) - a surname.
func (p POS) IsMeishiKoyuMeishiSei() bool {
	return p.IsMeishiKoyuMeishi() && p.Sub2 == "人名" && p.Sub3 == "姓"
}

// IsMeishiKoyuMeishiMei reports Meishi(固有名詞,人名,名) - a given name.
func (p POS) IsMeishiKoyuMeishiMei() bool {
	return p.IsMeishiKoyuMeishi() && p.Sub2 == "人名" && p.Sub3 == "名"
}

// IsMeishiHijiritsu reports Meishi(非自立,...) - a dependent noun.
func (p POS) IsMeishiHijiritsu() bool { return p.Kind == Meishi && p.Sub1 == "非自立" }

// IsSettoushiSuuSetsuzoku reports Settoushi(数接続) - a prefix that attaches
// to a number (第, 約, ...).
func (p POS) IsSettoushiSuuSetsuzoku() bool { return p.Kind == Settoushi && p.Sub1 == "数接続" }

// Joshi sub-tags.
func (p POS) IsJoshiFukuJoshi() bool      { return p.Kind == Joshi && p.Sub1 == "副助詞" }
func (p POS) IsJoshiSetsuzokuJoshi() bool { return p.Kind == Joshi && p.Sub1 == "接続助詞" }
func (p POS) IsJoshiKakuJoshi() bool      { return p.Kind == Joshi && p.Sub1 == "格助詞" }
func (p POS) IsJoshiShuJoshi() bool       { return p.Kind == Joshi && p.Sub1 == "終助詞" }
func (p POS) IsJoshiKakariJoshi() bool    { return p.Kind == Joshi && p.Sub1 == "係助詞" }
