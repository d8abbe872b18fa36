package pos

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
)

// CType is a conjugation type (活用型), stored as its canonical Japanese
// string (e.g. "五段・ラ行", "一段", "サ変・スル"). The dictionary's
// conjugation-type vocabulary is large and somewhat open-ended in practice;
// this implementation recognizes the closed set actually needed to drive
// the label generator's CType id and the chain-rule matching, and rejects
// anything else with a CTypeParseError rather than silently accepting
// unknown dictionary noise.
type CType struct {
	Raw string
}

// knownCTypes is the whitelist backing ParseCType. "*" denotes "no
// conjugation" (Kigou, most Meishi, ...).
var knownCTypes = map[string]bool{
	"*": true,
	"五段・カ行イ音便": true, "五段・ガ行": true, "五段・サ行": true, "五段・タ行": true,
	"五段・ナ行": true, "五段・バ行": true, "五段・マ行": true, "五段・ラ行": true,
	"五段・ラ行特殊": true, "五段・ワ行促音便": true, "五段・ワ行ウ音便": true,
	"一段": true, "一段・クレル": true,
	"カ変・クル": true, "カ変・来ル": true,
	"サ変・スル": true, "サ変・−スル": true,
	"形容詞・アウオ段": true, "形容詞・イ段": true,
	"文語・ナリ": true, "文語・キ": true, "文語・ゴトシ": true,
	"不変化型": true,
	"特殊・タ": true, "特殊・デス": true, "特殊・ダ": true, "特殊・マス": true,
	"特殊・ナイ": true, "特殊・ヌ": true, "特殊・ジャ": true,
}

// ParseCType validates and wraps a conjugation-type string.
func ParseCType(s string) (CType, error) {
	if s == "" {
		s = "*"
	}
	if !knownCTypes[s] {
		return CType{}, jperror.New(jperror.KindCTypeParse, s, nil)
	}
	return CType{Raw: s}, nil
}

func (c CType) String() string { return c.Raw }

// IsNone reports the "*" (no conjugation) CType.
func (c CType) IsNone() bool { return c.Raw == "" || c.Raw == "*" }

// ID returns the CType id used by the label generator's CType field,
// following the table fixed in SPEC_FULL.md. Returns (0, false) for "*";
// any other unrecognized string maps to 14.
func (c CType) ID() (int, bool) {
	switch {
	case c.IsNone():
		return 0, false
	case strings.Contains(c.Raw, "カ行"):
		return 1, true
	case strings.Contains(c.Raw, "ガ行"):
		return 2, true
	case strings.Contains(c.Raw, "サ行"):
		return 3, true
	case strings.Contains(c.Raw, "タ行"):
		return 4, true
	case strings.Contains(c.Raw, "ナ行"):
		return 5, true
	case strings.Contains(c.Raw, "バ行"):
		return 6, true
	case strings.Contains(c.Raw, "マ行"):
		return 7, true
	case strings.Contains(c.Raw, "ラ行"), strings.HasPrefix(c.Raw, "五段・ラ行"):
		return 8, true
	case strings.Contains(c.Raw, "ワ行"):
		return 9, true
	case strings.HasPrefix(c.Raw, "一段"):
		return 10, true
	case strings.HasPrefix(c.Raw, "サ変"):
		return 11, true
	case strings.HasPrefix(c.Raw, "カ変"):
		return 12, true
	case strings.HasPrefix(c.Raw, "形容詞"):
		return 13, true
	default:
		return 14, true
	}
}
