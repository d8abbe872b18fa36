package pos

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
)

// CForm is a conjugation form (活用形), stored as its canonical Japanese
// string (e.g. "基本形", "連用タ接続"). Like CType, the whitelist covers the
// closed set the rewrite passes and label generator actually branch on.
type CForm struct {
	Raw string
}

var knownCForms = map[string]bool{
	"*": true,
	"未然形": true, "未然ウ接続": true,
	"連用形": true, "連用タ接続": true, "連用テ接続": true, "連用ゴザイ接続": true,
	"終止形": true,
	"連体形": true,
	"仮定形": true, "仮定縮約１": true,
	"命令ｅ": true, "命令ｉ": true, "命令ｙｏ": true,
	"基本形": true,
	"体言接続": true, "体言接続特殊": true,
	"ガル接続": true,
}

// ParseCForm validates and wraps a conjugation-form string.
func ParseCForm(s string) (CForm, error) {
	if s == "" {
		s = "*"
	}
	if !knownCForms[s] {
		return CForm{}, jperror.New(jperror.KindCFormParse, s, nil)
	}
	return CForm{Raw: s}, nil
}

func (c CForm) String() string { return c.Raw }

// IsNone reports the "*" (no conjugation form) CForm.
func (c CForm) IsNone() bool { return c.Raw == "" || c.Raw == "*" }

// IsRenyou reports any of the 連用 (ren'youkei / continuative) sub-forms.
func (c CForm) IsRenyou() bool { return strings.HasPrefix(c.Raw, "連用") }

// IsShuushi reports 終止形 (the plain/dictionary predicate form).
func (c CForm) IsShuushi() bool { return c.Raw == "終止形" }

// IsTaigenSetsuzoku reports 体言接続 or 体言接続特殊 - forms that attach
// directly to a following noun.
func (c CForm) IsTaigenSetsuzoku() bool { return strings.HasPrefix(c.Raw, "体言接続") }

// IsMeireikei reports any of the 命令 (imperative) sub-forms.
func (c CForm) IsMeireikei() bool { return strings.HasPrefix(c.Raw, "命令") }

// ID returns the CForm id used by the label generator's CForm field,
// following the table fixed in SPEC_FULL.md. Returns (0, false) for "*";
// ガル接続 and any other unrecognized string map to 9.
func (c CForm) ID() (int, bool) {
	switch {
	case c.IsNone():
		return 0, false
	case strings.HasPrefix(c.Raw, "未然"):
		return 1, true
	case c.IsRenyou():
		return 2, true
	case c.IsShuushi():
		return 3, true
	case c.Raw == "連体形":
		return 4, true
	case strings.HasPrefix(c.Raw, "仮定"):
		return 5, true
	case c.IsMeireikei():
		return 6, true
	case c.Raw == "基本形":
		return 7, true
	case c.IsTaigenSetsuzoku():
		return 8, true
	case c.Raw == "ガル接続":
		return 9, true
	default:
		return 9, true
	}
}
