package pos

import (
	"strconv"
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
)

// AccentType tags the accent-inheritance behavior a ChainRule segment
// selects when it matches. F-rules and C-rules are pitch-fall types that
// the accent-type pass combines with the node's own accent nucleus; P-rules
// are conditional on the phrase head's accent (P1/P2/P14 use the mora count
// plus the node's accent or fall back to 0 / the head's accent, P6 gives 0).
type AccentType int

const (
	AccentNone AccentType = iota
	F1
	F2
	F3
	F4
	F5
	C1
	C2
	C3
	C4
	C5
	P1
	P2
	P6
	P14
)

var accentTypeLabels = map[AccentType]string{
	AccentNone: "*",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5",
	C1: "C1", C2: "C2", C3: "C3", C4: "C4", C5: "C5",
	P1: "P1", P2: "P2", P6: "P6", P14: "P14",
}

var labelToAccentType = reverseAccentMap(accentTypeLabels)

func reverseAccentMap(m map[AccentType]string) map[string]AccentType {
	out := make(map[string]AccentType, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func (a AccentType) String() string {
	if s, ok := accentTypeLabels[a]; ok {
		return s
	}
	return "*"
}

// IsPinned reports whether a is one of the P-rules (P1, P2, P6, P14).
func (a AccentType) IsPinned() bool {
	return a == P1 || a == P2 || a == P6 || a == P14
}

// Rule is a single parsed segment of a ChainRules string: "<pos0>%<accent>@<add>".
// POS0 is the bare top-level POS tag (e.g. "名詞") this rule matches against
// the preceding node, "*" matching any POS0.
type Rule struct {
	POS0   string
	Accent AccentType
	Add    int
}

// Matches reports whether r applies to a preceding node whose top-level POS
// string is prevPOS0.
func (r Rule) Matches(prevPOS0 string) bool {
	return r.POS0 == "*" || r.POS0 == prevPOS0
}

// ChainRules is the ordered rule list parsed from a dictionary entry's
// accent-chaining column. Rules are tried in order; the first match wins.
type ChainRules []Rule

// ParseChainRules parses a "/"-separated list of "<pos0>%<accent>@<add>"
// segments. A bare "*" (no rules at all) yields an empty, always-non-matching
// ChainRules.
func ParseChainRules(s string) (ChainRules, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}
	segments := strings.Split(s, "/")
	rules := make(ChainRules, 0, len(segments))
	for _, seg := range segments {
		r, err := parseRuleSegment(seg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func parseRuleSegment(seg string) (Rule, error) {
	pctIdx := strings.IndexByte(seg, '%')
	atIdx := strings.IndexByte(seg, '@')
	if pctIdx < 0 || atIdx < 0 || atIdx < pctIdx {
		return Rule{}, jperror.New(jperror.KindPOSParse, seg, nil)
	}
	pos0 := seg[:pctIdx]
	accentStr := seg[pctIdx+1 : atIdx]
	addStr := seg[atIdx+1:]

	accent, ok := labelToAccentType[accentStr]
	if !ok {
		return Rule{}, jperror.New(jperror.KindPOSParse, seg, nil)
	}
	add, err := strconv.Atoi(addStr)
	if err != nil {
		return Rule{}, jperror.New(jperror.KindPOSParse, seg, err)
	}
	if pos0 == "" {
		pos0 = "*"
	}
	return Rule{POS0: pos0, Accent: accent, Add: add}, nil
}

// Match returns the first rule matching prevPOS0, if any.
func (c ChainRules) Match(prevPOS0 string) (Rule, bool) {
	for _, r := range c {
		if r.Matches(prevPOS0) {
			return r, true
		}
	}
	return Rule{}, false
}

// String reconstructs the "/"-joined dictionary form.
func (c ChainRules) String() string {
	if len(c) == 0 {
		return "*"
	}
	parts := make([]string, len(c))
	for i, r := range c {
		parts[i] = r.POS0 + "%" + r.Accent.String() + "@" + strconv.Itoa(r.Add)
	}
	return strings.Join(parts, "/")
}
