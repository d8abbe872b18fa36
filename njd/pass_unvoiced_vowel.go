package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

// moraState is one entry of the flat mora-state list the unvoiced-vowel pass
// scans over: a mora plus the context needed to decide its
// voicing without re-deriving it from the owning node each time.
type moraState struct {
	node     *Node
	moraIdx  int
	pos      pos.POS
	moraEnum mora.MoraEnum
	isVoiced *bool
	midx     int
	atype    int
}

// ApplyUnvoicedVowelPass marks devoiced moras across the whole NJD by
// look-ahead rules, then writes the resolved voicing flags back onto each
// node's Pronunciation.
func ApplyUnvoicedVowelPass(njd *NJD) error {
	states := buildMoraStates(njd.Nodes)
	processMoraStates(states)
	writeBackVoicing(states)
	return nil
}

func buildMoraStates(nodes []*Node) []*moraState {
	var states []*moraState
	midx := 0
	for i, n := range nodes {
		if i == 0 || n.ChainFlag == nil || !*n.ChainFlag {
			midx = 0
		}
		atype := effectiveAccent(nodes, i)
		for mi := range n.Pron {
			m := n.Pron[mi]
			var iv *bool
			if !m.IsVoiced {
				iv = boolPtr(false)
			}
			states = append(states, &moraState{
				node: n, moraIdx: mi, pos: n.POS, moraEnum: m.Enum, isVoiced: iv, midx: midx, atype: atype,
			})
			if !m.Enum.IsSentinel() {
				midx++
			}
		}
	}
	return states
}

// effectiveAccent returns the accent nucleus of the accent phrase node i
// belongs to: the head of the chain (the nearest node at or before i whose
// ChainFlag is not true).
func effectiveAccent(nodes []*Node, i int) int {
	head := i
	for head > 0 && nodes[head].ChainFlag != nil && *nodes[head].ChainFlag {
		head--
	}
	return nodes[head].Acc()
}

func processMoraStates(states []*moraState) {
	for i := range states {
		curr := states[i]
		var next, next2 *moraState
		if i+1 < len(states) {
			next = states[i+1]
		}
		if i+2 < len(states) {
			next2 = states[i+2]
		}

		applyMasuDesuLookahead(curr, next, next2)
		applyShiLookahead(curr, next, next2)

		if curr.isVoiced == nil {
			applyMainRule(curr, next)
		}

		if curr.isVoiced != nil && !*curr.isVoiced && next != nil && next.isVoiced == nil {
			next.isVoiced = boolPtr(true)
		}
	}
}

func applyMasuDesuLookahead(curr, next, next2 *moraState) {
	if curr == nil || next == nil || next2 == nil {
		return
	}
	if curr.node != next.node || next.node == next2.node {
		return
	}
	if !isDoushiJodoushiKandoushi(next.pos) {
		return
	}
	pair := [2]mora.MoraEnum{curr.moraEnum, next.moraEnum}
	if pair != [2]mora.MoraEnum{mora.Ma, mora.Su} && pair != [2]mora.MoraEnum{mora.De, mora.Su} {
		return
	}
	voiced := next2.moraEnum == mora.Question || next2.moraEnum == mora.Long
	next.isVoiced = boolPtr(voiced)
}

func isDoushiJodoushiKandoushi(p pos.POS) bool {
	return p.Kind == pos.Doushi || p.Kind == pos.Jodoushi || p.Kind == pos.Kandoushi
}

func applyShiLookahead(curr, next, next2 *moraState) {
	if curr == nil || next == nil || next2 == nil {
		return
	}
	if !(curr.isVoiced == nil || (curr.isVoiced != nil && *curr.isVoiced)) {
		return
	}
	if next.isVoiced != nil {
		return
	}
	if !(next2.isVoiced == nil || (next2.isVoiced != nil && *next2.isVoiced)) {
		return
	}
	if !(next.pos.Kind == pos.Doushi || next.pos.Kind == pos.Jodoushi || next.pos.Kind == pos.Joshi) {
		return
	}
	if next.moraEnum != mora.Shi {
		return
	}

	if next.atype == next.midx+1 {
		next.isVoiced = boolPtr(true)
	} else {
		applyDevoicingRule(next, next2)
	}

	if next.isVoiced != nil && !*next.isVoiced {
		if curr.isVoiced == nil {
			curr.isVoiced = boolPtr(true)
		}
		if next2.isVoiced == nil {
			next2.isVoiced = boolPtr(true)
		}
	}
}

func applyMainRule(curr, next *moraState) {
	switch {
	case curr.pos.Kind == pos.Filler:
		curr.isVoiced = boolPtr(true)
	case next != nil && next.isVoiced != nil && !*next.isVoiced:
		curr.isVoiced = boolPtr(true)
	case curr.atype == curr.midx+1:
		curr.isVoiced = boolPtr(true)
	default:
		applyDevoicingRule(curr, next)
	}
}

var unvoicedConsonantSet = map[mora.Consonant]bool{
	mora.ConsK: true, mora.ConsKy: true,
	mora.ConsS: true, mora.ConsSh: true,
	mora.ConsT: true, mora.ConsTy: true, mora.ConsCh: true, mora.ConsTs: true,
	mora.ConsH: true, mora.ConsF: true, mora.ConsHy: true,
	mora.ConsP: true, mora.ConsPy: true,
}

// applyDevoicingRule implements the devoicing rule: curr is marked
// unvoiced only when both curr's and next's consonants are unvoiced and
// they do not both fall in the S-family, nor both in the H/F-family.
func applyDevoicingRule(curr, next *moraState) {
	currPhoneme := curr.moraEnum.Phoneme(true)
	if !currPhoneme.Vowel.IsDevoicingEligible() {
		return
	}
	if next == nil {
		curr.isVoiced = boolPtr(true)
		return
	}
	nextPhoneme := next.moraEnum.Phoneme(true)

	if isSFamily(currPhoneme.Consonant) && isSFamily(nextPhoneme.Consonant) {
		curr.isVoiced = boolPtr(true)
		return
	}
	if isHFFamily(currPhoneme.Consonant) && isHFFamily(nextPhoneme.Consonant) {
		curr.isVoiced = boolPtr(true)
		return
	}
	if unvoicedConsonantSet[currPhoneme.Consonant] && unvoicedConsonantSet[nextPhoneme.Consonant] {
		curr.isVoiced = boolPtr(false)
		return
	}
	curr.isVoiced = boolPtr(true)
}

func isSFamily(c mora.Consonant) bool { return c == mora.ConsS || c == mora.ConsSh }
func isHFFamily(c mora.Consonant) bool {
	return c == mora.ConsF || c == mora.ConsH || c == mora.ConsHy
}

func writeBackVoicing(states []*moraState) {
	for _, st := range states {
		if st.isVoiced == nil {
			continue
		}
		st.node.Pron[st.moraIdx].IsVoiced = *st.isVoiced
	}
}
