package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
)

// digitNormalization is Step A's surface->canonical-digit-kanji table
// (SPEC_FULL.md §4 EXPANSION).
var digitNormalization = map[string]string{
	"０": "〇", "１": "一", "２": "二", "３": "三", "４": "四",
	"５": "五", "６": "六", "７": "七", "８": "八", "９": "九",
	"ぜろ": "〇", "れい": "〇",
	"いち": "一",
	"に":  "二",
	"さん": "三",
	"よん": "四", "し": "四",
	"ご": "五",
	"ろく": "六",
	"なな": "七", "しち": "七",
	"はち": "八",
	"きゅう": "九", "く": "九",
	"壱": "一", "弐": "二", "参": "三",
}

var kanjiDigitValue = map[string]int{
	"〇": 0, "一": 1, "二": 2, "三": 3, "四": 4,
	"五": 5, "六": 6, "七": 7, "八": 8, "九": 9,
}

const wideComma = "，"

// powersOf10000 is the indexed power-of-10000 table (Step E.3), index r/4-1.
var powersOf10000 = []string{
	"万", "億", "兆", "京", "垓", "𥝱", "穣", "溝", "澗", "正",
	"載", "極", "恒河沙", "阿僧祇", "那由他", "不可思議", "無量大数",
}

// powerReadings gives each powersOf10000 entry its reading (surface-indexed,
// grounded on _examples/original_source's numeral_list3 table), since the
// scale node the digit pass inserts has no dictionary entry of its own to
// resolve it from.
var powerReadings = map[string]struct {
	pron   mora.Pronunciation
	accent int
}{
	"万": {mora.Pronunciation{{Enum: mora.Ma, IsVoiced: true}, {Enum: mora.N, IsVoiced: true}}, 1},
	"億": {mora.Pronunciation{{Enum: mora.O, IsVoiced: true}, {Enum: mora.Ku, IsVoiced: true}}, 1},
	"兆": {mora.Pronunciation{{Enum: mora.Cho, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, 1},
	"京": {mora.Pronunciation{{Enum: mora.Ke, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, 1},
	"垓": {mora.Pronunciation{{Enum: mora.Ga, IsVoiced: true}, {Enum: mora.I, IsVoiced: true}}, 1},
	"𥝱": {mora.Pronunciation{{Enum: mora.Jo, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, 1},
	"穣": {mora.Pronunciation{{Enum: mora.Jo, IsVoiced: true}, {Enum: mora.U, IsVoiced: true}}, 1},
	"溝": {mora.Pronunciation{{Enum: mora.Ko, IsVoiced: true}, {Enum: mora.U, IsVoiced: true}}, 1},
	"澗": {mora.Pronunciation{{Enum: mora.Ka, IsVoiced: true}, {Enum: mora.N, IsVoiced: true}}, 1},
	"正": {mora.Pronunciation{{Enum: mora.Se, IsVoiced: true}, {Enum: mora.I, IsVoiced: true}}, 1},
	"載": {mora.Pronunciation{{Enum: mora.Sa, IsVoiced: true}, {Enum: mora.I, IsVoiced: true}}, 1},
	"極": {mora.Pronunciation{{Enum: mora.Go, IsVoiced: true}, {Enum: mora.Ku, IsVoiced: true}}, 1},
	"恒河沙": {mora.Pronunciation{
		{Enum: mora.Go, IsVoiced: true}, {Enum: mora.U, IsVoiced: true},
		{Enum: mora.Ga, IsVoiced: true}, {Enum: mora.Sha, IsVoiced: true},
	}, 3},
	"阿僧祇": {mora.Pronunciation{
		{Enum: mora.A, IsVoiced: true}, {Enum: mora.So, IsVoiced: true},
		{Enum: mora.U, IsVoiced: true}, {Enum: mora.Gi, IsVoiced: true},
	}, 3},
	"那由他": {mora.Pronunciation{
		{Enum: mora.Na, IsVoiced: true}, {Enum: mora.Yu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true},
	}, 2},
	"不可思議": {mora.Pronunciation{
		{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ka, IsVoiced: true},
		{Enum: mora.Shi, IsVoiced: true}, {Enum: mora.Gi, IsVoiced: true},
	}, 3},
	"無量大数": {mora.Pronunciation{
		{Enum: mora.Mu, IsVoiced: true}, {Enum: mora.Ryo, IsVoiced: true}, {Enum: mora.U, IsVoiced: true},
		{Enum: mora.Ta, IsVoiced: true}, {Enum: mora.I, IsVoiced: true},
		{Enum: mora.Su, IsVoiced: true}, {Enum: mora.U, IsVoiced: true},
	}, 4},
}

// scaleReadings gives 十/百/千 their reading when standing alone (the digit
// "1" is never voiced before them: 十 not 一十), grounded on
// _examples/original_source's numeral_list2 table.
var scaleReadings = map[string]struct {
	pron   mora.Pronunciation
	accent int
}{
	"十": {mora.Pronunciation{{Enum: mora.Ju, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, 1},
	"百": {mora.Pronunciation{{Enum: mora.Hya, IsVoiced: true}, {Enum: mora.Ku, IsVoiced: true}}, 2},
	"千": {mora.Pronunciation{{Enum: mora.Se, IsVoiced: true}, {Enum: mora.N, IsVoiced: true}}, 1},
}

// ApplyDigitPass detects digit sequences, chooses a reading strategy per
// sequence, and rewrites morphemes accordingly.
func ApplyDigitPass(njd *NJD) error {
	normalizeDigitSurfaces(njd)

	from := 0
	for {
		seq, ok := findNextDigitSequence(njd.Nodes[from:])
		if !ok {
			break
		}
		seq.Start += from
		seq.End += from
		before := len(njd.Nodes)
		numerical := decideReadingStrategy(njd.Nodes, seq)
		if numerical {
			applyNumericalRewrite(njd, seq)
		} else {
			applyNonNumericalRewrite(njd, seq)
		}
		from = seq.End + 1 + len(njd.Nodes) - before
	}
	njd.RemoveSilent()

	applySandhiPass1(njd)
	applySandhiPass2(njd)
	applySandhiPass3(njd)
	njd.RemoveSilent()
	return nil
}

func normalizeDigitSurfaces(njd *NJD) {
	for _, n := range njd.Nodes {
		if canon, ok := digitNormalization[n.Surface]; ok {
			n.Surface = canon
		}
	}
}

type digitSequence struct {
	Start, End int // inclusive node indices, after trailing-comma trim
}

func isDigitNode(n *Node) bool {
	_, ok := kanjiDigitValue[n.Surface]
	return ok
}

func isCommaNode(n *Node) bool {
	return n.Surface == wideComma
}

// findNextDigitSequence scans nodes for the first maximal run of digit/comma
// nodes. A rewritten sequence can still hold digit surfaces, so
// ApplyDigitPass passes only the nodes after the last sequence it rewrote.
func findNextDigitSequence(nodes []*Node) (digitSequence, bool) {
	start := -1
	for i, n := range nodes {
		isPart := isDigitNode(n) || isCommaNode(n)
		if isPart && start < 0 {
			start = i
		}
		if !isPart && start >= 0 {
			end := trimTrailingCommas(nodes, start, i-1)
			if end >= start {
				return digitSequence{Start: start, End: end}, true
			}
			start = -1
		}
	}
	if start >= 0 {
		end := trimTrailingCommas(nodes, start, len(nodes)-1)
		if end >= start {
			return digitSequence{Start: start, End: end}, true
		}
	}
	return digitSequence{}, false
}

func trimTrailingCommas(nodes []*Node, start, end int) int {
	for end >= start && isCommaNode(nodes[end]) {
		end--
	}
	return end
}

// digitPunctuationPenalty is the shared penalty/bonus surface set used by
// both the start- and end-context scoring rules.
var digitPunctuationPenalty = map[string]bool{
	"―": true, "−": true, "‐": true, "—": true, "－": true,
	"（": true, "）": true, "番号": true,
}

// decideReadingStrategy implements Step C; returns true for "numerical".
func decideReadingStrategy(nodes []*Node, seq digitSequence) bool {
	if isDigitNode(nodes[seq.Start]) && kanjiDigitValue[nodes[seq.Start].Surface] == 0 {
		return false
	}
	if hasRegularCommaGrouping(nodes, seq) {
		return true
	}

	score := 0
	if before, ok := prevNode(nodes, seq.Start); ok {
		switch {
		case before.POS.IsSettoushiSuuSetsuzoku():
			score += 2
		case before.POS.IsMeishiFukushiKanou(), before.POS.IsMeishiSetsubiJosuushi():
			score += 1
		}
		if digitPunctuationPenalty[before.Surface] {
			score -= 2
		}
		if before.Surface == "．" {
			if before2, ok2 := prevNode(nodes, seq.Start-1); ok2 && isDigitNode(before2) {
				score -= 5
			}
		}
	}
	if after, ok := nextNode(nodes, seq.End); ok {
		switch {
		case after.POS.IsMeishiFukushiKanou(), after.POS.IsMeishiSetsubiJosuushi():
			score += 2
		}
		if digitPunctuationPenalty[after.Surface] {
			score -= 2
		}
		if after.Surface == "．" || after.Surface == "・" {
			score += 4
		}
	}
	return score >= 0
}

func prevNode(nodes []*Node, i int) (*Node, bool) {
	if i-1 < 0 {
		return nil, false
	}
	return nodes[i-1], true
}

func nextNode(nodes []*Node, i int) (*Node, bool) {
	if i+1 >= len(nodes) {
		return nil, false
	}
	return nodes[i+1], true
}

// hasRegularCommaGrouping reports whether the sequence's commas fall exactly
// every 4 tokens from the right (i.e. standard thousands-grouping, "1,234",
// "12,345,678") with at least one comma present.
func hasRegularCommaGrouping(nodes []*Node, seq digitSequence) bool {
	n := seq.End - seq.Start + 1
	hasComma := false
	for i := 0; i < n; i++ {
		posFromRight := n - 1 - i
		node := nodes[seq.Start+i]
		wantComma := posFromRight > 0 && (posFromRight+1)%4 == 0
		if wantComma {
			if !isCommaNode(node) {
				return false
			}
			hasComma = true
		} else if isCommaNode(node) {
			return false
		}
	}
	return hasComma
}

// applyNonNumericalRewrite implements Step D: read each digit individually.
func applyNonNumericalRewrite(njd *NJD, seq digitSequence) {
	digitIdx := 0
	last := lastDigitPosition(njd.Nodes, seq)
	for i := seq.Start; i <= seq.End; i++ {
		n := njd.Nodes[i]
		if isCommaNode(n) {
			continue
		}
		switch n.Surface {
		case "〇":
			n.Pron = mora.Pronunciation{{Enum: mora.Ze, IsVoiced: true}, {Enum: mora.Ro, IsVoiced: true}}
			n.Accent = 1
		case "二":
			n.Pron = mora.Pronunciation{{Enum: mora.Ni, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}
			n.Accent = 1
		case "五":
			n.Pron = mora.Pronunciation{{Enum: mora.Go, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}
			n.Accent = 1
		}
		n.ChainRule = nil
		flag := digitIdx%2 != 0
		n.ChainFlag = &flag
		if digitIdx%2 == 0 {
			if i != last {
				n.Accent = 3
			}
		}
		digitIdx++
	}
}

func lastDigitPosition(nodes []*Node, seq digitSequence) int {
	for i := seq.End; i >= seq.Start; i-- {
		if isDigitNode(nodes[i]) {
			return i
		}
	}
	return seq.End
}

// applyNumericalRewrite implements Step E: positional (block, digit-scale)
// reading with power-of-10000 insertion.
func applyNumericalRewrite(njd *NJD, seq digitSequence) {
	// Step E.1: drop commas from the range.
	kept := make([]*Node, 0, seq.End-seq.Start+1)
	for i := seq.Start; i <= seq.End; i++ {
		if !isCommaNode(njd.Nodes[i]) {
			kept = append(kept, njd.Nodes[i])
		}
	}
	if len(kept) > 4*18 {
		return // Step E.2: number too large, bail without rewriting.
	}

	blockHasNonzero := false
	for idx, n := range kept {
		r := len(kept) - 1 - idx
		d := kanjiDigitValue[n.Surface]

		if r%4 == 0 {
			blockNonzero := blockHasNonzero || d != 0
			if blockNonzero && r > 0 {
				surface := powersOf10000[r/4-1]
				reading := powerReadings[surface]
				power := &Node{Surface: surface, WordDetails: WordDetails{Pron: reading.pron, Accent: reading.accent}}
				pIdx := indexOfNode(njd.Nodes, n)
				njd.InsertAfter(pIdx, power)
			}
			blockHasNonzero = false
			if d == 0 {
				n.Reset()
			}
			continue
		}

		if d != 0 {
			blockHasNonzero = true
		}
		scale := [4]string{"", "十", "百", "千"}[r%4]
		reading := scaleReadings[scale]
		switch {
		case d == 0:
			n.Reset()
		case d == 1:
			n.Surface = scale
			n.Pron = reading.pron
			n.Accent = reading.accent
		default:
			scaleNode := &Node{Surface: scale, WordDetails: WordDetails{Pron: reading.pron, Accent: reading.accent}}
			pIdx := indexOfNode(njd.Nodes, n)
			njd.InsertAfter(pIdx, scaleNode)
		}
	}
	njd.RemoveSilent()
}

func indexOfNode(nodes []*Node, target *Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}
