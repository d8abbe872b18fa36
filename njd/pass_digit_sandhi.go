package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
)

// class1Numeratives maps a numerative surface to a per-digit-surface
// replacement pronunciation for the preceding digit. It covers
// 年,円,人,匹,本,杯,回,個,分,歳,時; other numeratives are left unchanged.
var class1Numeratives = map[string]map[string]mora.Pronunciation{
	"年": {"四": {{Enum: mora.Yo, IsVoiced: true}}},
	"円": {"四": {{Enum: mora.Yo, IsVoiced: true}}},
	"人": {
		"四": {{Enum: mora.Yo, IsVoiced: true}},
		"七": {{Enum: mora.Shi, IsVoiced: true}, {Enum: mora.Chi, IsVoiced: true}},
	},
	"匹": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"本": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"杯": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"回": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"個": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"分": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"歳": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
	"時": {"一": {{Enum: mora.I, IsVoiced: true}, {Enum: mora.Xtsu, IsVoiced: true}}},
}

type voicingClass int

const (
	voicingNone voicingClass = iota
	voicingDaku
	voicingHandaku
)

// class2Voicing maps the numeratives 本,杯,分,匹 to a per-digit-surface
// voicing transform applied to the numerative's own first mora (e.g.
// 三本 -> "ボン", 三杯 -> "パイ").
var class2Voicing = map[string]map[string]voicingClass{
	"本": {"三": voicingDaku, "四": voicingDaku, "六": voicingDaku, "八": voicingDaku, "十": voicingDaku},
	"杯": {"三": voicingHandaku, "六": voicingHandaku, "八": voicingHandaku, "十": voicingHandaku},
	"分": {"三": voicingDaku},
	"匹": {"三": voicingDaku, "六": voicingDaku, "八": voicingDaku, "十": voicingDaku},
}

// class3 maps certain numerative surfaces to an irregular reading of the
// digits 一/二 immediately before them.
var class3Numeratives = map[string]map[string]mora.Pronunciation{
	"棟": {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
	"月": {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
	"口": {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
	"つ":  {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
	"日": {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
	"晩": {"一": {{Enum: mora.Hi, IsVoiced: true}, {Enum: mora.To, IsVoiced: true}}, "二": {{Enum: mora.Fu, IsVoiced: true}, {Enum: mora.Ta, IsVoiced: true}}},
}

func boolPtr(b bool) *bool { return &b }

// applySandhiPass1 applies class1/class2 numerative sandhi to (digit,
// numerative) adjacent pairs.
func applySandhiPass1(njd *NJD) {
	Each(njd.Nodes, func(w Window) {
		prev, curr, ok := w.Double()
		if !ok || !isDigitNode(prev) {
			return
		}
		if !(curr.POS.IsMeishiFukushiKanou() || curr.POS.IsMeishiSetsubiJosuushi()) {
			return
		}
		if table, ok := class1Numeratives[curr.Surface]; ok {
			if repl, ok := table[prev.Surface]; ok {
				prev.Pron = repl
			}
		}
		if table, ok := class2Voicing[curr.Surface]; ok {
			if cls, ok := table[prev.Surface]; ok && len(curr.Pron) > 0 {
				switch cls {
				case voicingDaku:
					curr.Pron[0] = mora.ConvertToVoicedSound(curr.Pron[0])
				case voicingHandaku:
					curr.Pron[0] = mora.ConvertToSemivoicedSound(curr.Pron[0])
				}
			}
		}
		prev.ChainFlag = boolPtr(false)
		curr.ChainFlag = boolPtr(true)
	})
}

// applySandhiPass2 rewrites the decimal-point node between two digits and
// adjusts the preceding digit's pronunciation.
func applySandhiPass2(njd *NJD) {
	Each(njd.Nodes, func(w Window) {
		prev, curr, next, ok := w.Triple()
		if !ok {
			return
		}
		if !(curr.Surface == "．" || curr.Surface == "・") {
			return
		}
		if !isDigitNode(prev) || !isDigitNode(next) {
			return
		}
		curr.Surface = "．"
		curr.Pron = mora.Pronunciation{{Enum: mora.Te, IsVoiced: true}, {Enum: mora.N, IsVoiced: true}}
		curr.Accent = 0
		curr.ChainFlag = boolPtr(true)

		switch prev.Surface {
		case "〇":
			prev.Pron = mora.Pronunciation{{Enum: mora.Re, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}
			prev.Accent = 1
		case "二":
			prev.Pron = mora.Pronunciation{{Enum: mora.Ni, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}
			prev.Accent = 1
		case "五":
			prev.Pron = mora.Pronunciation{{Enum: mora.Go, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}
			prev.Accent = 1
		case "六":
			prev.Pron = mora.Pronunciation{{Enum: mora.Ro, IsVoiced: true}, {Enum: mora.Ku, IsVoiced: true}}
			prev.Accent = 1
		}
	})
}

// calendarFixup is one of the fixed surface-pair rewrites of Step F Pass 3.
type calendarFixup struct {
	firstSurface, secondSurface string
	mergedSurface               string
	mergedRead                  string
}

var calendarFixups = []calendarFixup{
	{"十四", "日", "十四日", "ジュウヨッカ"},
	{"十四", "日間", "十四日間", "ジュウヨッカカン"},
	{"二十", "日", "二十日", "ハツカ"},
	{"二十", "日間", "二十日間", "ハツカカン"},
}

// applySandhiPass3 handles class3 irregular readings and the calendar/person
// surface-pair fixups.
func applySandhiPass3(njd *NJD) {
	Each(njd.Nodes, func(w Window) {
		prev, curr, ok := w.Double()
		if !ok || !isDigitNode(prev) {
			return
		}
		if table, ok := class3Numeratives[curr.Surface]; ok {
			if repl, ok := table[prev.Surface]; ok {
				prev.Pron = repl
			}
		}
	})

	for i := 0; i < len(njd.Nodes)-1; i++ {
		a, b := njd.Nodes[i], njd.Nodes[i+1]
		for _, fx := range calendarFixups {
			if a.Surface == fx.firstSurface && b.Surface == fx.secondSurface {
				a.Surface = fx.mergedSurface
				pron, err := mora.Parse(fx.mergedRead)
				if err == nil {
					a.Pron = pron
				}
				a.Read = fx.mergedRead
				b.Reset()
			}
		}
	}

	for i := 1; i < len(njd.Nodes); i++ {
		prev, curr := njd.Nodes[i-1], njd.Nodes[i]
		if curr.Surface == "日" && i >= 2 {
			before := njd.Nodes[i-2]
			if prev.Surface == "一" && isMonthSurface(before.Surface) {
				prev.Surface = "一日"
				prev.Read = "ツイタチ"
				prev.Pron, _ = mora.Parse(prev.Read)
				curr.Reset()
			}
		}
	}
}

func isMonthSurface(s string) bool {
	r := []rune(s)
	return len(r) > 0 && r[len(r)-1] == '月'
}
