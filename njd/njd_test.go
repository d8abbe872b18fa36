package njd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

func bonsaiNode() *njd.Node {
	p, _ := mora.Parse("ボンサイ")
	meishi, _ := pos.FromStrings("名詞", "一般", "*", "*")
	return &njd.Node{
		Surface: "盆栽",
		WordDetails: njd.WordDetails{
			POS:   meishi,
			CType: pos.CType{Raw: "*"},
			CForm: pos.CForm{Raw: "*"},
			Read:  "ボンサイ",
			Pron:  p,
		},
	}
}

func TestPreprocess_SingleWord(t *testing.T) {
	n := njd.New([]*njd.Node{bonsaiNode()})
	require.NoError(t, njd.Preprocess(n))
	require.Len(t, n.Nodes, 1)
	assert.Equal(t, 4, n.Nodes[0].MoraSize())
}

func TestApplyPronunciationPass_FillerFromSurface(t *testing.T) {
	n := njd.New([]*njd.Node{{Surface: "、", WordDetails: njd.WordDetails{POS: pos.Default()}}})
	require.NoError(t, njd.ApplyPronunciationPass(n))
	require.Len(t, n.Nodes, 1)
	assert.Equal(t, pos.Kigou, n.Nodes[0].POS.Kind)
	assert.True(t, n.Nodes[0].Pron.IsTouten())
}

func TestApplyPronunciationPass_UnparseableBecomesTouten(t *testing.T) {
	meishi, _ := pos.FromStrings("名詞", "一般", "*", "*")
	n := njd.New([]*njd.Node{{Surface: "盆栽", WordDetails: njd.WordDetails{POS: meishi}}})
	require.NoError(t, njd.ApplyPronunciationPass(n))
	require.Len(t, n.Nodes, 1)
	assert.Equal(t, pos.Kigou, n.Nodes[0].POS.Kind)
	assert.True(t, n.Nodes[0].Pron.IsTouten())
}

func digitNode(surface string) *njd.Node {
	return digitNodeWithReading(surface, "")
}

// digitNodeWithReading builds a 数 node carrying a dictionary reading, the
// way a real digit token would arrive with one attached. Surfaces the digit
// pass never rewrites in place (e.g. the tens/ones digit of a positional
// reading) keep exactly this Pron through to the label generator.
func digitNodeWithReading(surface, reading string) *njd.Node {
	p, _ := pos.FromStrings("名詞", "数", "*", "*")
	n := &njd.Node{Surface: surface, WordDetails: njd.WordDetails{POS: p}}
	if reading != "" {
		pron, err := mora.Parse(reading)
		if err != nil {
			panic(err)
		}
		n.Pron = pron
	}
	return n
}

// TestApplyDigitPass_NumericalReading covers "123" read as a single
// positional number (hyaku-ni-juu-san), asserting the actual pronunciation
// of every surviving/inserted node, not just its surface: a surface match
// alone would pass even if a node kept the wrong Pron underneath it.
func TestApplyDigitPass_NumericalReading(t *testing.T) {
	n := njd.New([]*njd.Node{
		digitNodeWithReading("一", "イチ"),
		digitNodeWithReading("二", "ニ"),
		digitNodeWithReading("三", "サン"),
	})
	require.NoError(t, njd.ApplyDigitPass(n))
	require.Len(t, n.Nodes, 4)

	hyaku, ni, juu, san := n.Nodes[0], n.Nodes[1], n.Nodes[2], n.Nodes[3]
	assert.Equal(t, "百", hyaku.Surface)
	assert.Equal(t, mora.Pronunciation{{Enum: mora.Hya, IsVoiced: true}, {Enum: mora.Ku, IsVoiced: true}}, hyaku.Pron)

	// 二 is never rewritten in place at the tens position: it keeps its own
	// dictionary reading and a new 十 node is inserted after it.
	assert.Equal(t, "二", ni.Surface)
	assert.Equal(t, mora.Pronunciation{{Enum: mora.Ni, IsVoiced: true}}, ni.Pron)

	assert.Equal(t, "十", juu.Surface)
	assert.Equal(t, mora.Pronunciation{{Enum: mora.Ju, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, juu.Pron)

	// 三 sits at a ones (block-boundary) position and is also left unrewritten.
	assert.Equal(t, "三", san.Surface)
	assert.Equal(t, mora.Pronunciation{{Enum: mora.Sa, IsVoiced: true}, {Enum: mora.N, IsVoiced: true}}, san.Pron)
}

// TestApplyDigitPass_NonNumericalLeadingZero covers "0120", which a leading
// zero forces onto the non-numerical (digit-by-digit) strategy, asserting
// both the rewritten 〇/二 pronunciations and the unrewritten 一 kept intact.
func TestApplyDigitPass_NonNumericalLeadingZero(t *testing.T) {
	n := njd.New([]*njd.Node{
		digitNodeWithReading("〇", "レイ"),
		digitNodeWithReading("一", "イチ"),
		digitNodeWithReading("二", "ニ"),
		digitNodeWithReading("〇", "レイ"),
	})
	require.NoError(t, njd.ApplyDigitPass(n))
	require.Len(t, n.Nodes, 4)

	zeroReading := mora.Pronunciation{{Enum: mora.Ze, IsVoiced: true}, {Enum: mora.Ro, IsVoiced: true}}
	assert.Equal(t, zeroReading, n.Nodes[0].Pron)
	assert.True(t, n.Nodes[0].ChainFlag != nil && !*n.Nodes[0].ChainFlag)
	assert.Equal(t, 3, n.Nodes[0].Acc())

	// 一 isn't covered by the non-numerical rewrite's surface switch, so it
	// keeps its dictionary reading untouched.
	assert.Equal(t, mora.Pronunciation{{Enum: mora.I, IsVoiced: true}, {Enum: mora.Chi, IsVoiced: true}}, n.Nodes[1].Pron)
	assert.Equal(t, 0, n.Nodes[1].Acc())

	assert.Equal(t, mora.Pronunciation{{Enum: mora.Ni, IsVoiced: true}, {Enum: mora.Long, IsVoiced: true}}, n.Nodes[2].Pron)
	assert.Equal(t, 3, n.Nodes[2].Acc())

	// The last digit is at an odd position (index 3) so it keeps its
	// switch-assigned accent instead of being forced to 3.
	assert.Equal(t, zeroReading, n.Nodes[3].Pron)
	assert.Equal(t, 1, n.Nodes[3].Acc())
}

func TestWindow_Projections(t *testing.T) {
	nodes := []*njd.Node{{Surface: "a"}, {Surface: "b"}, {Surface: "c"}}
	w := njd.NewWindow(nodes, 1)
	assert.Equal(t, njd.WindowFull, w.Kind)
	prev, curr, next, ok := w.Triple()
	require.True(t, ok)
	assert.Equal(t, "a", prev.Surface)
	assert.Equal(t, "b", curr.Surface)
	assert.Equal(t, "c", next.Surface)

	first := njd.NewWindow(nodes, 0)
	_, _, _, ok = first.Triple()
	assert.False(t, ok)
}

func TestApplyAccentPhrasePass_MeishiMeishiChains(t *testing.T) {
	meishi1, _ := pos.FromStrings("名詞", "一般", "*", "*")
	meishi2, _ := pos.FromStrings("名詞", "一般", "*", "*")
	n := njd.New([]*njd.Node{
		{Surface: "東京", WordDetails: njd.WordDetails{POS: meishi1}},
		{Surface: "都", WordDetails: njd.WordDetails{POS: meishi2}},
	})
	require.NoError(t, njd.ApplyAccentPhrasePass(n))
	require.NotNil(t, n.Nodes[1].ChainFlag)
	assert.True(t, *n.Nodes[1].ChainFlag)
}
