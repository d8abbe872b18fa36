package jpcommon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jpcommon"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

func bonsaiUtterance(t *testing.T) utterance.Utterance {
	t.Helper()
	p, err := mora.Parse("ボンサイ")
	require.NoError(t, err)
	return utterance.Utterance{BreathGroups: []utterance.BreathGroup{{
		AccentPhrases: []utterance.AccentPhrase{{
			Accent: 0,
			Words:  []utterance.Word{{Moras: p}},
		}},
	}}}
}

func TestGenerateLabels_Bonsai_PhonemeSequenceAndFirstLabel(t *testing.T) {
	u := bonsaiUtterance(t)
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())

	// sil, b, o, N, s, a, i, sil
	require.Len(t, labels, 8)
	assert.Contains(t, labels[0].String(), "xx^xx-sil+b=o")
	assert.Contains(t, labels[0].String(), "K:1+1-4")
}

func TestGenerateLabels_Bonsai_LastSilenceMirrorsFirst(t *testing.T) {
	u := bonsaiUtterance(t)
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())
	last := labels[len(labels)-1]
	assert.Contains(t, last.String(), "-sil+xx=xx") // trailing sil: D/G/J are xx
	assert.Contains(t, last.String(), "K:1+1-4")
}

func TestGenerateLabels_MoraTotalsAreConsistent(t *testing.T) {
	u := bonsaiUtterance(t)
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())
	for _, l := range labels {
		assert.Equal(t, u.MoraCount(), l.Moras)
		assert.Equal(t, u.AccentPhraseCount(), l.AccentPhrases)
		assert.Equal(t, len(u.BreathGroups), l.BreathGroups)
	}
}

func TestGenerateLabels_LongConsonantEchoesPreviousPhoneme(t *testing.T) {
	// A single mora whose phoneme is the Long sentinel must echo whatever
	// phoneme immediately precedes it in emission order.
	p := mora.Pronunciation{
		{Enum: mora.Shi, IsVoiced: true},
		{Enum: mora.Long, IsVoiced: true},
	}
	u := utterance.Utterance{BreathGroups: []utterance.BreathGroup{{
		AccentPhrases: []utterance.AccentPhrase{{Accent: 1, Words: []utterance.Word{{Moras: p}}}},
	}}}
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())
	// sequence: sil, sh, i, <echo of i = i>, sil
	require.Len(t, labels, 5)
	assert.Contains(t, labels[3].String(), "^i-i+") // current phoneme echoes "i"
}

func TestGenerateLabels_TwoBreathGroupsInsertsPau(t *testing.T) {
	p, err := mora.Parse("ア")
	require.NoError(t, err)
	u := utterance.Utterance{BreathGroups: []utterance.BreathGroup{
		{AccentPhrases: []utterance.AccentPhrase{{Accent: 0, Words: []utterance.Word{{Moras: p}}}}},
		{AccentPhrases: []utterance.AccentPhrase{{Accent: 0, Words: []utterance.Word{{Moras: p}}}}},
	}}
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())
	// sil, a, pau, a, sil
	require.Len(t, labels, 5)
	assert.Contains(t, labels[2].String(), "-pau+")
	assert.Contains(t, labels[2].String(), "K:2+2-2")
}

// TestGenerateLabels_KoreWaBonsaiDesuKa covers a two-breath-group utterance
// ("これは、盆栽ですか？" split at the touten): 21 phonemes including the
// internal pau, K:2+2-10 over the whole utterance, and H:1_7 on the trailing
// silence (second breath group has 1 accent phrase and 7 moras).
func TestGenerateLabels_KoreWaBonsaiDesuKa(t *testing.T) {
	kore, err := mora.Parse("コレ")
	require.NoError(t, err)
	ha, err := mora.Parse("ハ")
	require.NoError(t, err)
	bonsai, err := mora.Parse("ボンサイ")
	require.NoError(t, err)
	desu, err := mora.Parse("デス")
	require.NoError(t, err)
	ka, err := mora.Parse("カ")
	require.NoError(t, err)

	u := utterance.Utterance{BreathGroups: []utterance.BreathGroup{
		{AccentPhrases: []utterance.AccentPhrase{
			{Accent: 0, Words: []utterance.Word{{Moras: kore}, {Moras: ha}}},
		}},
		{AccentPhrases: []utterance.AccentPhrase{
			{Accent: 0, IsInterrogative: true, Words: []utterance.Word{{Moras: bonsai}, {Moras: desu}, {Moras: ka}}},
		}},
	}}
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())

	require.Len(t, labels, 21)
	assert.Contains(t, labels[0].String(), "K:2+2-10")

	var sawPau bool
	for _, l := range labels {
		if l.C == "pau" {
			sawPau = true
			break
		}
	}
	assert.True(t, sawPau, "expected an internal pau label between the two breath groups")

	last := labels[len(labels)-1]
	assert.Contains(t, last.String(), "H:1_7")
}

// TestGenerateLabels_CPlusPlus covers the "Ｃ＋＋" (シープラスプラス) echo and
// devoicing interaction: the Long sentinel after シ echoes "i", and the
// unvoiced-vowel pass devoices the "su" of the first "purasu" block since its
// own consonant s and the following p are both unvoiced, but leaves the accent-nucleus
// mora and the utterance-final "su" voiced.
func TestGenerateLabels_CPlusPlus(t *testing.T) {
	meishi, err := pos.FromStrings("名詞", "一般", "*", "*")
	require.NoError(t, err)
	n := &njd.Node{
		Surface: "Ｃ＋＋",
		WordDetails: njd.WordDetails{
			POS: meishi,
			Pron: mora.Pronunciation{
				{Enum: mora.Shi, IsVoiced: true},
				{Enum: mora.Long, IsVoiced: true},
				{Enum: mora.Pu, IsVoiced: true},
				{Enum: mora.Ra, IsVoiced: true},
				{Enum: mora.Su, IsVoiced: true},
				{Enum: mora.Pu, IsVoiced: true},
				{Enum: mora.Ra, IsVoiced: true},
				{Enum: mora.Su, IsVoiced: true},
			},
			Accent: 6,
		},
	}
	doc := njd.New([]*njd.Node{n})
	require.NoError(t, njd.ApplyUnvoicedVowelPass(doc))

	u := utterance.Build(doc)
	labels := jpcommon.GenerateLabels(u, config.DefaultLimits())

	require.Len(t, labels, 17)
	want := []string{"sil", "sh", "i", "i", "p", "u", "r", "a", "s", "U", "p", "u", "r", "a", "s", "u", "sil"}
	var got []string
	for _, l := range labels {
		got = append(got, l.C)
	}
	assert.Equal(t, want, got)
}
