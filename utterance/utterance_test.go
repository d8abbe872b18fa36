package utterance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

func bonsaiNJD(t *testing.T) *njd.NJD {
	t.Helper()
	p, err := mora.Parse("ボンサイ")
	require.NoError(t, err)
	meishi, err := pos.FromStrings("名詞", "一般", "*", "*")
	require.NoError(t, err)
	return njd.New([]*njd.Node{{
		Surface: "盆栽",
		WordDetails: njd.WordDetails{
			POS: meishi, CType: pos.CType{Raw: "*"}, CForm: pos.CForm{Raw: "*"}, Pron: p, Accent: 0,
		},
	}})
}

func TestBuild_SingleWordSingleBreathGroup(t *testing.T) {
	n := bonsaiNJD(t)
	u := utterance.Build(n)
	require.Len(t, u.BreathGroups, 1)
	require.Len(t, u.BreathGroups[0].AccentPhrases, 1)
	assert.Equal(t, 4, u.MoraCount())
	assert.Equal(t, 1, u.AccentPhraseCount())
}

func TestBuild_QuestionMarksInterrogative(t *testing.T) {
	n := bonsaiNJD(t)
	n.Nodes = append(n.Nodes, &njd.Node{Surface: "？", WordDetails: njd.WordDetails{Pron: mora.Pronunciation{{Enum: mora.Question, IsVoiced: true}}}})
	u := utterance.Build(n)
	require.Len(t, u.BreathGroups, 1)
	assert.True(t, u.BreathGroups[0].AccentPhrases[0].IsInterrogative)
}

func TestBuild_ToutenSplitsBreathGroups(t *testing.T) {
	n := bonsaiNJD(t)
	touten := &njd.Node{Surface: "、", WordDetails: njd.WordDetails{Pron: mora.Pronunciation{{Enum: mora.Touten, IsVoiced: true}}}}
	n.Nodes = append(n.Nodes, touten)
	n.Nodes = append(n.Nodes, bonsaiNJD(t).Nodes...)
	u := utterance.Build(n)
	assert.Len(t, u.BreathGroups, 2)
}

func TestBuild_ChainFlagAppendsToLastPhrase(t *testing.T) {
	meishi1, _ := pos.FromStrings("名詞", "一般", "*", "*")
	meishi2, _ := pos.FromStrings("名詞", "一般", "*", "*")
	p1, _ := mora.Parse("トウキョウ")
	p2, _ := mora.Parse("ト")
	flag := true
	n := njd.New([]*njd.Node{
		{Surface: "東京", WordDetails: njd.WordDetails{POS: meishi1, Pron: p1}},
		{Surface: "都", WordDetails: njd.WordDetails{POS: meishi2, Pron: p2, ChainFlag: &flag}},
	})
	u := utterance.Build(n)
	require.Len(t, u.BreathGroups, 1)
	require.Len(t, u.BreathGroups[0].AccentPhrases, 1)
	assert.Len(t, u.BreathGroups[0].AccentPhrases[0].Words, 2)
}
