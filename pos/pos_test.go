package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

func TestFromStrings_RoundTrip(t *testing.T) {
	p, err := pos.FromStrings("名詞", "固有名詞", "人名", "姓")
	require.NoError(t, err)
	assert.Equal(t, "名詞,固有名詞,人名,姓", p.String())
	assert.True(t, p.IsMeishiKoyuMeishiSei())
	id, ok := p.ID()
	require.True(t, ok)
	assert.Equal(t, 18, id)
}

func TestFromStrings_MissingColumnsDefaultToWildcard(t *testing.T) {
	p, err := pos.FromStrings("名詞", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "名詞,*,*,*", p.String())
}

func TestFromStrings_UnknownKind(t *testing.T) {
	_, err := pos.FromStrings("ナニカ", "*", "*", "*")
	require.Error(t, err)
	kind, ok := jperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, jperror.KindPOSParse, kind)
}

func TestID_OthersBucketIsMissing(t *testing.T) {
	p := pos.POS{Kind: pos.Others, Sub1: "*", Sub2: "*", Sub3: "*"}
	_, ok := p.ID()
	assert.False(t, ok)
}

func TestParseCType_RoundTrip(t *testing.T) {
	c, err := pos.ParseCType("五段・ラ行")
	require.NoError(t, err)
	assert.Equal(t, "五段・ラ行", c.String())
	id, ok := c.ID()
	require.True(t, ok)
	assert.Equal(t, 8, id)
}

func TestParseCType_Wildcard(t *testing.T) {
	c, err := pos.ParseCType("*")
	require.NoError(t, err)
	assert.True(t, c.IsNone())
	_, ok := c.ID()
	assert.False(t, ok)
}

func TestParseCType_Unknown(t *testing.T) {
	_, err := pos.ParseCType("謎・活用")
	require.Error(t, err)
	kind, ok := jperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, jperror.KindCTypeParse, kind)
}

func TestParseCForm_RoundTrip(t *testing.T) {
	c, err := pos.ParseCForm("連用タ接続")
	require.NoError(t, err)
	assert.True(t, c.IsRenyou())
	id, ok := c.ID()
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestParseCForm_Unknown(t *testing.T) {
	_, err := pos.ParseCForm("謎形")
	require.Error(t, err)
	kind, ok := jperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, jperror.KindCFormParse, kind)
}

func TestChainRules_ParseAndMatch(t *testing.T) {
	rules, err := pos.ParseChainRules("名詞%F2@1/*%F3@0")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	r, ok := rules.Match("名詞")
	require.True(t, ok)
	assert.Equal(t, pos.F2, r.Accent)
	assert.Equal(t, 1, r.Add)

	r, ok = rules.Match("動詞")
	require.True(t, ok)
	assert.Equal(t, pos.F3, r.Accent)
}

func TestChainRules_Wildcard(t *testing.T) {
	rules, err := pos.ParseChainRules("*")
	require.NoError(t, err)
	assert.Empty(t, rules)
	_, ok := rules.Match("名詞")
	assert.False(t, ok)
}

func TestChainRules_StringRoundTrip(t *testing.T) {
	const s = "名詞%P14@2/*%C1@0"
	rules, err := pos.ParseChainRules(s)
	require.NoError(t, err)
	assert.Equal(t, s, rules.String())
	assert.True(t, rules[0].Accent.IsPinned())
}

func TestChainRules_MalformedSegment(t *testing.T) {
	_, err := pos.ParseChainRules("名詞F2@1")
	require.Error(t, err)
	kind, ok := jperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, jperror.KindPOSParse, kind)
}
