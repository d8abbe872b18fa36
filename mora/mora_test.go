package mora_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
)

func TestParse_Basic(t *testing.T) {
	p, err := mora.Parse("ボンサイ")
	require.NoError(t, err)
	require.Equal(t, 4, p.MoraSize())
	assert.Equal(t, []mora.MoraEnum{mora.Bo, mora.N, mora.Sa, mora.I}, enums(p))
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"ボンサイ", "シープラスプラス", "ガッコウ", "キャ", "ヴァイオリン"} {
		p, err := mora.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String(), "round trip for %q", s)
	}
}

func TestParse_Alphabet(t *testing.T) {
	p, err := mora.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, []mora.MoraEnum{mora.E, mora.Xtsu, mora.Ku, mora.Su}, enums(p))
}

func TestParse_UnvoicedQuotation(t *testing.T) {
	p, err := mora.Parse("シ’")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.False(t, p[0].IsVoiced)
	assert.Equal(t, "シ’", p.String())
}

func TestParse_Wildcard(t *testing.T) {
	p, err := mora.Parse("*")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestParse_QuestionFallback(t *testing.T) {
	p, err := mora.Parse("？")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, mora.Question, p[0].Enum)
	assert.True(t, p.IsQuestion())
}

func TestParse_ToutenFallback(t *testing.T) {
	p, err := mora.Parse("#")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, mora.Touten, p[0].Enum)
	assert.True(t, p.IsTouten())
	// Sentinels are excluded from MoraSize.
	assert.Equal(t, 0, p.MoraSize())
}

func TestParse_EmptyInput(t *testing.T) {
	p, err := mora.Parse("")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestParse_UnparseableMidway(t *testing.T) {
	_, err := mora.Parse("カ#")
	require.Error(t, err)
	kind, ok := jperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, jperror.KindPronunciationParse, kind)
}

func TestVoicing(t *testing.T) {
	assert.Equal(t, mora.Ga, mora.ConvertToVoicedSound(mora.Mora{Enum: mora.Ka}).Enum)
	assert.Equal(t, mora.Pa, mora.ConvertToSemivoicedSound(mora.Mora{Enum: mora.Ha}).Enum)
	// No-op when no counterpart exists.
	assert.Equal(t, mora.A, mora.ConvertToVoicedSound(mora.Mora{Enum: mora.A}).Enum)
}

func TestPhoneme_Devoicing(t *testing.T) {
	voiced := mora.Mora{Enum: mora.Shi, IsVoiced: true}.Phoneme()
	assert.Equal(t, mora.VI, voiced.Vowel)

	unvoiced := mora.Mora{Enum: mora.Shi, IsVoiced: false}.Phoneme()
	assert.Equal(t, mora.VIUnvoiced, unvoiced.Vowel)
}

func enums(p mora.Pronunciation) []mora.MoraEnum {
	out := make([]mora.MoraEnum, len(p))
	for i, m := range p {
		out[i] = m.Enum
	}
	return out
}
