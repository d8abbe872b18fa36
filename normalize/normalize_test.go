package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/normalize"
)

func TestNormalize_ASCIIExceptions(t *testing.T) {
	assert.Equal(t, "　", normalize.Normalize(" "))
	assert.Equal(t, "￥", normalize.Normalize("\\"))
	assert.Equal(t, "−", normalize.Normalize("-"))
	assert.Equal(t, "〜", normalize.Normalize("~"))
}

func TestNormalize_ASCIIGeneralOffset(t *testing.T) {
	assert.Equal(t, "Ａ", normalize.Normalize("A"))
	assert.Equal(t, "０", normalize.Normalize("0"))
	assert.Equal(t, "！", normalize.Normalize("!"))
}

func TestNormalize_HalfwidthKatakana(t *testing.T) {
	assert.Equal(t, "アイウエオ", normalize.Normalize("ｱｲｳｴｵ"))
	assert.Equal(t, "ボンサイ", normalize.Normalize("ﾎﾞﾝｻｲ")) // ﾎﾞﾝｻｲ → ボンサイ
}

func TestNormalize_CombiningDakutenOnPrecedingKana(t *testing.T) {
	// decomposed か (U+304B) + combining dakuten (U+3099) must resolve to
	// the precomposed が (U+304C), not pass through as two runes.
	assert.Equal(t, "が", normalize.Normalize("が"))
	// half-width ハ + half-width dakuten → バ (half-width kana are
	// converted first, then the half-width mark applies to the result)
	assert.Equal(t, "バ", normalize.Normalize("ﾊﾞ"))
}

func TestNormalize_HandakutenOnHRow(t *testing.T) {
	assert.Equal(t, "パ", normalize.Normalize("ﾊﾟ")) // ﾊﾟ → パ
	assert.Equal(t, "ぽ", normalize.Normalize("ぽ")) // ほ + combining handakuten → ぽ
}

func TestNormalize_PassthroughNonDomainText(t *testing.T) {
	assert.Equal(t, "盆栃", normalize.Normalize("盆栃"))
}
