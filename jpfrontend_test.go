package jpfrontend_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

// fakeEntry pairs the fields a dictionary row would carry for one surface.
type fakeEntry struct {
	pos    pos.POS
	pron   mora.Pronunciation
	accent int
}

// fakeLookup is an in-memory WordEntryLookup keyed by surface, standing in
// for the external dictionary this package treats as opaque.
type fakeLookup map[string]fakeEntry

func (f fakeLookup) Lookup(id njd.WordID, surface string) (njd.WordEntry, error) {
	e, ok := f[surface]
	if !ok {
		return njd.DefaultWordEntry(), nil
	}
	return njd.WordEntry{Single: &njd.WordDetails{
		POS: e.pos, CType: pos.CType{Raw: "*"}, CForm: pos.CForm{Raw: "*"},
		Pron: e.pron, Accent: e.accent,
	}}, nil
}

// fakeTokenizer splits on rune boundaries looked up in a fixed surface list,
// taking the first listed surface that is a prefix at each position.
type fakeTokenizer struct {
	surfaces []string
}

func (f fakeTokenizer) Tokenize(text string) ([]njd.Token, error) {
	var tokens []njd.Token
	remaining := text
	for len(remaining) > 0 {
		matched := false
		for _, s := range f.surfaces {
			if strings.HasPrefix(remaining, s) {
				tokens = append(tokens, njd.Token{Surface: s})
				remaining = remaining[len(s):]
				matched = true
				break
			}
		}
		if !matched {
			r := []rune(remaining)[0]
			tokens = append(tokens, njd.Token{Surface: string(r)})
			remaining = remaining[len(string(r)):]
		}
	}
	return tokens, nil
}

func newBonsaiLookup(t *testing.T) fakeLookup {
	t.Helper()
	meishi, err := pos.FromStrings("名詞", "一般", "*", "*")
	require.NoError(t, err)
	pron, err := mora.Parse("ボンサイ")
	require.NoError(t, err)
	return fakeLookup{
		"盆栽": {pos: meishi, pron: pron, accent: 0},
		"？":  {pron: mora.Pronunciation{{Enum: mora.Question, IsVoiced: true}}},
		"、":  {pron: mora.Pronunciation{{Enum: mora.Touten, IsVoiced: true}}},
	}
}

// TestTextToLabels_Bonsai covers a single word utterance whose phoneme
// sequence is sil,b,o,N,s,a,i,sil and whose first label and K block render
// exactly as expected.
func TestTextToLabels_Bonsai(t *testing.T) {
	lookup := newBonsaiLookup(t)
	jp := jpfrontend.New(fakeTokenizer{surfaces: []string{"盆栽"}}, lookup)

	labels, err := jp.TextToLabels("盆栽")
	require.NoError(t, err)
	require.Len(t, labels, 8)

	assert.True(t, strings.HasPrefix(labels[0].String(), "xx^xx-sil+b=o"))
	assert.Contains(t, labels[0].String(), "K:1+1-4")
}

// TestTextToLabels_BonsaiInterrogative covers scenario 2: the same phoneme
// sequence, but the accent phrase is marked interrogative.
func TestTextToLabels_BonsaiInterrogative(t *testing.T) {
	lookup := newBonsaiLookup(t)
	jp := jpfrontend.New(fakeTokenizer{surfaces: []string{"盆栽", "？"}}, lookup)

	labels, err := jp.TextToLabels("盆栽？")
	require.NoError(t, err)
	require.Len(t, labels, 8)

	last := labels[len(labels)-2]
	assert.Contains(t, last.String(), "E:4_4!1_xx-xx")
}

func TestTextToLabelsBatch_SplitsOnSentenceBoundaries(t *testing.T) {
	lookup := newBonsaiLookup(t)
	jp := jpfrontend.New(fakeTokenizer{surfaces: []string{"盆栽", "？"}}, lookup)

	results := jp.TextToLabelsBatch("盆栽？盆栽？")
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.NotEmpty(t, r.Labels)
	}
}

func TestNew_ContextCancellation(t *testing.T) {
	lookup := newBonsaiLookup(t)
	jp := jpfrontend.New(fakeTokenizer{surfaces: []string{"盆栽"}}, lookup)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := jp.TextToLabelsWithContext(ctx, "盆栽")
	assert.Error(t, err)
}

// newDigitLookup returns a fakeLookup with real dictionary pronunciations
// for each digit kanji, the way a kanji-reading dictionary would provide
// them - the digit pass only replaces the nodes it rewrites to a scale or
// power reading in place, so every digit surface that can survive a pass
// unrewritten still needs a genuine pronunciation behind it.
func newDigitLookup(t *testing.T) fakeLookup {
	t.Helper()
	suuji, err := pos.FromStrings("名詞", "数", "*", "*")
	require.NoError(t, err)
	digit := func(p string) mora.Pronunciation {
		pron, err := mora.Parse(p)
		require.NoError(t, err)
		return pron
	}
	return fakeLookup{
		"〇": {pos: suuji, pron: digit("ゼロ"), accent: 1},
		"一": {pos: suuji, pron: digit("イチ"), accent: 0},
		"二": {pos: suuji, pron: digit("ニ"), accent: 1},
		"三": {pos: suuji, pron: digit("サン"), accent: 1},
		"四": {pos: suuji, pron: digit("ヨン"), accent: 1},
		"五": {pos: suuji, pron: digit("ゴ"), accent: 1},
		"六": {pos: suuji, pron: digit("ロク"), accent: 2},
		"七": {pos: suuji, pron: digit("ナナ"), accent: 1},
		"八": {pos: suuji, pron: digit("ハチ"), accent: 1},
		"九": {pos: suuji, pron: digit("キュウ"), accent: 1},
	}
}

func digitTokenizer() fakeTokenizer {
	return fakeTokenizer{surfaces: []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}}
}

// TestTextToLabels_DigitNumericalReading covers scenario 5: "123" with no
// numerative context reads as a single positional number, hyaku-ni-juu-san
// (百, 二, 十, 三), not three individually-read digits.
func TestTextToLabels_DigitNumericalReading(t *testing.T) {
	jp := jpfrontend.New(digitTokenizer(), newDigitLookup(t))

	labels, err := jp.TextToLabels("一二三")
	require.NoError(t, err)

	// compared case-insensitively: devoicing may render a vowel as its
	// uppercase unvoiced variant without changing which phoneme it is.
	var got []string
	for _, l := range labels {
		got = append(got, strings.ToLower(l.C))
	}
	// hyaku(百): hy,a,k,u / ni(二, unrewritten): n,i / juu(十, inserted): j,u,u(echo) / san(三): s,a,n
	want := []string{"sil", "hy", "a", "k", "u", "n", "i", "j", "u", "u", "s", "a", "n", "sil"}
	assert.Equal(t, want, got)
}

// TestTextToLabels_DigitNonNumericalReading covers scenario 6: "0120" reads
// each digit individually (zero, i-chi, ni-i, zero) since a leading zero
// forces the non-numerical strategy.
func TestTextToLabels_DigitNonNumericalReading(t *testing.T) {
	jp := jpfrontend.New(digitTokenizer(), newDigitLookup(t))

	labels, err := jp.TextToLabels("〇一二〇")
	require.NoError(t, err)

	var got []string
	for _, l := range labels {
		got = append(got, strings.ToLower(l.C))
	}
	// ze-ro(〇), i-chi(一, dictionary-supplied), ni-i(二, rewritten with a long vowel), ze-ro(〇)
	want := []string{"sil", "z", "e", "r", "o", "i", "ch", "i", "n", "i", "i", "z", "e", "r", "o", "sil"}
	assert.Equal(t, want, got)
}
