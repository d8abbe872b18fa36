// Package utterance builds the Utterance -> BreathGroup -> AccentPhrase ->
// Word -> Mora tree consumed by the full-context label generator, from a
// fully rewritten NJD.
package utterance

import (
	"github.com/rs/zerolog"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
)

// logger is the package-level logger of utterance.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

func SetLogger(l zerolog.Logger) { logger = l }
func GetLogger() zerolog.Logger { return logger }

// Word is one NJDNode's contribution to an AccentPhrase: its POS/CType/CForm
// ids (xx if not representable) plus its moras.
type Word struct {
	POSID   *int
	CTypeID *int
	CFormID *int
	Moras   mora.Pronunciation
}

// AccentPhrase groups Words sharing one accent nucleus.
type AccentPhrase struct {
	Accent          int
	IsInterrogative bool
	Words           []Word
}

// MoraCount sums the mora size of every word in the phrase.
func (a AccentPhrase) MoraCount() int {
	n := 0
	for _, w := range a.Words {
		n += w.Moras.MoraSize()
	}
	return n
}

// BreathGroup is a maximal run of AccentPhrases not separated by pause.
type BreathGroup struct {
	AccentPhrases []AccentPhrase
}

func (b BreathGroup) MoraCount() int {
	n := 0
	for _, ap := range b.AccentPhrases {
		n += ap.MoraCount()
	}
	return n
}

// Utterance is the top-level tree: an ordered list of BreathGroups.
type Utterance struct {
	BreathGroups []BreathGroup
}

func (u Utterance) MoraCount() int {
	n := 0
	for _, bg := range u.BreathGroups {
		n += bg.MoraCount()
	}
	return n
}

func (u Utterance) AccentPhraseCount() int {
	n := 0
	for _, bg := range u.BreathGroups {
		n += len(bg.AccentPhrases)
	}
	return n
}

// builder accumulates the in-progress tree while scanning the NJD.
type builder struct {
	breathGroups []BreathGroup
	currentAPs   []AccentPhrase
}

// Build constructs an Utterance from a fully preprocessed NJD.
func Build(n *njd.NJD) Utterance {
	b := &builder{}
	for _, node := range n.Nodes {
		b.consume(node)
	}
	b.closeBreathGroup()
	return Utterance{BreathGroups: b.breathGroups}
}

func (b *builder) consume(node *njd.Node) {
	if node.Pron.IsQuestion() {
		if len(b.currentAPs) == 0 {
			logger.Warn().Str("surface", node.Surface).Msg("interrogative marker with no preceding accent phrase")
		} else {
			b.currentAPs[len(b.currentAPs)-1].IsInterrogative = true
		}
		b.closeBreathGroup()
		return
	}
	if node.Pron.IsTouten() {
		b.closeBreathGroup()
		return
	}

	word := wordFromNode(node)

	if node.ChainFlag != nil && *node.ChainFlag {
		if len(b.currentAPs) == 0 {
			logger.Warn().Str("surface", node.Surface).Msg("chain_flag true with no preceding accent phrase, seeding new phrase")
			b.startAccentPhrase(node, word)
			return
		}
		last := &b.currentAPs[len(b.currentAPs)-1]
		last.Words = append(last.Words, word)
		return
	}

	b.startAccentPhrase(node, word)
}

func (b *builder) startAccentPhrase(node *njd.Node, word Word) {
	b.currentAPs = append(b.currentAPs, AccentPhrase{
		Accent: node.Acc(),
		Words:  []Word{word},
	})
}

func (b *builder) closeBreathGroup() {
	if len(b.currentAPs) == 0 {
		return
	}
	b.breathGroups = append(b.breathGroups, BreathGroup{AccentPhrases: b.currentAPs})
	b.currentAPs = nil
}

func wordFromNode(node *njd.Node) Word {
	w := Word{Moras: node.Pron}
	if id, ok := node.POS.ID(); ok {
		w.POSID = &id
	}
	if id, ok := node.CType.ID(); ok {
		w.CTypeID = &id
	}
	if id, ok := node.CForm.ID(); ok {
		w.CFormID = &id
	}
	return w
}
