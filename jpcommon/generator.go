package jpcommon

import (
	"github.com/rs/zerolog"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

// logger is the package-level logger of jpcommon.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

func SetLogger(l zerolog.Logger) { logger = l }
func GetLogger() zerolog.Logger { return logger }

// phoneSlot is one emitted phoneme position before its p2/p1/n1/n2 context
// is resolved against its neighbors.
type phoneSlot struct {
	text      string
	needsEcho bool // consonant sentinel Long: resolved to the previous slot's text

	hasContent bool // false for sil/pau: no current-word/AP/BG context

	bgIdx, apFlatIdx, wordIdx int
	moraIdxInAP               int // mora position within its accent phrase
	moraIdxInBG               int // mora position within its breath group
	moraGlobalIdx             int // mora position within the whole utterance
	apIdxInBG                 int // accent-phrase position within its breath group

	// boundary{Before,After}BG are only set on sil/pau slots: the breath
	// group index immediately preceding/following the silence, -1 if none
	// (utterance-initial or utterance-final silence).
	boundaryBeforeBG, boundaryAfterBG int
}

// flatAP records one accent phrase's position across the whole utterance,
// independent of its owning breath group, so E/F/G can reach the
// immediately adjacent accent phrase even across a breath-group boundary.
type flatAP struct {
	bgIdx int
	ap    utterance.AccentPhrase
}

// GenerateLabels walks u and emits one Label per phoneme.
func GenerateLabels(u utterance.Utterance, limits config.Limits) []Label {
	flatAPs := flattenAccentPhrases(u)
	slots := buildPhoneSlots(u)
	resolveEchoes(slots)

	labels := make([]Label, len(slots))
	for i := range slots {
		labels[i] = buildLabel(slots, i, flatAPs, u, limits)
	}
	return labels
}

func flattenAccentPhrases(u utterance.Utterance) []flatAP {
	var out []flatAP
	for bgIdx, bg := range u.BreathGroups {
		for _, ap := range bg.AccentPhrases {
			out = append(out, flatAP{bgIdx: bgIdx, ap: ap})
		}
	}
	return out
}

func buildPhoneSlots(u utterance.Utterance) []phoneSlot {
	var slots []phoneSlot
	nbg := len(u.BreathGroups)

	leadingAfter := -1
	if nbg > 0 {
		leadingAfter = 0
	}
	slots = append(slots, phoneSlot{text: "sil", bgIdx: -1, apFlatIdx: -1, wordIdx: -1,
		boundaryBeforeBG: -1, boundaryAfterBG: leadingAfter})

	apFlatIdx := 0
	moraGlobal := 0
	for bgIdx, bg := range u.BreathGroups {
		if bgIdx > 0 {
			slots = append(slots, phoneSlot{text: "pau", bgIdx: -1, apFlatIdx: -1, wordIdx: -1,
				boundaryBeforeBG: bgIdx - 1, boundaryAfterBG: bgIdx})
		}
		moraInBG := 0
		for apIdxInBG, ap := range bg.AccentPhrases {
			moraIdx := 0
			for wordIdx, w := range ap.Words {
				for _, m := range w.Moras {
					if m.Enum.IsSentinel() {
						continue
					}
					ph := m.Phoneme()
					base := phoneSlot{
						hasContent:  true,
						bgIdx:       bgIdx,
						apFlatIdx:   apFlatIdx,
						wordIdx:     wordIdx,
						moraIdxInAP: moraIdx,
						moraIdxInBG: moraInBG,
						moraGlobalIdx: moraGlobal,
						apIdxInBG:   apIdxInBG,
					}
					switch {
					case ph.Consonant == mora.ConsLong:
						s := base
						s.needsEcho = true
						slots = append(slots, s)
					case ph.Consonant != mora.ConsNone:
						s := base
						s.text = ph.Consonant.String()
						slots = append(slots, s)
					}
					if ph.Vowel != mora.VowelNone {
						s := base
						s.text = ph.Vowel.String()
						slots = append(slots, s)
					}
					moraIdx++
					moraInBG++
					moraGlobal++
				}
			}
			apFlatIdx++
		}
	}

	trailingBefore := -1
	if nbg > 0 {
		trailingBefore = nbg - 1
	}
	slots = append(slots, phoneSlot{text: "sil", bgIdx: -1, apFlatIdx: -1, wordIdx: -1,
		boundaryBeforeBG: trailingBefore, boundaryAfterBG: -1})
	return slots
}

func resolveEchoes(slots []phoneSlot) {
	for i := range slots {
		if !slots[i].needsEcho {
			continue
		}
		if i == 0 {
			logger.Warn().Msg("Long consonant sentinel at utterance start, no phoneme to echo")
			slots[i].text = "sil"
			continue
		}
		slots[i].text = slots[i-1].text
	}
}

func slotText(slots []phoneSlot, i int) string {
	if i < 0 || i >= len(slots) {
		return ""
	}
	return slots[i].text
}

func buildLabel(slots []phoneSlot, i int, flatAPs []flatAP, u utterance.Utterance, limits config.Limits) Label {
	s := slots[i]
	l := Label{
		P2: slotText(slots, i-2),
		P1: slotText(slots, i-1),
		C:  slotText(slots, i),
		N1: slotText(slots, i+1),
		N2: slotText(slots, i+2),

		BreathGroups:  limits.Clamp(len(u.BreathGroups), "S"),
		AccentPhrases: limits.Clamp(u.AccentPhraseCount(), "M"),
		Moras:         limits.Clamp(u.MoraCount(), "LL"),
	}

	if !s.hasContent {
		l.B = boundaryWordRef(flatAPs, s.boundaryBeforeBG, false)
		l.D = boundaryWordRef(flatAPs, s.boundaryAfterBG, true)
		l.E = boundaryAPRef(flatAPs, s.boundaryBeforeBG, false, limits)
		l.G = boundaryAPRef(flatAPs, s.boundaryAfterBG, true, limits)
		fillBoundaryPause(&l, s)
		l.H = bgRefFor(u, s.boundaryBeforeBG, limits)
		l.J = bgRefFor(u, s.boundaryAfterBG, limits)
		return l
	}

	ap := flatAPs[s.apFlatIdx].ap
	bg := u.BreathGroups[s.bgIdx]
	word := ap.Words[s.wordIdx]
	l.Cw = wordRef{POSID: word.POSID, CTypeID: word.CTypeID, CFormID: word.CFormID}
	l.B = prevWordRef(flatAPs, s)
	l.D = nextWordRef(flatAPs, s)

	accentNucleus := ap.Accent
	if accentNucleus == 0 {
		accentNucleus = ap.MoraCount()
	}
	l.HasA = true
	l.RelAccent = clampSigned(s.moraIdxInAP-accentNucleus+1, limits.M)
	l.AFwd = limits.Clamp(s.moraIdxInAP+1, "M")
	l.ABwd = limits.Clamp(ap.MoraCount()-s.moraIdxInAP, "M")

	l.E = apRefAt(flatAPs, s.apFlatIdx-1, limits)
	l.F = currAPRef(flatAPs, s, bg, limits)
	l.G = apRefAt(flatAPs, s.apFlatIdx+1, limits)
	fillPauseInsertion(&l, flatAPs, s.apFlatIdx)

	l.H = bgRefFor(u, s.bgIdx-1, limits)
	l.I = currBGRef(u, s, limits)
	l.J = bgRefFor(u, s.bgIdx+1, limits)

	return l
}

func prevWordRef(flatAPs []flatAP, s phoneSlot) wordRef {
	ap := flatAPs[s.apFlatIdx].ap
	if s.wordIdx > 0 {
		return wordRefOf(ap.Words[s.wordIdx-1])
	}
	if s.apFlatIdx > 0 {
		prevAP := flatAPs[s.apFlatIdx-1].ap
		if len(prevAP.Words) > 0 {
			return wordRefOf(prevAP.Words[len(prevAP.Words)-1])
		}
	}
	return wordRef{}
}

func nextWordRef(flatAPs []flatAP, s phoneSlot) wordRef {
	ap := flatAPs[s.apFlatIdx].ap
	if s.wordIdx < len(ap.Words)-1 {
		return wordRefOf(ap.Words[s.wordIdx+1])
	}
	if s.apFlatIdx < len(flatAPs)-1 {
		nextAP := flatAPs[s.apFlatIdx+1].ap
		if len(nextAP.Words) > 0 {
			return wordRefOf(nextAP.Words[0])
		}
	}
	return wordRef{}
}

// boundaryWordRef returns the last word of bgIdx (firstOf=false) or the
// first word of bgIdx (firstOf=true), used by the sil/pau blocks.
func boundaryWordRef(flatAPs []flatAP, bgIdx int, firstOf bool) wordRef {
	aps := apsOfBG(flatAPs, bgIdx)
	if len(aps) == 0 {
		return wordRef{}
	}
	if firstOf {
		if len(aps[0].Words) == 0 {
			return wordRef{}
		}
		return wordRefOf(aps[0].Words[0])
	}
	last := aps[len(aps)-1]
	if len(last.Words) == 0 {
		return wordRef{}
	}
	return wordRefOf(last.Words[len(last.Words)-1])
}

func apsOfBG(flatAPs []flatAP, bgIdx int) []utterance.AccentPhrase {
	if bgIdx < 0 {
		return nil
	}
	var out []utterance.AccentPhrase
	for _, f := range flatAPs {
		if f.bgIdx == bgIdx {
			out = append(out, f.ap)
		}
	}
	return out
}

func boundaryAPRef(flatAPs []flatAP, bgIdx int, firstOf bool, limits config.Limits) apRef {
	aps := apsOfBG(flatAPs, bgIdx)
	if len(aps) == 0 {
		return apRef{}
	}
	var ap utterance.AccentPhrase
	if firstOf {
		ap = aps[0]
	} else {
		ap = aps[len(aps)-1]
	}
	return apRefOf(ap, limits)
}

func wordRefOf(w utterance.Word) wordRef {
	return wordRef{POSID: w.POSID, CTypeID: w.CTypeID, CFormID: w.CFormID}
}

func apRefOf(ap utterance.AccentPhrase, limits config.Limits) apRef {
	accent := ap.Accent
	if accent == 0 {
		accent = ap.MoraCount()
	}
	return apRef{
		Exists:          true,
		MoraCount:       limits.Clamp(ap.MoraCount(), "M"),
		AccentPosition:  limits.Clamp(accent, "M"),
		IsInterrogative: ap.IsInterrogative,
	}
}

func apRefAt(flatAPs []flatAP, idx int, limits config.Limits) apRef {
	if idx < 0 || idx >= len(flatAPs) {
		return apRef{}
	}
	return apRefOf(flatAPs[idx].ap, limits)
}

// currAPRef builds F: the current accent phrase's triple plus its
// forward/backward position (of accent phrase and of mora) within its
// own breath group.
func currAPRef(flatAPs []flatAP, s phoneSlot, bg utterance.BreathGroup, limits config.Limits) apRef {
	r := apRefOf(flatAPs[s.apFlatIdx].ap, limits)
	r.HasIndices = true
	r.APForward = limits.Clamp(s.apIdxInBG+1, "M")
	r.APBackward = limits.Clamp(len(bg.AccentPhrases)-s.apIdxInBG, "M")
	r.MoraForward = limits.Clamp(s.moraIdxInBG+1, "L")
	r.MoraBackward = limits.Clamp(bg.MoraCount()-s.moraIdxInBG, "L")
	return r
}

func fillPauseInsertion(l *Label, flatAPs []flatAP, idx int) {
	if idx > 0 {
		v := flatAPs[idx].bgIdx != flatAPs[idx-1].bgIdx
		l.E.PauseInsertion = &v
	}
	if idx < len(flatAPs)-1 {
		v := flatAPs[idx].bgIdx != flatAPs[idx+1].bgIdx
		l.G.PauseInsertion = &v
	}
}

// fillBoundaryPause sets the E/G pause-insertion flag for a sil/pau slot:
// true whenever a breath group genuinely separates the two sides (always
// true for an inner pau; undefined - left nil - for the utterance-edge sil
// since there is no adjacent accent phrase on the open side).
func fillBoundaryPause(l *Label, s phoneSlot) {
	if s.boundaryBeforeBG >= 0 {
		v := true
		l.E.PauseInsertion = &v
	}
	if s.boundaryAfterBG >= 0 {
		v := true
		l.G.PauseInsertion = &v
	}
}

func bgRefFor(u utterance.Utterance, idx int, limits config.Limits) bgRef {
	if idx < 0 || idx >= len(u.BreathGroups) {
		return bgRef{}
	}
	bg := u.BreathGroups[idx]
	return bgRef{
		Exists:            true,
		AccentPhraseCount: limits.Clamp(len(bg.AccentPhrases), "M"),
		MoraCount:         limits.Clamp(bg.MoraCount(), "L"),
	}
}

// currBGRef builds I: the current breath group's pair plus its
// forward/backward position of (breath group, accent phrase, mora) within
// the whole utterance.
func currBGRef(u utterance.Utterance, s phoneSlot, limits config.Limits) bgRef {
	r := bgRefFor(u, s.bgIdx, limits)
	if !r.Exists {
		return r
	}
	r.HasIndices = true
	r.BGForward = limits.Clamp(s.bgIdx+1, "S")
	r.BGBackward = limits.Clamp(len(u.BreathGroups)-s.bgIdx, "S")
	r.APForward = limits.Clamp(s.apFlatIdx+1, "M")
	r.APBackward = limits.Clamp(u.AccentPhraseCount()-s.apFlatIdx, "M")
	r.MoraForward = limits.Clamp(s.moraGlobalIdx+1, "LL")
	r.MoraBackward = limits.Clamp(u.MoraCount()-s.moraGlobalIdx, "LL")
	return r
}

// clampSigned saturates v symmetrically to [-limit, limit], used for the A
// block's relative accent position which may be negative.
func clampSigned(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
