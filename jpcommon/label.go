// Package jpcommon implements the full-context label generator: it walks a
// built Utterance tree and emits one Label per phoneme, encoding the
// positional and prosodic context blocks A-K.
package jpcommon

import (
	"fmt"
)

const xx = "xx"

// wordRef is the (pos_id, ctype_id, cform_id) triple rendered by the B/C/D
// word blocks, all "xx" when the referenced word does not exist (e.g. the
// word block adjacent to a leading/trailing silence).
type wordRef struct {
	POSID, CTypeID, CFormID *int
}

func (w wordRef) fieldPOS() string   { return fieldOrXX2(w.POSID) }
func (w wordRef) fieldCType() string { return fieldOrXX1(w.CTypeID) }
func (w wordRef) fieldCForm() string { return fieldOrXX1(w.CFormID) }

func fieldOrXX2(v *int) string {
	if v == nil {
		return xx
	}
	return fmt.Sprintf("%02d", *v)
}

func fieldOrXX1(v *int) string {
	if v == nil {
		return xx
	}
	return fmt.Sprintf("%d", *v)
}

// apRef is the (mora_count, accent_position, is_interrogative) triple shared
// by the E/F/G accent-phrase blocks, plus the forward/backward indices
// within the breath group (F only) and the pause-insertion flag (E/G only).
type apRef struct {
	Exists          bool
	MoraCount       int
	AccentPosition  int
	IsInterrogative bool

	HasIndices                             bool
	APForward, APBackward                  int
	MoraForward, MoraBackward               int

	PauseInsertion *bool
}

func (a apRef) fields3() (mora, accent, interrogative string) {
	if !a.Exists {
		return xx, xx, xx
	}
	q := "0"
	if a.IsInterrogative {
		q = "1"
	}
	return fmt.Sprintf("%d", a.MoraCount), fmt.Sprintf("%d", a.AccentPosition), q
}

func (a apRef) fieldPause() string {
	if a.PauseInsertion == nil {
		return xx
	}
	if *a.PauseInsertion {
		return "1"
	}
	return "0"
}

func (a apRef) fieldsIndices() (apFwd, apBwd, moraFwd, moraBwd string) {
	if !a.Exists || !a.HasIndices {
		return xx, xx, xx, xx
	}
	return fmt.Sprintf("%d", a.APForward), fmt.Sprintf("%d", a.APBackward),
		fmt.Sprintf("%d", a.MoraForward), fmt.Sprintf("%d", a.MoraBackward)
}

// bgRef is the (accent_phrase_count, mora_count) pair shared by the H/I/J
// breath-group blocks, plus I's forward/backward indices of breath group,
// accent phrase and mora within the utterance.
type bgRef struct {
	Exists            bool
	AccentPhraseCount int
	MoraCount         int

	HasIndices                 bool
	BGForward, BGBackward      int
	APForward, APBackward      int
	MoraForward, MoraBackward  int
}

func (b bgRef) fields2() (ap, mora string) {
	if !b.Exists {
		return xx, xx
	}
	return fmt.Sprintf("%d", b.AccentPhraseCount), fmt.Sprintf("%d", b.MoraCount)
}

func (b bgRef) fieldsIndices() (bgFwd, bgBwd, apFwd, apBwd, moraFwd, moraBwd string) {
	if !b.Exists || !b.HasIndices {
		return xx, xx, xx, xx, xx, xx
	}
	return fmt.Sprintf("%d", b.BGForward), fmt.Sprintf("%d", b.BGBackward),
		fmt.Sprintf("%d", b.APForward), fmt.Sprintf("%d", b.APBackward),
		fmt.Sprintf("%d", b.MoraForward), fmt.Sprintf("%d", b.MoraBackward)
}

// Label is one phoneme's full-context descriptor.
type Label struct {
	P2, P1, C, N1, N2 string

	HasA       bool
	RelAccent  int
	AFwd, ABwd int

	B, Cw, D wordRef

	E, F, G apRef

	H, I, J bgRef

	BreathGroups, AccentPhrases, Moras int
}

func ph(s string) string {
	if s == "" {
		return xx
	}
	return s
}

// String renders the HTS/jpcommon-format label line:
//
//	p2^p1-c+n1=n2/A:rel+fwd+bwd/B:pp-ct_cf/C:pp_ct+cf/D:pp+ct_cf/
//	E:m_a!q_p-p/F:m_a#q_p@fwd_bwd|fwd_bwd/G:m_a%q_p_p/
//	H:ap_m/I:ap-m@fwd+bwd&fwd-bwd|fwd+bwd/J:ap_m/K:bg+ap-m
func (l Label) String() string {
	phonemeBlock := fmt.Sprintf("%s^%s-%s+%s=%s", ph(l.P2), ph(l.P1), ph(l.C), ph(l.N1), ph(l.N2))

	aBlock := xx + "+" + xx + "+" + xx
	if l.HasA {
		aBlock = fmt.Sprintf("%d+%d+%d", l.RelAccent, l.AFwd, l.ABwd)
	}

	eMora, eAcc, eQ := l.E.fields3()
	ePause := l.E.fieldPause()
	fMora, fAcc, fQ := l.F.fields3()
	fAPFwd, fAPBwd, fMoraFwd, fMoraBwd := l.F.fieldsIndices()
	gMora, gAcc, gQ := l.G.fields3()
	gPause := l.G.fieldPause()

	hAP, hMora := l.H.fields2()
	iAP, iMora := l.I.fields2()
	iBGFwd, iBGBwd, iAPFwd, iAPBwd, iMoraFwd, iMoraBwd := l.I.fieldsIndices()
	jAP, jMora := l.J.fields2()

	return fmt.Sprintf(
		"%s/A:%s/B:%s-%s_%s/C:%s_%s+%s/D:%s+%s_%s/E:%s_%s!%s_%s-%s/F:%s_%s#%s_%s@%s_%s|%s_%s/G:%s_%s%%%s_%s_%s/H:%s_%s/I:%s-%s@%s+%s&%s-%s|%s+%s/J:%s_%s/K:%d+%d-%d",
		phonemeBlock, aBlock,
		l.B.fieldPOS(), l.B.fieldCType(), l.B.fieldCForm(),
		l.Cw.fieldPOS(), l.Cw.fieldCType(), l.Cw.fieldCForm(),
		l.D.fieldPOS(), l.D.fieldCType(), l.D.fieldCForm(),
		eMora, eAcc, eQ, ePause, ePause,
		fMora, fAcc, fQ, xx, fAPFwd, fAPBwd, fMoraFwd, fMoraBwd,
		gMora, gAcc, gQ, gPause, gPause,
		hAP, hMora,
		iAP, iMora, iBGFwd, iBGBwd, iAPFwd, iAPBwd, iMoraFwd, iMoraBwd,
		jAP, jMora,
		l.BreathGroups, l.AccentPhrases, l.Moras,
	)
}
