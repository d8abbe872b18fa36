package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

// ApplyPronunciationPass resolves pronunciation for every node whose
// mora_size is still 0: parses its surface as a pronunciation, retags it
// Filler (or Kigou for a bare Touten), and otherwise marks it silent for
// removal. It then chains consecutive kana-parseable Filler nodes into one,
// and finally runs a small windowed post-fix scan.
func ApplyPronunciationPass(njd *NJD) error {
	for _, n := range njd.Nodes {
		if n.MoraSize() != 0 {
			continue
		}
		p, err := mora.Parse(n.Surface)
		if err != nil {
			return err
		}
		if len(p) == 0 {
			n.Reset()
			continue
		}
		n.Pron = p
		n.Read = p.ToPureString()
		n.POS = pos.POS{Kind: pos.Filler, Sub1: "*", Sub2: "*", Sub3: "*"}
		if p.IsTouten() {
			n.POS.Kind = pos.Kigou
		}
	}
	njd.RemoveSilent()

	chainKanaFillers(njd)
	njd.RemoveSilent()

	postFixScan(njd)
	return nil
}

// chainKanaFillers absorbs a run of consecutive kana-parseable Filler nodes
// into the first of the run, silencing the rest.
func chainKanaFillers(njd *NJD) {
	var headIndex = -1
	for i, n := range njd.Nodes {
		if n.POS.Kind == pos.Filler && isWhollyKanaParseable(n.Surface) {
			if headIndex >= 0 {
				head := njd.Nodes[headIndex]
				head.Surface += n.Surface
				head.Pron = append(head.Pron, n.Pron...)
				head.Read += n.Read
				n.Reset()
				continue
			}
			headIndex = i
			continue
		}
		headIndex = -1
	}
}

func isWhollyKanaParseable(s string) bool {
	p, err := mora.Parse(s)
	return err == nil && len(p) > 0 && !(len(p) == 1 && p[0].Enum.IsSentinel())
}

// postFixScan implements two windowed touch-ups over
// (prev, curr, next) triples.
func postFixScan(njd *NJD) {
	Each(njd.Nodes, func(w Window) {
		prev, curr, next, ok := w.Triple()
		if !ok {
			return
		}
		_ = prev

		if isSingleVoicedU(next.Pron) && next.POS.Kind == pos.Jodoushi &&
			(curr.POS.Kind == pos.Doushi || curr.POS.Kind == pos.Jodoushi) && curr.MoraSize() > 0 {
			next.Pron = mora.Pronunciation{{Enum: mora.Long, IsVoiced: true}}
		}

		if curr.POS.Kind == pos.Jodoushi && next.Surface == "？" {
			switch curr.Surface {
			case "です":
				curr.Pron = mora.Pronunciation{{Enum: mora.De, IsVoiced: true}, {Enum: mora.Su, IsVoiced: true}}
			case "ます":
				curr.Pron = mora.Pronunciation{{Enum: mora.Ma, IsVoiced: true}, {Enum: mora.Su, IsVoiced: true}}
			}
		}
	})
}

func isSingleVoicedU(p mora.Pronunciation) bool {
	return len(p) == 1 && p[0].Enum == mora.U && p[0].IsVoiced
}
