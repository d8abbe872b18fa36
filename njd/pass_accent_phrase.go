package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

// ApplyAccentPhrasePass assigns every node's still-unresolved ChainFlag
// (true = continues the previous accent phrase) by testing the ordered
// rule table against (prev.POS, curr.POS); first match wins.
func ApplyAccentPhrasePass(njd *NJD) error {
	Each(njd.Nodes, func(w Window) {
		curr := w.Curr()
		if curr.ChainFlag != nil {
			return
		}
		prev, ok := w.Prev()
		if !ok {
			curr.ChainFlag = boolPtr(false)
			return
		}
		flag := decideChainFlag(prev, curr)
		curr.ChainFlag = boolPtr(flag)
	})
	return nil
}

func decideChainFlag(prev, curr *Node) bool {
	switch {
	case curr.POS.IsSetsubi():
		return true
	case prev.POS.Kind == pos.Meishi && curr.POS.IsMeishiKoyuMeishiMei():
		return false
	case prev.POS.IsMeishiKoyuMeishiSei() && curr.POS.Kind == pos.Meishi:
		return false
	case curr.POS.Kind == pos.Settoushi:
		return false
	case prev.POS.Kind == pos.Kigou || curr.POS.Kind == pos.Kigou:
		return false
	case prev.POS.Kind == pos.Meishi && (curr.POS.Kind == pos.Doushi || curr.POS.Kind == pos.Keiyoushi || curr.POS.IsMeishiKeiyoudoushiGokan()):
		return false
	case prev.POS.Kind == pos.Doushi && prev.CForm.IsRenyou() && curr.POS.Kind == pos.Doushi && curr.POS.IsHijiritsu():
		return true
	case (prev.POS.Kind == pos.Doushi || prev.POS.Kind == pos.Keiyoushi) && prev.CForm.IsRenyou() && curr.POS.Kind == pos.Keiyoushi && curr.POS.IsHijiritsu():
		return true
	case prev.POS.IsJoshiSetsuzokuJoshi() && (prev.Surface == "て" || prev.Surface == "で") && curr.POS.Kind == pos.Keiyoushi && curr.POS.IsHijiritsu():
		return true
	case prev.POS.IsSetsubi() && curr.POS.Kind == pos.Meishi:
		return false
	case isJodoushiOrJoshi(prev.POS) && isJodoushiOrJoshi(curr.POS):
		return true
	case isJodoushiOrJoshi(prev.POS) && !isJodoushiOrJoshi(curr.POS):
		return false
	case isJodoushiOrJoshi(curr.POS):
		return true
	case prev.POS.IsMeishiFukushiKanou() || curr.POS.IsMeishiFukushiKanou():
		return false
	case isAdverbialKind(prev.POS.Kind) || isAdverbialKind(curr.POS.Kind):
		return false
	case prev.POS.Kind == pos.Doushi && (curr.POS.Kind == pos.Keiyoushi || curr.POS.Kind == pos.Meishi):
		return false
	case prev.POS.IsMeishiKeiyoudoushiGokan() && curr.POS.Kind == pos.Meishi:
		return false
	case prev.POS.Kind == pos.Keiyoushi && curr.POS.Kind == pos.Meishi:
		return false
	case prev.POS.Kind == pos.Meishi && curr.POS.Kind == pos.Meishi:
		return true
	default:
		return true
	}
}

func isJodoushiOrJoshi(p pos.POS) bool {
	return p.Kind == pos.Jodoushi || p.Kind == pos.Joshi
}

func isAdverbialKind(k pos.Kind) bool {
	return k == pos.Fukushi || k == pos.Setsuzokushi || k == pos.Rentaishi
}
