package njd

import "github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"

// ApplyAccentTypePass propagates each accent phrase's accent nucleus onto
// its head node, following the chain-rule accent-inheritance algebra, then
// applies the digit-specific calendar/counter accent adjustments.
func ApplyAccentTypePass(njd *NJD) error {
	nodes := njd.Nodes
	topIndex := 0
	moraSize := 0

	for i, curr := range nodes {
		chained := curr.ChainFlag != nil && *curr.ChainFlag && i > 0
		if !chained {
			topIndex = i
			moraSize = 0
			continue
		}

		prev := nodes[i-1]
		topAcc := nodes[topIndex].Acc()
		rule, ok := curr.ChainRule.Match(prev.POS.Kind.String())
		var result int
		if !ok {
			result = topAcc
		} else {
			result = resolveAccent(rule, topAcc, moraSize, curr.Acc())
		}
		nodes[topIndex].SetAcc(result)
		moraSize += curr.MoraSize()
	}

	applyDigitAccentAdjustments(nodes)
	return nil
}

func resolveAccent(rule pos.Rule, topAcc, moraSize, currAcc int) int {
	k := rule.Add
	switch rule.Accent {
	case pos.F1:
		return topAcc
	case pos.F2:
		if topAcc == 0 {
			return moraSize + k
		}
		return topAcc
	case pos.F3:
		if topAcc != 0 {
			return moraSize + k
		}
		return topAcc
	case pos.F4:
		return moraSize + k
	case pos.F5:
		return 0
	case pos.C1:
		return moraSize + currAcc
	case pos.C2:
		return moraSize + 1
	case pos.C3:
		return moraSize
	case pos.C4:
		return 0
	case pos.C5:
		return topAcc
	case pos.P1, pos.P2:
		if topAcc == 0 {
			return 0
		}
		return moraSize + currAcc
	case pos.P6:
		return 0
	case pos.P14:
		if topAcc != 0 {
			return moraSize + currAcc
		}
		return topAcc
	default:
		return topAcc
	}
}

// applyDigitAccentAdjustments implements the calendar-counter accent
// corrections, applied over adjacent digit-POS pairs with a chained
// accent phrase.
func applyDigitAccentAdjustments(nodes []*Node) {
	Each(nodes, func(w Window) {
		prev, curr, ok := w.Double()
		if !ok {
			return
		}
		if curr.Surface == "十" && curr.ChainFlag != nil && !*curr.ChainFlag {
			if next, hasNext := w.Next(); hasNext && isDigitNode(next) {
				curr.SetAcc(0)
			}
		}
		if !isDigitNode(prev) || curr.ChainFlag == nil || !*curr.ChainFlag {
			return
		}

		switch curr.Surface {
		case "十":
			next, hasNext := w.Next()
			isFiveSixEight := prev.Surface == "五" || prev.Surface == "六" || prev.Surface == "八"
			if isFiveSixEight && hasNext && isDigitNode(next) {
				prev.SetAcc(0)
			} else {
				prev.SetAcc(1)
			}
		case "百":
			switch prev.Surface {
			case "七":
				prev.SetAcc(2)
			case "三", "四", "九", "何":
				prev.SetAcc(1)
			default:
				prev.SetAcc(prev.MoraSize() + curr.MoraSize())
			}
		case "千", "万":
			prev.SetAcc(prev.MoraSize() + 1)
		case "億":
			switch prev.Surface {
			case "一", "六", "七", "八", "幾":
				prev.SetAcc(2)
			default:
				prev.SetAcc(1)
			}
		case "兆":
			switch prev.Surface {
			case "六", "七":
				prev.SetAcc(2)
			default:
				prev.SetAcc(1)
			}
		}
	})
}
