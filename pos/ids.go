package pos

// ID returns the two-digit POS id used in the B/C/D feature blocks of a
// full-context label. Returns (0, false) for the
// "xx" bucket (Others, Kigou, Unknown), matching the label generator's
// missing-value convention.
func (p POS) ID() (int, bool) {
	switch {
	case p.Kind == Others, p.Kind == Kigou, p.Kind == Unknown:
		return 0, false
	case p.Kind == Keiyoushi && (p.IsJiritsu() || p.IsHijiritsu()):
		return 1, true
	case p.IsMeishiGeneral():
		return 2, true
	case p.IsMeishiSahenSetsuzoku():
		return 3, true
	case p.IsMeishiDaimeishi():
		return 4, true
	case p.IsMeishiKazu():
		return 5, true
	case p.Kind == Fukushi:
		return 6, true
	case p.Kind == Rentaishi:
		return 7, true
	case p.Kind == Setsuzokushi:
		return 8, true
	case p.Kind == Kandoushi:
		return 9, true
	case p.Kind == Jodoushi:
		return 10, true
	case p.IsJoshiFukuJoshi():
		return 11, true
	case p.IsJoshiSetsuzokuJoshi():
		return 12, true
	case p.IsJoshiKakuJoshi():
		return 13, true
	case p.IsJoshiShuJoshi():
		return 14, true
	case p.IsMeishiSetsubiKeiyoudoushiGokan(),
		(p.Kind == Keiyoushi && p.IsSetsubi()),
		(p.Kind == Doushi && p.IsSetsubi()),
		(p.Kind == Meishi && p.IsSetsubi()):
		return 15, true
	case p.Kind == Settoushi:
		return 16, true
	case p.Kind == Doushi && p.IsHijiritsu():
		return 17, true
	case p.IsMeishiKoyuMeishi():
		return 18, true
	case p.IsMeishiKeiyoudoushiGokan():
		return 19, true
	case p.Kind == Doushi && p.IsJiritsu():
		return 20, true
	case p.IsMeishiHijiritsu():
		return 22, true
	case p.Kind == Joshi && p.IsJoshiKakariJoshi():
		return 24, true
	case p.Kind == Joshi:
		return 23, true
	case p.Kind == Filler:
		return 25, true
	default:
		return 0, false
	}
}
