package mora

// pattern is one leftmost-longest-match entry: Text is the literal kana (or
// halfwidth alphabetic) span, Morae is the sequence of MoraEnum it expands
// to (length 1 for almost everything; alphabet letters expand to their
// Japanese letter-name reading, e.g. "x" -> E, Xtsu, Ku, Su).
type pattern struct {
	Text  string
	Morae []MoraEnum
}

// moraSpelling pairs a single MoraEnum with its katakana and hiragana
// spelling, used to build both the katakana and hiragana dictionaries from
// one source of truth. Hira == "" means the mora has no ordinary hiragana
// spelling (loanword-only sounds).
type moraSpelling struct {
	Enum MoraEnum
	Kana string
	Hira string
}

var moraSpellings = []moraSpelling{
	{A, "ア", "あ"}, {I, "イ", "い"}, {U, "ウ", "う"}, {E, "エ", "え"}, {O, "オ", "お"},

	{Ka, "カ", "か"}, {Ki, "キ", "き"}, {Ku, "ク", "く"}, {Ke, "ケ", "け"}, {Ko, "コ", "こ"},
	{Kya, "キャ", "きゃ"}, {Kyu, "キュ", "きゅ"}, {Kyo, "キョ", "きょ"},

	{Ga, "ガ", "が"}, {Gi, "ギ", "ぎ"}, {Gu, "グ", "ぐ"}, {Ge, "ゲ", "げ"}, {Go, "ゴ", "ご"},
	{Gya, "ギャ", "ぎゃ"}, {Gyu, "ギュ", "ぎゅ"}, {Gyo, "ギョ", "ぎょ"},

	{Sa, "サ", "さ"}, {Shi, "シ", "し"}, {Su, "ス", "す"}, {Se, "セ", "せ"}, {So, "ソ", "そ"},
	{Sha, "シャ", "しゃ"}, {Shu, "シュ", "しゅ"}, {Sho, "ショ", "しょ"},

	{Za, "ザ", "ざ"}, {Zi, "ジ", "じ"}, {Zu, "ズ", "ず"}, {Ze, "ゼ", "ぜ"}, {Zo, "ゾ", "ぞ"},
	{Ja, "ジャ", "じゃ"}, {Ju, "ジュ", "じゅ"}, {Jo, "ジョ", "じょ"},

	{Ta, "タ", "た"}, {Chi, "チ", "ち"}, {Tsu, "ツ", "つ"}, {Te, "テ", "て"}, {To, "ト", "と"},
	{Cha, "チャ", "ちゃ"}, {Chu, "チュ", "ちゅ"}, {Cho, "チョ", "ちょ"},

	{Da, "ダ", "だ"}, {Di, "ヂ", "ぢ"}, {Du, "ヅ", "づ"}, {De, "デ", "で"}, {Do, "ド", "ど"},

	{Na, "ナ", "な"}, {Ni, "ニ", "に"}, {Nu, "ヌ", "ぬ"}, {Ne, "ネ", "ね"}, {No, "ノ", "の"},
	{Nya, "ニャ", "にゃ"}, {Nyu, "ニュ", "にゅ"}, {Nyo, "ニョ", "にょ"},

	{Ha, "ハ", "は"}, {Hi, "ヒ", "ひ"}, {Fu, "フ", "ふ"}, {He, "ヘ", "へ"}, {Ho, "ホ", "ほ"},
	{Hya, "ヒャ", "ひゃ"}, {Hyu, "ヒュ", "ひゅ"}, {Hyo, "ヒョ", "ひょ"},

	{Ba, "バ", "ば"}, {Bi, "ビ", "び"}, {Bu, "ブ", "ぶ"}, {Be, "ベ", "べ"}, {Bo, "ボ", "ぼ"},
	{Bya, "ビャ", "びゃ"}, {Byu, "ビュ", "びゅ"}, {Byo, "ビョ", "びょ"},

	{Pa, "パ", "ぱ"}, {Pi, "ピ", "ぴ"}, {Pu, "プ", "ぷ"}, {Pe, "ペ", "ぺ"}, {Po, "ポ", "ぽ"},
	{Pya, "ピャ", "ぴゃ"}, {Pyu, "ピュ", "ぴゅ"}, {Pyo, "ピョ", "ぴょ"},

	{Ma, "マ", "ま"}, {Mi, "ミ", "み"}, {Mu, "ム", "む"}, {Me, "メ", "め"}, {Mo, "モ", "も"},
	{Mya, "ミャ", "みゃ"}, {Myu, "ミュ", "みゅ"}, {Myo, "ミョ", "みょ"},

	{Ya, "ヤ", "や"}, {Yu, "ユ", "ゆ"}, {Yo, "ヨ", "よ"},

	{Ra, "ラ", "ら"}, {Ri, "リ", "り"}, {Ru, "ル", "る"}, {Re, "レ", "れ"}, {Ro, "ロ", "ろ"},
	{Rya, "リャ", "りゃ"}, {Ryu, "リュ", "りゅ"}, {Ryo, "リョ", "りょ"},

	{Wa, "ワ", "わ"}, {Wo, "ヲ", "を"}, {N, "ン", "ん"},

	// Loanword-only sounds: katakana spellings, no native hiragana form.
	{Fa, "ファ", ""}, {Fi, "フィ", ""}, {Fe, "フェ", ""}, {Fo, "フォ", ""},
	{Ti, "ティ", ""}, {Tu, "トゥ", ""}, {Di2, "ディ", ""}, {Du2, "ドゥ", ""},
	{Tsa, "ツァ", ""}, {Tsi, "ツィ", ""}, {Tse, "ツェ", ""}, {Tso, "ツォ", ""},
	{She, "シェ", ""}, {Je, "ジェ", ""}, {Che, "チェ", ""},
	{Wi, "ウィ", ""}, {We, "ウェ", ""},
	{Va, "ヴァ", ""}, {Vi, "ヴィ", ""}, {Vu, "ヴ", ""}, {Ve, "ヴェ", ""}, {Vo, "ヴォ", ""},

	{Xtsu, "ッ", "っ"},

	{Long, "ー", ""},
}

// irregularSpellings are the 4 irregular katakana combinations named by the
// spec; only Xwa has a hiragana spelling (ゎ).
var irregularSpellings = []moraSpelling{
	{Gwa, "グァ", ""},
	{Kwa, "クァ", ""},
	{Xwa, "ヮ", "ゎ"},
	{Xke, "ヶ", ""},
}

// alphabetReadings maps each halfwidth letter (lowercase) to the mora
// sequence of its Japanese letter-name reading. Uppercase letters share the
// same reading.
var alphabetReadings = map[byte][]MoraEnum{
	'a': {E, Long},
	'b': {Bi, Long},
	'c': {Shi, Long},
	'd': {Di2, Long},
	'e': {I, Long},
	'f': {E, Fu},
	'g': {Zi, Long},
	'h': {E, I, Chi},
	'i': {A, I},
	'j': {Je, Long},
	'k': {Ke, Long},
	'l': {E, Ru},
	'm': {E, Mu},
	'n': {E, Nu},
	'o': {O, Long},
	'p': {Pi, Long},
	'q': {Kyu, Long},
	'r': {A, Long, Ru},
	's': {E, Su},
	't': {Ti, Long},
	'u': {Yu, Long},
	'v': {Bu, I},
	'w': {Da, Bu, Ryu, Long},
	'x': {E, Xtsu, Ku, Su},
	'y': {Wa, I},
	'z': {Ze, Xtsu, To},
}

var (
	katakanaPatterns []pattern
	hiraganaPatterns []pattern
	alphabetPatterns []pattern
	allPatterns      []pattern
)

func init() {
	add := func(dst *[]pattern, text string, morae ...MoraEnum) {
		if text == "" {
			return
		}
		*dst = append(*dst, pattern{Text: text, Morae: morae})
	}

	for _, s := range moraSpellings {
		add(&katakanaPatterns, s.Kana, s.Enum)
		add(&hiraganaPatterns, s.Hira, s.Enum)
	}
	for _, s := range irregularSpellings {
		add(&katakanaPatterns, s.Kana, s.Enum)
		add(&hiraganaPatterns, s.Hira, s.Enum)
	}
	for c := byte('a'); c <= 'z'; c++ {
		lower := string(c)
		upper := string(c - 'a' + 'A')
		morae := alphabetReadings[c]
		add(&alphabetPatterns, lower, morae...)
		add(&alphabetPatterns, upper, morae...)
	}

	allPatterns = make([]pattern, 0, len(katakanaPatterns)+len(hiraganaPatterns)+len(alphabetPatterns))
	allPatterns = append(allPatterns, katakanaPatterns...)
	allPatterns = append(allPatterns, hiraganaPatterns...)
	allPatterns = append(allPatterns, alphabetPatterns...)

	// Leftmost-longest match requires trying longer patterns first.
	sortPatternsByLengthDesc(allPatterns)
}

func sortPatternsByLengthDesc(p []pattern) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && len(p[j].Text) > len(p[j-1].Text); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
}
