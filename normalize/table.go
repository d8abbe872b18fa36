package normalize

// halfwidthKatakana maps JIS X 0201 half-width kana (and the half-width
// forms of the five kana punctuation marks) to their full-width
// counterparts. The two half-width diacritic marks (U+FF9E, U+FF9F) are not
// in this table: they are handled as combining marks in normalize.go.
var halfwidthKatakana = map[rune]rune{
	0xFF61: 0x3002, // 。
	0xFF62: 0x300C, // 「
	0xFF63: 0x300D, // 」
	0xFF64: 0x3001, // 、
	0xFF65: 0x30FB, // ・
	0xFF66: 0x30F2, // ヲ
	0xFF67: 0x30A1, // ァ
	0xFF68: 0x30A3, // ィ
	0xFF69: 0x30A5, // ゥ
	0xFF6A: 0x30A7, // ェ
	0xFF6B: 0x30A9, // ォ
	0xFF6C: 0x30E3, // ャ
	0xFF6D: 0x30E5, // ュ
	0xFF6E: 0x30E7, // ョ
	0xFF6F: 0x30C3, // ッ
	0xFF70: 0x30FC, // ー
	0xFF71: 0x30A2, // ア
	0xFF72: 0x30A4, // イ
	0xFF73: 0x30A6, // ウ
	0xFF74: 0x30A8, // エ
	0xFF75: 0x30AA, // オ
	0xFF76: 0x30AB, // カ
	0xFF77: 0x30AD, // キ
	0xFF78: 0x30AF, // ク
	0xFF79: 0x30B1, // ケ
	0xFF7A: 0x30B3, // コ
	0xFF7B: 0x30B5, // サ
	0xFF7C: 0x30B7, // シ
	0xFF7D: 0x30B9, // ス
	0xFF7E: 0x30BB, // セ
	0xFF7F: 0x30BD, // ソ
	0xFF80: 0x30BF, // タ
	0xFF81: 0x30C1, // チ
	0xFF82: 0x30C4, // ツ
	0xFF83: 0x30C6, // テ
	0xFF84: 0x30C8, // ト
	0xFF85: 0x30CA, // ナ
	0xFF86: 0x30CB, // ニ
	0xFF87: 0x30CC, // ヌ
	0xFF88: 0x30CD, // ネ
	0xFF89: 0x30CE, // ノ
	0xFF8A: 0x30CF, // ハ
	0xFF8B: 0x30D2, // ヒ
	0xFF8C: 0x30D5, // フ
	0xFF8D: 0x30D8, // ヘ
	0xFF8E: 0x30DB, // ホ
	0xFF8F: 0x30DE, // マ
	0xFF90: 0x30DF, // ミ
	0xFF91: 0x30E0, // ム
	0xFF92: 0x30E1, // メ
	0xFF93: 0x30E2, // モ
	0xFF94: 0x30E4, // ヤ
	0xFF95: 0x30E6, // ユ
	0xFF96: 0x30E8, // ヨ
	0xFF97: 0x30E9, // ラ
	0xFF98: 0x30EA, // リ
	0xFF99: 0x30EB, // ル
	0xFF9A: 0x30EC, // レ
	0xFF9B: 0x30ED, // ロ
	0xFF9C: 0x30EF, // ワ
	0xFF9D: 0x30F3, // ン
}

// voicedRuneMap applies a dakuten (U+3099/U+309B/U+FF9E) to the kana it
// follows. Katakana and hiragana rows are both covered since the
// normalization pre-pass runs before any script-specific handling.
var voicedRuneMap = map[rune]rune{
	0x30AB: 0x30AC, 0x30AD: 0x30AE, 0x30AF: 0x30B0, 0x30B1: 0x30B2, 0x30B3: 0x30B4, // カキクケコ
	0x30B5: 0x30B6, 0x30B7: 0x30B8, 0x30B9: 0x30BA, 0x30BB: 0x30BC, 0x30BD: 0x30BE, // サシスセソ
	0x30BF: 0x30C0, 0x30C1: 0x30C2, 0x30C4: 0x30C5, 0x30C6: 0x30C7, 0x30C8: 0x30C9, // タチツテト
	0x30CF: 0x30D0, 0x30D2: 0x30D3, 0x30D5: 0x30D6, 0x30D8: 0x30D9, 0x30DB: 0x30DC, // ハヒフヘホ
	0x30A6: 0x30F4, // ウ → ヴ

	0x304B: 0x304C, 0x304D: 0x304E, 0x304F: 0x3050, 0x3051: 0x3052, 0x3053: 0x3054, // かきくけこ
	0x3055: 0x3056, 0x3057: 0x3058, 0x3059: 0x305A, 0x305B: 0x305C, 0x305D: 0x305E, // さしすせそ
	0x305F: 0x3060, 0x3061: 0x3062, 0x3064: 0x3065, 0x3066: 0x3067, 0x3068: 0x3069, // たちつてと
	0x306F: 0x3070, 0x3072: 0x3073, 0x3075: 0x3076, 0x3078: 0x3079, 0x307B: 0x307C, // はひふへほ
	0x3046: 0x3094, // う → ゔ
}

// semivoicedRuneMap applies a handakuten (U+309A/U+309C/U+FF9F). Only the
// H-row kana have a semi-voiced counterpart.
var semivoicedRuneMap = map[rune]rune{
	0x30CF: 0x30D1, 0x30D2: 0x30D4, 0x30D5: 0x30D7, 0x30D8: 0x30DA, 0x30DB: 0x30DD, // ハヒフヘホ
	0x306F: 0x3071, 0x3072: 0x3074, 0x3075: 0x3077, 0x3078: 0x307A, 0x307B: 0x307D, // はひふへほ
}
