package mora

// Consonant enumerates the consonant phonemes used in the full-context
// label's phoneme block, plus the Long sentinel which is resolved by the
// label generator to a repetition of the immediately preceding phoneme.
type Consonant int

const (
	ConsNone Consonant = iota
	ConsK
	ConsKy
	ConsG
	ConsGy
	ConsS
	ConsSh
	ConsZ
	ConsJ
	ConsT
	ConsTy
	ConsCh
	ConsTs
	ConsD
	ConsDy
	ConsN
	ConsNy
	ConsH
	ConsHy
	ConsF
	ConsB
	ConsBy
	ConsP
	ConsPy
	ConsM
	ConsMy
	ConsY
	ConsR
	ConsRy
	ConsW
	ConsCl // geminate marker produced by the sokuon mora Xtsu
	ConsLong
	ConsV
)

var consonantStrings = map[Consonant]string{
	ConsNone: "", ConsK: "k", ConsKy: "ky", ConsG: "g", ConsGy: "gy",
	ConsS: "s", ConsSh: "sh", ConsZ: "z", ConsJ: "j",
	ConsT: "t", ConsTy: "ty", ConsCh: "ch", ConsTs: "ts",
	ConsD: "d", ConsDy: "dy", ConsN: "n", ConsNy: "ny",
	ConsH: "h", ConsHy: "hy", ConsF: "f",
	ConsB: "b", ConsBy: "by", ConsP: "p", ConsPy: "py",
	ConsM: "m", ConsMy: "my", ConsY: "y", ConsR: "r", ConsRy: "ry",
	ConsW: "w", ConsCl: "cl", ConsLong: "", ConsV: "v",
}

func (c Consonant) String() string { return consonantStrings[c] }

// Vowel enumerates the vowel phonemes, including the devoiced variants
// selected when a Mora's IsVoiced field is false.
type Vowel int

const (
	VowelNone Vowel = iota
	VA
	VI
	VU
	VE
	VO
	VIUnvoiced
	VUUnvoiced
	VN // syllabic nasal ん, rendered as phoneme "N"
)

var vowelStrings = map[Vowel]string{
	VowelNone: "", VA: "a", VI: "i", VU: "u", VE: "e", VO: "o",
	VIUnvoiced: "I", VUUnvoiced: "U", VN: "N",
}

func (v Vowel) String() string { return vowelStrings[v] }

// IsDevoicingEligible reports whether v is one of the two vowels that can be
// devoiced (plain or already-devoiced variants both count, since the
// devoicing pass may run on an already-unvoiced mora when re-evaluating).
func (v Vowel) IsDevoicingEligible() bool {
	return v == VI || v == VU || v == VIUnvoiced || v == VUUnvoiced
}

// Phoneme is the (Consonant, Vowel) pair a non-sentinel Mora maps to. Either
// half may be absent (ConsNone / VowelNone).
type Phoneme struct {
	Consonant Consonant
	Vowel     Vowel
}

// moraPhonemes maps every non-sentinel MoraEnum to its voiced-form phoneme
// pair. Devoicing is applied afterward by substituting the Unvoiced vowel
// variants - see MoraEnum.Phoneme.
var moraPhonemes = map[MoraEnum]Phoneme{
	A: {ConsNone, VA}, I: {ConsNone, VI}, U: {ConsNone, VU}, E: {ConsNone, VE}, O: {ConsNone, VO},

	Ka: {ConsK, VA}, Ki: {ConsK, VI}, Ku: {ConsK, VU}, Ke: {ConsK, VE}, Ko: {ConsK, VO},
	Kya: {ConsKy, VA}, Kyu: {ConsKy, VU}, Kyo: {ConsKy, VO},

	Ga: {ConsG, VA}, Gi: {ConsG, VI}, Gu: {ConsG, VU}, Ge: {ConsG, VE}, Go: {ConsG, VO},
	Gya: {ConsGy, VA}, Gyu: {ConsGy, VU}, Gyo: {ConsGy, VO},

	Sa: {ConsS, VA}, Shi: {ConsSh, VI}, Su: {ConsS, VU}, Se: {ConsS, VE}, So: {ConsS, VO},
	Sha: {ConsSh, VA}, Shu: {ConsSh, VU}, Sho: {ConsSh, VO},

	Za: {ConsZ, VA}, Zi: {ConsZ, VI}, Zu: {ConsZ, VU}, Ze: {ConsZ, VE}, Zo: {ConsZ, VO},
	Ja: {ConsJ, VA}, Ju: {ConsJ, VU}, Jo: {ConsJ, VO},

	Ta: {ConsT, VA}, Chi: {ConsCh, VI}, Tsu: {ConsTs, VU}, Te: {ConsT, VE}, To: {ConsT, VO},
	Cha: {ConsCh, VA}, Chu: {ConsCh, VU}, Cho: {ConsCh, VO},

	Da: {ConsD, VA}, Di: {ConsZ, VI}, Du: {ConsZ, VU}, De: {ConsD, VE}, Do: {ConsD, VO},

	Na: {ConsN, VA}, Ni: {ConsN, VI}, Nu: {ConsN, VU}, Ne: {ConsN, VE}, No: {ConsN, VO},
	Nya: {ConsNy, VA}, Nyu: {ConsNy, VU}, Nyo: {ConsNy, VO},

	Ha: {ConsH, VA}, Hi: {ConsHy, VI}, Fu: {ConsF, VU}, He: {ConsH, VE}, Ho: {ConsH, VO},
	Hya: {ConsHy, VA}, Hyu: {ConsHy, VU}, Hyo: {ConsHy, VO},

	Ba: {ConsB, VA}, Bi: {ConsBy, VI}, Bu: {ConsB, VU}, Be: {ConsB, VE}, Bo: {ConsB, VO},
	Bya: {ConsBy, VA}, Byu: {ConsBy, VU}, Byo: {ConsBy, VO},

	Pa: {ConsP, VA}, Pi: {ConsPy, VI}, Pu: {ConsP, VU}, Pe: {ConsP, VE}, Po: {ConsP, VO},
	Pya: {ConsPy, VA}, Pyu: {ConsPy, VU}, Pyo: {ConsPy, VO},

	Ma: {ConsM, VA}, Mi: {ConsMy, VI}, Mu: {ConsM, VU}, Me: {ConsM, VE}, Mo: {ConsM, VO},
	Mya: {ConsMy, VA}, Myu: {ConsMy, VU}, Myo: {ConsMy, VO},

	Ya: {ConsY, VA}, Yu: {ConsY, VU}, Yo: {ConsY, VO},

	Ra: {ConsR, VA}, Ri: {ConsRy, VI}, Ru: {ConsR, VU}, Re: {ConsR, VE}, Ro: {ConsR, VO},
	Rya: {ConsRy, VA}, Ryu: {ConsRy, VU}, Ryo: {ConsRy, VO},

	Wa: {ConsW, VA}, Wo: {ConsNone, VO}, N: {ConsNone, VN},

	Fa: {ConsF, VA}, Fi: {ConsF, VI}, Fe: {ConsF, VE}, Fo: {ConsF, VO},
	Ti: {ConsT, VI}, Tu: {ConsT, VU}, Di2: {ConsD, VI}, Du2: {ConsD, VU},
	Tsa: {ConsTs, VA}, Tsi: {ConsTs, VI}, Tse: {ConsTs, VE}, Tso: {ConsTs, VO},
	She: {ConsSh, VE}, Je: {ConsJ, VE}, Che: {ConsCh, VE},
	Wi: {ConsW, VI}, We: {ConsW, VE},
	Va: {ConsV, VA}, Vi: {ConsV, VI}, Vu: {ConsV, VU}, Ve: {ConsV, VE}, Vo: {ConsV, VO},

	Xtsu: {ConsCl, VowelNone},

	Gwa: {ConsGy, VA}, Kwa: {ConsKy, VA}, Xwa: {ConsW, VA}, Xke: {ConsK, VE},

	Long: {ConsLong, VowelNone},
}

// Phoneme returns the (Consonant, Vowel) pair for the mora, applying the
// devoicing substitution (I->IUnvoiced, U->UUnvoiced) when isVoiced is
// false and the vowel is devoicing-eligible. Sentinels (Touten, Question)
// return the zero Phoneme since they never reach the label generator.
func (e MoraEnum) Phoneme(isVoiced bool) Phoneme {
	p, ok := moraPhonemes[e]
	if !ok {
		return Phoneme{}
	}
	if !isVoiced {
		switch p.Vowel {
		case VI:
			p.Vowel = VIUnvoiced
		case VU:
			p.Vowel = VUUnvoiced
		}
	}
	return p
}
