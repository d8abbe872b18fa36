package njd

// Preprocess runs the full rewrite pipeline over njd in order: pronunciation,
// digit, accent-phrase, accent-type, unvoiced-vowel. Each pass
// may mutate, silence, or insert nodes.
func Preprocess(njd *NJD) error {
	passes := []func(*NJD) error{
		ApplyPronunciationPass,
		ApplyDigitPass,
		ApplyAccentPhrasePass,
		ApplyAccentTypePass,
		ApplyUnvoicedVowelPass,
	}
	for _, pass := range passes {
		if err := pass(njd); err != nil {
			return err
		}
	}
	return nil
}

// FromTokens builds an initial NJD from tokenizer output, expanding each
// token's WordEntry against its observed surface.
func FromTokens(tokens []Token, lookup WordEntryLookup) (*NJD, error) {
	var nodes []*Node
	for _, tok := range tokens {
		entry, err := lookup.Lookup(tok.WordID, tok.Surface)
		if err != nil {
			return nil, err
		}
		for _, part := range entry.ExpandWithSurface(tok.Surface) {
			details := part.Details
			nodes = append(nodes, &Node{Surface: part.Surface, WordDetails: details})
		}
	}
	return New(nodes), nil
}

// Token is one tokenizer output unit: a surface form plus the dictionary
// word id the tokenizer resolved it to.
type Token struct {
	Surface string
	WordID  WordID
}
