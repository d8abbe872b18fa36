package jpfrontend

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jpcommon"
)

// SplitSentences splits text into sentences using uniseg's sentence-boundary
// algorithm, trimming surrounding whitespace. TextToLabelsBatch uses this to
// process long input one sentence at a time rather than as a single
// utterance spanning the whole text.
func SplitSentences(text string) []string {
	if len(text) == 0 {
		return nil
	}
	var sentences []string
	remaining := text
	state := -1
	for len(remaining) > 0 {
		sentence, rest, newState := uniseg.FirstSentenceInString(remaining, state)
		if s := strings.TrimSpace(sentence); s != "" {
			sentences = append(sentences, s)
		}
		remaining = rest
		state = newState
	}
	return sentences
}

// SentenceResult is one sentence's outcome within a TextToLabelsBatch call.
type SentenceResult struct {
	Sentence string
	Labels   []jpcommon.Label
	Err      error
}

// TextToLabelsBatch runs TextToLabels independently over each sentence of
// text (via SplitSentences) and returns one SentenceResult per sentence.
// Splitting first keeps one malformed sentence from failing an entire
// multi-sentence document: a sentence's own error is recorded on its
// SentenceResult instead of aborting the whole batch.
func (j *JPreprocess) TextToLabelsBatch(text string) []SentenceResult {
	sentences := SplitSentences(text)
	results := make([]SentenceResult, 0, len(sentences))
	for _, s := range sentences {
		labels, err := j.TextToLabels(s)
		results = append(results, SentenceResult{Sentence: s, Labels: labels, Err: err})
	}
	return results
}
