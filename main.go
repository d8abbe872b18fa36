// Package jpfrontend turns Japanese text into full-context phonetic labels
// suitable for driving an HTS/Open-JTalk-style speech synthesis backend.
//
// The pipeline is: an external Tokenizer segments and look up text against a
// WordEntryLookup dictionary, njd.Preprocess runs the morpheme rewrite
// passes, utterance.Build folds the result into an Utterance tree, and
// jpcommon.GenerateLabels renders one full-context Label per phoneme.
// JPreprocess wires these stages together; Tokenizer and WordEntryLookup are
// supplied by the caller and are the only two external collaborators the
// frontend depends on.
//
// Example:
//
//	jp := jpfrontend.New(myTokenizer, myLookup)
//	labels, err := jp.TextToLabels("盆栽")
package jpfrontend

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
)

// NewFromConfigFile constructs a JPreprocess using clamp limits loaded from
// a YAML config file (internal/config.Load), falling back to the compiled-in
// defaults for anything the file omits.
func NewFromConfigFile(tokenizer Tokenizer, lookup njd.WordEntryLookup, path string) (*JPreprocess, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(tokenizer, lookup, cfg), nil
}
