package jpfrontend

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
)

// Tokenizer is the sole external collaborator the linguistic frontend needs
// beyond a WordEntryLookup: something that segments input text and returns
// surface forms paired with a dictionary word id. Dictionary
// storage, encoding, and the tokenizer's own internals are explicitly out
// of scope - the frontend depends only on this interface.
type Tokenizer interface {
	Tokenize(text string) ([]njd.Token, error)
}

// TokenizerFunc adapts a plain function to a Tokenizer, the way
// http.HandlerFunc adapts a function to http.Handler.
type TokenizerFunc func(text string) ([]njd.Token, error)

func (f TokenizerFunc) Tokenize(text string) ([]njd.Token, error) { return f(text) }
