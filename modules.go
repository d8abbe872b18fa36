package jpfrontend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jpcommon"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/njd"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/utterance"
)

// AnyJPreprocess is the method set a caller can depend on without pulling in
// the concrete JPreprocess type: a narrow dependency-inversion surface over
// the concrete struct that implements it.
type AnyJPreprocess interface {
	TextToLabels(text string) ([]jpcommon.Label, error)
	TextToLabelsWithContext(ctx context.Context, text string) ([]jpcommon.Label, error)
	Close() error
}

// JPreprocess is the facade of the linguistic frontend: it owns the two
// external collaborators carved out of core scope (a Tokenizer
// and a WordEntryLookup) plus the ambient tunables, and exposes
// TextToLabels/TextToLabelsWithContext as the single entry point a caller
// needs. Safe for concurrent use by multiple goroutines once
// constructed - no shared mutable pass state, each call owns its own
// NJD/Utterance.
type JPreprocess struct {
	Tokenizer Tokenizer
	Lookup    njd.WordEntryLookup
	Limits    config.Limits

	colorDiagnostics bool
	debug            bool
}

// New constructs a JPreprocess with the compiled-in default clamp limits.
func New(tokenizer Tokenizer, lookup njd.WordEntryLookup) *JPreprocess {
	return &JPreprocess{Tokenizer: tokenizer, Lookup: lookup, Limits: config.DefaultLimits()}
}

// NewWithConfig constructs a JPreprocess using a loaded Config's clamp
// limits instead of the compiled-in defaults.
func NewWithConfig(tokenizer Tokenizer, lookup njd.WordEntryLookup, cfg config.Config) *JPreprocess {
	return &JPreprocess{Tokenizer: tokenizer, Lookup: lookup, Limits: cfg.Limits}
}

// WithColorDiagnostics opts this handle into gookit/color-rendered
// diagnostic output from Diagnose (see diagnostics.go). Returns j for
// chaining.
func (j *JPreprocess) WithColorDiagnostics(on bool) *JPreprocess {
	j.colorDiagnostics = on
	return j
}

// MustNew panics if tokenizer or lookup is nil; convenience for callers
// that treat a misconfigured handle as a programmer error.
func MustNew(tokenizer Tokenizer, lookup njd.WordEntryLookup) *JPreprocess {
	if tokenizer == nil || lookup == nil {
		panic("jpfrontend: MustNew requires a non-nil Tokenizer and WordEntryLookup")
	}
	return New(tokenizer, lookup)
}

// TextToLabels runs the full pipeline (tokenize -> NJD -> rewrite passes ->
// Utterance -> labels) over text.
func (j *JPreprocess) TextToLabels(text string) ([]jpcommon.Label, error) {
	return j.TextToLabelsWithContext(context.Background(), text)
}

// TextToLabelsWithContext is TextToLabels with early-exit on ctx
// cancellation between pipeline stages. The pipeline itself has no
// suspension points; ctx is only checked at stage boundaries so a
// caller processing very long input can still abandon it promptly.
func (j *JPreprocess) TextToLabelsWithContext(ctx context.Context, text string) ([]jpcommon.Label, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens, err := j.Tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := njd.FromTokens(tokens, j.Lookup)
	if err != nil {
		return nil, fmt.Errorf("word lookup: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := njd.Preprocess(doc); err != nil {
		return nil, fmt.Errorf("njd preprocess: %w", err)
	}
	if j.debug {
		dumpNJD(doc)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := utterance.Build(doc)
	if j.debug {
		dumpUtterance(u)
	}
	return jpcommon.GenerateLabels(u, j.Limits), nil
}

// Close releases nothing today (the tokenizer/lookup are owned by the
// caller), but is kept as part of the interface so a future stateful
// Tokenizer implementation (e.g. one holding a subprocess or a dictionary
// mmap) has somewhere to hang its teardown without breaking callers.
func (j *JPreprocess) Close() error {
	return nil
}

// SetLogger installs l as the process-wide logger for every pipeline stage
// (njd, utterance, jpcommon each expose their own package-level
// SetLogger/GetLogger pair - see logger.go). Silence is opt-out, not opt-in.
func SetLogger(l zerolog.Logger) {
	njd.SetLogger(l)
	utterance.SetLogger(l)
	jpcommon.SetLogger(l)
	logger = l
}
