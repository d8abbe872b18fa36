// Package jperror defines the tagged error kinds shared by every stage of
// the linguistic frontend pipeline (mora parsing, POS/CType/CForm parsing,
// dictionary lookup, full-context label generation).
package jperror

import "fmt"

// Kind tags the category of failure so callers can branch with errors.As
// instead of string-matching messages.
type Kind int

const (
	// KindInternal covers invariant violations that should never surface
	// from well-formed input; present mainly so every Error has a Kind.
	KindInternal Kind = iota
	// KindPronunciationParse is returned by mora.Parse when a pronunciation
	// string cannot be consumed contiguously by the mora dictionary.
	KindPronunciationParse
	// KindPOSParse is returned when an unknown POS tag is encountered at a
	// given sub-level of the four-column POS string.
	KindPOSParse
	// KindCFormParse is returned for an unrecognized conjugation form.
	KindCFormParse
	// KindCTypeParse is returned for an unrecognized conjugation type.
	KindCTypeParse
	// KindWordNotFound is returned by a WordEntryLookup implementation (or
	// wrapped by the caller) when a word id cannot be resolved.
	KindWordNotFound
	// KindMoraSizeMismatch is returned when reconstructing a Pronunciation
	// with an explicit mora-size assertion that does not hold.
	KindMoraSizeMismatch
	// KindIO covers any failure reading external resources (e.g. the
	// optional YAML config file).
	KindIO
	// KindLookup is a generic dictionary-lookup failure that is not more
	// precisely KindWordNotFound.
	KindLookup
)

func (k Kind) String() string {
	switch k {
	case KindPronunciationParse:
		return "PronunciationParseError"
	case KindPOSParse:
		return "POSParseError"
	case KindCFormParse:
		return "CFormParseError"
	case KindCTypeParse:
		return "CTypeParseError"
	case KindWordNotFound:
		return "WordNotFound"
	case KindMoraSizeMismatch:
		return "MoraSizeMismatch"
	case KindIO:
		return "Io"
	case KindLookup:
		return "Lookup"
	default:
		return "Internal"
	}
}

// Error is the single user-visible error type returned across package
// boundaries. Context carries whatever data is most useful for the Kind
// (the unparsed segment, the offending word id, the two mora-size ints...).
type Error struct {
	Kind    Kind
	Context any
	Err     error
}

// New constructs an Error. wrapped may be nil.
func New(kind Kind, context any, wrapped error) *Error {
	return &Error{Kind: kind, Context: context, Err: wrapped}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v (%v)", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, jperror.New(kind, nil, nil)) style Kind checks,
// matching only on Kind (Context/Err are ignored for comparison purposes).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf reports the Kind carried by err, if err (or something it wraps) is
// a *Error. Returns (KindInternal, false) otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	for err != nil {
		if ee, ok := err.(*Error); ok {
			e = ee
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return KindInternal, false
	}
	return e.Kind, true
}
