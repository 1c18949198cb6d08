package phonology

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Callers that need to distinguish
// failure kinds match these with errors.Is; the error messages themselves
// are human-readable and safe to surface verbatim.
var (
	// ErrEmptyDescription is returned when a word description has no input.
	ErrEmptyDescription = errors.New("empty word description")
	// ErrUnknownSymbol is returned when an accent lookup has no phoneme for
	// a resolved symbol.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrBadSyllableStructure is returned when phonemes cannot form a valid
	// syllable: a missing or duplicate nucleus, or a dangling combining
	// character.
	ErrBadSyllableStructure = errors.New("bad syllable structure")
)

// UnknownSymbolError reports the symbol an accent could not resolve.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q has no phoneme", e.Symbol)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// SyllableStructureError reports why phonemes could not form a syllable.
type SyllableStructureError struct {
	Reason string
}

func (e *SyllableStructureError) Error() string {
	return "bad syllable structure: " + e.Reason
}

func (e *SyllableStructureError) Unwrap() error { return ErrBadSyllableStructure }
