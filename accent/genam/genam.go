// Package genam provides the phoneme inventory of General American English
// (see https://en.wikipedia.org/wiki/General_American_English): a mapping
// from IPA symbols to feature-geometry phonemes.
package genam

import (
	"github.com/heartmarshall/sound/accent"
	"github.com/heartmarshall/sound/phonology"
)

// Accent is the General American English accent table.
var Accent = accent.New("General American English", sounds)

// Phoneme resolves an IPA symbol to a GenAm phoneme, if one exists.
//
// For example, "p" resolves to the monosegment built by
// segment.Consonant([]segment.Mutator{segment.Voiceless, segment.Bilabial,
// segment.Stop}, "p").
func Phoneme(symbol string) (phonology.Phoneme, bool) {
	return Accent.Phoneme(symbol)
}

// Symbols returns the set of IPA symbols that comprise the GenAm accent.
func Symbols() []string {
	return Accent.Symbols()
}

// Phonemes returns the set of phonemes that comprise the GenAm accent.
func Phonemes() []phonology.Phoneme {
	return Accent.Phonemes()
}
