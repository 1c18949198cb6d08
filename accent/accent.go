// Package accent defines the contract between phoneme inventories and the
// rest of the library. An accent is an immutable symbol-to-phoneme table; the
// word parser only ever sees its Lookup function, so how a table is built
// (static map, computed, loaded from data) is the accent's own business.
package accent

import (
	"sort"

	"github.com/heartmarshall/sound/phonology"
)

// Lookup resolves an IPA symbol to a phoneme. It must be side-effect-free
// and reentrant: the parser may invoke it once per symbol with no ordering
// guarantee beyond left-to-right scan order.
type Lookup func(symbol string) (phonology.Phoneme, bool)

// Accent is an immutable symbol→phoneme table.
type Accent struct {
	name   string
	sounds map[string]phonology.Phoneme
}

// New builds an accent from a sound table. The table is copied; later
// mutation of the argument does not affect the accent.
func New(name string, sounds map[string]phonology.Phoneme) Accent {
	copied := make(map[string]phonology.Phoneme, len(sounds))
	for sym, p := range sounds {
		copied[sym] = p
	}
	return Accent{name: name, sounds: copied}
}

// Name returns the accent's display name.
func (a Accent) Name() string { return a.name }

// Phoneme resolves an IPA symbol to one of the accent's phonemes.
func (a Accent) Phoneme(symbol string) (phonology.Phoneme, bool) {
	p, ok := a.sounds[symbol]
	return p, ok
}

// Lookup returns the accent's lookup function in the form the word parser
// consumes.
func (a Accent) Lookup() Lookup {
	return a.Phoneme
}

// Symbols returns the sorted set of IPA symbols the accent defines. It is
// meant for introspection and testing, not parsing.
func (a Accent) Symbols() []string {
	out := make([]string, 0, len(a.sounds))
	for sym := range a.sounds {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Phonemes returns the accent's phonemes in symbol order. It is meant for
// introspection and testing, not parsing.
func (a Accent) Phonemes() []phonology.Phoneme {
	syms := a.Symbols()
	out := make([]phonology.Phoneme, 0, len(syms))
	for _, sym := range syms {
		out = append(out, a.sounds[sym])
	}
	return out
}
