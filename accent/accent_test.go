package accent_test

import (
	"sort"
	"testing"

	"github.com/heartmarshall/sound/accent"
	"github.com/heartmarshall/sound/phonology"
)

func testSounds() map[string]phonology.Phoneme {
	return map[string]phonology.Phoneme{
		"b": phonology.Mono(phonology.Segment{Symbol: "b"}),
		"a": phonology.Mono(phonology.Segment{Symbol: "a"}),
	}
}

func TestAccentLookup(t *testing.T) {
	a := accent.New("test", testSounds())

	p, ok := a.Phoneme("b")
	if !ok || p.Symbol() != "b" {
		t.Errorf("Phoneme(b) = (%v, %v), want the b phoneme", p, ok)
	}
	if _, ok := a.Phoneme("z"); ok {
		t.Error("Phoneme(z) should not resolve")
	}

	// Lookup is the same resolution behind the function type the
	// parser takes.
	lookup := a.Lookup()
	if _, ok := lookup("a"); !ok {
		t.Error("Lookup()(a) should resolve")
	}
}

func TestAccentCopiesTable(t *testing.T) {
	sounds := testSounds()
	a := accent.New("test", sounds)

	delete(sounds, "b")
	if _, ok := a.Phoneme("b"); !ok {
		t.Error("mutating the source table must not affect the accent")
	}
}

func TestAccentSymbolsSorted(t *testing.T) {
	a := accent.New("test", testSounds())

	syms := a.Symbols()
	if !sort.StringsAreSorted(syms) {
		t.Errorf("Symbols() = %v, want sorted", syms)
	}
	if len(syms) != 2 {
		t.Errorf("Symbols() returned %d entries, want 2", len(syms))
	}

	phonemes := a.Phonemes()
	if len(phonemes) != 2 || phonemes[0].Symbol() != "a" {
		t.Errorf("Phonemes() = %v, want symbol order", phonemes)
	}
}

func TestAccentName(t *testing.T) {
	if got := accent.New("test", nil).Name(); got != "test" {
		t.Errorf("Name() = %q, want test", got)
	}
}
