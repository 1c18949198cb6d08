package rhyme_test

import (
	"testing"

	"github.com/heartmarshall/sound/accent/genam"
	"github.com/heartmarshall/sound/phonology"
	"github.com/heartmarshall/sound/rhyme"
	"github.com/heartmarshall/sound/words"
)

// lastSyllable parses a word description and returns its final syllable.
func lastSyllable(t *testing.T, desc string) phonology.Syllable {
	t.Helper()
	word, err := words.Parse(desc, genam.Phoneme)
	if err != nil {
		t.Fatalf("parse %q: %v", desc, err)
	}
	return word.Syllables[len(word.Syllables)-1]
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"kæt", "hæt"},
		{"kæt", "dɔɡ"},
		{"ˈhɛ.lo͡ʊ", "ˈjɛ.lo͡ʊ"},
		{"tɛst", "tɛst"},
	}

	for _, pair := range pairs {
		a, b := lastSyllable(t, pair[0]), lastSyllable(t, pair[1])
		score := rhyme.Rhyme(a, b)
		if score < 0 || score > 1 {
			t.Errorf("Rhyme(%q, %q) = %v, want within [0, 1]", pair[0], pair[1], score)
		}
		if got := rhyme.Rhyme(b, a); got != score {
			t.Errorf("Rhyme not symmetric for %q, %q: %v vs %v", pair[0], pair[1], score, got)
		}
	}
}

func TestRhymeIdentical(t *testing.T) {
	a := lastSyllable(t, "kæt")
	b := lastSyllable(t, "hæt")

	// Same rhyme, different onset: a perfect score.
	if got := rhyme.Rhyme(a, b); got != 1.0 {
		t.Errorf("Rhyme(kæt, hæt) = %v, want 1", got)
	}
	if got := rhyme.Rhyme(a, a); got != 1.0 {
		t.Errorf("Rhyme(x, x) = %v, want 1", got)
	}
}

func TestRhymeOrdersCandidates(t *testing.T) {
	target := lastSyllable(t, "kæt")
	near := rhyme.Rhyme(target, lastSyllable(t, "kæd"))
	far := rhyme.Rhyme(target, lastSyllable(t, "dɔɡ"))

	if near <= far {
		t.Errorf("kæd (%v) should outscore dɔɡ (%v) against kæt", near, far)
	}
	if near == 1.0 {
		t.Errorf("kæd against kæt = %v, want below 1", near)
	}
}

func TestAssonance(t *testing.T) {
	a := lastSyllable(t, "kæt")
	b := lastSyllable(t, "mæp")

	if got := rhyme.Assonance(a, b); got != 1.0 {
		t.Errorf("Assonance with identical nuclei = %v, want 1", got)
	}
	if got := rhyme.Rhyme(a, b); got == 1.0 {
		t.Error("different codas should keep full Rhyme below 1")
	}
}

func TestAlliteration(t *testing.T) {
	a := lastSyllable(t, "kæt")
	b := lastSyllable(t, "kʌp")
	c := lastSyllable(t, "mæt")

	if got := rhyme.Alliteration(a, b); got != 1.0 {
		t.Errorf("Alliteration with identical onsets = %v, want 1", got)
	}
	if got := rhyme.Alliteration(a, c); got == 1.0 {
		t.Error("k and m onsets should not score 1")
	}
}

// Empty collections share all of nothing.
func TestSimilarityEmpty(t *testing.T) {
	if got := rhyme.Similarity(nil, nil); got != 1.0 {
		t.Errorf("Similarity(nil, nil) = %v, want 1", got)
	}

	vowelOnly := lastSyllable(t, "æd")
	if len(vowelOnly.Onset) != 0 {
		t.Fatal("æd should parse with an empty onset")
	}
	if got := rhyme.Alliteration(vowelOnly, vowelOnly); got != 1.0 {
		t.Errorf("Alliteration of two empty onsets = %v, want 1", got)
	}

	withOnset := lastSyllable(t, "kæt")
	if got := rhyme.Alliteration(vowelOnly, withOnset); got != 0.0 {
		t.Errorf("Alliteration of empty vs non-empty onset = %v, want 0", got)
	}
}

// An affricate and the same stop-fricative pair differ by exactly the
// delayed release token, so they are close but not identical.
func TestAffricateDistinctFromSequence(t *testing.T) {
	affricate := []phonology.Phoneme{mustPhoneme(t, "t͡ʃ")}
	tsh := mustPhoneme(t, "t͡ʃ")
	sequence := []phonology.Phoneme{
		phonology.Mono(tsh.First),
		phonology.Mono(*tsh.Second),
	}

	got := rhyme.Similarity(affricate, sequence)
	if got >= 1.0 {
		t.Errorf("Similarity = %v, want below 1", got)
	}
	if got < 0.9 {
		t.Errorf("Similarity = %v, want close to 1", got)
	}
}

func mustPhoneme(t *testing.T, symbol string) phonology.Phoneme {
	t.Helper()
	p, ok := genam.Phoneme(symbol)
	if !ok {
		t.Fatalf("symbol %q not in GenAm inventory", symbol)
	}
	return p
}
