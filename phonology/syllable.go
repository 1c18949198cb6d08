package phonology

import "strings"

// Syllable is the structured collection of phonemes out of which words are
// built. Its phonemes split into three groups: the onset before the nucleus,
// the nucleus itself (normally a vowel, always the most sonorous phoneme),
// and the coda after it. The nucleus and coda together are the rhyme.
type Syllable struct {
	// Onset is the ordered sequence of phonemes that begin the syllable.
	Onset []Phoneme
	// Nucleus is the syllable's one syllabic phoneme.
	Nucleus Phoneme
	// Coda is the ordered sequence of phonemes that follow the nucleus.
	Coda []Phoneme
	// Stress is the syllable's stress level. It is only meaningful relative
	// to the other syllables of the same word, so it may be absent.
	Stress *Stress
}

// NewSyllable builds a syllable, enforcing its structural invariants: the
// nucleus must be a vowel, and no phoneme in the onset or coda may be
// syllabic, since a syllable carries exactly one nucleus.
func NewSyllable(onset []Phoneme, nucleus Phoneme, coda []Phoneme, stress *Stress) (Syllable, error) {
	if !IsVowel(nucleus) {
		return Syllable{}, &SyllableStructureError{
			Reason: "nucleus " + nucleus.Symbol() + " is not syllabic",
		}
	}
	for _, p := range append(append([]Phoneme{}, onset...), coda...) {
		if IsVowel(p) {
			return Syllable{}, &SyllableStructureError{
				Reason: "syllabic phoneme " + p.Symbol() + " outside the nucleus",
			}
		}
	}
	return Syllable{Onset: onset, Nucleus: nucleus, Coda: coda, Stress: stress}, nil
}

// Rhyme returns the nucleus and coda together, the part of the syllable that
// rhyme comparison operates on.
func (s Syllable) Rhyme() []Phoneme {
	out := make([]Phoneme, 0, 1+len(s.Coda))
	out = append(out, s.Nucleus)
	out = append(out, s.Coda...)
	return out
}

// Phonemes flattens the syllable into a single ordered phoneme list. The
// onset-nucleus-coda structure is lost in this transformation.
func (s Syllable) Phonemes() []Phoneme {
	out := make([]Phoneme, 0, len(s.Onset)+1+len(s.Coda))
	out = append(out, s.Onset...)
	out = append(out, s.Nucleus)
	out = append(out, s.Coda...)
	return out
}

// Symbols returns the symbolic representation of the syllable's phonemes as
// a single string. Stress is only relevant between syllables, so it is
// rendered by Word.Symbols, not here.
func (s Syllable) Symbols() string {
	var b strings.Builder
	for _, p := range s.Phonemes() {
		b.WriteString(p.Symbol())
	}
	return b.String()
}

// Equal reports structural equality of two syllables, including stress.
func (s Syllable) Equal(other Syllable) bool {
	if (s.Stress == nil) != (other.Stress == nil) {
		return false
	}
	if s.Stress != nil && *s.Stress != *other.Stress {
		return false
	}
	return eqPhonemes(s.Onset, other.Onset) &&
		s.Nucleus.Equal(other.Nucleus) &&
		eqPhonemes(s.Coda, other.Coda)
}

func eqPhonemes(a, b []Phoneme) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
