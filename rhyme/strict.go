package rhyme

import "github.com/heartmarshall/sound/phonology"

// Strict measures: exact structural equality of the compared phoneme
// collections rather than a graded score.

// StrictRhyme reports whether two syllables share an identical rhyme
// (nucleus plus coda), segment for segment.
func StrictRhyme(a, b phonology.Syllable) bool {
	return equalPhonemes(a.Rhyme(), b.Rhyme())
}

// StrictAssonance reports whether two syllables share an identical nucleus.
func StrictAssonance(a, b phonology.Syllable) bool {
	return a.Nucleus.Equal(b.Nucleus)
}

// StrictAlliteration reports whether two syllables share an identical onset.
func StrictAlliteration(a, b phonology.Syllable) bool {
	return equalPhonemes(a.Onset, b.Onset)
}

func equalPhonemes(a, b []phonology.Phoneme) bool {
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
