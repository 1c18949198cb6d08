package phonology

import "strings"

// Word is an ordered sequence of syllables: a spoken word, or the
// pronunciation that corresponds to a written one.
type Word struct {
	// Syllables are ordered first to last.
	Syllables []Syllable
}

// NewWord builds a word from syllables. When the word has exactly one
// syllable its stress is semantically void (stress is relative across the
// syllables of one word), so it is dropped.
func NewWord(syls []Syllable) Word {
	if len(syls) == 1 && syls[0].Stress != nil {
		syl := syls[0]
		syl.Stress = nil
		return Word{Syllables: []Syllable{syl}}
	}
	return Word{Syllables: syls}
}

// Phonemes combines the flattened phoneme lists of the word's syllables.
// Syllable structure is lost in this transformation.
func (w Word) Phonemes() []Phoneme {
	var out []Phoneme
	for _, syl := range w.Syllables {
		out = append(out, syl.Phonemes()...)
	}
	return out
}

// Stresses returns the stress level of each syllable that has one, in order.
func (w Word) Stresses() []Stress {
	var out []Stress
	for _, syl := range w.Syllables {
		if syl.Stress != nil {
			out = append(out, *syl.Stress)
		}
	}
	return out
}

// Symbols returns a textual representation of the syllabized word.
// Syllables are separated by '.', except that a syllable whose stress level
// carries an IPA mark uses that mark as the separator instead. The separator
// before the first syllable is written only when it is a stress mark.
func (w Word) Symbols() string {
	if len(w.Syllables) == 0 {
		return ""
	}

	var b strings.Builder
	for i, syl := range w.Syllables {
		sep := '.'
		if syl.Stress != nil {
			if mark, ok := syl.Stress.Symbol(); ok {
				sep = mark
			}
		}
		if i != 0 || sep != '.' {
			b.WriteRune(sep)
		}
		b.WriteString(syl.Symbols())
	}
	return b.String()
}

// Equal reports structural equality of two words.
func (w Word) Equal(other Word) bool {
	if len(w.Syllables) != len(other.Syllables) {
		return false
	}
	for i := range w.Syllables {
		if !w.Syllables[i].Equal(other.Syllables[i]) {
			return false
		}
	}
	return true
}
