package phonology_test

import (
	"errors"
	"testing"

	"github.com/heartmarshall/sound/phonology"
)

func TestNewSyllable(t *testing.T) {
	p := mustPhoneme(t, "p")
	n := mustPhoneme(t, "n")
	i := mustPhoneme(t, "i")

	syl, err := phonology.NewSyllable([]phonology.Phoneme{p}, i, []phonology.Phoneme{n}, phonology.Stressed.Ptr())
	if err != nil {
		t.Fatalf("NewSyllable() error = %v", err)
	}
	if got := syl.Symbols(); got != "pin" {
		t.Errorf("Symbols() = %q, want pin", got)
	}
}

func TestNewSyllableRejectsNonVowelNucleus(t *testing.T) {
	_, err := phonology.NewSyllable(nil, mustPhoneme(t, "p"), nil, nil)
	if !errors.Is(err, phonology.ErrBadSyllableStructure) {
		t.Fatalf("error = %v, want ErrBadSyllableStructure", err)
	}
}

func TestNewSyllableRejectsSyllabicMargins(t *testing.T) {
	i := mustPhoneme(t, "i")
	u := mustPhoneme(t, "u")

	if _, err := phonology.NewSyllable([]phonology.Phoneme{u}, i, nil, nil); !errors.Is(err, phonology.ErrBadSyllableStructure) {
		t.Errorf("syllabic onset: error = %v, want ErrBadSyllableStructure", err)
	}
	if _, err := phonology.NewSyllable(nil, i, []phonology.Phoneme{u}, nil); !errors.Is(err, phonology.ErrBadSyllableStructure) {
		t.Errorf("syllabic coda: error = %v, want ErrBadSyllableStructure", err)
	}
}

func TestSyllableRhyme(t *testing.T) {
	syl := phonology.Syllable{
		Onset:   []phonology.Phoneme{mustPhoneme(t, "p")},
		Nucleus: mustPhoneme(t, "ʌ"),
		Coda:    []phonology.Phoneme{mustPhoneme(t, "m"), mustPhoneme(t, "p")},
	}

	rhyme := syl.Rhyme()
	if len(rhyme) != 3 {
		t.Fatalf("Rhyme() returned %d phonemes, want 3", len(rhyme))
	}
	if rhyme[0].Symbol() != "ʌ" || rhyme[1].Symbol() != "m" || rhyme[2].Symbol() != "p" {
		t.Errorf("Rhyme() = %v, want nucleus then coda", rhyme)
	}

	all := syl.Phonemes()
	if len(all) != 4 || all[0].Symbol() != "p" {
		t.Errorf("Phonemes() = %v, want onset first", all)
	}
}

func TestSyllableEqual(t *testing.T) {
	a := phonology.Syllable{Nucleus: mustPhoneme(t, "ɛ"), Stress: phonology.Stressed.Ptr()}
	b := phonology.Syllable{Nucleus: mustPhoneme(t, "ɛ"), Stress: phonology.Stressed.Ptr()}
	c := phonology.Syllable{Nucleus: mustPhoneme(t, "ɛ")}

	if !a.Equal(b) {
		t.Error("identical syllables must be equal")
	}
	if a.Equal(c) {
		t.Error("present vs absent stress must not be equal")
	}
}
