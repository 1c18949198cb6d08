// Package words parses word descriptions into structured words.
//
// A word description is a compact, dictionary-style transcription: IPA
// symbols for sounds, with syllable boundaries and stress given either as
// IPA marks ('ˈ', 'ˌ', '.') or as the digits 1-4. Because +/-syllabic is a
// feature of the phonemes themselves, boundary marks can be omitted wherever
// a syllable holds exactly one syllabic phoneme: "ˈæ.pəl" and "hɛˈlo͡ʊ" both
// parse. Reduced stress has no standard IPA notation, which is why the
// numeric alternative (4) exists at all.
//
// Parsing is a one-shot forward scan with no backtracking: the result is
// either a complete, structurally valid word or one error describing the
// first point of failure.
package words

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/sound/accent"
	"github.com/heartmarshall/sound/phonology"
)

const (
	// tieBar joins the surrounding symbols into one disegment lookup key.
	tieBar = "͡" // ͡
	// rightHook attaches to the preceding vowel symbol, forming a
	// rhotic-vowel lookup key.
	rightHook = "˞" // ˞
)

// protoSyllable holds the pieces of a syllable during construction. The
// nucleus is unknown until the scan reaches it.
type protoSyllable struct {
	onset   []phonology.Phoneme
	nucleus *phonology.Phoneme
	coda    []phonology.Phoneme
	stress  phonology.Stress
}

// Parse converts a word description into a word, resolving sound symbols
// through the accent lookup. The lookup must be side-effect-free; the parser
// calls it once per resolved symbol in scan order.
//
// Errors unwrap to phonology.ErrEmptyDescription, phonology.ErrUnknownSymbol
// or phonology.ErrBadSyllableStructure.
func Parse(desc string, lookup accent.Lookup) (phonology.Word, error) {
	desc = strings.TrimSpace(norm.NFC.String(desc))
	if desc == "" {
		return phonology.Word{}, phonology.ErrEmptyDescription
	}

	tokens, err := tokenize(desc)
	if err != nil {
		return phonology.Word{}, err
	}

	var proto []protoSyllable
	for _, tok := range tokens {
		if stress, ok := stressFor(tok); ok {
			proto = append(proto, protoSyllable{stress: stress})
			continue
		}
		if err := readSymbol(tok, &proto, lookup); err != nil {
			return phonology.Word{}, err
		}
	}

	syls := make([]phonology.Syllable, len(proto))
	for i, ps := range proto {
		if ps.nucleus == nil {
			return phonology.Word{}, &phonology.SyllableStructureError{
				Reason: "syllable has no nucleus",
			}
		}
		stress := ps.stress
		syls[i] = phonology.Syllable{
			Onset:   ps.onset,
			Nucleus: *ps.nucleus,
			Coda:    ps.coda,
			Stress:  &stress,
		}
	}

	// A single-syllable word's stress is relative to nothing; NewWord
	// discards it.
	return phonology.NewWord(syls), nil
}

// readSymbol resolves one sound symbol and places the phoneme into the word
// under construction.
func readSymbol(symbol string, proto *[]protoSyllable, lookup accent.Lookup) error {
	phoneme, ok := lookup(symbol)
	if !ok {
		return &phonology.UnknownSymbolError{Symbol: symbol}
	}

	// A description need not begin with a boundary mark; the first sound
	// opens an implicit unstressed syllable.
	if len(*proto) == 0 {
		*proto = append(*proto, protoSyllable{stress: phonology.Unstressed})
	}
	cur := &(*proto)[len(*proto)-1]

	// Syllabic phonemes fill the nucleus; a syllable holds exactly one.
	if phonology.IsVowel(phoneme) {
		if cur.nucleus != nil {
			return &phonology.SyllableStructureError{
				Reason: phoneme.Symbol() + ": nucleus is already occupied by " + cur.nucleus.Symbol(),
			}
		}
		cur.nucleus = &phoneme
		return nil
	}

	// Everything else is onset until the nucleus appears, coda after.
	if cur.nucleus == nil {
		cur.onset = append(cur.onset, phoneme)
	} else {
		cur.coda = append(cur.coda, phoneme)
	}
	return nil
}

// stressFor maps a boundary token to its stress level. '.' and '3' are
// unstressed, '4' is reduced; the digits 1 and 2 alias the IPA marks.
func stressFor(tok string) (phonology.Stress, bool) {
	switch tok {
	case "ˈ", "1":
		return phonology.Stressed, true
	case "ˌ", "2":
		return phonology.SecondaryStress, true
	case ".", "3":
		return phonology.Unstressed, true
	case "4":
		return phonology.ReducedStress, true
	default:
		return 0, false
	}
}

func isStressToken(tok string) bool {
	_, ok := stressFor(tok)
	return ok
}

// tokenize splits a description into boundary marks and sound-symbol lookup
// keys. It scans grapheme clusters, not runes: a cluster ending in the tie
// bar joins with the following cluster into one disegment key, and a
// trailing right hook joins the cluster before it into one rhotic-vowel key.
func tokenize(desc string) ([]string, error) {
	var clusters []string
	gr := uniseg.NewGraphemes(desc)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var tokens []string
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		if isStressToken(c) {
			tokens = append(tokens, c)
			continue
		}
		if c == rightHook {
			return nil, &phonology.SyllableStructureError{
				Reason: "combining right hook with no preceding symbol",
			}
		}

		key := c
		for strings.HasSuffix(key, tieBar) {
			i++
			if i >= len(clusters) {
				return nil, &phonology.SyllableStructureError{
					Reason: "combining tie bar at end of input",
				}
			}
			next := clusters[i]
			if isStressToken(next) || next == rightHook {
				return nil, &phonology.SyllableStructureError{
					Reason: "combining tie bar joined to " + next,
				}
			}
			key += next
		}
		for i+1 < len(clusters) && clusters[i+1] == rightHook {
			i++
			key += rightHook
		}
		tokens = append(tokens, key)
	}
	return tokens, nil
}
