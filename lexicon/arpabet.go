// Package lexicon bridges the CMU Pronouncing Dictionary into this library's
// notation. It converts ARPAbet phone sequences with per-vowel stress digits
// into word descriptions, and batch-parses those descriptions against an
// accent into structured words. Pure functions: reader in, values out, no
// persistence.
package lexicon

import "strings"

// arpabetConsonants maps ARPAbet consonant phones to GenAm IPA symbols.
// Affricates map to tie-bar disegment keys.
var arpabetConsonants = map[string]string{
	"B":  "b",
	"CH": "t͡ʃ",
	"D":  "d",
	"DH": "ð",
	"F":  "f",
	"G":  "ɡ",
	"HH": "h",
	"JH": "d͡ʒ",
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ",
	"P":  "p",
	"R":  "ɹ",
	"S":  "s",
	"SH": "ʃ",
	"T":  "t",
	"TH": "θ",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ",
}

// arpabetVowels maps ARPAbet vowel phones to GenAm IPA symbols. Diphthongs
// map to tie-bar disegment keys. AH and ER are resolved by stress digit in
// vowelSymbol, not here.
var arpabetVowels = map[string]string{
	"AA": "ɑ",
	"AE": "æ",
	"AH": "ʌ",
	"AO": "ɔ",
	"AW": "a͡ʊ",
	"AY": "a͡ɪ",
	"EH": "ɛ",
	"EY": "e͡ɪ",
	"IH": "ɪ",
	"IY": "i",
	"OW": "o͡ʊ",
	"OY": "ɔ͡ɪ",
	"UH": "ʊ",
	"UW": "u",
}

// vowelSymbol resolves an ARPAbet vowel phone plus its stress digit to a
// GenAm symbol. Unstressed AH is the schwa rather than 'ʌ', and ER is the
// stressed or reduced rhotic vowel depending on its digit.
func vowelSymbol(phone string, stress int) (string, bool) {
	switch phone {
	case "AH":
		if stress == 0 {
			return "ə", true
		}
		return "ʌ", true
	case "ER":
		if stress == 0 {
			return "ə˞", true
		}
		return "ɜ˞", true
	case "AXR":
		// Some ARPAbet variants split the reduced rhotic vowel out of ER.
		return "ə˞", true
	default:
		sym, ok := arpabetVowels[phone]
		return sym, ok
	}
}

// splitStress separates a phone like "AH0" into the bare phone and its
// stress digit. Phones without a digit (consonants) return stress -1.
func splitStress(phone string) (string, int) {
	if len(phone) == 0 {
		return phone, -1
	}
	last := phone[len(phone)-1]
	if last < '0' || last > '9' {
		return phone, -1
	}
	return phone[:len(phone)-1], int(last - '0')
}

// stressMark maps a CMU stress digit to this library's numeric stress
// notation: 1 primary, 2 secondary, 0 unstressed.
func stressMark(stress int) string {
	switch stress {
	case 1:
		return "1"
	case 2:
		return "2"
	default:
		return "3"
	}
}

// description assembles a word description from ARPAbet phones. Each
// stressed-digit vowel opens a syllable; the consonants read since the last
// vowel become that syllable's onset, so codas appear only word-finally.
// Unknown phones abort the conversion.
func description(phones []string) (string, error) {
	var b strings.Builder
	var pendingOnset []string

	for _, raw := range phones {
		phone, stress := splitStress(raw)

		if stress < 0 {
			sym, ok := arpabetConsonants[phone]
			if !ok {
				return "", &UnknownPhoneError{Phone: raw}
			}
			pendingOnset = append(pendingOnset, sym)
			continue
		}

		sym, ok := vowelSymbol(phone, stress)
		if !ok {
			return "", &UnknownPhoneError{Phone: raw}
		}
		b.WriteString(stressMark(stress))
		for _, c := range pendingOnset {
			b.WriteString(c)
		}
		pendingOnset = pendingOnset[:0]
		b.WriteString(sym)
	}

	// Word-final consonants close the last syllable as its coda.
	for _, c := range pendingOnset {
		b.WriteString(c)
	}
	return b.String(), nil
}
