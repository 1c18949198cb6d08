package genam

import (
	"github.com/heartmarshall/sound/phonology"
	"github.com/heartmarshall/sound/segment"
)

// The GenAm sound table. Keys are the exact lookup keys the word parser
// produces: disegments use the combining tie bar (U+0361), rhotic vowels the
// combining right hook (U+02DE).
var sounds = map[string]phonology.Phoneme{
	// Nasals
	"m": mono(consonant("m", segment.Voiced, segment.Bilabial, segment.Nasal)),
	"n": mono(consonant("n", segment.Voiced, segment.Alveolar, segment.Nasal)),
	"ŋ": mono(consonant("ŋ", segment.Voiced, segment.Velar, segment.Nasal)),

	// Stops
	"p": mono(consonant("p", segment.Voiceless, segment.Bilabial, segment.Stop)),
	"b": mono(consonant("b", segment.Voiced, segment.Bilabial, segment.Stop)),
	"t": mono(consonant("t", segment.Voiceless, segment.Alveolar, segment.Stop)),
	"d": mono(consonant("d", segment.Voiced, segment.Alveolar, segment.Stop)),
	"k": mono(consonant("k", segment.Voiceless, segment.Velar, segment.Stop)),
	"ɡ": mono(consonant("ɡ", segment.Voiced, segment.Velar, segment.Stop)),

	// Affricates
	"t͡ʃ": phonology.Di(
		consonant("t", segment.Voiceless, segment.Postalveolar, segment.Stop),
		consonant("ʃ", segment.Voiceless, segment.Postalveolar, segment.Fricative, segment.Strident, segment.Distrib),
	),
	"d͡ʒ": phonology.Di(
		consonant("d", segment.Voiced, segment.Postalveolar, segment.Stop),
		consonant("ʒ", segment.Voiced, segment.Postalveolar, segment.Fricative, segment.Strident, segment.Distrib),
	),

	// Fricatives
	"f": mono(consonant("f", segment.Voiceless, segment.Labiodental, segment.Fricative)),
	"v": mono(consonant("v", segment.Voiced, segment.Labiodental, segment.Fricative)),
	"θ": mono(consonant("θ", segment.Voiceless, segment.Dental, segment.Fricative, segment.Distrib)),
	"ð": mono(consonant("ð", segment.Voiced, segment.Dental, segment.Fricative, segment.Distrib)),
	"s": mono(consonant("s", segment.Voiceless, segment.Alveolar, segment.Fricative, segment.Strident)),
	"z": mono(consonant("z", segment.Voiced, segment.Alveolar, segment.Fricative, segment.Strident)),
	"ʃ": mono(consonant("ʃ", segment.Voiceless, segment.Postalveolar, segment.Fricative, segment.Strident, segment.Distrib)),
	"ʒ": mono(consonant("ʒ", segment.Voiced, segment.Postalveolar, segment.Fricative, segment.Strident, segment.Distrib)),
	"h": mono(consonant("h", segment.Voiceless, segment.Glottal, segment.Fricative)),

	// Approximants and glides
	"l": mono(consonant("l", segment.Voiced, segment.Alveolar, segment.Approximant, segment.Lateral)),
	"ɹ": mono(consonant("ɹ", segment.Voiced, segment.Postalveolar, segment.Approximant, segment.Rhotic)),
	"j": mono(consonant("j", segment.Voiced, segment.Palatal, segment.Glide)),
	"ʍ": mono(consonant("ʍ", segment.Voiceless, segment.Bilabial, segment.Velar, segment.Glide)),
	"w": mono(consonant("w", segment.Voiced, segment.Bilabial, segment.Velar, segment.Glide)),

	// Monophthongs
	"i": mono(vowel("i", segment.High, segment.Front, segment.Tense)),
	"ɪ": mono(vowel("ɪ", segment.High, segment.Front)),
	"ɛ": mono(vowel("ɛ", segment.Mid, segment.Front)),
	"ə": mono(vowel("ə", segment.Mid, segment.Central)),
	"æ": mono(vowel("æ", segment.Low, segment.Front)),
	"ʌ": mono(vowel("ʌ", segment.Mid, segment.Back)),
	"ɑ": mono(vowel("ɑ", segment.Low, segment.Back)),
	"u": mono(vowel("u", segment.High, segment.Back, segment.Rounded, segment.Tense)),
	"ʊ": mono(vowel("ʊ", segment.High, segment.Back, segment.Rounded)),
	"ɔ": mono(vowel("ɔ", segment.Mid, segment.Back, segment.Rounded)),

	// Diphthongs. Off-glides are lax (-ATR), contrasting with the tense
	// first segments of e͡ɪ and o͡ʊ.
	"e͡ɪ": phonology.Di(
		vowel("e", segment.Mid, segment.Front, segment.Tense),
		vowel("ɪ", segment.High, segment.Front, segment.Lax),
	),
	"a͡ɪ": phonology.Di(
		vowel("a", segment.Low, segment.Central),
		vowel("ɪ", segment.High, segment.Front, segment.Lax),
	),
	"a͡ʊ": phonology.Di(
		vowel("a", segment.Low, segment.Central),
		vowel("ʊ", segment.High, segment.Back, segment.Rounded, segment.Lax),
	),
	"o͡ʊ": phonology.Di(
		vowel("o", segment.Mid, segment.Back, segment.Rounded, segment.Tense),
		vowel("ʊ", segment.High, segment.Back, segment.Rounded, segment.Lax),
	),
	"ɔ͡ɪ": phonology.Di(
		vowel("ɔ", segment.Mid, segment.Back, segment.Rounded),
		vowel("ɪ", segment.High, segment.Front, segment.Lax),
	),

	// Rhotic vowels
	"ɜ˞": mono(vowel("ɜ˞", segment.Mid, segment.Central, segment.Rhotic)),
	"ə˞": mono(vowel("ə˞", segment.Mid, segment.Central, segment.Rhotic)),
}

func mono(seg phonology.Segment) phonology.Phoneme {
	return phonology.Mono(seg)
}

func consonant(symbol string, muts ...segment.Mutator) phonology.Segment {
	return segment.Consonant(muts, symbol)
}

func vowel(symbol string, muts ...segment.Mutator) phonology.Segment {
	return segment.Vowel(muts, symbol)
}
