// Package rhyme measures similarity between collections of phonemes.
//
// Two approaches are provided. Approximate measures are continuous: they say
// *how* similar two collections are, as a fraction between 0 and 1. Strict
// measures are equality relations: two collections either do or don't match.
package rhyme

import "github.com/heartmarshall/sound/phonology"

// Rhyme measures the similarity of two syllables by comparing their rhymes
// (nucleus plus coda).
func Rhyme(a, b phonology.Syllable) float64 {
	return Similarity(a.Rhyme(), b.Rhyme())
}

// Assonance measures the similarity of two syllables by comparing their
// nuclei alone.
func Assonance(a, b phonology.Syllable) float64 {
	return Similarity(
		[]phonology.Phoneme{a.Nucleus},
		[]phonology.Phoneme{b.Nucleus},
	)
}

// Alliteration measures the similarity of two syllables by comparing their
// onsets.
func Alliteration(a, b phonology.Syllable) float64 {
	return Similarity(a.Onset, b.Onset)
}

// Similarity is the Jaccard index of the flattened feature sets of two
// phoneme collections: the fraction of features the sides share over the
// total features either side carries. It ranges over [0, 1], is symmetric,
// and is 1 exactly when the flattened sets coincide, including the case of
// two empty collections, which share no features and differ in none.
// It is not a metric; the triangle inequality does not hold in general.
func Similarity(a, b []phonology.Phoneme) float64 {
	fa := gatherFeatures(a)
	fb := gatherFeatures(b)

	union := len(fa.Union(fb))
	if union == 0 {
		return 1.0
	}
	return float64(fa.IntersectionSize(fb)) / float64(union)
}

func gatherFeatures(phonemes []phonology.Phoneme) phonology.FeatureSet {
	features := make(phonology.FeatureSet)
	for _, p := range phonemes {
		features = features.Union(phonology.Features(p))
	}
	return features
}
