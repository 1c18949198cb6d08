package phonology

// Natural classes of phonemes from features.
//
// These predicates test membership of a phoneme in the common natural
// classes without requiring callers to know which features define a class or
// where those features sit in the geometry. When the question is "is this
// phoneme an X (vowel, nasal, fricative, ...)", use these rather than
// constructing the test ad hoc.
//
// For disegments every predicate except IsAffricate holds if it holds for
// either constituent segment: a disegment is one phonological unit whose
// properties are the union of its parts. The affricate test is the one
// pair-specific rule and is order-sensitive.

// IsVowel reports whether the phoneme can fill the nucleus of a syllable.
// Vowels are marked +syllabic.
func IsVowel(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		return seg.Root.Syllabic == Marked
	})
}

// IsConsonant reports whether the phoneme is not a vowel. This definition
// contrasts with IsVowel and therefore includes semivowels even though they
// are -consonantal.
func IsConsonant(p Phoneme) bool {
	return !IsVowel(p)
}

// IsSemivowel reports (-consonantal, -syllabic) phonemes such as glides.
func IsSemivowel(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		return seg.Root.Syllabic == Unmarked && seg.Root.Consonantal == Unmarked
	})
}

// IsVoiced reports whether a voicing contrast is present and marked.
func IsVoiced(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		v := seg.Voice()
		return v != nil && *v == Marked
	})
}

// IsStop reports (-sonorant, -continuant) phonemes. The continuant feature
// must be present: a segment for which airflow is inapplicable is not a stop.
func IsStop(p Phoneme) bool {
	return p.anySegment(segmentIsStop)
}

// IsFricative reports (-sonorant, +continuant) phonemes. As with IsStop, the
// continuant feature must be present.
func IsFricative(p Phoneme) bool {
	return p.anySegment(segmentIsFricative)
}

// IsApproximant reports (+sonorant, -syllabic, +continuant) phonemes.
func IsApproximant(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		c := seg.Continuant()
		return seg.Root.Sonorant == Marked &&
			seg.Root.Syllabic == Unmarked &&
			c != nil && *c == Marked
	})
}

// IsAffricate reports disegments whose first segment is a stop and whose
// second is a fricative, in that order. Monosegments are never affricates,
// and a fricative-stop pair is not one either.
func IsAffricate(p Phoneme) bool {
	if p.Second == nil {
		return false
	}
	return segmentIsStop(p.First) && segmentIsFricative(*p.Second)
}

// IsNasal reports phonemes carrying the nasal feature.
func IsNasal(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		return seg.Autosegmental.Nasal
	})
}

// IsLateral reports phonemes carrying the lateral feature.
func IsLateral(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		return seg.Autosegmental.Lateral
	})
}

// IsHighVowel reports (+syllabic, +high) phonemes.
func IsHighVowel(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		h := seg.High()
		return seg.Root.Syllabic == Marked && h != nil && *h == Marked
	})
}

// IsLowVowel reports (+syllabic, +low) phonemes.
func IsLowVowel(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		l := seg.Low()
		return seg.Root.Syllabic == Marked && l != nil && *l == Marked
	})
}

// IsMidVowel reports (+syllabic, -high, -low) phonemes.
func IsMidVowel(p Phoneme) bool {
	return p.anySegment(func(seg Segment) bool {
		h, l := seg.High(), seg.Low()
		return seg.Root.Syllabic == Marked &&
			h != nil && *h == Unmarked &&
			l != nil && *l == Unmarked
	})
}

func segmentIsStop(seg Segment) bool {
	c := seg.Continuant()
	return seg.Root.Sonorant == Unmarked && c != nil && *c == Unmarked
}

func segmentIsFricative(seg Segment) bool {
	c := seg.Continuant()
	return seg.Root.Sonorant == Unmarked && c != nil && *c == Marked
}
