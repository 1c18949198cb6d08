// Package segment provides builders for constructing phonological segments.
//
// A segment is built by applying an ordered list of mutator functions to a
// base. Mutators apply left to right; when two touch the same field the
// later one wins, so order the list to match intent. The feature geometry
// itself never depends on how a segment was built, only on its final field
// values.
package segment

import "github.com/heartmarshall/sound/phonology"

// Mutator adjusts one aspect of a segment under construction.
type Mutator func(*phonology.Segment)

// New constructs a segment with all root features unmarked and no
// autosegmental features, then applies the mutators in order.
func New(muts []Mutator, symbol string) phonology.Segment {
	base := phonology.Segment{Symbol: symbol}
	for _, m := range muts {
		m(&base)
	}
	return base
}

// Consonant constructs a (+consonantal, -sonorant, -syllabic) base segment
// and applies the mutators in order. The -sonorant default is overridden by
// manner mutators such as Nasal or Approximant where appropriate.
func Consonant(muts []Mutator, symbol string) phonology.Segment {
	base := phonology.Segment{Symbol: symbol}
	base.Root.Consonantal = phonology.Marked
	for _, m := range muts {
		m(&base)
	}
	return base
}

// Vowel constructs a (-consonantal, +sonorant, +syllabic) base segment and
// applies the mutators in order.
func Vowel(muts []Mutator, symbol string) phonology.Segment {
	base := phonology.Segment{Symbol: symbol}
	base.Root.Sonorant = phonology.Marked
	base.Root.Syllabic = phonology.Marked
	for _, m := range muts {
		m(&base)
	}
	return base
}

// place returns the segment's place group, creating it if absent.
func place(s *phonology.Segment) *phonology.Place {
	if s.Autosegmental.Place == nil {
		s.Autosegmental.Place = &phonology.Place{}
	}
	return s.Autosegmental.Place
}

// laryngeal returns the segment's laryngeal group, creating it if absent.
func laryngeal(s *phonology.Segment) *phonology.LaryngealFeatures {
	if s.Autosegmental.Laryngeal == nil {
		s.Autosegmental.Laryngeal = &phonology.LaryngealFeatures{}
	}
	return s.Autosegmental.Laryngeal
}

// dorsal returns the segment's dorsal place features, creating the path to
// them if absent.
func dorsal(s *phonology.Segment) *phonology.DorsalFeature {
	p := place(s)
	if p.Dorsal == nil {
		p.Dorsal = &phonology.DorsalFeature{}
	}
	return p.Dorsal
}

// labial returns the segment's labial place features, creating the path to
// them if absent.
func labial(s *phonology.Segment) *phonology.LabialFeature {
	p := place(s)
	if p.Labial == nil {
		p.Labial = &phonology.LabialFeature{}
	}
	return p.Labial
}

// coronal returns the segment's coronal place features, creating the path to
// them if absent.
func coronal(s *phonology.Segment) *phonology.CoronalFeature {
	p := place(s)
	if p.Coronal == nil {
		p.Coronal = &phonology.CoronalFeature{}
	}
	return p.Coronal
}

// pharyngeal returns the segment's pharyngeal place features, creating the
// path to them if absent.
func pharyngeal(s *phonology.Segment) *phonology.PharyngealFeature {
	p := place(s)
	if p.Pharyngeal == nil {
		p.Pharyngeal = &phonology.PharyngealFeature{}
	}
	return p.Pharyngeal
}
