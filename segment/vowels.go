package segment

import "github.com/heartmarshall/sound/phonology"

// Mutators for building vowels. Height and backness fill in the dorsal
// group; rounding the labial group; tenseness the pharyngeal group.

// Front puts the tongue body forward of neutral position.
func Front(s *phonology.Segment) {
	dorsal(s).Back = phonology.Unmarked.Ptr()
}

// Central puts the tongue body near neutral position. For the forward-back
// contrast central sounds pattern with back: both are +back.
func Central(s *phonology.Segment) {
	dorsal(s).Back = phonology.Marked.Ptr()
}

// Back puts the tongue body behind neutral position.
func Back(s *phonology.Segment) {
	dorsal(s).Back = phonology.Marked.Ptr()
}

// High puts the tongue body above neutral position.
func High(s *phonology.Segment) {
	d := dorsal(s)
	d.High = phonology.Marked.Ptr()
	d.Low = phonology.Unmarked.Ptr()
}

// Mid puts the tongue body at neither high nor low position.
func Mid(s *phonology.Segment) {
	d := dorsal(s)
	d.High = phonology.Unmarked.Ptr()
	d.Low = phonology.Unmarked.Ptr()
}

// Low puts the tongue body below neutral position.
func Low(s *phonology.Segment) {
	d := dorsal(s)
	d.High = phonology.Unmarked.Ptr()
	d.Low = phonology.Marked.Ptr()
}

// Rounded marks rounding or pursing of the lips.
func Rounded(s *phonology.Segment) {
	labial(s).Round = true
}

// Unrounded clears lip rounding. Roundness is unary, so unrounded vowels can
// normally just omit Rounded; this exists for overriding an earlier mutator.
func Unrounded(s *phonology.Segment) {
	labial(s).Round = false
}

// Tense marks tenseness produced by tongue root advancement (+ATR).
func Tense(s *phonology.Segment) {
	pharyngeal(s).AdvancedTongueRoot = phonology.Marked.Ptr()
}

// Lax marks the absence of tongue root advancement (-ATR), as in the lax
// off-glides of the GenAm diphthongs.
func Lax(s *phonology.Segment) {
	pharyngeal(s).AdvancedTongueRoot = phonology.Unmarked.Ptr()
}
