package phonology

// tieBar is the combining double inverted breve (U+0361) that joins the two
// segment symbols of a disegment: 't' + 'ʃ' renders as "t͡ʃ".
const tieBar = '͡'

// Phoneme is a unit of speech sound. Most phonemes are monosegments, like
// 'ɪ' or 't'. Some behave as an ordered pair of phonological segments acting
// as one unit (a disegment), as with diphthongs ('a͡ɪ') and affricates
// ('t͡ʃ'). Representing those as two segments does away with the need for a
// delayed-release feature on segments.
//
// A Phoneme is immutable once constructed: the library only builds and
// inspects phonemes, it never rewrites them.
type Phoneme struct {
	// First is the only segment of a monosegment, or the first of a disegment.
	First Segment
	// Second is nil for monosegments.
	Second *Segment
}

// Mono constructs a single-segment phoneme.
func Mono(seg Segment) Phoneme {
	return Phoneme{First: seg}
}

// Di constructs an ordered two-segment phoneme. Order matters: an affricate
// is a stop followed by a fricative, not the reverse.
func Di(first, second Segment) Phoneme {
	return Phoneme{First: first, Second: &second}
}

// IsDisegment reports whether the phoneme is composed of two segments.
func (p Phoneme) IsDisegment() bool {
	return p.Second != nil
}

// Segments returns the phoneme's segments in order: one for a monosegment,
// two for a disegment.
func (p Phoneme) Segments() []Segment {
	if p.Second == nil {
		return []Segment{p.First}
	}
	return []Segment{p.First, *p.Second}
}

// anySegment reports whether pred holds for at least one of the phoneme's
// segments. Disegments behave as one phonological unit whose properties are
// the union of their parts, so every natural-class predicate except the
// affricate test ORs across the two segments.
func (p Phoneme) anySegment(pred func(Segment) bool) bool {
	if pred(p.First) {
		return true
	}
	return p.Second != nil && pred(*p.Second)
}

// Symbol returns the phoneme's textual representation. For a disegment this
// is the two segment symbols joined by the tie bar.
func (p Phoneme) Symbol() string {
	if p.Second == nil {
		return p.First.Symbol
	}
	return p.First.Symbol + string(tieBar) + p.Second.Symbol
}

// Equal reports structural equality: same shape (mono or di) and every
// attribute of every segment, including feature absence, matching.
func (p Phoneme) Equal(other Phoneme) bool {
	if (p.Second == nil) != (other.Second == nil) {
		return false
	}
	if !p.First.Equal(other.First) {
		return false
	}
	if p.Second != nil && !p.Second.Equal(*other.Second) {
		return false
	}
	return true
}
