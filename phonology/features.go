// Package phonology models spoken-language sound structure with distinctive
// features: segments and phonemes described by a feature geometry, syllables
// with onset/nucleus/coda structure and stress, and words as ordered
// syllable sequences.
//
// Features are organized as a tree to capture material dependencies between
// them: lip rounding depends on a labial articulation, vowel height on a
// dorsal one. Interior groups are optional; an absent group means the
// mechanical preconditions for every feature under it are not present. That
// is a different state from a feature being present but unmarked, and the
// two are kept structurally distinct: absence is a nil pointer (or false
// for unary features), unmarkedness is an explicit value.
package phonology

// BinaryFeature describes a contrastive feature. Both the marked (+) and
// unmarked (-) value can be used to construct a natural class of sounds.
type BinaryFeature uint8

const (
	// Unmarked means the feature contrasts negatively (it is notably not there).
	Unmarked BinaryFeature = iota
	// Marked means the feature contrasts positively (it is notably there).
	Marked
)

// String returns "+" or "-" for use in feature notation like [+voice].
func (f BinaryFeature) String() string {
	if f == Marked {
		return "+"
	}
	return "-"
}

// Ptr returns a pointer to the feature value, for populating optional
// fields.
func (f BinaryFeature) Ptr() *BinaryFeature { return &f }

// Segment is a structured collection of phonological features describing one
// sound. Root features are bound to the segment and always present;
// autosegmental features are optional and behave independently of the
// segment during phonological processes.
//
// Segments are plain values. Once built (normally through package segment's
// builders) they are treated as immutable and freely shared.
type Segment struct {
	// Root holds the features bound to every segment.
	Root RootFeatures
	// Autosegmental holds the optional feature tree.
	Autosegmental AutosegmentalFeatures
	// Symbol is the textual (IPA) representation of this segment alone.
	Symbol string
}

// RootFeatures describe all phonological segments.
type RootFeatures struct {
	// Consonantal marks constriction of the vocal tract: consonants (+), vowels (-).
	Consonantal BinaryFeature
	// Sonorant marks resonant sound: nasals, liquids, vowels (+); obstruents (-).
	Sonorant BinaryFeature
	// Syllabic marks presence at the nucleus of a syllable: vowels (+).
	Syllabic BinaryFeature
}

// AutosegmentalFeatures are the optional features of a segment. Unary
// features (Nasal, Lateral, Rhotic) are plain bools: true is marked, false
// is absent; natural classes do not form around the lack of a unary
// feature, so no third state is needed. Optional binary features and groups
// are pointers; nil means articulatorily inapplicable.
type AutosegmentalFeatures struct {
	// Nasal: air passes through the nasal tract: 'n', 'm', 'ŋ'.
	Nasal bool
	// Lateral: air passes to the sides around the tongue: 'l'.
	Lateral bool
	// Rhotic: any of the ways rhoticity is marked: 'ɹ', 'ə˞'.
	Rhotic bool
	// Strident: high-amplitude, high-frequency fricatives: sibilants (+).
	Strident *BinaryFeature
	// Continuant: continuous airflow: fricatives, approximants (+); stops (-).
	Continuant *BinaryFeature
	// Place is the location of articulation within the mouth.
	Place *Place
	// Laryngeal holds contrasts at the larynx, chiefly voicing.
	Laryngeal *LaryngealFeatures
}

// Place describes a location of constriction within the mouth. The four
// articulators are not mutually exclusive: 'w' is both labial and dorsal.
type Place struct {
	// Labial: articulation using the lips: 'p', 'm', vowel rounding.
	Labial *LabialFeature
	// Coronal: articulation using the front of the tongue: 't', 's', 'n'.
	Coronal *CoronalFeature
	// Dorsal: articulation using the body of the tongue: 'k', 'ŋ', vowel space.
	Dorsal *DorsalFeature
	// Pharyngeal: articulation using the root of the tongue: ATR.
	Pharyngeal *PharyngealFeature
}

// LabialFeature holds features involving the lips.
type LabialFeature struct {
	// Round: rounding of the lips during sound production: round vowels.
	Round bool
}

// CoronalFeature holds features involving the front of the tongue.
type CoronalFeature struct {
	// Anterior: relation of the tongue to the alveolar ridge: dentals, alveolars (+).
	Anterior *BinaryFeature
	// Distrib: tongue blade (laminal, +) vs tongue tip (apical, -): 'ʃ', 'θ' (+); 's' (-).
	Distrib *BinaryFeature
}

// DorsalFeature holds features involving the body of the tongue. Vowel space
// follows the traditional decomposition: high vowels (+high, -low), low
// vowels (-high, +low), mid vowels (-high, -low).
type DorsalFeature struct {
	// High: high tongue position: high vowels (+); mid and low vowels (-).
	High *BinaryFeature
	// Low: low tongue position: low vowels (+); mid and high vowels (-).
	Low *BinaryFeature
	// Back: tongue is not front: back and central vowels (+); front vowels (-).
	Back *BinaryFeature
}

// PharyngealFeature holds features at the root of the tongue.
type PharyngealFeature struct {
	// AdvancedTongueRoot doubles as tense/lax: 'i', 'e', 'u', 'o' (+).
	// It should stay undefined for low vowels.
	AdvancedTongueRoot *BinaryFeature
}

// LaryngealFeatures hold contrasts made with the vocal folds.
type LaryngealFeatures struct {
	// SpreadGlottis: open vocal folds: aspirated segments.
	SpreadGlottis bool
	// ConstrictedGlottis: constricted vocal folds: ejectives, glottal stops.
	ConstrictedGlottis bool
	// Voice: vibrating vocal folds: 'b', 'd', 'ɡ' (+); 'p', 't', 'k' (-).
	Voice *BinaryFeature
}

// Accessors below reach into the optional feature tree. Each returns nil (or
// false for unary features) when any ancestor group is absent, so callers
// never have to unwrap intermediate groups themselves.

// Continuant returns the segment's continuant feature, or nil if absent.
func (s Segment) Continuant() *BinaryFeature {
	return s.Autosegmental.Continuant
}

// Strident returns the segment's strident feature, or nil if absent.
func (s Segment) Strident() *BinaryFeature {
	return s.Autosegmental.Strident
}

// Place returns the segment's place group, or nil if absent.
func (s Segment) Place() *Place {
	return s.Autosegmental.Place
}

// Labial returns the segment's labial place features, or nil if the segment
// has no place group or no labial articulation.
func (s Segment) Labial() *LabialFeature {
	if p := s.Autosegmental.Place; p != nil {
		return p.Labial
	}
	return nil
}

// Coronal returns the segment's coronal place features, or nil.
func (s Segment) Coronal() *CoronalFeature {
	if p := s.Autosegmental.Place; p != nil {
		return p.Coronal
	}
	return nil
}

// Dorsal returns the segment's dorsal place features, or nil.
func (s Segment) Dorsal() *DorsalFeature {
	if p := s.Autosegmental.Place; p != nil {
		return p.Dorsal
	}
	return nil
}

// Pharyngeal returns the segment's pharyngeal place features, or nil.
func (s Segment) Pharyngeal() *PharyngealFeature {
	if p := s.Autosegmental.Place; p != nil {
		return p.Pharyngeal
	}
	return nil
}

// Laryngeal returns the segment's laryngeal group, or nil if absent.
func (s Segment) Laryngeal() *LaryngealFeatures {
	return s.Autosegmental.Laryngeal
}

// Voice returns the segment's voice feature, or nil if the segment has no
// laryngeal group or no voicing contrast.
func (s Segment) Voice() *BinaryFeature {
	if l := s.Autosegmental.Laryngeal; l != nil {
		return l.Voice
	}
	return nil
}

// High returns the dorsal high feature, or nil.
func (s Segment) High() *BinaryFeature {
	if d := s.Dorsal(); d != nil {
		return d.High
	}
	return nil
}

// Low returns the dorsal low feature, or nil.
func (s Segment) Low() *BinaryFeature {
	if d := s.Dorsal(); d != nil {
		return d.Low
	}
	return nil
}

// Back returns the dorsal back feature, or nil.
func (s Segment) Back() *BinaryFeature {
	if d := s.Dorsal(); d != nil {
		return d.Back
	}
	return nil
}

// Equal reports whether two segments agree on every feature, including
// absence, and on their symbol. Pointer-optional fields make == unusable, so
// equality is structural.
func (s Segment) Equal(other Segment) bool {
	return s.Symbol == other.Symbol &&
		s.Root == other.Root &&
		s.Autosegmental.Equal(other.Autosegmental)
}

// Equal reports structural equality of two autosegmental feature trees.
func (a AutosegmentalFeatures) Equal(b AutosegmentalFeatures) bool {
	return a.Nasal == b.Nasal &&
		a.Lateral == b.Lateral &&
		a.Rhotic == b.Rhotic &&
		eqBin(a.Strident, b.Strident) &&
		eqBin(a.Continuant, b.Continuant) &&
		eqPlace(a.Place, b.Place) &&
		eqLaryngeal(a.Laryngeal, b.Laryngeal)
}

func eqBin(a, b *BinaryFeature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqPlace(a, b *Place) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eqLabial(a.Labial, b.Labial) &&
		eqCoronal(a.Coronal, b.Coronal) &&
		eqDorsal(a.Dorsal, b.Dorsal) &&
		eqPharyngeal(a.Pharyngeal, b.Pharyngeal)
}

func eqLabial(a, b *LabialFeature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Round == b.Round
}

func eqCoronal(a, b *CoronalFeature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eqBin(a.Anterior, b.Anterior) && eqBin(a.Distrib, b.Distrib)
}

func eqDorsal(a, b *DorsalFeature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eqBin(a.High, b.High) && eqBin(a.Low, b.Low) && eqBin(a.Back, b.Back)
}

func eqPharyngeal(a, b *PharyngealFeature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eqBin(a.AdvancedTongueRoot, b.AdvancedTongueRoot)
}

func eqLaryngeal(a, b *LaryngealFeatures) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SpreadGlottis == b.SpreadGlottis &&
		a.ConstrictedGlottis == b.ConstrictedGlottis &&
		eqBin(a.Voice, b.Voice)
}
