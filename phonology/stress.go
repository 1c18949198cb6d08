package phonology

// Stress is a four-level measure of syllable emphasis. Lexical stress is a
// relative property: a level only takes on meaning next to the levels of the
// other syllables in the same word.
//
// There is no solid agreement on how many levels of stress are
// distinguishable, so four are kept (with a reduction to two) to leave the
// most options open. The CMU Pronouncing Dictionary uses three, mapping to
// Unstressed, Stressed, and SecondaryStress.
type Stress uint8

const (
	// ReducedStress marks a syllable that is not only least emphasized but
	// also reduced.
	ReducedStress Stress = iota
	// Unstressed marks a syllable less emphasized than its neighbours.
	Unstressed
	// SecondaryStress marks a stressed syllable that is not the most
	// prominent in its word.
	SecondaryStress
	// Stressed marks the most emphasized syllable in a word.
	Stressed
)

// BinaryStress is the two-level reduction of Stress.
type BinaryStress uint8

const (
	// BinaryUnstressed covers ReducedStress and Unstressed.
	BinaryUnstressed BinaryStress = iota
	// BinaryStressed covers SecondaryStress and Stressed.
	BinaryStressed
)

// Binary reduces four-level stress to two levels: ReducedStress and
// Unstressed become BinaryUnstressed, SecondaryStress and Stressed become
// BinaryStressed.
func (s Stress) Binary() BinaryStress {
	if s >= SecondaryStress {
		return BinaryStressed
	}
	return BinaryUnstressed
}

// Symbol returns the IPA mark for the stress level, if the level has one.
// Stressed is 'ˈ' and SecondaryStress is 'ˌ'; the low levels are unmarked.
func (s Stress) Symbol() (rune, bool) {
	switch s {
	case Stressed:
		return 'ˈ', true
	case SecondaryStress:
		return 'ˌ', true
	default:
		return 0, false
	}
}

// String returns a readable name for logging and error messages.
func (s Stress) String() string {
	switch s {
	case ReducedStress:
		return "reduced"
	case Unstressed:
		return "unstressed"
	case SecondaryStress:
		return "secondary"
	case Stressed:
		return "stressed"
	default:
		return "unknown"
	}
}

// Ptr returns a pointer to the stress value, for populating the optional
// stress of a syllable.
func (s Stress) Ptr() *Stress { return &s }
