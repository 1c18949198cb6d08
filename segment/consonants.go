package segment

import "github.com/heartmarshall/sound/phonology"

// Mutators for building consonants. Manner mutators (Stop, Nasal, Fricative,
// Glide, Approximant) reset the root features for their class; articulator
// mutators (Bilabial, Alveolar, Velar, ...) fill in the place group.

// Voiced marks the segment +voice.
func Voiced(s *phonology.Segment) {
	laryngeal(s).Voice = phonology.Marked.Ptr()
}

// Voiceless marks the segment -voice.
func Voiceless(s *phonology.Segment) {
	laryngeal(s).Voice = phonology.Unmarked.Ptr()
}

// Stop makes the segment a (-sonorant, -continuant) consonant.
func Stop(s *phonology.Segment) {
	s.Root = phonology.RootFeatures{
		Consonantal: phonology.Marked,
		Sonorant:    phonology.Unmarked,
		Syllabic:    phonology.Unmarked,
	}
	s.Autosegmental.Continuant = phonology.Unmarked.Ptr()
}

// Nasal makes the segment a (+sonorant, -continuant) nasal consonant.
func Nasal(s *phonology.Segment) {
	s.Root = phonology.RootFeatures{
		Consonantal: phonology.Marked,
		Sonorant:    phonology.Marked,
		Syllabic:    phonology.Unmarked,
	}
	s.Autosegmental.Continuant = phonology.Unmarked.Ptr()
	s.Autosegmental.Nasal = true
}

// Fricative makes the segment a (-sonorant, +continuant, -strident)
// consonant. Sibilants follow up with Strident to flip the default.
func Fricative(s *phonology.Segment) {
	s.Root = phonology.RootFeatures{
		Consonantal: phonology.Marked,
		Sonorant:    phonology.Unmarked,
		Syllabic:    phonology.Unmarked,
	}
	s.Autosegmental.Continuant = phonology.Marked.Ptr()
	s.Autosegmental.Strident = phonology.Unmarked.Ptr()
}

// Glide makes the segment a semivowel (-consonantal, +sonorant, -syllabic,
// +continuant).
func Glide(s *phonology.Segment) {
	s.Root = phonology.RootFeatures{
		Consonantal: phonology.Unmarked,
		Sonorant:    phonology.Marked,
		Syllabic:    phonology.Unmarked,
	}
	s.Autosegmental.Continuant = phonology.Marked.Ptr()
}

// Approximant makes the segment a (+sonorant, +continuant) consonant.
func Approximant(s *phonology.Segment) {
	s.Root = phonology.RootFeatures{
		Consonantal: phonology.Marked,
		Sonorant:    phonology.Marked,
		Syllabic:    phonology.Unmarked,
	}
	s.Autosegmental.Continuant = phonology.Marked.Ptr()
}

// Strident marks the segment +strident.
func Strident(s *phonology.Segment) {
	s.Autosegmental.Strident = phonology.Marked.Ptr()
}

// Distrib marks the segment +distrib (laminal articulation).
func Distrib(s *phonology.Segment) {
	coronal(s).Distrib = phonology.Marked.Ptr()
}

// Lateral marks the segment lateral.
func Lateral(s *phonology.Segment) {
	s.Autosegmental.Lateral = true
}

// Rhotic marks the segment rhotic.
func Rhotic(s *phonology.Segment) {
	s.Autosegmental.Rhotic = true
}

// Bilabial gives the segment a labial articulation.
func Bilabial(s *phonology.Segment) {
	labial(s)
}

// Labiodental gives the segment a labial articulation. From the perspective
// of distinctive features it is marked the same as Bilabial.
func Labiodental(s *phonology.Segment) {
	Bilabial(s)
}

// Alveolar gives the segment a (+anterior, -distrib) coronal articulation.
func Alveolar(s *phonology.Segment) {
	place(s).Coronal = &phonology.CoronalFeature{
		Anterior: phonology.Marked.Ptr(),
		Distrib:  phonology.Unmarked.Ptr(),
	}
}

// Dental gives the segment a (+anterior) coronal articulation. From the
// perspective of distinctive features it is marked the same as Alveolar.
func Dental(s *phonology.Segment) {
	Alveolar(s)
}

// Postalveolar gives the segment a (-anterior, -distrib) coronal
// articulation.
func Postalveolar(s *phonology.Segment) {
	place(s).Coronal = &phonology.CoronalFeature{
		Anterior: phonology.Unmarked.Ptr(),
		Distrib:  phonology.Unmarked.Ptr(),
	}
}

// Velar gives the segment a dorsal articulation.
func Velar(s *phonology.Segment) {
	dorsal(s)
}

// Palatal gives the segment a dorsal articulation. From the perspective of
// distinctive features it is marked the same as Velar.
func Palatal(s *phonology.Segment) {
	Velar(s)
}

// Glottal gives the segment a laryngeal group without further contrasts.
func Glottal(s *phonology.Segment) {
	laryngeal(s)
}
