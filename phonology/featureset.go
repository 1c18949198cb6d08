package phonology

import (
	"fmt"
	"sort"
	"strings"
)

// Feature is one markable feature state, flattened out of the geometry for
// set-based comparison. Structured features are the primary representation;
// flat sets remain useful for similarity measures, which is the only thing
// this enumeration serves.
type Feature uint8

// The closed enumeration of flattened feature tokens. Group tokens (Labial,
// Dorsal, Laryngeal, ...) record that an articulator participates at all;
// DelRel marks a true affricate, distinguishing it from an arbitrary
// stop-fricative sequence.
const (
	PlusSyllabic Feature = iota
	MinusSyllabic
	PlusConsonantal
	MinusConsonantal
	PlusSonorant
	MinusSonorant
	PlusContinuant
	MinusContinuant
	PlusStrident
	MinusStrident
	FeatNasal
	FeatLateral
	FeatRhotic
	FeatLaryngeal
	PlusVoice
	MinusVoice
	FeatSpreadGlottis
	FeatConstrictedGlottis
	FeatLabial
	FeatRound
	FeatCoronal
	PlusAnterior
	MinusAnterior
	PlusDistrib
	MinusDistrib
	FeatDorsal
	PlusHigh
	MinusHigh
	PlusLow
	MinusLow
	PlusBack
	MinusBack
	FeatPharyngeal
	PlusATR
	MinusATR
	DelRel
)

var featureNames = map[Feature]string{
	PlusSyllabic:           "+syllabic",
	MinusSyllabic:          "-syllabic",
	PlusConsonantal:        "+consonantal",
	MinusConsonantal:       "-consonantal",
	PlusSonorant:           "+sonorant",
	MinusSonorant:          "-sonorant",
	PlusContinuant:         "+continuant",
	MinusContinuant:        "-continuant",
	PlusStrident:           "+strident",
	MinusStrident:          "-strident",
	FeatNasal:              "nasal",
	FeatLateral:            "lateral",
	FeatRhotic:             "rhotic",
	FeatLaryngeal:          "laryngeal",
	PlusVoice:              "+voice",
	MinusVoice:             "-voice",
	FeatSpreadGlottis:      "spread glottis",
	FeatConstrictedGlottis: "constricted glottis",
	FeatLabial:             "labial",
	FeatRound:              "round",
	FeatCoronal:            "coronal",
	PlusAnterior:           "+anterior",
	MinusAnterior:          "-anterior",
	PlusDistrib:            "+distributed",
	MinusDistrib:           "-distributed",
	FeatDorsal:             "dorsal",
	PlusHigh:               "+high",
	MinusHigh:              "-high",
	PlusLow:                "+low",
	MinusLow:               "-low",
	PlusBack:               "+back",
	MinusBack:              "-back",
	FeatPharyngeal:         "pharyngeal",
	PlusATR:                "+ATR",
	MinusATR:               "-ATR",
	DelRel:                 "delayed release",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// FeatureSet is a set of flattened feature tokens.
type FeatureSet map[Feature]struct{}

// Contains reports set membership.
func (fs FeatureSet) Contains(f Feature) bool {
	_, ok := fs[f]
	return ok
}

func (fs FeatureSet) add(f Feature) {
	fs[f] = struct{}{}
}

// Union folds other into a new set containing the members of both.
func (fs FeatureSet) Union(other FeatureSet) FeatureSet {
	out := make(FeatureSet, len(fs)+len(other))
	for f := range fs {
		out.add(f)
	}
	for f := range other {
		out.add(f)
	}
	return out
}

// String renders the set in enumeration order, e.g.
// "[-syllabic +consonantal labial]".
func (fs FeatureSet) String() string {
	feats := make([]Feature, 0, len(fs))
	for f := range fs {
		feats = append(feats, f)
	}
	sort.Slice(feats, func(i, j int) bool { return feats[i] < feats[j] })

	var b strings.Builder
	b.WriteByte('[')
	for i, f := range feats {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.String())
	}
	b.WriteByte(']')
	return b.String()
}

// IntersectionSize counts the members shared by both sets.
func (fs FeatureSet) IntersectionSize(other FeatureSet) int {
	small, large := fs, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for f := range small {
		if large.Contains(f) {
			n++
		}
	}
	return n
}

// Features flattens a phoneme into its set of feature tokens. Absent
// features contribute no token; that is the point of keeping inapplicability
// structural rather than a third feature value. A disegment flattens to the
// union of its segments' tokens, plus DelRel when the pair is an affricate.
func Features(p Phoneme) FeatureSet {
	fs := segmentFeatures(p.First)
	if p.Second != nil {
		fs = fs.Union(segmentFeatures(*p.Second))
		if IsAffricate(p) {
			fs.add(DelRel)
		}
	}
	return fs
}

func segmentFeatures(seg Segment) FeatureSet {
	fs := make(FeatureSet)

	addBinary := func(f BinaryFeature, plus, minus Feature) {
		if f == Marked {
			fs.add(plus)
		} else {
			fs.add(minus)
		}
	}
	addOptBinary := func(f *BinaryFeature, plus, minus Feature) {
		if f != nil {
			addBinary(*f, plus, minus)
		}
	}

	// Root features are always present.
	addBinary(seg.Root.Syllabic, PlusSyllabic, MinusSyllabic)
	addBinary(seg.Root.Sonorant, PlusSonorant, MinusSonorant)
	addBinary(seg.Root.Consonantal, PlusConsonantal, MinusConsonantal)

	// Place features.
	if lab := seg.Labial(); lab != nil {
		fs.add(FeatLabial)
		if lab.Round {
			fs.add(FeatRound)
		}
	}
	if cor := seg.Coronal(); cor != nil {
		fs.add(FeatCoronal)
		addOptBinary(cor.Anterior, PlusAnterior, MinusAnterior)
		addOptBinary(cor.Distrib, PlusDistrib, MinusDistrib)
	}
	if dor := seg.Dorsal(); dor != nil {
		fs.add(FeatDorsal)
		addOptBinary(dor.High, PlusHigh, MinusHigh)
		addOptBinary(dor.Low, PlusLow, MinusLow)
		addOptBinary(dor.Back, PlusBack, MinusBack)
	}
	if phar := seg.Pharyngeal(); phar != nil {
		fs.add(FeatPharyngeal)
		addOptBinary(phar.AdvancedTongueRoot, PlusATR, MinusATR)
	}

	// Non-place autosegmental features.
	addOptBinary(seg.Continuant(), PlusContinuant, MinusContinuant)
	addOptBinary(seg.Strident(), PlusStrident, MinusStrident)
	if seg.Autosegmental.Nasal {
		fs.add(FeatNasal)
	}
	if seg.Autosegmental.Lateral {
		fs.add(FeatLateral)
	}
	if seg.Autosegmental.Rhotic {
		fs.add(FeatRhotic)
	}
	if lar := seg.Laryngeal(); lar != nil {
		fs.add(FeatLaryngeal)
		if lar.SpreadGlottis {
			fs.add(FeatSpreadGlottis)
		}
		if lar.ConstrictedGlottis {
			fs.add(FeatConstrictedGlottis)
		}
		addOptBinary(lar.Voice, PlusVoice, MinusVoice)
	}

	return fs
}
