package phonology

import "testing"

// bareSegment has root features only; every optional group is absent.
func bareSegment() Segment {
	return Segment{Symbol: "x"}
}

// stopT is a hand-built voiceless alveolar stop.
func stopT() Segment {
	return Segment{
		Root: RootFeatures{
			Consonantal: Marked,
			Sonorant:    Unmarked,
			Syllabic:    Unmarked,
		},
		Autosegmental: AutosegmentalFeatures{
			Continuant: Unmarked.Ptr(),
			Place: &Place{
				Coronal: &CoronalFeature{
					Anterior: Marked.Ptr(),
					Distrib:  Unmarked.Ptr(),
				},
			},
			Laryngeal: &LaryngealFeatures{Voice: Unmarked.Ptr()},
		},
		Symbol: "t",
	}
}

func TestBinaryFeatureString(t *testing.T) {
	if Marked.String() != "+" || Unmarked.String() != "-" {
		t.Errorf("String() = %q/%q, want +/-", Marked, Unmarked)
	}
}

func TestAccessorsAbsentTree(t *testing.T) {
	seg := bareSegment()

	if seg.Continuant() != nil {
		t.Error("Continuant() should be nil without the feature")
	}
	if seg.Voice() != nil {
		t.Error("Voice() should be nil without a laryngeal group")
	}
	if seg.Labial() != nil || seg.Coronal() != nil || seg.Dorsal() != nil || seg.Pharyngeal() != nil {
		t.Error("place accessors should be nil without a place group")
	}
	if seg.High() != nil || seg.Low() != nil || seg.Back() != nil {
		t.Error("dorsal accessors should be nil without a dorsal group")
	}
}

func TestAccessorsPresentTree(t *testing.T) {
	seg := stopT()

	if c := seg.Continuant(); c == nil || *c != Unmarked {
		t.Errorf("Continuant() = %v, want -", c)
	}
	if v := seg.Voice(); v == nil || *v != Unmarked {
		t.Errorf("Voice() = %v, want -", v)
	}
	cor := seg.Coronal()
	if cor == nil {
		t.Fatal("Coronal() should be present")
	}
	if cor.Anterior == nil || *cor.Anterior != Marked {
		t.Errorf("Anterior = %v, want +", cor.Anterior)
	}
}

func TestSegmentEqual(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		want   bool
	}{
		{"identical stops", stopT(), stopT(), true},
		{"bare vs bare", bareSegment(), bareSegment(), true},
		{"bare vs stop", bareSegment(), stopT(), false},
		{
			"symbol differs",
			stopT(),
			func() Segment { s := stopT(); s.Symbol = "d"; return s }(),
			false,
		},
		{
			"voice differs",
			stopT(),
			func() Segment { s := stopT(); s.Autosegmental.Laryngeal.Voice = Marked.Ptr(); return s }(),
			false,
		},
		{
			"absence vs unmarked",
			stopT(),
			func() Segment { s := stopT(); s.Autosegmental.Strident = Unmarked.Ptr(); return s }(),
			false,
		},
		{
			"group absent vs empty group",
			bareSegment(),
			func() Segment { s := bareSegment(); s.Autosegmental.Place = &Place{}; return s }(),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
