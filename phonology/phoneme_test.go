package phonology

import "testing"

func TestPhonemeSymbol(t *testing.T) {
	mono := Mono(Segment{Symbol: "p"})
	if got := mono.Symbol(); got != "p" {
		t.Errorf("Symbol() = %q, want p", got)
	}

	di := Di(Segment{Symbol: "t"}, Segment{Symbol: "ʃ"})
	if got := di.Symbol(); got != "t͡ʃ" {
		t.Errorf("Symbol() = %q, want t͡ʃ", got)
	}
}

func TestPhonemeSegments(t *testing.T) {
	mono := Mono(Segment{Symbol: "p"})
	if segs := mono.Segments(); len(segs) != 1 || segs[0].Symbol != "p" {
		t.Errorf("Segments() = %v, want one segment p", segs)
	}
	if mono.IsDisegment() {
		t.Error("monosegment reported as disegment")
	}

	di := Di(Segment{Symbol: "a"}, Segment{Symbol: "ɪ"})
	segs := di.Segments()
	if len(segs) != 2 || segs[0].Symbol != "a" || segs[1].Symbol != "ɪ" {
		t.Errorf("Segments() = %v, want a then ɪ", segs)
	}
	if !di.IsDisegment() {
		t.Error("disegment not reported as such")
	}
}

func TestPhonemeEqual(t *testing.T) {
	a := Segment{Symbol: "a"}
	b := Segment{Symbol: "b"}

	tests := []struct {
		name string
		x, y Phoneme
		want bool
	}{
		{"mono equal", Mono(a), Mono(a), true},
		{"mono differ", Mono(a), Mono(b), false},
		{"mono vs di", Mono(a), Di(a, b), false},
		{"di equal", Di(a, b), Di(a, b), true},
		{"di order matters", Di(a, b), Di(b, a), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Equal(tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
