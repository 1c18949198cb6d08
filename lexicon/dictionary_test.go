package lexicon

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/sound/accent/genam"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuild(t *testing.T) {
	res, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	dict, stats, err := Build(context.Background(), discardLogger(), res.Entries, genam.Phoneme)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %d, want 0", stats.Failed)
	}
	if stats.Parsed != 4 {
		t.Errorf("Parsed = %d, want 4", stats.Parsed)
	}
	if dict.Len() != 3 {
		t.Errorf("Len() = %d, want 3 headwords", dict.Len())
	}

	entries := dict.Lookup("HELLO")
	if len(entries) != 2 {
		t.Fatalf("Lookup(HELLO) returned %d entries, want 2", len(entries))
	}
	if entries[0].VariantIndex != 0 || entries[1].VariantIndex != 1 {
		t.Errorf("variants out of order: %d, %d", entries[0].VariantIndex, entries[1].VariantIndex)
	}
	if got := entries[0].Pronunciation.Symbols(); got != "həˈlo͡ʊ" {
		t.Errorf("Symbols() = %q, want həˈlo͡ʊ", got)
	}

	cat := dict.Lookup("cat")
	if len(cat) != 1 || len(cat[0].Pronunciation.Syllables) != 1 {
		t.Fatalf("Lookup(cat) = %+v, want one single-syllable entry", cat)
	}
	// Single-syllable stress is dropped during parsing.
	if cat[0].Pronunciation.Syllables[0].Stress != nil {
		t.Error("cat should carry no stress")
	}
}

func TestBuildCountsFailures(t *testing.T) {
	raw := []RawEntry{
		{Word: "good", Description: "1kæt"},
		{Word: "bad", Description: "1k"},
	}

	dict, stats, err := Build(context.Background(), discardLogger(), raw, genam.Phoneme)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stats.Parsed != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want one parsed, one failed", stats)
	}
	if dict.Lookup("bad") != nil {
		t.Error("failed entry must not be in the dictionary")
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	raw := []RawEntry{{Word: "cat", Description: "1kæt"}}
	if _, _, err := Build(ctx, discardLogger(), raw, genam.Phoneme); err == nil {
		t.Error("Build with a cancelled context should fail")
	}
}

func TestDictionaryRange(t *testing.T) {
	res, err := Parse(strings.NewReader(sampleDict))
	if err != nil {
		t.Fatal(err)
	}
	dict, _, err := Build(context.Background(), discardLogger(), res.Entries, genam.Phoneme)
	if err != nil {
		t.Fatal(err)
	}

	seen := 0
	dict.Range(func(Entry) bool {
		seen++
		return true
	})
	if seen != 4 {
		t.Errorf("Range visited %d entries, want 4", seen)
	}

	// Early stop.
	seen = 0
	dict.Range(func(Entry) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Errorf("Range after stop visited %d entries, want 1", seen)
	}

	words := dict.Words()
	if len(words) != 3 || words[0] != "cat" {
		t.Errorf("Words() = %v, want sorted headwords starting with cat", words)
	}
}
