// Command rhymefind ranks the words of a CMU-format pronouncing
// dictionary by how well they rhyme with a target word.
//
// Usage:
//
//	rhymefind [--dict FILE] [--top N] [--min-score F] WORD
//	rhymefind [--dict FILE] [--top N] [--min-score F] --desc DESCRIPTION
//
// The target is either a headword looked up in the dictionary or, with
// --desc, a word description in the General American sound notation.
// Results are scored on the final syllable with Jaccard similarity over
// flattened distinctive features.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/heartmarshall/sound/accent/genam"
	"github.com/heartmarshall/sound/internal/app"
	"github.com/heartmarshall/sound/internal/config"
	"github.com/heartmarshall/sound/lexicon"
	"github.com/heartmarshall/sound/phonology"
	"github.com/heartmarshall/sound/rhyme"
	"github.com/heartmarshall/sound/words"
)

type candidate struct {
	word  string
	desc  string
	score float64
}

func main() {
	dictFlag := flag.String("dict", "", "CMU-format dictionary file (overrides config)")
	topFlag := flag.Int("top", 0, "how many results to print (overrides config)")
	minScoreFlag := flag.Float64("min-score", -1, "minimum similarity to report (overrides config)")
	descFlag := flag.String("desc", "", "target as a word description instead of a headword")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", app.BuildVersion()))

	// CLI flags override config.
	dictPath := cfg.Lexicon.Path
	if *dictFlag != "" {
		dictPath = *dictFlag
	}
	topN := cfg.Lexicon.TopN
	if *topFlag > 0 {
		topN = *topFlag
	}
	minScore := cfg.Lexicon.MinScore
	if *minScoreFlag >= 0 {
		minScore = *minScoreFlag
	}

	if dictPath == "" {
		fmt.Fprintln(os.Stderr, "rhymefind: no dictionary file (set --dict or lexicon.path)")
		os.Exit(1)
	}
	if *descFlag == "" && flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rhymefind [flags] WORD")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dict, err := loadDictionary(ctx, logger, dictPath)
	if err != nil {
		logger.Error("load dictionary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	target, err := targetWord(dict, *descFlag, flag.Arg(0))
	if err != nil {
		logger.Error("resolve target", slog.String("error", err.Error()))
		os.Exit(1)
	}

	results := rank(dict, target, minScore)
	if len(results) > topN {
		results = results[:topN]
	}
	for _, c := range results {
		fmt.Printf("%.3f\t%s\t%s\n", c.score, c.word, c.desc)
	}
}

func loadDictionary(ctx context.Context, logger *slog.Logger, path string) (*lexicon.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := lexicon.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Info("dictionary parsed",
		slog.Int("lines", res.Stats.TotalLines),
		slog.Int("entries", len(res.Entries)),
		slog.Int("skipped", res.Stats.SkippedLines))

	dict, _, err := lexicon.Build(ctx, logger, res.Entries, genam.Phoneme)
	return dict, err
}

func targetWord(dict *lexicon.Dictionary, desc, headword string) (phonology.Word, error) {
	if desc != "" {
		return words.Parse(desc, genam.Phoneme)
	}
	entries := dict.Lookup(headword)
	if len(entries) == 0 {
		return phonology.Word{}, fmt.Errorf("word %q not in dictionary", headword)
	}
	return entries[0].Pronunciation, nil
}

func rank(dict *lexicon.Dictionary, target phonology.Word, minScore float64) []candidate {
	last := target.Syllables[len(target.Syllables)-1]

	var out []candidate
	dict.Range(func(e lexicon.Entry) bool {
		syls := e.Pronunciation.Syllables
		score := rhyme.Rhyme(last, syls[len(syls)-1])
		if score >= minScore {
			out = append(out, candidate{word: e.Word, desc: e.Description, score: score})
		}
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].word < out[j].word
	})
	return out
}
