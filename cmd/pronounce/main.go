// Command pronounce parses word descriptions written in the General
// American sound notation and prints their syllable structure.
//
// Usage:
//
//	pronounce [--features] DESCRIPTION...
//
// Each argument is one word description, e.g. "ˈhɛ.lo͡ʊ". With
// --features the flattened distinctive features of every phoneme are
// printed as well.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/sound/accent/genam"
	"github.com/heartmarshall/sound/internal/app"
	"github.com/heartmarshall/sound/internal/config"
	"github.com/heartmarshall/sound/phonology"
	"github.com/heartmarshall/sound/words"
)

func main() {
	featuresFlag := flag.Bool("features", false, "print flattened distinctive features per phoneme")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: pronounce [--features] DESCRIPTION...")
		os.Exit(1)
	}

	failed := false
	for _, desc := range flag.Args() {
		word, err := words.Parse(desc, genam.Phoneme)
		if err != nil {
			logger.Error("parse description",
				slog.String("description", desc),
				slog.String("error", err.Error()))
			failed = true
			continue
		}
		printWord(word, *featuresFlag)
	}
	if failed {
		os.Exit(1)
	}
}

func printWord(word phonology.Word, features bool) {
	fmt.Println(word.Symbols())
	for i, syl := range word.Syllables {
		stress := "unstressed"
		if syl.Stress != nil {
			stress = syl.Stress.String()
		}
		fmt.Printf("  syllable %d (%s): %s\n", i+1, stress, syl.Symbols())
		if !features {
			continue
		}
		for _, p := range syl.Phonemes() {
			fmt.Printf("    %s: %s\n", p.Symbol(), phonology.Features(p))
		}
	}
}
