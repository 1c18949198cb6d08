package lexicon

import (
	"context"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sound/accent"
	"github.com/heartmarshall/sound/phonology"
	"github.com/heartmarshall/sound/words"
)

// Entry is one pronunciation of a headword, fully parsed.
type Entry struct {
	Word          string
	VariantIndex  int
	Description   string
	Pronunciation phonology.Word
}

// Dictionary maps normalized headwords to their parsed pronunciations.
// It is immutable after Build and safe for concurrent readers.
type Dictionary struct {
	entries map[string][]Entry
}

// Lookup returns the pronunciations of a headword, primary variant first,
// or nil if the word is unknown.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.entries[normalizeWord(word)]
}

// Len returns the number of distinct headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns all headwords in sorted order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.entries))
	for w := range d.entries {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Range calls fn for every entry until fn returns false. Iteration order is
// unspecified.
func (d *Dictionary) Range(fn func(Entry) bool) {
	for _, entries := range d.entries {
		for _, e := range entries {
			if !fn(e) {
				return
			}
		}
	}
}

// BuildStats counts the outcome of a Build run.
type BuildStats struct {
	Parsed int
	Failed int
}

// Build parses every converted entry against the accent, fanning the work
// out across workers. Entries whose descriptions the parser rejects are
// counted and logged at debug level, not fatal: one bad dictionary line must
// not sink the other hundred thousand. Build fails only if ctx is cancelled.
func Build(ctx context.Context, log *slog.Logger, raw []RawEntry, lookup accent.Lookup) (*Dictionary, BuildStats, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(raw) {
		workers = 1
	}

	type shard struct {
		entries []Entry
		failed  int
	}
	shards := make([]shard, workers)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(raw) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, len(raw))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			local := &shards[w]
			for _, re := range raw[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				word, err := words.Parse(re.Description, lookup)
				if err != nil {
					local.failed++
					log.Debug("skip entry",
						slog.String("word", re.Word),
						slog.String("description", re.Description),
						slog.String("error", err.Error()))
					continue
				}
				local.entries = append(local.entries, Entry{
					Word:          re.Word,
					VariantIndex:  re.VariantIndex,
					Description:   re.Description,
					Pronunciation: word,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BuildStats{}, err
	}

	d := &Dictionary{entries: make(map[string][]Entry)}
	var stats BuildStats
	for _, sh := range shards {
		stats.Parsed += len(sh.entries)
		stats.Failed += sh.failed
		for _, e := range sh.entries {
			d.entries[e.Word] = append(d.entries[e.Word], e)
		}
	}
	for w := range d.entries {
		entries := d.entries[w]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].VariantIndex < entries[j].VariantIndex
		})
	}

	log.Info("lexicon built",
		slog.Int("words", d.Len()),
		slog.Int("pronunciations", stats.Parsed),
		slog.Int("failed", stats.Failed))
	return d, stats, nil
}
