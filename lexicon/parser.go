package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RawEntry is one CMU dictionary line converted to this library's notation,
// before being parsed against an accent.
type RawEntry struct {
	// Word is the normalized (lower-cased) headword.
	Word string
	// VariantIndex is 0 for the primary pronunciation, 1 for "(2)", etc.
	VariantIndex int
	// Description is the word description in this library's notation.
	Description string
}

// Stats holds conversion counters for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	SkippedLines int
}

// ParseResult holds the converted CMU dictionary data.
type ParseResult struct {
	Entries []RawEntry
	Stats   Stats
}

// UnknownPhoneError reports an ARPAbet phone with no mapping.
type UnknownPhoneError struct {
	Phone string
}

func (e *UnknownPhoneError) Error() string {
	return fmt.Sprintf("unknown ARPAbet phone %q", e.Phone)
}

// Parse reads a CMU Pronouncing Dictionary and converts each entry into a
// word description. Lines look like:
//
//	HELLO  HH AH0 L OW1
//	HELLO(2)  HH EH0 L OW1
//
// Comment lines start with ";;;". Lines whose phones cannot be converted are
// counted as skipped rather than failing the whole read; a malformed line
// shape (fewer than two fields) is an error.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			result.Stats.CommentLines++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return ParseResult{}, fmt.Errorf("line %d: expected word and phones, got %q", result.Stats.TotalLines, line)
		}

		word, variant := splitVariant(fields[0])
		desc, err := description(fields[1:])
		if err != nil {
			result.Stats.SkippedLines++
			continue
		}

		result.Entries = append(result.Entries, RawEntry{
			Word:         normalizeWord(word),
			VariantIndex: variant,
			Description:  desc,
		})
		result.Stats.ParsedLines++
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("read dictionary: %w", err)
	}

	return result, nil
}

// splitVariant splits "HELLO(2)" into ("HELLO", 1). Headwords without a
// variant suffix are variant 0.
func splitVariant(head string) (string, int) {
	open := strings.IndexByte(head, '(')
	if open < 0 || !strings.HasSuffix(head, ")") {
		return head, 0
	}
	n := 0
	for _, r := range head[open+1 : len(head)-1] {
		if r < '0' || r > '9' {
			return head, 0
		}
		n = n*10 + int(r-'0')
	}
	if n < 2 {
		return head, 0
	}
	return head[:open], n - 1
}

// normalizeWord prepares a headword for lookup: trimmed and lower-cased,
// with diacritics, hyphens, and apostrophes preserved.
func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
