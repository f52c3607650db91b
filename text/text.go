// Package text prepares raw documents for speech synthesis: it normalizes
// punctuation, strips characters the synthesis models choke on, and groups
// sentences into bounded chunks.
package text

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Default chunk bounds, tuned for natural-sounding synthesis requests.
const (
	MinChars = 100
	MaxChars = 300
)

// ErrBadBounds reports chunk bounds that are non-positive or inverted.
var ErrBadBounds = errors.New("invalid chunk bounds")

var punctReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, // curly double quotes
	"‘", "'", "’", "'", // curly single quotes
	"—", "-", "–", "-", // em/en dash
	" ", " ", // non-breaking space
)

var (
	nonPrintable = regexp.MustCompile("[^\x20-\x7e\n\r\t]")
	whitespace   = regexp.MustCompile(`\s+`)
	sentenceEnd  = regexp.MustCompile(`[.!?]\s+`)
)

// Sanitize maps curly quotes, dashes and non-breaking spaces to their plain
// ASCII forms, drops every other character outside the printable range, and
// collapses whitespace runs to single spaces. Sentence-terminal punctuation
// is never altered. Sanitize is idempotent.
func Sanitize(s string) string {
	s = punctReplacer.Replace(s)
	s = nonPrintable.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// SplitSentences splits text on terminal punctuation followed by whitespace
// or end of string. The rule is a regex heuristic: abbreviations like "Dr."
// and decimal numbers can trigger false boundaries. Text with no terminal
// punctuation is returned as a single sentence.
func SplitSentences(s string) []string {
	if s == "" {
		return nil
	}
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(s, -1) {
		sentences = append(sentences, s[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(s) {
		sentences = append(sentences, s[start:])
	}
	return sentences
}

// Chunks greedily groups consecutive sentences into chunks of roughly min to
// max characters. A chunk is closed only once it has reached min and the next
// sentence would push it past max, so a chunk may exceed max while still
// short of min. A single sentence longer than max becomes its own chunk;
// sentences are never split. The final chunk is kept even when it falls
// short of min.
func Chunks(s string, min, max int) ([]string, error) {
	if min <= 0 || max <= 0 || min > max {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrBadBounds, min, max)
	}

	var chunks []string
	current := ""
	for _, sentence := range SplitSentences(s) {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		switch {
		case len(current)+len(sentence)+1 <= max:
			current += sentence + " "
		case len(strings.TrimSpace(current)) >= min:
			chunks = append(chunks, strings.TrimSpace(current))
			current = sentence + " "
		default:
			current += sentence + " "
		}
	}
	if trimmed := strings.TrimSpace(current); trimmed != "" {
		chunks = append(chunks, trimmed)
	}
	return chunks, nil
}

// Prepare sanitizes raw text and joins its chunks with newlines, producing
// the form handed to a synthesis engine. Empty or whitespace-only input
// yields an empty string.
func Prepare(s string, min, max int) (string, error) {
	chunks, err := Chunks(Sanitize(s), min, max)
	if err != nil {
		return "", err
	}
	return strings.Join(chunks, "\n"), nil
}
