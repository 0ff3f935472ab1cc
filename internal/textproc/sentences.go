// Package textproc holds the plain-text helpers of the summarization
// pipeline: sentence splitting, word-bounded chunking and bullet formatting.
package textproc

import (
	"regexp"
	"strings"
)

const (
	DefaultMaxChunkWords = 400
	DefaultMaxBullets    = 5
)

// sentenceBoundary matches a terminal punctuation mark and the whitespace
// run that follows it. Only the whitespace is the split point.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text on whitespace that follows '.', '!' or '?'.
// Punctuation stays attached to its sentence. Blank pieces are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0

	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation mark; keep it with the sentence.
		sentences = appendSentence(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	sentences = appendSentence(sentences, text[start:])

	return sentences
}

func appendSentence(sentences []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return sentences
	}
	return append(sentences, s)
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
