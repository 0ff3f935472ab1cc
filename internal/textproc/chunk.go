package textproc

import "strings"

// SplitText groups sentences into chunks of at most maxWords words.
// A sentence is never split: one that alone exceeds maxWords becomes its own
// oversized chunk. maxWords <= 0 selects DefaultMaxChunkWords.
func SplitText(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxChunkWords
	}

	var (
		chunks  []string
		current []string
		count   int
	)

	for _, s := range SplitSentences(text) {
		w := WordCount(s)
		if len(current) > 0 && count+w > maxWords {
			chunks = append(chunks, strings.Join(current, " "))
			current, count = nil, 0
		}
		current = append(current, s)
		count += w
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
