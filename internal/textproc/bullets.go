package textproc

import (
	"strings"
	"unicode/utf8"
)

// minBulletLen filters generation artifacts: sentences of this many
// characters or fewer are not turned into bullets.
const minBulletLen = 10

// ForceBullets turns freeform generated text into at most maxItems lines,
// each prefixed with "- ". maxItems <= 0 selects DefaultMaxBullets.
func ForceBullets(text string, maxItems int) string {
	if maxItems <= 0 {
		maxItems = DefaultMaxBullets
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))

	bullets := make([]string, 0, maxItems)
	for _, s := range SplitSentences(text) {
		if len(bullets) == maxItems {
			break
		}
		if utf8.RuneCountInString(s) > minBulletLen {
			bullets = append(bullets, "- "+s)
		}
	}

	return strings.Join(bullets, "\n")
}
