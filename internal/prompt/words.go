package prompt

import (
	"iter"
	"strings"
	"unicode"
)

// Words yields the whitespace-delimited tokens of text in order. The
// sequence is lazy and may be ranged over any number of times.
func Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if unicode.IsSpace(r) {
				if start >= 0 {
					if !yield(text[start:i]) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// CountWords returns the number of tokens Words yields.
func CountWords(text string) int {
	n := 0
	for range Words(text) {
		n++
	}
	return n
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
