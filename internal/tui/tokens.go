package tui

import "github.com/sant0-9/lpg/internal/prompt"

// estimateTokens returns approximate token count (~4 chars per token)
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

type promptStats struct {
	words  int
	tokens int
}

func statsOf(text string) promptStats {
	return promptStats{
		words:  prompt.CountWords(text),
		tokens: estimateTokens(text),
	}
}
