package utils

import "strings"

// SplitLines splits free text on newlines, trims each line, and discards
// blanks. Reflection sections (gratitude, wins, improvements) are entered as
// multi-line text and stored as ordered line sequences.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
