package report

import "strings"

const ellipsis = "..."

// wrap breaks already-translated text into lines no wider than width. Words longer
// than a line are split. Blank input yields no lines.
func wrap(m Measurer, text string, st Style, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for m.Width(word, st) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				cut := fitPrefix(m, word, st, width)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			if word == "" {
				continue
			}
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if m.Width(candidate, st) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// fitPrefix returns the byte length of the longest prefix of word that fits, at least 1.
// Translated text is single-byte, so byte offsets are character offsets.
func fitPrefix(m Measurer, word string, st Style, width float64) int {
	n := 1
	for n < len(word) && m.Width(word[:n+1], st) <= width {
		n++
	}
	return n
}

// clip keeps at most limit lines, marking the last kept line when text was dropped.
func clip(lines []string, limit int) []string {
	if len(lines) <= limit {
		return lines
	}
	kept := append([]string(nil), lines[:limit]...)
	kept[limit-1] = strings.TrimRight(kept[limit-1], " ") + ellipsis
	return kept
}
