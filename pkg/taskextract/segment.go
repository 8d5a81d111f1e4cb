package taskextract

import (
	"regexp"
	"strings"
)

var sentenceDelimRe = regexp.MustCompile(`[.!?]+`)

// splitSentences cuts a transcription into trimmed, non-empty sentences.
// Abbreviations and decimals are not special-cased.
func splitSentences(transcription string) []string {
	parts := sentenceDelimRe.Split(transcription, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
