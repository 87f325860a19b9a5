package services

import (
	"strings"
	"unicode/utf8"
)

const (
	maxResumeChars         = 2000
	maxJobDescriptionChars = 1500
)

// SplitQuestions turns model output into a question set: one entry per
// non-blank line, trimmed, in model order.
func SplitQuestions(text string) []string {
	questions := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// TruncateChars cuts s to at most n characters without splitting a rune.
func TruncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
