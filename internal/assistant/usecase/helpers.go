package usecase

import (
	"strings"
)

func (uc *implUseCase) pick(choices []string) string {
	return choices[uc.intn(len(choices))]
}

// stripKeywords extracts the argument of a search or app command: the text after the
// first trigger keyword, with every other trigger keyword removed. When nothing follows
// the first keyword, all keywords are removed from the whole text instead.
func stripKeywords(normalized string, keywords []string) string {
	first, end := -1, 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if i := strings.Index(normalized, kw); i >= 0 && (first < 0 || i < first) {
			first, end = i, i+len(kw)
		}
	}

	if first >= 0 {
		if tail := removeAll(normalized[end:], keywords); tail != "" {
			return tail
		}
	}
	return removeAll(normalized, keywords)
}

func removeAll(s string, keywords []string) string {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		s = strings.ReplaceAll(s, kw, "")
	}
	return strings.TrimSpace(s)
}
