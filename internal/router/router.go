package router

import (
	"context"
	"strings"
)

// Classify determines user intent from message.
// Convention: Method accepts context.Context as first parameter
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	normalized := Normalize(message)

	for i, rule := range r.rules {
		if kw, ok := matchAny(normalized, rule.Keywords); ok {
			r.l.Debugf(ctx, "%s: Classified as %s (rule %d, keyword %q)", LogPrefixClassify, rule.Intent, i+1, kw)
			return RouterOutput{
				Intent:     rule.Intent,
				Action:     rule.Action,
				Keyword:    kw,
				Rule:       i + 1,
				Keywords:   rule.Keywords,
				Normalized: normalized,
			}
		}
	}

	r.l.Debugf(ctx, "%s: No rule matched, falling back to %s", LogPrefixClassify, IntentDefault)
	return RouterOutput{
		Intent:     IntentDefault,
		Normalized: normalized,
	}
}

// Normalize lower-cases message and trims surrounding whitespace.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func matchAny(s string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return kw, true
		}
	}
	return "", false
}
