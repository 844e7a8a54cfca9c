package sample

import "strings"

// The naming convention of the source data: primary cNF cultures are named
// like "cNF97.2a" or "28cNF00", and their immortalized counterparts carry an
// "i" prefix, like "icNF97.2a". The match is case-sensitive and does no
// trimming, which is exactly as fragile as the convention itself: an
// identifier from any other naming scheme lands in Other.
var classifyRules = []struct {
	prefix string
	prov   Provenance
}{
	{"i", Immortalized},
	{"cNF", Primary},
	{"28cNF", Primary},
}

// Classify reports the provenance of a sample identifier. Rules are evaluated
// in order and the first matching prefix wins; identifiers matching no rule
// are Other. Classify never fails and is a pure function of its input.
func Classify(identifier string) Provenance {
	for _, rule := range classifyRules {
		if strings.HasPrefix(identifier, rule.prefix) {
			return rule.prov
		}
	}

	return Other
}
