package analyzer

import (
	"regexp"
	"strings"
)

// Section patterns run against the original text because they depend on
// line and paragraph boundaries that preprocessing destroys. Each pattern
// is searched independently and its first match contributes fragments in
// pattern order; when two patterns capture overlapping sections the
// duplicate fragments are kept.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)requirements?\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nresponsibilities|\nqualifications|$)`),
	regexp.MustCompile(`(?is)qualifications?\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nresponsibilities|\nrequirements|$)`),
	regexp.MustCompile(`(?is)must\s+have\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nnice\s+to\s+have|\npreferred|$)`),
}

var responsibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)responsibilities\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nrequirements|\nqualifications|$)`),
	regexp.MustCompile(`(?is)duties\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nrequirements|\nqualifications|$)`),
	regexp.MustCompile(`(?is)you\s+will\s*[:\-]?\s*(.+?)(?:\n\s*\n|\nrequirements|\nqualifications|$)`),
}

var bulletSplitRe = regexp.MustCompile(`[•\-\*\n]`)

// minFragmentLen filters noise: fragments at or under this length are
// headings, stray punctuation, or bullet debris.
const minFragmentLen = 10

func extractSections(jobText string, patterns []*regexp.Regexp) []string {
	items := []string{}
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(jobText)
		if match == nil {
			continue
		}
		for _, fragment := range bulletSplitRe.Split(match[1], -1) {
			fragment = strings.TrimSpace(fragment)
			if len(fragment) > minFragmentLen {
				items = append(items, fragment)
			}
		}
	}
	return items
}

// ExtractRequirements pulls requirement fragments from sections headed by
// "requirements", "qualifications", or "must have".
func ExtractRequirements(jobText string) []string {
	return extractSections(jobText, requirementPatterns)
}

// ExtractResponsibilities pulls responsibility fragments from sections
// headed by "responsibilities", "duties", or "you will".
func ExtractResponsibilities(jobText string) []string {
	return extractSections(jobText, responsibilityPatterns)
}
