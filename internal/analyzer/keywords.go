package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// ExtractKeywords counts word tokens that are not stop-words and are longer
// than two characters, returning the top n by count. Ties keep
// first-encountered order so repeated calls on the same input produce the
// same list.
func ExtractKeywords(jobText string, topN int) []types.KeywordCount {
	processed := Preprocess(jobText)

	counts := make(map[string]int)
	order := []string{}
	for _, word := range Tokenize(processed) {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]types.KeywordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, types.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
