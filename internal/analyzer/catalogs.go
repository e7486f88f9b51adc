package analyzer

import "github.com/jonathan/jobfit/internal/types"

// skillCategory is one group of the technical-skill catalog. Categories are
// held in a slice because extraction order is part of the output contract.
type skillCategory struct {
	Name  string
	Terms []string
}

// technicalCatalog lists the recognized technical skills by category.
// Terms are lowercase and matched as substrings of preprocessed text.
var technicalCatalog = []skillCategory{
	{Name: "programming", Terms: []string{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "swift"}},
	{Name: "web", Terms: []string{"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask"}},
	{Name: "database", Terms: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch"}},
	{Name: "cloud", Terms: []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform"}},
	{Name: "data", Terms: []string{"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "tableau", "powerbi"}},
	{Name: "tools", Terms: []string{"git", "jenkins", "jira", "confluence", "slack", "figma", "photoshop"}},
}

// softSkillCatalog lists the recognized professional-competency phrases.
var softSkillCatalog = []string{
	"leadership", "teamwork", "communication", "problem solving", "analytical",
	"creative", "innovative", "collaborative", "adaptable", "organized",
	"detail-oriented", "self-motivated", "proactive", "strategic", "mentoring",
}

// levelIndicators maps one experience level to the phrases that signal it.
// Levels are checked in slice order and the first indicator hit wins, so
// entry-level phrases shadow senior ones when both appear.
type levelIndicators struct {
	Level      types.ExperienceLevel
	Indicators []string
}

var experienceIndicators = []levelIndicators{
	{Level: types.ExperienceEntry, Indicators: []string{"entry", "junior", "associate", "graduate", "trainee", "0-2 years"}},
	{Level: types.ExperienceMid, Indicators: []string{"mid", "intermediate", "experienced", "3-5 years", "2-4 years"}},
	{Level: types.ExperienceSenior, Indicators: []string{"senior", "lead", "principal", "staff", "5+ years", "6+ years"}},
	{Level: types.ExperienceExecutive, Indicators: []string{"director", "manager", "head", "chief", "vp", "vice president"}},
}

// stopWords is the fixed English stop-word list applied during keyword
// extraction.
var stopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {}, "ourselves": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {}, "he": {}, "him": {},
	"his": {}, "himself": {}, "she": {}, "her": {}, "hers": {}, "herself": {}, "it": {}, "its": {},
	"itself": {}, "they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {}, "what": {},
	"which": {}, "who": {}, "whom": {}, "this": {}, "that": {}, "these": {}, "those": {}, "am": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "having": {}, "do": {}, "does": {}, "did": {}, "doing": {}, "a": {},
	"an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {}, "because": {}, "as": {},
	"until": {}, "while": {}, "of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {}, "up": {}, "down": {},
	"in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {}, "again": {}, "further": {},
	"then": {}, "once": {}, "will": {}, "can": {}, "could": {}, "should": {}, "would": {},
	"may": {}, "might": {}, "must": {}, "shall": {}, "to": {}, "from": {}, "about": {}, "into": {},
	"here": {}, "there": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"no": {}, "nor": {}, "not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {},
}
