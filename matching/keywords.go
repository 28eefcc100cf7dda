package matching

import (
	"regexp"
	"strings"
	"unicode"
)

// techVocabulary is the fixed set of technology and domain terms matched
// against job text. Kept as one table so it stays auditable in isolation.
var techVocabulary = []string{
	"react",
	"typescript",
	"javascript",
	"js",
	"node",
	"nodejs",
	"node.js",
	"python",
	"java",
	"golang",
	"sql",
	"postgresql",
	"postgres",
	"mongodb",
	"mongo",
	"aws",
	"docker",
	"kubernetes",
	"k8s",
	"next.js",
	"nextjs",
	"vue",
	"vue.js",
	"vuejs",
	"angular",
	"express",
	"nestjs",
	"graphql",
	"rest",
	"api",
	"frontend",
	"front-end",
	"front end",
	"backend",
	"back-end",
	"back end",
	"fullstack",
	"full-stack",
	"full stack",
	"devops",
	"dev-ops",
	"ci/cd",
	"cicd",
	"git",
	"html",
	"css",
	"tailwind",
	"tailwindcss",
	"redux",
	"jest",
	"testing",
	"web3",
	"blockchain",
	"ethereum",
}

// commonWords are short everyday words excluded from the capitalized-word
// scan so sentence-initial words do not pollute the keyword set.
var commonWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "day": true,
	"get": true, "has": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "boy": true,
	"did": true, "let": true, "put": true, "say": true, "she": true,
	"too": true, "use": true,
}

// vocabularyPatterns holds one word-boundary regexp per vocabulary term,
// compiled once at package init.
var vocabularyPatterns = compileVocabulary()

func compileVocabulary() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(techVocabulary))
	for i, term := range techVocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// ExtractKeywords extracts a deduplicated keyword set from free text,
// typically a job title concatenated with its description. Order is not
// significant. Returns nil for blank input.
//
// Three sources feed the result: the fixed technology vocabulary matched
// on word boundaries, capitalized words of length >= 3 outside a small
// stoplist (candidate proper-noun technology mentions), and injected
// domain keywords ("frontend", "backend", "fullstack") so common role
// titles always yield at least a domain signal.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	add := func(kw string) {
		if !seen[kw] {
			seen[kw] = true
			found = append(found, kw)
		}
	}

	lowerText := strings.ToLower(text)

	for i, pattern := range vocabularyPatterns {
		if pattern.MatchString(lowerText) {
			add(techVocabulary[i])
		}
	}

	// Capitalized words that look like technology names.
	for _, word := range strings.Fields(text) {
		cleaned := strings.ToLower(stripNonAlphanumeric(word))
		if len(cleaned) < 3 || commonWords[cleaned] {
			continue
		}
		if r := []rune(word); len(r) > 0 && unicode.IsUpper(r[0]) {
			add(cleaned)
		}
	}

	// Guarantee a domain signal for common role titles.
	if strings.Contains(lowerText, "frontend") || strings.Contains(lowerText, "front-end") || strings.Contains(lowerText, "ui") {
		add("frontend")
	}
	if strings.Contains(lowerText, "backend") || strings.Contains(lowerText, "back-end") || strings.Contains(lowerText, "server") {
		add("backend")
	}
	if strings.Contains(lowerText, "full") && strings.Contains(lowerText, "stack") {
		add("fullstack")
		add("frontend")
		add("backend")
	}

	return found
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
