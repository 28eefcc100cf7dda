package matching

import "strings"

// frontendMarkers and backendMarkers classify an applicant's skill set
// when the job text yields no keywords and only the title gives a hint.
var frontendMarkers = map[string]bool{
	"react": true, "typescript": true, "javascript": true, "vue": true,
	"angular": true, "next.js": true, "frontend": true,
}

var backendMarkers = map[string]bool{
	"node": true, "python": true, "java": true, "backend": true,
	"api": true, "rest": true,
}

// ScoreSkills scores how well the applicant's skills cover the job's
// requirements, on [0,100]. Keyword-overlap matching on free text is
// noisy, so a set of minimum-score floors trades precision for recall:
// clear partial relevance never yields a near-zero score.
func ScoreSkills(applicantSkills []string, job JobData) int {
	if len(applicantSkills) == 0 {
		return 0
	}

	jobKeywords := ExtractKeywords(job.Title + " " + job.JDText)
	if len(jobKeywords) == 0 {
		return titleHeuristicScore(applicantSkills, job.Title)
	}

	normalizedSkills := make([]string, len(applicantSkills))
	for i, s := range applicantSkills {
		normalizedSkills[i] = strings.ToLower(strings.TrimSpace(s))
	}
	normalizedKeywords := make([]string, len(jobKeywords))
	for i, k := range jobKeywords {
		normalizedKeywords[i] = strings.ToLower(strings.TrimSpace(k))
	}

	matches := 0
	for _, skill := range normalizedSkills {
		if skillMatchesAny(skill, normalizedKeywords) {
			matches++
		}
	}

	// 50% weight on the share of applicant skills that matched, 50% on
	// the share of job requirements covered.
	applicantMatchRatio := float64(matches) / float64(len(normalizedSkills))
	jobCoverageRatio := float64(matches) / float64(max(len(normalizedKeywords), 1))

	score := min(100, round(applicantMatchRatio*50+jobCoverageRatio*50))

	// Minimum-score floors for clear partial relevance.
	if matches >= 2 {
		score = max(score, 40)
	}
	if matches >= 3 {
		score = max(score, 60)
	}
	if jobCoverageRatio >= 0.5 {
		score = max(score, round(jobCoverageRatio*100))
	}
	if matches > 0 && score < 25 {
		denom := max(len(normalizedKeywords), len(normalizedSkills))
		score = max(25, round(float64(matches)/float64(denom)*100))
	}

	return clampScore(score)
}

// skillMatchesAny reports whether a normalized skill matches any job
// keyword: exact equality, substring containment either direction, or
// equality after stripping '.' and '-' ("Next.js" vs "nextjs").
func skillMatchesAny(skill string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == skill {
			return true
		}
		if strings.Contains(keyword, skill) || strings.Contains(skill, keyword) {
			return true
		}
		if stripDots(skill) == stripDots(keyword) {
			return true
		}
	}
	return false
}

// titleHeuristicScore handles jobs whose text yields no keywords by
// matching the title's domain hint against the applicant's skill set.
func titleHeuristicScore(applicantSkills []string, title string) int {
	hasFrontend := false
	hasBackend := false
	for _, s := range applicantSkills {
		lower := strings.ToLower(s)
		if frontendMarkers[lower] {
			hasFrontend = true
		}
		if backendMarkers[lower] {
			hasBackend = true
		}
	}

	titleLower := strings.ToLower(title)
	if strings.Contains(titleLower, "frontend") && hasFrontend {
		return 70
	}
	if strings.Contains(titleLower, "backend") && hasBackend {
		return 70
	}
	if strings.Contains(titleLower, "full") || strings.Contains(titleLower, "stack") {
		if hasFrontend && hasBackend {
			return 75
		}
		return 50
	}

	if len(applicantSkills) > 0 {
		return 50
	}
	return 0
}

func stripDots(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, "-", "")
}
