package matching

import "strings"

// polePreference is the tri-state a behavioural answer resolves to.
type polePreference int

const (
	poleNeutral polePreference = iota
	poleFirst
	poleSecond
)

// firstPoleKeywords and secondPoleKeywords map a job's descriptive axis
// label to a pole. The two sets are disjoint; labels matching neither
// resolve to neutral.
var firstPoleKeywords = []string{
	"independent", "structured", "fast", "quick",
	"hands-on", "feedback", "innovation", "flexible",
}

var secondPoleKeywords = []string{
	"team", "open", "steady", "thorough",
	"strategic", "autonomy", "process", "set",
}

// ScoreBehaviour scores work-style alignment across the eight fixed
// axis pairings, on [0,100]. Axes missing on either side are skipped;
// when no axis has both sides present the score is the neutral 50.
func ScoreBehaviour(applicant ApplicantBehaviour, job JobBehaviour) int {
	applicantAxes := applicant.axes()
	jobAxes := job.axes()

	var credit float64
	compared := 0

	for i := range applicantAxes {
		value := applicantAxes[i]
		label := jobAxes[i]
		if value == 0 || label == "" {
			continue
		}
		compared++

		applicantPref := applicantPole(value)
		jobPref := jobPole(label)

		if applicantPref == jobPref || applicantPref == poleNeutral || jobPref == poleNeutral {
			credit += 1.0
		} else if abs(value-3) <= 1 {
			// Mild lean on a mismatched axis still earns partial credit.
			credit += 0.5
		}
	}

	if compared == 0 {
		return 50
	}

	return round(credit / float64(compared) * 100)
}

// applicantPole converts a 1-5 answer to its pole: 1-2 first, 4-5
// second, 3 neutral.
func applicantPole(value int) polePreference {
	switch {
	case value <= 2:
		return poleFirst
	case value >= 4:
		return poleSecond
	default:
		return poleNeutral
	}
}

// jobPole resolves a descriptive label like "Independent" or
// "Fast-paced" to a pole by keyword containment.
func jobPole(label string) polePreference {
	lower := strings.ToLower(label)
	for _, kw := range firstPoleKeywords {
		if strings.Contains(lower, kw) {
			return poleFirst
		}
	}
	for _, kw := range secondPoleKeywords {
		if strings.Contains(lower, kw) {
			return poleSecond
		}
	}
	return poleNeutral
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
