package matching

import "math"

// Combiner weights and boost thresholds. Callers depending on
// bit-compatible output must not change these or the order in which the
// boosts apply.
const (
	skillsWeight    = 0.4
	behaviourWeight = 0.3
	prefsWeight     = 0.3

	boostAllThreshold = 70 // all three sub-scores at or above: additive boost
	boostAnyThreshold = 90 // any sub-score at or above: overall floor
	boostedFloor      = 85
)

// ComputeScores computes the three sub-scores and the boost-adjusted
// overall score for one applicant/job pair. It is deterministic and
// total: missing optional fields degrade to neutral defaults, never
// errors.
func ComputeScores(applicant ApplicantData, job JobData) MatchScores {
	skills := ScoreSkills(applicant.Skills, job)
	behaviour := ScoreBehaviour(applicant.Behaviour, job.Behaviour)
	prefs := ScorePreferences(applicant.Preferences, job.Preferences)

	return MatchScores{
		SkillsScore:    skills,
		BehaviourScore: behaviour,
		PrefsScore:     prefs,
		OverallScore:   combine(skills, behaviour, prefs),
	}
}

// combine produces the overall score from the three sub-scores: a
// 40/30/30 weighted base, then two boosts that counter the weighted
// average's pull toward the middle when signals independently indicate
// a strong match. Boost order matters: the additive boost applies
// before the floor.
func combine(skills, behaviour, prefs int) int {
	overall := round(float64(skills)*skillsWeight + float64(behaviour)*behaviourWeight + float64(prefs)*prefsWeight)

	if skills >= boostAllThreshold && behaviour >= boostAllThreshold && prefs >= boostAllThreshold {
		overall = min(100, overall+round(float64(skills+behaviour+prefs)/30))
	}

	if skills >= boostAnyThreshold || behaviour >= boostAnyThreshold || prefs >= boostAnyThreshold {
		overall = max(overall, boostedFloor)
	}

	return clampScore(overall)
}

func round(f float64) int {
	return int(math.Round(f))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
