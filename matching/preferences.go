package matching

// ScorePreferences scores the alignment of role level (weight 40),
// salary range overlap (weight 30) and work mode (weight 30), on
// [0,100]. Each factor only contributes when both sides provided it;
// with no factor present the score is the neutral 50.
func ScorePreferences(applicant ApplicantPreferences, job JobPreferences) int {
	var score float64
	factors := 0

	if applicant.RoleLevel != "" && job.RoleLevel != "" {
		factors++
		score += float64(roleLevelPoints(applicant.RoleLevel, job.RoleLevel))
	}

	if applicant.SalaryMin > 0 && applicant.SalaryMax > 0 && job.SalaryMin > 0 && job.SalaryMax > 0 {
		factors++
		overlap := salaryOverlapPercent(applicant.SalaryMin, applicant.SalaryMax, job.SalaryMin, job.SalaryMax)
		score += float64(overlap) * 0.3
	}

	if applicant.ModeOfWork != "" && job.ModeOfWork != "" {
		factors++
		if applicant.ModeOfWork == job.ModeOfWork {
			score += 30
		} else if applicant.ModeOfWork == ModeHybrid || job.ModeOfWork == ModeHybrid {
			// Hybrid is compatible with both remote and onsite.
			score += 15
		}
	}

	if factors == 0 {
		return 50
	}

	return min(100, round(score))
}

// roleLevelPoints awards 40 for an exact match, then 20/10/0 by distance
// in the role hierarchy. Levels outside the hierarchy earn nothing
// beyond the exact-match case.
func roleLevelPoints(applicantLevel, jobLevel string) int {
	if applicantLevel == jobLevel {
		return 40
	}

	applicantIndex := roleIndex(applicantLevel)
	jobIndex := roleIndex(jobLevel)
	if applicantIndex == -1 || jobIndex == -1 {
		return 0
	}

	switch abs(applicantIndex - jobIndex) {
	case 1:
		return 20
	case 2:
		return 10
	default:
		return 0
	}
}

func roleIndex(level string) int {
	for i, l := range roleHierarchy {
		if l == level {
			return i
		}
	}
	return -1
}

// salaryOverlapPercent returns how much of the applicant's expected
// range the job's range covers, as an integer percentage in [0,100].
// A degenerate applicant range counts as no overlap.
func salaryOverlapPercent(applicantMin, applicantMax, jobMin, jobMax int) int {
	overlapMin := max(applicantMin, jobMin)
	overlapMax := min(applicantMax, jobMax)
	if overlapMin > overlapMax {
		return 0
	}

	applicantRange := applicantMax - applicantMin
	if applicantRange == 0 {
		return 0
	}

	return min(100, round(float64(overlapMax-overlapMin)/float64(applicantRange)*100))
}
