// Package matching implements the compatibility scoring engine between
// applicants and jobs. It is a pure computation layer: no I/O, no clock,
// no persistence. Callers construct ApplicantData and JobData from their
// stored records and receive integer scores in [0,100].
package matching

// RoleLevel constants, ordered from most junior to most senior.
const (
	RoleLevelIntern = "Intern"
	RoleLevelJunior = "Junior"
	RoleLevelSenior = "Senior"
	RoleLevelLead   = "Lead"
)

// roleHierarchy orders role levels for distance-based partial credit.
var roleHierarchy = []string{RoleLevelIntern, RoleLevelJunior, RoleLevelSenior, RoleLevelLead}

// ModeOfWork constants.
const (
	ModeWorkFromHome = "Work from Home"
	ModeOnSite       = "On site"
	ModeHybrid       = "Hybrid"
)

// ApplicantPreferences holds the job preferences an applicant set during
// onboarding. Zero values mean "not provided".
type ApplicantPreferences struct {
	TargetJobTitle string `json:"target_job_title,omitempty"`
	RoleLevel      string `json:"role_level,omitempty"`
	SalaryMin      int    `json:"salary_min,omitempty"`
	SalaryMax      int    `json:"salary_max,omitempty"`
	ModeOfWork     string `json:"mode_of_work,omitempty"`
}

// JobPreferences holds the preferences an HR user set for a job.
type JobPreferences struct {
	RoleLevel  string `json:"role_level,omitempty"`
	SalaryMin  int    `json:"salary_min,omitempty"`
	SalaryMax  int    `json:"salary_max,omitempty"`
	ModeOfWork string `json:"mode_of_work,omitempty"`
}

// ApplicantBehaviour holds the eight behavioural quiz answers on a 1-5
// scale. 1-2 leans to the first pole of the axis, 4-5 to the second,
// 3 is neutral. Zero means unanswered.
type ApplicantBehaviour struct {
	IndependentVsTeam   int `json:"independent_vs_team,omitempty"`
	StructuredVsOpen    int `json:"structured_vs_open,omitempty"`
	FastVsSteady        int `json:"fast_vs_steady,omitempty"`
	QuickVsThorough     int `json:"quick_vs_thorough,omitempty"`
	HandsOnVsStrategic  int `json:"hands_on_vs_strategic,omitempty"`
	FeedbackVsAutonomy  int `json:"feedback_vs_autonomy,omitempty"`
	InnovationVsProcess int `json:"innovation_vs_process,omitempty"`
	FlexibleVsSchedule  int `json:"flexible_vs_schedule,omitempty"`
}

// JobBehaviour holds the descriptive labels an HR user picked for the
// same eight axes (e.g. "Independent", "Team", "Fast-paced"). Empty
// means unanswered.
type JobBehaviour struct {
	WorkStyle       string `json:"work_style,omitempty"`
	TaskStructure   string `json:"task_structure,omitempty"`
	EnvironmentPace string `json:"environment_pace,omitempty"`
	DecisionMaking  string `json:"decision_making,omitempty"`
	RoleFocus       string `json:"role_focus,omitempty"`
	FeedbackStyle   string `json:"feedback_style,omitempty"`
	InnovationStyle string `json:"innovation_style,omitempty"`
	ScheduleType    string `json:"schedule_type,omitempty"`
}

// axes returns the answers in the fixed axis order used for pairing
// against JobBehaviour.axes.
func (b ApplicantBehaviour) axes() [8]int {
	return [8]int{
		b.IndependentVsTeam,
		b.StructuredVsOpen,
		b.FastVsSteady,
		b.QuickVsThorough,
		b.HandsOnVsStrategic,
		b.FeedbackVsAutonomy,
		b.InnovationVsProcess,
		b.FlexibleVsSchedule,
	}
}

// axes returns the labels in the fixed axis order used for pairing
// against ApplicantBehaviour.axes.
func (b JobBehaviour) axes() [8]string {
	return [8]string{
		b.WorkStyle,
		b.TaskStructure,
		b.EnvironmentPace,
		b.DecisionMaking,
		b.RoleFocus,
		b.FeedbackStyle,
		b.InnovationStyle,
		b.ScheduleType,
	}
}

// ApplicantData is the applicant-side input for one scoring call.
type ApplicantData struct {
	Skills      []string             `json:"skills"`
	Preferences ApplicantPreferences `json:"preferences"`
	Behaviour   ApplicantBehaviour   `json:"behaviour"`
}

// JobData is the job-side input for one scoring call.
type JobData struct {
	Title       string         `json:"title"`
	JDText      string         `json:"jd_text,omitempty"`
	Preferences JobPreferences `json:"preferences"`
	Behaviour   JobBehaviour   `json:"behaviour"`
}

// MatchScores holds the four computed compatibility scores, each an
// integer in [0,100].
type MatchScores struct {
	SkillsScore    int `json:"skills_score"`
	BehaviourScore int `json:"behaviour_score"`
	PrefsScore     int `json:"prefs_score"`
	OverallScore   int `json:"overall_score"`
}

// MatchResult is MatchScores plus the optional AI-generated summary.
// The summary is produced by a collaborator outside this package and
// may be empty when generation failed or was skipped.
type MatchResult struct {
	MatchScores
	AISummary string `json:"ai_summary,omitempty"`
}
