package entity

// Attributes is the normalized shape we want from the extraction
// collaborator. Absent fields degrade to neutral values in the scorer,
// never to errors.
type Attributes struct {
	// GPA on a 4.0 scale; nil when not explicitly stated.
	GPA *float64 `json:"gpa"`

	// GraduationDate is the explicit expected graduation month,
	// YYYY-MM; nil when the resume states none.
	GraduationDate *string `json:"graduation_date"`

	// ClassStanding is an explicit class-standing keyword found in the
	// text ("Junior", "Second-year", ...); nil when absent. Used only
	// when no graduation date is present.
	ClassStanding *string `json:"class_standing"`

	// NumInternships counts only roles explicitly labeled
	// Intern/Internship/Co-op/Summer Analyst at an organization.
	NumInternships int `json:"number_of_internships"`

	// ImpactQuality is the 0-20 impact sub-score (four signals worth up
	// to 5 each) estimated upstream; the scorer clamps but never
	// re-derives it.
	ImpactQuality int `json:"impact_quality_score"`

	// ExperienceSignal grades professional/leadership signal 0-40; it
	// is the experience contribution for Freshman candidates.
	ExperienceSignal int `json:"experience_signal"`

	// StrongInvolvement marks strong club/leadership involvement and
	// selects the top of the Sophomore experience bands.
	StrongInvolvement bool `json:"strong_involvement"`
}

// ScoreFilter selects a pass/fail cut over scored tasks.
type ScoreFilter string

const (
	ScoreFilterNone   ScoreFilter = ""
	ScoreFilterPassed ScoreFilter = "passed" // score >= 80
	ScoreFilterFailed ScoreFilter = "failed" // score < 80
)

// PassingScore is the pass/fail cut line.
const PassingScore = 80

// TaskFilter is the normalized query filter over a job's tasks: an
// OR-combined cohort set and at most one score cut.
type TaskFilter struct {
	Years []string
	Score ScoreFilter
}

// FilterFlags mirrors the six independent boolean predicates exposed at
// the API boundary before normalization.
type FilterFlags struct {
	Freshman  bool
	Sophomore bool
	Junior    bool
	Senior    bool
	Passed    bool
	Failed    bool
}

// TaskStats aggregates scores over a filtered task set. Zero values stand
// in for the numeric fields when the set is empty.
type TaskStats struct {
	Count   int `json:"num_resumes"`
	Average int `json:"average_score"`
	Max     int `json:"high_score"`
	Min     int `json:"lowest_score"`
}
