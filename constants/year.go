package constants

import "strings"

// SchoolYear is the academic standing cohort used for scoring and filtering.
type SchoolYear string

const (
	Freshman  SchoolYear = "Freshman"
	Sophomore SchoolYear = "Sophomore"
	Junior    SchoolYear = "Junior"
	Senior    SchoolYear = "Senior"
)

var allSchoolYears = []SchoolYear{Freshman, Sophomore, Junior, Senior}

func SchoolYearsAsStrings() []string {
	result := make([]string, len(allSchoolYears))
	for i, y := range allSchoolYears {
		result[i] = string(y)
	}
	return result
}

// IsSchoolYear reports whether s is one of the four known cohorts.
func IsSchoolYear(s string) bool {
	_, ok := ParseSchoolYear(s)
	return ok
}

// ParseSchoolYear canonicalizes an explicit class-standing label. Only
// explicit keywords count; anything else returns false (never inferred
// from experience or coursework).
func ParseSchoolYear(input string) (SchoolYear, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	synonyms := map[string]SchoolYear{
		"freshman":    Freshman,
		"first-year":  Freshman,
		"first year":  Freshman,
		"sophomore":   Sophomore,
		"second-year": Sophomore,
		"second year": Sophomore,
		"junior":      Junior,
		"third-year":  Junior,
		"third year":  Junior,
		"senior":      Senior,
		"fourth-year": Senior,
		"fourth year": Senior,
	}
	if y, ok := synonyms[normalized]; ok {
		return y, true
	}
	return "", false
}
