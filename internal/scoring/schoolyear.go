package scoring

import (
	"time"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// Graduation-window bounds in whole months from the reference date.
// Someone graduating within eight months (or already graduated) is a
// Senior; each earlier cohort spans a further academic year.
const (
	seniorMaxMonths    = 8
	juniorMaxMonths    = 20
	sophomoreMaxMonths = 32
)

// Classify derives the school-year cohort from extracted attributes and a
// fixed reference date. An explicit graduation date wins; otherwise an
// explicit class-standing keyword; otherwise nil. Internship count,
// resume length, and coursework never participate.
func Classify(attrs entity.Attributes, ref time.Time) *constants.SchoolYear {
	if attrs.GraduationDate != nil {
		if grad, ok := parseGraduationMonth(*attrs.GraduationDate); ok {
			year := classifyByDistance(monthsBetween(ref, grad))
			return &year
		}
	}
	if attrs.ClassStanding != nil {
		if year, ok := constants.ParseSchoolYear(*attrs.ClassStanding); ok {
			return &year
		}
	}
	return nil
}

func classifyByDistance(months int) constants.SchoolYear {
	switch {
	case months <= seniorMaxMonths:
		return constants.Senior
	case months <= juniorMaxMonths:
		return constants.Junior
	case months <= sophomoreMaxMonths:
		return constants.Sophomore
	default:
		return constants.Freshman
	}
}

// monthsBetween counts whole calendar months from ref to grad; days are
// ignored, and past dates come out negative.
func monthsBetween(ref, grad time.Time) int {
	return (grad.Year()-ref.Year())*12 + int(grad.Month()) - int(ref.Month())
}

func parseGraduationMonth(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01", "2006-01-02", "January 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
