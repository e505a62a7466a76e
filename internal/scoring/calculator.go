// Package scoring turns extracted resume attributes into a bounded,
// reproducible score. Everything here is pure: no I/O, no clock, no
// shared state, and no error paths — absent or out-of-range inputs
// degrade to defined neutral values.
package scoring

import (
	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// lowGPAPenalty is applied after summing the three contributions when
// GPA is stated and below 3.0. The stored breakdown stays pre-penalty,
// so its sum may exceed the final score.
const lowGPAPenalty = -25

// Compute applies the screening rubric to one resume's attributes.
// Identical input always yields identical output.
func Compute(attrs entity.Attributes, year *constants.SchoolYear) (int, entity.Breakdown) {
	gpaPts, penalty := gpaContribution(attrs.GPA)
	b := entity.Breakdown{
		GPAContribution:           gpaPts,
		ExperienceContribution:    experienceContribution(attrs, year),
		ImpactQualityContribution: clamp(attrs.ImpactQuality, 0, 20),
	}
	score := clamp(b.Sum()+penalty, 0, 100)
	return score, b
}

// gpaContribution maps GPA to 0-40 points. A stated GPA below 3.0 earns
// zero points here plus the end penalty; a missing GPA is neutral.
func gpaContribution(gpa *float64) (points, penalty int) {
	if gpa == nil {
		return 15, 0
	}
	switch g := *gpa; {
	case g < 3.0:
		return 0, lowGPAPenalty
	case g < 3.3:
		return 20, 0
	case g < 3.6:
		return 25, 0
	case g < 3.8:
		return 30, 0
	default:
		return 40, 0
	}
}

// experienceContribution maps internship count to 0-40 points under the
// expectations of the candidate's school year. Freshmen are graded on
// the upstream-estimated professional/leadership signal instead, and the
// strong-involvement flag picks the top of the Sophomore bands.
func experienceContribution(attrs entity.Attributes, year *constants.SchoolYear) int {
	n := attrs.NumInternships
	if n < 0 {
		n = 0
	}

	if year == nil {
		// unknown standing: score conservatively
		switch {
		case n == 0:
			return 20
		case n == 1:
			return 30
		default:
			return 35
		}
	}

	switch *year {
	case constants.Freshman:
		return clamp(attrs.ExperienceSignal, 0, 40)
	case constants.Sophomore:
		if n == 0 {
			if attrs.StrongInvolvement {
				return 30
			}
			return 25
		}
		if attrs.StrongInvolvement {
			return 40
		}
		return 35
	case constants.Junior:
		switch {
		case n == 0:
			return 15
		case n == 1:
			return 30
		default:
			return 40
		}
	case constants.Senior:
		switch {
		case n == 0:
			return 10
		case n == 1:
			return 25
		case n == 2:
			return 35
		default:
			return 40
		}
	default:
		// unrecognized label behaves like unknown standing
		switch {
		case n == 0:
			return 20
		case n == 1:
			return 30
		default:
			return 35
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
