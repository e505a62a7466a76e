package scoring

import (
	"testing"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

func yearPtr(y constants.SchoolYear) *constants.SchoolYear { return &y }
func floatPtr(f float64) *float64                          { return &f }

func TestComputeRubricVectors(t *testing.T) {
	tests := []struct {
		name      string
		attrs     entity.Attributes
		year      *constants.SchoolYear
		wantScore int
		wantGPA   int
		wantExp   int
		wantImp   int
	}{
		{
			name: "low gpa senior takes penalty after summing",
			attrs: entity.Attributes{
				GPA:            floatPtr(2.8),
				NumInternships: 3,
				ImpactQuality:  18,
			},
			year:      yearPtr(constants.Senior),
			wantScore: 33, // 0 + 40 + 18 - 25
			wantGPA:   0,
			wantExp:   40,
			wantImp:   18,
		},
		{
			name: "freshman graded on experience signal",
			attrs: entity.Attributes{
				GPA:              floatPtr(3.9),
				NumInternships:   0,
				ImpactQuality:    10,
				ExperienceSignal: 20,
			},
			year:      yearPtr(constants.Freshman),
			wantScore: 70, // 40 + 20 + 10
			wantGPA:   40,
			wantExp:   20,
			wantImp:   10,
		},
		{
			name: "missing gpa and unknown year degrade to neutral",
			attrs: entity.Attributes{
				NumInternships: 1,
				ImpactQuality:  12,
			},
			year:      nil,
			wantScore: 57, // 15 + 30 + 12
			wantGPA:   15,
			wantExp:   30,
			wantImp:   12,
		},
		{
			name: "junior with two internships",
			attrs: entity.Attributes{
				GPA:            floatPtr(3.65),
				NumInternships: 2,
				ImpactQuality:  14,
			},
			year:      yearPtr(constants.Junior),
			wantScore: 84, // 30 + 40 + 14
			wantGPA:   30,
			wantExp:   40,
			wantImp:   14,
		},
		{
			name: "sophomore with strong involvement and no internships",
			attrs: entity.Attributes{
				GPA:               floatPtr(3.3),
				NumInternships:    0,
				ImpactQuality:     8,
				StrongInvolvement: true,
			},
			year:      yearPtr(constants.Sophomore),
			wantScore: 63, // 25 + 30 + 8
			wantGPA:   25,
			wantExp:   30,
			wantImp:   8,
		},
		{
			name: "penalty clamps at zero",
			attrs: entity.Attributes{
				GPA:            floatPtr(1.9),
				NumInternships: 0,
				ImpactQuality:  0,
			},
			year:      yearPtr(constants.Senior),
			wantScore: 0, // 0 + 10 + 0 - 25 clamped
			wantGPA:   0,
			wantExp:   10,
			wantImp:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, b := Compute(tt.attrs, tt.year)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if b.GPAContribution != tt.wantGPA {
				t.Errorf("gpa_contribution = %d, want %d", b.GPAContribution, tt.wantGPA)
			}
			if b.ExperienceContribution != tt.wantExp {
				t.Errorf("experience_contribution = %d, want %d", b.ExperienceContribution, tt.wantExp)
			}
			if b.ImpactQualityContribution != tt.wantImp {
				t.Errorf("impact_quality_contribution = %d, want %d", b.ImpactQualityContribution, tt.wantImp)
			}
		})
	}
}

func TestComputeGPABands(t *testing.T) {
	tests := []struct {
		gpa        float64
		wantPoints int
		wantScore  int // with senior, 3 internships, impact 0
	}{
		{2.99, 0, 15},  // 0 + 40 - 25
		{3.0, 20, 60},  // boundary into the 20-point band
		{3.29, 20, 60},
		{3.3, 25, 65},
		{3.59, 25, 65},
		{3.6, 30, 70},
		{3.79, 30, 70},
		{3.8, 40, 80},
		{4.0, 40, 80},
	}
	for _, tt := range tests {
		attrs := entity.Attributes{GPA: floatPtr(tt.gpa), NumInternships: 3}
		score, b := Compute(attrs, yearPtr(constants.Senior))
		if b.GPAContribution != tt.wantPoints {
			t.Errorf("gpa %.2f: contribution = %d, want %d", tt.gpa, b.GPAContribution, tt.wantPoints)
		}
		if score != tt.wantScore {
			t.Errorf("gpa %.2f: score = %d, want %d", tt.gpa, score, tt.wantScore)
		}
	}
}

func TestComputeExperienceTables(t *testing.T) {
	tests := []struct {
		year *constants.SchoolYear
		n    int
		want int
	}{
		{yearPtr(constants.Junior), 0, 15},
		{yearPtr(constants.Junior), 1, 30},
		{yearPtr(constants.Junior), 2, 40},
		{yearPtr(constants.Junior), 5, 40},
		{yearPtr(constants.Senior), 0, 10},
		{yearPtr(constants.Senior), 1, 25},
		{yearPtr(constants.Senior), 2, 35},
		{yearPtr(constants.Senior), 3, 40},
		{yearPtr(constants.Sophomore), 0, 25},
		{yearPtr(constants.Sophomore), 1, 35},
		{nil, 0, 20},
		{nil, 1, 30},
		{nil, 2, 35},
		{nil, 9, 35},
	}
	for _, tt := range tests {
		_, b := Compute(entity.Attributes{NumInternships: tt.n}, tt.year)
		if b.ExperienceContribution != tt.want {
			label := "unknown"
			if tt.year != nil {
				label = string(*tt.year)
			}
			t.Errorf("%s with %d internships: experience = %d, want %d", label, tt.n, b.ExperienceContribution, tt.want)
		}
	}
}

// The stored breakdown is pre-penalty: when the low-GPA penalty applies,
// sum(breakdown) exceeds the final score by exactly 25.
func TestBreakdownAsymmetryUnderPenalty(t *testing.T) {
	attrs := entity.Attributes{GPA: floatPtr(2.5), NumInternships: 3, ImpactQuality: 18}
	score, b := Compute(attrs, yearPtr(constants.Senior))
	if got := b.Sum(); got != 58 {
		t.Fatalf("breakdown sum = %d, want 58", got)
	}
	if score != 33 {
		t.Fatalf("score = %d, want 33", score)
	}
	if b.Sum()-score != 25 {
		t.Errorf("penalty gap = %d, want 25", b.Sum()-score)
	}
}

func TestComputeIsPureAndBounded(t *testing.T) {
	attrs := entity.Attributes{
		GPA:            floatPtr(3.4),
		NumInternships: 2,
		ImpactQuality:  99, // out of range, must clamp to 20
	}
	first, firstB := Compute(attrs, yearPtr(constants.Junior))
	for i := 0; i < 100; i++ {
		score, b := Compute(attrs, yearPtr(constants.Junior))
		if score != first || b != firstB {
			t.Fatalf("call %d: got (%d, %+v), want (%d, %+v)", i, score, b, first, firstB)
		}
	}
	if firstB.ImpactQualityContribution != 20 {
		t.Errorf("impact clamped to %d, want 20", firstB.ImpactQualityContribution)
	}
	if first < 0 || first > 100 {
		t.Errorf("score %d out of [0,100]", first)
	}
}
