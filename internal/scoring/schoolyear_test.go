package scoring

import (
	"testing"
	"time"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

func strPtr(s string) *string { return &s }

// Reference date fixed to December 2025, matching the documented window
// examples: Jan-Aug 2026 -> Senior, Sep 2026-Aug 2027 -> Junior, and so on.
var ref = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyByGraduationDate(t *testing.T) {
	tests := []struct {
		grad string
		want constants.SchoolYear
	}{
		{"2026-01", constants.Senior},
		{"2026-05", constants.Senior},
		{"2026-08", constants.Senior}, // 8 months, upper bound
		{"2026-09", constants.Junior}, // 9 months, lower bound
		{"2027-05", constants.Junior},
		{"2027-08", constants.Junior},
		{"2027-09", constants.Sophomore},
		{"2028-05", constants.Sophomore},
		{"2028-08", constants.Sophomore},
		{"2028-09", constants.Freshman},
		{"2029-06", constants.Freshman},
		{"2025-12", constants.Senior}, // graduating this month
		{"2025-05", constants.Senior}, // already graduated
	}
	for _, tt := range tests {
		got := Classify(entity.Attributes{GraduationDate: strPtr(tt.grad)}, ref)
		if got == nil || *got != tt.want {
			t.Errorf("grad %s: got %v, want %s", tt.grad, got, tt.want)
		}
	}
}

func TestClassifyGraduationDateBeatsClassStanding(t *testing.T) {
	attrs := entity.Attributes{
		GraduationDate: strPtr("2026-05"),
		ClassStanding:  strPtr("Freshman"),
	}
	got := Classify(attrs, ref)
	if got == nil || *got != constants.Senior {
		t.Fatalf("got %v, want Senior (explicit date wins)", got)
	}
}

func TestClassifyByClassStandingKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    constants.SchoolYear
	}{
		{"Freshman", constants.Freshman},
		{"first-year", constants.Freshman},
		{"Sophomore", constants.Sophomore},
		{"Second-year", constants.Sophomore},
		{"junior", constants.Junior},
		{"Third-year", constants.Junior},
		{"SENIOR", constants.Senior},
		{"fourth year", constants.Senior},
	}
	for _, tt := range tests {
		got := Classify(entity.Attributes{ClassStanding: strPtr(tt.keyword)}, ref)
		if got == nil || *got != tt.want {
			t.Errorf("keyword %q: got %v, want %s", tt.keyword, got, tt.want)
		}
	}
}

func TestClassifyNeverInfers(t *testing.T) {
	// Heavy experience but no explicit date or standing: must stay nil.
	attrs := entity.Attributes{
		NumInternships:   4,
		ImpactQuality:    20,
		ExperienceSignal: 40,
	}
	if got := Classify(attrs, ref); got != nil {
		t.Fatalf("got %s, want nil", *got)
	}
	// Unparseable inputs degrade to nil, not an error.
	attrs = entity.Attributes{
		GraduationDate: strPtr("soon"),
		ClassStanding:  strPtr("super-senior"),
	}
	if got := Classify(attrs, ref); got != nil {
		t.Fatalf("got %s, want nil for unparseable inputs", *got)
	}
}
