package extract

import (
	"encoding/json"
	"testing"
)

func TestSanitizeAttributesNormalizesStringNumbers(t *testing.T) {
	doc := []byte(`{
		"gpa": "3.8",
		"graduation_date": "2026-05-15",
		"class_standing": "",
		"number_of_internships": "2",
		"impact_quality_score": 25,
		"experience_signal": null
	}`)

	cleaned, changed, err := SanitizeAttributes(doc)
	if err != nil {
		t.Fatalf("SanitizeAttributes: %v", err)
	}
	if len(changed) == 0 {
		t.Fatal("expected changed fields")
	}

	var m map[string]any
	if err := json.Unmarshal(cleaned, &m); err != nil {
		t.Fatal(err)
	}
	if m["gpa"] != 3.8 {
		t.Errorf("gpa = %v, want 3.8", m["gpa"])
	}
	if m["graduation_date"] != "2026-05" {
		t.Errorf("graduation_date = %v, want 2026-05", m["graduation_date"])
	}
	if m["class_standing"] != nil {
		t.Errorf("class_standing = %v, want null", m["class_standing"])
	}
	if m["number_of_internships"] != 2.0 {
		t.Errorf("number_of_internships = %v, want 2", m["number_of_internships"])
	}
	if m["impact_quality_score"] != 20.0 {
		t.Errorf("impact_quality_score = %v, want clamp to 20", m["impact_quality_score"])
	}
	if m["experience_signal"] != 0.0 {
		t.Errorf("experience_signal = %v, want 0", m["experience_signal"])
	}

	// The cleaned document must satisfy the strict schema.
	if err := ValidateJSONAgainstSchema(BuildAttributesJSONSchema(), cleaned); err != nil {
		t.Errorf("cleaned document fails schema: %v", err)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildAttributesJSONSchema()

	good := []byte(`{
		"gpa": null,
		"graduation_date": "2026-05",
		"class_standing": null,
		"number_of_internships": 1,
		"impact_quality_score": 12
	}`)
	if err := ValidateJSONAgainstSchema(schema, good); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	missingRequired := []byte(`{"gpa": 3.5}`)
	if err := ValidateJSONAgainstSchema(schema, missingRequired); err == nil {
		t.Error("document missing required fields accepted")
	}

	outOfRange := []byte(`{
		"gpa": 3.5,
		"graduation_date": null,
		"class_standing": null,
		"number_of_internships": 1,
		"impact_quality_score": 99
	}`)
	if err := ValidateJSONAgainstSchema(schema, outOfRange); err == nil {
		t.Error("out-of-range impact score accepted")
	}
}
