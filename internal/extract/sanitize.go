package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var reGradMonth = regexp.MustCompile(`^\d{4}-\d{2}`)

// SanitizeAttributes normalizes common model deviations so the document
// can still validate: numbers returned as strings, empty strings standing
// in for null, out-of-range sub-scores. Returns the cleaned document and
// the list of touched fields.
func SanitizeAttributes(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var changed []string

	// gpa: accept "3.8" and treat "" / "null" as null
	if v, ok := m["gpa"].(string); ok {
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "null") {
			m["gpa"] = nil
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			m["gpa"] = f
		} else {
			m["gpa"] = nil
		}
		changed = append(changed, "gpa")
	}

	// graduation_date: trim to YYYY-MM, empty means null
	if v, ok := m["graduation_date"].(string); ok {
		s := strings.TrimSpace(v)
		switch {
		case s == "" || strings.EqualFold(s, "null"):
			m["graduation_date"] = nil
			changed = append(changed, "graduation_date")
		case reGradMonth.MatchString(s) && len(s) > 7:
			m["graduation_date"] = s[:7]
			changed = append(changed, "graduation_date")
		}
	}

	// class_standing: empty means null
	if v, ok := m["class_standing"].(string); ok {
		if strings.TrimSpace(v) == "" {
			m["class_standing"] = nil
			changed = append(changed, "class_standing")
		}
	}

	for field, max := range map[string]float64{
		"number_of_internships": 50,
		"impact_quality_score":  20,
		"experience_signal":     40,
	} {
		switch t := m[field].(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				m[field] = clampFloat(f, 0, max)
			} else {
				m[field] = float64(0)
			}
			changed = append(changed, field)
		case float64:
			if c := clampFloat(t, 0, max); c != t {
				m[field] = c
				changed = append(changed, field)
			}
		case nil:
			m[field] = float64(0)
			changed = append(changed, field)
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, changed, err
	}
	return out, changed, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	// whole counts only
	return float64(int(v))
}
