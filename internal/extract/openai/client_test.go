package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RichieRish05/ProRankAI/internal/extract"
)

func fakeCompletion(t *testing.T, arguments string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req struct {
			FunctionCall map[string]string `json:"function_call"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.FunctionCall["name"] != extract.FunctionName {
			t.Errorf("function_call = %v", req.FunctionCall)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"function_call": map[string]any{
						"name":      extract.FunctionName,
						"arguments": arguments,
					},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestExtractParsesFunctionCall(t *testing.T) {
	args := `{
		"gpa": 3.7,
		"graduation_date": "2026-05",
		"class_standing": null,
		"number_of_internships": 2,
		"impact_quality_score": 14
	}`
	srv := httptest.NewServer(fakeCompletion(t, args))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	attrs, raw, err := c.Extract(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if attrs.GPA == nil || *attrs.GPA != 3.7 {
		t.Errorf("GPA = %v, want 3.7", attrs.GPA)
	}
	if attrs.GraduationDate == nil || *attrs.GraduationDate != "2026-05" {
		t.Errorf("GraduationDate = %v", attrs.GraduationDate)
	}
	if attrs.NumInternships != 2 || attrs.ImpactQuality != 14 {
		t.Errorf("internships=%d impact=%d", attrs.NumInternships, attrs.ImpactQuality)
	}
	if len(raw) == 0 {
		t.Error("expected raw arguments returned")
	}
}

func TestExtractLenientSanitizeRecovers(t *testing.T) {
	// GPA arrives as a string: fails strict validation, recovered by
	// the lenient pass.
	args := `{
		"gpa": "3.2",
		"graduation_date": null,
		"class_standing": "Junior",
		"number_of_internships": 1,
		"impact_quality_score": 8
	}`
	srv := httptest.NewServer(fakeCompletion(t, args))
	defer srv.Close()

	strict := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	if _, _, err := strict.Extract(context.Background(), "resume"); err == nil {
		t.Error("strict client accepted string gpa")
	}

	lenient := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", LenientOptional: true}, nil)
	attrs, _, err := lenient.Extract(context.Background(), "resume")
	if err != nil {
		t.Fatalf("lenient Extract: %v", err)
	}
	if attrs.GPA == nil || *attrs.GPA != 3.2 {
		t.Errorf("GPA = %v, want 3.2", attrs.GPA)
	}
	if attrs.ClassStanding == nil || *attrs.ClassStanding != "Junior" {
		t.Errorf("ClassStanding = %v", attrs.ClassStanding)
	}
}

func TestExtractNoFunctionCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "plain text answer"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, _, err := c.Extract(context.Background(), "resume"); err == nil {
		t.Error("expected error when model skips the function call")
	}
}

func TestExtractHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, _, err := c.Extract(context.Background(), "resume"); err == nil {
		t.Error("expected error on non-2xx status")
	}
}
