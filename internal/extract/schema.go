package extract

// FunctionName is the function-call the model is forced to answer with.
const FunctionName = "extract_resume_attributes"

// BuildAttributesJSONSchema returns the parameter schema for the
// extraction function call. The same schema is used both in the request
// and to validate the returned arguments.
func BuildAttributesJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gpa": map[string]any{
				"type":        []string{"number", "null"},
				"description": "Candidate GPA on a 4.0 scale. Null if not explicitly stated.",
			},
			"graduation_date": map[string]any{
				"type":        []string{"string", "null"},
				"description": "Explicit expected graduation month as YYYY-MM. Null if the resume states none.",
			},
			"class_standing": map[string]any{
				"type":        []string{"string", "null"},
				"description": "Explicit class-standing keyword found in the text (e.g. Junior, Second-year). Null if absent.",
			},
			"number_of_internships": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Count of roles explicitly labeled Intern, Internship, Co-op, or Summer Analyst at an organization.",
			},
			"impact_quality_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     20,
				"description": "Impact quality 0-20: quantified outcomes, ownership language, technical complexity, real-world stakes, up to 5 points each.",
			},
			"experience_signal": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     40,
				"description": "Professional/leadership signal graded 0-40, used for candidates without internship expectations.",
			},
			"strong_involvement": map[string]any{
				"type":        "boolean",
				"description": "True when the resume shows strong club or leadership involvement.",
			},
		},
		"required": []string{
			"gpa",
			"graduation_date",
			"class_standing",
			"number_of_internships",
			"impact_quality_score",
		},
	}
}

// SystemPrompt instructs the model to extract attributes only; scoring
// and school-year date arithmetic happen downstream.
const SystemPrompt = `You are an automated resume attribute extractor.

You will be given raw resume text. Extract structured attributes and return them ONLY via the extract_resume_attributes function. Do not compute any overall score.

Extraction Rules:

GPA:
- Extract the numeric value on a 4.0 scale
- Set to null if not explicitly stated

Graduation Date:
- Extract the EXPLICIT expected graduation month as YYYY-MM (e.g. "Expected May 2026" -> "2026-05")
- Set to null if no graduation date is stated

Class Standing:
- Extract the EXPLICIT keyword only: "Freshman"/"First-year", "Sophomore"/"Second-year", "Junior"/"Third-year", "Senior"/"Fourth-year"
- Set to null if no explicit keyword appears
- DO NOT infer standing from internships, resume length, coursework, age, or work history

Internship Counting:
- Count only roles explicitly labeled "Intern", "Internship", "Co-op", or "Summer Analyst"
- Must be at a company/organization (not personal projects)
- Exclude: clubs, hackathons, research assistantships, volunteering, unlabeled part-time jobs

Impact Quality (0-20):
- Quantified outcomes (up to 5)
- Ownership language (up to 5)
- Technical/operational complexity (up to 5)
- Real-world usage or stakes (up to 5)

Experience Signal (0-40):
- Grade any professional experience, work history, or leadership on a 0-40 scale

Strong Involvement:
- True only for clear, sustained club or leadership involvement

Return results ONLY via the function call. Do not include explanations.`
