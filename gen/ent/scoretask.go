// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/google/uuid"
)

// ScoreTask is the model entity for the ScoreTask schema.
type ScoreTask struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// DocRef holds the value of the "doc_ref" field.
	DocRef string `json:"doc_ref,omitempty"`
	// DocName holds the value of the "doc_name" field.
	DocName string `json:"doc_name,omitempty"`
	// ViewURL holds the value of the "view_url" field.
	ViewURL *string `json:"view_url,omitempty"`
	// PreviewURL holds the value of the "preview_url" field.
	PreviewURL *string `json:"preview_url,omitempty"`
	// Status holds the value of the "status" field.
	Status scoretask.Status `json:"status,omitempty"`
	// Text holds the value of the "text" field.
	Text *string `json:"text,omitempty"`
	// Gpa holds the value of the "gpa" field.
	Gpa *float64 `json:"gpa,omitempty"`
	// SchoolYear holds the value of the "school_year" field.
	SchoolYear *string `json:"school_year,omitempty"`
	// NumInternships holds the value of the "num_internships" field.
	NumInternships *int `json:"num_internships,omitempty"`
	// Score holds the value of the "score" field.
	Score *int `json:"score,omitempty"`
	// GpaContribution holds the value of the "gpa_contribution" field.
	GpaContribution *int `json:"gpa_contribution,omitempty"`
	// ExperienceContribution holds the value of the "experience_contribution" field.
	ExperienceContribution *int `json:"experience_contribution,omitempty"`
	// ImpactQualityContribution holds the value of the "impact_quality_contribution" field.
	ImpactQualityContribution *int `json:"impact_quality_contribution,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScoreTaskQuery when eager-loading is set.
	Edges        ScoreTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScoreTaskEdges holds the relations/edges for other nodes in the graph.
type ScoreTaskEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScoreTaskEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoretask.FieldGpa:
			values[i] = new(sql.NullFloat64)
		case scoretask.FieldNumInternships, scoretask.FieldScore, scoretask.FieldGpaContribution, scoretask.FieldExperienceContribution, scoretask.FieldImpactQualityContribution:
			values[i] = new(sql.NullInt64)
		case scoretask.FieldDocRef, scoretask.FieldDocName, scoretask.FieldViewURL, scoretask.FieldPreviewURL, scoretask.FieldStatus, scoretask.FieldText, scoretask.FieldSchoolYear, scoretask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case scoretask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case scoretask.FieldID, scoretask.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreTask fields.
func (_m *ScoreTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoretask.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scoretask.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case scoretask.FieldDocRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_ref", values[i])
			} else if value.Valid {
				_m.DocRef = value.String
			}
		case scoretask.FieldDocName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_name", values[i])
			} else if value.Valid {
				_m.DocName = value.String
			}
		case scoretask.FieldViewURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field view_url", values[i])
			} else if value.Valid {
				_m.ViewURL = new(string)
				*_m.ViewURL = value.String
			}
		case scoretask.FieldPreviewURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_url", values[i])
			} else if value.Valid {
				_m.PreviewURL = new(string)
				*_m.PreviewURL = value.String
			}
		case scoretask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scoretask.Status(value.String)
			}
		case scoretask.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = new(string)
				*_m.Text = value.String
			}
		case scoretask.FieldGpa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gpa", values[i])
			} else if value.Valid {
				_m.Gpa = new(float64)
				*_m.Gpa = value.Float64
			}
		case scoretask.FieldSchoolYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field school_year", values[i])
			} else if value.Valid {
				_m.SchoolYear = new(string)
				*_m.SchoolYear = value.String
			}
		case scoretask.FieldNumInternships:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_internships", values[i])
			} else if value.Valid {
				_m.NumInternships = new(int)
				*_m.NumInternships = int(value.Int64)
			}
		case scoretask.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case scoretask.FieldGpaContribution:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gpa_contribution", values[i])
			} else if value.Valid {
				_m.GpaContribution = new(int)
				*_m.GpaContribution = int(value.Int64)
			}
		case scoretask.FieldExperienceContribution:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_contribution", values[i])
			} else if value.Valid {
				_m.ExperienceContribution = new(int)
				*_m.ExperienceContribution = int(value.Int64)
			}
		case scoretask.FieldImpactQualityContribution:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impact_quality_contribution", values[i])
			} else if value.Valid {
				_m.ImpactQualityContribution = new(int)
				*_m.ImpactQualityContribution = int(value.Int64)
			}
		case scoretask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scoretask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreTask.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ScoreTask entity.
func (_m *ScoreTask) QueryJob() *JobQuery {
	return NewScoreTaskClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ScoreTask.
// Note that you need to call ScoreTask.Unwrap() before calling this method if this ScoreTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreTask) Update() *ScoreTaskUpdateOne {
	return NewScoreTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreTask) Unwrap() *ScoreTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreTask) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("doc_ref=")
	builder.WriteString(_m.DocRef)
	builder.WriteString(", ")
	builder.WriteString("doc_name=")
	builder.WriteString(_m.DocName)
	builder.WriteString(", ")
	if v := _m.ViewURL; v != nil {
		builder.WriteString("view_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreviewURL; v != nil {
		builder.WriteString("preview_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Text; v != nil {
		builder.WriteString("text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gpa; v != nil {
		builder.WriteString("gpa=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SchoolYear; v != nil {
		builder.WriteString("school_year=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NumInternships; v != nil {
		builder.WriteString("num_internships=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GpaContribution; v != nil {
		builder.WriteString("gpa_contribution=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExperienceContribution; v != nil {
		builder.WriteString("experience_contribution=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ImpactQualityContribution; v != nil {
		builder.WriteString("impact_quality_contribution=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreTasks is a parsable slice of ScoreTask.
type ScoreTasks []*ScoreTask
