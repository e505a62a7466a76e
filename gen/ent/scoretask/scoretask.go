// Code generated by ent, DO NOT EDIT.

package scoretask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scoretask type in the database.
	Label = "score_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldDocRef holds the string denoting the doc_ref field in the database.
	FieldDocRef = "doc_ref"
	// FieldDocName holds the string denoting the doc_name field in the database.
	FieldDocName = "doc_name"
	// FieldViewURL holds the string denoting the view_url field in the database.
	FieldViewURL = "view_url"
	// FieldPreviewURL holds the string denoting the preview_url field in the database.
	FieldPreviewURL = "preview_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldGpa holds the string denoting the gpa field in the database.
	FieldGpa = "gpa"
	// FieldSchoolYear holds the string denoting the school_year field in the database.
	FieldSchoolYear = "school_year"
	// FieldNumInternships holds the string denoting the num_internships field in the database.
	FieldNumInternships = "num_internships"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldGpaContribution holds the string denoting the gpa_contribution field in the database.
	FieldGpaContribution = "gpa_contribution"
	// FieldExperienceContribution holds the string denoting the experience_contribution field in the database.
	FieldExperienceContribution = "experience_contribution"
	// FieldImpactQualityContribution holds the string denoting the impact_quality_contribution field in the database.
	FieldImpactQualityContribution = "impact_quality_contribution"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the scoretask in the database.
	Table = "score_tasks"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "score_tasks"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for scoretask fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldDocRef,
	FieldDocName,
	FieldViewURL,
	FieldPreviewURL,
	FieldStatus,
	FieldText,
	FieldGpa,
	FieldSchoolYear,
	FieldNumInternships,
	FieldScore,
	FieldGpaContribution,
	FieldExperienceContribution,
	FieldImpactQualityContribution,
	FieldErrorMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocRefValidator is a validator for the "doc_ref" field. It is called by the builders before save.
	DocRefValidator func(string) error
	// DefaultDocName holds the default value on creation for the "doc_name" field.
	DefaultDocName string
	// SchoolYearValidator is a validator for the "school_year" field. It is called by the builders before save.
	SchoolYearValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusDownloaded Status = "downloaded"
	StatusScored     Status = "scored"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusDownloaded, StatusScored, StatusFailed:
		return nil
	default:
		return fmt.Errorf("scoretask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScoreTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByDocRef orders the results by the doc_ref field.
func ByDocRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocRef, opts...).ToFunc()
}

// ByDocName orders the results by the doc_name field.
func ByDocName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocName, opts...).ToFunc()
}

// ByViewURL orders the results by the view_url field.
func ByViewURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewURL, opts...).ToFunc()
}

// ByPreviewURL orders the results by the preview_url field.
func ByPreviewURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByGpa orders the results by the gpa field.
func ByGpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpa, opts...).ToFunc()
}

// BySchoolYear orders the results by the school_year field.
func BySchoolYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchoolYear, opts...).ToFunc()
}

// ByNumInternships orders the results by the num_internships field.
func ByNumInternships(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumInternships, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByGpaContribution orders the results by the gpa_contribution field.
func ByGpaContribution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpaContribution, opts...).ToFunc()
}

// ByExperienceContribution orders the results by the experience_contribution field.
func ByExperienceContribution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceContribution, opts...).ToFunc()
}

// ByImpactQualityContribution orders the results by the impact_quality_contribution field.
func ByImpactQualityContribution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpactQualityContribution, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
