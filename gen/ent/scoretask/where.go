// Code generated by ent, DO NOT EDIT.

package scoretask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/RichieRish05/ProRankAI/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldJobID, v))
}

// DocRef applies equality check predicate on the "doc_ref" field. It's identical to DocRefEQ.
func DocRef(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldDocRef, v))
}

// DocName applies equality check predicate on the "doc_name" field. It's identical to DocNameEQ.
func DocName(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldDocName, v))
}

// ViewURL applies equality check predicate on the "view_url" field. It's identical to ViewURLEQ.
func ViewURL(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldViewURL, v))
}

// PreviewURL applies equality check predicate on the "preview_url" field. It's identical to PreviewURLEQ.
func PreviewURL(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldPreviewURL, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldText, v))
}

// Gpa applies equality check predicate on the "gpa" field. It's identical to GpaEQ.
func Gpa(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldGpa, v))
}

// SchoolYear applies equality check predicate on the "school_year" field. It's identical to SchoolYearEQ.
func SchoolYear(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldSchoolYear, v))
}

// NumInternships applies equality check predicate on the "num_internships" field. It's identical to NumInternshipsEQ.
func NumInternships(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldNumInternships, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldScore, v))
}

// GpaContribution applies equality check predicate on the "gpa_contribution" field. It's identical to GpaContributionEQ.
func GpaContribution(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldGpaContribution, v))
}

// ExperienceContribution applies equality check predicate on the "experience_contribution" field. It's identical to ExperienceContributionEQ.
func ExperienceContribution(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldExperienceContribution, v))
}

// ImpactQualityContribution applies equality check predicate on the "impact_quality_contribution" field. It's identical to ImpactQualityContributionEQ.
func ImpactQualityContribution(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldImpactQualityContribution, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldJobID, vs...))
}

// DocRefEQ applies the EQ predicate on the "doc_ref" field.
func DocRefEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldDocRef, v))
}

// DocRefNEQ applies the NEQ predicate on the "doc_ref" field.
func DocRefNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldDocRef, v))
}

// DocRefIn applies the In predicate on the "doc_ref" field.
func DocRefIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldDocRef, vs...))
}

// DocRefNotIn applies the NotIn predicate on the "doc_ref" field.
func DocRefNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldDocRef, vs...))
}

// DocRefGT applies the GT predicate on the "doc_ref" field.
func DocRefGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldDocRef, v))
}

// DocRefGTE applies the GTE predicate on the "doc_ref" field.
func DocRefGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldDocRef, v))
}

// DocRefLT applies the LT predicate on the "doc_ref" field.
func DocRefLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldDocRef, v))
}

// DocRefLTE applies the LTE predicate on the "doc_ref" field.
func DocRefLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldDocRef, v))
}

// DocRefContains applies the Contains predicate on the "doc_ref" field.
func DocRefContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldDocRef, v))
}

// DocRefHasPrefix applies the HasPrefix predicate on the "doc_ref" field.
func DocRefHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldDocRef, v))
}

// DocRefHasSuffix applies the HasSuffix predicate on the "doc_ref" field.
func DocRefHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldDocRef, v))
}

// DocRefEqualFold applies the EqualFold predicate on the "doc_ref" field.
func DocRefEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldDocRef, v))
}

// DocRefContainsFold applies the ContainsFold predicate on the "doc_ref" field.
func DocRefContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldDocRef, v))
}

// DocNameEQ applies the EQ predicate on the "doc_name" field.
func DocNameEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldDocName, v))
}

// DocNameNEQ applies the NEQ predicate on the "doc_name" field.
func DocNameNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldDocName, v))
}

// DocNameIn applies the In predicate on the "doc_name" field.
func DocNameIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldDocName, vs...))
}

// DocNameNotIn applies the NotIn predicate on the "doc_name" field.
func DocNameNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldDocName, vs...))
}

// DocNameGT applies the GT predicate on the "doc_name" field.
func DocNameGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldDocName, v))
}

// DocNameGTE applies the GTE predicate on the "doc_name" field.
func DocNameGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldDocName, v))
}

// DocNameLT applies the LT predicate on the "doc_name" field.
func DocNameLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldDocName, v))
}

// DocNameLTE applies the LTE predicate on the "doc_name" field.
func DocNameLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldDocName, v))
}

// DocNameContains applies the Contains predicate on the "doc_name" field.
func DocNameContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldDocName, v))
}

// DocNameHasPrefix applies the HasPrefix predicate on the "doc_name" field.
func DocNameHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldDocName, v))
}

// DocNameHasSuffix applies the HasSuffix predicate on the "doc_name" field.
func DocNameHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldDocName, v))
}

// DocNameEqualFold applies the EqualFold predicate on the "doc_name" field.
func DocNameEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldDocName, v))
}

// DocNameContainsFold applies the ContainsFold predicate on the "doc_name" field.
func DocNameContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldDocName, v))
}

// ViewURLEQ applies the EQ predicate on the "view_url" field.
func ViewURLEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldViewURL, v))
}

// ViewURLNEQ applies the NEQ predicate on the "view_url" field.
func ViewURLNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldViewURL, v))
}

// ViewURLIn applies the In predicate on the "view_url" field.
func ViewURLIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldViewURL, vs...))
}

// ViewURLNotIn applies the NotIn predicate on the "view_url" field.
func ViewURLNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldViewURL, vs...))
}

// ViewURLGT applies the GT predicate on the "view_url" field.
func ViewURLGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldViewURL, v))
}

// ViewURLGTE applies the GTE predicate on the "view_url" field.
func ViewURLGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldViewURL, v))
}

// ViewURLLT applies the LT predicate on the "view_url" field.
func ViewURLLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldViewURL, v))
}

// ViewURLLTE applies the LTE predicate on the "view_url" field.
func ViewURLLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldViewURL, v))
}

// ViewURLContains applies the Contains predicate on the "view_url" field.
func ViewURLContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldViewURL, v))
}

// ViewURLHasPrefix applies the HasPrefix predicate on the "view_url" field.
func ViewURLHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldViewURL, v))
}

// ViewURLHasSuffix applies the HasSuffix predicate on the "view_url" field.
func ViewURLHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldViewURL, v))
}

// ViewURLIsNil applies the IsNil predicate on the "view_url" field.
func ViewURLIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldViewURL))
}

// ViewURLNotNil applies the NotNil predicate on the "view_url" field.
func ViewURLNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldViewURL))
}

// ViewURLEqualFold applies the EqualFold predicate on the "view_url" field.
func ViewURLEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldViewURL, v))
}

// ViewURLContainsFold applies the ContainsFold predicate on the "view_url" field.
func ViewURLContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldViewURL, v))
}

// PreviewURLEQ applies the EQ predicate on the "preview_url" field.
func PreviewURLEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldPreviewURL, v))
}

// PreviewURLNEQ applies the NEQ predicate on the "preview_url" field.
func PreviewURLNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldPreviewURL, v))
}

// PreviewURLIn applies the In predicate on the "preview_url" field.
func PreviewURLIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldPreviewURL, vs...))
}

// PreviewURLNotIn applies the NotIn predicate on the "preview_url" field.
func PreviewURLNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldPreviewURL, vs...))
}

// PreviewURLGT applies the GT predicate on the "preview_url" field.
func PreviewURLGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldPreviewURL, v))
}

// PreviewURLGTE applies the GTE predicate on the "preview_url" field.
func PreviewURLGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldPreviewURL, v))
}

// PreviewURLLT applies the LT predicate on the "preview_url" field.
func PreviewURLLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldPreviewURL, v))
}

// PreviewURLLTE applies the LTE predicate on the "preview_url" field.
func PreviewURLLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldPreviewURL, v))
}

// PreviewURLContains applies the Contains predicate on the "preview_url" field.
func PreviewURLContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldPreviewURL, v))
}

// PreviewURLHasPrefix applies the HasPrefix predicate on the "preview_url" field.
func PreviewURLHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldPreviewURL, v))
}

// PreviewURLHasSuffix applies the HasSuffix predicate on the "preview_url" field.
func PreviewURLHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldPreviewURL, v))
}

// PreviewURLIsNil applies the IsNil predicate on the "preview_url" field.
func PreviewURLIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldPreviewURL))
}

// PreviewURLNotNil applies the NotNil predicate on the "preview_url" field.
func PreviewURLNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldPreviewURL))
}

// PreviewURLEqualFold applies the EqualFold predicate on the "preview_url" field.
func PreviewURLEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldPreviewURL, v))
}

// PreviewURLContainsFold applies the ContainsFold predicate on the "preview_url" field.
func PreviewURLContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldPreviewURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldStatus, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldText, v))
}

// GpaEQ applies the EQ predicate on the "gpa" field.
func GpaEQ(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldGpa, v))
}

// GpaNEQ applies the NEQ predicate on the "gpa" field.
func GpaNEQ(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldGpa, v))
}

// GpaIn applies the In predicate on the "gpa" field.
func GpaIn(vs ...float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldGpa, vs...))
}

// GpaNotIn applies the NotIn predicate on the "gpa" field.
func GpaNotIn(vs ...float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldGpa, vs...))
}

// GpaGT applies the GT predicate on the "gpa" field.
func GpaGT(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldGpa, v))
}

// GpaGTE applies the GTE predicate on the "gpa" field.
func GpaGTE(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldGpa, v))
}

// GpaLT applies the LT predicate on the "gpa" field.
func GpaLT(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldGpa, v))
}

// GpaLTE applies the LTE predicate on the "gpa" field.
func GpaLTE(v float64) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldGpa, v))
}

// GpaIsNil applies the IsNil predicate on the "gpa" field.
func GpaIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldGpa))
}

// GpaNotNil applies the NotNil predicate on the "gpa" field.
func GpaNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldGpa))
}

// SchoolYearEQ applies the EQ predicate on the "school_year" field.
func SchoolYearEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldSchoolYear, v))
}

// SchoolYearNEQ applies the NEQ predicate on the "school_year" field.
func SchoolYearNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldSchoolYear, v))
}

// SchoolYearIn applies the In predicate on the "school_year" field.
func SchoolYearIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldSchoolYear, vs...))
}

// SchoolYearNotIn applies the NotIn predicate on the "school_year" field.
func SchoolYearNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldSchoolYear, vs...))
}

// SchoolYearGT applies the GT predicate on the "school_year" field.
func SchoolYearGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldSchoolYear, v))
}

// SchoolYearGTE applies the GTE predicate on the "school_year" field.
func SchoolYearGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldSchoolYear, v))
}

// SchoolYearLT applies the LT predicate on the "school_year" field.
func SchoolYearLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldSchoolYear, v))
}

// SchoolYearLTE applies the LTE predicate on the "school_year" field.
func SchoolYearLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldSchoolYear, v))
}

// SchoolYearContains applies the Contains predicate on the "school_year" field.
func SchoolYearContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldSchoolYear, v))
}

// SchoolYearHasPrefix applies the HasPrefix predicate on the "school_year" field.
func SchoolYearHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldSchoolYear, v))
}

// SchoolYearHasSuffix applies the HasSuffix predicate on the "school_year" field.
func SchoolYearHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldSchoolYear, v))
}

// SchoolYearIsNil applies the IsNil predicate on the "school_year" field.
func SchoolYearIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldSchoolYear))
}

// SchoolYearNotNil applies the NotNil predicate on the "school_year" field.
func SchoolYearNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldSchoolYear))
}

// SchoolYearEqualFold applies the EqualFold predicate on the "school_year" field.
func SchoolYearEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldSchoolYear, v))
}

// SchoolYearContainsFold applies the ContainsFold predicate on the "school_year" field.
func SchoolYearContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldSchoolYear, v))
}

// NumInternshipsEQ applies the EQ predicate on the "num_internships" field.
func NumInternshipsEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldNumInternships, v))
}

// NumInternshipsNEQ applies the NEQ predicate on the "num_internships" field.
func NumInternshipsNEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldNumInternships, v))
}

// NumInternshipsIn applies the In predicate on the "num_internships" field.
func NumInternshipsIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldNumInternships, vs...))
}

// NumInternshipsNotIn applies the NotIn predicate on the "num_internships" field.
func NumInternshipsNotIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldNumInternships, vs...))
}

// NumInternshipsGT applies the GT predicate on the "num_internships" field.
func NumInternshipsGT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldNumInternships, v))
}

// NumInternshipsGTE applies the GTE predicate on the "num_internships" field.
func NumInternshipsGTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldNumInternships, v))
}

// NumInternshipsLT applies the LT predicate on the "num_internships" field.
func NumInternshipsLT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldNumInternships, v))
}

// NumInternshipsLTE applies the LTE predicate on the "num_internships" field.
func NumInternshipsLTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldNumInternships, v))
}

// NumInternshipsIsNil applies the IsNil predicate on the "num_internships" field.
func NumInternshipsIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldNumInternships))
}

// NumInternshipsNotNil applies the NotNil predicate on the "num_internships" field.
func NumInternshipsNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldNumInternships))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldScore))
}

// GpaContributionEQ applies the EQ predicate on the "gpa_contribution" field.
func GpaContributionEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldGpaContribution, v))
}

// GpaContributionNEQ applies the NEQ predicate on the "gpa_contribution" field.
func GpaContributionNEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldGpaContribution, v))
}

// GpaContributionIn applies the In predicate on the "gpa_contribution" field.
func GpaContributionIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldGpaContribution, vs...))
}

// GpaContributionNotIn applies the NotIn predicate on the "gpa_contribution" field.
func GpaContributionNotIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldGpaContribution, vs...))
}

// GpaContributionGT applies the GT predicate on the "gpa_contribution" field.
func GpaContributionGT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldGpaContribution, v))
}

// GpaContributionGTE applies the GTE predicate on the "gpa_contribution" field.
func GpaContributionGTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldGpaContribution, v))
}

// GpaContributionLT applies the LT predicate on the "gpa_contribution" field.
func GpaContributionLT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldGpaContribution, v))
}

// GpaContributionLTE applies the LTE predicate on the "gpa_contribution" field.
func GpaContributionLTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldGpaContribution, v))
}

// GpaContributionIsNil applies the IsNil predicate on the "gpa_contribution" field.
func GpaContributionIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldGpaContribution))
}

// GpaContributionNotNil applies the NotNil predicate on the "gpa_contribution" field.
func GpaContributionNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldGpaContribution))
}

// ExperienceContributionEQ applies the EQ predicate on the "experience_contribution" field.
func ExperienceContributionEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldExperienceContribution, v))
}

// ExperienceContributionNEQ applies the NEQ predicate on the "experience_contribution" field.
func ExperienceContributionNEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldExperienceContribution, v))
}

// ExperienceContributionIn applies the In predicate on the "experience_contribution" field.
func ExperienceContributionIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldExperienceContribution, vs...))
}

// ExperienceContributionNotIn applies the NotIn predicate on the "experience_contribution" field.
func ExperienceContributionNotIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldExperienceContribution, vs...))
}

// ExperienceContributionGT applies the GT predicate on the "experience_contribution" field.
func ExperienceContributionGT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldExperienceContribution, v))
}

// ExperienceContributionGTE applies the GTE predicate on the "experience_contribution" field.
func ExperienceContributionGTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldExperienceContribution, v))
}

// ExperienceContributionLT applies the LT predicate on the "experience_contribution" field.
func ExperienceContributionLT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldExperienceContribution, v))
}

// ExperienceContributionLTE applies the LTE predicate on the "experience_contribution" field.
func ExperienceContributionLTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldExperienceContribution, v))
}

// ExperienceContributionIsNil applies the IsNil predicate on the "experience_contribution" field.
func ExperienceContributionIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldExperienceContribution))
}

// ExperienceContributionNotNil applies the NotNil predicate on the "experience_contribution" field.
func ExperienceContributionNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldExperienceContribution))
}

// ImpactQualityContributionEQ applies the EQ predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionNEQ applies the NEQ predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionNEQ(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionIn applies the In predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldImpactQualityContribution, vs...))
}

// ImpactQualityContributionNotIn applies the NotIn predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionNotIn(vs ...int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldImpactQualityContribution, vs...))
}

// ImpactQualityContributionGT applies the GT predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionGT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionGTE applies the GTE predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionGTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionLT applies the LT predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionLT(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionLTE applies the LTE predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionLTE(v int) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldImpactQualityContribution, v))
}

// ImpactQualityContributionIsNil applies the IsNil predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldImpactQualityContribution))
}

// ImpactQualityContributionNotNil applies the NotNil predicate on the "impact_quality_contribution" field.
func ImpactQualityContributionNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldImpactQualityContribution))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScoreTask {
	return predicate.ScoreTask(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ScoreTask {
	return predicate.ScoreTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.ScoreTask {
	return predicate.ScoreTask(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreTask) predicate.ScoreTask {
	return predicate.ScoreTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreTask) predicate.ScoreTask {
	return predicate.ScoreTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreTask) predicate.ScoreTask {
	return predicate.ScoreTask(sql.NotPredicates(p))
}
