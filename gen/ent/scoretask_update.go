// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/gen/ent/predicate"
	"github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/google/uuid"
)

// ScoreTaskUpdate is the builder for updating ScoreTask entities.
type ScoreTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreTaskMutation
}

// Where appends a list predicates to the ScoreTaskUpdate builder.
func (_u *ScoreTaskUpdate) Where(ps ...predicate.ScoreTask) *ScoreTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ScoreTaskUpdate) SetJobID(v uuid.UUID) *ScoreTaskUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableJobID(v *uuid.UUID) *ScoreTaskUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocRef sets the "doc_ref" field.
func (_u *ScoreTaskUpdate) SetDocRef(v string) *ScoreTaskUpdate {
	_u.mutation.SetDocRef(v)
	return _u
}

// SetNillableDocRef sets the "doc_ref" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableDocRef(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetDocRef(*v)
	}
	return _u
}

// SetDocName sets the "doc_name" field.
func (_u *ScoreTaskUpdate) SetDocName(v string) *ScoreTaskUpdate {
	_u.mutation.SetDocName(v)
	return _u
}

// SetNillableDocName sets the "doc_name" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableDocName(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetDocName(*v)
	}
	return _u
}

// SetViewURL sets the "view_url" field.
func (_u *ScoreTaskUpdate) SetViewURL(v string) *ScoreTaskUpdate {
	_u.mutation.SetViewURL(v)
	return _u
}

// SetNillableViewURL sets the "view_url" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableViewURL(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetViewURL(*v)
	}
	return _u
}

// ClearViewURL clears the value of the "view_url" field.
func (_u *ScoreTaskUpdate) ClearViewURL() *ScoreTaskUpdate {
	_u.mutation.ClearViewURL()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *ScoreTaskUpdate) SetPreviewURL(v string) *ScoreTaskUpdate {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillablePreviewURL(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *ScoreTaskUpdate) ClearPreviewURL() *ScoreTaskUpdate {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScoreTaskUpdate) SetStatus(v scoretask.Status) *ScoreTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableStatus(v *scoretask.Status) *ScoreTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ScoreTaskUpdate) SetText(v string) *ScoreTaskUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableText(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ScoreTaskUpdate) ClearText() *ScoreTaskUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *ScoreTaskUpdate) SetGpa(v float64) *ScoreTaskUpdate {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableGpa(v *float64) *ScoreTaskUpdate {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *ScoreTaskUpdate) AddGpa(v float64) *ScoreTaskUpdate {
	_u.mutation.AddGpa(v)
	return _u
}

// ClearGpa clears the value of the "gpa" field.
func (_u *ScoreTaskUpdate) ClearGpa() *ScoreTaskUpdate {
	_u.mutation.ClearGpa()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *ScoreTaskUpdate) SetSchoolYear(v string) *ScoreTaskUpdate {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableSchoolYear(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *ScoreTaskUpdate) ClearSchoolYear() *ScoreTaskUpdate {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetNumInternships sets the "num_internships" field.
func (_u *ScoreTaskUpdate) SetNumInternships(v int) *ScoreTaskUpdate {
	_u.mutation.ResetNumInternships()
	_u.mutation.SetNumInternships(v)
	return _u
}

// SetNillableNumInternships sets the "num_internships" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableNumInternships(v *int) *ScoreTaskUpdate {
	if v != nil {
		_u.SetNumInternships(*v)
	}
	return _u
}

// AddNumInternships adds value to the "num_internships" field.
func (_u *ScoreTaskUpdate) AddNumInternships(v int) *ScoreTaskUpdate {
	_u.mutation.AddNumInternships(v)
	return _u
}

// ClearNumInternships clears the value of the "num_internships" field.
func (_u *ScoreTaskUpdate) ClearNumInternships() *ScoreTaskUpdate {
	_u.mutation.ClearNumInternships()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreTaskUpdate) SetScore(v int) *ScoreTaskUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableScore(v *int) *ScoreTaskUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreTaskUpdate) AddScore(v int) *ScoreTaskUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ScoreTaskUpdate) ClearScore() *ScoreTaskUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetGpaContribution sets the "gpa_contribution" field.
func (_u *ScoreTaskUpdate) SetGpaContribution(v int) *ScoreTaskUpdate {
	_u.mutation.ResetGpaContribution()
	_u.mutation.SetGpaContribution(v)
	return _u
}

// SetNillableGpaContribution sets the "gpa_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableGpaContribution(v *int) *ScoreTaskUpdate {
	if v != nil {
		_u.SetGpaContribution(*v)
	}
	return _u
}

// AddGpaContribution adds value to the "gpa_contribution" field.
func (_u *ScoreTaskUpdate) AddGpaContribution(v int) *ScoreTaskUpdate {
	_u.mutation.AddGpaContribution(v)
	return _u
}

// ClearGpaContribution clears the value of the "gpa_contribution" field.
func (_u *ScoreTaskUpdate) ClearGpaContribution() *ScoreTaskUpdate {
	_u.mutation.ClearGpaContribution()
	return _u
}

// SetExperienceContribution sets the "experience_contribution" field.
func (_u *ScoreTaskUpdate) SetExperienceContribution(v int) *ScoreTaskUpdate {
	_u.mutation.ResetExperienceContribution()
	_u.mutation.SetExperienceContribution(v)
	return _u
}

// SetNillableExperienceContribution sets the "experience_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableExperienceContribution(v *int) *ScoreTaskUpdate {
	if v != nil {
		_u.SetExperienceContribution(*v)
	}
	return _u
}

// AddExperienceContribution adds value to the "experience_contribution" field.
func (_u *ScoreTaskUpdate) AddExperienceContribution(v int) *ScoreTaskUpdate {
	_u.mutation.AddExperienceContribution(v)
	return _u
}

// ClearExperienceContribution clears the value of the "experience_contribution" field.
func (_u *ScoreTaskUpdate) ClearExperienceContribution() *ScoreTaskUpdate {
	_u.mutation.ClearExperienceContribution()
	return _u
}

// SetImpactQualityContribution sets the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdate) SetImpactQualityContribution(v int) *ScoreTaskUpdate {
	_u.mutation.ResetImpactQualityContribution()
	_u.mutation.SetImpactQualityContribution(v)
	return _u
}

// SetNillableImpactQualityContribution sets the "impact_quality_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableImpactQualityContribution(v *int) *ScoreTaskUpdate {
	if v != nil {
		_u.SetImpactQualityContribution(*v)
	}
	return _u
}

// AddImpactQualityContribution adds value to the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdate) AddImpactQualityContribution(v int) *ScoreTaskUpdate {
	_u.mutation.AddImpactQualityContribution(v)
	return _u
}

// ClearImpactQualityContribution clears the value of the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdate) ClearImpactQualityContribution() *ScoreTaskUpdate {
	_u.mutation.ClearImpactQualityContribution()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScoreTaskUpdate) SetErrorMessage(v string) *ScoreTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScoreTaskUpdate) SetNillableErrorMessage(v *string) *ScoreTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScoreTaskUpdate) ClearErrorMessage() *ScoreTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ScoreTaskUpdate) SetJob(v *Job) *ScoreTaskUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ScoreTaskMutation object of the builder.
func (_u *ScoreTaskUpdate) Mutation() *ScoreTaskMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ScoreTaskUpdate) ClearJob() *ScoreTaskUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreTaskUpdate) check() error {
	if v, ok := _u.mutation.DocRef(); ok {
		if err := scoretask.DocRefValidator(v); err != nil {
			return &ValidationError{Name: "doc_ref", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.doc_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scoretask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchoolYear(); ok {
		if err := scoretask.SchoolYearValidator(v); err != nil {
			return &ValidationError{Name: "school_year", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.school_year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoretask.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.score": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreTask.job"`)
	}
	return nil
}

func (_u *ScoreTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoretask.Table, scoretask.Columns, sqlgraph.NewFieldSpec(scoretask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocRef(); ok {
		_spec.SetField(scoretask.FieldDocRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocName(); ok {
		_spec.SetField(scoretask.FieldDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewURL(); ok {
		_spec.SetField(scoretask.FieldViewURL, field.TypeString, value)
	}
	if _u.mutation.ViewURLCleared() {
		_spec.ClearField(scoretask.FieldViewURL, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(scoretask.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(scoretask.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scoretask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(scoretask.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(scoretask.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(scoretask.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(scoretask.FieldGpa, field.TypeFloat64, value)
	}
	if _u.mutation.GpaCleared() {
		_spec.ClearField(scoretask.FieldGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(scoretask.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(scoretask.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.NumInternships(); ok {
		_spec.SetField(scoretask.FieldNumInternships, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumInternships(); ok {
		_spec.AddField(scoretask.FieldNumInternships, field.TypeInt, value)
	}
	if _u.mutation.NumInternshipsCleared() {
		_spec.ClearField(scoretask.FieldNumInternships, field.TypeInt)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoretask.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoretask.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(scoretask.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.GpaContribution(); ok {
		_spec.SetField(scoretask.FieldGpaContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGpaContribution(); ok {
		_spec.AddField(scoretask.FieldGpaContribution, field.TypeInt, value)
	}
	if _u.mutation.GpaContributionCleared() {
		_spec.ClearField(scoretask.FieldGpaContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ExperienceContribution(); ok {
		_spec.SetField(scoretask.FieldExperienceContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceContribution(); ok {
		_spec.AddField(scoretask.FieldExperienceContribution, field.TypeInt, value)
	}
	if _u.mutation.ExperienceContributionCleared() {
		_spec.ClearField(scoretask.FieldExperienceContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ImpactQualityContribution(); ok {
		_spec.SetField(scoretask.FieldImpactQualityContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpactQualityContribution(); ok {
		_spec.AddField(scoretask.FieldImpactQualityContribution, field.TypeInt, value)
	}
	if _u.mutation.ImpactQualityContributionCleared() {
		_spec.ClearField(scoretask.FieldImpactQualityContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scoretask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scoretask.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scoretask.JobTable,
			Columns: []string{scoretask.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scoretask.JobTable,
			Columns: []string{scoretask.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoretask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreTaskUpdateOne is the builder for updating a single ScoreTask entity.
type ScoreTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreTaskMutation
}

// SetJobID sets the "job_id" field.
func (_u *ScoreTaskUpdateOne) SetJobID(v uuid.UUID) *ScoreTaskUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableJobID(v *uuid.UUID) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocRef sets the "doc_ref" field.
func (_u *ScoreTaskUpdateOne) SetDocRef(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetDocRef(v)
	return _u
}

// SetNillableDocRef sets the "doc_ref" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableDocRef(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetDocRef(*v)
	}
	return _u
}

// SetDocName sets the "doc_name" field.
func (_u *ScoreTaskUpdateOne) SetDocName(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetDocName(v)
	return _u
}

// SetNillableDocName sets the "doc_name" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableDocName(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetDocName(*v)
	}
	return _u
}

// SetViewURL sets the "view_url" field.
func (_u *ScoreTaskUpdateOne) SetViewURL(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetViewURL(v)
	return _u
}

// SetNillableViewURL sets the "view_url" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableViewURL(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetViewURL(*v)
	}
	return _u
}

// ClearViewURL clears the value of the "view_url" field.
func (_u *ScoreTaskUpdateOne) ClearViewURL() *ScoreTaskUpdateOne {
	_u.mutation.ClearViewURL()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *ScoreTaskUpdateOne) SetPreviewURL(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillablePreviewURL(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *ScoreTaskUpdateOne) ClearPreviewURL() *ScoreTaskUpdateOne {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScoreTaskUpdateOne) SetStatus(v scoretask.Status) *ScoreTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableStatus(v *scoretask.Status) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ScoreTaskUpdateOne) SetText(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableText(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ScoreTaskUpdateOne) ClearText() *ScoreTaskUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *ScoreTaskUpdateOne) SetGpa(v float64) *ScoreTaskUpdateOne {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableGpa(v *float64) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *ScoreTaskUpdateOne) AddGpa(v float64) *ScoreTaskUpdateOne {
	_u.mutation.AddGpa(v)
	return _u
}

// ClearGpa clears the value of the "gpa" field.
func (_u *ScoreTaskUpdateOne) ClearGpa() *ScoreTaskUpdateOne {
	_u.mutation.ClearGpa()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *ScoreTaskUpdateOne) SetSchoolYear(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableSchoolYear(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *ScoreTaskUpdateOne) ClearSchoolYear() *ScoreTaskUpdateOne {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetNumInternships sets the "num_internships" field.
func (_u *ScoreTaskUpdateOne) SetNumInternships(v int) *ScoreTaskUpdateOne {
	_u.mutation.ResetNumInternships()
	_u.mutation.SetNumInternships(v)
	return _u
}

// SetNillableNumInternships sets the "num_internships" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableNumInternships(v *int) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetNumInternships(*v)
	}
	return _u
}

// AddNumInternships adds value to the "num_internships" field.
func (_u *ScoreTaskUpdateOne) AddNumInternships(v int) *ScoreTaskUpdateOne {
	_u.mutation.AddNumInternships(v)
	return _u
}

// ClearNumInternships clears the value of the "num_internships" field.
func (_u *ScoreTaskUpdateOne) ClearNumInternships() *ScoreTaskUpdateOne {
	_u.mutation.ClearNumInternships()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreTaskUpdateOne) SetScore(v int) *ScoreTaskUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableScore(v *int) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreTaskUpdateOne) AddScore(v int) *ScoreTaskUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ScoreTaskUpdateOne) ClearScore() *ScoreTaskUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetGpaContribution sets the "gpa_contribution" field.
func (_u *ScoreTaskUpdateOne) SetGpaContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.ResetGpaContribution()
	_u.mutation.SetGpaContribution(v)
	return _u
}

// SetNillableGpaContribution sets the "gpa_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableGpaContribution(v *int) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetGpaContribution(*v)
	}
	return _u
}

// AddGpaContribution adds value to the "gpa_contribution" field.
func (_u *ScoreTaskUpdateOne) AddGpaContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.AddGpaContribution(v)
	return _u
}

// ClearGpaContribution clears the value of the "gpa_contribution" field.
func (_u *ScoreTaskUpdateOne) ClearGpaContribution() *ScoreTaskUpdateOne {
	_u.mutation.ClearGpaContribution()
	return _u
}

// SetExperienceContribution sets the "experience_contribution" field.
func (_u *ScoreTaskUpdateOne) SetExperienceContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.ResetExperienceContribution()
	_u.mutation.SetExperienceContribution(v)
	return _u
}

// SetNillableExperienceContribution sets the "experience_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableExperienceContribution(v *int) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetExperienceContribution(*v)
	}
	return _u
}

// AddExperienceContribution adds value to the "experience_contribution" field.
func (_u *ScoreTaskUpdateOne) AddExperienceContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.AddExperienceContribution(v)
	return _u
}

// ClearExperienceContribution clears the value of the "experience_contribution" field.
func (_u *ScoreTaskUpdateOne) ClearExperienceContribution() *ScoreTaskUpdateOne {
	_u.mutation.ClearExperienceContribution()
	return _u
}

// SetImpactQualityContribution sets the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdateOne) SetImpactQualityContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.ResetImpactQualityContribution()
	_u.mutation.SetImpactQualityContribution(v)
	return _u
}

// SetNillableImpactQualityContribution sets the "impact_quality_contribution" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableImpactQualityContribution(v *int) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetImpactQualityContribution(*v)
	}
	return _u
}

// AddImpactQualityContribution adds value to the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdateOne) AddImpactQualityContribution(v int) *ScoreTaskUpdateOne {
	_u.mutation.AddImpactQualityContribution(v)
	return _u
}

// ClearImpactQualityContribution clears the value of the "impact_quality_contribution" field.
func (_u *ScoreTaskUpdateOne) ClearImpactQualityContribution() *ScoreTaskUpdateOne {
	_u.mutation.ClearImpactQualityContribution()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScoreTaskUpdateOne) SetErrorMessage(v string) *ScoreTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScoreTaskUpdateOne) SetNillableErrorMessage(v *string) *ScoreTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScoreTaskUpdateOne) ClearErrorMessage() *ScoreTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ScoreTaskUpdateOne) SetJob(v *Job) *ScoreTaskUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ScoreTaskMutation object of the builder.
func (_u *ScoreTaskUpdateOne) Mutation() *ScoreTaskMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ScoreTaskUpdateOne) ClearJob() *ScoreTaskUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ScoreTaskUpdate builder.
func (_u *ScoreTaskUpdateOne) Where(ps ...predicate.ScoreTask) *ScoreTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreTaskUpdateOne) Select(field string, fields ...string) *ScoreTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreTask entity.
func (_u *ScoreTaskUpdateOne) Save(ctx context.Context) (*ScoreTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreTaskUpdateOne) SaveX(ctx context.Context) *ScoreTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreTaskUpdateOne) check() error {
	if v, ok := _u.mutation.DocRef(); ok {
		if err := scoretask.DocRefValidator(v); err != nil {
			return &ValidationError{Name: "doc_ref", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.doc_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scoretask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchoolYear(); ok {
		if err := scoretask.SchoolYearValidator(v); err != nil {
			return &ValidationError{Name: "school_year", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.school_year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoretask.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.score": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreTask.job"`)
	}
	return nil
}

func (_u *ScoreTaskUpdateOne) sqlSave(ctx context.Context) (_node *ScoreTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoretask.Table, scoretask.Columns, sqlgraph.NewFieldSpec(scoretask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoretask.FieldID)
		for _, f := range fields {
			if !scoretask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoretask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocRef(); ok {
		_spec.SetField(scoretask.FieldDocRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocName(); ok {
		_spec.SetField(scoretask.FieldDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewURL(); ok {
		_spec.SetField(scoretask.FieldViewURL, field.TypeString, value)
	}
	if _u.mutation.ViewURLCleared() {
		_spec.ClearField(scoretask.FieldViewURL, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(scoretask.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(scoretask.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scoretask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(scoretask.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(scoretask.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(scoretask.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(scoretask.FieldGpa, field.TypeFloat64, value)
	}
	if _u.mutation.GpaCleared() {
		_spec.ClearField(scoretask.FieldGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(scoretask.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(scoretask.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.NumInternships(); ok {
		_spec.SetField(scoretask.FieldNumInternships, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumInternships(); ok {
		_spec.AddField(scoretask.FieldNumInternships, field.TypeInt, value)
	}
	if _u.mutation.NumInternshipsCleared() {
		_spec.ClearField(scoretask.FieldNumInternships, field.TypeInt)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoretask.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoretask.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(scoretask.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.GpaContribution(); ok {
		_spec.SetField(scoretask.FieldGpaContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGpaContribution(); ok {
		_spec.AddField(scoretask.FieldGpaContribution, field.TypeInt, value)
	}
	if _u.mutation.GpaContributionCleared() {
		_spec.ClearField(scoretask.FieldGpaContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ExperienceContribution(); ok {
		_spec.SetField(scoretask.FieldExperienceContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceContribution(); ok {
		_spec.AddField(scoretask.FieldExperienceContribution, field.TypeInt, value)
	}
	if _u.mutation.ExperienceContributionCleared() {
		_spec.ClearField(scoretask.FieldExperienceContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ImpactQualityContribution(); ok {
		_spec.SetField(scoretask.FieldImpactQualityContribution, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpactQualityContribution(); ok {
		_spec.AddField(scoretask.FieldImpactQualityContribution, field.TypeInt, value)
	}
	if _u.mutation.ImpactQualityContributionCleared() {
		_spec.ClearField(scoretask.FieldImpactQualityContribution, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scoretask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scoretask.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scoretask.JobTable,
			Columns: []string{scoretask.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scoretask.JobTable,
			Columns: []string{scoretask.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScoreTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoretask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
