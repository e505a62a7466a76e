// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/google/uuid"
)

// ScoreTaskCreate is the builder for creating a ScoreTask entity.
type ScoreTaskCreate struct {
	config
	mutation *ScoreTaskMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ScoreTaskCreate) SetJobID(v uuid.UUID) *ScoreTaskCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetDocRef sets the "doc_ref" field.
func (_c *ScoreTaskCreate) SetDocRef(v string) *ScoreTaskCreate {
	_c.mutation.SetDocRef(v)
	return _c
}

// SetDocName sets the "doc_name" field.
func (_c *ScoreTaskCreate) SetDocName(v string) *ScoreTaskCreate {
	_c.mutation.SetDocName(v)
	return _c
}

// SetNillableDocName sets the "doc_name" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableDocName(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetDocName(*v)
	}
	return _c
}

// SetViewURL sets the "view_url" field.
func (_c *ScoreTaskCreate) SetViewURL(v string) *ScoreTaskCreate {
	_c.mutation.SetViewURL(v)
	return _c
}

// SetNillableViewURL sets the "view_url" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableViewURL(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetViewURL(*v)
	}
	return _c
}

// SetPreviewURL sets the "preview_url" field.
func (_c *ScoreTaskCreate) SetPreviewURL(v string) *ScoreTaskCreate {
	_c.mutation.SetPreviewURL(v)
	return _c
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillablePreviewURL(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetPreviewURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScoreTaskCreate) SetStatus(v scoretask.Status) *ScoreTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableStatus(v *scoretask.Status) *ScoreTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *ScoreTaskCreate) SetText(v string) *ScoreTaskCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableText(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetGpa sets the "gpa" field.
func (_c *ScoreTaskCreate) SetGpa(v float64) *ScoreTaskCreate {
	_c.mutation.SetGpa(v)
	return _c
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableGpa(v *float64) *ScoreTaskCreate {
	if v != nil {
		_c.SetGpa(*v)
	}
	return _c
}

// SetSchoolYear sets the "school_year" field.
func (_c *ScoreTaskCreate) SetSchoolYear(v string) *ScoreTaskCreate {
	_c.mutation.SetSchoolYear(v)
	return _c
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableSchoolYear(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetSchoolYear(*v)
	}
	return _c
}

// SetNumInternships sets the "num_internships" field.
func (_c *ScoreTaskCreate) SetNumInternships(v int) *ScoreTaskCreate {
	_c.mutation.SetNumInternships(v)
	return _c
}

// SetNillableNumInternships sets the "num_internships" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableNumInternships(v *int) *ScoreTaskCreate {
	if v != nil {
		_c.SetNumInternships(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ScoreTaskCreate) SetScore(v int) *ScoreTaskCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableScore(v *int) *ScoreTaskCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetGpaContribution sets the "gpa_contribution" field.
func (_c *ScoreTaskCreate) SetGpaContribution(v int) *ScoreTaskCreate {
	_c.mutation.SetGpaContribution(v)
	return _c
}

// SetNillableGpaContribution sets the "gpa_contribution" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableGpaContribution(v *int) *ScoreTaskCreate {
	if v != nil {
		_c.SetGpaContribution(*v)
	}
	return _c
}

// SetExperienceContribution sets the "experience_contribution" field.
func (_c *ScoreTaskCreate) SetExperienceContribution(v int) *ScoreTaskCreate {
	_c.mutation.SetExperienceContribution(v)
	return _c
}

// SetNillableExperienceContribution sets the "experience_contribution" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableExperienceContribution(v *int) *ScoreTaskCreate {
	if v != nil {
		_c.SetExperienceContribution(*v)
	}
	return _c
}

// SetImpactQualityContribution sets the "impact_quality_contribution" field.
func (_c *ScoreTaskCreate) SetImpactQualityContribution(v int) *ScoreTaskCreate {
	_c.mutation.SetImpactQualityContribution(v)
	return _c
}

// SetNillableImpactQualityContribution sets the "impact_quality_contribution" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableImpactQualityContribution(v *int) *ScoreTaskCreate {
	if v != nil {
		_c.SetImpactQualityContribution(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScoreTaskCreate) SetErrorMessage(v string) *ScoreTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableErrorMessage(v *string) *ScoreTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScoreTaskCreate) SetCreatedAt(v time.Time) *ScoreTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableCreatedAt(v *time.Time) *ScoreTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScoreTaskCreate) SetID(v uuid.UUID) *ScoreTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScoreTaskCreate) SetNillableID(v *uuid.UUID) *ScoreTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ScoreTaskCreate) SetJob(v *Job) *ScoreTaskCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ScoreTaskMutation object of the builder.
func (_c *ScoreTaskCreate) Mutation() *ScoreTaskMutation {
	return _c.mutation
}

// Save creates the ScoreTask in the database.
func (_c *ScoreTaskCreate) Save(ctx context.Context) (*ScoreTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreTaskCreate) SaveX(ctx context.Context) *ScoreTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreTaskCreate) defaults() {
	if _, ok := _c.mutation.DocName(); !ok {
		v := scoretask.DefaultDocName
		_c.mutation.SetDocName(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scoretask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scoretask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scoretask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreTaskCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ScoreTask.job_id"`)}
	}
	if _, ok := _c.mutation.DocRef(); !ok {
		return &ValidationError{Name: "doc_ref", err: errors.New(`ent: missing required field "ScoreTask.doc_ref"`)}
	}
	if v, ok := _c.mutation.DocRef(); ok {
		if err := scoretask.DocRefValidator(v); err != nil {
			return &ValidationError{Name: "doc_ref", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.doc_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocName(); !ok {
		return &ValidationError{Name: "doc_name", err: errors.New(`ent: missing required field "ScoreTask.doc_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScoreTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scoretask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SchoolYear(); ok {
		if err := scoretask.SchoolYearValidator(v); err != nil {
			return &ValidationError{Name: "school_year", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.school_year": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := scoretask.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreTask.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScoreTask.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ScoreTask.job"`)}
	}
	return nil
}

func (_c *ScoreTaskCreate) sqlSave(ctx context.Context) (*ScoreTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreTaskCreate) createSpec() (*ScoreTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoretask.Table, sqlgraph.NewFieldSpec(scoretask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocRef(); ok {
		_spec.SetField(scoretask.FieldDocRef, field.TypeString, value)
		_node.DocRef = value
	}
	if value, ok := _c.mutation.DocName(); ok {
		_spec.SetField(scoretask.FieldDocName, field.TypeString, value)
		_node.DocName = value
	}
	if value, ok := _c.mutation.ViewURL(); ok {
		_spec.SetField(scoretask.FieldViewURL, field.TypeString, value)
		_node.ViewURL = &value
	}
	if value, ok := _c.mutation.PreviewURL(); ok {
		_spec.SetField(scoretask.FieldPreviewURL, field.TypeString, value)
		_node.PreviewURL = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scoretask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(scoretask.FieldText, field.TypeString, value)
		_node.Text = &value
	}
	if value, ok := _c.mutation.Gpa(); ok {
		_spec.SetField(scoretask.FieldGpa, field.TypeFloat64, value)
		_node.Gpa = &value
	}
	if value, ok := _c.mutation.SchoolYear(); ok {
		_spec.SetField(scoretask.FieldSchoolYear, field.TypeString, value)
		_node.SchoolYear = &value
	}
	if value, ok := _c.mutation.NumInternships(); ok {
		_spec.SetField(scoretask.FieldNumInternships, field.TypeInt, value)
		_node.NumInternships = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scoretask.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.GpaContribution(); ok {
		_spec.SetField(scoretask.FieldGpaContribution, field.TypeInt, value)
		_node.GpaContribution = &value
	}
	if value, ok := _c.mutation.ExperienceContribution(); ok {
		_spec.SetField(scoretask.FieldExperienceContribution, field.TypeInt, value)
		_node.ExperienceContribution = &value
	}
	if value, ok := _c.mutation.ImpactQualityContribution(); ok {
		_spec.SetField(scoretask.FieldImpactQualityContribution, field.TypeInt, value)
		_node.ImpactQualityContribution = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scoretask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scoretask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScoreTaskCreateBulk is the builder for creating many ScoreTask entities in bulk.
type ScoreTaskCreateBulk struct {
	config
	err      error
	builders []*ScoreTaskCreate
}

// Save creates the ScoreTask entities in the database.
func (_c *ScoreTaskCreateBulk) Save(ctx context.Context) ([]*ScoreTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreTaskCreateBulk) SaveX(ctx context.Context) []*ScoreTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
