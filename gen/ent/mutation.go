// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/gen/ent/predicate"
	"github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob       = "Job"
	TypeScoreTask = "ScoreTask"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *uuid.UUID
	source_ref    *string
	name          *string
	status        *job.Status
	created_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[uuid.UUID]struct{}
	removedtasks  map[uuid.UUID]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *JobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobMutation) ResetUserID() {
	m.user_id = nil
}

// SetSourceRef sets the "source_ref" field.
func (m *JobMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *JobMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *JobMutation) ResetSourceRef() {
	m.source_ref = nil
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the ScoreTask entity by ids.
func (m *JobMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the ScoreTask entity.
func (m *JobMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the ScoreTask entity was cleared.
func (m *JobMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the ScoreTask entity by IDs.
func (m *JobMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the ScoreTask entity.
func (m *JobMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *JobMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *JobMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, job.FieldUserID)
	}
	if m.source_ref != nil {
		fields = append(fields, job.FieldSourceRef)
	}
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldUserID:
		return m.UserID()
	case job.FieldSourceRef:
		return m.SourceRef()
	case job.FieldName:
		return m.Name()
	case job.FieldStatus:
		return m.Status()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldUserID:
		return m.OldUserID(ctx)
	case job.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case job.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldUserID:
		m.ResetUserID()
		return nil
	case job.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// ScoreTaskMutation represents an operation that mutates the ScoreTask nodes in the graph.
type ScoreTaskMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	doc_ref                        *string
	doc_name                       *string
	view_url                       *string
	preview_url                    *string
	status                         *scoretask.Status
	text                           *string
	gpa                            *float64
	addgpa                         *float64
	school_year                    *string
	num_internships                *int
	addnum_internships             *int
	score                          *int
	addscore                       *int
	gpa_contribution               *int
	addgpa_contribution            *int
	experience_contribution        *int
	addexperience_contribution     *int
	impact_quality_contribution    *int
	addimpact_quality_contribution *int
	error_message                  *string
	created_at                     *time.Time
	clearedFields                  map[string]struct{}
	job                            *uuid.UUID
	clearedjob                     bool
	done                           bool
	oldValue                       func(context.Context) (*ScoreTask, error)
	predicates                     []predicate.ScoreTask
}

var _ ent.Mutation = (*ScoreTaskMutation)(nil)

// scoretaskOption allows management of the mutation configuration using functional options.
type scoretaskOption func(*ScoreTaskMutation)

// newScoreTaskMutation creates new mutation for the ScoreTask entity.
func newScoreTaskMutation(c config, op Op, opts ...scoretaskOption) *ScoreTaskMutation {
	m := &ScoreTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreTaskID sets the ID field of the mutation.
func withScoreTaskID(id uuid.UUID) scoretaskOption {
	return func(m *ScoreTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreTask
		)
		m.oldValue = func(ctx context.Context) (*ScoreTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreTask sets the old ScoreTask of the mutation.
func withScoreTask(node *ScoreTask) scoretaskOption {
	return func(m *ScoreTaskMutation) {
		m.oldValue = func(context.Context) (*ScoreTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScoreTask entities.
func (m *ScoreTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ScoreTaskMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ScoreTaskMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ScoreTaskMutation) ResetJobID() {
	m.job = nil
}

// SetDocRef sets the "doc_ref" field.
func (m *ScoreTaskMutation) SetDocRef(s string) {
	m.doc_ref = &s
}

// DocRef returns the value of the "doc_ref" field in the mutation.
func (m *ScoreTaskMutation) DocRef() (r string, exists bool) {
	v := m.doc_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldDocRef returns the old "doc_ref" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldDocRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocRef: %w", err)
	}
	return oldValue.DocRef, nil
}

// ResetDocRef resets all changes to the "doc_ref" field.
func (m *ScoreTaskMutation) ResetDocRef() {
	m.doc_ref = nil
}

// SetDocName sets the "doc_name" field.
func (m *ScoreTaskMutation) SetDocName(s string) {
	m.doc_name = &s
}

// DocName returns the value of the "doc_name" field in the mutation.
func (m *ScoreTaskMutation) DocName() (r string, exists bool) {
	v := m.doc_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDocName returns the old "doc_name" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldDocName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocName: %w", err)
	}
	return oldValue.DocName, nil
}

// ResetDocName resets all changes to the "doc_name" field.
func (m *ScoreTaskMutation) ResetDocName() {
	m.doc_name = nil
}

// SetViewURL sets the "view_url" field.
func (m *ScoreTaskMutation) SetViewURL(s string) {
	m.view_url = &s
}

// ViewURL returns the value of the "view_url" field in the mutation.
func (m *ScoreTaskMutation) ViewURL() (r string, exists bool) {
	v := m.view_url
	if v == nil {
		return
	}
	return *v, true
}

// OldViewURL returns the old "view_url" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldViewURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewURL: %w", err)
	}
	return oldValue.ViewURL, nil
}

// ClearViewURL clears the value of the "view_url" field.
func (m *ScoreTaskMutation) ClearViewURL() {
	m.view_url = nil
	m.clearedFields[scoretask.FieldViewURL] = struct{}{}
}

// ViewURLCleared returns if the "view_url" field was cleared in this mutation.
func (m *ScoreTaskMutation) ViewURLCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldViewURL]
	return ok
}

// ResetViewURL resets all changes to the "view_url" field.
func (m *ScoreTaskMutation) ResetViewURL() {
	m.view_url = nil
	delete(m.clearedFields, scoretask.FieldViewURL)
}

// SetPreviewURL sets the "preview_url" field.
func (m *ScoreTaskMutation) SetPreviewURL(s string) {
	m.preview_url = &s
}

// PreviewURL returns the value of the "preview_url" field in the mutation.
func (m *ScoreTaskMutation) PreviewURL() (r string, exists bool) {
	v := m.preview_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewURL returns the old "preview_url" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldPreviewURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewURL: %w", err)
	}
	return oldValue.PreviewURL, nil
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (m *ScoreTaskMutation) ClearPreviewURL() {
	m.preview_url = nil
	m.clearedFields[scoretask.FieldPreviewURL] = struct{}{}
}

// PreviewURLCleared returns if the "preview_url" field was cleared in this mutation.
func (m *ScoreTaskMutation) PreviewURLCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldPreviewURL]
	return ok
}

// ResetPreviewURL resets all changes to the "preview_url" field.
func (m *ScoreTaskMutation) ResetPreviewURL() {
	m.preview_url = nil
	delete(m.clearedFields, scoretask.FieldPreviewURL)
}

// SetStatus sets the "status" field.
func (m *ScoreTaskMutation) SetStatus(s scoretask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScoreTaskMutation) Status() (r scoretask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldStatus(ctx context.Context) (v scoretask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScoreTaskMutation) ResetStatus() {
	m.status = nil
}

// SetText sets the "text" field.
func (m *ScoreTaskMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ScoreTaskMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *ScoreTaskMutation) ClearText() {
	m.text = nil
	m.clearedFields[scoretask.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *ScoreTaskMutation) TextCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *ScoreTaskMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, scoretask.FieldText)
}

// SetGpa sets the "gpa" field.
func (m *ScoreTaskMutation) SetGpa(f float64) {
	m.gpa = &f
	m.addgpa = nil
}

// Gpa returns the value of the "gpa" field in the mutation.
func (m *ScoreTaskMutation) Gpa() (r float64, exists bool) {
	v := m.gpa
	if v == nil {
		return
	}
	return *v, true
}

// OldGpa returns the old "gpa" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldGpa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpa: %w", err)
	}
	return oldValue.Gpa, nil
}

// AddGpa adds f to the "gpa" field.
func (m *ScoreTaskMutation) AddGpa(f float64) {
	if m.addgpa != nil {
		*m.addgpa += f
	} else {
		m.addgpa = &f
	}
}

// AddedGpa returns the value that was added to the "gpa" field in this mutation.
func (m *ScoreTaskMutation) AddedGpa() (r float64, exists bool) {
	v := m.addgpa
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpa clears the value of the "gpa" field.
func (m *ScoreTaskMutation) ClearGpa() {
	m.gpa = nil
	m.addgpa = nil
	m.clearedFields[scoretask.FieldGpa] = struct{}{}
}

// GpaCleared returns if the "gpa" field was cleared in this mutation.
func (m *ScoreTaskMutation) GpaCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldGpa]
	return ok
}

// ResetGpa resets all changes to the "gpa" field.
func (m *ScoreTaskMutation) ResetGpa() {
	m.gpa = nil
	m.addgpa = nil
	delete(m.clearedFields, scoretask.FieldGpa)
}

// SetSchoolYear sets the "school_year" field.
func (m *ScoreTaskMutation) SetSchoolYear(s string) {
	m.school_year = &s
}

// SchoolYear returns the value of the "school_year" field in the mutation.
func (m *ScoreTaskMutation) SchoolYear() (r string, exists bool) {
	v := m.school_year
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolYear returns the old "school_year" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldSchoolYear(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolYear: %w", err)
	}
	return oldValue.SchoolYear, nil
}

// ClearSchoolYear clears the value of the "school_year" field.
func (m *ScoreTaskMutation) ClearSchoolYear() {
	m.school_year = nil
	m.clearedFields[scoretask.FieldSchoolYear] = struct{}{}
}

// SchoolYearCleared returns if the "school_year" field was cleared in this mutation.
func (m *ScoreTaskMutation) SchoolYearCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldSchoolYear]
	return ok
}

// ResetSchoolYear resets all changes to the "school_year" field.
func (m *ScoreTaskMutation) ResetSchoolYear() {
	m.school_year = nil
	delete(m.clearedFields, scoretask.FieldSchoolYear)
}

// SetNumInternships sets the "num_internships" field.
func (m *ScoreTaskMutation) SetNumInternships(i int) {
	m.num_internships = &i
	m.addnum_internships = nil
}

// NumInternships returns the value of the "num_internships" field in the mutation.
func (m *ScoreTaskMutation) NumInternships() (r int, exists bool) {
	v := m.num_internships
	if v == nil {
		return
	}
	return *v, true
}

// OldNumInternships returns the old "num_internships" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldNumInternships(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumInternships is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumInternships requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumInternships: %w", err)
	}
	return oldValue.NumInternships, nil
}

// AddNumInternships adds i to the "num_internships" field.
func (m *ScoreTaskMutation) AddNumInternships(i int) {
	if m.addnum_internships != nil {
		*m.addnum_internships += i
	} else {
		m.addnum_internships = &i
	}
}

// AddedNumInternships returns the value that was added to the "num_internships" field in this mutation.
func (m *ScoreTaskMutation) AddedNumInternships() (r int, exists bool) {
	v := m.addnum_internships
	if v == nil {
		return
	}
	return *v, true
}

// ClearNumInternships clears the value of the "num_internships" field.
func (m *ScoreTaskMutation) ClearNumInternships() {
	m.num_internships = nil
	m.addnum_internships = nil
	m.clearedFields[scoretask.FieldNumInternships] = struct{}{}
}

// NumInternshipsCleared returns if the "num_internships" field was cleared in this mutation.
func (m *ScoreTaskMutation) NumInternshipsCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldNumInternships]
	return ok
}

// ResetNumInternships resets all changes to the "num_internships" field.
func (m *ScoreTaskMutation) ResetNumInternships() {
	m.num_internships = nil
	m.addnum_internships = nil
	delete(m.clearedFields, scoretask.FieldNumInternships)
}

// SetScore sets the "score" field.
func (m *ScoreTaskMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ScoreTaskMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ScoreTaskMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ScoreTaskMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ScoreTaskMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[scoretask.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ScoreTaskMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ScoreTaskMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, scoretask.FieldScore)
}

// SetGpaContribution sets the "gpa_contribution" field.
func (m *ScoreTaskMutation) SetGpaContribution(i int) {
	m.gpa_contribution = &i
	m.addgpa_contribution = nil
}

// GpaContribution returns the value of the "gpa_contribution" field in the mutation.
func (m *ScoreTaskMutation) GpaContribution() (r int, exists bool) {
	v := m.gpa_contribution
	if v == nil {
		return
	}
	return *v, true
}

// OldGpaContribution returns the old "gpa_contribution" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldGpaContribution(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpaContribution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpaContribution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpaContribution: %w", err)
	}
	return oldValue.GpaContribution, nil
}

// AddGpaContribution adds i to the "gpa_contribution" field.
func (m *ScoreTaskMutation) AddGpaContribution(i int) {
	if m.addgpa_contribution != nil {
		*m.addgpa_contribution += i
	} else {
		m.addgpa_contribution = &i
	}
}

// AddedGpaContribution returns the value that was added to the "gpa_contribution" field in this mutation.
func (m *ScoreTaskMutation) AddedGpaContribution() (r int, exists bool) {
	v := m.addgpa_contribution
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpaContribution clears the value of the "gpa_contribution" field.
func (m *ScoreTaskMutation) ClearGpaContribution() {
	m.gpa_contribution = nil
	m.addgpa_contribution = nil
	m.clearedFields[scoretask.FieldGpaContribution] = struct{}{}
}

// GpaContributionCleared returns if the "gpa_contribution" field was cleared in this mutation.
func (m *ScoreTaskMutation) GpaContributionCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldGpaContribution]
	return ok
}

// ResetGpaContribution resets all changes to the "gpa_contribution" field.
func (m *ScoreTaskMutation) ResetGpaContribution() {
	m.gpa_contribution = nil
	m.addgpa_contribution = nil
	delete(m.clearedFields, scoretask.FieldGpaContribution)
}

// SetExperienceContribution sets the "experience_contribution" field.
func (m *ScoreTaskMutation) SetExperienceContribution(i int) {
	m.experience_contribution = &i
	m.addexperience_contribution = nil
}

// ExperienceContribution returns the value of the "experience_contribution" field in the mutation.
func (m *ScoreTaskMutation) ExperienceContribution() (r int, exists bool) {
	v := m.experience_contribution
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceContribution returns the old "experience_contribution" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldExperienceContribution(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceContribution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceContribution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceContribution: %w", err)
	}
	return oldValue.ExperienceContribution, nil
}

// AddExperienceContribution adds i to the "experience_contribution" field.
func (m *ScoreTaskMutation) AddExperienceContribution(i int) {
	if m.addexperience_contribution != nil {
		*m.addexperience_contribution += i
	} else {
		m.addexperience_contribution = &i
	}
}

// AddedExperienceContribution returns the value that was added to the "experience_contribution" field in this mutation.
func (m *ScoreTaskMutation) AddedExperienceContribution() (r int, exists bool) {
	v := m.addexperience_contribution
	if v == nil {
		return
	}
	return *v, true
}

// ClearExperienceContribution clears the value of the "experience_contribution" field.
func (m *ScoreTaskMutation) ClearExperienceContribution() {
	m.experience_contribution = nil
	m.addexperience_contribution = nil
	m.clearedFields[scoretask.FieldExperienceContribution] = struct{}{}
}

// ExperienceContributionCleared returns if the "experience_contribution" field was cleared in this mutation.
func (m *ScoreTaskMutation) ExperienceContributionCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldExperienceContribution]
	return ok
}

// ResetExperienceContribution resets all changes to the "experience_contribution" field.
func (m *ScoreTaskMutation) ResetExperienceContribution() {
	m.experience_contribution = nil
	m.addexperience_contribution = nil
	delete(m.clearedFields, scoretask.FieldExperienceContribution)
}

// SetImpactQualityContribution sets the "impact_quality_contribution" field.
func (m *ScoreTaskMutation) SetImpactQualityContribution(i int) {
	m.impact_quality_contribution = &i
	m.addimpact_quality_contribution = nil
}

// ImpactQualityContribution returns the value of the "impact_quality_contribution" field in the mutation.
func (m *ScoreTaskMutation) ImpactQualityContribution() (r int, exists bool) {
	v := m.impact_quality_contribution
	if v == nil {
		return
	}
	return *v, true
}

// OldImpactQualityContribution returns the old "impact_quality_contribution" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldImpactQualityContribution(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpactQualityContribution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpactQualityContribution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpactQualityContribution: %w", err)
	}
	return oldValue.ImpactQualityContribution, nil
}

// AddImpactQualityContribution adds i to the "impact_quality_contribution" field.
func (m *ScoreTaskMutation) AddImpactQualityContribution(i int) {
	if m.addimpact_quality_contribution != nil {
		*m.addimpact_quality_contribution += i
	} else {
		m.addimpact_quality_contribution = &i
	}
}

// AddedImpactQualityContribution returns the value that was added to the "impact_quality_contribution" field in this mutation.
func (m *ScoreTaskMutation) AddedImpactQualityContribution() (r int, exists bool) {
	v := m.addimpact_quality_contribution
	if v == nil {
		return
	}
	return *v, true
}

// ClearImpactQualityContribution clears the value of the "impact_quality_contribution" field.
func (m *ScoreTaskMutation) ClearImpactQualityContribution() {
	m.impact_quality_contribution = nil
	m.addimpact_quality_contribution = nil
	m.clearedFields[scoretask.FieldImpactQualityContribution] = struct{}{}
}

// ImpactQualityContributionCleared returns if the "impact_quality_contribution" field was cleared in this mutation.
func (m *ScoreTaskMutation) ImpactQualityContributionCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldImpactQualityContribution]
	return ok
}

// ResetImpactQualityContribution resets all changes to the "impact_quality_contribution" field.
func (m *ScoreTaskMutation) ResetImpactQualityContribution() {
	m.impact_quality_contribution = nil
	m.addimpact_quality_contribution = nil
	delete(m.clearedFields, scoretask.FieldImpactQualityContribution)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScoreTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScoreTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScoreTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scoretask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScoreTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scoretask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScoreTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scoretask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScoreTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScoreTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScoreTask entity.
// If the ScoreTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScoreTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ScoreTaskMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[scoretask.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ScoreTaskMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ScoreTaskMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ScoreTaskMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ScoreTaskMutation builder.
func (m *ScoreTaskMutation) Where(ps ...predicate.ScoreTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreTask).
func (m *ScoreTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreTaskMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.job != nil {
		fields = append(fields, scoretask.FieldJobID)
	}
	if m.doc_ref != nil {
		fields = append(fields, scoretask.FieldDocRef)
	}
	if m.doc_name != nil {
		fields = append(fields, scoretask.FieldDocName)
	}
	if m.view_url != nil {
		fields = append(fields, scoretask.FieldViewURL)
	}
	if m.preview_url != nil {
		fields = append(fields, scoretask.FieldPreviewURL)
	}
	if m.status != nil {
		fields = append(fields, scoretask.FieldStatus)
	}
	if m.text != nil {
		fields = append(fields, scoretask.FieldText)
	}
	if m.gpa != nil {
		fields = append(fields, scoretask.FieldGpa)
	}
	if m.school_year != nil {
		fields = append(fields, scoretask.FieldSchoolYear)
	}
	if m.num_internships != nil {
		fields = append(fields, scoretask.FieldNumInternships)
	}
	if m.score != nil {
		fields = append(fields, scoretask.FieldScore)
	}
	if m.gpa_contribution != nil {
		fields = append(fields, scoretask.FieldGpaContribution)
	}
	if m.experience_contribution != nil {
		fields = append(fields, scoretask.FieldExperienceContribution)
	}
	if m.impact_quality_contribution != nil {
		fields = append(fields, scoretask.FieldImpactQualityContribution)
	}
	if m.error_message != nil {
		fields = append(fields, scoretask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, scoretask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoretask.FieldJobID:
		return m.JobID()
	case scoretask.FieldDocRef:
		return m.DocRef()
	case scoretask.FieldDocName:
		return m.DocName()
	case scoretask.FieldViewURL:
		return m.ViewURL()
	case scoretask.FieldPreviewURL:
		return m.PreviewURL()
	case scoretask.FieldStatus:
		return m.Status()
	case scoretask.FieldText:
		return m.Text()
	case scoretask.FieldGpa:
		return m.Gpa()
	case scoretask.FieldSchoolYear:
		return m.SchoolYear()
	case scoretask.FieldNumInternships:
		return m.NumInternships()
	case scoretask.FieldScore:
		return m.Score()
	case scoretask.FieldGpaContribution:
		return m.GpaContribution()
	case scoretask.FieldExperienceContribution:
		return m.ExperienceContribution()
	case scoretask.FieldImpactQualityContribution:
		return m.ImpactQualityContribution()
	case scoretask.FieldErrorMessage:
		return m.ErrorMessage()
	case scoretask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoretask.FieldJobID:
		return m.OldJobID(ctx)
	case scoretask.FieldDocRef:
		return m.OldDocRef(ctx)
	case scoretask.FieldDocName:
		return m.OldDocName(ctx)
	case scoretask.FieldViewURL:
		return m.OldViewURL(ctx)
	case scoretask.FieldPreviewURL:
		return m.OldPreviewURL(ctx)
	case scoretask.FieldStatus:
		return m.OldStatus(ctx)
	case scoretask.FieldText:
		return m.OldText(ctx)
	case scoretask.FieldGpa:
		return m.OldGpa(ctx)
	case scoretask.FieldSchoolYear:
		return m.OldSchoolYear(ctx)
	case scoretask.FieldNumInternships:
		return m.OldNumInternships(ctx)
	case scoretask.FieldScore:
		return m.OldScore(ctx)
	case scoretask.FieldGpaContribution:
		return m.OldGpaContribution(ctx)
	case scoretask.FieldExperienceContribution:
		return m.OldExperienceContribution(ctx)
	case scoretask.FieldImpactQualityContribution:
		return m.OldImpactQualityContribution(ctx)
	case scoretask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scoretask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoretask.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case scoretask.FieldDocRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocRef(v)
		return nil
	case scoretask.FieldDocName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocName(v)
		return nil
	case scoretask.FieldViewURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewURL(v)
		return nil
	case scoretask.FieldPreviewURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewURL(v)
		return nil
	case scoretask.FieldStatus:
		v, ok := value.(scoretask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scoretask.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case scoretask.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpa(v)
		return nil
	case scoretask.FieldSchoolYear:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolYear(v)
		return nil
	case scoretask.FieldNumInternships:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumInternships(v)
		return nil
	case scoretask.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case scoretask.FieldGpaContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpaContribution(v)
		return nil
	case scoretask.FieldExperienceContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceContribution(v)
		return nil
	case scoretask.FieldImpactQualityContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpactQualityContribution(v)
		return nil
	case scoretask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scoretask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreTaskMutation) AddedFields() []string {
	var fields []string
	if m.addgpa != nil {
		fields = append(fields, scoretask.FieldGpa)
	}
	if m.addnum_internships != nil {
		fields = append(fields, scoretask.FieldNumInternships)
	}
	if m.addscore != nil {
		fields = append(fields, scoretask.FieldScore)
	}
	if m.addgpa_contribution != nil {
		fields = append(fields, scoretask.FieldGpaContribution)
	}
	if m.addexperience_contribution != nil {
		fields = append(fields, scoretask.FieldExperienceContribution)
	}
	if m.addimpact_quality_contribution != nil {
		fields = append(fields, scoretask.FieldImpactQualityContribution)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoretask.FieldGpa:
		return m.AddedGpa()
	case scoretask.FieldNumInternships:
		return m.AddedNumInternships()
	case scoretask.FieldScore:
		return m.AddedScore()
	case scoretask.FieldGpaContribution:
		return m.AddedGpaContribution()
	case scoretask.FieldExperienceContribution:
		return m.AddedExperienceContribution()
	case scoretask.FieldImpactQualityContribution:
		return m.AddedImpactQualityContribution()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoretask.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpa(v)
		return nil
	case scoretask.FieldNumInternships:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumInternships(v)
		return nil
	case scoretask.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case scoretask.FieldGpaContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpaContribution(v)
		return nil
	case scoretask.FieldExperienceContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceContribution(v)
		return nil
	case scoretask.FieldImpactQualityContribution:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpactQualityContribution(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoretask.FieldViewURL) {
		fields = append(fields, scoretask.FieldViewURL)
	}
	if m.FieldCleared(scoretask.FieldPreviewURL) {
		fields = append(fields, scoretask.FieldPreviewURL)
	}
	if m.FieldCleared(scoretask.FieldText) {
		fields = append(fields, scoretask.FieldText)
	}
	if m.FieldCleared(scoretask.FieldGpa) {
		fields = append(fields, scoretask.FieldGpa)
	}
	if m.FieldCleared(scoretask.FieldSchoolYear) {
		fields = append(fields, scoretask.FieldSchoolYear)
	}
	if m.FieldCleared(scoretask.FieldNumInternships) {
		fields = append(fields, scoretask.FieldNumInternships)
	}
	if m.FieldCleared(scoretask.FieldScore) {
		fields = append(fields, scoretask.FieldScore)
	}
	if m.FieldCleared(scoretask.FieldGpaContribution) {
		fields = append(fields, scoretask.FieldGpaContribution)
	}
	if m.FieldCleared(scoretask.FieldExperienceContribution) {
		fields = append(fields, scoretask.FieldExperienceContribution)
	}
	if m.FieldCleared(scoretask.FieldImpactQualityContribution) {
		fields = append(fields, scoretask.FieldImpactQualityContribution)
	}
	if m.FieldCleared(scoretask.FieldErrorMessage) {
		fields = append(fields, scoretask.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreTaskMutation) ClearField(name string) error {
	switch name {
	case scoretask.FieldViewURL:
		m.ClearViewURL()
		return nil
	case scoretask.FieldPreviewURL:
		m.ClearPreviewURL()
		return nil
	case scoretask.FieldText:
		m.ClearText()
		return nil
	case scoretask.FieldGpa:
		m.ClearGpa()
		return nil
	case scoretask.FieldSchoolYear:
		m.ClearSchoolYear()
		return nil
	case scoretask.FieldNumInternships:
		m.ClearNumInternships()
		return nil
	case scoretask.FieldScore:
		m.ClearScore()
		return nil
	case scoretask.FieldGpaContribution:
		m.ClearGpaContribution()
		return nil
	case scoretask.FieldExperienceContribution:
		m.ClearExperienceContribution()
		return nil
	case scoretask.FieldImpactQualityContribution:
		m.ClearImpactQualityContribution()
		return nil
	case scoretask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScoreTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreTaskMutation) ResetField(name string) error {
	switch name {
	case scoretask.FieldJobID:
		m.ResetJobID()
		return nil
	case scoretask.FieldDocRef:
		m.ResetDocRef()
		return nil
	case scoretask.FieldDocName:
		m.ResetDocName()
		return nil
	case scoretask.FieldViewURL:
		m.ResetViewURL()
		return nil
	case scoretask.FieldPreviewURL:
		m.ResetPreviewURL()
		return nil
	case scoretask.FieldStatus:
		m.ResetStatus()
		return nil
	case scoretask.FieldText:
		m.ResetText()
		return nil
	case scoretask.FieldGpa:
		m.ResetGpa()
		return nil
	case scoretask.FieldSchoolYear:
		m.ResetSchoolYear()
		return nil
	case scoretask.FieldNumInternships:
		m.ResetNumInternships()
		return nil
	case scoretask.FieldScore:
		m.ResetScore()
		return nil
	case scoretask.FieldGpaContribution:
		m.ResetGpaContribution()
		return nil
	case scoretask.FieldExperienceContribution:
		m.ResetExperienceContribution()
		return nil
	case scoretask.FieldImpactQualityContribution:
		m.ResetImpactQualityContribution()
		return nil
	case scoretask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scoretask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScoreTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, scoretask.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scoretask.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, scoretask.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case scoretask.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreTaskMutation) ClearEdge(name string) error {
	switch name {
	case scoretask.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ScoreTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreTaskMutation) ResetEdge(name string) error {
	switch name {
	case scoretask.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ScoreTask edge %s", name)
}
