// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/predicate"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BlockExecutionUpdate is the builder for updating BlockExecution entities.
type BlockExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *BlockExecutionMutation
}

// Where appends a list predicates to the BlockExecutionUpdate builder.
func (_u *BlockExecutionUpdate) Where(ps ...predicate.BlockExecution) *BlockExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockID sets the "block_id" field.
func (_u *BlockExecutionUpdate) SetBlockID(v string) *BlockExecutionUpdate {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableBlockID(v *string) *BlockExecutionUpdate {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetBlockName sets the "block_name" field.
func (_u *BlockExecutionUpdate) SetBlockName(v string) *BlockExecutionUpdate {
	_u.mutation.SetBlockName(v)
	return _u
}

// SetNillableBlockName sets the "block_name" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableBlockName(v *string) *BlockExecutionUpdate {
	if v != nil {
		_u.SetBlockName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlockExecutionUpdate) SetStatus(v blockexecution.Status) *BlockExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableStatus(v *blockexecution.Status) *BlockExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *BlockExecutionUpdate) SetInput(v map[string]interface{}) *BlockExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *BlockExecutionUpdate) SetOutput(v map[string]interface{}) *BlockExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *BlockExecutionUpdate) ClearOutput() *BlockExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BlockExecutionUpdate) SetErrorMessage(v string) *BlockExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableErrorMessage(v *string) *BlockExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BlockExecutionUpdate) ClearErrorMessage() *BlockExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *BlockExecutionUpdate) SetDurationMs(v int64) *BlockExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableDurationMs(v *int64) *BlockExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *BlockExecutionUpdate) AddDurationMs(v int64) *BlockExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BlockExecutionUpdate) SetStartedAt(v time.Time) *BlockExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableStartedAt(v *time.Time) *BlockExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BlockExecutionUpdate) SetFinishedAt(v time.Time) *BlockExecutionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableFinishedAt(v *time.Time) *BlockExecutionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetRunnerID sets the "runner" edge to the User entity by ID.
func (_u *BlockExecutionUpdate) SetRunnerID(id uuid.UUID) *BlockExecutionUpdate {
	_u.mutation.SetRunnerID(id)
	return _u
}

// SetNillableRunnerID sets the "runner" edge to the User entity by ID if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableRunnerID(id *uuid.UUID) *BlockExecutionUpdate {
	if id != nil {
		_u = _u.SetRunnerID(*id)
	}
	return _u
}

// SetRunner sets the "runner" edge to the User entity.
func (_u *BlockExecutionUpdate) SetRunner(v *User) *BlockExecutionUpdate {
	return _u.SetRunnerID(v.ID)
}

// SetAccountID sets the "account" edge to the SocialAccount entity by ID.
func (_u *BlockExecutionUpdate) SetAccountID(id uuid.UUID) *BlockExecutionUpdate {
	_u.mutation.SetAccountID(id)
	return _u
}

// SetNillableAccountID sets the "account" edge to the SocialAccount entity by ID if the given value is not nil.
func (_u *BlockExecutionUpdate) SetNillableAccountID(id *uuid.UUID) *BlockExecutionUpdate {
	if id != nil {
		_u = _u.SetAccountID(*id)
	}
	return _u
}

// SetAccount sets the "account" edge to the SocialAccount entity.
func (_u *BlockExecutionUpdate) SetAccount(v *SocialAccount) *BlockExecutionUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the BlockExecutionMutation object of the builder.
func (_u *BlockExecutionUpdate) Mutation() *BlockExecutionMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the User entity.
func (_u *BlockExecutionUpdate) ClearRunner() *BlockExecutionUpdate {
	_u.mutation.ClearRunner()
	return _u
}

// ClearAccount clears the "account" edge to the SocialAccount entity.
func (_u *BlockExecutionUpdate) ClearAccount() *BlockExecutionUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlockExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlockExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockExecutionUpdate) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := blockexecution.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockName(); ok {
		if err := blockexecution.BlockNameValidator(v); err != nil {
			return &ValidationError{Name: "block_name", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blockexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blockexecution.Table, blockexecution.Columns, sqlgraph.NewFieldSpec(blockexecution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(blockexecution.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockName(); ok {
		_spec.SetField(blockexecution.FieldBlockName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blockexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(blockexecution.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(blockexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(blockexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(blockexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(blockexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(blockexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(blockexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(blockexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(blockexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.RunnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.RunnerTable,
			Columns: []string{blockexecution.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.RunnerTable,
			Columns: []string{blockexecution.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.AccountTable,
			Columns: []string{blockexecution.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.AccountTable,
			Columns: []string{blockexecution.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlockExecutionUpdateOne is the builder for updating a single BlockExecution entity.
type BlockExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlockExecutionMutation
}

// SetBlockID sets the "block_id" field.
func (_u *BlockExecutionUpdateOne) SetBlockID(v string) *BlockExecutionUpdateOne {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableBlockID(v *string) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetBlockName sets the "block_name" field.
func (_u *BlockExecutionUpdateOne) SetBlockName(v string) *BlockExecutionUpdateOne {
	_u.mutation.SetBlockName(v)
	return _u
}

// SetNillableBlockName sets the "block_name" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableBlockName(v *string) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetBlockName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlockExecutionUpdateOne) SetStatus(v blockexecution.Status) *BlockExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableStatus(v *blockexecution.Status) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *BlockExecutionUpdateOne) SetInput(v map[string]interface{}) *BlockExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *BlockExecutionUpdateOne) SetOutput(v map[string]interface{}) *BlockExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *BlockExecutionUpdateOne) ClearOutput() *BlockExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BlockExecutionUpdateOne) SetErrorMessage(v string) *BlockExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableErrorMessage(v *string) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BlockExecutionUpdateOne) ClearErrorMessage() *BlockExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *BlockExecutionUpdateOne) SetDurationMs(v int64) *BlockExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableDurationMs(v *int64) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *BlockExecutionUpdateOne) AddDurationMs(v int64) *BlockExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BlockExecutionUpdateOne) SetStartedAt(v time.Time) *BlockExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BlockExecutionUpdateOne) SetFinishedAt(v time.Time) *BlockExecutionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableFinishedAt(v *time.Time) *BlockExecutionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetRunnerID sets the "runner" edge to the User entity by ID.
func (_u *BlockExecutionUpdateOne) SetRunnerID(id uuid.UUID) *BlockExecutionUpdateOne {
	_u.mutation.SetRunnerID(id)
	return _u
}

// SetNillableRunnerID sets the "runner" edge to the User entity by ID if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableRunnerID(id *uuid.UUID) *BlockExecutionUpdateOne {
	if id != nil {
		_u = _u.SetRunnerID(*id)
	}
	return _u
}

// SetRunner sets the "runner" edge to the User entity.
func (_u *BlockExecutionUpdateOne) SetRunner(v *User) *BlockExecutionUpdateOne {
	return _u.SetRunnerID(v.ID)
}

// SetAccountID sets the "account" edge to the SocialAccount entity by ID.
func (_u *BlockExecutionUpdateOne) SetAccountID(id uuid.UUID) *BlockExecutionUpdateOne {
	_u.mutation.SetAccountID(id)
	return _u
}

// SetNillableAccountID sets the "account" edge to the SocialAccount entity by ID if the given value is not nil.
func (_u *BlockExecutionUpdateOne) SetNillableAccountID(id *uuid.UUID) *BlockExecutionUpdateOne {
	if id != nil {
		_u = _u.SetAccountID(*id)
	}
	return _u
}

// SetAccount sets the "account" edge to the SocialAccount entity.
func (_u *BlockExecutionUpdateOne) SetAccount(v *SocialAccount) *BlockExecutionUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the BlockExecutionMutation object of the builder.
func (_u *BlockExecutionUpdateOne) Mutation() *BlockExecutionMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the User entity.
func (_u *BlockExecutionUpdateOne) ClearRunner() *BlockExecutionUpdateOne {
	_u.mutation.ClearRunner()
	return _u
}

// ClearAccount clears the "account" edge to the SocialAccount entity.
func (_u *BlockExecutionUpdateOne) ClearAccount() *BlockExecutionUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the BlockExecutionUpdate builder.
func (_u *BlockExecutionUpdateOne) Where(ps ...predicate.BlockExecution) *BlockExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlockExecutionUpdateOne) Select(field string, fields ...string) *BlockExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlockExecution entity.
func (_u *BlockExecutionUpdateOne) Save(ctx context.Context) (*BlockExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockExecutionUpdateOne) SaveX(ctx context.Context) *BlockExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlockExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.BlockID(); ok {
		if err := blockexecution.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockName(); ok {
		if err := blockexecution.BlockNameValidator(v); err != nil {
			return &ValidationError{Name: "block_name", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blockexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockExecutionUpdateOne) sqlSave(ctx context.Context) (_node *BlockExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blockexecution.Table, blockexecution.Columns, sqlgraph.NewFieldSpec(blockexecution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlockExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blockexecution.FieldID)
		for _, f := range fields {
			if !blockexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blockexecution.FieldID {
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
	if value, ok := _u.mutation.BlockID(); ok {
		_spec.SetField(blockexecution.FieldBlockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockName(); ok {
		_spec.SetField(blockexecution.FieldBlockName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blockexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(blockexecution.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(blockexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(blockexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(blockexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(blockexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(blockexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(blockexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(blockexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(blockexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.RunnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.RunnerTable,
			Columns: []string{blockexecution.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.RunnerTable,
			Columns: []string{blockexecution.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.AccountTable,
			Columns: []string{blockexecution.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blockexecution.AccountTable,
			Columns: []string{blockexecution.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlockExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
