// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BlockExecutionCreate is the builder for creating a BlockExecution entity.
type BlockExecutionCreate struct {
	config
	mutation *BlockExecutionMutation
	hooks    []Hook
}

// SetBlockID sets the "block_id" field.
func (_c *BlockExecutionCreate) SetBlockID(v string) *BlockExecutionCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetBlockName sets the "block_name" field.
func (_c *BlockExecutionCreate) SetBlockName(v string) *BlockExecutionCreate {
	_c.mutation.SetBlockName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BlockExecutionCreate) SetStatus(v blockexecution.Status) *BlockExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *BlockExecutionCreate) SetInput(v map[string]interface{}) *BlockExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *BlockExecutionCreate) SetOutput(v map[string]interface{}) *BlockExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BlockExecutionCreate) SetErrorMessage(v string) *BlockExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BlockExecutionCreate) SetNillableErrorMessage(v *string) *BlockExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *BlockExecutionCreate) SetDurationMs(v int64) *BlockExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BlockExecutionCreate) SetStartedAt(v time.Time) *BlockExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *BlockExecutionCreate) SetFinishedAt(v time.Time) *BlockExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockExecutionCreate) SetCreatedAt(v time.Time) *BlockExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockExecutionCreate) SetNillableCreatedAt(v *time.Time) *BlockExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlockExecutionCreate) SetID(v uuid.UUID) *BlockExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlockExecutionCreate) SetNillableID(v *uuid.UUID) *BlockExecutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRunnerID sets the "runner" edge to the User entity by ID.
func (_c *BlockExecutionCreate) SetRunnerID(id uuid.UUID) *BlockExecutionCreate {
	_c.mutation.SetRunnerID(id)
	return _c
}

// SetNillableRunnerID sets the "runner" edge to the User entity by ID if the given value is not nil.
func (_c *BlockExecutionCreate) SetNillableRunnerID(id *uuid.UUID) *BlockExecutionCreate {
	if id != nil {
		_c = _c.SetRunnerID(*id)
	}
	return _c
}

// SetRunner sets the "runner" edge to the User entity.
func (_c *BlockExecutionCreate) SetRunner(v *User) *BlockExecutionCreate {
	return _c.SetRunnerID(v.ID)
}

// SetAccountID sets the "account" edge to the SocialAccount entity by ID.
func (_c *BlockExecutionCreate) SetAccountID(id uuid.UUID) *BlockExecutionCreate {
	_c.mutation.SetAccountID(id)
	return _c
}

// SetNillableAccountID sets the "account" edge to the SocialAccount entity by ID if the given value is not nil.
func (_c *BlockExecutionCreate) SetNillableAccountID(id *uuid.UUID) *BlockExecutionCreate {
	if id != nil {
		_c = _c.SetAccountID(*id)
	}
	return _c
}

// SetAccount sets the "account" edge to the SocialAccount entity.
func (_c *BlockExecutionCreate) SetAccount(v *SocialAccount) *BlockExecutionCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the BlockExecutionMutation object of the builder.
func (_c *BlockExecutionCreate) Mutation() *BlockExecutionMutation {
	return _c.mutation
}

// Save creates the BlockExecution in the database.
func (_c *BlockExecutionCreate) Save(ctx context.Context) (*BlockExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockExecutionCreate) SaveX(ctx context.Context) *BlockExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockExecutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blockexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blockexecution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockExecutionCreate) check() error {
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`ent: missing required field "BlockExecution.block_id"`)}
	}
	if v, ok := _c.mutation.BlockID(); ok {
		if err := blockexecution.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlockName(); !ok {
		return &ValidationError{Name: "block_name", err: errors.New(`ent: missing required field "BlockExecution.block_name"`)}
	}
	if v, ok := _c.mutation.BlockName(); ok {
		if err := blockexecution.BlockNameValidator(v); err != nil {
			return &ValidationError{Name: "block_name", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.block_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BlockExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := blockexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BlockExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "BlockExecution.input"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "BlockExecution.duration_ms"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "BlockExecution.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "BlockExecution.finished_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlockExecution.created_at"`)}
	}
	return nil
}

func (_c *BlockExecutionCreate) sqlSave(ctx context.Context) (*BlockExecution, error) {
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

func (_c *BlockExecutionCreate) createSpec() (*BlockExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &BlockExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blockexecution.Table, sqlgraph.NewFieldSpec(blockexecution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BlockID(); ok {
		_spec.SetField(blockexecution.FieldBlockID, field.TypeString, value)
		_node.BlockID = value
	}
	if value, ok := _c.mutation.BlockName(); ok {
		_spec.SetField(blockexecution.FieldBlockName, field.TypeString, value)
		_node.BlockName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(blockexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(blockexecution.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(blockexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(blockexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(blockexecution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(blockexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(blockexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blockexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunnerIDs(); len(nodes) > 0 {
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
		_node.user_executions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.social_account_executions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlockExecutionCreateBulk is the builder for creating many BlockExecution entities in bulk.
type BlockExecutionCreateBulk struct {
	config
	err      error
	builders []*BlockExecutionCreate
}

// Save creates the BlockExecution entities in the database.
func (_c *BlockExecutionCreateBulk) Save(ctx context.Context) ([]*BlockExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlockExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockExecutionMutation)
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
func (_c *BlockExecutionCreateBulk) SaveX(ctx context.Context) []*BlockExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
