// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BlockExecutionDelete is the builder for deleting a BlockExecution entity.
type BlockExecutionDelete struct {
	config
	hooks    []Hook
	mutation *BlockExecutionMutation
}

// Where appends a list predicates to the BlockExecutionDelete builder.
func (_d *BlockExecutionDelete) Where(ps ...predicate.BlockExecution) *BlockExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlockExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlockExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlockExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blockexecution.Table, sqlgraph.NewFieldSpec(blockexecution.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BlockExecutionDeleteOne is the builder for deleting a single BlockExecution entity.
type BlockExecutionDeleteOne struct {
	_d *BlockExecutionDelete
}

// Where appends a list predicates to the BlockExecutionDelete builder.
func (_d *BlockExecutionDeleteOne) Where(ps ...predicate.BlockExecution) *BlockExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlockExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blockexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlockExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
