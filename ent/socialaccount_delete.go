// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fiber-ent-x-moderation/ent/predicate"
	"fiber-ent-x-moderation/ent/socialaccount"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SocialAccountDelete is the builder for deleting a SocialAccount entity.
type SocialAccountDelete struct {
	config
	hooks    []Hook
	mutation *SocialAccountMutation
}

// Where appends a list predicates to the SocialAccountDelete builder.
func (_d *SocialAccountDelete) Where(ps ...predicate.SocialAccount) *SocialAccountDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SocialAccountDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SocialAccountDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SocialAccountDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(socialaccount.Table, sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID))
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

// SocialAccountDeleteOne is the builder for deleting a single SocialAccount entity.
type SocialAccountDeleteOne struct {
	_d *SocialAccountDelete
}

// Where appends a list predicates to the SocialAccountDelete builder.
func (_d *SocialAccountDeleteOne) Where(ps ...predicate.SocialAccount) *SocialAccountDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SocialAccountDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{socialaccount.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SocialAccountDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
