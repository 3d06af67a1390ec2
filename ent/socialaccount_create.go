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

// SocialAccountCreate is the builder for creating a SocialAccount entity.
type SocialAccountCreate struct {
	config
	mutation *SocialAccountMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *SocialAccountCreate) SetProvider(v socialaccount.Provider) *SocialAccountCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableProvider(v *socialaccount.Provider) *SocialAccountCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetHandle sets the "handle" field.
func (_c *SocialAccountCreate) SetHandle(v string) *SocialAccountCreate {
	_c.mutation.SetHandle(v)
	return _c
}

// SetProviderUserID sets the "provider_user_id" field.
func (_c *SocialAccountCreate) SetProviderUserID(v string) *SocialAccountCreate {
	_c.mutation.SetProviderUserID(v)
	return _c
}

// SetAccessTokenSealed sets the "access_token_sealed" field.
func (_c *SocialAccountCreate) SetAccessTokenSealed(v string) *SocialAccountCreate {
	_c.mutation.SetAccessTokenSealed(v)
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *SocialAccountCreate) SetScopes(v []string) *SocialAccountCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *SocialAccountCreate) SetLabel(v string) *SocialAccountCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableLabel(v *string) *SocialAccountCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SocialAccountCreate) SetIsActive(v bool) *SocialAccountCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableIsActive(v *bool) *SocialAccountCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *SocialAccountCreate) SetLastUsedAt(v time.Time) *SocialAccountCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableLastUsedAt(v *time.Time) *SocialAccountCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SocialAccountCreate) SetCreatedAt(v time.Time) *SocialAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableCreatedAt(v *time.Time) *SocialAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SocialAccountCreate) SetUpdatedAt(v time.Time) *SocialAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableUpdatedAt(v *time.Time) *SocialAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SocialAccountCreate) SetID(v uuid.UUID) *SocialAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SocialAccountCreate) SetNillableID(v *uuid.UUID) *SocialAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *SocialAccountCreate) SetOwnerID(id uuid.UUID) *SocialAccountCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *SocialAccountCreate) SetOwner(v *User) *SocialAccountCreate {
	return _c.SetOwnerID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the BlockExecution entity by IDs.
func (_c *SocialAccountCreate) AddExecutionIDs(ids ...uuid.UUID) *SocialAccountCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the BlockExecution entity.
func (_c *SocialAccountCreate) AddExecutions(v ...*BlockExecution) *SocialAccountCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the SocialAccountMutation object of the builder.
func (_c *SocialAccountCreate) Mutation() *SocialAccountMutation {
	return _c.mutation
}

// Save creates the SocialAccount in the database.
func (_c *SocialAccountCreate) Save(ctx context.Context) (*SocialAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SocialAccountCreate) SaveX(ctx context.Context) *SocialAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SocialAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SocialAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SocialAccountCreate) defaults() {
	if _, ok := _c.mutation.Provider(); !ok {
		v := socialaccount.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := socialaccount.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := socialaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := socialaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := socialaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SocialAccountCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "SocialAccount.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := socialaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Handle(); !ok {
		return &ValidationError{Name: "handle", err: errors.New(`ent: missing required field "SocialAccount.handle"`)}
	}
	if v, ok := _c.mutation.Handle(); ok {
		if err := socialaccount.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderUserID(); !ok {
		return &ValidationError{Name: "provider_user_id", err: errors.New(`ent: missing required field "SocialAccount.provider_user_id"`)}
	}
	if v, ok := _c.mutation.ProviderUserID(); ok {
		if err := socialaccount.ProviderUserIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_user_id", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider_user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccessTokenSealed(); !ok {
		return &ValidationError{Name: "access_token_sealed", err: errors.New(`ent: missing required field "SocialAccount.access_token_sealed"`)}
	}
	if v, ok := _c.mutation.AccessTokenSealed(); ok {
		if err := socialaccount.AccessTokenSealedValidator(v); err != nil {
			return &ValidationError{Name: "access_token_sealed", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.access_token_sealed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SocialAccount.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SocialAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SocialAccount.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "SocialAccount.owner"`)}
	}
	return nil
}

func (_c *SocialAccountCreate) sqlSave(ctx context.Context) (*SocialAccount, error) {
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

func (_c *SocialAccountCreate) createSpec() (*SocialAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &SocialAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(socialaccount.Table, sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(socialaccount.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Handle(); ok {
		_spec.SetField(socialaccount.FieldHandle, field.TypeString, value)
		_node.Handle = value
	}
	if value, ok := _c.mutation.ProviderUserID(); ok {
		_spec.SetField(socialaccount.FieldProviderUserID, field.TypeString, value)
		_node.ProviderUserID = value
	}
	if value, ok := _c.mutation.AccessTokenSealed(); ok {
		_spec.SetField(socialaccount.FieldAccessTokenSealed, field.TypeString, value)
		_node.AccessTokenSealed = value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(socialaccount.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(socialaccount.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(socialaccount.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(socialaccount.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(socialaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(socialaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   socialaccount.OwnerTable,
			Columns: []string{socialaccount.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_social_accounts = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   socialaccount.ExecutionsTable,
			Columns: []string{socialaccount.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blockexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SocialAccountCreateBulk is the builder for creating many SocialAccount entities in bulk.
type SocialAccountCreateBulk struct {
	config
	err      error
	builders []*SocialAccountCreate
}

// Save creates the SocialAccount entities in the database.
func (_c *SocialAccountCreateBulk) Save(ctx context.Context) ([]*SocialAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SocialAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SocialAccountMutation)
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
func (_c *SocialAccountCreateBulk) SaveX(ctx context.Context) []*SocialAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SocialAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SocialAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
