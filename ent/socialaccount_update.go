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
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SocialAccountUpdate is the builder for updating SocialAccount entities.
type SocialAccountUpdate struct {
	config
	hooks    []Hook
	mutation *SocialAccountMutation
}

// Where appends a list predicates to the SocialAccountUpdate builder.
func (_u *SocialAccountUpdate) Where(ps ...predicate.SocialAccount) *SocialAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SocialAccountUpdate) SetProvider(v socialaccount.Provider) *SocialAccountUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableProvider(v *socialaccount.Provider) *SocialAccountUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetHandle sets the "handle" field.
func (_u *SocialAccountUpdate) SetHandle(v string) *SocialAccountUpdate {
	_u.mutation.SetHandle(v)
	return _u
}

// SetNillableHandle sets the "handle" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableHandle(v *string) *SocialAccountUpdate {
	if v != nil {
		_u.SetHandle(*v)
	}
	return _u
}

// SetProviderUserID sets the "provider_user_id" field.
func (_u *SocialAccountUpdate) SetProviderUserID(v string) *SocialAccountUpdate {
	_u.mutation.SetProviderUserID(v)
	return _u
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableProviderUserID(v *string) *SocialAccountUpdate {
	if v != nil {
		_u.SetProviderUserID(*v)
	}
	return _u
}

// SetAccessTokenSealed sets the "access_token_sealed" field.
func (_u *SocialAccountUpdate) SetAccessTokenSealed(v string) *SocialAccountUpdate {
	_u.mutation.SetAccessTokenSealed(v)
	return _u
}

// SetNillableAccessTokenSealed sets the "access_token_sealed" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableAccessTokenSealed(v *string) *SocialAccountUpdate {
	if v != nil {
		_u.SetAccessTokenSealed(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *SocialAccountUpdate) SetScopes(v []string) *SocialAccountUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *SocialAccountUpdate) AppendScopes(v []string) *SocialAccountUpdate {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *SocialAccountUpdate) ClearScopes() *SocialAccountUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SocialAccountUpdate) SetLabel(v string) *SocialAccountUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableLabel(v *string) *SocialAccountUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *SocialAccountUpdate) ClearLabel() *SocialAccountUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SocialAccountUpdate) SetIsActive(v bool) *SocialAccountUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableIsActive(v *bool) *SocialAccountUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *SocialAccountUpdate) SetLastUsedAt(v time.Time) *SocialAccountUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *SocialAccountUpdate) SetNillableLastUsedAt(v *time.Time) *SocialAccountUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *SocialAccountUpdate) ClearLastUsedAt() *SocialAccountUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SocialAccountUpdate) SetUpdatedAt(v time.Time) *SocialAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SocialAccountUpdate) SetOwnerID(id uuid.UUID) *SocialAccountUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SocialAccountUpdate) SetOwner(v *User) *SocialAccountUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the BlockExecution entity by IDs.
func (_u *SocialAccountUpdate) AddExecutionIDs(ids ...uuid.UUID) *SocialAccountUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the BlockExecution entity.
func (_u *SocialAccountUpdate) AddExecutions(v ...*BlockExecution) *SocialAccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the SocialAccountMutation object of the builder.
func (_u *SocialAccountUpdate) Mutation() *SocialAccountMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SocialAccountUpdate) ClearOwner() *SocialAccountUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearExecutions clears all "executions" edges to the BlockExecution entity.
func (_u *SocialAccountUpdate) ClearExecutions() *SocialAccountUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to BlockExecution entities by IDs.
func (_u *SocialAccountUpdate) RemoveExecutionIDs(ids ...uuid.UUID) *SocialAccountUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to BlockExecution entities.
func (_u *SocialAccountUpdate) RemoveExecutions(v ...*BlockExecution) *SocialAccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SocialAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SocialAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SocialAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SocialAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SocialAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := socialaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SocialAccountUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := socialaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Handle(); ok {
		if err := socialaccount.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderUserID(); ok {
		if err := socialaccount.ProviderUserIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_user_id", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessTokenSealed(); ok {
		if err := socialaccount.AccessTokenSealedValidator(v); err != nil {
			return &ValidationError{Name: "access_token_sealed", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.access_token_sealed": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SocialAccount.owner"`)
	}
	return nil
}

func (_u *SocialAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(socialaccount.Table, socialaccount.Columns, sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(socialaccount.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Handle(); ok {
		_spec.SetField(socialaccount.FieldHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderUserID(); ok {
		_spec.SetField(socialaccount.FieldProviderUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenSealed(); ok {
		_spec.SetField(socialaccount.FieldAccessTokenSealed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(socialaccount.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, socialaccount.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(socialaccount.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(socialaccount.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(socialaccount.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(socialaccount.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(socialaccount.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(socialaccount.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(socialaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{socialaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SocialAccountUpdateOne is the builder for updating a single SocialAccount entity.
type SocialAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SocialAccountMutation
}

// SetProvider sets the "provider" field.
func (_u *SocialAccountUpdateOne) SetProvider(v socialaccount.Provider) *SocialAccountUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableProvider(v *socialaccount.Provider) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetHandle sets the "handle" field.
func (_u *SocialAccountUpdateOne) SetHandle(v string) *SocialAccountUpdateOne {
	_u.mutation.SetHandle(v)
	return _u
}

// SetNillableHandle sets the "handle" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableHandle(v *string) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetHandle(*v)
	}
	return _u
}

// SetProviderUserID sets the "provider_user_id" field.
func (_u *SocialAccountUpdateOne) SetProviderUserID(v string) *SocialAccountUpdateOne {
	_u.mutation.SetProviderUserID(v)
	return _u
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableProviderUserID(v *string) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetProviderUserID(*v)
	}
	return _u
}

// SetAccessTokenSealed sets the "access_token_sealed" field.
func (_u *SocialAccountUpdateOne) SetAccessTokenSealed(v string) *SocialAccountUpdateOne {
	_u.mutation.SetAccessTokenSealed(v)
	return _u
}

// SetNillableAccessTokenSealed sets the "access_token_sealed" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableAccessTokenSealed(v *string) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetAccessTokenSealed(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *SocialAccountUpdateOne) SetScopes(v []string) *SocialAccountUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *SocialAccountUpdateOne) AppendScopes(v []string) *SocialAccountUpdateOne {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *SocialAccountUpdateOne) ClearScopes() *SocialAccountUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SocialAccountUpdateOne) SetLabel(v string) *SocialAccountUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableLabel(v *string) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *SocialAccountUpdateOne) ClearLabel() *SocialAccountUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SocialAccountUpdateOne) SetIsActive(v bool) *SocialAccountUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableIsActive(v *bool) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *SocialAccountUpdateOne) SetLastUsedAt(v time.Time) *SocialAccountUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *SocialAccountUpdateOne) SetNillableLastUsedAt(v *time.Time) *SocialAccountUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *SocialAccountUpdateOne) ClearLastUsedAt() *SocialAccountUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SocialAccountUpdateOne) SetUpdatedAt(v time.Time) *SocialAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SocialAccountUpdateOne) SetOwnerID(id uuid.UUID) *SocialAccountUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SocialAccountUpdateOne) SetOwner(v *User) *SocialAccountUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the BlockExecution entity by IDs.
func (_u *SocialAccountUpdateOne) AddExecutionIDs(ids ...uuid.UUID) *SocialAccountUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the BlockExecution entity.
func (_u *SocialAccountUpdateOne) AddExecutions(v ...*BlockExecution) *SocialAccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the SocialAccountMutation object of the builder.
func (_u *SocialAccountUpdateOne) Mutation() *SocialAccountMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SocialAccountUpdateOne) ClearOwner() *SocialAccountUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearExecutions clears all "executions" edges to the BlockExecution entity.
func (_u *SocialAccountUpdateOne) ClearExecutions() *SocialAccountUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to BlockExecution entities by IDs.
func (_u *SocialAccountUpdateOne) RemoveExecutionIDs(ids ...uuid.UUID) *SocialAccountUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to BlockExecution entities.
func (_u *SocialAccountUpdateOne) RemoveExecutions(v ...*BlockExecution) *SocialAccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the SocialAccountUpdate builder.
func (_u *SocialAccountUpdateOne) Where(ps ...predicate.SocialAccount) *SocialAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SocialAccountUpdateOne) Select(field string, fields ...string) *SocialAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SocialAccount entity.
func (_u *SocialAccountUpdateOne) Save(ctx context.Context) (*SocialAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SocialAccountUpdateOne) SaveX(ctx context.Context) *SocialAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SocialAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SocialAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SocialAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := socialaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SocialAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := socialaccount.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Handle(); ok {
		if err := socialaccount.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderUserID(); ok {
		if err := socialaccount.ProviderUserIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_user_id", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.provider_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessTokenSealed(); ok {
		if err := socialaccount.AccessTokenSealedValidator(v); err != nil {
			return &ValidationError{Name: "access_token_sealed", err: fmt.Errorf(`ent: validator failed for field "SocialAccount.access_token_sealed": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SocialAccount.owner"`)
	}
	return nil
}

func (_u *SocialAccountUpdateOne) sqlSave(ctx context.Context) (_node *SocialAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(socialaccount.Table, socialaccount.Columns, sqlgraph.NewFieldSpec(socialaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SocialAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, socialaccount.FieldID)
		for _, f := range fields {
			if !socialaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != socialaccount.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(socialaccount.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Handle(); ok {
		_spec.SetField(socialaccount.FieldHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderUserID(); ok {
		_spec.SetField(socialaccount.FieldProviderUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenSealed(); ok {
		_spec.SetField(socialaccount.FieldAccessTokenSealed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(socialaccount.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, socialaccount.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(socialaccount.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(socialaccount.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(socialaccount.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(socialaccount.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(socialaccount.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(socialaccount.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(socialaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SocialAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{socialaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
