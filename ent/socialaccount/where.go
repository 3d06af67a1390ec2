// Code generated by ent, DO NOT EDIT.

package socialaccount

import (
	"fiber-ent-x-moderation/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldID, id))
}

// Handle applies equality check predicate on the "handle" field. It's identical to HandleEQ.
func Handle(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldHandle, v))
}

// ProviderUserID applies equality check predicate on the "provider_user_id" field. It's identical to ProviderUserIDEQ.
func ProviderUserID(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldProviderUserID, v))
}

// AccessTokenSealed applies equality check predicate on the "access_token_sealed" field. It's identical to AccessTokenSealedEQ.
func AccessTokenSealed(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldAccessTokenSealed, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldIsActive, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldProvider, vs...))
}

// HandleEQ applies the EQ predicate on the "handle" field.
func HandleEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldHandle, v))
}

// HandleNEQ applies the NEQ predicate on the "handle" field.
func HandleNEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldHandle, v))
}

// HandleIn applies the In predicate on the "handle" field.
func HandleIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldHandle, vs...))
}

// HandleNotIn applies the NotIn predicate on the "handle" field.
func HandleNotIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldHandle, vs...))
}

// HandleGT applies the GT predicate on the "handle" field.
func HandleGT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldHandle, v))
}

// HandleGTE applies the GTE predicate on the "handle" field.
func HandleGTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldHandle, v))
}

// HandleLT applies the LT predicate on the "handle" field.
func HandleLT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldHandle, v))
}

// HandleLTE applies the LTE predicate on the "handle" field.
func HandleLTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldHandle, v))
}

// HandleContains applies the Contains predicate on the "handle" field.
func HandleContains(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContains(FieldHandle, v))
}

// HandleHasPrefix applies the HasPrefix predicate on the "handle" field.
func HandleHasPrefix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasPrefix(FieldHandle, v))
}

// HandleHasSuffix applies the HasSuffix predicate on the "handle" field.
func HandleHasSuffix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasSuffix(FieldHandle, v))
}

// HandleEqualFold applies the EqualFold predicate on the "handle" field.
func HandleEqualFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEqualFold(FieldHandle, v))
}

// HandleContainsFold applies the ContainsFold predicate on the "handle" field.
func HandleContainsFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContainsFold(FieldHandle, v))
}

// ProviderUserIDEQ applies the EQ predicate on the "provider_user_id" field.
func ProviderUserIDEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldProviderUserID, v))
}

// ProviderUserIDNEQ applies the NEQ predicate on the "provider_user_id" field.
func ProviderUserIDNEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldProviderUserID, v))
}

// ProviderUserIDIn applies the In predicate on the "provider_user_id" field.
func ProviderUserIDIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldProviderUserID, vs...))
}

// ProviderUserIDNotIn applies the NotIn predicate on the "provider_user_id" field.
func ProviderUserIDNotIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldProviderUserID, vs...))
}

// ProviderUserIDGT applies the GT predicate on the "provider_user_id" field.
func ProviderUserIDGT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldProviderUserID, v))
}

// ProviderUserIDGTE applies the GTE predicate on the "provider_user_id" field.
func ProviderUserIDGTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldProviderUserID, v))
}

// ProviderUserIDLT applies the LT predicate on the "provider_user_id" field.
func ProviderUserIDLT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldProviderUserID, v))
}

// ProviderUserIDLTE applies the LTE predicate on the "provider_user_id" field.
func ProviderUserIDLTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldProviderUserID, v))
}

// ProviderUserIDContains applies the Contains predicate on the "provider_user_id" field.
func ProviderUserIDContains(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContains(FieldProviderUserID, v))
}

// ProviderUserIDHasPrefix applies the HasPrefix predicate on the "provider_user_id" field.
func ProviderUserIDHasPrefix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasPrefix(FieldProviderUserID, v))
}

// ProviderUserIDHasSuffix applies the HasSuffix predicate on the "provider_user_id" field.
func ProviderUserIDHasSuffix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasSuffix(FieldProviderUserID, v))
}

// ProviderUserIDEqualFold applies the EqualFold predicate on the "provider_user_id" field.
func ProviderUserIDEqualFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEqualFold(FieldProviderUserID, v))
}

// ProviderUserIDContainsFold applies the ContainsFold predicate on the "provider_user_id" field.
func ProviderUserIDContainsFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContainsFold(FieldProviderUserID, v))
}

// AccessTokenSealedEQ applies the EQ predicate on the "access_token_sealed" field.
func AccessTokenSealedEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldAccessTokenSealed, v))
}

// AccessTokenSealedNEQ applies the NEQ predicate on the "access_token_sealed" field.
func AccessTokenSealedNEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldAccessTokenSealed, v))
}

// AccessTokenSealedIn applies the In predicate on the "access_token_sealed" field.
func AccessTokenSealedIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldAccessTokenSealed, vs...))
}

// AccessTokenSealedNotIn applies the NotIn predicate on the "access_token_sealed" field.
func AccessTokenSealedNotIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldAccessTokenSealed, vs...))
}

// AccessTokenSealedGT applies the GT predicate on the "access_token_sealed" field.
func AccessTokenSealedGT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldAccessTokenSealed, v))
}

// AccessTokenSealedGTE applies the GTE predicate on the "access_token_sealed" field.
func AccessTokenSealedGTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldAccessTokenSealed, v))
}

// AccessTokenSealedLT applies the LT predicate on the "access_token_sealed" field.
func AccessTokenSealedLT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldAccessTokenSealed, v))
}

// AccessTokenSealedLTE applies the LTE predicate on the "access_token_sealed" field.
func AccessTokenSealedLTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldAccessTokenSealed, v))
}

// AccessTokenSealedContains applies the Contains predicate on the "access_token_sealed" field.
func AccessTokenSealedContains(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContains(FieldAccessTokenSealed, v))
}

// AccessTokenSealedHasPrefix applies the HasPrefix predicate on the "access_token_sealed" field.
func AccessTokenSealedHasPrefix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasPrefix(FieldAccessTokenSealed, v))
}

// AccessTokenSealedHasSuffix applies the HasSuffix predicate on the "access_token_sealed" field.
func AccessTokenSealedHasSuffix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasSuffix(FieldAccessTokenSealed, v))
}

// AccessTokenSealedEqualFold applies the EqualFold predicate on the "access_token_sealed" field.
func AccessTokenSealedEqualFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEqualFold(FieldAccessTokenSealed, v))
}

// AccessTokenSealedContainsFold applies the ContainsFold predicate on the "access_token_sealed" field.
func AccessTokenSealedContainsFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContainsFold(FieldAccessTokenSealed, v))
}

// ScopesIsNil applies the IsNil predicate on the "scopes" field.
func ScopesIsNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIsNull(FieldScopes))
}

// ScopesNotNil applies the NotNil predicate on the "scopes" field.
func ScopesNotNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotNull(FieldScopes))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldContainsFold(FieldLabel, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldIsActive, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotNull(FieldLastUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SocialAccount {
	return predicate.SocialAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.SocialAccount {
	return predicate.SocialAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.SocialAccount {
	return predicate.SocialAccount(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.SocialAccount {
	return predicate.SocialAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.BlockExecution) predicate.SocialAccount {
	return predicate.SocialAccount(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SocialAccount) predicate.SocialAccount {
	return predicate.SocialAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SocialAccount) predicate.SocialAccount {
	return predicate.SocialAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SocialAccount) predicate.SocialAccount {
	return predicate.SocialAccount(sql.NotPredicates(p))
}
