// Code generated by ent, DO NOT EDIT.

package blockexecution

import (
	"fiber-ent-x-moderation/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldID, id))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldBlockID, v))
}

// BlockName applies equality check predicate on the "block_name" field. It's identical to BlockNameEQ.
func BlockName(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldBlockName, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldDurationMs, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldBlockID, vs...))
}

// BlockIDGT applies the GT predicate on the "block_id" field.
func BlockIDGT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldBlockID, v))
}

// BlockIDGTE applies the GTE predicate on the "block_id" field.
func BlockIDGTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldBlockID, v))
}

// BlockIDLT applies the LT predicate on the "block_id" field.
func BlockIDLT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldBlockID, v))
}

// BlockIDLTE applies the LTE predicate on the "block_id" field.
func BlockIDLTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldBlockID, v))
}

// BlockIDContains applies the Contains predicate on the "block_id" field.
func BlockIDContains(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContains(FieldBlockID, v))
}

// BlockIDHasPrefix applies the HasPrefix predicate on the "block_id" field.
func BlockIDHasPrefix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasPrefix(FieldBlockID, v))
}

// BlockIDHasSuffix applies the HasSuffix predicate on the "block_id" field.
func BlockIDHasSuffix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasSuffix(FieldBlockID, v))
}

// BlockIDEqualFold applies the EqualFold predicate on the "block_id" field.
func BlockIDEqualFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEqualFold(FieldBlockID, v))
}

// BlockIDContainsFold applies the ContainsFold predicate on the "block_id" field.
func BlockIDContainsFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContainsFold(FieldBlockID, v))
}

// BlockNameEQ applies the EQ predicate on the "block_name" field.
func BlockNameEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldBlockName, v))
}

// BlockNameNEQ applies the NEQ predicate on the "block_name" field.
func BlockNameNEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldBlockName, v))
}

// BlockNameIn applies the In predicate on the "block_name" field.
func BlockNameIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldBlockName, vs...))
}

// BlockNameNotIn applies the NotIn predicate on the "block_name" field.
func BlockNameNotIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldBlockName, vs...))
}

// BlockNameGT applies the GT predicate on the "block_name" field.
func BlockNameGT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldBlockName, v))
}

// BlockNameGTE applies the GTE predicate on the "block_name" field.
func BlockNameGTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldBlockName, v))
}

// BlockNameLT applies the LT predicate on the "block_name" field.
func BlockNameLT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldBlockName, v))
}

// BlockNameLTE applies the LTE predicate on the "block_name" field.
func BlockNameLTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldBlockName, v))
}

// BlockNameContains applies the Contains predicate on the "block_name" field.
func BlockNameContains(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContains(FieldBlockName, v))
}

// BlockNameHasPrefix applies the HasPrefix predicate on the "block_name" field.
func BlockNameHasPrefix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasPrefix(FieldBlockName, v))
}

// BlockNameHasSuffix applies the HasSuffix predicate on the "block_name" field.
func BlockNameHasSuffix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasSuffix(FieldBlockName, v))
}

// BlockNameEqualFold applies the EqualFold predicate on the "block_name" field.
func BlockNameEqualFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEqualFold(FieldBlockName, v))
}

// BlockNameContainsFold applies the ContainsFold predicate on the "block_name" field.
func BlockNameContainsFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContainsFold(FieldBlockName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotNull(FieldOutput))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldDurationMs, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldFinishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlockExecution {
	return predicate.BlockExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRunner applies the HasEdge predicate on the "runner" edge.
func HasRunner() predicate.BlockExecution {
	return predicate.BlockExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunnerWith applies the HasEdge predicate on the "runner" edge with a given conditions (other predicates).
func HasRunnerWith(preds ...predicate.User) predicate.BlockExecution {
	return predicate.BlockExecution(func(s *sql.Selector) {
		step := newRunnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.BlockExecution {
	return predicate.BlockExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.SocialAccount) predicate.BlockExecution {
	return predicate.BlockExecution(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlockExecution) predicate.BlockExecution {
	return predicate.BlockExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlockExecution) predicate.BlockExecution {
	return predicate.BlockExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlockExecution) predicate.BlockExecution {
	return predicate.BlockExecution(sql.NotPredicates(p))
}
