// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// BlockExecution is the model entity for the BlockExecution schema.
type BlockExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Stable id of the executed block
	BlockID string `json:"block_id,omitempty"`
	// BlockName holds the value of the "block_name" field.
	BlockName string `json:"block_name,omitempty"`
	// Status holds the value of the "status" field.
	Status blockexecution.Status `json:"status,omitempty"`
	// Block input with credential fields stripped
	Input map[string]interface{} `json:"input,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlockExecutionQuery when eager-loading is set.
	Edges                     BlockExecutionEdges `json:"edges"`
	social_account_executions *uuid.UUID
	user_executions           *uuid.UUID
	selectValues              sql.SelectValues
}

// BlockExecutionEdges holds the relations/edges for other nodes in the graph.
type BlockExecutionEdges struct {
	// Runner holds the value of the runner edge.
	Runner *User `json:"runner,omitempty"`
	// Account holds the value of the account edge.
	Account *SocialAccount `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunnerOrErr returns the Runner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlockExecutionEdges) RunnerOrErr() (*User, error) {
	if e.Runner != nil {
		return e.Runner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "runner"}
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlockExecutionEdges) AccountOrErr() (*SocialAccount, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: socialaccount.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlockExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blockexecution.FieldInput, blockexecution.FieldOutput:
			values[i] = new([]byte)
		case blockexecution.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case blockexecution.FieldBlockID, blockexecution.FieldBlockName, blockexecution.FieldStatus, blockexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case blockexecution.FieldStartedAt, blockexecution.FieldFinishedAt, blockexecution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case blockexecution.FieldID:
			values[i] = new(uuid.UUID)
		case blockexecution.ForeignKeys[0]: // social_account_executions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case blockexecution.ForeignKeys[1]: // user_executions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlockExecution fields.
func (_m *BlockExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blockexecution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case blockexecution.FieldBlockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_id", values[i])
			} else if value.Valid {
				_m.BlockID = value.String
			}
		case blockexecution.FieldBlockName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_name", values[i])
			} else if value.Valid {
				_m.BlockName = value.String
			}
		case blockexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = blockexecution.Status(value.String)
			}
		case blockexecution.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case blockexecution.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case blockexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case blockexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case blockexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case blockexecution.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case blockexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blockexecution.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field social_account_executions", values[i])
			} else if value.Valid {
				_m.social_account_executions = new(uuid.UUID)
				*_m.social_account_executions = *value.S.(*uuid.UUID)
			}
		case blockexecution.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_executions", values[i])
			} else if value.Valid {
				_m.user_executions = new(uuid.UUID)
				*_m.user_executions = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlockExecution.
// This includes values selected through modifiers, order, etc.
func (_m *BlockExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRunner queries the "runner" edge of the BlockExecution entity.
func (_m *BlockExecution) QueryRunner() *UserQuery {
	return NewBlockExecutionClient(_m.config).QueryRunner(_m)
}

// QueryAccount queries the "account" edge of the BlockExecution entity.
func (_m *BlockExecution) QueryAccount() *SocialAccountQuery {
	return NewBlockExecutionClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this BlockExecution.
// Note that you need to call BlockExecution.Unwrap() before calling this method if this BlockExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlockExecution) Update() *BlockExecutionUpdateOne {
	return NewBlockExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlockExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlockExecution) Unwrap() *BlockExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlockExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlockExecution) String() string {
	var builder strings.Builder
	builder.WriteString("BlockExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("block_id=")
	builder.WriteString(_m.BlockID)
	builder.WriteString(", ")
	builder.WriteString("block_name=")
	builder.WriteString(_m.BlockName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", _m.Input))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlockExecutions is a parsable slice of BlockExecution.
type BlockExecutions []*BlockExecution
