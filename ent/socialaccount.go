// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SocialAccount is the model entity for the SocialAccount schema.
type SocialAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider socialaccount.Provider `json:"provider,omitempty"`
	// Screen name on the provider, without the @
	Handle string `json:"handle,omitempty"`
	// Numeric user id on the provider
	ProviderUserID string `json:"provider_user_id,omitempty"`
	// Encrypted OAuth2 access token
	AccessTokenSealed string `json:"-"`
	// Scopes holds the value of the "scopes" field.
	Scopes []string `json:"scopes,omitempty"`
	// Free-form label shown in the UI
	Label string `json:"label,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SocialAccountQuery when eager-loading is set.
	Edges                SocialAccountEdges `json:"edges"`
	user_social_accounts *uuid.UUID
	selectValues         sql.SelectValues
}

// SocialAccountEdges holds the relations/edges for other nodes in the graph.
type SocialAccountEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*BlockExecution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SocialAccountEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e SocialAccountEdges) ExecutionsOrErr() ([]*BlockExecution, error) {
	if e.loadedTypes[1] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SocialAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case socialaccount.FieldScopes:
			values[i] = new([]byte)
		case socialaccount.FieldIsActive:
			values[i] = new(sql.NullBool)
		case socialaccount.FieldProvider, socialaccount.FieldHandle, socialaccount.FieldProviderUserID, socialaccount.FieldAccessTokenSealed, socialaccount.FieldLabel:
			values[i] = new(sql.NullString)
		case socialaccount.FieldLastUsedAt, socialaccount.FieldCreatedAt, socialaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case socialaccount.FieldID:
			values[i] = new(uuid.UUID)
		case socialaccount.ForeignKeys[0]: // user_social_accounts
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SocialAccount fields.
func (_m *SocialAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case socialaccount.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case socialaccount.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = socialaccount.Provider(value.String)
			}
		case socialaccount.FieldHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field handle", values[i])
			} else if value.Valid {
				_m.Handle = value.String
			}
		case socialaccount.FieldProviderUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_user_id", values[i])
			} else if value.Valid {
				_m.ProviderUserID = value.String
			}
		case socialaccount.FieldAccessTokenSealed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token_sealed", values[i])
			} else if value.Valid {
				_m.AccessTokenSealed = value.String
			}
		case socialaccount.FieldScopes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scopes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scopes); err != nil {
					return fmt.Errorf("unmarshal field scopes: %w", err)
				}
			}
		case socialaccount.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case socialaccount.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case socialaccount.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		case socialaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case socialaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case socialaccount.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_social_accounts", values[i])
			} else if value.Valid {
				_m.user_social_accounts = new(uuid.UUID)
				*_m.user_social_accounts = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SocialAccount.
// This includes values selected through modifiers, order, etc.
func (_m *SocialAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the SocialAccount entity.
func (_m *SocialAccount) QueryOwner() *UserQuery {
	return NewSocialAccountClient(_m.config).QueryOwner(_m)
}

// QueryExecutions queries the "executions" edge of the SocialAccount entity.
func (_m *SocialAccount) QueryExecutions() *BlockExecutionQuery {
	return NewSocialAccountClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this SocialAccount.
// Note that you need to call SocialAccount.Unwrap() before calling this method if this SocialAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SocialAccount) Update() *SocialAccountUpdateOne {
	return NewSocialAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SocialAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SocialAccount) Unwrap() *SocialAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SocialAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SocialAccount) String() string {
	var builder strings.Builder
	builder.WriteString("SocialAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("handle=")
	builder.WriteString(_m.Handle)
	builder.WriteString(", ")
	builder.WriteString("provider_user_id=")
	builder.WriteString(_m.ProviderUserID)
	builder.WriteString(", ")
	builder.WriteString("access_token_sealed=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("scopes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scopes))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SocialAccounts is a parsable slice of SocialAccount.
type SocialAccounts []*SocialAccount
