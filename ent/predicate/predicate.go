// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BlockExecution is the predicate function for blockexecution builders.
type BlockExecution func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// SocialAccount is the predicate function for socialaccount builders.
type SocialAccount func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
