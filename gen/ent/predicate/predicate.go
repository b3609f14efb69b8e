// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CategoryOverride is the predicate function for categoryoverride builders.
type CategoryOverride func(*sql.Selector)

// MerchantMapping is the predicate function for merchantmapping builders.
type MerchantMapping func(*sql.Selector)

// SyncCursor is the predicate function for synccursor builders.
type SyncCursor func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
