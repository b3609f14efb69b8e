// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
	"github.com/joseph-ayodele/spendsync/gen/ent/predicate"
	"github.com/joseph-ayodele/spendsync/gen/ent/synccursor"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategoryOverride = "CategoryOverride"
	TypeMerchantMapping  = "MerchantMapping"
	TypeSyncCursor       = "SyncCursor"
	TypeTransaction      = "Transaction"
)

// CategoryOverrideMutation represents an operation that mutates the CategoryOverride nodes in the graph.
type CategoryOverrideMutation struct {
	config
	op                Op
	typ               string
	id                *int
	transaction_id    *int64
	addtransaction_id *int64
	category          *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CategoryOverride, error)
	predicates        []predicate.CategoryOverride
}

var _ ent.Mutation = (*CategoryOverrideMutation)(nil)

// categoryoverrideOption allows management of the mutation configuration using functional options.
type categoryoverrideOption func(*CategoryOverrideMutation)

// newCategoryOverrideMutation creates new mutation for the CategoryOverride entity.
func newCategoryOverrideMutation(c config, op Op, opts ...categoryoverrideOption) *CategoryOverrideMutation {
	m := &CategoryOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryOverrideID sets the ID field of the mutation.
func withCategoryOverrideID(id int) categoryoverrideOption {
	return func(m *CategoryOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryOverride
		)
		m.oldValue = func(ctx context.Context) (*CategoryOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryOverride sets the old CategoryOverride of the mutation.
func withCategoryOverride(node *CategoryOverride) categoryoverrideOption {
	return func(m *CategoryOverrideMutation) {
		m.oldValue = func(context.Context) (*CategoryOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryOverrideMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryOverrideMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTransactionID sets the "transaction_id" field.
func (m *CategoryOverrideMutation) SetTransactionID(i int64) {
	m.transaction_id = &i
	m.addtransaction_id = nil
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *CategoryOverrideMutation) TransactionID() (r int64, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the CategoryOverride entity.
// If the CategoryOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryOverrideMutation) OldTransactionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// AddTransactionID adds i to the "transaction_id" field.
func (m *CategoryOverrideMutation) AddTransactionID(i int64) {
	if m.addtransaction_id != nil {
		*m.addtransaction_id += i
	} else {
		m.addtransaction_id = &i
	}
}

// AddedTransactionID returns the value that was added to the "transaction_id" field in this mutation.
func (m *CategoryOverrideMutation) AddedTransactionID() (r int64, exists bool) {
	v := m.addtransaction_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *CategoryOverrideMutation) ResetTransactionID() {
	m.transaction_id = nil
	m.addtransaction_id = nil
}

// SetCategory sets the "category" field.
func (m *CategoryOverrideMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CategoryOverrideMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CategoryOverride entity.
// If the CategoryOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryOverrideMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CategoryOverrideMutation) ResetCategory() {
	m.category = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CategoryOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CategoryOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CategoryOverride entity.
// If the CategoryOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CategoryOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CategoryOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CategoryOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CategoryOverride entity.
// If the CategoryOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CategoryOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CategoryOverrideMutation builder.
func (m *CategoryOverrideMutation) Where(ps ...predicate.CategoryOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryOverride).
func (m *CategoryOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryOverrideMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.transaction_id != nil {
		fields = append(fields, categoryoverride.FieldTransactionID)
	}
	if m.category != nil {
		fields = append(fields, categoryoverride.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, categoryoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, categoryoverride.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categoryoverride.FieldTransactionID:
		return m.TransactionID()
	case categoryoverride.FieldCategory:
		return m.Category()
	case categoryoverride.FieldCreatedAt:
		return m.CreatedAt()
	case categoryoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categoryoverride.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case categoryoverride.FieldCategory:
		return m.OldCategory(ctx)
	case categoryoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case categoryoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categoryoverride.FieldTransactionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case categoryoverride.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case categoryoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case categoryoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryOverrideMutation) AddedFields() []string {
	var fields []string
	if m.addtransaction_id != nil {
		fields = append(fields, categoryoverride.FieldTransactionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryOverrideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categoryoverride.FieldTransactionID:
		return m.AddedTransactionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categoryoverride.FieldTransactionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTransactionID(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryOverrideMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryOverrideMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CategoryOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryOverrideMutation) ResetField(name string) error {
	switch name {
	case categoryoverride.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case categoryoverride.FieldCategory:
		m.ResetCategory()
		return nil
	case categoryoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case categoryoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryOverrideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryOverrideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryOverrideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CategoryOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryOverrideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CategoryOverride edge %s", name)
}

// MerchantMappingMutation represents an operation that mutates the MerchantMapping nodes in the graph.
type MerchantMappingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	merchant      *string
	category      *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MerchantMapping, error)
	predicates    []predicate.MerchantMapping
}

var _ ent.Mutation = (*MerchantMappingMutation)(nil)

// merchantmappingOption allows management of the mutation configuration using functional options.
type merchantmappingOption func(*MerchantMappingMutation)

// newMerchantMappingMutation creates new mutation for the MerchantMapping entity.
func newMerchantMappingMutation(c config, op Op, opts ...merchantmappingOption) *MerchantMappingMutation {
	m := &MerchantMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeMerchantMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMerchantMappingID sets the ID field of the mutation.
func withMerchantMappingID(id int) merchantmappingOption {
	return func(m *MerchantMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *MerchantMapping
		)
		m.oldValue = func(ctx context.Context) (*MerchantMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MerchantMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMerchantMapping sets the old MerchantMapping of the mutation.
func withMerchantMapping(node *MerchantMapping) merchantmappingOption {
	return func(m *MerchantMappingMutation) {
		m.oldValue = func(context.Context) (*MerchantMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MerchantMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MerchantMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MerchantMappingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MerchantMappingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MerchantMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchant sets the "merchant" field.
func (m *MerchantMappingMutation) SetMerchant(s string) {
	m.merchant = &s
}

// Merchant returns the value of the "merchant" field in the mutation.
func (m *MerchantMappingMutation) Merchant() (r string, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchant returns the old "merchant" field's value of the MerchantMapping entity.
// If the MerchantMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMappingMutation) OldMerchant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchant: %w", err)
	}
	return oldValue.Merchant, nil
}

// ResetMerchant resets all changes to the "merchant" field.
func (m *MerchantMappingMutation) ResetMerchant() {
	m.merchant = nil
}

// SetCategory sets the "category" field.
func (m *MerchantMappingMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *MerchantMappingMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the MerchantMapping entity.
// If the MerchantMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMappingMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *MerchantMappingMutation) ResetCategory() {
	m.category = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MerchantMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MerchantMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MerchantMapping entity.
// If the MerchantMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MerchantMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MerchantMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MerchantMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MerchantMapping entity.
// If the MerchantMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MerchantMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MerchantMappingMutation builder.
func (m *MerchantMappingMutation) Where(ps ...predicate.MerchantMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MerchantMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MerchantMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MerchantMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MerchantMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MerchantMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MerchantMapping).
func (m *MerchantMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MerchantMappingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.merchant != nil {
		fields = append(fields, merchantmapping.FieldMerchant)
	}
	if m.category != nil {
		fields = append(fields, merchantmapping.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, merchantmapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, merchantmapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MerchantMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case merchantmapping.FieldMerchant:
		return m.Merchant()
	case merchantmapping.FieldCategory:
		return m.Category()
	case merchantmapping.FieldCreatedAt:
		return m.CreatedAt()
	case merchantmapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MerchantMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case merchantmapping.FieldMerchant:
		return m.OldMerchant(ctx)
	case merchantmapping.FieldCategory:
		return m.OldCategory(ctx)
	case merchantmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case merchantmapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MerchantMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case merchantmapping.FieldMerchant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchant(v)
		return nil
	case merchantmapping.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case merchantmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case merchantmapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MerchantMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MerchantMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MerchantMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MerchantMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MerchantMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MerchantMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MerchantMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MerchantMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MerchantMappingMutation) ResetField(name string) error {
	switch name {
	case merchantmapping.FieldMerchant:
		m.ResetMerchant()
		return nil
	case merchantmapping.FieldCategory:
		m.ResetCategory()
		return nil
	case merchantmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case merchantmapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MerchantMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MerchantMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MerchantMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MerchantMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MerchantMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MerchantMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MerchantMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MerchantMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MerchantMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MerchantMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MerchantMapping edge %s", name)
}

// SyncCursorMutation represents an operation that mutates the SyncCursor nodes in the graph.
type SyncCursorMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	last_sync_at       *time.Time
	last_message_id    *int64
	addlast_message_id *int64
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SyncCursor, error)
	predicates         []predicate.SyncCursor
}

var _ ent.Mutation = (*SyncCursorMutation)(nil)

// synccursorOption allows management of the mutation configuration using functional options.
type synccursorOption func(*SyncCursorMutation)

// newSyncCursorMutation creates new mutation for the SyncCursor entity.
func newSyncCursorMutation(c config, op Op, opts ...synccursorOption) *SyncCursorMutation {
	m := &SyncCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncCursorID sets the ID field of the mutation.
func withSyncCursorID(id int) synccursorOption {
	return func(m *SyncCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncCursor
		)
		m.oldValue = func(ctx context.Context) (*SyncCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncCursor sets the old SyncCursor of the mutation.
func withSyncCursor(node *SyncCursor) synccursorOption {
	return func(m *SyncCursorMutation) {
		m.oldValue = func(context.Context) (*SyncCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncCursor entities.
func (m *SyncCursorMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncCursorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncCursorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *SyncCursorMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *SyncCursorMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *SyncCursorMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[synccursor.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *SyncCursorMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[synccursor.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *SyncCursorMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, synccursor.FieldLastSyncAt)
}

// SetLastMessageID sets the "last_message_id" field.
func (m *SyncCursorMutation) SetLastMessageID(i int64) {
	m.last_message_id = &i
	m.addlast_message_id = nil
}

// LastMessageID returns the value of the "last_message_id" field in the mutation.
func (m *SyncCursorMutation) LastMessageID() (r int64, exists bool) {
	v := m.last_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageID returns the old "last_message_id" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldLastMessageID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageID: %w", err)
	}
	return oldValue.LastMessageID, nil
}

// AddLastMessageID adds i to the "last_message_id" field.
func (m *SyncCursorMutation) AddLastMessageID(i int64) {
	if m.addlast_message_id != nil {
		*m.addlast_message_id += i
	} else {
		m.addlast_message_id = &i
	}
}

// AddedLastMessageID returns the value that was added to the "last_message_id" field in this mutation.
func (m *SyncCursorMutation) AddedLastMessageID() (r int64, exists bool) {
	v := m.addlast_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastMessageID clears the value of the "last_message_id" field.
func (m *SyncCursorMutation) ClearLastMessageID() {
	m.last_message_id = nil
	m.addlast_message_id = nil
	m.clearedFields[synccursor.FieldLastMessageID] = struct{}{}
}

// LastMessageIDCleared returns if the "last_message_id" field was cleared in this mutation.
func (m *SyncCursorMutation) LastMessageIDCleared() bool {
	_, ok := m.clearedFields[synccursor.FieldLastMessageID]
	return ok
}

// ResetLastMessageID resets all changes to the "last_message_id" field.
func (m *SyncCursorMutation) ResetLastMessageID() {
	m.last_message_id = nil
	m.addlast_message_id = nil
	delete(m.clearedFields, synccursor.FieldLastMessageID)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncCursor entity.
// If the SyncCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SyncCursorMutation builder.
func (m *SyncCursorMutation) Where(ps ...predicate.SyncCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncCursor).
func (m *SyncCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncCursorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.last_sync_at != nil {
		fields = append(fields, synccursor.FieldLastSyncAt)
	}
	if m.last_message_id != nil {
		fields = append(fields, synccursor.FieldLastMessageID)
	}
	if m.updated_at != nil {
		fields = append(fields, synccursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synccursor.FieldLastSyncAt:
		return m.LastSyncAt()
	case synccursor.FieldLastMessageID:
		return m.LastMessageID()
	case synccursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synccursor.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case synccursor.FieldLastMessageID:
		return m.OldLastMessageID(ctx)
	case synccursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synccursor.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case synccursor.FieldLastMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageID(v)
		return nil
	case synccursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncCursorMutation) AddedFields() []string {
	var fields []string
	if m.addlast_message_id != nil {
		fields = append(fields, synccursor.FieldLastMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case synccursor.FieldLastMessageID:
		return m.AddedLastMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case synccursor.FieldLastMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown SyncCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncCursorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(synccursor.FieldLastSyncAt) {
		fields = append(fields, synccursor.FieldLastSyncAt)
	}
	if m.FieldCleared(synccursor.FieldLastMessageID) {
		fields = append(fields, synccursor.FieldLastMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncCursorMutation) ClearField(name string) error {
	switch name {
	case synccursor.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case synccursor.FieldLastMessageID:
		m.ClearLastMessageID()
		return nil
	}
	return fmt.Errorf("unknown SyncCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncCursorMutation) ResetField(name string) error {
	switch name {
	case synccursor.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case synccursor.FieldLastMessageID:
		m.ResetLastMessageID()
		return nil
	case synccursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncCursor edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	amount        *decimal.Decimal
	direction     *transaction.Direction
	merchant      *string
	account_ref   *string
	reference     *string
	tx_date       *time.Time
	received_at   *time.Time
	raw_body      *string
	sender        *string
	balance_after *decimal.Decimal
	location      *string
	category      *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Transaction, error)
	predicates    []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id int64) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAmount sets the "amount" field.
func (m *TransactionMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionMutation) ResetAmount() {
	m.amount = nil
}

// SetDirection sets the "direction" field.
func (m *TransactionMutation) SetDirection(t transaction.Direction) {
	m.direction = &t
}

// Direction returns the value of the "direction" field in the mutation.
func (m *TransactionMutation) Direction() (r transaction.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDirection(ctx context.Context) (v transaction.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *TransactionMutation) ResetDirection() {
	m.direction = nil
}

// SetMerchant sets the "merchant" field.
func (m *TransactionMutation) SetMerchant(s string) {
	m.merchant = &s
}

// Merchant returns the value of the "merchant" field in the mutation.
func (m *TransactionMutation) Merchant() (r string, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchant returns the old "merchant" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldMerchant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchant: %w", err)
	}
	return oldValue.Merchant, nil
}

// ClearMerchant clears the value of the "merchant" field.
func (m *TransactionMutation) ClearMerchant() {
	m.merchant = nil
	m.clearedFields[transaction.FieldMerchant] = struct{}{}
}

// MerchantCleared returns if the "merchant" field was cleared in this mutation.
func (m *TransactionMutation) MerchantCleared() bool {
	_, ok := m.clearedFields[transaction.FieldMerchant]
	return ok
}

// ResetMerchant resets all changes to the "merchant" field.
func (m *TransactionMutation) ResetMerchant() {
	m.merchant = nil
	delete(m.clearedFields, transaction.FieldMerchant)
}

// SetAccountRef sets the "account_ref" field.
func (m *TransactionMutation) SetAccountRef(s string) {
	m.account_ref = &s
}

// AccountRef returns the value of the "account_ref" field in the mutation.
func (m *TransactionMutation) AccountRef() (r string, exists bool) {
	v := m.account_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountRef returns the old "account_ref" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAccountRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountRef: %w", err)
	}
	return oldValue.AccountRef, nil
}

// ClearAccountRef clears the value of the "account_ref" field.
func (m *TransactionMutation) ClearAccountRef() {
	m.account_ref = nil
	m.clearedFields[transaction.FieldAccountRef] = struct{}{}
}

// AccountRefCleared returns if the "account_ref" field was cleared in this mutation.
func (m *TransactionMutation) AccountRefCleared() bool {
	_, ok := m.clearedFields[transaction.FieldAccountRef]
	return ok
}

// ResetAccountRef resets all changes to the "account_ref" field.
func (m *TransactionMutation) ResetAccountRef() {
	m.account_ref = nil
	delete(m.clearedFields, transaction.FieldAccountRef)
}

// SetReference sets the "reference" field.
func (m *TransactionMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *TransactionMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ClearReference clears the value of the "reference" field.
func (m *TransactionMutation) ClearReference() {
	m.reference = nil
	m.clearedFields[transaction.FieldReference] = struct{}{}
}

// ReferenceCleared returns if the "reference" field was cleared in this mutation.
func (m *TransactionMutation) ReferenceCleared() bool {
	_, ok := m.clearedFields[transaction.FieldReference]
	return ok
}

// ResetReference resets all changes to the "reference" field.
func (m *TransactionMutation) ResetReference() {
	m.reference = nil
	delete(m.clearedFields, transaction.FieldReference)
}

// SetTxDate sets the "tx_date" field.
func (m *TransactionMutation) SetTxDate(t time.Time) {
	m.tx_date = &t
}

// TxDate returns the value of the "tx_date" field in the mutation.
func (m *TransactionMutation) TxDate() (r time.Time, exists bool) {
	v := m.tx_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTxDate returns the old "tx_date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTxDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxDate: %w", err)
	}
	return oldValue.TxDate, nil
}

// ResetTxDate resets all changes to the "tx_date" field.
func (m *TransactionMutation) ResetTxDate() {
	m.tx_date = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *TransactionMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *TransactionMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *TransactionMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetRawBody sets the "raw_body" field.
func (m *TransactionMutation) SetRawBody(s string) {
	m.raw_body = &s
}

// RawBody returns the value of the "raw_body" field in the mutation.
func (m *TransactionMutation) RawBody() (r string, exists bool) {
	v := m.raw_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRawBody returns the old "raw_body" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldRawBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawBody: %w", err)
	}
	return oldValue.RawBody, nil
}

// ResetRawBody resets all changes to the "raw_body" field.
func (m *TransactionMutation) ResetRawBody() {
	m.raw_body = nil
}

// SetSender sets the "sender" field.
func (m *TransactionMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *TransactionMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *TransactionMutation) ResetSender() {
	m.sender = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *TransactionMutation) SetBalanceAfter(d decimal.Decimal) {
	m.balance_after = &d
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *TransactionMutation) BalanceAfter() (r decimal.Decimal, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldBalanceAfter(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// ClearBalanceAfter clears the value of the "balance_after" field.
func (m *TransactionMutation) ClearBalanceAfter() {
	m.balance_after = nil
	m.clearedFields[transaction.FieldBalanceAfter] = struct{}{}
}

// BalanceAfterCleared returns if the "balance_after" field was cleared in this mutation.
func (m *TransactionMutation) BalanceAfterCleared() bool {
	_, ok := m.clearedFields[transaction.FieldBalanceAfter]
	return ok
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *TransactionMutation) ResetBalanceAfter() {
	m.balance_after = nil
	delete(m.clearedFields, transaction.FieldBalanceAfter)
}

// SetLocation sets the "location" field.
func (m *TransactionMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *TransactionMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *TransactionMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[transaction.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *TransactionMutation) LocationCleared() bool {
	_, ok := m.clearedFields[transaction.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *TransactionMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, transaction.FieldLocation)
}

// SetCategory sets the "category" field.
func (m *TransactionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TransactionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TransactionMutation) ResetCategory() {
	m.category = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.amount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.direction != nil {
		fields = append(fields, transaction.FieldDirection)
	}
	if m.merchant != nil {
		fields = append(fields, transaction.FieldMerchant)
	}
	if m.account_ref != nil {
		fields = append(fields, transaction.FieldAccountRef)
	}
	if m.reference != nil {
		fields = append(fields, transaction.FieldReference)
	}
	if m.tx_date != nil {
		fields = append(fields, transaction.FieldTxDate)
	}
	if m.received_at != nil {
		fields = append(fields, transaction.FieldReceivedAt)
	}
	if m.raw_body != nil {
		fields = append(fields, transaction.FieldRawBody)
	}
	if m.sender != nil {
		fields = append(fields, transaction.FieldSender)
	}
	if m.balance_after != nil {
		fields = append(fields, transaction.FieldBalanceAfter)
	}
	if m.location != nil {
		fields = append(fields, transaction.FieldLocation)
	}
	if m.category != nil {
		fields = append(fields, transaction.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.Amount()
	case transaction.FieldDirection:
		return m.Direction()
	case transaction.FieldMerchant:
		return m.Merchant()
	case transaction.FieldAccountRef:
		return m.AccountRef()
	case transaction.FieldReference:
		return m.Reference()
	case transaction.FieldTxDate:
		return m.TxDate()
	case transaction.FieldReceivedAt:
		return m.ReceivedAt()
	case transaction.FieldRawBody:
		return m.RawBody()
	case transaction.FieldSender:
		return m.Sender()
	case transaction.FieldBalanceAfter:
		return m.BalanceAfter()
	case transaction.FieldLocation:
		return m.Location()
	case transaction.FieldCategory:
		return m.Category()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldAmount:
		return m.OldAmount(ctx)
	case transaction.FieldDirection:
		return m.OldDirection(ctx)
	case transaction.FieldMerchant:
		return m.OldMerchant(ctx)
	case transaction.FieldAccountRef:
		return m.OldAccountRef(ctx)
	case transaction.FieldReference:
		return m.OldReference(ctx)
	case transaction.FieldTxDate:
		return m.OldTxDate(ctx)
	case transaction.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case transaction.FieldRawBody:
		return m.OldRawBody(ctx)
	case transaction.FieldSender:
		return m.OldSender(ctx)
	case transaction.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case transaction.FieldLocation:
		return m.OldLocation(ctx)
	case transaction.FieldCategory:
		return m.OldCategory(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transaction.FieldDirection:
		v, ok := value.(transaction.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case transaction.FieldMerchant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchant(v)
		return nil
	case transaction.FieldAccountRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountRef(v)
		return nil
	case transaction.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case transaction.FieldTxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxDate(v)
		return nil
	case transaction.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case transaction.FieldRawBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawBody(v)
		return nil
	case transaction.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case transaction.FieldBalanceAfter:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case transaction.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case transaction.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldMerchant) {
		fields = append(fields, transaction.FieldMerchant)
	}
	if m.FieldCleared(transaction.FieldAccountRef) {
		fields = append(fields, transaction.FieldAccountRef)
	}
	if m.FieldCleared(transaction.FieldReference) {
		fields = append(fields, transaction.FieldReference)
	}
	if m.FieldCleared(transaction.FieldBalanceAfter) {
		fields = append(fields, transaction.FieldBalanceAfter)
	}
	if m.FieldCleared(transaction.FieldLocation) {
		fields = append(fields, transaction.FieldLocation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldMerchant:
		m.ClearMerchant()
		return nil
	case transaction.FieldAccountRef:
		m.ClearAccountRef()
		return nil
	case transaction.FieldReference:
		m.ClearReference()
		return nil
	case transaction.FieldBalanceAfter:
		m.ClearBalanceAfter()
		return nil
	case transaction.FieldLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldAmount:
		m.ResetAmount()
		return nil
	case transaction.FieldDirection:
		m.ResetDirection()
		return nil
	case transaction.FieldMerchant:
		m.ResetMerchant()
		return nil
	case transaction.FieldAccountRef:
		m.ResetAccountRef()
		return nil
	case transaction.FieldReference:
		m.ResetReference()
		return nil
	case transaction.FieldTxDate:
		m.ResetTxDate()
		return nil
	case transaction.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case transaction.FieldRawBody:
		m.ResetRawBody()
		return nil
	case transaction.FieldSender:
		m.ResetSender()
		return nil
	case transaction.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case transaction.FieldLocation:
		m.ResetLocation()
		return nil
	case transaction.FieldCategory:
		m.ResetCategory()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Transaction edge %s", name)
}
