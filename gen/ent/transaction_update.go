// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/spendsync/gen/ent/predicate"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
	"github.com/shopspring/decimal"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v decimal.Decimal) *TransactionUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *decimal.Decimal) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *TransactionUpdate) SetDirection(v transaction.Direction) *TransactionUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDirection(v *transaction.Direction) *TransactionUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *TransactionUpdate) SetMerchant(v string) *TransactionUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableMerchant(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *TransactionUpdate) ClearMerchant() *TransactionUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// SetAccountRef sets the "account_ref" field.
func (_u *TransactionUpdate) SetAccountRef(v string) *TransactionUpdate {
	_u.mutation.SetAccountRef(v)
	return _u
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAccountRef(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetAccountRef(*v)
	}
	return _u
}

// ClearAccountRef clears the value of the "account_ref" field.
func (_u *TransactionUpdate) ClearAccountRef() *TransactionUpdate {
	_u.mutation.ClearAccountRef()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransactionUpdate) SetReference(v string) *TransactionUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableReference(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransactionUpdate) ClearReference() *TransactionUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *TransactionUpdate) SetBalanceAfter(v decimal.Decimal) *TransactionUpdate {
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableBalanceAfter(v *decimal.Decimal) *TransactionUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// ClearBalanceAfter clears the value of the "balance_after" field.
func (_u *TransactionUpdate) ClearBalanceAfter() *TransactionUpdate {
	_u.mutation.ClearBalanceAfter()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TransactionUpdate) SetLocation(v string) *TransactionUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableLocation(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TransactionUpdate) ClearLocation() *TransactionUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TransactionUpdate) SetCategory(v string) *TransactionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCategory(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdate) SetUpdatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := transaction.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Transaction.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := transaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Transaction.category": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(transaction.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(transaction.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.AccountRef(); ok {
		_spec.SetField(transaction.FieldAccountRef, field.TypeString, value)
	}
	if _u.mutation.AccountRefCleared() {
		_spec.ClearField(transaction.FieldAccountRef, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transaction.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transaction.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(transaction.FieldBalanceAfter, field.TypeOther, value)
	}
	if _u.mutation.BalanceAfterCleared() {
		_spec.ClearField(transaction.FieldBalanceAfter, field.TypeOther)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(transaction.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(transaction.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(transaction.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v decimal.Decimal) *TransactionUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *decimal.Decimal) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *TransactionUpdateOne) SetDirection(v transaction.Direction) *TransactionUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDirection(v *transaction.Direction) *TransactionUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *TransactionUpdateOne) SetMerchant(v string) *TransactionUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableMerchant(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *TransactionUpdateOne) ClearMerchant() *TransactionUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// SetAccountRef sets the "account_ref" field.
func (_u *TransactionUpdateOne) SetAccountRef(v string) *TransactionUpdateOne {
	_u.mutation.SetAccountRef(v)
	return _u
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAccountRef(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetAccountRef(*v)
	}
	return _u
}

// ClearAccountRef clears the value of the "account_ref" field.
func (_u *TransactionUpdateOne) ClearAccountRef() *TransactionUpdateOne {
	_u.mutation.ClearAccountRef()
	return _u
}

// SetReference sets the "reference" field.
func (_u *TransactionUpdateOne) SetReference(v string) *TransactionUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableReference(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *TransactionUpdateOne) ClearReference() *TransactionUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *TransactionUpdateOne) SetBalanceAfter(v decimal.Decimal) *TransactionUpdateOne {
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableBalanceAfter(v *decimal.Decimal) *TransactionUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// ClearBalanceAfter clears the value of the "balance_after" field.
func (_u *TransactionUpdateOne) ClearBalanceAfter() *TransactionUpdateOne {
	_u.mutation.ClearBalanceAfter()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TransactionUpdateOne) SetLocation(v string) *TransactionUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableLocation(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TransactionUpdateOne) ClearLocation() *TransactionUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TransactionUpdateOne) SetCategory(v string) *TransactionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCategory(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdateOne) SetUpdatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := transaction.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Transaction.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := transaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Transaction.category": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(transaction.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(transaction.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.AccountRef(); ok {
		_spec.SetField(transaction.FieldAccountRef, field.TypeString, value)
	}
	if _u.mutation.AccountRefCleared() {
		_spec.ClearField(transaction.FieldAccountRef, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(transaction.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(transaction.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(transaction.FieldBalanceAfter, field.TypeOther, value)
	}
	if _u.mutation.BalanceAfterCleared() {
		_spec.ClearField(transaction.FieldBalanceAfter, field.TypeOther)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(transaction.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(transaction.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(transaction.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
