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
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/predicate"
)

// CategoryOverrideUpdate is the builder for updating CategoryOverride entities.
type CategoryOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryOverrideMutation
}

// Where appends a list predicates to the CategoryOverrideUpdate builder.
func (_u *CategoryOverrideUpdate) Where(ps ...predicate.CategoryOverride) *CategoryOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *CategoryOverrideUpdate) SetTransactionID(v int64) *CategoryOverrideUpdate {
	_u.mutation.ResetTransactionID()
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *CategoryOverrideUpdate) SetNillableTransactionID(v *int64) *CategoryOverrideUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// AddTransactionID adds value to the "transaction_id" field.
func (_u *CategoryOverrideUpdate) AddTransactionID(v int64) *CategoryOverrideUpdate {
	_u.mutation.AddTransactionID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryOverrideUpdate) SetCategory(v string) *CategoryOverrideUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryOverrideUpdate) SetNillableCategory(v *string) *CategoryOverrideUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CategoryOverrideUpdate) SetCreatedAt(v time.Time) *CategoryOverrideUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CategoryOverrideUpdate) SetNillableCreatedAt(v *time.Time) *CategoryOverrideUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CategoryOverrideUpdate) SetUpdatedAt(v time.Time) *CategoryOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CategoryOverrideMutation object of the builder.
func (_u *CategoryOverrideUpdate) Mutation() *CategoryOverrideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CategoryOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := categoryoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryOverrideUpdate) check() error {
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := categoryoverride.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryoverride.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryoverride.Table, categoryoverride.Columns, sqlgraph.NewFieldSpec(categoryoverride.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(categoryoverride.FieldTransactionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTransactionID(); ok {
		_spec.AddField(categoryoverride.FieldTransactionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryoverride.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(categoryoverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(categoryoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryOverrideUpdateOne is the builder for updating a single CategoryOverride entity.
type CategoryOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryOverrideMutation
}

// SetTransactionID sets the "transaction_id" field.
func (_u *CategoryOverrideUpdateOne) SetTransactionID(v int64) *CategoryOverrideUpdateOne {
	_u.mutation.ResetTransactionID()
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *CategoryOverrideUpdateOne) SetNillableTransactionID(v *int64) *CategoryOverrideUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// AddTransactionID adds value to the "transaction_id" field.
func (_u *CategoryOverrideUpdateOne) AddTransactionID(v int64) *CategoryOverrideUpdateOne {
	_u.mutation.AddTransactionID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryOverrideUpdateOne) SetCategory(v string) *CategoryOverrideUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryOverrideUpdateOne) SetNillableCategory(v *string) *CategoryOverrideUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CategoryOverrideUpdateOne) SetCreatedAt(v time.Time) *CategoryOverrideUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CategoryOverrideUpdateOne) SetNillableCreatedAt(v *time.Time) *CategoryOverrideUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CategoryOverrideUpdateOne) SetUpdatedAt(v time.Time) *CategoryOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CategoryOverrideMutation object of the builder.
func (_u *CategoryOverrideUpdateOne) Mutation() *CategoryOverrideMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryOverrideUpdate builder.
func (_u *CategoryOverrideUpdateOne) Where(ps ...predicate.CategoryOverride) *CategoryOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryOverrideUpdateOne) Select(field string, fields ...string) *CategoryOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryOverride entity.
func (_u *CategoryOverrideUpdateOne) Save(ctx context.Context) (*CategoryOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryOverrideUpdateOne) SaveX(ctx context.Context) *CategoryOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CategoryOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := categoryoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryOverrideUpdateOne) check() error {
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := categoryoverride.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryoverride.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryOverrideUpdateOne) sqlSave(ctx context.Context) (_node *CategoryOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryoverride.Table, categoryoverride.Columns, sqlgraph.NewFieldSpec(categoryoverride.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryoverride.FieldID)
		for _, f := range fields {
			if !categoryoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryoverride.FieldID {
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
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(categoryoverride.FieldTransactionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTransactionID(); ok {
		_spec.AddField(categoryoverride.FieldTransactionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryoverride.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(categoryoverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(categoryoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CategoryOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
