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
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
	"github.com/joseph-ayodele/spendsync/gen/ent/predicate"
)

// MerchantMappingUpdate is the builder for updating MerchantMapping entities.
type MerchantMappingUpdate struct {
	config
	hooks    []Hook
	mutation *MerchantMappingMutation
}

// Where appends a list predicates to the MerchantMappingUpdate builder.
func (_u *MerchantMappingUpdate) Where(ps ...predicate.MerchantMapping) *MerchantMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *MerchantMappingUpdate) SetMerchant(v string) *MerchantMappingUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *MerchantMappingUpdate) SetNillableMerchant(v *string) *MerchantMappingUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MerchantMappingUpdate) SetCategory(v string) *MerchantMappingUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MerchantMappingUpdate) SetNillableCategory(v *string) *MerchantMappingUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MerchantMappingUpdate) SetCreatedAt(v time.Time) *MerchantMappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MerchantMappingUpdate) SetNillableCreatedAt(v *time.Time) *MerchantMappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MerchantMappingUpdate) SetUpdatedAt(v time.Time) *MerchantMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MerchantMappingMutation object of the builder.
func (_u *MerchantMappingUpdate) Mutation() *MerchantMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MerchantMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MerchantMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MerchantMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := merchantmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantMappingUpdate) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := merchantmapping.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := merchantmapping.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.category": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchantmapping.Table, merchantmapping.Columns, sqlgraph.NewFieldSpec(merchantmapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(merchantmapping.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(merchantmapping.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(merchantmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(merchantmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merchantmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MerchantMappingUpdateOne is the builder for updating a single MerchantMapping entity.
type MerchantMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MerchantMappingMutation
}

// SetMerchant sets the "merchant" field.
func (_u *MerchantMappingUpdateOne) SetMerchant(v string) *MerchantMappingUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *MerchantMappingUpdateOne) SetNillableMerchant(v *string) *MerchantMappingUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MerchantMappingUpdateOne) SetCategory(v string) *MerchantMappingUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MerchantMappingUpdateOne) SetNillableCategory(v *string) *MerchantMappingUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MerchantMappingUpdateOne) SetCreatedAt(v time.Time) *MerchantMappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MerchantMappingUpdateOne) SetNillableCreatedAt(v *time.Time) *MerchantMappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MerchantMappingUpdateOne) SetUpdatedAt(v time.Time) *MerchantMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MerchantMappingMutation object of the builder.
func (_u *MerchantMappingUpdateOne) Mutation() *MerchantMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the MerchantMappingUpdate builder.
func (_u *MerchantMappingUpdateOne) Where(ps ...predicate.MerchantMapping) *MerchantMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MerchantMappingUpdateOne) Select(field string, fields ...string) *MerchantMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MerchantMapping entity.
func (_u *MerchantMappingUpdateOne) Save(ctx context.Context) (*MerchantMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantMappingUpdateOne) SaveX(ctx context.Context) *MerchantMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MerchantMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MerchantMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := merchantmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantMappingUpdateOne) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := merchantmapping.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := merchantmapping.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.category": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantMappingUpdateOne) sqlSave(ctx context.Context) (_node *MerchantMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchantmapping.Table, merchantmapping.Columns, sqlgraph.NewFieldSpec(merchantmapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MerchantMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, merchantmapping.FieldID)
		for _, f := range fields {
			if !merchantmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != merchantmapping.FieldID {
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
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(merchantmapping.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(merchantmapping.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(merchantmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(merchantmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MerchantMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merchantmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
