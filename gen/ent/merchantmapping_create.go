// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
)

// MerchantMappingCreate is the builder for creating a MerchantMapping entity.
type MerchantMappingCreate struct {
	config
	mutation *MerchantMappingMutation
	hooks    []Hook
}

// SetMerchant sets the "merchant" field.
func (_c *MerchantMappingCreate) SetMerchant(v string) *MerchantMappingCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MerchantMappingCreate) SetCategory(v string) *MerchantMappingCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MerchantMappingCreate) SetCreatedAt(v time.Time) *MerchantMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MerchantMappingCreate) SetNillableCreatedAt(v *time.Time) *MerchantMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MerchantMappingCreate) SetUpdatedAt(v time.Time) *MerchantMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MerchantMappingCreate) SetNillableUpdatedAt(v *time.Time) *MerchantMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MerchantMappingMutation object of the builder.
func (_c *MerchantMappingCreate) Mutation() *MerchantMappingMutation {
	return _c.mutation
}

// Save creates the MerchantMapping in the database.
func (_c *MerchantMappingCreate) Save(ctx context.Context) (*MerchantMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MerchantMappingCreate) SaveX(ctx context.Context) *MerchantMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerchantMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerchantMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MerchantMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := merchantmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := merchantmapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MerchantMappingCreate) check() error {
	if _, ok := _c.mutation.Merchant(); !ok {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required field "MerchantMapping.merchant"`)}
	}
	if v, ok := _c.mutation.Merchant(); ok {
		if err := merchantmapping.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.merchant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "MerchantMapping.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := merchantmapping.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "MerchantMapping.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MerchantMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MerchantMapping.updated_at"`)}
	}
	return nil
}

func (_c *MerchantMappingCreate) sqlSave(ctx context.Context) (*MerchantMapping, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MerchantMappingCreate) createSpec() (*MerchantMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &MerchantMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(merchantmapping.Table, sqlgraph.NewFieldSpec(merchantmapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(merchantmapping.FieldMerchant, field.TypeString, value)
		_node.Merchant = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(merchantmapping.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(merchantmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(merchantmapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MerchantMappingCreateBulk is the builder for creating many MerchantMapping entities in bulk.
type MerchantMappingCreateBulk struct {
	config
	err      error
	builders []*MerchantMappingCreate
}

// Save creates the MerchantMapping entities in the database.
func (_c *MerchantMappingCreateBulk) Save(ctx context.Context) ([]*MerchantMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MerchantMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MerchantMappingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MerchantMappingCreateBulk) SaveX(ctx context.Context) []*MerchantMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerchantMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerchantMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
