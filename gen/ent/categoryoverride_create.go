// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
)

// CategoryOverrideCreate is the builder for creating a CategoryOverride entity.
type CategoryOverrideCreate struct {
	config
	mutation *CategoryOverrideMutation
	hooks    []Hook
}

// SetTransactionID sets the "transaction_id" field.
func (_c *CategoryOverrideCreate) SetTransactionID(v int64) *CategoryOverrideCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CategoryOverrideCreate) SetCategory(v string) *CategoryOverrideCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CategoryOverrideCreate) SetCreatedAt(v time.Time) *CategoryOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CategoryOverrideCreate) SetNillableCreatedAt(v *time.Time) *CategoryOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CategoryOverrideCreate) SetUpdatedAt(v time.Time) *CategoryOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CategoryOverrideCreate) SetNillableUpdatedAt(v *time.Time) *CategoryOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CategoryOverrideMutation object of the builder.
func (_c *CategoryOverrideCreate) Mutation() *CategoryOverrideMutation {
	return _c.mutation
}

// Save creates the CategoryOverride in the database.
func (_c *CategoryOverrideCreate) Save(ctx context.Context) (*CategoryOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryOverrideCreate) SaveX(ctx context.Context) *CategoryOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryOverrideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := categoryoverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := categoryoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryOverrideCreate) check() error {
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "CategoryOverride.transaction_id"`)}
	}
	if v, ok := _c.mutation.TransactionID(); ok {
		if err := categoryoverride.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.transaction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CategoryOverride.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := categoryoverride.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryOverride.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CategoryOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CategoryOverride.updated_at"`)}
	}
	return nil
}

func (_c *CategoryOverrideCreate) sqlSave(ctx context.Context) (*CategoryOverride, error) {
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

func (_c *CategoryOverrideCreate) createSpec() (*CategoryOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryoverride.Table, sqlgraph.NewFieldSpec(categoryoverride.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(categoryoverride.FieldTransactionID, field.TypeInt64, value)
		_node.TransactionID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(categoryoverride.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(categoryoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(categoryoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CategoryOverrideCreateBulk is the builder for creating many CategoryOverride entities in bulk.
type CategoryOverrideCreateBulk struct {
	config
	err      error
	builders []*CategoryOverrideCreate
}

// Save creates the CategoryOverride entities in the database.
func (_c *CategoryOverrideCreateBulk) Save(ctx context.Context) ([]*CategoryOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryOverrideMutation)
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
func (_c *CategoryOverrideCreateBulk) SaveX(ctx context.Context) []*CategoryOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
