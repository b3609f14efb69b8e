// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/spendsync/gen/ent/synccursor"
)

// SyncCursorCreate is the builder for creating a SyncCursor entity.
type SyncCursorCreate struct {
	config
	mutation *SyncCursorMutation
	hooks    []Hook
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *SyncCursorCreate) SetLastSyncAt(v time.Time) *SyncCursorCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *SyncCursorCreate) SetNillableLastSyncAt(v *time.Time) *SyncCursorCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetLastMessageID sets the "last_message_id" field.
func (_c *SyncCursorCreate) SetLastMessageID(v int64) *SyncCursorCreate {
	_c.mutation.SetLastMessageID(v)
	return _c
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_c *SyncCursorCreate) SetNillableLastMessageID(v *int64) *SyncCursorCreate {
	if v != nil {
		_c.SetLastMessageID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncCursorCreate) SetUpdatedAt(v time.Time) *SyncCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncCursorCreate) SetNillableUpdatedAt(v *time.Time) *SyncCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncCursorCreate) SetID(v int) *SyncCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SyncCursorMutation object of the builder.
func (_c *SyncCursorCreate) Mutation() *SyncCursorMutation {
	return _c.mutation
}

// Save creates the SyncCursor in the database.
func (_c *SyncCursorCreate) Save(ctx context.Context) (*SyncCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncCursorCreate) SaveX(ctx context.Context) *SyncCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncCursorCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := synccursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncCursorCreate) check() error {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncCursor.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := synccursor.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "SyncCursor.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SyncCursorCreate) sqlSave(ctx context.Context) (*SyncCursor, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncCursorCreate) createSpec() (*SyncCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(synccursor.Table, sqlgraph.NewFieldSpec(synccursor.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(synccursor.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.LastMessageID(); ok {
		_spec.SetField(synccursor.FieldLastMessageID, field.TypeInt64, value)
		_node.LastMessageID = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(synccursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SyncCursorCreateBulk is the builder for creating many SyncCursor entities in bulk.
type SyncCursorCreateBulk struct {
	config
	err      error
	builders []*SyncCursorCreate
}

// Save creates the SyncCursor entities in the database.
func (_c *SyncCursorCreateBulk) Save(ctx context.Context) ([]*SyncCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncCursorMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *SyncCursorCreateBulk) SaveX(ctx context.Context) []*SyncCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
