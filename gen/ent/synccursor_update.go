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
	"github.com/joseph-ayodele/spendsync/gen/ent/synccursor"
)

// SyncCursorUpdate is the builder for updating SyncCursor entities.
type SyncCursorUpdate struct {
	config
	hooks    []Hook
	mutation *SyncCursorMutation
}

// Where appends a list predicates to the SyncCursorUpdate builder.
func (_u *SyncCursorUpdate) Where(ps ...predicate.SyncCursor) *SyncCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *SyncCursorUpdate) SetLastSyncAt(v time.Time) *SyncCursorUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *SyncCursorUpdate) SetNillableLastSyncAt(v *time.Time) *SyncCursorUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *SyncCursorUpdate) ClearLastSyncAt() *SyncCursorUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastMessageID sets the "last_message_id" field.
func (_u *SyncCursorUpdate) SetLastMessageID(v int64) *SyncCursorUpdate {
	_u.mutation.ResetLastMessageID()
	_u.mutation.SetLastMessageID(v)
	return _u
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_u *SyncCursorUpdate) SetNillableLastMessageID(v *int64) *SyncCursorUpdate {
	if v != nil {
		_u.SetLastMessageID(*v)
	}
	return _u
}

// AddLastMessageID adds value to the "last_message_id" field.
func (_u *SyncCursorUpdate) AddLastMessageID(v int64) *SyncCursorUpdate {
	_u.mutation.AddLastMessageID(v)
	return _u
}

// ClearLastMessageID clears the value of the "last_message_id" field.
func (_u *SyncCursorUpdate) ClearLastMessageID() *SyncCursorUpdate {
	_u.mutation.ClearLastMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncCursorUpdate) SetUpdatedAt(v time.Time) *SyncCursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncCursorMutation object of the builder.
func (_u *SyncCursorUpdate) Mutation() *SyncCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncCursorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncCursorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := synccursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SyncCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(synccursor.Table, synccursor.Columns, sqlgraph.NewFieldSpec(synccursor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(synccursor.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(synccursor.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageID(); ok {
		_spec.SetField(synccursor.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastMessageID(); ok {
		_spec.AddField(synccursor.FieldLastMessageID, field.TypeInt64, value)
	}
	if _u.mutation.LastMessageIDCleared() {
		_spec.ClearField(synccursor.FieldLastMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(synccursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synccursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncCursorUpdateOne is the builder for updating a single SyncCursor entity.
type SyncCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncCursorMutation
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *SyncCursorUpdateOne) SetLastSyncAt(v time.Time) *SyncCursorUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *SyncCursorUpdateOne) SetNillableLastSyncAt(v *time.Time) *SyncCursorUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *SyncCursorUpdateOne) ClearLastSyncAt() *SyncCursorUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastMessageID sets the "last_message_id" field.
func (_u *SyncCursorUpdateOne) SetLastMessageID(v int64) *SyncCursorUpdateOne {
	_u.mutation.ResetLastMessageID()
	_u.mutation.SetLastMessageID(v)
	return _u
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_u *SyncCursorUpdateOne) SetNillableLastMessageID(v *int64) *SyncCursorUpdateOne {
	if v != nil {
		_u.SetLastMessageID(*v)
	}
	return _u
}

// AddLastMessageID adds value to the "last_message_id" field.
func (_u *SyncCursorUpdateOne) AddLastMessageID(v int64) *SyncCursorUpdateOne {
	_u.mutation.AddLastMessageID(v)
	return _u
}

// ClearLastMessageID clears the value of the "last_message_id" field.
func (_u *SyncCursorUpdateOne) ClearLastMessageID() *SyncCursorUpdateOne {
	_u.mutation.ClearLastMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncCursorUpdateOne) SetUpdatedAt(v time.Time) *SyncCursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncCursorMutation object of the builder.
func (_u *SyncCursorUpdateOne) Mutation() *SyncCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncCursorUpdate builder.
func (_u *SyncCursorUpdateOne) Where(ps ...predicate.SyncCursor) *SyncCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncCursorUpdateOne) Select(field string, fields ...string) *SyncCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncCursor entity.
func (_u *SyncCursorUpdateOne) Save(ctx context.Context) (*SyncCursor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncCursorUpdateOne) SaveX(ctx context.Context) *SyncCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncCursorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := synccursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SyncCursorUpdateOne) sqlSave(ctx context.Context) (_node *SyncCursor, err error) {
	_spec := sqlgraph.NewUpdateSpec(synccursor.Table, synccursor.Columns, sqlgraph.NewFieldSpec(synccursor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, synccursor.FieldID)
		for _, f := range fields {
			if !synccursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != synccursor.FieldID {
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
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(synccursor.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(synccursor.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageID(); ok {
		_spec.SetField(synccursor.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastMessageID(); ok {
		_spec.AddField(synccursor.FieldLastMessageID, field.TypeInt64, value)
	}
	if _u.mutation.LastMessageIDCleared() {
		_spec.ClearField(synccursor.FieldLastMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(synccursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SyncCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synccursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
