// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
	"github.com/shopspring/decimal"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
}

// SetAmount sets the "amount" field.
func (_c *TransactionCreate) SetAmount(v decimal.Decimal) *TransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableAmount(v *decimal.Decimal) *TransactionCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *TransactionCreate) SetDirection(v transaction.Direction) *TransactionCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableDirection(v *transaction.Direction) *TransactionCreate {
	if v != nil {
		_c.SetDirection(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" field.
func (_c *TransactionCreate) SetMerchant(v string) *TransactionCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableMerchant(v *string) *TransactionCreate {
	if v != nil {
		_c.SetMerchant(*v)
	}
	return _c
}

// SetAccountRef sets the "account_ref" field.
func (_c *TransactionCreate) SetAccountRef(v string) *TransactionCreate {
	_c.mutation.SetAccountRef(v)
	return _c
}

// SetNillableAccountRef sets the "account_ref" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableAccountRef(v *string) *TransactionCreate {
	if v != nil {
		_c.SetAccountRef(*v)
	}
	return _c
}

// SetReference sets the "reference" field.
func (_c *TransactionCreate) SetReference(v string) *TransactionCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableReference(v *string) *TransactionCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *TransactionCreate) SetTxDate(v time.Time) *TransactionCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *TransactionCreate) SetReceivedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetRawBody sets the "raw_body" field.
func (_c *TransactionCreate) SetRawBody(v string) *TransactionCreate {
	_c.mutation.SetRawBody(v)
	return _c
}

// SetSender sets the "sender" field.
func (_c *TransactionCreate) SetSender(v string) *TransactionCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *TransactionCreate) SetBalanceAfter(v decimal.Decimal) *TransactionCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableBalanceAfter(v *decimal.Decimal) *TransactionCreate {
	if v != nil {
		_c.SetBalanceAfter(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *TransactionCreate) SetLocation(v string) *TransactionCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableLocation(v *string) *TransactionCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TransactionCreate) SetCategory(v string) *TransactionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCategory(v *string) *TransactionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TransactionCreate) SetUpdatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableUpdatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v int64) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := transaction.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Direction(); !ok {
		v := transaction.DefaultDirection
		_c.mutation.SetDirection(v)
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		v := transaction.DefaultBalanceAfter
		_c.mutation.SetBalanceAfter(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := transaction.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Transaction.amount"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Transaction.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := transaction.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Transaction.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Transaction.tx_date"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "Transaction.received_at"`)}
	}
	if _, ok := _c.mutation.RawBody(); !ok {
		return &ValidationError{Name: "raw_body", err: errors.New(`ent: missing required field "Transaction.raw_body"`)}
	}
	if v, ok := _c.mutation.RawBody(); ok {
		if err := transaction.RawBodyValidator(v); err != nil {
			return &ValidationError{Name: "raw_body", err: fmt.Errorf(`ent: validator failed for field "Transaction.raw_body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required field "Transaction.sender"`)}
	}
	if v, ok := _c.mutation.Sender(); ok {
		if err := transaction.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "Transaction.sender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Transaction.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := transaction.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Transaction.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Transaction.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := transaction.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Transaction.id": %w`, err)}
		}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
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
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(transaction.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
		_node.Merchant = &value
	}
	if value, ok := _c.mutation.AccountRef(); ok {
		_spec.SetField(transaction.FieldAccountRef, field.TypeString, value)
		_node.AccountRef = &value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(transaction.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(transaction.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(transaction.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.RawBody(); ok {
		_spec.SetField(transaction.FieldRawBody, field.TypeString, value)
		_node.RawBody = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(transaction.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(transaction.FieldBalanceAfter, field.TypeOther, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(transaction.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(transaction.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
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
					nodes[i].ID = int64(id)
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
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
