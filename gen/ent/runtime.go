// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/joseph-ayodele/spendsync/db/ent/schema"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
	"github.com/joseph-ayodele/spendsync/gen/ent/synccursor"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryoverrideFields := schema.CategoryOverride{}.Fields()
	_ = categoryoverrideFields
	// categoryoverrideDescTransactionID is the schema descriptor for transaction_id field.
	categoryoverrideDescTransactionID := categoryoverrideFields[0].Descriptor()
	// categoryoverride.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	categoryoverride.TransactionIDValidator = categoryoverrideDescTransactionID.Validators[0].(func(int64) error)
	// categoryoverrideDescCategory is the schema descriptor for category field.
	categoryoverrideDescCategory := categoryoverrideFields[1].Descriptor()
	// categoryoverride.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	categoryoverride.CategoryValidator = categoryoverrideDescCategory.Validators[0].(func(string) error)
	// categoryoverrideDescCreatedAt is the schema descriptor for created_at field.
	categoryoverrideDescCreatedAt := categoryoverrideFields[2].Descriptor()
	// categoryoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	categoryoverride.DefaultCreatedAt = categoryoverrideDescCreatedAt.Default.(func() time.Time)
	// categoryoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	categoryoverrideDescUpdatedAt := categoryoverrideFields[3].Descriptor()
	// categoryoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	categoryoverride.DefaultUpdatedAt = categoryoverrideDescUpdatedAt.Default.(func() time.Time)
	// categoryoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	categoryoverride.UpdateDefaultUpdatedAt = categoryoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	merchantmappingFields := schema.MerchantMapping{}.Fields()
	_ = merchantmappingFields
	// merchantmappingDescMerchant is the schema descriptor for merchant field.
	merchantmappingDescMerchant := merchantmappingFields[0].Descriptor()
	// merchantmapping.MerchantValidator is a validator for the "merchant" field. It is called by the builders before save.
	merchantmapping.MerchantValidator = merchantmappingDescMerchant.Validators[0].(func(string) error)
	// merchantmappingDescCategory is the schema descriptor for category field.
	merchantmappingDescCategory := merchantmappingFields[1].Descriptor()
	// merchantmapping.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	merchantmapping.CategoryValidator = merchantmappingDescCategory.Validators[0].(func(string) error)
	// merchantmappingDescCreatedAt is the schema descriptor for created_at field.
	merchantmappingDescCreatedAt := merchantmappingFields[2].Descriptor()
	// merchantmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	merchantmapping.DefaultCreatedAt = merchantmappingDescCreatedAt.Default.(func() time.Time)
	// merchantmappingDescUpdatedAt is the schema descriptor for updated_at field.
	merchantmappingDescUpdatedAt := merchantmappingFields[3].Descriptor()
	// merchantmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	merchantmapping.DefaultUpdatedAt = merchantmappingDescUpdatedAt.Default.(func() time.Time)
	// merchantmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	merchantmapping.UpdateDefaultUpdatedAt = merchantmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	synccursorFields := schema.SyncCursor{}.Fields()
	_ = synccursorFields
	// synccursorDescUpdatedAt is the schema descriptor for updated_at field.
	synccursorDescUpdatedAt := synccursorFields[3].Descriptor()
	// synccursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	synccursor.DefaultUpdatedAt = synccursorDescUpdatedAt.Default.(func() time.Time)
	// synccursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	synccursor.UpdateDefaultUpdatedAt = synccursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// synccursorDescID is the schema descriptor for id field.
	synccursorDescID := synccursorFields[0].Descriptor()
	// synccursor.IDValidator is a validator for the "id" field. It is called by the builders before save.
	synccursor.IDValidator = synccursorDescID.Validators[0].(func(int) error)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescAmount is the schema descriptor for amount field.
	transactionDescAmount := transactionFields[1].Descriptor()
	// transaction.DefaultAmount holds the default value on creation for the amount field.
	transaction.DefaultAmount = transactionDescAmount.Default.(decimal.Decimal)
	// transactionDescRawBody is the schema descriptor for raw_body field.
	transactionDescRawBody := transactionFields[8].Descriptor()
	// transaction.RawBodyValidator is a validator for the "raw_body" field. It is called by the builders before save.
	transaction.RawBodyValidator = transactionDescRawBody.Validators[0].(func(string) error)
	// transactionDescSender is the schema descriptor for sender field.
	transactionDescSender := transactionFields[9].Descriptor()
	// transaction.SenderValidator is a validator for the "sender" field. It is called by the builders before save.
	transaction.SenderValidator = transactionDescSender.Validators[0].(func(string) error)
	// transactionDescBalanceAfter is the schema descriptor for balance_after field.
	transactionDescBalanceAfter := transactionFields[10].Descriptor()
	// transaction.DefaultBalanceAfter holds the default value on creation for the balance_after field.
	transaction.DefaultBalanceAfter = transactionDescBalanceAfter.Default.(decimal.Decimal)
	// transactionDescCategory is the schema descriptor for category field.
	transactionDescCategory := transactionFields[12].Descriptor()
	// transaction.DefaultCategory holds the default value on creation for the category field.
	transaction.DefaultCategory = transactionDescCategory.Default.(string)
	// transaction.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	transaction.CategoryValidator = transactionDescCategory.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[13].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionFields[14].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.IDValidator is a validator for the "id" field. It is called by the builders before save.
	transaction.IDValidator = transactionDescID.Validators[0].(func(int64) error)
}
