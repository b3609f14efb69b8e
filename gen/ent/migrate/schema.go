// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoryOverridesColumns holds the columns for the "category_overrides" table.
	CategoryOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "transaction_id", Type: field.TypeInt64, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CategoryOverridesTable holds the schema information for the "category_overrides" table.
	CategoryOverridesTable = &schema.Table{
		Name:       "category_overrides",
		Columns:    CategoryOverridesColumns,
		PrimaryKey: []*schema.Column{CategoryOverridesColumns[0]},
	}
	// MerchantMappingsColumns holds the columns for the "merchant_mappings" table.
	MerchantMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "merchant", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MerchantMappingsTable holds the schema information for the "merchant_mappings" table.
	MerchantMappingsTable = &schema.Table{
		Name:       "merchant_mappings",
		Columns:    MerchantMappingsColumns,
		PrimaryKey: []*schema.Column{MerchantMappingsColumns[0]},
	}
	// SyncCursorsColumns holds the columns for the "sync_cursors" table.
	SyncCursorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_message_id", Type: field.TypeInt64, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SyncCursorsTable holds the schema information for the "sync_cursors" table.
	SyncCursorsTable = &schema.Table{
		Name:       "sync_cursors",
		Columns:    SyncCursorsColumns,
		PrimaryKey: []*schema.Column{SyncCursorsColumns[0]},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "text"}},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"DEBIT", "CREDIT", "UNKNOWN"}, Default: "UNKNOWN"},
		{Name: "merchant", Type: field.TypeString, Nullable: true},
		{Name: "account_ref", Type: field.TypeString, Nullable: true},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "tx_date", Type: field.TypeTime},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "raw_body", Type: field.TypeString, Size: 2147483647},
		{Name: "sender", Type: field.TypeString},
		{Name: "balance_after", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "text"}},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Default: "Uncategorized"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoryOverridesTable,
		MerchantMappingsTable,
		SyncCursorsTable,
		TransactionsTable,
	}
)

func init() {
	CategoryOverridesTable.Annotation = &entsql.Annotation{
		Table: "category_overrides",
	}
	MerchantMappingsTable.Annotation = &entsql.Annotation{
		Table: "merchant_mappings",
	}
	SyncCursorsTable.Annotation = &entsql.Annotation{
		Table: "sync_cursors",
	}
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
