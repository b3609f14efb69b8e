package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/db/ent/schema/utils"
)

var moneyType = map[string]string{
	dialect.Postgres: "numeric(12,2)",
	dialect.SQLite:   "text",
}

// Transaction maps to the transactions table. The row ID is the source
// message ID, which makes saves naturally idempotent.
type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Positive().
			Immutable().
			StorageKey("id"),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(moneyType).
			Default(decimal.Decimal{}),
		field.Enum("direction").
			Values("DEBIT", "CREDIT", "UNKNOWN").
			Default("UNKNOWN"),
		field.String("merchant").Optional().Nillable(),
		field.String("account_ref").Optional().Nillable(),
		field.String("reference").Optional().Nillable(),
		field.Time("tx_date").Immutable(),
		field.Time("received_at").Immutable(),
		field.Text("raw_body").NotEmpty().Immutable(),
		field.String("sender").NotEmpty().Immutable(),
		field.Other("balance_after", decimal.Decimal{}).
			SchemaType(moneyType).
			Default(decimal.Decimal{}).
			Optional(),
		field.String("location").Optional().Nillable(),
		field.String("category").
			Validate(utils.EnumValidator(constants.AsStringSlice()...)).
			Default(string(constants.Uncategorized)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
