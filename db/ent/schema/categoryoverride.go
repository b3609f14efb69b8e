package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/db/ent/schema/utils"
)

// CategoryOverride pins a category to one transaction. Keyed by the
// transaction's source message ID rather than an edge, so overrides survive
// a transaction being deleted and re-synced.
type CategoryOverride struct{ ent.Schema }

func (CategoryOverride) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "category_overrides"},
	}
}

func (CategoryOverride) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("transaction_id").
			Positive().
			Unique(),
		field.String("category").
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
