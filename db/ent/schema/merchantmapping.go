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

// MerchantMapping is a learned merchant-to-category rule, keyed by the
// normalized merchant name.
type MerchantMapping struct{ ent.Schema }

func (MerchantMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "merchant_mappings"},
	}
}

func (MerchantMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("merchant").
			NotEmpty().
			Unique(),
		field.String("category").
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
