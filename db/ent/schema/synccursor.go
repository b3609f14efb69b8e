package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// SyncCursor is the persisted incremental-sync checkpoint. The table holds a
// single row; the repository upserts it under a fixed ID.
type SyncCursor struct{ ent.Schema }

func (SyncCursor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sync_cursors"},
	}
}

func (SyncCursor) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			StorageKey("id"),
		field.Time("last_sync_at").Optional().Nillable(),
		field.Int64("last_message_id").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
