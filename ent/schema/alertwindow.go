package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertWindow holds the schema definition for the processed-window ledger.
// Existence of a row means the window has been analysed for that tenant and
// must not be processed again. The unique index is the authoritative guard
// against concurrent duplicates.
type AlertWindow struct {
	ent.Schema
}

// Fields of the AlertWindow.
func (AlertWindow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("window_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("window_start_str").
			Comment("Formatted civil-time string; guard semantics are stable across clock skew"),
		field.String("window_end_str"),
		field.Time("window_start"),
		field.Time("window_end"),
		field.Time("processed_at"),
		field.String("processed_at_str"),
		field.String("timezone"),
		field.String("session_id"),
		field.String("incident_id").
			Optional(),
	}
}

// Indexes of the AlertWindow.
func (AlertWindow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "window_start_str", "window_end_str").Unique(),
		index.Fields("user_id", "window_start_str"),
	}
}
