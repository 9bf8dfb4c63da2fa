package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Target holds the schema definition for a tenant scrape target.
type Target struct {
	ent.Schema
}

// Fields of the Target.
func (Target) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("target_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning tenant"),
		field.String("name"),
		field.String("endpoint").
			Comment("host:port of the scrape target"),
		field.JSON("labels", map[string]string{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Target.
func (Target) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "endpoint").Unique(),
		index.Fields("user_id", "enabled"),
	}
}
