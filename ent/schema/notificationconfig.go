package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationConfig holds the schema definition for per-tenant alert delivery.
// One row per channel per tenant.
type NotificationConfig struct {
	ent.Schema
}

// Fields of the NotificationConfig.
func (NotificationConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.Enum("channel").
			Values("slack", "email"),
		field.Bool("enabled").
			Default(false),
		field.String("webhook_url").
			Optional().
			Comment("Slack incoming webhook destination"),
		field.JSON("recipients", []string{}).
			Optional().
			Comment("Email recipient list"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the NotificationConfig.
func (NotificationConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "channel").Unique(),
	}
}
