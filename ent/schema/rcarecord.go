package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RCARecord holds the schema definition for the denormalised RCA convenience copy.
// Read paths query this instead of joining incidents.
type RCARecord struct {
	ent.Schema
}

// Fields of the RCARecord.
func (RCARecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rca_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("batch_id"),
		field.String("incident_id"),
		field.Time("timestamp"),
		field.String("timestamp_str"),
		field.String("window_start_str"),
		field.String("window_end_str"),
		field.String("timezone"),
		field.Text("summary").
			Optional(),
		field.Text("cause").
			Optional(),
		field.JSON("fix", []string{}).
			Optional(),
		field.JSON("raw", map[string]interface{}{}).
			Optional(),
		field.String("instance").
			Default("unknown"),
		field.String("ip").
			Optional(),
		field.Int("port").
			Optional(),
		field.String("session_id"),
	}
}

// Indexes of the RCARecord.
func (RCARecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp").
			Annotations(entsql.DescColumns("timestamp")),
	}
}
