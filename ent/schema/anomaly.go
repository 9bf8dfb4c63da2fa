package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Anomaly holds the schema definition for a single anomaly finding.
// Many per batch; references incident and batch by value-copied ids.
type Anomaly struct {
	ent.Schema
}

// Fields of the Anomaly.
func (Anomaly) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("anomaly_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("batch_id"),
		field.String("incident_id"),
		field.String("metric"),
		field.String("instance").
			Comment("Always a validated host:port or the incident's primary instance"),
		field.String("ip").
			Optional(),
		field.Int("port").
			Optional(),
		field.Float("observed").
			Optional(),
		field.String("expected").
			Optional(),
		field.Text("symptom").
			Optional(),
		field.String("cluster").
			Optional(),
		field.String("severity").
			Default("medium"),
		field.Time("created_at"),
		field.String("created_at_str"),
		field.String("window_start_str"),
		field.String("window_end_str"),
		field.String("timezone"),
		field.String("session_id"),
	}
}

// Indexes of the Anomaly.
func (Anomaly) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at").
			Annotations(entsql.DescColumns("created_at")),
		index.Fields("ip", "window_start_str").
			Annotations(entsql.DescColumns("window_start_str")),
	}
}
