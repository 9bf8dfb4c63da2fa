package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MetricsBatch holds the schema definition for one fetched metrics snapshot.
// One row per tenant per processed window.
type MetricsBatch struct {
	ent.Schema
}

// Fields of the MetricsBatch.
func (MetricsBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.Time("window_start"),
		field.Time("window_end"),
		field.Time("collected_at"),
		field.String("window_start_str").
			Comment("Civil-time string, zone-suffixed; guard key format"),
		field.String("window_end_str"),
		field.String("collected_at_str"),
		field.String("timezone"),
		field.JSON("metrics", []map[string]interface{}{}).
			Comment("Raw samples included in this batch"),
		field.Int("metrics_count"),
		field.String("primary_instance").
			Default("unknown"),
		field.String("ip").
			Optional(),
		field.Int("port").
			Optional(),
		field.String("session_id"),
	}
}

// Indexes of the MetricsBatch.
func (MetricsBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "window_start_str").
			Annotations(entsql.DescColumns("window_start_str")),
		index.Fields("collected_at"),
	}
}
