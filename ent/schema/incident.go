package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for one LLM-authored collective analysis.
// Exactly one per successfully analysed batch; references the batch by value copy
// of its id (no edges, lookups are joins at read time).
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("batch_id"),
		field.Time("window_start"),
		field.Time("window_end"),
		field.Time("created_at"),
		field.String("window_start_str"),
		field.String("window_end_str"),
		field.String("created_at_str"),
		field.String("timezone"),
		field.String("title").
			Default("Batch Analysis"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.Float("confidence").
			Default(0),
		field.Text("summary").
			Optional(),
		field.Text("root_cause").
			Optional(),
		field.JSON("contributing_factors", []string{}).
			Optional(),
		field.Text("blast_radius").
			Optional(),
		field.JSON("evidence", []map[string]interface{}{}).
			Optional(),
		field.JSON("fix_plan", map[string]interface{}{}).
			Optional(),
		field.JSON("clusters", []map[string]interface{}{}).
			Optional(),
		field.JSON("raw_analysis", map[string]interface{}{}).
			Optional().
			Comment("Full parsed LLM response, kept for audit"),
		field.String("primary_instance").
			Default("unknown"),
		field.String("ip").
			Optional(),
		field.Int("port").
			Optional(),
		field.String("session_id"),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "severity"),
		index.Fields("user_id", "window_start_str").
			Annotations(entsql.DescColumns("window_start_str")),
		index.Fields("created_at"),
	}
}
