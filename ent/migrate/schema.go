// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertWindowsColumns holds the columns for the "alert_windows" table.
	AlertWindowsColumns = []*schema.Column{
		{Name: "window_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "window_start_str", Type: field.TypeString},
		{Name: "window_end_str", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "processed_at_str", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
	}
	// AlertWindowsTable holds the schema information for the "alert_windows" table.
	AlertWindowsTable = &schema.Table{
		Name:       "alert_windows",
		Columns:    AlertWindowsColumns,
		PrimaryKey: []*schema.Column{AlertWindowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertwindow_user_id_window_start_str_window_end_str",
				Unique:  true,
				Columns: []*schema.Column{AlertWindowsColumns[1], AlertWindowsColumns[2], AlertWindowsColumns[3]},
			},
			{
				Name:    "alertwindow_user_id_window_start_str",
				Unique:  false,
				Columns: []*schema.Column{AlertWindowsColumns[1], AlertWindowsColumns[2]},
			},
		},
	}
	// AnomaliesColumns holds the columns for the "anomalies" table.
	AnomaliesColumns = []*schema.Column{
		{Name: "anomaly_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "metric", Type: field.TypeString},
		{Name: "instance", Type: field.TypeString},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "observed", Type: field.TypeFloat64, Nullable: true},
		{Name: "expected", Type: field.TypeString, Nullable: true},
		{Name: "symptom", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cluster", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeString, Default: "medium"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_at_str", Type: field.TypeString},
		{Name: "window_start_str", Type: field.TypeString},
		{Name: "window_end_str", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// AnomaliesTable holds the schema information for the "anomalies" table.
	AnomaliesTable = &schema.Table{
		Name:       "anomalies",
		Columns:    AnomaliesColumns,
		PrimaryKey: []*schema.Column{AnomaliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "anomaly_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnomaliesColumns[1], AnomaliesColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						AnomaliesColumns[13].Name: true,
					},
				},
			},
			{
				Name:    "anomaly_ip_window_start_str",
				Unique:  false,
				Columns: []*schema.Column{AnomaliesColumns[6], AnomaliesColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						AnomaliesColumns[15].Name: true,
					},
				},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "window_start_str", Type: field.TypeString},
		{Name: "window_end_str", Type: field.TypeString},
		{Name: "created_at_str", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: "Batch Analysis"},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "root_cause", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "contributing_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "blast_radius", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "fix_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "clusters", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "primary_instance", Type: field.TypeString, Default: "unknown"},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_user_id_severity",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[11]},
			},
			{
				Name:    "incident_user_id_window_start_str",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						IncidentsColumns[6].Name: true,
					},
				},
			},
			{
				Name:    "incident_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5]},
			},
		},
	}
	// MetricsBatchesColumns holds the columns for the "metrics_batches" table.
	MetricsBatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "collected_at", Type: field.TypeTime},
		{Name: "window_start_str", Type: field.TypeString},
		{Name: "window_end_str", Type: field.TypeString},
		{Name: "collected_at_str", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString},
		{Name: "metrics", Type: field.TypeJSON},
		{Name: "metrics_count", Type: field.TypeInt},
		{Name: "primary_instance", Type: field.TypeString, Default: "unknown"},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// MetricsBatchesTable holds the schema information for the "metrics_batches" table.
	MetricsBatchesTable = &schema.Table{
		Name:       "metrics_batches",
		Columns:    MetricsBatchesColumns,
		PrimaryKey: []*schema.Column{MetricsBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "metricsbatch_user_id_window_start_str",
				Unique:  false,
				Columns: []*schema.Column{MetricsBatchesColumns[1], MetricsBatchesColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						MetricsBatchesColumns[5].Name: true,
					},
				},
			},
			{
				Name:    "metricsbatch_collected_at",
				Unique:  false,
				Columns: []*schema.Column{MetricsBatchesColumns[4]},
			},
		},
	}
	// NotificationConfigsColumns holds the columns for the "notification_configs" table.
	NotificationConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"slack", "email"}},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "recipients", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotificationConfigsTable holds the schema information for the "notification_configs" table.
	NotificationConfigsTable = &schema.Table{
		Name:       "notification_configs",
		Columns:    NotificationConfigsColumns,
		PrimaryKey: []*schema.Column{NotificationConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationconfig_user_id_channel",
				Unique:  true,
				Columns: []*schema.Column{NotificationConfigsColumns[1], NotificationConfigsColumns[2]},
			},
		},
	}
	// RcaRecordsColumns holds the columns for the "rca_records" table.
	RcaRecordsColumns = []*schema.Column{
		{Name: "rca_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "timestamp_str", Type: field.TypeString},
		{Name: "window_start_str", Type: field.TypeString},
		{Name: "window_end_str", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cause", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fix", Type: field.TypeJSON, Nullable: true},
		{Name: "raw", Type: field.TypeJSON, Nullable: true},
		{Name: "instance", Type: field.TypeString, Default: "unknown"},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// RcaRecordsTable holds the schema information for the "rca_records" table.
	RcaRecordsTable = &schema.Table{
		Name:       "rca_records",
		Columns:    RcaRecordsColumns,
		PrimaryKey: []*schema.Column{RcaRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rcarecord_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RcaRecordsColumns[1], RcaRecordsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						RcaRecordsColumns[4].Name: true,
					},
				},
			},
		},
	}
	// TargetsColumns holds the columns for the "targets" table.
	TargetsColumns = []*schema.Column{
		{Name: "target_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "labels", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TargetsTable holds the schema information for the "targets" table.
	TargetsTable = &schema.Table{
		Name:       "targets",
		Columns:    TargetsColumns,
		PrimaryKey: []*schema.Column{TargetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "target_user_id_endpoint",
				Unique:  true,
				Columns: []*schema.Column{TargetsColumns[1], TargetsColumns[3]},
			},
			{
				Name:    "target_user_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{TargetsColumns[1], TargetsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertWindowsTable,
		AnomaliesTable,
		IncidentsTable,
		MetricsBatchesTable,
		NotificationConfigsTable,
		RcaRecordsTable,
		TargetsTable,
	}
)

func init() {
}
