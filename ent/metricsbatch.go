// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/metricsbatch"
)

// MetricsBatch is the model entity for the MetricsBatch schema.
type MetricsBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// CollectedAt holds the value of the "collected_at" field.
	CollectedAt time.Time `json:"collected_at,omitempty"`
	// Civil-time string, zone-suffixed; guard key format
	WindowStartStr string `json:"window_start_str,omitempty"`
	// WindowEndStr holds the value of the "window_end_str" field.
	WindowEndStr string `json:"window_end_str,omitempty"`
	// CollectedAtStr holds the value of the "collected_at_str" field.
	CollectedAtStr string `json:"collected_at_str,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Raw samples included in this batch
	Metrics []map[string]interface{} `json:"metrics,omitempty"`
	// MetricsCount holds the value of the "metrics_count" field.
	MetricsCount int `json:"metrics_count,omitempty"`
	// PrimaryInstance holds the value of the "primary_instance" field.
	PrimaryInstance string `json:"primary_instance,omitempty"`
	// IP holds the value of the "ip" field.
	IP string `json:"ip,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricsBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricsbatch.FieldMetrics:
			values[i] = new([]byte)
		case metricsbatch.FieldMetricsCount, metricsbatch.FieldPort:
			values[i] = new(sql.NullInt64)
		case metricsbatch.FieldID, metricsbatch.FieldUserID, metricsbatch.FieldWindowStartStr, metricsbatch.FieldWindowEndStr, metricsbatch.FieldCollectedAtStr, metricsbatch.FieldTimezone, metricsbatch.FieldPrimaryInstance, metricsbatch.FieldIP, metricsbatch.FieldSessionID:
			values[i] = new(sql.NullString)
		case metricsbatch.FieldWindowStart, metricsbatch.FieldWindowEnd, metricsbatch.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricsBatch fields.
func (_m *MetricsBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricsbatch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case metricsbatch.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case metricsbatch.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case metricsbatch.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case metricsbatch.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		case metricsbatch.FieldWindowStartStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_start_str", values[i])
			} else if value.Valid {
				_m.WindowStartStr = value.String
			}
		case metricsbatch.FieldWindowEndStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_end_str", values[i])
			} else if value.Valid {
				_m.WindowEndStr = value.String
			}
		case metricsbatch.FieldCollectedAtStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at_str", values[i])
			} else if value.Valid {
				_m.CollectedAtStr = value.String
			}
		case metricsbatch.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case metricsbatch.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case metricsbatch.FieldMetricsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field metrics_count", values[i])
			} else if value.Valid {
				_m.MetricsCount = int(value.Int64)
			}
		case metricsbatch.FieldPrimaryInstance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_instance", values[i])
			} else if value.Valid {
				_m.PrimaryInstance = value.String
			}
		case metricsbatch.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = value.String
			}
		case metricsbatch.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case metricsbatch.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetricsBatch.
// This includes values selected through modifiers, order, etc.
func (_m *MetricsBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MetricsBatch.
// Note that you need to call MetricsBatch.Unwrap() before calling this method if this MetricsBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricsBatch) Update() *MetricsBatchUpdateOne {
	return NewMetricsBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricsBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricsBatch) Unwrap() *MetricsBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricsBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricsBatch) String() string {
	var builder strings.Builder
	builder.WriteString("MetricsBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(_m.CollectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_start_str=")
	builder.WriteString(_m.WindowStartStr)
	builder.WriteString(", ")
	builder.WriteString("window_end_str=")
	builder.WriteString(_m.WindowEndStr)
	builder.WriteString(", ")
	builder.WriteString("collected_at_str=")
	builder.WriteString(_m.CollectedAtStr)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("metrics_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricsCount))
	builder.WriteString(", ")
	builder.WriteString("primary_instance=")
	builder.WriteString(_m.PrimaryInstance)
	builder.WriteString(", ")
	builder.WriteString("ip=")
	builder.WriteString(_m.IP)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// MetricsBatches is a parsable slice of MetricsBatch.
type MetricsBatches []*MetricsBatch
