// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/anomaly"
)

// Anomaly is the model entity for the Anomaly schema.
type Anomaly struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// Metric holds the value of the "metric" field.
	Metric string `json:"metric,omitempty"`
	// Always a validated host:port or the incident's primary instance
	Instance string `json:"instance,omitempty"`
	// IP holds the value of the "ip" field.
	IP string `json:"ip,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// Observed holds the value of the "observed" field.
	Observed float64 `json:"observed,omitempty"`
	// Expected holds the value of the "expected" field.
	Expected string `json:"expected,omitempty"`
	// Symptom holds the value of the "symptom" field.
	Symptom string `json:"symptom,omitempty"`
	// Cluster holds the value of the "cluster" field.
	Cluster string `json:"cluster,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CreatedAtStr holds the value of the "created_at_str" field.
	CreatedAtStr string `json:"created_at_str,omitempty"`
	// WindowStartStr holds the value of the "window_start_str" field.
	WindowStartStr string `json:"window_start_str,omitempty"`
	// WindowEndStr holds the value of the "window_end_str" field.
	WindowEndStr string `json:"window_end_str,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Anomaly) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anomaly.FieldObserved:
			values[i] = new(sql.NullFloat64)
		case anomaly.FieldPort:
			values[i] = new(sql.NullInt64)
		case anomaly.FieldID, anomaly.FieldUserID, anomaly.FieldBatchID, anomaly.FieldIncidentID, anomaly.FieldMetric, anomaly.FieldInstance, anomaly.FieldIP, anomaly.FieldExpected, anomaly.FieldSymptom, anomaly.FieldCluster, anomaly.FieldSeverity, anomaly.FieldCreatedAtStr, anomaly.FieldWindowStartStr, anomaly.FieldWindowEndStr, anomaly.FieldTimezone, anomaly.FieldSessionID:
			values[i] = new(sql.NullString)
		case anomaly.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Anomaly fields.
func (_m *Anomaly) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anomaly.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case anomaly.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case anomaly.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case anomaly.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case anomaly.FieldMetric:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric", values[i])
			} else if value.Valid {
				_m.Metric = value.String
			}
		case anomaly.FieldInstance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance", values[i])
			} else if value.Valid {
				_m.Instance = value.String
			}
		case anomaly.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = value.String
			}
		case anomaly.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case anomaly.FieldObserved:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed", values[i])
			} else if value.Valid {
				_m.Observed = value.Float64
			}
		case anomaly.FieldExpected:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected", values[i])
			} else if value.Valid {
				_m.Expected = value.String
			}
		case anomaly.FieldSymptom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symptom", values[i])
			} else if value.Valid {
				_m.Symptom = value.String
			}
		case anomaly.FieldCluster:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster", values[i])
			} else if value.Valid {
				_m.Cluster = value.String
			}
		case anomaly.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case anomaly.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case anomaly.FieldCreatedAtStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_str", values[i])
			} else if value.Valid {
				_m.CreatedAtStr = value.String
			}
		case anomaly.FieldWindowStartStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_start_str", values[i])
			} else if value.Valid {
				_m.WindowStartStr = value.String
			}
		case anomaly.FieldWindowEndStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_end_str", values[i])
			} else if value.Valid {
				_m.WindowEndStr = value.String
			}
		case anomaly.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case anomaly.FieldSessionID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Anomaly.
// This includes values selected through modifiers, order, etc.
func (_m *Anomaly) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Anomaly.
// Note that you need to call Anomaly.Unwrap() before calling this method if this Anomaly
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Anomaly) Update() *AnomalyUpdateOne {
	return NewAnomalyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Anomaly entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Anomaly) Unwrap() *Anomaly {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Anomaly is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Anomaly) String() string {
	var builder strings.Builder
	builder.WriteString("Anomaly(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("metric=")
	builder.WriteString(_m.Metric)
	builder.WriteString(", ")
	builder.WriteString("instance=")
	builder.WriteString(_m.Instance)
	builder.WriteString(", ")
	builder.WriteString("ip=")
	builder.WriteString(_m.IP)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteString(", ")
	builder.WriteString("observed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observed))
	builder.WriteString(", ")
	builder.WriteString("expected=")
	builder.WriteString(_m.Expected)
	builder.WriteString(", ")
	builder.WriteString("symptom=")
	builder.WriteString(_m.Symptom)
	builder.WriteString(", ")
	builder.WriteString("cluster=")
	builder.WriteString(_m.Cluster)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at_str=")
	builder.WriteString(_m.CreatedAtStr)
	builder.WriteString(", ")
	builder.WriteString("window_start_str=")
	builder.WriteString(_m.WindowStartStr)
	builder.WriteString(", ")
	builder.WriteString("window_end_str=")
	builder.WriteString(_m.WindowEndStr)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// Anomalies is a parsable slice of Anomaly.
type Anomalies []*Anomaly
