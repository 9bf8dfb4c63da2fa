// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/rcarecord"
)

// RCARecord is the model entity for the RCARecord schema.
type RCARecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// TimestampStr holds the value of the "timestamp_str" field.
	TimestampStr string `json:"timestamp_str,omitempty"`
	// WindowStartStr holds the value of the "window_start_str" field.
	WindowStartStr string `json:"window_start_str,omitempty"`
	// WindowEndStr holds the value of the "window_end_str" field.
	WindowEndStr string `json:"window_end_str,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Cause holds the value of the "cause" field.
	Cause string `json:"cause,omitempty"`
	// Fix holds the value of the "fix" field.
	Fix []string `json:"fix,omitempty"`
	// Raw holds the value of the "raw" field.
	Raw map[string]interface{} `json:"raw,omitempty"`
	// Instance holds the value of the "instance" field.
	Instance string `json:"instance,omitempty"`
	// IP holds the value of the "ip" field.
	IP string `json:"ip,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RCARecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rcarecord.FieldFix, rcarecord.FieldRaw:
			values[i] = new([]byte)
		case rcarecord.FieldPort:
			values[i] = new(sql.NullInt64)
		case rcarecord.FieldID, rcarecord.FieldUserID, rcarecord.FieldBatchID, rcarecord.FieldIncidentID, rcarecord.FieldTimestampStr, rcarecord.FieldWindowStartStr, rcarecord.FieldWindowEndStr, rcarecord.FieldTimezone, rcarecord.FieldSummary, rcarecord.FieldCause, rcarecord.FieldInstance, rcarecord.FieldIP, rcarecord.FieldSessionID:
			values[i] = new(sql.NullString)
		case rcarecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RCARecord fields.
func (_m *RCARecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rcarecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rcarecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case rcarecord.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case rcarecord.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case rcarecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case rcarecord.FieldTimestampStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_str", values[i])
			} else if value.Valid {
				_m.TimestampStr = value.String
			}
		case rcarecord.FieldWindowStartStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_start_str", values[i])
			} else if value.Valid {
				_m.WindowStartStr = value.String
			}
		case rcarecord.FieldWindowEndStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_end_str", values[i])
			} else if value.Valid {
				_m.WindowEndStr = value.String
			}
		case rcarecord.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case rcarecord.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case rcarecord.FieldCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause", values[i])
			} else if value.Valid {
				_m.Cause = value.String
			}
		case rcarecord.FieldFix:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fix", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fix); err != nil {
					return fmt.Errorf("unmarshal field fix: %w", err)
				}
			}
		case rcarecord.FieldRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Raw); err != nil {
					return fmt.Errorf("unmarshal field raw: %w", err)
				}
			}
		case rcarecord.FieldInstance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance", values[i])
			} else if value.Valid {
				_m.Instance = value.String
			}
		case rcarecord.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = value.String
			}
		case rcarecord.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case rcarecord.FieldSessionID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RCARecord.
// This includes values selected through modifiers, order, etc.
func (_m *RCARecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RCARecord.
// Note that you need to call RCARecord.Unwrap() before calling this method if this RCARecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RCARecord) Update() *RCARecordUpdateOne {
	return NewRCARecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RCARecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RCARecord) Unwrap() *RCARecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RCARecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RCARecord) String() string {
	var builder strings.Builder
	builder.WriteString("RCARecord(")
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
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("timestamp_str=")
	builder.WriteString(_m.TimestampStr)
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
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("cause=")
	builder.WriteString(_m.Cause)
	builder.WriteString(", ")
	builder.WriteString("fix=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fix))
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.Raw))
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
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// RCARecords is a parsable slice of RCARecord.
type RCARecords []*RCARecord
