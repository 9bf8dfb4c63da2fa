// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/alertwindow"
)

// AlertWindow is the model entity for the AlertWindow schema.
type AlertWindow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Formatted civil-time string; guard semantics are stable across clock skew
	WindowStartStr string `json:"window_start_str,omitempty"`
	// WindowEndStr holds the value of the "window_end_str" field.
	WindowEndStr string `json:"window_end_str,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// ProcessedAtStr holds the value of the "processed_at_str" field.
	ProcessedAtStr string `json:"processed_at_str,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID   string `json:"incident_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertWindow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertwindow.FieldID, alertwindow.FieldUserID, alertwindow.FieldWindowStartStr, alertwindow.FieldWindowEndStr, alertwindow.FieldProcessedAtStr, alertwindow.FieldTimezone, alertwindow.FieldSessionID, alertwindow.FieldIncidentID:
			values[i] = new(sql.NullString)
		case alertwindow.FieldWindowStart, alertwindow.FieldWindowEnd, alertwindow.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertWindow fields.
func (_m *AlertWindow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertwindow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertwindow.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case alertwindow.FieldWindowStartStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_start_str", values[i])
			} else if value.Valid {
				_m.WindowStartStr = value.String
			}
		case alertwindow.FieldWindowEndStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_end_str", values[i])
			} else if value.Valid {
				_m.WindowEndStr = value.String
			}
		case alertwindow.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case alertwindow.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case alertwindow.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		case alertwindow.FieldProcessedAtStr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at_str", values[i])
			} else if value.Valid {
				_m.ProcessedAtStr = value.String
			}
		case alertwindow.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case alertwindow.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case alertwindow.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertWindow.
// This includes values selected through modifiers, order, etc.
func (_m *AlertWindow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AlertWindow.
// Note that you need to call AlertWindow.Unwrap() before calling this method if this AlertWindow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertWindow) Update() *AlertWindowUpdateOne {
	return NewAlertWindowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertWindow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertWindow) Unwrap() *AlertWindow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertWindow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertWindow) String() string {
	var builder strings.Builder
	builder.WriteString("AlertWindow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("window_start_str=")
	builder.WriteString(_m.WindowStartStr)
	builder.WriteString(", ")
	builder.WriteString("window_end_str=")
	builder.WriteString(_m.WindowEndStr)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("processed_at_str=")
	builder.WriteString(_m.ProcessedAtStr)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteByte(')')
	return builder.String()
}

// AlertWindows is a parsable slice of AlertWindow.
type AlertWindows []*AlertWindow
