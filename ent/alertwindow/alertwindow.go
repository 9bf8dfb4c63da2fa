// Code generated by ent, DO NOT EDIT.

package alertwindow

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the alertwindow type in the database.
	Label = "alert_window"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "window_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWindowStartStr holds the string denoting the window_start_str field in the database.
	FieldWindowStartStr = "window_start_str"
	// FieldWindowEndStr holds the string denoting the window_end_str field in the database.
	FieldWindowEndStr = "window_end_str"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldProcessedAtStr holds the string denoting the processed_at_str field in the database.
	FieldProcessedAtStr = "processed_at_str"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// Table holds the table name of the alertwindow in the database.
	Table = "alert_windows"
)

// Columns holds all SQL columns for alertwindow fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWindowStartStr,
	FieldWindowEndStr,
	FieldWindowStart,
	FieldWindowEnd,
	FieldProcessedAt,
	FieldProcessedAtStr,
	FieldTimezone,
	FieldSessionID,
	FieldIncidentID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the AlertWindow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWindowStartStr orders the results by the window_start_str field.
func ByWindowStartStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStartStr, opts...).ToFunc()
}

// ByWindowEndStr orders the results by the window_end_str field.
func ByWindowEndStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEndStr, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByProcessedAtStr orders the results by the processed_at_str field.
func ByProcessedAtStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAtStr, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}
