// Code generated by ent, DO NOT EDIT.

package rcarecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rcarecord type in the database.
	Label = "rca_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rca_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTimestampStr holds the string denoting the timestamp_str field in the database.
	FieldTimestampStr = "timestamp_str"
	// FieldWindowStartStr holds the string denoting the window_start_str field in the database.
	FieldWindowStartStr = "window_start_str"
	// FieldWindowEndStr holds the string denoting the window_end_str field in the database.
	FieldWindowEndStr = "window_end_str"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldCause holds the string denoting the cause field in the database.
	FieldCause = "cause"
	// FieldFix holds the string denoting the fix field in the database.
	FieldFix = "fix"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldInstance holds the string denoting the instance field in the database.
	FieldInstance = "instance"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the rcarecord in the database.
	Table = "rca_records"
)

// Columns holds all SQL columns for rcarecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBatchID,
	FieldIncidentID,
	FieldTimestamp,
	FieldTimestampStr,
	FieldWindowStartStr,
	FieldWindowEndStr,
	FieldTimezone,
	FieldSummary,
	FieldCause,
	FieldFix,
	FieldRaw,
	FieldInstance,
	FieldIP,
	FieldPort,
	FieldSessionID,
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

var (
	// DefaultInstance holds the default value on creation for the "instance" field.
	DefaultInstance string
)

// OrderOption defines the ordering options for the RCARecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTimestampStr orders the results by the timestamp_str field.
func ByTimestampStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestampStr, opts...).ToFunc()
}

// ByWindowStartStr orders the results by the window_start_str field.
func ByWindowStartStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStartStr, opts...).ToFunc()
}

// ByWindowEndStr orders the results by the window_end_str field.
func ByWindowEndStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEndStr, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCause orders the results by the cause field.
func ByCause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCause, opts...).ToFunc()
}

// ByInstance orders the results by the instance field.
func ByInstance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstance, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByPort orders the results by the port field.
func ByPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPort, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
