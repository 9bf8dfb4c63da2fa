// Code generated by ent, DO NOT EDIT.

package metricsbatch

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the metricsbatch type in the database.
	Label = "metrics_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "batch_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldCollectedAt holds the string denoting the collected_at field in the database.
	FieldCollectedAt = "collected_at"
	// FieldWindowStartStr holds the string denoting the window_start_str field in the database.
	FieldWindowStartStr = "window_start_str"
	// FieldWindowEndStr holds the string denoting the window_end_str field in the database.
	FieldWindowEndStr = "window_end_str"
	// FieldCollectedAtStr holds the string denoting the collected_at_str field in the database.
	FieldCollectedAtStr = "collected_at_str"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldMetricsCount holds the string denoting the metrics_count field in the database.
	FieldMetricsCount = "metrics_count"
	// FieldPrimaryInstance holds the string denoting the primary_instance field in the database.
	FieldPrimaryInstance = "primary_instance"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the metricsbatch in the database.
	Table = "metrics_batches"
)

// Columns holds all SQL columns for metricsbatch fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWindowStart,
	FieldWindowEnd,
	FieldCollectedAt,
	FieldWindowStartStr,
	FieldWindowEndStr,
	FieldCollectedAtStr,
	FieldTimezone,
	FieldMetrics,
	FieldMetricsCount,
	FieldPrimaryInstance,
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
	// DefaultPrimaryInstance holds the default value on creation for the "primary_instance" field.
	DefaultPrimaryInstance string
)

// OrderOption defines the ordering options for the MetricsBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByCollectedAt orders the results by the collected_at field.
func ByCollectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedAt, opts...).ToFunc()
}

// ByWindowStartStr orders the results by the window_start_str field.
func ByWindowStartStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStartStr, opts...).ToFunc()
}

// ByWindowEndStr orders the results by the window_end_str field.
func ByWindowEndStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEndStr, opts...).ToFunc()
}

// ByCollectedAtStr orders the results by the collected_at_str field.
func ByCollectedAtStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedAtStr, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByMetricsCount orders the results by the metrics_count field.
func ByMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricsCount, opts...).ToFunc()
}

// ByPrimaryInstance orders the results by the primary_instance field.
func ByPrimaryInstance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryInstance, opts...).ToFunc()
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
