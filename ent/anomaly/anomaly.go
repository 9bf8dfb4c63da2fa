// Code generated by ent, DO NOT EDIT.

package anomaly

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anomaly type in the database.
	Label = "anomaly"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "anomaly_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldMetric holds the string denoting the metric field in the database.
	FieldMetric = "metric"
	// FieldInstance holds the string denoting the instance field in the database.
	FieldInstance = "instance"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldObserved holds the string denoting the observed field in the database.
	FieldObserved = "observed"
	// FieldExpected holds the string denoting the expected field in the database.
	FieldExpected = "expected"
	// FieldSymptom holds the string denoting the symptom field in the database.
	FieldSymptom = "symptom"
	// FieldCluster holds the string denoting the cluster field in the database.
	FieldCluster = "cluster"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCreatedAtStr holds the string denoting the created_at_str field in the database.
	FieldCreatedAtStr = "created_at_str"
	// FieldWindowStartStr holds the string denoting the window_start_str field in the database.
	FieldWindowStartStr = "window_start_str"
	// FieldWindowEndStr holds the string denoting the window_end_str field in the database.
	FieldWindowEndStr = "window_end_str"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the anomaly in the database.
	Table = "anomalies"
)

// Columns holds all SQL columns for anomaly fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBatchID,
	FieldIncidentID,
	FieldMetric,
	FieldInstance,
	FieldIP,
	FieldPort,
	FieldObserved,
	FieldExpected,
	FieldSymptom,
	FieldCluster,
	FieldSeverity,
	FieldCreatedAt,
	FieldCreatedAtStr,
	FieldWindowStartStr,
	FieldWindowEndStr,
	FieldTimezone,
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
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
)

// OrderOption defines the ordering options for the Anomaly queries.
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

// ByMetric orders the results by the metric field.
func ByMetric(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetric, opts...).ToFunc()
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

// ByObserved orders the results by the observed field.
func ByObserved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObserved, opts...).ToFunc()
}

// ByExpected orders the results by the expected field.
func ByExpected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpected, opts...).ToFunc()
}

// BySymptom orders the results by the symptom field.
func BySymptom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymptom, opts...).ToFunc()
}

// ByCluster orders the results by the cluster field.
func ByCluster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCluster, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCreatedAtStr orders the results by the created_at_str field.
func ByCreatedAtStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtStr, opts...).ToFunc()
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
