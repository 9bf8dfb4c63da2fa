// Code generated by ent, DO NOT EDIT.

package incident

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the incident type in the database.
	Label = "incident"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "incident_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldWindowStartStr holds the string denoting the window_start_str field in the database.
	FieldWindowStartStr = "window_start_str"
	// FieldWindowEndStr holds the string denoting the window_end_str field in the database.
	FieldWindowEndStr = "window_end_str"
	// FieldCreatedAtStr holds the string denoting the created_at_str field in the database.
	FieldCreatedAtStr = "created_at_str"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldRootCause holds the string denoting the root_cause field in the database.
	FieldRootCause = "root_cause"
	// FieldContributingFactors holds the string denoting the contributing_factors field in the database.
	FieldContributingFactors = "contributing_factors"
	// FieldBlastRadius holds the string denoting the blast_radius field in the database.
	FieldBlastRadius = "blast_radius"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldFixPlan holds the string denoting the fix_plan field in the database.
	FieldFixPlan = "fix_plan"
	// FieldClusters holds the string denoting the clusters field in the database.
	FieldClusters = "clusters"
	// FieldRawAnalysis holds the string denoting the raw_analysis field in the database.
	FieldRawAnalysis = "raw_analysis"
	// FieldPrimaryInstance holds the string denoting the primary_instance field in the database.
	FieldPrimaryInstance = "primary_instance"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the incident in the database.
	Table = "incidents"
)

// Columns holds all SQL columns for incident fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBatchID,
	FieldWindowStart,
	FieldWindowEnd,
	FieldCreatedAt,
	FieldWindowStartStr,
	FieldWindowEndStr,
	FieldCreatedAtStr,
	FieldTimezone,
	FieldTitle,
	FieldSeverity,
	FieldConfidence,
	FieldSummary,
	FieldRootCause,
	FieldContributingFactors,
	FieldBlastRadius,
	FieldEvidence,
	FieldFixPlan,
	FieldClusters,
	FieldRawAnalysis,
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
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultPrimaryInstance holds the default value on creation for the "primary_instance" field.
	DefaultPrimaryInstance string
)

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityLow is the default value of the Severity enum.
const DefaultSeverity = SeverityLow

// Severity values.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Incident queries.
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

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWindowStartStr orders the results by the window_start_str field.
func ByWindowStartStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStartStr, opts...).ToFunc()
}

// ByWindowEndStr orders the results by the window_end_str field.
func ByWindowEndStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEndStr, opts...).ToFunc()
}

// ByCreatedAtStr orders the results by the created_at_str field.
func ByCreatedAtStr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtStr, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByRootCause orders the results by the root_cause field.
func ByRootCause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootCause, opts...).ToFunc()
}

// ByBlastRadius orders the results by the blast_radius field.
func ByBlastRadius(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlastRadius, opts...).ToFunc()
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
