// Code generated by ent, DO NOT EDIT.

package rcarecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldUserID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldBatchID, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldIncidentID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampStr applies equality check predicate on the "timestamp_str" field. It's identical to TimestampStrEQ.
func TimestampStr(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimestampStr, v))
}

// WindowStartStr applies equality check predicate on the "window_start_str" field. It's identical to WindowStartStrEQ.
func WindowStartStr(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowEndStr applies equality check predicate on the "window_end_str" field. It's identical to WindowEndStrEQ.
func WindowEndStr(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldWindowEndStr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimezone, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldSummary, v))
}

// Cause applies equality check predicate on the "cause" field. It's identical to CauseEQ.
func Cause(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldCause, v))
}

// Instance applies equality check predicate on the "instance" field. It's identical to InstanceEQ.
func Instance(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldInstance, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldIP, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldPort, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldUserID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldBatchID, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldIncidentID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampStrEQ applies the EQ predicate on the "timestamp_str" field.
func TimestampStrEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimestampStr, v))
}

// TimestampStrNEQ applies the NEQ predicate on the "timestamp_str" field.
func TimestampStrNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldTimestampStr, v))
}

// TimestampStrIn applies the In predicate on the "timestamp_str" field.
func TimestampStrIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldTimestampStr, vs...))
}

// TimestampStrNotIn applies the NotIn predicate on the "timestamp_str" field.
func TimestampStrNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldTimestampStr, vs...))
}

// TimestampStrGT applies the GT predicate on the "timestamp_str" field.
func TimestampStrGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldTimestampStr, v))
}

// TimestampStrGTE applies the GTE predicate on the "timestamp_str" field.
func TimestampStrGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldTimestampStr, v))
}

// TimestampStrLT applies the LT predicate on the "timestamp_str" field.
func TimestampStrLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldTimestampStr, v))
}

// TimestampStrLTE applies the LTE predicate on the "timestamp_str" field.
func TimestampStrLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldTimestampStr, v))
}

// TimestampStrContains applies the Contains predicate on the "timestamp_str" field.
func TimestampStrContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldTimestampStr, v))
}

// TimestampStrHasPrefix applies the HasPrefix predicate on the "timestamp_str" field.
func TimestampStrHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldTimestampStr, v))
}

// TimestampStrHasSuffix applies the HasSuffix predicate on the "timestamp_str" field.
func TimestampStrHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldTimestampStr, v))
}

// TimestampStrEqualFold applies the EqualFold predicate on the "timestamp_str" field.
func TimestampStrEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldTimestampStr, v))
}

// TimestampStrContainsFold applies the ContainsFold predicate on the "timestamp_str" field.
func TimestampStrContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldTimestampStr, v))
}

// WindowStartStrEQ applies the EQ predicate on the "window_start_str" field.
func WindowStartStrEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowStartStrNEQ applies the NEQ predicate on the "window_start_str" field.
func WindowStartStrNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldWindowStartStr, v))
}

// WindowStartStrIn applies the In predicate on the "window_start_str" field.
func WindowStartStrIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldWindowStartStr, vs...))
}

// WindowStartStrNotIn applies the NotIn predicate on the "window_start_str" field.
func WindowStartStrNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldWindowStartStr, vs...))
}

// WindowStartStrGT applies the GT predicate on the "window_start_str" field.
func WindowStartStrGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldWindowStartStr, v))
}

// WindowStartStrGTE applies the GTE predicate on the "window_start_str" field.
func WindowStartStrGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldWindowStartStr, v))
}

// WindowStartStrLT applies the LT predicate on the "window_start_str" field.
func WindowStartStrLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldWindowStartStr, v))
}

// WindowStartStrLTE applies the LTE predicate on the "window_start_str" field.
func WindowStartStrLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldWindowStartStr, v))
}

// WindowStartStrContains applies the Contains predicate on the "window_start_str" field.
func WindowStartStrContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldWindowStartStr, v))
}

// WindowStartStrHasPrefix applies the HasPrefix predicate on the "window_start_str" field.
func WindowStartStrHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldWindowStartStr, v))
}

// WindowStartStrHasSuffix applies the HasSuffix predicate on the "window_start_str" field.
func WindowStartStrHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldWindowStartStr, v))
}

// WindowStartStrEqualFold applies the EqualFold predicate on the "window_start_str" field.
func WindowStartStrEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldWindowStartStr, v))
}

// WindowStartStrContainsFold applies the ContainsFold predicate on the "window_start_str" field.
func WindowStartStrContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldWindowStartStr, v))
}

// WindowEndStrEQ applies the EQ predicate on the "window_end_str" field.
func WindowEndStrEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowEndStrNEQ applies the NEQ predicate on the "window_end_str" field.
func WindowEndStrNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldWindowEndStr, v))
}

// WindowEndStrIn applies the In predicate on the "window_end_str" field.
func WindowEndStrIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldWindowEndStr, vs...))
}

// WindowEndStrNotIn applies the NotIn predicate on the "window_end_str" field.
func WindowEndStrNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldWindowEndStr, vs...))
}

// WindowEndStrGT applies the GT predicate on the "window_end_str" field.
func WindowEndStrGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldWindowEndStr, v))
}

// WindowEndStrGTE applies the GTE predicate on the "window_end_str" field.
func WindowEndStrGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldWindowEndStr, v))
}

// WindowEndStrLT applies the LT predicate on the "window_end_str" field.
func WindowEndStrLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldWindowEndStr, v))
}

// WindowEndStrLTE applies the LTE predicate on the "window_end_str" field.
func WindowEndStrLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldWindowEndStr, v))
}

// WindowEndStrContains applies the Contains predicate on the "window_end_str" field.
func WindowEndStrContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldWindowEndStr, v))
}

// WindowEndStrHasPrefix applies the HasPrefix predicate on the "window_end_str" field.
func WindowEndStrHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldWindowEndStr, v))
}

// WindowEndStrHasSuffix applies the HasSuffix predicate on the "window_end_str" field.
func WindowEndStrHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldWindowEndStr, v))
}

// WindowEndStrEqualFold applies the EqualFold predicate on the "window_end_str" field.
func WindowEndStrEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldWindowEndStr, v))
}

// WindowEndStrContainsFold applies the ContainsFold predicate on the "window_end_str" field.
func WindowEndStrContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldWindowEndStr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldTimezone, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldSummary, v))
}

// CauseEQ applies the EQ predicate on the "cause" field.
func CauseEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldCause, v))
}

// CauseNEQ applies the NEQ predicate on the "cause" field.
func CauseNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldCause, v))
}

// CauseIn applies the In predicate on the "cause" field.
func CauseIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldCause, vs...))
}

// CauseNotIn applies the NotIn predicate on the "cause" field.
func CauseNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldCause, vs...))
}

// CauseGT applies the GT predicate on the "cause" field.
func CauseGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldCause, v))
}

// CauseGTE applies the GTE predicate on the "cause" field.
func CauseGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldCause, v))
}

// CauseLT applies the LT predicate on the "cause" field.
func CauseLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldCause, v))
}

// CauseLTE applies the LTE predicate on the "cause" field.
func CauseLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldCause, v))
}

// CauseContains applies the Contains predicate on the "cause" field.
func CauseContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldCause, v))
}

// CauseHasPrefix applies the HasPrefix predicate on the "cause" field.
func CauseHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldCause, v))
}

// CauseHasSuffix applies the HasSuffix predicate on the "cause" field.
func CauseHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldCause, v))
}

// CauseIsNil applies the IsNil predicate on the "cause" field.
func CauseIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldCause))
}

// CauseNotNil applies the NotNil predicate on the "cause" field.
func CauseNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldCause))
}

// CauseEqualFold applies the EqualFold predicate on the "cause" field.
func CauseEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldCause, v))
}

// CauseContainsFold applies the ContainsFold predicate on the "cause" field.
func CauseContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldCause, v))
}

// FixIsNil applies the IsNil predicate on the "fix" field.
func FixIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldFix))
}

// FixNotNil applies the NotNil predicate on the "fix" field.
func FixNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldFix))
}

// RawIsNil applies the IsNil predicate on the "raw" field.
func RawIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldRaw))
}

// RawNotNil applies the NotNil predicate on the "raw" field.
func RawNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldRaw))
}

// InstanceEQ applies the EQ predicate on the "instance" field.
func InstanceEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldInstance, v))
}

// InstanceNEQ applies the NEQ predicate on the "instance" field.
func InstanceNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldInstance, v))
}

// InstanceIn applies the In predicate on the "instance" field.
func InstanceIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldInstance, vs...))
}

// InstanceNotIn applies the NotIn predicate on the "instance" field.
func InstanceNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldInstance, vs...))
}

// InstanceGT applies the GT predicate on the "instance" field.
func InstanceGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldInstance, v))
}

// InstanceGTE applies the GTE predicate on the "instance" field.
func InstanceGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldInstance, v))
}

// InstanceLT applies the LT predicate on the "instance" field.
func InstanceLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldInstance, v))
}

// InstanceLTE applies the LTE predicate on the "instance" field.
func InstanceLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldInstance, v))
}

// InstanceContains applies the Contains predicate on the "instance" field.
func InstanceContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldInstance, v))
}

// InstanceHasPrefix applies the HasPrefix predicate on the "instance" field.
func InstanceHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldInstance, v))
}

// InstanceHasSuffix applies the HasSuffix predicate on the "instance" field.
func InstanceHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldInstance, v))
}

// InstanceEqualFold applies the EqualFold predicate on the "instance" field.
func InstanceEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldInstance, v))
}

// InstanceContainsFold applies the ContainsFold predicate on the "instance" field.
func InstanceContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldInstance, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldIP, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotNull(FieldPort))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RCARecord {
	return predicate.RCARecord(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RCARecord) predicate.RCARecord {
	return predicate.RCARecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RCARecord) predicate.RCARecord {
	return predicate.RCARecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RCARecord) predicate.RCARecord {
	return predicate.RCARecord(sql.NotPredicates(p))
}
