// Code generated by ent, DO NOT EDIT.

package metricsbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldUserID, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowEnd, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldCollectedAt, v))
}

// WindowStartStr applies equality check predicate on the "window_start_str" field. It's identical to WindowStartStrEQ.
func WindowStartStr(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowEndStr applies equality check predicate on the "window_end_str" field. It's identical to WindowEndStrEQ.
func WindowEndStr(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowEndStr, v))
}

// CollectedAtStr applies equality check predicate on the "collected_at_str" field. It's identical to CollectedAtStrEQ.
func CollectedAtStr(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldCollectedAtStr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldTimezone, v))
}

// MetricsCount applies equality check predicate on the "metrics_count" field. It's identical to MetricsCountEQ.
func MetricsCount(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldMetricsCount, v))
}

// PrimaryInstance applies equality check predicate on the "primary_instance" field. It's identical to PrimaryInstanceEQ.
func PrimaryInstance(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldPrimaryInstance, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldIP, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldPort, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldUserID, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldWindowEnd, v))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldCollectedAt, v))
}

// WindowStartStrEQ applies the EQ predicate on the "window_start_str" field.
func WindowStartStrEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowStartStrNEQ applies the NEQ predicate on the "window_start_str" field.
func WindowStartStrNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldWindowStartStr, v))
}

// WindowStartStrIn applies the In predicate on the "window_start_str" field.
func WindowStartStrIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldWindowStartStr, vs...))
}

// WindowStartStrNotIn applies the NotIn predicate on the "window_start_str" field.
func WindowStartStrNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldWindowStartStr, vs...))
}

// WindowStartStrGT applies the GT predicate on the "window_start_str" field.
func WindowStartStrGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldWindowStartStr, v))
}

// WindowStartStrGTE applies the GTE predicate on the "window_start_str" field.
func WindowStartStrGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldWindowStartStr, v))
}

// WindowStartStrLT applies the LT predicate on the "window_start_str" field.
func WindowStartStrLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldWindowStartStr, v))
}

// WindowStartStrLTE applies the LTE predicate on the "window_start_str" field.
func WindowStartStrLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldWindowStartStr, v))
}

// WindowStartStrContains applies the Contains predicate on the "window_start_str" field.
func WindowStartStrContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldWindowStartStr, v))
}

// WindowStartStrHasPrefix applies the HasPrefix predicate on the "window_start_str" field.
func WindowStartStrHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldWindowStartStr, v))
}

// WindowStartStrHasSuffix applies the HasSuffix predicate on the "window_start_str" field.
func WindowStartStrHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldWindowStartStr, v))
}

// WindowStartStrEqualFold applies the EqualFold predicate on the "window_start_str" field.
func WindowStartStrEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldWindowStartStr, v))
}

// WindowStartStrContainsFold applies the ContainsFold predicate on the "window_start_str" field.
func WindowStartStrContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldWindowStartStr, v))
}

// WindowEndStrEQ applies the EQ predicate on the "window_end_str" field.
func WindowEndStrEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowEndStrNEQ applies the NEQ predicate on the "window_end_str" field.
func WindowEndStrNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldWindowEndStr, v))
}

// WindowEndStrIn applies the In predicate on the "window_end_str" field.
func WindowEndStrIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldWindowEndStr, vs...))
}

// WindowEndStrNotIn applies the NotIn predicate on the "window_end_str" field.
func WindowEndStrNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldWindowEndStr, vs...))
}

// WindowEndStrGT applies the GT predicate on the "window_end_str" field.
func WindowEndStrGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldWindowEndStr, v))
}

// WindowEndStrGTE applies the GTE predicate on the "window_end_str" field.
func WindowEndStrGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldWindowEndStr, v))
}

// WindowEndStrLT applies the LT predicate on the "window_end_str" field.
func WindowEndStrLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldWindowEndStr, v))
}

// WindowEndStrLTE applies the LTE predicate on the "window_end_str" field.
func WindowEndStrLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldWindowEndStr, v))
}

// WindowEndStrContains applies the Contains predicate on the "window_end_str" field.
func WindowEndStrContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldWindowEndStr, v))
}

// WindowEndStrHasPrefix applies the HasPrefix predicate on the "window_end_str" field.
func WindowEndStrHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldWindowEndStr, v))
}

// WindowEndStrHasSuffix applies the HasSuffix predicate on the "window_end_str" field.
func WindowEndStrHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldWindowEndStr, v))
}

// WindowEndStrEqualFold applies the EqualFold predicate on the "window_end_str" field.
func WindowEndStrEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldWindowEndStr, v))
}

// WindowEndStrContainsFold applies the ContainsFold predicate on the "window_end_str" field.
func WindowEndStrContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldWindowEndStr, v))
}

// CollectedAtStrEQ applies the EQ predicate on the "collected_at_str" field.
func CollectedAtStrEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldCollectedAtStr, v))
}

// CollectedAtStrNEQ applies the NEQ predicate on the "collected_at_str" field.
func CollectedAtStrNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldCollectedAtStr, v))
}

// CollectedAtStrIn applies the In predicate on the "collected_at_str" field.
func CollectedAtStrIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldCollectedAtStr, vs...))
}

// CollectedAtStrNotIn applies the NotIn predicate on the "collected_at_str" field.
func CollectedAtStrNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldCollectedAtStr, vs...))
}

// CollectedAtStrGT applies the GT predicate on the "collected_at_str" field.
func CollectedAtStrGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldCollectedAtStr, v))
}

// CollectedAtStrGTE applies the GTE predicate on the "collected_at_str" field.
func CollectedAtStrGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldCollectedAtStr, v))
}

// CollectedAtStrLT applies the LT predicate on the "collected_at_str" field.
func CollectedAtStrLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldCollectedAtStr, v))
}

// CollectedAtStrLTE applies the LTE predicate on the "collected_at_str" field.
func CollectedAtStrLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldCollectedAtStr, v))
}

// CollectedAtStrContains applies the Contains predicate on the "collected_at_str" field.
func CollectedAtStrContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldCollectedAtStr, v))
}

// CollectedAtStrHasPrefix applies the HasPrefix predicate on the "collected_at_str" field.
func CollectedAtStrHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldCollectedAtStr, v))
}

// CollectedAtStrHasSuffix applies the HasSuffix predicate on the "collected_at_str" field.
func CollectedAtStrHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldCollectedAtStr, v))
}

// CollectedAtStrEqualFold applies the EqualFold predicate on the "collected_at_str" field.
func CollectedAtStrEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldCollectedAtStr, v))
}

// CollectedAtStrContainsFold applies the ContainsFold predicate on the "collected_at_str" field.
func CollectedAtStrContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldCollectedAtStr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldTimezone, v))
}

// MetricsCountEQ applies the EQ predicate on the "metrics_count" field.
func MetricsCountEQ(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldMetricsCount, v))
}

// MetricsCountNEQ applies the NEQ predicate on the "metrics_count" field.
func MetricsCountNEQ(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldMetricsCount, v))
}

// MetricsCountIn applies the In predicate on the "metrics_count" field.
func MetricsCountIn(vs ...int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldMetricsCount, vs...))
}

// MetricsCountNotIn applies the NotIn predicate on the "metrics_count" field.
func MetricsCountNotIn(vs ...int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldMetricsCount, vs...))
}

// MetricsCountGT applies the GT predicate on the "metrics_count" field.
func MetricsCountGT(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldMetricsCount, v))
}

// MetricsCountGTE applies the GTE predicate on the "metrics_count" field.
func MetricsCountGTE(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldMetricsCount, v))
}

// MetricsCountLT applies the LT predicate on the "metrics_count" field.
func MetricsCountLT(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldMetricsCount, v))
}

// MetricsCountLTE applies the LTE predicate on the "metrics_count" field.
func MetricsCountLTE(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldMetricsCount, v))
}

// PrimaryInstanceEQ applies the EQ predicate on the "primary_instance" field.
func PrimaryInstanceEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldPrimaryInstance, v))
}

// PrimaryInstanceNEQ applies the NEQ predicate on the "primary_instance" field.
func PrimaryInstanceNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldPrimaryInstance, v))
}

// PrimaryInstanceIn applies the In predicate on the "primary_instance" field.
func PrimaryInstanceIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldPrimaryInstance, vs...))
}

// PrimaryInstanceNotIn applies the NotIn predicate on the "primary_instance" field.
func PrimaryInstanceNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldPrimaryInstance, vs...))
}

// PrimaryInstanceGT applies the GT predicate on the "primary_instance" field.
func PrimaryInstanceGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldPrimaryInstance, v))
}

// PrimaryInstanceGTE applies the GTE predicate on the "primary_instance" field.
func PrimaryInstanceGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldPrimaryInstance, v))
}

// PrimaryInstanceLT applies the LT predicate on the "primary_instance" field.
func PrimaryInstanceLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldPrimaryInstance, v))
}

// PrimaryInstanceLTE applies the LTE predicate on the "primary_instance" field.
func PrimaryInstanceLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldPrimaryInstance, v))
}

// PrimaryInstanceContains applies the Contains predicate on the "primary_instance" field.
func PrimaryInstanceContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldPrimaryInstance, v))
}

// PrimaryInstanceHasPrefix applies the HasPrefix predicate on the "primary_instance" field.
func PrimaryInstanceHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldPrimaryInstance, v))
}

// PrimaryInstanceHasSuffix applies the HasSuffix predicate on the "primary_instance" field.
func PrimaryInstanceHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldPrimaryInstance, v))
}

// PrimaryInstanceEqualFold applies the EqualFold predicate on the "primary_instance" field.
func PrimaryInstanceEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldPrimaryInstance, v))
}

// PrimaryInstanceContainsFold applies the ContainsFold predicate on the "primary_instance" field.
func PrimaryInstanceContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldPrimaryInstance, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldIP, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotNull(FieldPort))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricsBatch) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricsBatch) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricsBatch) predicate.MetricsBatch {
	return predicate.MetricsBatch(sql.NotPredicates(p))
}
