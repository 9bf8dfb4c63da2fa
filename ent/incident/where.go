// Code generated by ent, DO NOT EDIT.

package incident

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldBatchID, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// WindowStartStr applies equality check predicate on the "window_start_str" field. It's identical to WindowStartStrEQ.
func WindowStartStr(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowEndStr applies equality check predicate on the "window_end_str" field. It's identical to WindowEndStrEQ.
func WindowEndStr(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowEndStr, v))
}

// CreatedAtStr applies equality check predicate on the "created_at_str" field. It's identical to CreatedAtStrEQ.
func CreatedAtStr(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAtStr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTimezone, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldConfidence, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSummary, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRootCause, v))
}

// BlastRadius applies equality check predicate on the "blast_radius" field. It's identical to BlastRadiusEQ.
func BlastRadius(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldBlastRadius, v))
}

// PrimaryInstance applies equality check predicate on the "primary_instance" field. It's identical to PrimaryInstanceEQ.
func PrimaryInstance(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrimaryInstance, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldIP, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPort, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldUserID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldBatchID, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldWindowEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAt, v))
}

// WindowStartStrEQ applies the EQ predicate on the "window_start_str" field.
func WindowStartStrEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowStartStrNEQ applies the NEQ predicate on the "window_start_str" field.
func WindowStartStrNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldWindowStartStr, v))
}

// WindowStartStrIn applies the In predicate on the "window_start_str" field.
func WindowStartStrIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldWindowStartStr, vs...))
}

// WindowStartStrNotIn applies the NotIn predicate on the "window_start_str" field.
func WindowStartStrNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldWindowStartStr, vs...))
}

// WindowStartStrGT applies the GT predicate on the "window_start_str" field.
func WindowStartStrGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldWindowStartStr, v))
}

// WindowStartStrGTE applies the GTE predicate on the "window_start_str" field.
func WindowStartStrGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldWindowStartStr, v))
}

// WindowStartStrLT applies the LT predicate on the "window_start_str" field.
func WindowStartStrLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldWindowStartStr, v))
}

// WindowStartStrLTE applies the LTE predicate on the "window_start_str" field.
func WindowStartStrLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldWindowStartStr, v))
}

// WindowStartStrContains applies the Contains predicate on the "window_start_str" field.
func WindowStartStrContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldWindowStartStr, v))
}

// WindowStartStrHasPrefix applies the HasPrefix predicate on the "window_start_str" field.
func WindowStartStrHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldWindowStartStr, v))
}

// WindowStartStrHasSuffix applies the HasSuffix predicate on the "window_start_str" field.
func WindowStartStrHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldWindowStartStr, v))
}

// WindowStartStrEqualFold applies the EqualFold predicate on the "window_start_str" field.
func WindowStartStrEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldWindowStartStr, v))
}

// WindowStartStrContainsFold applies the ContainsFold predicate on the "window_start_str" field.
func WindowStartStrContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldWindowStartStr, v))
}

// WindowEndStrEQ applies the EQ predicate on the "window_end_str" field.
func WindowEndStrEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowEndStrNEQ applies the NEQ predicate on the "window_end_str" field.
func WindowEndStrNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldWindowEndStr, v))
}

// WindowEndStrIn applies the In predicate on the "window_end_str" field.
func WindowEndStrIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldWindowEndStr, vs...))
}

// WindowEndStrNotIn applies the NotIn predicate on the "window_end_str" field.
func WindowEndStrNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldWindowEndStr, vs...))
}

// WindowEndStrGT applies the GT predicate on the "window_end_str" field.
func WindowEndStrGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldWindowEndStr, v))
}

// WindowEndStrGTE applies the GTE predicate on the "window_end_str" field.
func WindowEndStrGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldWindowEndStr, v))
}

// WindowEndStrLT applies the LT predicate on the "window_end_str" field.
func WindowEndStrLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldWindowEndStr, v))
}

// WindowEndStrLTE applies the LTE predicate on the "window_end_str" field.
func WindowEndStrLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldWindowEndStr, v))
}

// WindowEndStrContains applies the Contains predicate on the "window_end_str" field.
func WindowEndStrContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldWindowEndStr, v))
}

// WindowEndStrHasPrefix applies the HasPrefix predicate on the "window_end_str" field.
func WindowEndStrHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldWindowEndStr, v))
}

// WindowEndStrHasSuffix applies the HasSuffix predicate on the "window_end_str" field.
func WindowEndStrHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldWindowEndStr, v))
}

// WindowEndStrEqualFold applies the EqualFold predicate on the "window_end_str" field.
func WindowEndStrEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldWindowEndStr, v))
}

// WindowEndStrContainsFold applies the ContainsFold predicate on the "window_end_str" field.
func WindowEndStrContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldWindowEndStr, v))
}

// CreatedAtStrEQ applies the EQ predicate on the "created_at_str" field.
func CreatedAtStrEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAtStr, v))
}

// CreatedAtStrNEQ applies the NEQ predicate on the "created_at_str" field.
func CreatedAtStrNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAtStr, v))
}

// CreatedAtStrIn applies the In predicate on the "created_at_str" field.
func CreatedAtStrIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAtStr, vs...))
}

// CreatedAtStrNotIn applies the NotIn predicate on the "created_at_str" field.
func CreatedAtStrNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAtStr, vs...))
}

// CreatedAtStrGT applies the GT predicate on the "created_at_str" field.
func CreatedAtStrGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAtStr, v))
}

// CreatedAtStrGTE applies the GTE predicate on the "created_at_str" field.
func CreatedAtStrGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAtStr, v))
}

// CreatedAtStrLT applies the LT predicate on the "created_at_str" field.
func CreatedAtStrLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAtStr, v))
}

// CreatedAtStrLTE applies the LTE predicate on the "created_at_str" field.
func CreatedAtStrLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAtStr, v))
}

// CreatedAtStrContains applies the Contains predicate on the "created_at_str" field.
func CreatedAtStrContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldCreatedAtStr, v))
}

// CreatedAtStrHasPrefix applies the HasPrefix predicate on the "created_at_str" field.
func CreatedAtStrHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldCreatedAtStr, v))
}

// CreatedAtStrHasSuffix applies the HasSuffix predicate on the "created_at_str" field.
func CreatedAtStrHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldCreatedAtStr, v))
}

// CreatedAtStrEqualFold applies the EqualFold predicate on the "created_at_str" field.
func CreatedAtStrEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldCreatedAtStr, v))
}

// CreatedAtStrContainsFold applies the ContainsFold predicate on the "created_at_str" field.
func CreatedAtStrContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldCreatedAtStr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldTimezone, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldTitle, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSeverity, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldConfidence, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSummary, v))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseIsNil applies the IsNil predicate on the "root_cause" field.
func RootCauseIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldRootCause))
}

// RootCauseNotNil applies the NotNil predicate on the "root_cause" field.
func RootCauseNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldRootCause))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldRootCause, v))
}

// ContributingFactorsIsNil applies the IsNil predicate on the "contributing_factors" field.
func ContributingFactorsIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldContributingFactors))
}

// ContributingFactorsNotNil applies the NotNil predicate on the "contributing_factors" field.
func ContributingFactorsNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldContributingFactors))
}

// BlastRadiusEQ applies the EQ predicate on the "blast_radius" field.
func BlastRadiusEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldBlastRadius, v))
}

// BlastRadiusNEQ applies the NEQ predicate on the "blast_radius" field.
func BlastRadiusNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldBlastRadius, v))
}

// BlastRadiusIn applies the In predicate on the "blast_radius" field.
func BlastRadiusIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldBlastRadius, vs...))
}

// BlastRadiusNotIn applies the NotIn predicate on the "blast_radius" field.
func BlastRadiusNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldBlastRadius, vs...))
}

// BlastRadiusGT applies the GT predicate on the "blast_radius" field.
func BlastRadiusGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldBlastRadius, v))
}

// BlastRadiusGTE applies the GTE predicate on the "blast_radius" field.
func BlastRadiusGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldBlastRadius, v))
}

// BlastRadiusLT applies the LT predicate on the "blast_radius" field.
func BlastRadiusLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldBlastRadius, v))
}

// BlastRadiusLTE applies the LTE predicate on the "blast_radius" field.
func BlastRadiusLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldBlastRadius, v))
}

// BlastRadiusContains applies the Contains predicate on the "blast_radius" field.
func BlastRadiusContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldBlastRadius, v))
}

// BlastRadiusHasPrefix applies the HasPrefix predicate on the "blast_radius" field.
func BlastRadiusHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldBlastRadius, v))
}

// BlastRadiusHasSuffix applies the HasSuffix predicate on the "blast_radius" field.
func BlastRadiusHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldBlastRadius, v))
}

// BlastRadiusIsNil applies the IsNil predicate on the "blast_radius" field.
func BlastRadiusIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldBlastRadius))
}

// BlastRadiusNotNil applies the NotNil predicate on the "blast_radius" field.
func BlastRadiusNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldBlastRadius))
}

// BlastRadiusEqualFold applies the EqualFold predicate on the "blast_radius" field.
func BlastRadiusEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldBlastRadius, v))
}

// BlastRadiusContainsFold applies the ContainsFold predicate on the "blast_radius" field.
func BlastRadiusContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldBlastRadius, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldEvidence))
}

// FixPlanIsNil applies the IsNil predicate on the "fix_plan" field.
func FixPlanIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldFixPlan))
}

// FixPlanNotNil applies the NotNil predicate on the "fix_plan" field.
func FixPlanNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldFixPlan))
}

// ClustersIsNil applies the IsNil predicate on the "clusters" field.
func ClustersIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldClusters))
}

// ClustersNotNil applies the NotNil predicate on the "clusters" field.
func ClustersNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldClusters))
}

// RawAnalysisIsNil applies the IsNil predicate on the "raw_analysis" field.
func RawAnalysisIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldRawAnalysis))
}

// RawAnalysisNotNil applies the NotNil predicate on the "raw_analysis" field.
func RawAnalysisNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldRawAnalysis))
}

// PrimaryInstanceEQ applies the EQ predicate on the "primary_instance" field.
func PrimaryInstanceEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPrimaryInstance, v))
}

// PrimaryInstanceNEQ applies the NEQ predicate on the "primary_instance" field.
func PrimaryInstanceNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPrimaryInstance, v))
}

// PrimaryInstanceIn applies the In predicate on the "primary_instance" field.
func PrimaryInstanceIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPrimaryInstance, vs...))
}

// PrimaryInstanceNotIn applies the NotIn predicate on the "primary_instance" field.
func PrimaryInstanceNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPrimaryInstance, vs...))
}

// PrimaryInstanceGT applies the GT predicate on the "primary_instance" field.
func PrimaryInstanceGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPrimaryInstance, v))
}

// PrimaryInstanceGTE applies the GTE predicate on the "primary_instance" field.
func PrimaryInstanceGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPrimaryInstance, v))
}

// PrimaryInstanceLT applies the LT predicate on the "primary_instance" field.
func PrimaryInstanceLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPrimaryInstance, v))
}

// PrimaryInstanceLTE applies the LTE predicate on the "primary_instance" field.
func PrimaryInstanceLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPrimaryInstance, v))
}

// PrimaryInstanceContains applies the Contains predicate on the "primary_instance" field.
func PrimaryInstanceContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldPrimaryInstance, v))
}

// PrimaryInstanceHasPrefix applies the HasPrefix predicate on the "primary_instance" field.
func PrimaryInstanceHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldPrimaryInstance, v))
}

// PrimaryInstanceHasSuffix applies the HasSuffix predicate on the "primary_instance" field.
func PrimaryInstanceHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldPrimaryInstance, v))
}

// PrimaryInstanceEqualFold applies the EqualFold predicate on the "primary_instance" field.
func PrimaryInstanceEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldPrimaryInstance, v))
}

// PrimaryInstanceContainsFold applies the ContainsFold predicate on the "primary_instance" field.
func PrimaryInstanceContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldPrimaryInstance, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldIP, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldPort))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.NotPredicates(p))
}
