// Code generated by ent, DO NOT EDIT.

package alertwindow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldUserID, v))
}

// WindowStartStr applies equality check predicate on the "window_start_str" field. It's identical to WindowStartStrEQ.
func WindowStartStr(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowEndStr applies equality check predicate on the "window_end_str" field. It's identical to WindowEndStrEQ.
func WindowEndStr(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowEnd, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtStr applies equality check predicate on the "processed_at_str" field. It's identical to ProcessedAtStrEQ.
func ProcessedAtStr(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldProcessedAtStr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldTimezone, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldSessionID, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldIncidentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldUserID, v))
}

// WindowStartStrEQ applies the EQ predicate on the "window_start_str" field.
func WindowStartStrEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowStartStrNEQ applies the NEQ predicate on the "window_start_str" field.
func WindowStartStrNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldWindowStartStr, v))
}

// WindowStartStrIn applies the In predicate on the "window_start_str" field.
func WindowStartStrIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldWindowStartStr, vs...))
}

// WindowStartStrNotIn applies the NotIn predicate on the "window_start_str" field.
func WindowStartStrNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldWindowStartStr, vs...))
}

// WindowStartStrGT applies the GT predicate on the "window_start_str" field.
func WindowStartStrGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldWindowStartStr, v))
}

// WindowStartStrGTE applies the GTE predicate on the "window_start_str" field.
func WindowStartStrGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldWindowStartStr, v))
}

// WindowStartStrLT applies the LT predicate on the "window_start_str" field.
func WindowStartStrLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldWindowStartStr, v))
}

// WindowStartStrLTE applies the LTE predicate on the "window_start_str" field.
func WindowStartStrLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldWindowStartStr, v))
}

// WindowStartStrContains applies the Contains predicate on the "window_start_str" field.
func WindowStartStrContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldWindowStartStr, v))
}

// WindowStartStrHasPrefix applies the HasPrefix predicate on the "window_start_str" field.
func WindowStartStrHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldWindowStartStr, v))
}

// WindowStartStrHasSuffix applies the HasSuffix predicate on the "window_start_str" field.
func WindowStartStrHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldWindowStartStr, v))
}

// WindowStartStrEqualFold applies the EqualFold predicate on the "window_start_str" field.
func WindowStartStrEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldWindowStartStr, v))
}

// WindowStartStrContainsFold applies the ContainsFold predicate on the "window_start_str" field.
func WindowStartStrContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldWindowStartStr, v))
}

// WindowEndStrEQ applies the EQ predicate on the "window_end_str" field.
func WindowEndStrEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowEndStrNEQ applies the NEQ predicate on the "window_end_str" field.
func WindowEndStrNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldWindowEndStr, v))
}

// WindowEndStrIn applies the In predicate on the "window_end_str" field.
func WindowEndStrIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldWindowEndStr, vs...))
}

// WindowEndStrNotIn applies the NotIn predicate on the "window_end_str" field.
func WindowEndStrNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldWindowEndStr, vs...))
}

// WindowEndStrGT applies the GT predicate on the "window_end_str" field.
func WindowEndStrGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldWindowEndStr, v))
}

// WindowEndStrGTE applies the GTE predicate on the "window_end_str" field.
func WindowEndStrGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldWindowEndStr, v))
}

// WindowEndStrLT applies the LT predicate on the "window_end_str" field.
func WindowEndStrLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldWindowEndStr, v))
}

// WindowEndStrLTE applies the LTE predicate on the "window_end_str" field.
func WindowEndStrLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldWindowEndStr, v))
}

// WindowEndStrContains applies the Contains predicate on the "window_end_str" field.
func WindowEndStrContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldWindowEndStr, v))
}

// WindowEndStrHasPrefix applies the HasPrefix predicate on the "window_end_str" field.
func WindowEndStrHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldWindowEndStr, v))
}

// WindowEndStrHasSuffix applies the HasSuffix predicate on the "window_end_str" field.
func WindowEndStrHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldWindowEndStr, v))
}

// WindowEndStrEqualFold applies the EqualFold predicate on the "window_end_str" field.
func WindowEndStrEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldWindowEndStr, v))
}

// WindowEndStrContainsFold applies the ContainsFold predicate on the "window_end_str" field.
func WindowEndStrContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldWindowEndStr, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldWindowEnd, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtStrEQ applies the EQ predicate on the "processed_at_str" field.
func ProcessedAtStrEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldProcessedAtStr, v))
}

// ProcessedAtStrNEQ applies the NEQ predicate on the "processed_at_str" field.
func ProcessedAtStrNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldProcessedAtStr, v))
}

// ProcessedAtStrIn applies the In predicate on the "processed_at_str" field.
func ProcessedAtStrIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldProcessedAtStr, vs...))
}

// ProcessedAtStrNotIn applies the NotIn predicate on the "processed_at_str" field.
func ProcessedAtStrNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldProcessedAtStr, vs...))
}

// ProcessedAtStrGT applies the GT predicate on the "processed_at_str" field.
func ProcessedAtStrGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldProcessedAtStr, v))
}

// ProcessedAtStrGTE applies the GTE predicate on the "processed_at_str" field.
func ProcessedAtStrGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldProcessedAtStr, v))
}

// ProcessedAtStrLT applies the LT predicate on the "processed_at_str" field.
func ProcessedAtStrLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldProcessedAtStr, v))
}

// ProcessedAtStrLTE applies the LTE predicate on the "processed_at_str" field.
func ProcessedAtStrLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldProcessedAtStr, v))
}

// ProcessedAtStrContains applies the Contains predicate on the "processed_at_str" field.
func ProcessedAtStrContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldProcessedAtStr, v))
}

// ProcessedAtStrHasPrefix applies the HasPrefix predicate on the "processed_at_str" field.
func ProcessedAtStrHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldProcessedAtStr, v))
}

// ProcessedAtStrHasSuffix applies the HasSuffix predicate on the "processed_at_str" field.
func ProcessedAtStrHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldProcessedAtStr, v))
}

// ProcessedAtStrEqualFold applies the EqualFold predicate on the "processed_at_str" field.
func ProcessedAtStrEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldProcessedAtStr, v))
}

// ProcessedAtStrContainsFold applies the ContainsFold predicate on the "processed_at_str" field.
func ProcessedAtStrContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldProcessedAtStr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldTimezone, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldSessionID, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDIsNil applies the IsNil predicate on the "incident_id" field.
func IncidentIDIsNil() predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldIsNull(FieldIncidentID))
}

// IncidentIDNotNil applies the NotNil predicate on the "incident_id" field.
func IncidentIDNotNil() predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldNotNull(FieldIncidentID))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.AlertWindow {
	return predicate.AlertWindow(sql.FieldContainsFold(FieldIncidentID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertWindow) predicate.AlertWindow {
	return predicate.AlertWindow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertWindow) predicate.AlertWindow {
	return predicate.AlertWindow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertWindow) predicate.AlertWindow {
	return predicate.AlertWindow(sql.NotPredicates(p))
}
