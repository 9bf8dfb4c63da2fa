// Code generated by ent, DO NOT EDIT.

package anomaly

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldUserID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldBatchID, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldIncidentID, v))
}

// Metric applies equality check predicate on the "metric" field. It's identical to MetricEQ.
func Metric(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldMetric, v))
}

// Instance applies equality check predicate on the "instance" field. It's identical to InstanceEQ.
func Instance(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldInstance, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldIP, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldPort, v))
}

// Observed applies equality check predicate on the "observed" field. It's identical to ObservedEQ.
func Observed(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldObserved, v))
}

// Expected applies equality check predicate on the "expected" field. It's identical to ExpectedEQ.
func Expected(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldExpected, v))
}

// Symptom applies equality check predicate on the "symptom" field. It's identical to SymptomEQ.
func Symptom(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSymptom, v))
}

// Cluster applies equality check predicate on the "cluster" field. It's identical to ClusterEQ.
func Cluster(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCluster, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSeverity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtStr applies equality check predicate on the "created_at_str" field. It's identical to CreatedAtStrEQ.
func CreatedAtStr(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCreatedAtStr, v))
}

// WindowStartStr applies equality check predicate on the "window_start_str" field. It's identical to WindowStartStrEQ.
func WindowStartStr(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowEndStr applies equality check predicate on the "window_end_str" field. It's identical to WindowEndStrEQ.
func WindowEndStr(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldWindowEndStr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldTimezone, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldUserID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldBatchID, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldIncidentID, v))
}

// MetricEQ applies the EQ predicate on the "metric" field.
func MetricEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldMetric, v))
}

// MetricNEQ applies the NEQ predicate on the "metric" field.
func MetricNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldMetric, v))
}

// MetricIn applies the In predicate on the "metric" field.
func MetricIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldMetric, vs...))
}

// MetricNotIn applies the NotIn predicate on the "metric" field.
func MetricNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldMetric, vs...))
}

// MetricGT applies the GT predicate on the "metric" field.
func MetricGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldMetric, v))
}

// MetricGTE applies the GTE predicate on the "metric" field.
func MetricGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldMetric, v))
}

// MetricLT applies the LT predicate on the "metric" field.
func MetricLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldMetric, v))
}

// MetricLTE applies the LTE predicate on the "metric" field.
func MetricLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldMetric, v))
}

// MetricContains applies the Contains predicate on the "metric" field.
func MetricContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldMetric, v))
}

// MetricHasPrefix applies the HasPrefix predicate on the "metric" field.
func MetricHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldMetric, v))
}

// MetricHasSuffix applies the HasSuffix predicate on the "metric" field.
func MetricHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldMetric, v))
}

// MetricEqualFold applies the EqualFold predicate on the "metric" field.
func MetricEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldMetric, v))
}

// MetricContainsFold applies the ContainsFold predicate on the "metric" field.
func MetricContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldMetric, v))
}

// InstanceEQ applies the EQ predicate on the "instance" field.
func InstanceEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldInstance, v))
}

// InstanceNEQ applies the NEQ predicate on the "instance" field.
func InstanceNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldInstance, v))
}

// InstanceIn applies the In predicate on the "instance" field.
func InstanceIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldInstance, vs...))
}

// InstanceNotIn applies the NotIn predicate on the "instance" field.
func InstanceNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldInstance, vs...))
}

// InstanceGT applies the GT predicate on the "instance" field.
func InstanceGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldInstance, v))
}

// InstanceGTE applies the GTE predicate on the "instance" field.
func InstanceGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldInstance, v))
}

// InstanceLT applies the LT predicate on the "instance" field.
func InstanceLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldInstance, v))
}

// InstanceLTE applies the LTE predicate on the "instance" field.
func InstanceLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldInstance, v))
}

// InstanceContains applies the Contains predicate on the "instance" field.
func InstanceContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldInstance, v))
}

// InstanceHasPrefix applies the HasPrefix predicate on the "instance" field.
func InstanceHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldInstance, v))
}

// InstanceHasSuffix applies the HasSuffix predicate on the "instance" field.
func InstanceHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldInstance, v))
}

// InstanceEqualFold applies the EqualFold predicate on the "instance" field.
func InstanceEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldInstance, v))
}

// InstanceContainsFold applies the ContainsFold predicate on the "instance" field.
func InstanceContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldInstance, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldIP, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldPort))
}

// ObservedEQ applies the EQ predicate on the "observed" field.
func ObservedEQ(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldObserved, v))
}

// ObservedNEQ applies the NEQ predicate on the "observed" field.
func ObservedNEQ(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldObserved, v))
}

// ObservedIn applies the In predicate on the "observed" field.
func ObservedIn(vs ...float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldObserved, vs...))
}

// ObservedNotIn applies the NotIn predicate on the "observed" field.
func ObservedNotIn(vs ...float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldObserved, vs...))
}

// ObservedGT applies the GT predicate on the "observed" field.
func ObservedGT(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldObserved, v))
}

// ObservedGTE applies the GTE predicate on the "observed" field.
func ObservedGTE(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldObserved, v))
}

// ObservedLT applies the LT predicate on the "observed" field.
func ObservedLT(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldObserved, v))
}

// ObservedLTE applies the LTE predicate on the "observed" field.
func ObservedLTE(v float64) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldObserved, v))
}

// ObservedIsNil applies the IsNil predicate on the "observed" field.
func ObservedIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldObserved))
}

// ObservedNotNil applies the NotNil predicate on the "observed" field.
func ObservedNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldObserved))
}

// ExpectedEQ applies the EQ predicate on the "expected" field.
func ExpectedEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldExpected, v))
}

// ExpectedNEQ applies the NEQ predicate on the "expected" field.
func ExpectedNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldExpected, v))
}

// ExpectedIn applies the In predicate on the "expected" field.
func ExpectedIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldExpected, vs...))
}

// ExpectedNotIn applies the NotIn predicate on the "expected" field.
func ExpectedNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldExpected, vs...))
}

// ExpectedGT applies the GT predicate on the "expected" field.
func ExpectedGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldExpected, v))
}

// ExpectedGTE applies the GTE predicate on the "expected" field.
func ExpectedGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldExpected, v))
}

// ExpectedLT applies the LT predicate on the "expected" field.
func ExpectedLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldExpected, v))
}

// ExpectedLTE applies the LTE predicate on the "expected" field.
func ExpectedLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldExpected, v))
}

// ExpectedContains applies the Contains predicate on the "expected" field.
func ExpectedContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldExpected, v))
}

// ExpectedHasPrefix applies the HasPrefix predicate on the "expected" field.
func ExpectedHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldExpected, v))
}

// ExpectedHasSuffix applies the HasSuffix predicate on the "expected" field.
func ExpectedHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldExpected, v))
}

// ExpectedIsNil applies the IsNil predicate on the "expected" field.
func ExpectedIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldExpected))
}

// ExpectedNotNil applies the NotNil predicate on the "expected" field.
func ExpectedNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldExpected))
}

// ExpectedEqualFold applies the EqualFold predicate on the "expected" field.
func ExpectedEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldExpected, v))
}

// ExpectedContainsFold applies the ContainsFold predicate on the "expected" field.
func ExpectedContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldExpected, v))
}

// SymptomEQ applies the EQ predicate on the "symptom" field.
func SymptomEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSymptom, v))
}

// SymptomNEQ applies the NEQ predicate on the "symptom" field.
func SymptomNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldSymptom, v))
}

// SymptomIn applies the In predicate on the "symptom" field.
func SymptomIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldSymptom, vs...))
}

// SymptomNotIn applies the NotIn predicate on the "symptom" field.
func SymptomNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldSymptom, vs...))
}

// SymptomGT applies the GT predicate on the "symptom" field.
func SymptomGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldSymptom, v))
}

// SymptomGTE applies the GTE predicate on the "symptom" field.
func SymptomGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldSymptom, v))
}

// SymptomLT applies the LT predicate on the "symptom" field.
func SymptomLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldSymptom, v))
}

// SymptomLTE applies the LTE predicate on the "symptom" field.
func SymptomLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldSymptom, v))
}

// SymptomContains applies the Contains predicate on the "symptom" field.
func SymptomContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldSymptom, v))
}

// SymptomHasPrefix applies the HasPrefix predicate on the "symptom" field.
func SymptomHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldSymptom, v))
}

// SymptomHasSuffix applies the HasSuffix predicate on the "symptom" field.
func SymptomHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldSymptom, v))
}

// SymptomIsNil applies the IsNil predicate on the "symptom" field.
func SymptomIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldSymptom))
}

// SymptomNotNil applies the NotNil predicate on the "symptom" field.
func SymptomNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldSymptom))
}

// SymptomEqualFold applies the EqualFold predicate on the "symptom" field.
func SymptomEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldSymptom, v))
}

// SymptomContainsFold applies the ContainsFold predicate on the "symptom" field.
func SymptomContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldSymptom, v))
}

// ClusterEQ applies the EQ predicate on the "cluster" field.
func ClusterEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCluster, v))
}

// ClusterNEQ applies the NEQ predicate on the "cluster" field.
func ClusterNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldCluster, v))
}

// ClusterIn applies the In predicate on the "cluster" field.
func ClusterIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldCluster, vs...))
}

// ClusterNotIn applies the NotIn predicate on the "cluster" field.
func ClusterNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldCluster, vs...))
}

// ClusterGT applies the GT predicate on the "cluster" field.
func ClusterGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldCluster, v))
}

// ClusterGTE applies the GTE predicate on the "cluster" field.
func ClusterGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldCluster, v))
}

// ClusterLT applies the LT predicate on the "cluster" field.
func ClusterLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldCluster, v))
}

// ClusterLTE applies the LTE predicate on the "cluster" field.
func ClusterLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldCluster, v))
}

// ClusterContains applies the Contains predicate on the "cluster" field.
func ClusterContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldCluster, v))
}

// ClusterHasPrefix applies the HasPrefix predicate on the "cluster" field.
func ClusterHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldCluster, v))
}

// ClusterHasSuffix applies the HasSuffix predicate on the "cluster" field.
func ClusterHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldCluster, v))
}

// ClusterIsNil applies the IsNil predicate on the "cluster" field.
func ClusterIsNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIsNull(FieldCluster))
}

// ClusterNotNil applies the NotNil predicate on the "cluster" field.
func ClusterNotNil() predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotNull(FieldCluster))
}

// ClusterEqualFold applies the EqualFold predicate on the "cluster" field.
func ClusterEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldCluster, v))
}

// ClusterContainsFold applies the ContainsFold predicate on the "cluster" field.
func ClusterContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldCluster, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldSeverity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldCreatedAt, v))
}

// CreatedAtStrEQ applies the EQ predicate on the "created_at_str" field.
func CreatedAtStrEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldCreatedAtStr, v))
}

// CreatedAtStrNEQ applies the NEQ predicate on the "created_at_str" field.
func CreatedAtStrNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldCreatedAtStr, v))
}

// CreatedAtStrIn applies the In predicate on the "created_at_str" field.
func CreatedAtStrIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldCreatedAtStr, vs...))
}

// CreatedAtStrNotIn applies the NotIn predicate on the "created_at_str" field.
func CreatedAtStrNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldCreatedAtStr, vs...))
}

// CreatedAtStrGT applies the GT predicate on the "created_at_str" field.
func CreatedAtStrGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldCreatedAtStr, v))
}

// CreatedAtStrGTE applies the GTE predicate on the "created_at_str" field.
func CreatedAtStrGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldCreatedAtStr, v))
}

// CreatedAtStrLT applies the LT predicate on the "created_at_str" field.
func CreatedAtStrLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldCreatedAtStr, v))
}

// CreatedAtStrLTE applies the LTE predicate on the "created_at_str" field.
func CreatedAtStrLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldCreatedAtStr, v))
}

// CreatedAtStrContains applies the Contains predicate on the "created_at_str" field.
func CreatedAtStrContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldCreatedAtStr, v))
}

// CreatedAtStrHasPrefix applies the HasPrefix predicate on the "created_at_str" field.
func CreatedAtStrHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldCreatedAtStr, v))
}

// CreatedAtStrHasSuffix applies the HasSuffix predicate on the "created_at_str" field.
func CreatedAtStrHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldCreatedAtStr, v))
}

// CreatedAtStrEqualFold applies the EqualFold predicate on the "created_at_str" field.
func CreatedAtStrEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldCreatedAtStr, v))
}

// CreatedAtStrContainsFold applies the ContainsFold predicate on the "created_at_str" field.
func CreatedAtStrContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldCreatedAtStr, v))
}

// WindowStartStrEQ applies the EQ predicate on the "window_start_str" field.
func WindowStartStrEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldWindowStartStr, v))
}

// WindowStartStrNEQ applies the NEQ predicate on the "window_start_str" field.
func WindowStartStrNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldWindowStartStr, v))
}

// WindowStartStrIn applies the In predicate on the "window_start_str" field.
func WindowStartStrIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldWindowStartStr, vs...))
}

// WindowStartStrNotIn applies the NotIn predicate on the "window_start_str" field.
func WindowStartStrNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldWindowStartStr, vs...))
}

// WindowStartStrGT applies the GT predicate on the "window_start_str" field.
func WindowStartStrGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldWindowStartStr, v))
}

// WindowStartStrGTE applies the GTE predicate on the "window_start_str" field.
func WindowStartStrGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldWindowStartStr, v))
}

// WindowStartStrLT applies the LT predicate on the "window_start_str" field.
func WindowStartStrLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldWindowStartStr, v))
}

// WindowStartStrLTE applies the LTE predicate on the "window_start_str" field.
func WindowStartStrLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldWindowStartStr, v))
}

// WindowStartStrContains applies the Contains predicate on the "window_start_str" field.
func WindowStartStrContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldWindowStartStr, v))
}

// WindowStartStrHasPrefix applies the HasPrefix predicate on the "window_start_str" field.
func WindowStartStrHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldWindowStartStr, v))
}

// WindowStartStrHasSuffix applies the HasSuffix predicate on the "window_start_str" field.
func WindowStartStrHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldWindowStartStr, v))
}

// WindowStartStrEqualFold applies the EqualFold predicate on the "window_start_str" field.
func WindowStartStrEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldWindowStartStr, v))
}

// WindowStartStrContainsFold applies the ContainsFold predicate on the "window_start_str" field.
func WindowStartStrContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldWindowStartStr, v))
}

// WindowEndStrEQ applies the EQ predicate on the "window_end_str" field.
func WindowEndStrEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldWindowEndStr, v))
}

// WindowEndStrNEQ applies the NEQ predicate on the "window_end_str" field.
func WindowEndStrNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldWindowEndStr, v))
}

// WindowEndStrIn applies the In predicate on the "window_end_str" field.
func WindowEndStrIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldWindowEndStr, vs...))
}

// WindowEndStrNotIn applies the NotIn predicate on the "window_end_str" field.
func WindowEndStrNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldWindowEndStr, vs...))
}

// WindowEndStrGT applies the GT predicate on the "window_end_str" field.
func WindowEndStrGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldWindowEndStr, v))
}

// WindowEndStrGTE applies the GTE predicate on the "window_end_str" field.
func WindowEndStrGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldWindowEndStr, v))
}

// WindowEndStrLT applies the LT predicate on the "window_end_str" field.
func WindowEndStrLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldWindowEndStr, v))
}

// WindowEndStrLTE applies the LTE predicate on the "window_end_str" field.
func WindowEndStrLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldWindowEndStr, v))
}

// WindowEndStrContains applies the Contains predicate on the "window_end_str" field.
func WindowEndStrContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldWindowEndStr, v))
}

// WindowEndStrHasPrefix applies the HasPrefix predicate on the "window_end_str" field.
func WindowEndStrHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldWindowEndStr, v))
}

// WindowEndStrHasSuffix applies the HasSuffix predicate on the "window_end_str" field.
func WindowEndStrHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldWindowEndStr, v))
}

// WindowEndStrEqualFold applies the EqualFold predicate on the "window_end_str" field.
func WindowEndStrEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldWindowEndStr, v))
}

// WindowEndStrContainsFold applies the ContainsFold predicate on the "window_end_str" field.
func WindowEndStrContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldWindowEndStr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldTimezone, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Anomaly {
	return predicate.Anomaly(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Anomaly) predicate.Anomaly {
	return predicate.Anomaly(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Anomaly) predicate.Anomaly {
	return predicate.Anomaly(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Anomaly) predicate.Anomaly {
	return predicate.Anomaly(sql.NotPredicates(p))
}
