// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/predicate"
)

// AnomalyUpdate is the builder for updating Anomaly entities.
type AnomalyUpdate struct {
	config
	hooks    []Hook
	mutation *AnomalyMutation
}

// Where appends a list predicates to the AnomalyUpdate builder.
func (_u *AnomalyUpdate) Where(ps ...predicate.Anomaly) *AnomalyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnomalyUpdate) SetUserID(v string) *AnomalyUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableUserID(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *AnomalyUpdate) SetBatchID(v string) *AnomalyUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableBatchID(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AnomalyUpdate) SetIncidentID(v string) *AnomalyUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableIncidentID(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetMetric sets the "metric" field.
func (_u *AnomalyUpdate) SetMetric(v string) *AnomalyUpdate {
	_u.mutation.SetMetric(v)
	return _u
}

// SetNillableMetric sets the "metric" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableMetric(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetMetric(*v)
	}
	return _u
}

// SetInstance sets the "instance" field.
func (_u *AnomalyUpdate) SetInstance(v string) *AnomalyUpdate {
	_u.mutation.SetInstance(v)
	return _u
}

// SetNillableInstance sets the "instance" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableInstance(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *AnomalyUpdate) SetIP(v string) *AnomalyUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableIP(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *AnomalyUpdate) ClearIP() *AnomalyUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *AnomalyUpdate) SetPort(v int) *AnomalyUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillablePort(v *int) *AnomalyUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *AnomalyUpdate) AddPort(v int) *AnomalyUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *AnomalyUpdate) ClearPort() *AnomalyUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetObserved sets the "observed" field.
func (_u *AnomalyUpdate) SetObserved(v float64) *AnomalyUpdate {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableObserved(v *float64) *AnomalyUpdate {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *AnomalyUpdate) AddObserved(v float64) *AnomalyUpdate {
	_u.mutation.AddObserved(v)
	return _u
}

// ClearObserved clears the value of the "observed" field.
func (_u *AnomalyUpdate) ClearObserved() *AnomalyUpdate {
	_u.mutation.ClearObserved()
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AnomalyUpdate) SetExpected(v string) *AnomalyUpdate {
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableExpected(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// ClearExpected clears the value of the "expected" field.
func (_u *AnomalyUpdate) ClearExpected() *AnomalyUpdate {
	_u.mutation.ClearExpected()
	return _u
}

// SetSymptom sets the "symptom" field.
func (_u *AnomalyUpdate) SetSymptom(v string) *AnomalyUpdate {
	_u.mutation.SetSymptom(v)
	return _u
}

// SetNillableSymptom sets the "symptom" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableSymptom(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetSymptom(*v)
	}
	return _u
}

// ClearSymptom clears the value of the "symptom" field.
func (_u *AnomalyUpdate) ClearSymptom() *AnomalyUpdate {
	_u.mutation.ClearSymptom()
	return _u
}

// SetCluster sets the "cluster" field.
func (_u *AnomalyUpdate) SetCluster(v string) *AnomalyUpdate {
	_u.mutation.SetCluster(v)
	return _u
}

// SetNillableCluster sets the "cluster" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableCluster(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetCluster(*v)
	}
	return _u
}

// ClearCluster clears the value of the "cluster" field.
func (_u *AnomalyUpdate) ClearCluster() *AnomalyUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AnomalyUpdate) SetSeverity(v string) *AnomalyUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableSeverity(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnomalyUpdate) SetCreatedAt(v time.Time) *AnomalyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableCreatedAt(v *time.Time) *AnomalyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_u *AnomalyUpdate) SetCreatedAtStr(v string) *AnomalyUpdate {
	_u.mutation.SetCreatedAtStr(v)
	return _u
}

// SetNillableCreatedAtStr sets the "created_at_str" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableCreatedAtStr(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetCreatedAtStr(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *AnomalyUpdate) SetWindowStartStr(v string) *AnomalyUpdate {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableWindowStartStr(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *AnomalyUpdate) SetWindowEndStr(v string) *AnomalyUpdate {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableWindowEndStr(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AnomalyUpdate) SetTimezone(v string) *AnomalyUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableTimezone(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnomalyUpdate) SetSessionID(v string) *AnomalyUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnomalyUpdate) SetNillableSessionID(v *string) *AnomalyUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the AnomalyMutation object of the builder.
func (_u *AnomalyUpdate) Mutation() *AnomalyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnomalyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnomalyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnomalyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(anomaly.Table, anomaly.Columns, sqlgraph.NewFieldSpec(anomaly.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(anomaly.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(anomaly.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(anomaly.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metric(); ok {
		_spec.SetField(anomaly.FieldMetric, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instance(); ok {
		_spec.SetField(anomaly.FieldInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(anomaly.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(anomaly.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(anomaly.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(anomaly.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(anomaly.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(anomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(anomaly.FieldObserved, field.TypeFloat64, value)
	}
	if _u.mutation.ObservedCleared() {
		_spec.ClearField(anomaly.FieldObserved, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(anomaly.FieldExpected, field.TypeString, value)
	}
	if _u.mutation.ExpectedCleared() {
		_spec.ClearField(anomaly.FieldExpected, field.TypeString)
	}
	if value, ok := _u.mutation.Symptom(); ok {
		_spec.SetField(anomaly.FieldSymptom, field.TypeString, value)
	}
	if _u.mutation.SymptomCleared() {
		_spec.ClearField(anomaly.FieldSymptom, field.TypeString)
	}
	if value, ok := _u.mutation.Cluster(); ok {
		_spec.SetField(anomaly.FieldCluster, field.TypeString, value)
	}
	if _u.mutation.ClusterCleared() {
		_spec.ClearField(anomaly.FieldCluster, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(anomaly.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(anomaly.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAtStr(); ok {
		_spec.SetField(anomaly.FieldCreatedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(anomaly.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(anomaly.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(anomaly.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(anomaly.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnomalyUpdateOne is the builder for updating a single Anomaly entity.
type AnomalyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnomalyMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnomalyUpdateOne) SetUserID(v string) *AnomalyUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableUserID(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *AnomalyUpdateOne) SetBatchID(v string) *AnomalyUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableBatchID(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AnomalyUpdateOne) SetIncidentID(v string) *AnomalyUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableIncidentID(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetMetric sets the "metric" field.
func (_u *AnomalyUpdateOne) SetMetric(v string) *AnomalyUpdateOne {
	_u.mutation.SetMetric(v)
	return _u
}

// SetNillableMetric sets the "metric" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableMetric(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetMetric(*v)
	}
	return _u
}

// SetInstance sets the "instance" field.
func (_u *AnomalyUpdateOne) SetInstance(v string) *AnomalyUpdateOne {
	_u.mutation.SetInstance(v)
	return _u
}

// SetNillableInstance sets the "instance" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableInstance(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *AnomalyUpdateOne) SetIP(v string) *AnomalyUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableIP(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *AnomalyUpdateOne) ClearIP() *AnomalyUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *AnomalyUpdateOne) SetPort(v int) *AnomalyUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillablePort(v *int) *AnomalyUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *AnomalyUpdateOne) AddPort(v int) *AnomalyUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *AnomalyUpdateOne) ClearPort() *AnomalyUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetObserved sets the "observed" field.
func (_u *AnomalyUpdateOne) SetObserved(v float64) *AnomalyUpdateOne {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableObserved(v *float64) *AnomalyUpdateOne {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *AnomalyUpdateOne) AddObserved(v float64) *AnomalyUpdateOne {
	_u.mutation.AddObserved(v)
	return _u
}

// ClearObserved clears the value of the "observed" field.
func (_u *AnomalyUpdateOne) ClearObserved() *AnomalyUpdateOne {
	_u.mutation.ClearObserved()
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AnomalyUpdateOne) SetExpected(v string) *AnomalyUpdateOne {
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableExpected(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// ClearExpected clears the value of the "expected" field.
func (_u *AnomalyUpdateOne) ClearExpected() *AnomalyUpdateOne {
	_u.mutation.ClearExpected()
	return _u
}

// SetSymptom sets the "symptom" field.
func (_u *AnomalyUpdateOne) SetSymptom(v string) *AnomalyUpdateOne {
	_u.mutation.SetSymptom(v)
	return _u
}

// SetNillableSymptom sets the "symptom" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableSymptom(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetSymptom(*v)
	}
	return _u
}

// ClearSymptom clears the value of the "symptom" field.
func (_u *AnomalyUpdateOne) ClearSymptom() *AnomalyUpdateOne {
	_u.mutation.ClearSymptom()
	return _u
}

// SetCluster sets the "cluster" field.
func (_u *AnomalyUpdateOne) SetCluster(v string) *AnomalyUpdateOne {
	_u.mutation.SetCluster(v)
	return _u
}

// SetNillableCluster sets the "cluster" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableCluster(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetCluster(*v)
	}
	return _u
}

// ClearCluster clears the value of the "cluster" field.
func (_u *AnomalyUpdateOne) ClearCluster() *AnomalyUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AnomalyUpdateOne) SetSeverity(v string) *AnomalyUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableSeverity(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnomalyUpdateOne) SetCreatedAt(v time.Time) *AnomalyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableCreatedAt(v *time.Time) *AnomalyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_u *AnomalyUpdateOne) SetCreatedAtStr(v string) *AnomalyUpdateOne {
	_u.mutation.SetCreatedAtStr(v)
	return _u
}

// SetNillableCreatedAtStr sets the "created_at_str" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableCreatedAtStr(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetCreatedAtStr(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *AnomalyUpdateOne) SetWindowStartStr(v string) *AnomalyUpdateOne {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableWindowStartStr(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *AnomalyUpdateOne) SetWindowEndStr(v string) *AnomalyUpdateOne {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableWindowEndStr(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AnomalyUpdateOne) SetTimezone(v string) *AnomalyUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableTimezone(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnomalyUpdateOne) SetSessionID(v string) *AnomalyUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnomalyUpdateOne) SetNillableSessionID(v *string) *AnomalyUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the AnomalyMutation object of the builder.
func (_u *AnomalyUpdateOne) Mutation() *AnomalyMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnomalyUpdate builder.
func (_u *AnomalyUpdateOne) Where(ps ...predicate.Anomaly) *AnomalyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnomalyUpdateOne) Select(field string, fields ...string) *AnomalyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Anomaly entity.
func (_u *AnomalyUpdateOne) Save(ctx context.Context) (*Anomaly, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyUpdateOne) SaveX(ctx context.Context) *Anomaly {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnomalyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnomalyUpdateOne) sqlSave(ctx context.Context) (_node *Anomaly, err error) {
	_spec := sqlgraph.NewUpdateSpec(anomaly.Table, anomaly.Columns, sqlgraph.NewFieldSpec(anomaly.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Anomaly.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anomaly.FieldID)
		for _, f := range fields {
			if !anomaly.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anomaly.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(anomaly.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(anomaly.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(anomaly.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metric(); ok {
		_spec.SetField(anomaly.FieldMetric, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instance(); ok {
		_spec.SetField(anomaly.FieldInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(anomaly.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(anomaly.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(anomaly.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(anomaly.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(anomaly.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(anomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(anomaly.FieldObserved, field.TypeFloat64, value)
	}
	if _u.mutation.ObservedCleared() {
		_spec.ClearField(anomaly.FieldObserved, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(anomaly.FieldExpected, field.TypeString, value)
	}
	if _u.mutation.ExpectedCleared() {
		_spec.ClearField(anomaly.FieldExpected, field.TypeString)
	}
	if value, ok := _u.mutation.Symptom(); ok {
		_spec.SetField(anomaly.FieldSymptom, field.TypeString, value)
	}
	if _u.mutation.SymptomCleared() {
		_spec.ClearField(anomaly.FieldSymptom, field.TypeString)
	}
	if value, ok := _u.mutation.Cluster(); ok {
		_spec.SetField(anomaly.FieldCluster, field.TypeString, value)
	}
	if _u.mutation.ClusterCleared() {
		_spec.ClearField(anomaly.FieldCluster, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(anomaly.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(anomaly.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAtStr(); ok {
		_spec.SetField(anomaly.FieldCreatedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(anomaly.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(anomaly.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(anomaly.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(anomaly.FieldSessionID, field.TypeString, value)
	}
	_node = &Anomaly{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
