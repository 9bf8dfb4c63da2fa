// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *IncidentUpdate) SetUserID(v string) *IncidentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableUserID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *IncidentUpdate) SetBatchID(v string) *IncidentUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableBatchID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *IncidentUpdate) SetWindowStart(v time.Time) *IncidentUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWindowStart(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *IncidentUpdate) SetWindowEnd(v time.Time) *IncidentUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWindowEnd(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IncidentUpdate) SetCreatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCreatedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *IncidentUpdate) SetWindowStartStr(v string) *IncidentUpdate {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWindowStartStr(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *IncidentUpdate) SetWindowEndStr(v string) *IncidentUpdate {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWindowEndStr(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_u *IncidentUpdate) SetCreatedAtStr(v string) *IncidentUpdate {
	_u.mutation.SetCreatedAtStr(v)
	return _u
}

// SetNillableCreatedAtStr sets the "created_at_str" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCreatedAtStr(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetCreatedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *IncidentUpdate) SetTimezone(v string) *IncidentUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTimezone(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v incident.Severity) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *incident.Severity) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *IncidentUpdate) SetConfidence(v float64) *IncidentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableConfidence(v *float64) *IncidentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *IncidentUpdate) AddConfidence(v float64) *IncidentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentUpdate) SetSummary(v string) *IncidentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSummary(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IncidentUpdate) ClearSummary() *IncidentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *IncidentUpdate) SetRootCause(v string) *IncidentUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRootCause(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *IncidentUpdate) ClearRootCause() *IncidentUpdate {
	_u.mutation.ClearRootCause()
	return _u
}

// SetContributingFactors sets the "contributing_factors" field.
func (_u *IncidentUpdate) SetContributingFactors(v []string) *IncidentUpdate {
	_u.mutation.SetContributingFactors(v)
	return _u
}

// AppendContributingFactors appends value to the "contributing_factors" field.
func (_u *IncidentUpdate) AppendContributingFactors(v []string) *IncidentUpdate {
	_u.mutation.AppendContributingFactors(v)
	return _u
}

// ClearContributingFactors clears the value of the "contributing_factors" field.
func (_u *IncidentUpdate) ClearContributingFactors() *IncidentUpdate {
	_u.mutation.ClearContributingFactors()
	return _u
}

// SetBlastRadius sets the "blast_radius" field.
func (_u *IncidentUpdate) SetBlastRadius(v string) *IncidentUpdate {
	_u.mutation.SetBlastRadius(v)
	return _u
}

// SetNillableBlastRadius sets the "blast_radius" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableBlastRadius(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetBlastRadius(*v)
	}
	return _u
}

// ClearBlastRadius clears the value of the "blast_radius" field.
func (_u *IncidentUpdate) ClearBlastRadius() *IncidentUpdate {
	_u.mutation.ClearBlastRadius()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *IncidentUpdate) SetEvidence(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *IncidentUpdate) AppendEvidence(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *IncidentUpdate) ClearEvidence() *IncidentUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetFixPlan sets the "fix_plan" field.
func (_u *IncidentUpdate) SetFixPlan(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetFixPlan(v)
	return _u
}

// ClearFixPlan clears the value of the "fix_plan" field.
func (_u *IncidentUpdate) ClearFixPlan() *IncidentUpdate {
	_u.mutation.ClearFixPlan()
	return _u
}

// SetClusters sets the "clusters" field.
func (_u *IncidentUpdate) SetClusters(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetClusters(v)
	return _u
}

// AppendClusters appends value to the "clusters" field.
func (_u *IncidentUpdate) AppendClusters(v []map[string]interface{}) *IncidentUpdate {
	_u.mutation.AppendClusters(v)
	return _u
}

// ClearClusters clears the value of the "clusters" field.
func (_u *IncidentUpdate) ClearClusters() *IncidentUpdate {
	_u.mutation.ClearClusters()
	return _u
}

// SetRawAnalysis sets the "raw_analysis" field.
func (_u *IncidentUpdate) SetRawAnalysis(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetRawAnalysis(v)
	return _u
}

// ClearRawAnalysis clears the value of the "raw_analysis" field.
func (_u *IncidentUpdate) ClearRawAnalysis() *IncidentUpdate {
	_u.mutation.ClearRawAnalysis()
	return _u
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_u *IncidentUpdate) SetPrimaryInstance(v string) *IncidentUpdate {
	_u.mutation.SetPrimaryInstance(v)
	return _u
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePrimaryInstance(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetPrimaryInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *IncidentUpdate) SetIP(v string) *IncidentUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableIP(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *IncidentUpdate) ClearIP() *IncidentUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *IncidentUpdate) SetPort(v int) *IncidentUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePort(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *IncidentUpdate) AddPort(v int) *IncidentUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *IncidentUpdate) ClearPort() *IncidentUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IncidentUpdate) SetSessionID(v string) *IncidentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSessionID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(incident.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(incident.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(incident.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(incident.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(incident.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAtStr(); ok {
		_spec.SetField(incident.FieldCreatedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(incident.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(incident.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(incident.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incident.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(incident.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(incident.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.ContributingFactors(); ok {
		_spec.SetField(incident.FieldContributingFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContributingFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldContributingFactors, value)
		})
	}
	if _u.mutation.ContributingFactorsCleared() {
		_spec.ClearField(incident.FieldContributingFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlastRadius(); ok {
		_spec.SetField(incident.FieldBlastRadius, field.TypeString, value)
	}
	if _u.mutation.BlastRadiusCleared() {
		_spec.ClearField(incident.FieldBlastRadius, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(incident.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(incident.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.FixPlan(); ok {
		_spec.SetField(incident.FieldFixPlan, field.TypeJSON, value)
	}
	if _u.mutation.FixPlanCleared() {
		_spec.ClearField(incident.FieldFixPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Clusters(); ok {
		_spec.SetField(incident.FieldClusters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClusters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldClusters, value)
		})
	}
	if _u.mutation.ClustersCleared() {
		_spec.ClearField(incident.FieldClusters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawAnalysis(); ok {
		_spec.SetField(incident.FieldRawAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RawAnalysisCleared() {
		_spec.ClearField(incident.FieldRawAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryInstance(); ok {
		_spec.SetField(incident.FieldPrimaryInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(incident.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(incident.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(incident.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(incident.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(incident.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(incident.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetUserID sets the "user_id" field.
func (_u *IncidentUpdateOne) SetUserID(v string) *IncidentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableUserID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *IncidentUpdateOne) SetBatchID(v string) *IncidentUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableBatchID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *IncidentUpdateOne) SetWindowStart(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWindowStart(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *IncidentUpdateOne) SetWindowEnd(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWindowEnd(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IncidentUpdateOne) SetCreatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCreatedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *IncidentUpdateOne) SetWindowStartStr(v string) *IncidentUpdateOne {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWindowStartStr(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *IncidentUpdateOne) SetWindowEndStr(v string) *IncidentUpdateOne {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWindowEndStr(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_u *IncidentUpdateOne) SetCreatedAtStr(v string) *IncidentUpdateOne {
	_u.mutation.SetCreatedAtStr(v)
	return _u
}

// SetNillableCreatedAtStr sets the "created_at_str" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCreatedAtStr(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetCreatedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *IncidentUpdateOne) SetTimezone(v string) *IncidentUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTimezone(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v incident.Severity) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *incident.Severity) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *IncidentUpdateOne) SetConfidence(v float64) *IncidentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableConfidence(v *float64) *IncidentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *IncidentUpdateOne) AddConfidence(v float64) *IncidentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentUpdateOne) SetSummary(v string) *IncidentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSummary(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IncidentUpdateOne) ClearSummary() *IncidentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *IncidentUpdateOne) SetRootCause(v string) *IncidentUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRootCause(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *IncidentUpdateOne) ClearRootCause() *IncidentUpdateOne {
	_u.mutation.ClearRootCause()
	return _u
}

// SetContributingFactors sets the "contributing_factors" field.
func (_u *IncidentUpdateOne) SetContributingFactors(v []string) *IncidentUpdateOne {
	_u.mutation.SetContributingFactors(v)
	return _u
}

// AppendContributingFactors appends value to the "contributing_factors" field.
func (_u *IncidentUpdateOne) AppendContributingFactors(v []string) *IncidentUpdateOne {
	_u.mutation.AppendContributingFactors(v)
	return _u
}

// ClearContributingFactors clears the value of the "contributing_factors" field.
func (_u *IncidentUpdateOne) ClearContributingFactors() *IncidentUpdateOne {
	_u.mutation.ClearContributingFactors()
	return _u
}

// SetBlastRadius sets the "blast_radius" field.
func (_u *IncidentUpdateOne) SetBlastRadius(v string) *IncidentUpdateOne {
	_u.mutation.SetBlastRadius(v)
	return _u
}

// SetNillableBlastRadius sets the "blast_radius" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableBlastRadius(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetBlastRadius(*v)
	}
	return _u
}

// ClearBlastRadius clears the value of the "blast_radius" field.
func (_u *IncidentUpdateOne) ClearBlastRadius() *IncidentUpdateOne {
	_u.mutation.ClearBlastRadius()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *IncidentUpdateOne) SetEvidence(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *IncidentUpdateOne) AppendEvidence(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *IncidentUpdateOne) ClearEvidence() *IncidentUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetFixPlan sets the "fix_plan" field.
func (_u *IncidentUpdateOne) SetFixPlan(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetFixPlan(v)
	return _u
}

// ClearFixPlan clears the value of the "fix_plan" field.
func (_u *IncidentUpdateOne) ClearFixPlan() *IncidentUpdateOne {
	_u.mutation.ClearFixPlan()
	return _u
}

// SetClusters sets the "clusters" field.
func (_u *IncidentUpdateOne) SetClusters(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetClusters(v)
	return _u
}

// AppendClusters appends value to the "clusters" field.
func (_u *IncidentUpdateOne) AppendClusters(v []map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.AppendClusters(v)
	return _u
}

// ClearClusters clears the value of the "clusters" field.
func (_u *IncidentUpdateOne) ClearClusters() *IncidentUpdateOne {
	_u.mutation.ClearClusters()
	return _u
}

// SetRawAnalysis sets the "raw_analysis" field.
func (_u *IncidentUpdateOne) SetRawAnalysis(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetRawAnalysis(v)
	return _u
}

// ClearRawAnalysis clears the value of the "raw_analysis" field.
func (_u *IncidentUpdateOne) ClearRawAnalysis() *IncidentUpdateOne {
	_u.mutation.ClearRawAnalysis()
	return _u
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_u *IncidentUpdateOne) SetPrimaryInstance(v string) *IncidentUpdateOne {
	_u.mutation.SetPrimaryInstance(v)
	return _u
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePrimaryInstance(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetPrimaryInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *IncidentUpdateOne) SetIP(v string) *IncidentUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableIP(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *IncidentUpdateOne) ClearIP() *IncidentUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *IncidentUpdateOne) SetPort(v int) *IncidentUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePort(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *IncidentUpdateOne) AddPort(v int) *IncidentUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *IncidentUpdateOne) ClearPort() *IncidentUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IncidentUpdateOne) SetSessionID(v string) *IncidentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSessionID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
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
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(incident.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(incident.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(incident.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(incident.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(incident.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAtStr(); ok {
		_spec.SetField(incident.FieldCreatedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(incident.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(incident.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(incident.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incident.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(incident.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(incident.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.ContributingFactors(); ok {
		_spec.SetField(incident.FieldContributingFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContributingFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldContributingFactors, value)
		})
	}
	if _u.mutation.ContributingFactorsCleared() {
		_spec.ClearField(incident.FieldContributingFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlastRadius(); ok {
		_spec.SetField(incident.FieldBlastRadius, field.TypeString, value)
	}
	if _u.mutation.BlastRadiusCleared() {
		_spec.ClearField(incident.FieldBlastRadius, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(incident.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(incident.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.FixPlan(); ok {
		_spec.SetField(incident.FieldFixPlan, field.TypeJSON, value)
	}
	if _u.mutation.FixPlanCleared() {
		_spec.ClearField(incident.FieldFixPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Clusters(); ok {
		_spec.SetField(incident.FieldClusters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClusters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldClusters, value)
		})
	}
	if _u.mutation.ClustersCleared() {
		_spec.ClearField(incident.FieldClusters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawAnalysis(); ok {
		_spec.SetField(incident.FieldRawAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RawAnalysisCleared() {
		_spec.ClearField(incident.FieldRawAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryInstance(); ok {
		_spec.SetField(incident.FieldPrimaryInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(incident.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(incident.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(incident.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(incident.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(incident.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(incident.FieldSessionID, field.TypeString, value)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
