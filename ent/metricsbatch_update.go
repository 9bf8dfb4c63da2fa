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
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/predicate"
)

// MetricsBatchUpdate is the builder for updating MetricsBatch entities.
type MetricsBatchUpdate struct {
	config
	hooks    []Hook
	mutation *MetricsBatchMutation
}

// Where appends a list predicates to the MetricsBatchUpdate builder.
func (_u *MetricsBatchUpdate) Where(ps ...predicate.MetricsBatch) *MetricsBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MetricsBatchUpdate) SetUserID(v string) *MetricsBatchUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableUserID(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *MetricsBatchUpdate) SetWindowStart(v time.Time) *MetricsBatchUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableWindowStart(v *time.Time) *MetricsBatchUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *MetricsBatchUpdate) SetWindowEnd(v time.Time) *MetricsBatchUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableWindowEnd(v *time.Time) *MetricsBatchUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *MetricsBatchUpdate) SetCollectedAt(v time.Time) *MetricsBatchUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableCollectedAt(v *time.Time) *MetricsBatchUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *MetricsBatchUpdate) SetWindowStartStr(v string) *MetricsBatchUpdate {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableWindowStartStr(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *MetricsBatchUpdate) SetWindowEndStr(v string) *MetricsBatchUpdate {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableWindowEndStr(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetCollectedAtStr sets the "collected_at_str" field.
func (_u *MetricsBatchUpdate) SetCollectedAtStr(v string) *MetricsBatchUpdate {
	_u.mutation.SetCollectedAtStr(v)
	return _u
}

// SetNillableCollectedAtStr sets the "collected_at_str" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableCollectedAtStr(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetCollectedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *MetricsBatchUpdate) SetTimezone(v string) *MetricsBatchUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableTimezone(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *MetricsBatchUpdate) SetMetrics(v []map[string]interface{}) *MetricsBatchUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *MetricsBatchUpdate) AppendMetrics(v []map[string]interface{}) *MetricsBatchUpdate {
	_u.mutation.AppendMetrics(v)
	return _u
}

// SetMetricsCount sets the "metrics_count" field.
func (_u *MetricsBatchUpdate) SetMetricsCount(v int) *MetricsBatchUpdate {
	_u.mutation.ResetMetricsCount()
	_u.mutation.SetMetricsCount(v)
	return _u
}

// SetNillableMetricsCount sets the "metrics_count" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableMetricsCount(v *int) *MetricsBatchUpdate {
	if v != nil {
		_u.SetMetricsCount(*v)
	}
	return _u
}

// AddMetricsCount adds value to the "metrics_count" field.
func (_u *MetricsBatchUpdate) AddMetricsCount(v int) *MetricsBatchUpdate {
	_u.mutation.AddMetricsCount(v)
	return _u
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_u *MetricsBatchUpdate) SetPrimaryInstance(v string) *MetricsBatchUpdate {
	_u.mutation.SetPrimaryInstance(v)
	return _u
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillablePrimaryInstance(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetPrimaryInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *MetricsBatchUpdate) SetIP(v string) *MetricsBatchUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableIP(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *MetricsBatchUpdate) ClearIP() *MetricsBatchUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *MetricsBatchUpdate) SetPort(v int) *MetricsBatchUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillablePort(v *int) *MetricsBatchUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *MetricsBatchUpdate) AddPort(v int) *MetricsBatchUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *MetricsBatchUpdate) ClearPort() *MetricsBatchUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MetricsBatchUpdate) SetSessionID(v string) *MetricsBatchUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MetricsBatchUpdate) SetNillableSessionID(v *string) *MetricsBatchUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the MetricsBatchMutation object of the builder.
func (_u *MetricsBatchUpdate) Mutation() *MetricsBatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricsBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricsBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MetricsBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(metricsbatch.Table, metricsbatch.Columns, sqlgraph.NewFieldSpec(metricsbatch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(metricsbatch.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(metricsbatch.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(metricsbatch.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectedAtStr(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(metricsbatch.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(metricsbatch.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, metricsbatch.FieldMetrics, value)
		})
	}
	if value, ok := _u.mutation.MetricsCount(); ok {
		_spec.SetField(metricsbatch.FieldMetricsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetricsCount(); ok {
		_spec.AddField(metricsbatch.FieldMetricsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrimaryInstance(); ok {
		_spec.SetField(metricsbatch.FieldPrimaryInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(metricsbatch.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(metricsbatch.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(metricsbatch.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(metricsbatch.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(metricsbatch.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(metricsbatch.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricsbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricsBatchUpdateOne is the builder for updating a single MetricsBatch entity.
type MetricsBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricsBatchMutation
}

// SetUserID sets the "user_id" field.
func (_u *MetricsBatchUpdateOne) SetUserID(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableUserID(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *MetricsBatchUpdateOne) SetWindowStart(v time.Time) *MetricsBatchUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableWindowStart(v *time.Time) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *MetricsBatchUpdateOne) SetWindowEnd(v time.Time) *MetricsBatchUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableWindowEnd(v *time.Time) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *MetricsBatchUpdateOne) SetCollectedAt(v time.Time) *MetricsBatchUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableCollectedAt(v *time.Time) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *MetricsBatchUpdateOne) SetWindowStartStr(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableWindowStartStr(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *MetricsBatchUpdateOne) SetWindowEndStr(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableWindowEndStr(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetCollectedAtStr sets the "collected_at_str" field.
func (_u *MetricsBatchUpdateOne) SetCollectedAtStr(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetCollectedAtStr(v)
	return _u
}

// SetNillableCollectedAtStr sets the "collected_at_str" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableCollectedAtStr(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetCollectedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *MetricsBatchUpdateOne) SetTimezone(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableTimezone(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *MetricsBatchUpdateOne) SetMetrics(v []map[string]interface{}) *MetricsBatchUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// AppendMetrics appends value to the "metrics" field.
func (_u *MetricsBatchUpdateOne) AppendMetrics(v []map[string]interface{}) *MetricsBatchUpdateOne {
	_u.mutation.AppendMetrics(v)
	return _u
}

// SetMetricsCount sets the "metrics_count" field.
func (_u *MetricsBatchUpdateOne) SetMetricsCount(v int) *MetricsBatchUpdateOne {
	_u.mutation.ResetMetricsCount()
	_u.mutation.SetMetricsCount(v)
	return _u
}

// SetNillableMetricsCount sets the "metrics_count" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableMetricsCount(v *int) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetMetricsCount(*v)
	}
	return _u
}

// AddMetricsCount adds value to the "metrics_count" field.
func (_u *MetricsBatchUpdateOne) AddMetricsCount(v int) *MetricsBatchUpdateOne {
	_u.mutation.AddMetricsCount(v)
	return _u
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_u *MetricsBatchUpdateOne) SetPrimaryInstance(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetPrimaryInstance(v)
	return _u
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillablePrimaryInstance(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetPrimaryInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *MetricsBatchUpdateOne) SetIP(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableIP(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *MetricsBatchUpdateOne) ClearIP() *MetricsBatchUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *MetricsBatchUpdateOne) SetPort(v int) *MetricsBatchUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillablePort(v *int) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *MetricsBatchUpdateOne) AddPort(v int) *MetricsBatchUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *MetricsBatchUpdateOne) ClearPort() *MetricsBatchUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MetricsBatchUpdateOne) SetSessionID(v string) *MetricsBatchUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MetricsBatchUpdateOne) SetNillableSessionID(v *string) *MetricsBatchUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the MetricsBatchMutation object of the builder.
func (_u *MetricsBatchUpdateOne) Mutation() *MetricsBatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the MetricsBatchUpdate builder.
func (_u *MetricsBatchUpdateOne) Where(ps ...predicate.MetricsBatch) *MetricsBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricsBatchUpdateOne) Select(field string, fields ...string) *MetricsBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetricsBatch entity.
func (_u *MetricsBatchUpdateOne) Save(ctx context.Context) (*MetricsBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsBatchUpdateOne) SaveX(ctx context.Context) *MetricsBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricsBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MetricsBatchUpdateOne) sqlSave(ctx context.Context) (_node *MetricsBatch, err error) {
	_spec := sqlgraph.NewUpdateSpec(metricsbatch.Table, metricsbatch.Columns, sqlgraph.NewFieldSpec(metricsbatch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetricsBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metricsbatch.FieldID)
		for _, f := range fields {
			if !metricsbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metricsbatch.FieldID {
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
		_spec.SetField(metricsbatch.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(metricsbatch.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(metricsbatch.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectedAtStr(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(metricsbatch.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(metricsbatch.FieldMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, metricsbatch.FieldMetrics, value)
		})
	}
	if value, ok := _u.mutation.MetricsCount(); ok {
		_spec.SetField(metricsbatch.FieldMetricsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetricsCount(); ok {
		_spec.AddField(metricsbatch.FieldMetricsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrimaryInstance(); ok {
		_spec.SetField(metricsbatch.FieldPrimaryInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(metricsbatch.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(metricsbatch.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(metricsbatch.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(metricsbatch.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(metricsbatch.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(metricsbatch.FieldSessionID, field.TypeString, value)
	}
	_node = &MetricsBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricsbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
