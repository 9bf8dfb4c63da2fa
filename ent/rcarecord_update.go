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
	"github.com/promsight/promsight/ent/predicate"
	"github.com/promsight/promsight/ent/rcarecord"
)

// RCARecordUpdate is the builder for updating RCARecord entities.
type RCARecordUpdate struct {
	config
	hooks    []Hook
	mutation *RCARecordMutation
}

// Where appends a list predicates to the RCARecordUpdate builder.
func (_u *RCARecordUpdate) Where(ps ...predicate.RCARecord) *RCARecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RCARecordUpdate) SetUserID(v string) *RCARecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableUserID(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *RCARecordUpdate) SetBatchID(v string) *RCARecordUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableBatchID(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *RCARecordUpdate) SetIncidentID(v string) *RCARecordUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableIncidentID(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *RCARecordUpdate) SetTimestamp(v time.Time) *RCARecordUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableTimestamp(v *time.Time) *RCARecordUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTimestampStr sets the "timestamp_str" field.
func (_u *RCARecordUpdate) SetTimestampStr(v string) *RCARecordUpdate {
	_u.mutation.SetTimestampStr(v)
	return _u
}

// SetNillableTimestampStr sets the "timestamp_str" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableTimestampStr(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetTimestampStr(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *RCARecordUpdate) SetWindowStartStr(v string) *RCARecordUpdate {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableWindowStartStr(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *RCARecordUpdate) SetWindowEndStr(v string) *RCARecordUpdate {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableWindowEndStr(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *RCARecordUpdate) SetTimezone(v string) *RCARecordUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableTimezone(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RCARecordUpdate) SetSummary(v string) *RCARecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableSummary(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *RCARecordUpdate) ClearSummary() *RCARecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCause sets the "cause" field.
func (_u *RCARecordUpdate) SetCause(v string) *RCARecordUpdate {
	_u.mutation.SetCause(v)
	return _u
}

// SetNillableCause sets the "cause" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableCause(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetCause(*v)
	}
	return _u
}

// ClearCause clears the value of the "cause" field.
func (_u *RCARecordUpdate) ClearCause() *RCARecordUpdate {
	_u.mutation.ClearCause()
	return _u
}

// SetFix sets the "fix" field.
func (_u *RCARecordUpdate) SetFix(v []string) *RCARecordUpdate {
	_u.mutation.SetFix(v)
	return _u
}

// AppendFix appends value to the "fix" field.
func (_u *RCARecordUpdate) AppendFix(v []string) *RCARecordUpdate {
	_u.mutation.AppendFix(v)
	return _u
}

// ClearFix clears the value of the "fix" field.
func (_u *RCARecordUpdate) ClearFix() *RCARecordUpdate {
	_u.mutation.ClearFix()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *RCARecordUpdate) SetRaw(v map[string]interface{}) *RCARecordUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *RCARecordUpdate) ClearRaw() *RCARecordUpdate {
	_u.mutation.ClearRaw()
	return _u
}

// SetInstance sets the "instance" field.
func (_u *RCARecordUpdate) SetInstance(v string) *RCARecordUpdate {
	_u.mutation.SetInstance(v)
	return _u
}

// SetNillableInstance sets the "instance" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableInstance(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *RCARecordUpdate) SetIP(v string) *RCARecordUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableIP(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *RCARecordUpdate) ClearIP() *RCARecordUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *RCARecordUpdate) SetPort(v int) *RCARecordUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillablePort(v *int) *RCARecordUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *RCARecordUpdate) AddPort(v int) *RCARecordUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *RCARecordUpdate) ClearPort() *RCARecordUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RCARecordUpdate) SetSessionID(v string) *RCARecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RCARecordUpdate) SetNillableSessionID(v *string) *RCARecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the RCARecordMutation object of the builder.
func (_u *RCARecordUpdate) Mutation() *RCARecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RCARecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCARecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RCARecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCARecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RCARecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rcarecord.Table, rcarecord.Columns, sqlgraph.NewFieldSpec(rcarecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(rcarecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(rcarecord.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(rcarecord.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(rcarecord.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimestampStr(); ok {
		_spec.SetField(rcarecord.FieldTimestampStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(rcarecord.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(rcarecord.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(rcarecord.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rcarecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(rcarecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Cause(); ok {
		_spec.SetField(rcarecord.FieldCause, field.TypeString, value)
	}
	if _u.mutation.CauseCleared() {
		_spec.ClearField(rcarecord.FieldCause, field.TypeString)
	}
	if value, ok := _u.mutation.Fix(); ok {
		_spec.SetField(rcarecord.FieldFix, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFix(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcarecord.FieldFix, value)
		})
	}
	if _u.mutation.FixCleared() {
		_spec.ClearField(rcarecord.FieldFix, field.TypeJSON)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(rcarecord.FieldRaw, field.TypeJSON, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(rcarecord.FieldRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instance(); ok {
		_spec.SetField(rcarecord.FieldInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(rcarecord.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(rcarecord.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(rcarecord.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(rcarecord.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(rcarecord.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rcarecord.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcarecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RCARecordUpdateOne is the builder for updating a single RCARecord entity.
type RCARecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RCARecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *RCARecordUpdateOne) SetUserID(v string) *RCARecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableUserID(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *RCARecordUpdateOne) SetBatchID(v string) *RCARecordUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableBatchID(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *RCARecordUpdateOne) SetIncidentID(v string) *RCARecordUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableIncidentID(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *RCARecordUpdateOne) SetTimestamp(v time.Time) *RCARecordUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableTimestamp(v *time.Time) *RCARecordUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetTimestampStr sets the "timestamp_str" field.
func (_u *RCARecordUpdateOne) SetTimestampStr(v string) *RCARecordUpdateOne {
	_u.mutation.SetTimestampStr(v)
	return _u
}

// SetNillableTimestampStr sets the "timestamp_str" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableTimestampStr(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetTimestampStr(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *RCARecordUpdateOne) SetWindowStartStr(v string) *RCARecordUpdateOne {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableWindowStartStr(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *RCARecordUpdateOne) SetWindowEndStr(v string) *RCARecordUpdateOne {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableWindowEndStr(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *RCARecordUpdateOne) SetTimezone(v string) *RCARecordUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableTimezone(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RCARecordUpdateOne) SetSummary(v string) *RCARecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableSummary(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *RCARecordUpdateOne) ClearSummary() *RCARecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCause sets the "cause" field.
func (_u *RCARecordUpdateOne) SetCause(v string) *RCARecordUpdateOne {
	_u.mutation.SetCause(v)
	return _u
}

// SetNillableCause sets the "cause" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableCause(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetCause(*v)
	}
	return _u
}

// ClearCause clears the value of the "cause" field.
func (_u *RCARecordUpdateOne) ClearCause() *RCARecordUpdateOne {
	_u.mutation.ClearCause()
	return _u
}

// SetFix sets the "fix" field.
func (_u *RCARecordUpdateOne) SetFix(v []string) *RCARecordUpdateOne {
	_u.mutation.SetFix(v)
	return _u
}

// AppendFix appends value to the "fix" field.
func (_u *RCARecordUpdateOne) AppendFix(v []string) *RCARecordUpdateOne {
	_u.mutation.AppendFix(v)
	return _u
}

// ClearFix clears the value of the "fix" field.
func (_u *RCARecordUpdateOne) ClearFix() *RCARecordUpdateOne {
	_u.mutation.ClearFix()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *RCARecordUpdateOne) SetRaw(v map[string]interface{}) *RCARecordUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *RCARecordUpdateOne) ClearRaw() *RCARecordUpdateOne {
	_u.mutation.ClearRaw()
	return _u
}

// SetInstance sets the "instance" field.
func (_u *RCARecordUpdateOne) SetInstance(v string) *RCARecordUpdateOne {
	_u.mutation.SetInstance(v)
	return _u
}

// SetNillableInstance sets the "instance" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableInstance(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetInstance(*v)
	}
	return _u
}

// SetIP sets the "ip" field.
func (_u *RCARecordUpdateOne) SetIP(v string) *RCARecordUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableIP(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *RCARecordUpdateOne) ClearIP() *RCARecordUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetPort sets the "port" field.
func (_u *RCARecordUpdateOne) SetPort(v int) *RCARecordUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillablePort(v *int) *RCARecordUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *RCARecordUpdateOne) AddPort(v int) *RCARecordUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *RCARecordUpdateOne) ClearPort() *RCARecordUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RCARecordUpdateOne) SetSessionID(v string) *RCARecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RCARecordUpdateOne) SetNillableSessionID(v *string) *RCARecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the RCARecordMutation object of the builder.
func (_u *RCARecordUpdateOne) Mutation() *RCARecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the RCARecordUpdate builder.
func (_u *RCARecordUpdateOne) Where(ps ...predicate.RCARecord) *RCARecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RCARecordUpdateOne) Select(field string, fields ...string) *RCARecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RCARecord entity.
func (_u *RCARecordUpdateOne) Save(ctx context.Context) (*RCARecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCARecordUpdateOne) SaveX(ctx context.Context) *RCARecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RCARecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCARecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RCARecordUpdateOne) sqlSave(ctx context.Context) (_node *RCARecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(rcarecord.Table, rcarecord.Columns, sqlgraph.NewFieldSpec(rcarecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RCARecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rcarecord.FieldID)
		for _, f := range fields {
			if !rcarecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rcarecord.FieldID {
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
		_spec.SetField(rcarecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(rcarecord.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(rcarecord.FieldIncidentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(rcarecord.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimestampStr(); ok {
		_spec.SetField(rcarecord.FieldTimestampStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(rcarecord.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(rcarecord.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(rcarecord.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rcarecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(rcarecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Cause(); ok {
		_spec.SetField(rcarecord.FieldCause, field.TypeString, value)
	}
	if _u.mutation.CauseCleared() {
		_spec.ClearField(rcarecord.FieldCause, field.TypeString)
	}
	if value, ok := _u.mutation.Fix(); ok {
		_spec.SetField(rcarecord.FieldFix, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFix(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rcarecord.FieldFix, value)
		})
	}
	if _u.mutation.FixCleared() {
		_spec.ClearField(rcarecord.FieldFix, field.TypeJSON)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(rcarecord.FieldRaw, field.TypeJSON, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(rcarecord.FieldRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instance(); ok {
		_spec.SetField(rcarecord.FieldInstance, field.TypeString, value)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(rcarecord.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(rcarecord.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(rcarecord.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(rcarecord.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(rcarecord.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rcarecord.FieldSessionID, field.TypeString, value)
	}
	_node = &RCARecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcarecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
