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
	"github.com/promsight/promsight/ent/alertwindow"
	"github.com/promsight/promsight/ent/predicate"
)

// AlertWindowUpdate is the builder for updating AlertWindow entities.
type AlertWindowUpdate struct {
	config
	hooks    []Hook
	mutation *AlertWindowMutation
}

// Where appends a list predicates to the AlertWindowUpdate builder.
func (_u *AlertWindowUpdate) Where(ps ...predicate.AlertWindow) *AlertWindowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AlertWindowUpdate) SetUserID(v string) *AlertWindowUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableUserID(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *AlertWindowUpdate) SetWindowStartStr(v string) *AlertWindowUpdate {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableWindowStartStr(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *AlertWindowUpdate) SetWindowEndStr(v string) *AlertWindowUpdate {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableWindowEndStr(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *AlertWindowUpdate) SetWindowStart(v time.Time) *AlertWindowUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableWindowStart(v *time.Time) *AlertWindowUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *AlertWindowUpdate) SetWindowEnd(v time.Time) *AlertWindowUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableWindowEnd(v *time.Time) *AlertWindowUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *AlertWindowUpdate) SetProcessedAt(v time.Time) *AlertWindowUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableProcessedAt(v *time.Time) *AlertWindowUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetProcessedAtStr sets the "processed_at_str" field.
func (_u *AlertWindowUpdate) SetProcessedAtStr(v string) *AlertWindowUpdate {
	_u.mutation.SetProcessedAtStr(v)
	return _u
}

// SetNillableProcessedAtStr sets the "processed_at_str" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableProcessedAtStr(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetProcessedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AlertWindowUpdate) SetTimezone(v string) *AlertWindowUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableTimezone(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AlertWindowUpdate) SetSessionID(v string) *AlertWindowUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableSessionID(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertWindowUpdate) SetIncidentID(v string) *AlertWindowUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertWindowUpdate) SetNillableIncidentID(v *string) *AlertWindowUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertWindowUpdate) ClearIncidentID() *AlertWindowUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// Mutation returns the AlertWindowMutation object of the builder.
func (_u *AlertWindowUpdate) Mutation() *AlertWindowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertWindowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertWindowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertWindowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertWindowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertWindowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertwindow.Table, alertwindow.Columns, sqlgraph.NewFieldSpec(alertwindow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(alertwindow.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(alertwindow.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(alertwindow.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(alertwindow.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(alertwindow.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(alertwindow.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAtStr(); ok {
		_spec.SetField(alertwindow.FieldProcessedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(alertwindow.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(alertwindow.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(alertwindow.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(alertwindow.FieldIncidentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertwindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertWindowUpdateOne is the builder for updating a single AlertWindow entity.
type AlertWindowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertWindowMutation
}

// SetUserID sets the "user_id" field.
func (_u *AlertWindowUpdateOne) SetUserID(v string) *AlertWindowUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableUserID(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWindowStartStr sets the "window_start_str" field.
func (_u *AlertWindowUpdateOne) SetWindowStartStr(v string) *AlertWindowUpdateOne {
	_u.mutation.SetWindowStartStr(v)
	return _u
}

// SetNillableWindowStartStr sets the "window_start_str" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableWindowStartStr(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetWindowStartStr(*v)
	}
	return _u
}

// SetWindowEndStr sets the "window_end_str" field.
func (_u *AlertWindowUpdateOne) SetWindowEndStr(v string) *AlertWindowUpdateOne {
	_u.mutation.SetWindowEndStr(v)
	return _u
}

// SetNillableWindowEndStr sets the "window_end_str" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableWindowEndStr(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetWindowEndStr(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *AlertWindowUpdateOne) SetWindowStart(v time.Time) *AlertWindowUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableWindowStart(v *time.Time) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *AlertWindowUpdateOne) SetWindowEnd(v time.Time) *AlertWindowUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableWindowEnd(v *time.Time) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *AlertWindowUpdateOne) SetProcessedAt(v time.Time) *AlertWindowUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableProcessedAt(v *time.Time) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetProcessedAtStr sets the "processed_at_str" field.
func (_u *AlertWindowUpdateOne) SetProcessedAtStr(v string) *AlertWindowUpdateOne {
	_u.mutation.SetProcessedAtStr(v)
	return _u
}

// SetNillableProcessedAtStr sets the "processed_at_str" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableProcessedAtStr(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetProcessedAtStr(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AlertWindowUpdateOne) SetTimezone(v string) *AlertWindowUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableTimezone(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AlertWindowUpdateOne) SetSessionID(v string) *AlertWindowUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableSessionID(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertWindowUpdateOne) SetIncidentID(v string) *AlertWindowUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertWindowUpdateOne) SetNillableIncidentID(v *string) *AlertWindowUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertWindowUpdateOne) ClearIncidentID() *AlertWindowUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// Mutation returns the AlertWindowMutation object of the builder.
func (_u *AlertWindowUpdateOne) Mutation() *AlertWindowMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertWindowUpdate builder.
func (_u *AlertWindowUpdateOne) Where(ps ...predicate.AlertWindow) *AlertWindowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertWindowUpdateOne) Select(field string, fields ...string) *AlertWindowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertWindow entity.
func (_u *AlertWindowUpdateOne) Save(ctx context.Context) (*AlertWindow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertWindowUpdateOne) SaveX(ctx context.Context) *AlertWindow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertWindowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertWindowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertWindowUpdateOne) sqlSave(ctx context.Context) (_node *AlertWindow, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertwindow.Table, alertwindow.Columns, sqlgraph.NewFieldSpec(alertwindow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertWindow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertwindow.FieldID)
		for _, f := range fields {
			if !alertwindow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertwindow.FieldID {
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
		_spec.SetField(alertwindow.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStartStr(); ok {
		_spec.SetField(alertwindow.FieldWindowStartStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowEndStr(); ok {
		_spec.SetField(alertwindow.FieldWindowEndStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(alertwindow.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(alertwindow.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(alertwindow.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAtStr(); ok {
		_spec.SetField(alertwindow.FieldProcessedAtStr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(alertwindow.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(alertwindow.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(alertwindow.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(alertwindow.FieldIncidentID, field.TypeString)
	}
	_node = &AlertWindow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertwindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
