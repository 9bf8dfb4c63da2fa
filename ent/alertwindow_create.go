// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/alertwindow"
)

// AlertWindowCreate is the builder for creating a AlertWindow entity.
type AlertWindowCreate struct {
	config
	mutation *AlertWindowMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AlertWindowCreate) SetUserID(v string) *AlertWindowCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWindowStartStr sets the "window_start_str" field.
func (_c *AlertWindowCreate) SetWindowStartStr(v string) *AlertWindowCreate {
	_c.mutation.SetWindowStartStr(v)
	return _c
}

// SetWindowEndStr sets the "window_end_str" field.
func (_c *AlertWindowCreate) SetWindowEndStr(v string) *AlertWindowCreate {
	_c.mutation.SetWindowEndStr(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *AlertWindowCreate) SetWindowStart(v time.Time) *AlertWindowCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *AlertWindowCreate) SetWindowEnd(v time.Time) *AlertWindowCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *AlertWindowCreate) SetProcessedAt(v time.Time) *AlertWindowCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetProcessedAtStr sets the "processed_at_str" field.
func (_c *AlertWindowCreate) SetProcessedAtStr(v string) *AlertWindowCreate {
	_c.mutation.SetProcessedAtStr(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *AlertWindowCreate) SetTimezone(v string) *AlertWindowCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AlertWindowCreate) SetSessionID(v string) *AlertWindowCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *AlertWindowCreate) SetIncidentID(v string) *AlertWindowCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *AlertWindowCreate) SetNillableIncidentID(v *string) *AlertWindowCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertWindowCreate) SetID(v string) *AlertWindowCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AlertWindowMutation object of the builder.
func (_c *AlertWindowCreate) Mutation() *AlertWindowMutation {
	return _c.mutation
}

// Save creates the AlertWindow in the database.
func (_c *AlertWindowCreate) Save(ctx context.Context) (*AlertWindow, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertWindowCreate) SaveX(ctx context.Context) *AlertWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertWindowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertWindowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertWindowCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AlertWindow.user_id"`)}
	}
	if _, ok := _c.mutation.WindowStartStr(); !ok {
		return &ValidationError{Name: "window_start_str", err: errors.New(`ent: missing required field "AlertWindow.window_start_str"`)}
	}
	if _, ok := _c.mutation.WindowEndStr(); !ok {
		return &ValidationError{Name: "window_end_str", err: errors.New(`ent: missing required field "AlertWindow.window_end_str"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "AlertWindow.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "AlertWindow.window_end"`)}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "AlertWindow.processed_at"`)}
	}
	if _, ok := _c.mutation.ProcessedAtStr(); !ok {
		return &ValidationError{Name: "processed_at_str", err: errors.New(`ent: missing required field "AlertWindow.processed_at_str"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "AlertWindow.timezone"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AlertWindow.session_id"`)}
	}
	return nil
}

func (_c *AlertWindowCreate) sqlSave(ctx context.Context) (*AlertWindow, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AlertWindow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertWindowCreate) createSpec() (*AlertWindow, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertWindow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertwindow.Table, sqlgraph.NewFieldSpec(alertwindow.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(alertwindow.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WindowStartStr(); ok {
		_spec.SetField(alertwindow.FieldWindowStartStr, field.TypeString, value)
		_node.WindowStartStr = value
	}
	if value, ok := _c.mutation.WindowEndStr(); ok {
		_spec.SetField(alertwindow.FieldWindowEndStr, field.TypeString, value)
		_node.WindowEndStr = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(alertwindow.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(alertwindow.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(alertwindow.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if value, ok := _c.mutation.ProcessedAtStr(); ok {
		_spec.SetField(alertwindow.FieldProcessedAtStr, field.TypeString, value)
		_node.ProcessedAtStr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(alertwindow.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(alertwindow.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(alertwindow.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	return _node, _spec
}

// AlertWindowCreateBulk is the builder for creating many AlertWindow entities in bulk.
type AlertWindowCreateBulk struct {
	config
	err      error
	builders []*AlertWindowCreate
}

// Save creates the AlertWindow entities in the database.
func (_c *AlertWindowCreateBulk) Save(ctx context.Context) ([]*AlertWindow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertWindow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertWindowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AlertWindowCreateBulk) SaveX(ctx context.Context) []*AlertWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertWindowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertWindowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
