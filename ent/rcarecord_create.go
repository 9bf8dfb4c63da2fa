// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/rcarecord"
)

// RCARecordCreate is the builder for creating a RCARecord entity.
type RCARecordCreate struct {
	config
	mutation *RCARecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *RCARecordCreate) SetUserID(v string) *RCARecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *RCARecordCreate) SetBatchID(v string) *RCARecordCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *RCARecordCreate) SetIncidentID(v string) *RCARecordCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RCARecordCreate) SetTimestamp(v time.Time) *RCARecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTimestampStr sets the "timestamp_str" field.
func (_c *RCARecordCreate) SetTimestampStr(v string) *RCARecordCreate {
	_c.mutation.SetTimestampStr(v)
	return _c
}

// SetWindowStartStr sets the "window_start_str" field.
func (_c *RCARecordCreate) SetWindowStartStr(v string) *RCARecordCreate {
	_c.mutation.SetWindowStartStr(v)
	return _c
}

// SetWindowEndStr sets the "window_end_str" field.
func (_c *RCARecordCreate) SetWindowEndStr(v string) *RCARecordCreate {
	_c.mutation.SetWindowEndStr(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *RCARecordCreate) SetTimezone(v string) *RCARecordCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RCARecordCreate) SetSummary(v string) *RCARecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *RCARecordCreate) SetNillableSummary(v *string) *RCARecordCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetCause sets the "cause" field.
func (_c *RCARecordCreate) SetCause(v string) *RCARecordCreate {
	_c.mutation.SetCause(v)
	return _c
}

// SetNillableCause sets the "cause" field if the given value is not nil.
func (_c *RCARecordCreate) SetNillableCause(v *string) *RCARecordCreate {
	if v != nil {
		_c.SetCause(*v)
	}
	return _c
}

// SetFix sets the "fix" field.
func (_c *RCARecordCreate) SetFix(v []string) *RCARecordCreate {
	_c.mutation.SetFix(v)
	return _c
}

// SetRaw sets the "raw" field.
func (_c *RCARecordCreate) SetRaw(v map[string]interface{}) *RCARecordCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetInstance sets the "instance" field.
func (_c *RCARecordCreate) SetInstance(v string) *RCARecordCreate {
	_c.mutation.SetInstance(v)
	return _c
}

// SetNillableInstance sets the "instance" field if the given value is not nil.
func (_c *RCARecordCreate) SetNillableInstance(v *string) *RCARecordCreate {
	if v != nil {
		_c.SetInstance(*v)
	}
	return _c
}

// SetIP sets the "ip" field.
func (_c *RCARecordCreate) SetIP(v string) *RCARecordCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *RCARecordCreate) SetNillableIP(v *string) *RCARecordCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *RCARecordCreate) SetPort(v int) *RCARecordCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *RCARecordCreate) SetNillablePort(v *int) *RCARecordCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RCARecordCreate) SetSessionID(v string) *RCARecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RCARecordCreate) SetID(v string) *RCARecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RCARecordMutation object of the builder.
func (_c *RCARecordCreate) Mutation() *RCARecordMutation {
	return _c.mutation
}

// Save creates the RCARecord in the database.
func (_c *RCARecordCreate) Save(ctx context.Context) (*RCARecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RCARecordCreate) SaveX(ctx context.Context) *RCARecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCARecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCARecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RCARecordCreate) defaults() {
	if _, ok := _c.mutation.Instance(); !ok {
		v := rcarecord.DefaultInstance
		_c.mutation.SetInstance(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RCARecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RCARecord.user_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "RCARecord.batch_id"`)}
	}
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "RCARecord.incident_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RCARecord.timestamp"`)}
	}
	if _, ok := _c.mutation.TimestampStr(); !ok {
		return &ValidationError{Name: "timestamp_str", err: errors.New(`ent: missing required field "RCARecord.timestamp_str"`)}
	}
	if _, ok := _c.mutation.WindowStartStr(); !ok {
		return &ValidationError{Name: "window_start_str", err: errors.New(`ent: missing required field "RCARecord.window_start_str"`)}
	}
	if _, ok := _c.mutation.WindowEndStr(); !ok {
		return &ValidationError{Name: "window_end_str", err: errors.New(`ent: missing required field "RCARecord.window_end_str"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "RCARecord.timezone"`)}
	}
	if _, ok := _c.mutation.Instance(); !ok {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required field "RCARecord.instance"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RCARecord.session_id"`)}
	}
	return nil
}

func (_c *RCARecordCreate) sqlSave(ctx context.Context) (*RCARecord, error) {
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
			return nil, fmt.Errorf("unexpected RCARecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RCARecordCreate) createSpec() (*RCARecord, *sqlgraph.CreateSpec) {
	var (
		_node = &RCARecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rcarecord.Table, sqlgraph.NewFieldSpec(rcarecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(rcarecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(rcarecord.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(rcarecord.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rcarecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TimestampStr(); ok {
		_spec.SetField(rcarecord.FieldTimestampStr, field.TypeString, value)
		_node.TimestampStr = value
	}
	if value, ok := _c.mutation.WindowStartStr(); ok {
		_spec.SetField(rcarecord.FieldWindowStartStr, field.TypeString, value)
		_node.WindowStartStr = value
	}
	if value, ok := _c.mutation.WindowEndStr(); ok {
		_spec.SetField(rcarecord.FieldWindowEndStr, field.TypeString, value)
		_node.WindowEndStr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(rcarecord.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(rcarecord.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Cause(); ok {
		_spec.SetField(rcarecord.FieldCause, field.TypeString, value)
		_node.Cause = value
	}
	if value, ok := _c.mutation.Fix(); ok {
		_spec.SetField(rcarecord.FieldFix, field.TypeJSON, value)
		_node.Fix = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(rcarecord.FieldRaw, field.TypeJSON, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.Instance(); ok {
		_spec.SetField(rcarecord.FieldInstance, field.TypeString, value)
		_node.Instance = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(rcarecord.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(rcarecord.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(rcarecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// RCARecordCreateBulk is the builder for creating many RCARecord entities in bulk.
type RCARecordCreateBulk struct {
	config
	err      error
	builders []*RCARecordCreate
}

// Save creates the RCARecord entities in the database.
func (_c *RCARecordCreateBulk) Save(ctx context.Context) ([]*RCARecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RCARecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RCARecordMutation)
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
func (_c *RCARecordCreateBulk) SaveX(ctx context.Context) []*RCARecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCARecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCARecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
