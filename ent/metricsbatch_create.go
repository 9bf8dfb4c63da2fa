// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/metricsbatch"
)

// MetricsBatchCreate is the builder for creating a MetricsBatch entity.
type MetricsBatchCreate struct {
	config
	mutation *MetricsBatchMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MetricsBatchCreate) SetUserID(v string) *MetricsBatchCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *MetricsBatchCreate) SetWindowStart(v time.Time) *MetricsBatchCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *MetricsBatchCreate) SetWindowEnd(v time.Time) *MetricsBatchCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *MetricsBatchCreate) SetCollectedAt(v time.Time) *MetricsBatchCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetWindowStartStr sets the "window_start_str" field.
func (_c *MetricsBatchCreate) SetWindowStartStr(v string) *MetricsBatchCreate {
	_c.mutation.SetWindowStartStr(v)
	return _c
}

// SetWindowEndStr sets the "window_end_str" field.
func (_c *MetricsBatchCreate) SetWindowEndStr(v string) *MetricsBatchCreate {
	_c.mutation.SetWindowEndStr(v)
	return _c
}

// SetCollectedAtStr sets the "collected_at_str" field.
func (_c *MetricsBatchCreate) SetCollectedAtStr(v string) *MetricsBatchCreate {
	_c.mutation.SetCollectedAtStr(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *MetricsBatchCreate) SetTimezone(v string) *MetricsBatchCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *MetricsBatchCreate) SetMetrics(v []map[string]interface{}) *MetricsBatchCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetMetricsCount sets the "metrics_count" field.
func (_c *MetricsBatchCreate) SetMetricsCount(v int) *MetricsBatchCreate {
	_c.mutation.SetMetricsCount(v)
	return _c
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_c *MetricsBatchCreate) SetPrimaryInstance(v string) *MetricsBatchCreate {
	_c.mutation.SetPrimaryInstance(v)
	return _c
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_c *MetricsBatchCreate) SetNillablePrimaryInstance(v *string) *MetricsBatchCreate {
	if v != nil {
		_c.SetPrimaryInstance(*v)
	}
	return _c
}

// SetIP sets the "ip" field.
func (_c *MetricsBatchCreate) SetIP(v string) *MetricsBatchCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *MetricsBatchCreate) SetNillableIP(v *string) *MetricsBatchCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *MetricsBatchCreate) SetPort(v int) *MetricsBatchCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *MetricsBatchCreate) SetNillablePort(v *int) *MetricsBatchCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MetricsBatchCreate) SetSessionID(v string) *MetricsBatchCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MetricsBatchCreate) SetID(v string) *MetricsBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MetricsBatchMutation object of the builder.
func (_c *MetricsBatchCreate) Mutation() *MetricsBatchMutation {
	return _c.mutation
}

// Save creates the MetricsBatch in the database.
func (_c *MetricsBatchCreate) Save(ctx context.Context) (*MetricsBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricsBatchCreate) SaveX(ctx context.Context) *MetricsBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricsBatchCreate) defaults() {
	if _, ok := _c.mutation.PrimaryInstance(); !ok {
		v := metricsbatch.DefaultPrimaryInstance
		_c.mutation.SetPrimaryInstance(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricsBatchCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MetricsBatch.user_id"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "MetricsBatch.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "MetricsBatch.window_end"`)}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "MetricsBatch.collected_at"`)}
	}
	if _, ok := _c.mutation.WindowStartStr(); !ok {
		return &ValidationError{Name: "window_start_str", err: errors.New(`ent: missing required field "MetricsBatch.window_start_str"`)}
	}
	if _, ok := _c.mutation.WindowEndStr(); !ok {
		return &ValidationError{Name: "window_end_str", err: errors.New(`ent: missing required field "MetricsBatch.window_end_str"`)}
	}
	if _, ok := _c.mutation.CollectedAtStr(); !ok {
		return &ValidationError{Name: "collected_at_str", err: errors.New(`ent: missing required field "MetricsBatch.collected_at_str"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "MetricsBatch.timezone"`)}
	}
	if _, ok := _c.mutation.Metrics(); !ok {
		return &ValidationError{Name: "metrics", err: errors.New(`ent: missing required field "MetricsBatch.metrics"`)}
	}
	if _, ok := _c.mutation.MetricsCount(); !ok {
		return &ValidationError{Name: "metrics_count", err: errors.New(`ent: missing required field "MetricsBatch.metrics_count"`)}
	}
	if _, ok := _c.mutation.PrimaryInstance(); !ok {
		return &ValidationError{Name: "primary_instance", err: errors.New(`ent: missing required field "MetricsBatch.primary_instance"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MetricsBatch.session_id"`)}
	}
	return nil
}

func (_c *MetricsBatchCreate) sqlSave(ctx context.Context) (*MetricsBatch, error) {
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
			return nil, fmt.Errorf("unexpected MetricsBatch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MetricsBatchCreate) createSpec() (*MetricsBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricsBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricsbatch.Table, sqlgraph.NewFieldSpec(metricsbatch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(metricsbatch.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(metricsbatch.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(metricsbatch.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	if value, ok := _c.mutation.WindowStartStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowStartStr, field.TypeString, value)
		_node.WindowStartStr = value
	}
	if value, ok := _c.mutation.WindowEndStr(); ok {
		_spec.SetField(metricsbatch.FieldWindowEndStr, field.TypeString, value)
		_node.WindowEndStr = value
	}
	if value, ok := _c.mutation.CollectedAtStr(); ok {
		_spec.SetField(metricsbatch.FieldCollectedAtStr, field.TypeString, value)
		_node.CollectedAtStr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(metricsbatch.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(metricsbatch.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.MetricsCount(); ok {
		_spec.SetField(metricsbatch.FieldMetricsCount, field.TypeInt, value)
		_node.MetricsCount = value
	}
	if value, ok := _c.mutation.PrimaryInstance(); ok {
		_spec.SetField(metricsbatch.FieldPrimaryInstance, field.TypeString, value)
		_node.PrimaryInstance = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(metricsbatch.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(metricsbatch.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(metricsbatch.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// MetricsBatchCreateBulk is the builder for creating many MetricsBatch entities in bulk.
type MetricsBatchCreateBulk struct {
	config
	err      error
	builders []*MetricsBatchCreate
}

// Save creates the MetricsBatch entities in the database.
func (_c *MetricsBatchCreateBulk) Save(ctx context.Context) ([]*MetricsBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricsBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricsBatchMutation)
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
func (_c *MetricsBatchCreateBulk) SaveX(ctx context.Context) []*MetricsBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
