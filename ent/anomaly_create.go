// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/anomaly"
)

// AnomalyCreate is the builder for creating a Anomaly entity.
type AnomalyCreate struct {
	config
	mutation *AnomalyMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AnomalyCreate) SetUserID(v string) *AnomalyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *AnomalyCreate) SetBatchID(v string) *AnomalyCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *AnomalyCreate) SetIncidentID(v string) *AnomalyCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetMetric sets the "metric" field.
func (_c *AnomalyCreate) SetMetric(v string) *AnomalyCreate {
	_c.mutation.SetMetric(v)
	return _c
}

// SetInstance sets the "instance" field.
func (_c *AnomalyCreate) SetInstance(v string) *AnomalyCreate {
	_c.mutation.SetInstance(v)
	return _c
}

// SetIP sets the "ip" field.
func (_c *AnomalyCreate) SetIP(v string) *AnomalyCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableIP(v *string) *AnomalyCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *AnomalyCreate) SetPort(v int) *AnomalyCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillablePort(v *int) *AnomalyCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetObserved sets the "observed" field.
func (_c *AnomalyCreate) SetObserved(v float64) *AnomalyCreate {
	_c.mutation.SetObserved(v)
	return _c
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableObserved(v *float64) *AnomalyCreate {
	if v != nil {
		_c.SetObserved(*v)
	}
	return _c
}

// SetExpected sets the "expected" field.
func (_c *AnomalyCreate) SetExpected(v string) *AnomalyCreate {
	_c.mutation.SetExpected(v)
	return _c
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableExpected(v *string) *AnomalyCreate {
	if v != nil {
		_c.SetExpected(*v)
	}
	return _c
}

// SetSymptom sets the "symptom" field.
func (_c *AnomalyCreate) SetSymptom(v string) *AnomalyCreate {
	_c.mutation.SetSymptom(v)
	return _c
}

// SetNillableSymptom sets the "symptom" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableSymptom(v *string) *AnomalyCreate {
	if v != nil {
		_c.SetSymptom(*v)
	}
	return _c
}

// SetCluster sets the "cluster" field.
func (_c *AnomalyCreate) SetCluster(v string) *AnomalyCreate {
	_c.mutation.SetCluster(v)
	return _c
}

// SetNillableCluster sets the "cluster" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableCluster(v *string) *AnomalyCreate {
	if v != nil {
		_c.SetCluster(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AnomalyCreate) SetSeverity(v string) *AnomalyCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AnomalyCreate) SetNillableSeverity(v *string) *AnomalyCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnomalyCreate) SetCreatedAt(v time.Time) *AnomalyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_c *AnomalyCreate) SetCreatedAtStr(v string) *AnomalyCreate {
	_c.mutation.SetCreatedAtStr(v)
	return _c
}

// SetWindowStartStr sets the "window_start_str" field.
func (_c *AnomalyCreate) SetWindowStartStr(v string) *AnomalyCreate {
	_c.mutation.SetWindowStartStr(v)
	return _c
}

// SetWindowEndStr sets the "window_end_str" field.
func (_c *AnomalyCreate) SetWindowEndStr(v string) *AnomalyCreate {
	_c.mutation.SetWindowEndStr(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *AnomalyCreate) SetTimezone(v string) *AnomalyCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnomalyCreate) SetSessionID(v string) *AnomalyCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AnomalyCreate) SetID(v string) *AnomalyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnomalyMutation object of the builder.
func (_c *AnomalyCreate) Mutation() *AnomalyMutation {
	return _c.mutation
}

// Save creates the Anomaly in the database.
func (_c *AnomalyCreate) Save(ctx context.Context) (*Anomaly, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnomalyCreate) SaveX(ctx context.Context) *Anomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnomalyCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := anomaly.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnomalyCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Anomaly.user_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "Anomaly.batch_id"`)}
	}
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "Anomaly.incident_id"`)}
	}
	if _, ok := _c.mutation.Metric(); !ok {
		return &ValidationError{Name: "metric", err: errors.New(`ent: missing required field "Anomaly.metric"`)}
	}
	if _, ok := _c.mutation.Instance(); !ok {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required field "Anomaly.instance"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Anomaly.severity"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Anomaly.created_at"`)}
	}
	if _, ok := _c.mutation.CreatedAtStr(); !ok {
		return &ValidationError{Name: "created_at_str", err: errors.New(`ent: missing required field "Anomaly.created_at_str"`)}
	}
	if _, ok := _c.mutation.WindowStartStr(); !ok {
		return &ValidationError{Name: "window_start_str", err: errors.New(`ent: missing required field "Anomaly.window_start_str"`)}
	}
	if _, ok := _c.mutation.WindowEndStr(); !ok {
		return &ValidationError{Name: "window_end_str", err: errors.New(`ent: missing required field "Anomaly.window_end_str"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Anomaly.timezone"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Anomaly.session_id"`)}
	}
	return nil
}

func (_c *AnomalyCreate) sqlSave(ctx context.Context) (*Anomaly, error) {
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
			return nil, fmt.Errorf("unexpected Anomaly.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnomalyCreate) createSpec() (*Anomaly, *sqlgraph.CreateSpec) {
	var (
		_node = &Anomaly{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anomaly.Table, sqlgraph.NewFieldSpec(anomaly.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(anomaly.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(anomaly.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(anomaly.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Metric(); ok {
		_spec.SetField(anomaly.FieldMetric, field.TypeString, value)
		_node.Metric = value
	}
	if value, ok := _c.mutation.Instance(); ok {
		_spec.SetField(anomaly.FieldInstance, field.TypeString, value)
		_node.Instance = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(anomaly.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(anomaly.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.Observed(); ok {
		_spec.SetField(anomaly.FieldObserved, field.TypeFloat64, value)
		_node.Observed = value
	}
	if value, ok := _c.mutation.Expected(); ok {
		_spec.SetField(anomaly.FieldExpected, field.TypeString, value)
		_node.Expected = value
	}
	if value, ok := _c.mutation.Symptom(); ok {
		_spec.SetField(anomaly.FieldSymptom, field.TypeString, value)
		_node.Symptom = value
	}
	if value, ok := _c.mutation.Cluster(); ok {
		_spec.SetField(anomaly.FieldCluster, field.TypeString, value)
		_node.Cluster = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(anomaly.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anomaly.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CreatedAtStr(); ok {
		_spec.SetField(anomaly.FieldCreatedAtStr, field.TypeString, value)
		_node.CreatedAtStr = value
	}
	if value, ok := _c.mutation.WindowStartStr(); ok {
		_spec.SetField(anomaly.FieldWindowStartStr, field.TypeString, value)
		_node.WindowStartStr = value
	}
	if value, ok := _c.mutation.WindowEndStr(); ok {
		_spec.SetField(anomaly.FieldWindowEndStr, field.TypeString, value)
		_node.WindowEndStr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(anomaly.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(anomaly.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// AnomalyCreateBulk is the builder for creating many Anomaly entities in bulk.
type AnomalyCreateBulk struct {
	config
	err      error
	builders []*AnomalyCreate
}

// Save creates the Anomaly entities in the database.
func (_c *AnomalyCreateBulk) Save(ctx context.Context) ([]*Anomaly, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Anomaly, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnomalyMutation)
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
func (_c *AnomalyCreateBulk) SaveX(ctx context.Context) []*Anomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
