// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/incident"
)

// IncidentCreate is the builder for creating a Incident entity.
type IncidentCreate struct {
	config
	mutation *IncidentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *IncidentCreate) SetUserID(v string) *IncidentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *IncidentCreate) SetBatchID(v string) *IncidentCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *IncidentCreate) SetWindowStart(v time.Time) *IncidentCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *IncidentCreate) SetWindowEnd(v time.Time) *IncidentCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentCreate) SetCreatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetWindowStartStr sets the "window_start_str" field.
func (_c *IncidentCreate) SetWindowStartStr(v string) *IncidentCreate {
	_c.mutation.SetWindowStartStr(v)
	return _c
}

// SetWindowEndStr sets the "window_end_str" field.
func (_c *IncidentCreate) SetWindowEndStr(v string) *IncidentCreate {
	_c.mutation.SetWindowEndStr(v)
	return _c
}

// SetCreatedAtStr sets the "created_at_str" field.
func (_c *IncidentCreate) SetCreatedAtStr(v string) *IncidentCreate {
	_c.mutation.SetCreatedAtStr(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *IncidentCreate) SetTimezone(v string) *IncidentCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *IncidentCreate) SetTitle(v string) *IncidentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableTitle(v *string) *IncidentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IncidentCreate) SetSeverity(v incident.Severity) *IncidentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSeverity(v *incident.Severity) *IncidentCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *IncidentCreate) SetConfidence(v float64) *IncidentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableConfidence(v *float64) *IncidentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *IncidentCreate) SetSummary(v string) *IncidentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSummary(v *string) *IncidentCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *IncidentCreate) SetRootCause(v string) *IncidentCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableRootCause(v *string) *IncidentCreate {
	if v != nil {
		_c.SetRootCause(*v)
	}
	return _c
}

// SetContributingFactors sets the "contributing_factors" field.
func (_c *IncidentCreate) SetContributingFactors(v []string) *IncidentCreate {
	_c.mutation.SetContributingFactors(v)
	return _c
}

// SetBlastRadius sets the "blast_radius" field.
func (_c *IncidentCreate) SetBlastRadius(v string) *IncidentCreate {
	_c.mutation.SetBlastRadius(v)
	return _c
}

// SetNillableBlastRadius sets the "blast_radius" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableBlastRadius(v *string) *IncidentCreate {
	if v != nil {
		_c.SetBlastRadius(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *IncidentCreate) SetEvidence(v []map[string]interface{}) *IncidentCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetFixPlan sets the "fix_plan" field.
func (_c *IncidentCreate) SetFixPlan(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetFixPlan(v)
	return _c
}

// SetClusters sets the "clusters" field.
func (_c *IncidentCreate) SetClusters(v []map[string]interface{}) *IncidentCreate {
	_c.mutation.SetClusters(v)
	return _c
}

// SetRawAnalysis sets the "raw_analysis" field.
func (_c *IncidentCreate) SetRawAnalysis(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetRawAnalysis(v)
	return _c
}

// SetPrimaryInstance sets the "primary_instance" field.
func (_c *IncidentCreate) SetPrimaryInstance(v string) *IncidentCreate {
	_c.mutation.SetPrimaryInstance(v)
	return _c
}

// SetNillablePrimaryInstance sets the "primary_instance" field if the given value is not nil.
func (_c *IncidentCreate) SetNillablePrimaryInstance(v *string) *IncidentCreate {
	if v != nil {
		_c.SetPrimaryInstance(*v)
	}
	return _c
}

// SetIP sets the "ip" field.
func (_c *IncidentCreate) SetIP(v string) *IncidentCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableIP(v *string) *IncidentCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *IncidentCreate) SetPort(v int) *IncidentCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *IncidentCreate) SetNillablePort(v *int) *IncidentCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *IncidentCreate) SetSessionID(v string) *IncidentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCreate) SetID(v string) *IncidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IncidentMutation object of the builder.
func (_c *IncidentCreate) Mutation() *IncidentMutation {
	return _c.mutation
}

// Save creates the Incident in the database.
func (_c *IncidentCreate) Save(ctx context.Context) (*Incident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCreate) SaveX(ctx context.Context) *Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := incident.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := incident.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := incident.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.PrimaryInstance(); !ok {
		v := incident.DefaultPrimaryInstance
		_c.mutation.SetPrimaryInstance(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Incident.user_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "Incident.batch_id"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "Incident.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "Incident.window_end"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Incident.created_at"`)}
	}
	if _, ok := _c.mutation.WindowStartStr(); !ok {
		return &ValidationError{Name: "window_start_str", err: errors.New(`ent: missing required field "Incident.window_start_str"`)}
	}
	if _, ok := _c.mutation.WindowEndStr(); !ok {
		return &ValidationError{Name: "window_end_str", err: errors.New(`ent: missing required field "Incident.window_end_str"`)}
	}
	if _, ok := _c.mutation.CreatedAtStr(); !ok {
		return &ValidationError{Name: "created_at_str", err: errors.New(`ent: missing required field "Incident.created_at_str"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Incident.timezone"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Incident.title"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Incident.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Incident.confidence"`)}
	}
	if _, ok := _c.mutation.PrimaryInstance(); !ok {
		return &ValidationError{Name: "primary_instance", err: errors.New(`ent: missing required field "Incident.primary_instance"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Incident.session_id"`)}
	}
	return nil
}

func (_c *IncidentCreate) sqlSave(ctx context.Context) (*Incident, error) {
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
			return nil, fmt.Errorf("unexpected Incident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCreate) createSpec() (*Incident, *sqlgraph.CreateSpec) {
	var (
		_node = &Incident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incident.Table, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(incident.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(incident.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(incident.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.WindowStartStr(); ok {
		_spec.SetField(incident.FieldWindowStartStr, field.TypeString, value)
		_node.WindowStartStr = value
	}
	if value, ok := _c.mutation.WindowEndStr(); ok {
		_spec.SetField(incident.FieldWindowEndStr, field.TypeString, value)
		_node.WindowEndStr = value
	}
	if value, ok := _c.mutation.CreatedAtStr(); ok {
		_spec.SetField(incident.FieldCreatedAtStr, field.TypeString, value)
		_node.CreatedAtStr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(incident.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(incident.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(incident.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(incident.FieldRootCause, field.TypeString, value)
		_node.RootCause = value
	}
	if value, ok := _c.mutation.ContributingFactors(); ok {
		_spec.SetField(incident.FieldContributingFactors, field.TypeJSON, value)
		_node.ContributingFactors = value
	}
	if value, ok := _c.mutation.BlastRadius(); ok {
		_spec.SetField(incident.FieldBlastRadius, field.TypeString, value)
		_node.BlastRadius = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(incident.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.FixPlan(); ok {
		_spec.SetField(incident.FieldFixPlan, field.TypeJSON, value)
		_node.FixPlan = value
	}
	if value, ok := _c.mutation.Clusters(); ok {
		_spec.SetField(incident.FieldClusters, field.TypeJSON, value)
		_node.Clusters = value
	}
	if value, ok := _c.mutation.RawAnalysis(); ok {
		_spec.SetField(incident.FieldRawAnalysis, field.TypeJSON, value)
		_node.RawAnalysis = value
	}
	if value, ok := _c.mutation.PrimaryInstance(); ok {
		_spec.SetField(incident.FieldPrimaryInstance, field.TypeString, value)
		_node.PrimaryInstance = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(incident.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(incident.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(incident.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// IncidentCreateBulk is the builder for creating many Incident entities in bulk.
type IncidentCreateBulk struct {
	config
	err      error
	builders []*IncidentCreate
}

// Save creates the Incident entities in the database.
func (_c *IncidentCreateBulk) Save(ctx context.Context) ([]*Incident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Incident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentMutation)
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
func (_c *IncidentCreateBulk) SaveX(ctx context.Context) []*Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
