// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promsight/promsight/ent/notificationconfig"
)

// NotificationConfigCreate is the builder for creating a NotificationConfig entity.
type NotificationConfigCreate struct {
	config
	mutation *NotificationConfigMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NotificationConfigCreate) SetUserID(v string) *NotificationConfigCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *NotificationConfigCreate) SetChannel(v notificationconfig.Channel) *NotificationConfigCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *NotificationConfigCreate) SetEnabled(v bool) *NotificationConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *NotificationConfigCreate) SetNillableEnabled(v *bool) *NotificationConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *NotificationConfigCreate) SetWebhookURL(v string) *NotificationConfigCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *NotificationConfigCreate) SetNillableWebhookURL(v *string) *NotificationConfigCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetRecipients sets the "recipients" field.
func (_c *NotificationConfigCreate) SetRecipients(v []string) *NotificationConfigCreate {
	_c.mutation.SetRecipients(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationConfigCreate) SetUpdatedAt(v time.Time) *NotificationConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationConfigCreate) SetNillableUpdatedAt(v *time.Time) *NotificationConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationConfigCreate) SetID(v string) *NotificationConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NotificationConfigMutation object of the builder.
func (_c *NotificationConfigCreate) Mutation() *NotificationConfigMutation {
	return _c.mutation
}

// Save creates the NotificationConfig in the database.
func (_c *NotificationConfigCreate) Save(ctx context.Context) (*NotificationConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationConfigCreate) SaveX(ctx context.Context) *NotificationConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := notificationconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationConfigCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NotificationConfig.user_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "NotificationConfig.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := notificationconfig.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationConfig.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "NotificationConfig.enabled"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationConfig.updated_at"`)}
	}
	return nil
}

func (_c *NotificationConfigCreate) sqlSave(ctx context.Context) (*NotificationConfig, error) {
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
			return nil, fmt.Errorf("unexpected NotificationConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationConfigCreate) createSpec() (*NotificationConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationconfig.Table, sqlgraph.NewFieldSpec(notificationconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationconfig.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(notificationconfig.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(notificationconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(notificationconfig.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = value
	}
	if value, ok := _c.mutation.Recipients(); ok {
		_spec.SetField(notificationconfig.FieldRecipients, field.TypeJSON, value)
		_node.Recipients = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// NotificationConfigCreateBulk is the builder for creating many NotificationConfig entities in bulk.
type NotificationConfigCreateBulk struct {
	config
	err      error
	builders []*NotificationConfigCreate
}

// Save creates the NotificationConfig entities in the database.
func (_c *NotificationConfigCreateBulk) Save(ctx context.Context) ([]*NotificationConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationConfigMutation)
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
func (_c *NotificationConfigCreateBulk) SaveX(ctx context.Context) []*NotificationConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
