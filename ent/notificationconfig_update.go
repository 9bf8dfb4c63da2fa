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
	"github.com/promsight/promsight/ent/notificationconfig"
	"github.com/promsight/promsight/ent/predicate"
)

// NotificationConfigUpdate is the builder for updating NotificationConfig entities.
type NotificationConfigUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationConfigMutation
}

// Where appends a list predicates to the NotificationConfigUpdate builder.
func (_u *NotificationConfigUpdate) Where(ps ...predicate.NotificationConfig) *NotificationConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NotificationConfigUpdate) SetUserID(v string) *NotificationConfigUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationConfigUpdate) SetNillableUserID(v *string) *NotificationConfigUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationConfigUpdate) SetChannel(v notificationconfig.Channel) *NotificationConfigUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationConfigUpdate) SetNillableChannel(v *notificationconfig.Channel) *NotificationConfigUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *NotificationConfigUpdate) SetEnabled(v bool) *NotificationConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *NotificationConfigUpdate) SetNillableEnabled(v *bool) *NotificationConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *NotificationConfigUpdate) SetWebhookURL(v string) *NotificationConfigUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *NotificationConfigUpdate) SetNillableWebhookURL(v *string) *NotificationConfigUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *NotificationConfigUpdate) ClearWebhookURL() *NotificationConfigUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *NotificationConfigUpdate) SetRecipients(v []string) *NotificationConfigUpdate {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *NotificationConfigUpdate) AppendRecipients(v []string) *NotificationConfigUpdate {
	_u.mutation.AppendRecipients(v)
	return _u
}

// ClearRecipients clears the value of the "recipients" field.
func (_u *NotificationConfigUpdate) ClearRecipients() *NotificationConfigUpdate {
	_u.mutation.ClearRecipients()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationConfigUpdate) SetUpdatedAt(v time.Time) *NotificationConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationConfigMutation object of the builder.
func (_u *NotificationConfigUpdate) Mutation() *NotificationConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationConfigUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notificationconfig.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationConfig.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationconfig.Table, notificationconfig.Columns, sqlgraph.NewFieldSpec(notificationconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notificationconfig.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notificationconfig.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(notificationconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(notificationconfig.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(notificationconfig.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(notificationconfig.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationconfig.FieldRecipients, value)
		})
	}
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(notificationconfig.FieldRecipients, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationConfigUpdateOne is the builder for updating a single NotificationConfig entity.
type NotificationConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationConfigMutation
}

// SetUserID sets the "user_id" field.
func (_u *NotificationConfigUpdateOne) SetUserID(v string) *NotificationConfigUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationConfigUpdateOne) SetNillableUserID(v *string) *NotificationConfigUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationConfigUpdateOne) SetChannel(v notificationconfig.Channel) *NotificationConfigUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationConfigUpdateOne) SetNillableChannel(v *notificationconfig.Channel) *NotificationConfigUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *NotificationConfigUpdateOne) SetEnabled(v bool) *NotificationConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *NotificationConfigUpdateOne) SetNillableEnabled(v *bool) *NotificationConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *NotificationConfigUpdateOne) SetWebhookURL(v string) *NotificationConfigUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *NotificationConfigUpdateOne) SetNillableWebhookURL(v *string) *NotificationConfigUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *NotificationConfigUpdateOne) ClearWebhookURL() *NotificationConfigUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *NotificationConfigUpdateOne) SetRecipients(v []string) *NotificationConfigUpdateOne {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *NotificationConfigUpdateOne) AppendRecipients(v []string) *NotificationConfigUpdateOne {
	_u.mutation.AppendRecipients(v)
	return _u
}

// ClearRecipients clears the value of the "recipients" field.
func (_u *NotificationConfigUpdateOne) ClearRecipients() *NotificationConfigUpdateOne {
	_u.mutation.ClearRecipients()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationConfigUpdateOne) SetUpdatedAt(v time.Time) *NotificationConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationConfigMutation object of the builder.
func (_u *NotificationConfigUpdateOne) Mutation() *NotificationConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationConfigUpdate builder.
func (_u *NotificationConfigUpdateOne) Where(ps ...predicate.NotificationConfig) *NotificationConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationConfigUpdateOne) Select(field string, fields ...string) *NotificationConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationConfig entity.
func (_u *NotificationConfigUpdateOne) Save(ctx context.Context) (*NotificationConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationConfigUpdateOne) SaveX(ctx context.Context) *NotificationConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notificationconfig.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationConfig.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationConfigUpdateOne) sqlSave(ctx context.Context) (_node *NotificationConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationconfig.Table, notificationconfig.Columns, sqlgraph.NewFieldSpec(notificationconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationconfig.FieldID)
		for _, f := range fields {
			if !notificationconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationconfig.FieldID {
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
		_spec.SetField(notificationconfig.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notificationconfig.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(notificationconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(notificationconfig.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(notificationconfig.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(notificationconfig.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationconfig.FieldRecipients, value)
		})
	}
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(notificationconfig.FieldRecipients, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NotificationConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
