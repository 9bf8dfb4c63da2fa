// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/alertwindow"
	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/notificationconfig"
	"github.com/promsight/promsight/ent/predicate"
	"github.com/promsight/promsight/ent/rcarecord"
	"github.com/promsight/promsight/ent/target"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlertWindow        = "AlertWindow"
	TypeAnomaly            = "Anomaly"
	TypeIncident           = "Incident"
	TypeMetricsBatch       = "MetricsBatch"
	TypeNotificationConfig = "NotificationConfig"
	TypeRCARecord          = "RCARecord"
	TypeTarget             = "Target"
)

// AlertWindowMutation represents an operation that mutates the AlertWindow nodes in the graph.
type AlertWindowMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	window_start_str *string
	window_end_str   *string
	window_start     *time.Time
	window_end       *time.Time
	processed_at     *time.Time
	processed_at_str *string
	timezone         *string
	session_id       *string
	incident_id      *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AlertWindow, error)
	predicates       []predicate.AlertWindow
}

var _ ent.Mutation = (*AlertWindowMutation)(nil)

// alertwindowOption allows management of the mutation configuration using functional options.
type alertwindowOption func(*AlertWindowMutation)

// newAlertWindowMutation creates new mutation for the AlertWindow entity.
func newAlertWindowMutation(c config, op Op, opts ...alertwindowOption) *AlertWindowMutation {
	m := &AlertWindowMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertWindow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertWindowID sets the ID field of the mutation.
func withAlertWindowID(id string) alertwindowOption {
	return func(m *AlertWindowMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertWindow
		)
		m.oldValue = func(ctx context.Context) (*AlertWindow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertWindow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertWindow sets the old AlertWindow of the mutation.
func withAlertWindow(node *AlertWindow) alertwindowOption {
	return func(m *AlertWindowMutation) {
		m.oldValue = func(context.Context) (*AlertWindow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertWindowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertWindowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertWindow entities.
func (m *AlertWindowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertWindowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertWindowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertWindow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AlertWindowMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AlertWindowMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AlertWindowMutation) ResetUserID() {
	m.user_id = nil
}

// SetWindowStartStr sets the "window_start_str" field.
func (m *AlertWindowMutation) SetWindowStartStr(s string) {
	m.window_start_str = &s
}

// WindowStartStr returns the value of the "window_start_str" field in the mutation.
func (m *AlertWindowMutation) WindowStartStr() (r string, exists bool) {
	v := m.window_start_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStartStr returns the old "window_start_str" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldWindowStartStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStartStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStartStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStartStr: %w", err)
	}
	return oldValue.WindowStartStr, nil
}

// ResetWindowStartStr resets all changes to the "window_start_str" field.
func (m *AlertWindowMutation) ResetWindowStartStr() {
	m.window_start_str = nil
}

// SetWindowEndStr sets the "window_end_str" field.
func (m *AlertWindowMutation) SetWindowEndStr(s string) {
	m.window_end_str = &s
}

// WindowEndStr returns the value of the "window_end_str" field in the mutation.
func (m *AlertWindowMutation) WindowEndStr() (r string, exists bool) {
	v := m.window_end_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEndStr returns the old "window_end_str" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldWindowEndStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEndStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEndStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEndStr: %w", err)
	}
	return oldValue.WindowEndStr, nil
}

// ResetWindowEndStr resets all changes to the "window_end_str" field.
func (m *AlertWindowMutation) ResetWindowEndStr() {
	m.window_end_str = nil
}

// SetWindowStart sets the "window_start" field.
func (m *AlertWindowMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *AlertWindowMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *AlertWindowMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *AlertWindowMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *AlertWindowMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *AlertWindowMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *AlertWindowMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *AlertWindowMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *AlertWindowMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetProcessedAtStr sets the "processed_at_str" field.
func (m *AlertWindowMutation) SetProcessedAtStr(s string) {
	m.processed_at_str = &s
}

// ProcessedAtStr returns the value of the "processed_at_str" field in the mutation.
func (m *AlertWindowMutation) ProcessedAtStr() (r string, exists bool) {
	v := m.processed_at_str
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAtStr returns the old "processed_at_str" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldProcessedAtStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAtStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAtStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAtStr: %w", err)
	}
	return oldValue.ProcessedAtStr, nil
}

// ResetProcessedAtStr resets all changes to the "processed_at_str" field.
func (m *AlertWindowMutation) ResetProcessedAtStr() {
	m.processed_at_str = nil
}

// SetTimezone sets the "timezone" field.
func (m *AlertWindowMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *AlertWindowMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *AlertWindowMutation) ResetTimezone() {
	m.timezone = nil
}

// SetSessionID sets the "session_id" field.
func (m *AlertWindowMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AlertWindowMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AlertWindowMutation) ResetSessionID() {
	m.session_id = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *AlertWindowMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AlertWindowMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AlertWindow entity.
// If the AlertWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertWindowMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *AlertWindowMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[alertwindow.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *AlertWindowMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[alertwindow.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AlertWindowMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, alertwindow.FieldIncidentID)
}

// Where appends a list predicates to the AlertWindowMutation builder.
func (m *AlertWindowMutation) Where(ps ...predicate.AlertWindow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertWindowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertWindowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertWindow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertWindowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertWindowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertWindow).
func (m *AlertWindowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertWindowMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, alertwindow.FieldUserID)
	}
	if m.window_start_str != nil {
		fields = append(fields, alertwindow.FieldWindowStartStr)
	}
	if m.window_end_str != nil {
		fields = append(fields, alertwindow.FieldWindowEndStr)
	}
	if m.window_start != nil {
		fields = append(fields, alertwindow.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, alertwindow.FieldWindowEnd)
	}
	if m.processed_at != nil {
		fields = append(fields, alertwindow.FieldProcessedAt)
	}
	if m.processed_at_str != nil {
		fields = append(fields, alertwindow.FieldProcessedAtStr)
	}
	if m.timezone != nil {
		fields = append(fields, alertwindow.FieldTimezone)
	}
	if m.session_id != nil {
		fields = append(fields, alertwindow.FieldSessionID)
	}
	if m.incident_id != nil {
		fields = append(fields, alertwindow.FieldIncidentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertWindowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertwindow.FieldUserID:
		return m.UserID()
	case alertwindow.FieldWindowStartStr:
		return m.WindowStartStr()
	case alertwindow.FieldWindowEndStr:
		return m.WindowEndStr()
	case alertwindow.FieldWindowStart:
		return m.WindowStart()
	case alertwindow.FieldWindowEnd:
		return m.WindowEnd()
	case alertwindow.FieldProcessedAt:
		return m.ProcessedAt()
	case alertwindow.FieldProcessedAtStr:
		return m.ProcessedAtStr()
	case alertwindow.FieldTimezone:
		return m.Timezone()
	case alertwindow.FieldSessionID:
		return m.SessionID()
	case alertwindow.FieldIncidentID:
		return m.IncidentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertWindowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertwindow.FieldUserID:
		return m.OldUserID(ctx)
	case alertwindow.FieldWindowStartStr:
		return m.OldWindowStartStr(ctx)
	case alertwindow.FieldWindowEndStr:
		return m.OldWindowEndStr(ctx)
	case alertwindow.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case alertwindow.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case alertwindow.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case alertwindow.FieldProcessedAtStr:
		return m.OldProcessedAtStr(ctx)
	case alertwindow.FieldTimezone:
		return m.OldTimezone(ctx)
	case alertwindow.FieldSessionID:
		return m.OldSessionID(ctx)
	case alertwindow.FieldIncidentID:
		return m.OldIncidentID(ctx)
	}
	return nil, fmt.Errorf("unknown AlertWindow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertWindowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertwindow.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case alertwindow.FieldWindowStartStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStartStr(v)
		return nil
	case alertwindow.FieldWindowEndStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEndStr(v)
		return nil
	case alertwindow.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case alertwindow.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case alertwindow.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case alertwindow.FieldProcessedAtStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAtStr(v)
		return nil
	case alertwindow.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case alertwindow.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case alertwindow.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	}
	return fmt.Errorf("unknown AlertWindow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertWindowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertWindowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertWindowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertWindow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertWindowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertwindow.FieldIncidentID) {
		fields = append(fields, alertwindow.FieldIncidentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertWindowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertWindowMutation) ClearField(name string) error {
	switch name {
	case alertwindow.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	}
	return fmt.Errorf("unknown AlertWindow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertWindowMutation) ResetField(name string) error {
	switch name {
	case alertwindow.FieldUserID:
		m.ResetUserID()
		return nil
	case alertwindow.FieldWindowStartStr:
		m.ResetWindowStartStr()
		return nil
	case alertwindow.FieldWindowEndStr:
		m.ResetWindowEndStr()
		return nil
	case alertwindow.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case alertwindow.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case alertwindow.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case alertwindow.FieldProcessedAtStr:
		m.ResetProcessedAtStr()
		return nil
	case alertwindow.FieldTimezone:
		m.ResetTimezone()
		return nil
	case alertwindow.FieldSessionID:
		m.ResetSessionID()
		return nil
	case alertwindow.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	}
	return fmt.Errorf("unknown AlertWindow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertWindowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertWindowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertWindowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertWindowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertWindowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertWindowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertWindowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AlertWindow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertWindowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AlertWindow edge %s", name)
}

// AnomalyMutation represents an operation that mutates the Anomaly nodes in the graph.
type AnomalyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	batch_id         *string
	incident_id      *string
	metric           *string
	instance         *string
	ip               *string
	port             *int
	addport          *int
	observed         *float64
	addobserved      *float64
	expected         *string
	symptom          *string
	cluster          *string
	severity         *string
	created_at       *time.Time
	created_at_str   *string
	window_start_str *string
	window_end_str   *string
	timezone         *string
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Anomaly, error)
	predicates       []predicate.Anomaly
}

var _ ent.Mutation = (*AnomalyMutation)(nil)

// anomalyOption allows management of the mutation configuration using functional options.
type anomalyOption func(*AnomalyMutation)

// newAnomalyMutation creates new mutation for the Anomaly entity.
func newAnomalyMutation(c config, op Op, opts ...anomalyOption) *AnomalyMutation {
	m := &AnomalyMutation{
		config:        c,
		op:            op,
		typ:           TypeAnomaly,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnomalyID sets the ID field of the mutation.
func withAnomalyID(id string) anomalyOption {
	return func(m *AnomalyMutation) {
		var (
			err   error
			once  sync.Once
			value *Anomaly
		)
		m.oldValue = func(ctx context.Context) (*Anomaly, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Anomaly.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnomaly sets the old Anomaly of the mutation.
func withAnomaly(node *Anomaly) anomalyOption {
	return func(m *AnomalyMutation) {
		m.oldValue = func(context.Context) (*Anomaly, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnomalyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnomalyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Anomaly entities.
func (m *AnomalyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnomalyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnomalyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Anomaly.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnomalyMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnomalyMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnomalyMutation) ResetUserID() {
	m.user_id = nil
}

// SetBatchID sets the "batch_id" field.
func (m *AnomalyMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *AnomalyMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *AnomalyMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *AnomalyMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AnomalyMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AnomalyMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetMetric sets the "metric" field.
func (m *AnomalyMutation) SetMetric(s string) {
	m.metric = &s
}

// Metric returns the value of the "metric" field in the mutation.
func (m *AnomalyMutation) Metric() (r string, exists bool) {
	v := m.metric
	if v == nil {
		return
	}
	return *v, true
}

// OldMetric returns the old "metric" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldMetric(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetric: %w", err)
	}
	return oldValue.Metric, nil
}

// ResetMetric resets all changes to the "metric" field.
func (m *AnomalyMutation) ResetMetric() {
	m.metric = nil
}

// SetInstance sets the "instance" field.
func (m *AnomalyMutation) SetInstance(s string) {
	m.instance = &s
}

// Instance returns the value of the "instance" field in the mutation.
func (m *AnomalyMutation) Instance() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstance returns the old "instance" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldInstance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstance: %w", err)
	}
	return oldValue.Instance, nil
}

// ResetInstance resets all changes to the "instance" field.
func (m *AnomalyMutation) ResetInstance() {
	m.instance = nil
}

// SetIP sets the "ip" field.
func (m *AnomalyMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *AnomalyMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *AnomalyMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[anomaly.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *AnomalyMutation) IPCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *AnomalyMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, anomaly.FieldIP)
}

// SetPort sets the "port" field.
func (m *AnomalyMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *AnomalyMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *AnomalyMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *AnomalyMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *AnomalyMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[anomaly.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *AnomalyMutation) PortCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *AnomalyMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, anomaly.FieldPort)
}

// SetObserved sets the "observed" field.
func (m *AnomalyMutation) SetObserved(f float64) {
	m.observed = &f
	m.addobserved = nil
}

// Observed returns the value of the "observed" field in the mutation.
func (m *AnomalyMutation) Observed() (r float64, exists bool) {
	v := m.observed
	if v == nil {
		return
	}
	return *v, true
}

// OldObserved returns the old "observed" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldObserved(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObserved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObserved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObserved: %w", err)
	}
	return oldValue.Observed, nil
}

// AddObserved adds f to the "observed" field.
func (m *AnomalyMutation) AddObserved(f float64) {
	if m.addobserved != nil {
		*m.addobserved += f
	} else {
		m.addobserved = &f
	}
}

// AddedObserved returns the value that was added to the "observed" field in this mutation.
func (m *AnomalyMutation) AddedObserved() (r float64, exists bool) {
	v := m.addobserved
	if v == nil {
		return
	}
	return *v, true
}

// ClearObserved clears the value of the "observed" field.
func (m *AnomalyMutation) ClearObserved() {
	m.observed = nil
	m.addobserved = nil
	m.clearedFields[anomaly.FieldObserved] = struct{}{}
}

// ObservedCleared returns if the "observed" field was cleared in this mutation.
func (m *AnomalyMutation) ObservedCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldObserved]
	return ok
}

// ResetObserved resets all changes to the "observed" field.
func (m *AnomalyMutation) ResetObserved() {
	m.observed = nil
	m.addobserved = nil
	delete(m.clearedFields, anomaly.FieldObserved)
}

// SetExpected sets the "expected" field.
func (m *AnomalyMutation) SetExpected(s string) {
	m.expected = &s
}

// Expected returns the value of the "expected" field in the mutation.
func (m *AnomalyMutation) Expected() (r string, exists bool) {
	v := m.expected
	if v == nil {
		return
	}
	return *v, true
}

// OldExpected returns the old "expected" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldExpected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpected: %w", err)
	}
	return oldValue.Expected, nil
}

// ClearExpected clears the value of the "expected" field.
func (m *AnomalyMutation) ClearExpected() {
	m.expected = nil
	m.clearedFields[anomaly.FieldExpected] = struct{}{}
}

// ExpectedCleared returns if the "expected" field was cleared in this mutation.
func (m *AnomalyMutation) ExpectedCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldExpected]
	return ok
}

// ResetExpected resets all changes to the "expected" field.
func (m *AnomalyMutation) ResetExpected() {
	m.expected = nil
	delete(m.clearedFields, anomaly.FieldExpected)
}

// SetSymptom sets the "symptom" field.
func (m *AnomalyMutation) SetSymptom(s string) {
	m.symptom = &s
}

// Symptom returns the value of the "symptom" field in the mutation.
func (m *AnomalyMutation) Symptom() (r string, exists bool) {
	v := m.symptom
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptom returns the old "symptom" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldSymptom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptom: %w", err)
	}
	return oldValue.Symptom, nil
}

// ClearSymptom clears the value of the "symptom" field.
func (m *AnomalyMutation) ClearSymptom() {
	m.symptom = nil
	m.clearedFields[anomaly.FieldSymptom] = struct{}{}
}

// SymptomCleared returns if the "symptom" field was cleared in this mutation.
func (m *AnomalyMutation) SymptomCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldSymptom]
	return ok
}

// ResetSymptom resets all changes to the "symptom" field.
func (m *AnomalyMutation) ResetSymptom() {
	m.symptom = nil
	delete(m.clearedFields, anomaly.FieldSymptom)
}

// SetCluster sets the "cluster" field.
func (m *AnomalyMutation) SetCluster(s string) {
	m.cluster = &s
}

// Cluster returns the value of the "cluster" field in the mutation.
func (m *AnomalyMutation) Cluster() (r string, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldCluster returns the old "cluster" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldCluster(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCluster is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCluster requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCluster: %w", err)
	}
	return oldValue.Cluster, nil
}

// ClearCluster clears the value of the "cluster" field.
func (m *AnomalyMutation) ClearCluster() {
	m.cluster = nil
	m.clearedFields[anomaly.FieldCluster] = struct{}{}
}

// ClusterCleared returns if the "cluster" field was cleared in this mutation.
func (m *AnomalyMutation) ClusterCleared() bool {
	_, ok := m.clearedFields[anomaly.FieldCluster]
	return ok
}

// ResetCluster resets all changes to the "cluster" field.
func (m *AnomalyMutation) ResetCluster() {
	m.cluster = nil
	delete(m.clearedFields, anomaly.FieldCluster)
}

// SetSeverity sets the "severity" field.
func (m *AnomalyMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AnomalyMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AnomalyMutation) ResetSeverity() {
	m.severity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnomalyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnomalyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnomalyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCreatedAtStr sets the "created_at_str" field.
func (m *AnomalyMutation) SetCreatedAtStr(s string) {
	m.created_at_str = &s
}

// CreatedAtStr returns the value of the "created_at_str" field in the mutation.
func (m *AnomalyMutation) CreatedAtStr() (r string, exists bool) {
	v := m.created_at_str
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtStr returns the old "created_at_str" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldCreatedAtStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtStr: %w", err)
	}
	return oldValue.CreatedAtStr, nil
}

// ResetCreatedAtStr resets all changes to the "created_at_str" field.
func (m *AnomalyMutation) ResetCreatedAtStr() {
	m.created_at_str = nil
}

// SetWindowStartStr sets the "window_start_str" field.
func (m *AnomalyMutation) SetWindowStartStr(s string) {
	m.window_start_str = &s
}

// WindowStartStr returns the value of the "window_start_str" field in the mutation.
func (m *AnomalyMutation) WindowStartStr() (r string, exists bool) {
	v := m.window_start_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStartStr returns the old "window_start_str" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldWindowStartStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStartStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStartStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStartStr: %w", err)
	}
	return oldValue.WindowStartStr, nil
}

// ResetWindowStartStr resets all changes to the "window_start_str" field.
func (m *AnomalyMutation) ResetWindowStartStr() {
	m.window_start_str = nil
}

// SetWindowEndStr sets the "window_end_str" field.
func (m *AnomalyMutation) SetWindowEndStr(s string) {
	m.window_end_str = &s
}

// WindowEndStr returns the value of the "window_end_str" field in the mutation.
func (m *AnomalyMutation) WindowEndStr() (r string, exists bool) {
	v := m.window_end_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEndStr returns the old "window_end_str" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldWindowEndStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEndStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEndStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEndStr: %w", err)
	}
	return oldValue.WindowEndStr, nil
}

// ResetWindowEndStr resets all changes to the "window_end_str" field.
func (m *AnomalyMutation) ResetWindowEndStr() {
	m.window_end_str = nil
}

// SetTimezone sets the "timezone" field.
func (m *AnomalyMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *AnomalyMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *AnomalyMutation) ResetTimezone() {
	m.timezone = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnomalyMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnomalyMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Anomaly entity.
// If the Anomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnomalyMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the AnomalyMutation builder.
func (m *AnomalyMutation) Where(ps ...predicate.Anomaly) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnomalyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnomalyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Anomaly, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnomalyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnomalyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Anomaly).
func (m *AnomalyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnomalyMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, anomaly.FieldUserID)
	}
	if m.batch_id != nil {
		fields = append(fields, anomaly.FieldBatchID)
	}
	if m.incident_id != nil {
		fields = append(fields, anomaly.FieldIncidentID)
	}
	if m.metric != nil {
		fields = append(fields, anomaly.FieldMetric)
	}
	if m.instance != nil {
		fields = append(fields, anomaly.FieldInstance)
	}
	if m.ip != nil {
		fields = append(fields, anomaly.FieldIP)
	}
	if m.port != nil {
		fields = append(fields, anomaly.FieldPort)
	}
	if m.observed != nil {
		fields = append(fields, anomaly.FieldObserved)
	}
	if m.expected != nil {
		fields = append(fields, anomaly.FieldExpected)
	}
	if m.symptom != nil {
		fields = append(fields, anomaly.FieldSymptom)
	}
	if m.cluster != nil {
		fields = append(fields, anomaly.FieldCluster)
	}
	if m.severity != nil {
		fields = append(fields, anomaly.FieldSeverity)
	}
	if m.created_at != nil {
		fields = append(fields, anomaly.FieldCreatedAt)
	}
	if m.created_at_str != nil {
		fields = append(fields, anomaly.FieldCreatedAtStr)
	}
	if m.window_start_str != nil {
		fields = append(fields, anomaly.FieldWindowStartStr)
	}
	if m.window_end_str != nil {
		fields = append(fields, anomaly.FieldWindowEndStr)
	}
	if m.timezone != nil {
		fields = append(fields, anomaly.FieldTimezone)
	}
	if m.session_id != nil {
		fields = append(fields, anomaly.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnomalyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anomaly.FieldUserID:
		return m.UserID()
	case anomaly.FieldBatchID:
		return m.BatchID()
	case anomaly.FieldIncidentID:
		return m.IncidentID()
	case anomaly.FieldMetric:
		return m.Metric()
	case anomaly.FieldInstance:
		return m.Instance()
	case anomaly.FieldIP:
		return m.IP()
	case anomaly.FieldPort:
		return m.Port()
	case anomaly.FieldObserved:
		return m.Observed()
	case anomaly.FieldExpected:
		return m.Expected()
	case anomaly.FieldSymptom:
		return m.Symptom()
	case anomaly.FieldCluster:
		return m.Cluster()
	case anomaly.FieldSeverity:
		return m.Severity()
	case anomaly.FieldCreatedAt:
		return m.CreatedAt()
	case anomaly.FieldCreatedAtStr:
		return m.CreatedAtStr()
	case anomaly.FieldWindowStartStr:
		return m.WindowStartStr()
	case anomaly.FieldWindowEndStr:
		return m.WindowEndStr()
	case anomaly.FieldTimezone:
		return m.Timezone()
	case anomaly.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnomalyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anomaly.FieldUserID:
		return m.OldUserID(ctx)
	case anomaly.FieldBatchID:
		return m.OldBatchID(ctx)
	case anomaly.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case anomaly.FieldMetric:
		return m.OldMetric(ctx)
	case anomaly.FieldInstance:
		return m.OldInstance(ctx)
	case anomaly.FieldIP:
		return m.OldIP(ctx)
	case anomaly.FieldPort:
		return m.OldPort(ctx)
	case anomaly.FieldObserved:
		return m.OldObserved(ctx)
	case anomaly.FieldExpected:
		return m.OldExpected(ctx)
	case anomaly.FieldSymptom:
		return m.OldSymptom(ctx)
	case anomaly.FieldCluster:
		return m.OldCluster(ctx)
	case anomaly.FieldSeverity:
		return m.OldSeverity(ctx)
	case anomaly.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case anomaly.FieldCreatedAtStr:
		return m.OldCreatedAtStr(ctx)
	case anomaly.FieldWindowStartStr:
		return m.OldWindowStartStr(ctx)
	case anomaly.FieldWindowEndStr:
		return m.OldWindowEndStr(ctx)
	case anomaly.FieldTimezone:
		return m.OldTimezone(ctx)
	case anomaly.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown Anomaly field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anomaly.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case anomaly.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case anomaly.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case anomaly.FieldMetric:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetric(v)
		return nil
	case anomaly.FieldInstance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstance(v)
		return nil
	case anomaly.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case anomaly.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case anomaly.FieldObserved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObserved(v)
		return nil
	case anomaly.FieldExpected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpected(v)
		return nil
	case anomaly.FieldSymptom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptom(v)
		return nil
	case anomaly.FieldCluster:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCluster(v)
		return nil
	case anomaly.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case anomaly.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case anomaly.FieldCreatedAtStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtStr(v)
		return nil
	case anomaly.FieldWindowStartStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStartStr(v)
		return nil
	case anomaly.FieldWindowEndStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEndStr(v)
		return nil
	case anomaly.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case anomaly.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown Anomaly field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnomalyMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, anomaly.FieldPort)
	}
	if m.addobserved != nil {
		fields = append(fields, anomaly.FieldObserved)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnomalyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case anomaly.FieldPort:
		return m.AddedPort()
	case anomaly.FieldObserved:
		return m.AddedObserved()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case anomaly.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	case anomaly.FieldObserved:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObserved(v)
		return nil
	}
	return fmt.Errorf("unknown Anomaly numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnomalyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anomaly.FieldIP) {
		fields = append(fields, anomaly.FieldIP)
	}
	if m.FieldCleared(anomaly.FieldPort) {
		fields = append(fields, anomaly.FieldPort)
	}
	if m.FieldCleared(anomaly.FieldObserved) {
		fields = append(fields, anomaly.FieldObserved)
	}
	if m.FieldCleared(anomaly.FieldExpected) {
		fields = append(fields, anomaly.FieldExpected)
	}
	if m.FieldCleared(anomaly.FieldSymptom) {
		fields = append(fields, anomaly.FieldSymptom)
	}
	if m.FieldCleared(anomaly.FieldCluster) {
		fields = append(fields, anomaly.FieldCluster)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnomalyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnomalyMutation) ClearField(name string) error {
	switch name {
	case anomaly.FieldIP:
		m.ClearIP()
		return nil
	case anomaly.FieldPort:
		m.ClearPort()
		return nil
	case anomaly.FieldObserved:
		m.ClearObserved()
		return nil
	case anomaly.FieldExpected:
		m.ClearExpected()
		return nil
	case anomaly.FieldSymptom:
		m.ClearSymptom()
		return nil
	case anomaly.FieldCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown Anomaly nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnomalyMutation) ResetField(name string) error {
	switch name {
	case anomaly.FieldUserID:
		m.ResetUserID()
		return nil
	case anomaly.FieldBatchID:
		m.ResetBatchID()
		return nil
	case anomaly.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case anomaly.FieldMetric:
		m.ResetMetric()
		return nil
	case anomaly.FieldInstance:
		m.ResetInstance()
		return nil
	case anomaly.FieldIP:
		m.ResetIP()
		return nil
	case anomaly.FieldPort:
		m.ResetPort()
		return nil
	case anomaly.FieldObserved:
		m.ResetObserved()
		return nil
	case anomaly.FieldExpected:
		m.ResetExpected()
		return nil
	case anomaly.FieldSymptom:
		m.ResetSymptom()
		return nil
	case anomaly.FieldCluster:
		m.ResetCluster()
		return nil
	case anomaly.FieldSeverity:
		m.ResetSeverity()
		return nil
	case anomaly.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case anomaly.FieldCreatedAtStr:
		m.ResetCreatedAtStr()
		return nil
	case anomaly.FieldWindowStartStr:
		m.ResetWindowStartStr()
		return nil
	case anomaly.FieldWindowEndStr:
		m.ResetWindowEndStr()
		return nil
	case anomaly.FieldTimezone:
		m.ResetTimezone()
		return nil
	case anomaly.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown Anomaly field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnomalyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnomalyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnomalyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnomalyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnomalyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnomalyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnomalyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Anomaly unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnomalyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Anomaly edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	user_id                    *string
	batch_id                   *string
	window_start               *time.Time
	window_end                 *time.Time
	created_at                 *time.Time
	window_start_str           *string
	window_end_str             *string
	created_at_str             *string
	timezone                   *string
	title                      *string
	severity                   *incident.Severity
	confidence                 *float64
	addconfidence              *float64
	summary                    *string
	root_cause                 *string
	contributing_factors       *[]string
	appendcontributing_factors []string
	blast_radius               *string
	evidence                   *[]map[string]interface{}
	appendevidence             []map[string]interface{}
	fix_plan                   *map[string]interface{}
	clusters                   *[]map[string]interface{}
	appendclusters             []map[string]interface{}
	raw_analysis               *map[string]interface{}
	primary_instance           *string
	ip                         *string
	port                       *int
	addport                    *int
	session_id                 *string
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Incident, error)
	predicates                 []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IncidentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentMutation) ResetUserID() {
	m.user_id = nil
}

// SetBatchID sets the "batch_id" field.
func (m *IncidentMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *IncidentMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *IncidentMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetWindowStart sets the "window_start" field.
func (m *IncidentMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *IncidentMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *IncidentMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *IncidentMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *IncidentMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *IncidentMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetWindowStartStr sets the "window_start_str" field.
func (m *IncidentMutation) SetWindowStartStr(s string) {
	m.window_start_str = &s
}

// WindowStartStr returns the value of the "window_start_str" field in the mutation.
func (m *IncidentMutation) WindowStartStr() (r string, exists bool) {
	v := m.window_start_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStartStr returns the old "window_start_str" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWindowStartStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStartStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStartStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStartStr: %w", err)
	}
	return oldValue.WindowStartStr, nil
}

// ResetWindowStartStr resets all changes to the "window_start_str" field.
func (m *IncidentMutation) ResetWindowStartStr() {
	m.window_start_str = nil
}

// SetWindowEndStr sets the "window_end_str" field.
func (m *IncidentMutation) SetWindowEndStr(s string) {
	m.window_end_str = &s
}

// WindowEndStr returns the value of the "window_end_str" field in the mutation.
func (m *IncidentMutation) WindowEndStr() (r string, exists bool) {
	v := m.window_end_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEndStr returns the old "window_end_str" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWindowEndStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEndStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEndStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEndStr: %w", err)
	}
	return oldValue.WindowEndStr, nil
}

// ResetWindowEndStr resets all changes to the "window_end_str" field.
func (m *IncidentMutation) ResetWindowEndStr() {
	m.window_end_str = nil
}

// SetCreatedAtStr sets the "created_at_str" field.
func (m *IncidentMutation) SetCreatedAtStr(s string) {
	m.created_at_str = &s
}

// CreatedAtStr returns the value of the "created_at_str" field in the mutation.
func (m *IncidentMutation) CreatedAtStr() (r string, exists bool) {
	v := m.created_at_str
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtStr returns the old "created_at_str" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAtStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtStr: %w", err)
	}
	return oldValue.CreatedAtStr, nil
}

// ResetCreatedAtStr resets all changes to the "created_at_str" field.
func (m *IncidentMutation) ResetCreatedAtStr() {
	m.created_at_str = nil
}

// SetTimezone sets the "timezone" field.
func (m *IncidentMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *IncidentMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *IncidentMutation) ResetTimezone() {
	m.timezone = nil
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetConfidence sets the "confidence" field.
func (m *IncidentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *IncidentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *IncidentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *IncidentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *IncidentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSummary sets the "summary" field.
func (m *IncidentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *IncidentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *IncidentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[incident.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *IncidentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[incident.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *IncidentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, incident.FieldSummary)
}

// SetRootCause sets the "root_cause" field.
func (m *IncidentMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *IncidentMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRootCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ClearRootCause clears the value of the "root_cause" field.
func (m *IncidentMutation) ClearRootCause() {
	m.root_cause = nil
	m.clearedFields[incident.FieldRootCause] = struct{}{}
}

// RootCauseCleared returns if the "root_cause" field was cleared in this mutation.
func (m *IncidentMutation) RootCauseCleared() bool {
	_, ok := m.clearedFields[incident.FieldRootCause]
	return ok
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *IncidentMutation) ResetRootCause() {
	m.root_cause = nil
	delete(m.clearedFields, incident.FieldRootCause)
}

// SetContributingFactors sets the "contributing_factors" field.
func (m *IncidentMutation) SetContributingFactors(s []string) {
	m.contributing_factors = &s
	m.appendcontributing_factors = nil
}

// ContributingFactors returns the value of the "contributing_factors" field in the mutation.
func (m *IncidentMutation) ContributingFactors() (r []string, exists bool) {
	v := m.contributing_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldContributingFactors returns the old "contributing_factors" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldContributingFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributingFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributingFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributingFactors: %w", err)
	}
	return oldValue.ContributingFactors, nil
}

// AppendContributingFactors adds s to the "contributing_factors" field.
func (m *IncidentMutation) AppendContributingFactors(s []string) {
	m.appendcontributing_factors = append(m.appendcontributing_factors, s...)
}

// AppendedContributingFactors returns the list of values that were appended to the "contributing_factors" field in this mutation.
func (m *IncidentMutation) AppendedContributingFactors() ([]string, bool) {
	if len(m.appendcontributing_factors) == 0 {
		return nil, false
	}
	return m.appendcontributing_factors, true
}

// ClearContributingFactors clears the value of the "contributing_factors" field.
func (m *IncidentMutation) ClearContributingFactors() {
	m.contributing_factors = nil
	m.appendcontributing_factors = nil
	m.clearedFields[incident.FieldContributingFactors] = struct{}{}
}

// ContributingFactorsCleared returns if the "contributing_factors" field was cleared in this mutation.
func (m *IncidentMutation) ContributingFactorsCleared() bool {
	_, ok := m.clearedFields[incident.FieldContributingFactors]
	return ok
}

// ResetContributingFactors resets all changes to the "contributing_factors" field.
func (m *IncidentMutation) ResetContributingFactors() {
	m.contributing_factors = nil
	m.appendcontributing_factors = nil
	delete(m.clearedFields, incident.FieldContributingFactors)
}

// SetBlastRadius sets the "blast_radius" field.
func (m *IncidentMutation) SetBlastRadius(s string) {
	m.blast_radius = &s
}

// BlastRadius returns the value of the "blast_radius" field in the mutation.
func (m *IncidentMutation) BlastRadius() (r string, exists bool) {
	v := m.blast_radius
	if v == nil {
		return
	}
	return *v, true
}

// OldBlastRadius returns the old "blast_radius" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldBlastRadius(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlastRadius is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlastRadius requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlastRadius: %w", err)
	}
	return oldValue.BlastRadius, nil
}

// ClearBlastRadius clears the value of the "blast_radius" field.
func (m *IncidentMutation) ClearBlastRadius() {
	m.blast_radius = nil
	m.clearedFields[incident.FieldBlastRadius] = struct{}{}
}

// BlastRadiusCleared returns if the "blast_radius" field was cleared in this mutation.
func (m *IncidentMutation) BlastRadiusCleared() bool {
	_, ok := m.clearedFields[incident.FieldBlastRadius]
	return ok
}

// ResetBlastRadius resets all changes to the "blast_radius" field.
func (m *IncidentMutation) ResetBlastRadius() {
	m.blast_radius = nil
	delete(m.clearedFields, incident.FieldBlastRadius)
}

// SetEvidence sets the "evidence" field.
func (m *IncidentMutation) SetEvidence(value []map[string]interface{}) {
	m.evidence = &value
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *IncidentMutation) Evidence() (r []map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldEvidence(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds value to the "evidence" field.
func (m *IncidentMutation) AppendEvidence(value []map[string]interface{}) {
	m.appendevidence = append(m.appendevidence, value...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *IncidentMutation) AppendedEvidence() ([]map[string]interface{}, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *IncidentMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[incident.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *IncidentMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[incident.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *IncidentMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, incident.FieldEvidence)
}

// SetFixPlan sets the "fix_plan" field.
func (m *IncidentMutation) SetFixPlan(value map[string]interface{}) {
	m.fix_plan = &value
}

// FixPlan returns the value of the "fix_plan" field in the mutation.
func (m *IncidentMutation) FixPlan() (r map[string]interface{}, exists bool) {
	v := m.fix_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldFixPlan returns the old "fix_plan" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldFixPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixPlan: %w", err)
	}
	return oldValue.FixPlan, nil
}

// ClearFixPlan clears the value of the "fix_plan" field.
func (m *IncidentMutation) ClearFixPlan() {
	m.fix_plan = nil
	m.clearedFields[incident.FieldFixPlan] = struct{}{}
}

// FixPlanCleared returns if the "fix_plan" field was cleared in this mutation.
func (m *IncidentMutation) FixPlanCleared() bool {
	_, ok := m.clearedFields[incident.FieldFixPlan]
	return ok
}

// ResetFixPlan resets all changes to the "fix_plan" field.
func (m *IncidentMutation) ResetFixPlan() {
	m.fix_plan = nil
	delete(m.clearedFields, incident.FieldFixPlan)
}

// SetClusters sets the "clusters" field.
func (m *IncidentMutation) SetClusters(value []map[string]interface{}) {
	m.clusters = &value
	m.appendclusters = nil
}

// Clusters returns the value of the "clusters" field in the mutation.
func (m *IncidentMutation) Clusters() (r []map[string]interface{}, exists bool) {
	v := m.clusters
	if v == nil {
		return
	}
	return *v, true
}

// OldClusters returns the old "clusters" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldClusters(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusters: %w", err)
	}
	return oldValue.Clusters, nil
}

// AppendClusters adds value to the "clusters" field.
func (m *IncidentMutation) AppendClusters(value []map[string]interface{}) {
	m.appendclusters = append(m.appendclusters, value...)
}

// AppendedClusters returns the list of values that were appended to the "clusters" field in this mutation.
func (m *IncidentMutation) AppendedClusters() ([]map[string]interface{}, bool) {
	if len(m.appendclusters) == 0 {
		return nil, false
	}
	return m.appendclusters, true
}

// ClearClusters clears the value of the "clusters" field.
func (m *IncidentMutation) ClearClusters() {
	m.clusters = nil
	m.appendclusters = nil
	m.clearedFields[incident.FieldClusters] = struct{}{}
}

// ClustersCleared returns if the "clusters" field was cleared in this mutation.
func (m *IncidentMutation) ClustersCleared() bool {
	_, ok := m.clearedFields[incident.FieldClusters]
	return ok
}

// ResetClusters resets all changes to the "clusters" field.
func (m *IncidentMutation) ResetClusters() {
	m.clusters = nil
	m.appendclusters = nil
	delete(m.clearedFields, incident.FieldClusters)
}

// SetRawAnalysis sets the "raw_analysis" field.
func (m *IncidentMutation) SetRawAnalysis(value map[string]interface{}) {
	m.raw_analysis = &value
}

// RawAnalysis returns the value of the "raw_analysis" field in the mutation.
func (m *IncidentMutation) RawAnalysis() (r map[string]interface{}, exists bool) {
	v := m.raw_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldRawAnalysis returns the old "raw_analysis" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRawAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawAnalysis: %w", err)
	}
	return oldValue.RawAnalysis, nil
}

// ClearRawAnalysis clears the value of the "raw_analysis" field.
func (m *IncidentMutation) ClearRawAnalysis() {
	m.raw_analysis = nil
	m.clearedFields[incident.FieldRawAnalysis] = struct{}{}
}

// RawAnalysisCleared returns if the "raw_analysis" field was cleared in this mutation.
func (m *IncidentMutation) RawAnalysisCleared() bool {
	_, ok := m.clearedFields[incident.FieldRawAnalysis]
	return ok
}

// ResetRawAnalysis resets all changes to the "raw_analysis" field.
func (m *IncidentMutation) ResetRawAnalysis() {
	m.raw_analysis = nil
	delete(m.clearedFields, incident.FieldRawAnalysis)
}

// SetPrimaryInstance sets the "primary_instance" field.
func (m *IncidentMutation) SetPrimaryInstance(s string) {
	m.primary_instance = &s
}

// PrimaryInstance returns the value of the "primary_instance" field in the mutation.
func (m *IncidentMutation) PrimaryInstance() (r string, exists bool) {
	v := m.primary_instance
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryInstance returns the old "primary_instance" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrimaryInstance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryInstance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryInstance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryInstance: %w", err)
	}
	return oldValue.PrimaryInstance, nil
}

// ResetPrimaryInstance resets all changes to the "primary_instance" field.
func (m *IncidentMutation) ResetPrimaryInstance() {
	m.primary_instance = nil
}

// SetIP sets the "ip" field.
func (m *IncidentMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *IncidentMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *IncidentMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[incident.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *IncidentMutation) IPCleared() bool {
	_, ok := m.clearedFields[incident.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *IncidentMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, incident.FieldIP)
}

// SetPort sets the "port" field.
func (m *IncidentMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *IncidentMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *IncidentMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *IncidentMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *IncidentMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[incident.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *IncidentMutation) PortCleared() bool {
	_, ok := m.clearedFields[incident.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *IncidentMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, incident.FieldPort)
}

// SetSessionID sets the "session_id" field.
func (m *IncidentMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IncidentMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IncidentMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.user_id != nil {
		fields = append(fields, incident.FieldUserID)
	}
	if m.batch_id != nil {
		fields = append(fields, incident.FieldBatchID)
	}
	if m.window_start != nil {
		fields = append(fields, incident.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, incident.FieldWindowEnd)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.window_start_str != nil {
		fields = append(fields, incident.FieldWindowStartStr)
	}
	if m.window_end_str != nil {
		fields = append(fields, incident.FieldWindowEndStr)
	}
	if m.created_at_str != nil {
		fields = append(fields, incident.FieldCreatedAtStr)
	}
	if m.timezone != nil {
		fields = append(fields, incident.FieldTimezone)
	}
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.confidence != nil {
		fields = append(fields, incident.FieldConfidence)
	}
	if m.summary != nil {
		fields = append(fields, incident.FieldSummary)
	}
	if m.root_cause != nil {
		fields = append(fields, incident.FieldRootCause)
	}
	if m.contributing_factors != nil {
		fields = append(fields, incident.FieldContributingFactors)
	}
	if m.blast_radius != nil {
		fields = append(fields, incident.FieldBlastRadius)
	}
	if m.evidence != nil {
		fields = append(fields, incident.FieldEvidence)
	}
	if m.fix_plan != nil {
		fields = append(fields, incident.FieldFixPlan)
	}
	if m.clusters != nil {
		fields = append(fields, incident.FieldClusters)
	}
	if m.raw_analysis != nil {
		fields = append(fields, incident.FieldRawAnalysis)
	}
	if m.primary_instance != nil {
		fields = append(fields, incident.FieldPrimaryInstance)
	}
	if m.ip != nil {
		fields = append(fields, incident.FieldIP)
	}
	if m.port != nil {
		fields = append(fields, incident.FieldPort)
	}
	if m.session_id != nil {
		fields = append(fields, incident.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldUserID:
		return m.UserID()
	case incident.FieldBatchID:
		return m.BatchID()
	case incident.FieldWindowStart:
		return m.WindowStart()
	case incident.FieldWindowEnd:
		return m.WindowEnd()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldWindowStartStr:
		return m.WindowStartStr()
	case incident.FieldWindowEndStr:
		return m.WindowEndStr()
	case incident.FieldCreatedAtStr:
		return m.CreatedAtStr()
	case incident.FieldTimezone:
		return m.Timezone()
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldConfidence:
		return m.Confidence()
	case incident.FieldSummary:
		return m.Summary()
	case incident.FieldRootCause:
		return m.RootCause()
	case incident.FieldContributingFactors:
		return m.ContributingFactors()
	case incident.FieldBlastRadius:
		return m.BlastRadius()
	case incident.FieldEvidence:
		return m.Evidence()
	case incident.FieldFixPlan:
		return m.FixPlan()
	case incident.FieldClusters:
		return m.Clusters()
	case incident.FieldRawAnalysis:
		return m.RawAnalysis()
	case incident.FieldPrimaryInstance:
		return m.PrimaryInstance()
	case incident.FieldIP:
		return m.IP()
	case incident.FieldPort:
		return m.Port()
	case incident.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldUserID:
		return m.OldUserID(ctx)
	case incident.FieldBatchID:
		return m.OldBatchID(ctx)
	case incident.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case incident.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldWindowStartStr:
		return m.OldWindowStartStr(ctx)
	case incident.FieldWindowEndStr:
		return m.OldWindowEndStr(ctx)
	case incident.FieldCreatedAtStr:
		return m.OldCreatedAtStr(ctx)
	case incident.FieldTimezone:
		return m.OldTimezone(ctx)
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldConfidence:
		return m.OldConfidence(ctx)
	case incident.FieldSummary:
		return m.OldSummary(ctx)
	case incident.FieldRootCause:
		return m.OldRootCause(ctx)
	case incident.FieldContributingFactors:
		return m.OldContributingFactors(ctx)
	case incident.FieldBlastRadius:
		return m.OldBlastRadius(ctx)
	case incident.FieldEvidence:
		return m.OldEvidence(ctx)
	case incident.FieldFixPlan:
		return m.OldFixPlan(ctx)
	case incident.FieldClusters:
		return m.OldClusters(ctx)
	case incident.FieldRawAnalysis:
		return m.OldRawAnalysis(ctx)
	case incident.FieldPrimaryInstance:
		return m.OldPrimaryInstance(ctx)
	case incident.FieldIP:
		return m.OldIP(ctx)
	case incident.FieldPort:
		return m.OldPort(ctx)
	case incident.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incident.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case incident.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case incident.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldWindowStartStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStartStr(v)
		return nil
	case incident.FieldWindowEndStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEndStr(v)
		return nil
	case incident.FieldCreatedAtStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtStr(v)
		return nil
	case incident.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case incident.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case incident.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case incident.FieldContributingFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributingFactors(v)
		return nil
	case incident.FieldBlastRadius:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlastRadius(v)
		return nil
	case incident.FieldEvidence:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case incident.FieldFixPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixPlan(v)
		return nil
	case incident.FieldClusters:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusters(v)
		return nil
	case incident.FieldRawAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawAnalysis(v)
		return nil
	case incident.FieldPrimaryInstance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryInstance(v)
		return nil
	case incident.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case incident.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case incident.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, incident.FieldConfidence)
	}
	if m.addport != nil {
		fields = append(fields, incident.FieldPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldConfidence:
		return m.AddedConfidence()
	case incident.FieldPort:
		return m.AddedPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incident.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case incident.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldSummary) {
		fields = append(fields, incident.FieldSummary)
	}
	if m.FieldCleared(incident.FieldRootCause) {
		fields = append(fields, incident.FieldRootCause)
	}
	if m.FieldCleared(incident.FieldContributingFactors) {
		fields = append(fields, incident.FieldContributingFactors)
	}
	if m.FieldCleared(incident.FieldBlastRadius) {
		fields = append(fields, incident.FieldBlastRadius)
	}
	if m.FieldCleared(incident.FieldEvidence) {
		fields = append(fields, incident.FieldEvidence)
	}
	if m.FieldCleared(incident.FieldFixPlan) {
		fields = append(fields, incident.FieldFixPlan)
	}
	if m.FieldCleared(incident.FieldClusters) {
		fields = append(fields, incident.FieldClusters)
	}
	if m.FieldCleared(incident.FieldRawAnalysis) {
		fields = append(fields, incident.FieldRawAnalysis)
	}
	if m.FieldCleared(incident.FieldIP) {
		fields = append(fields, incident.FieldIP)
	}
	if m.FieldCleared(incident.FieldPort) {
		fields = append(fields, incident.FieldPort)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldSummary:
		m.ClearSummary()
		return nil
	case incident.FieldRootCause:
		m.ClearRootCause()
		return nil
	case incident.FieldContributingFactors:
		m.ClearContributingFactors()
		return nil
	case incident.FieldBlastRadius:
		m.ClearBlastRadius()
		return nil
	case incident.FieldEvidence:
		m.ClearEvidence()
		return nil
	case incident.FieldFixPlan:
		m.ClearFixPlan()
		return nil
	case incident.FieldClusters:
		m.ClearClusters()
		return nil
	case incident.FieldRawAnalysis:
		m.ClearRawAnalysis()
		return nil
	case incident.FieldIP:
		m.ClearIP()
		return nil
	case incident.FieldPort:
		m.ClearPort()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldUserID:
		m.ResetUserID()
		return nil
	case incident.FieldBatchID:
		m.ResetBatchID()
		return nil
	case incident.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case incident.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldWindowStartStr:
		m.ResetWindowStartStr()
		return nil
	case incident.FieldWindowEndStr:
		m.ResetWindowEndStr()
		return nil
	case incident.FieldCreatedAtStr:
		m.ResetCreatedAtStr()
		return nil
	case incident.FieldTimezone:
		m.ResetTimezone()
		return nil
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldConfidence:
		m.ResetConfidence()
		return nil
	case incident.FieldSummary:
		m.ResetSummary()
		return nil
	case incident.FieldRootCause:
		m.ResetRootCause()
		return nil
	case incident.FieldContributingFactors:
		m.ResetContributingFactors()
		return nil
	case incident.FieldBlastRadius:
		m.ResetBlastRadius()
		return nil
	case incident.FieldEvidence:
		m.ResetEvidence()
		return nil
	case incident.FieldFixPlan:
		m.ResetFixPlan()
		return nil
	case incident.FieldClusters:
		m.ResetClusters()
		return nil
	case incident.FieldRawAnalysis:
		m.ResetRawAnalysis()
		return nil
	case incident.FieldPrimaryInstance:
		m.ResetPrimaryInstance()
		return nil
	case incident.FieldIP:
		m.ResetIP()
		return nil
	case incident.FieldPort:
		m.ResetPort()
		return nil
	case incident.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Incident edge %s", name)
}

// MetricsBatchMutation represents an operation that mutates the MetricsBatch nodes in the graph.
type MetricsBatchMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	window_start     *time.Time
	window_end       *time.Time
	collected_at     *time.Time
	window_start_str *string
	window_end_str   *string
	collected_at_str *string
	timezone         *string
	metrics          *[]map[string]interface{}
	appendmetrics    []map[string]interface{}
	metrics_count    *int
	addmetrics_count *int
	primary_instance *string
	ip               *string
	port             *int
	addport          *int
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MetricsBatch, error)
	predicates       []predicate.MetricsBatch
}

var _ ent.Mutation = (*MetricsBatchMutation)(nil)

// metricsbatchOption allows management of the mutation configuration using functional options.
type metricsbatchOption func(*MetricsBatchMutation)

// newMetricsBatchMutation creates new mutation for the MetricsBatch entity.
func newMetricsBatchMutation(c config, op Op, opts ...metricsbatchOption) *MetricsBatchMutation {
	m := &MetricsBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricsBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricsBatchID sets the ID field of the mutation.
func withMetricsBatchID(id string) metricsbatchOption {
	return func(m *MetricsBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricsBatch
		)
		m.oldValue = func(ctx context.Context) (*MetricsBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricsBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricsBatch sets the old MetricsBatch of the mutation.
func withMetricsBatch(node *MetricsBatch) metricsbatchOption {
	return func(m *MetricsBatchMutation) {
		m.oldValue = func(context.Context) (*MetricsBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricsBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricsBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MetricsBatch entities.
func (m *MetricsBatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricsBatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricsBatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricsBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MetricsBatchMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MetricsBatchMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MetricsBatchMutation) ResetUserID() {
	m.user_id = nil
}

// SetWindowStart sets the "window_start" field.
func (m *MetricsBatchMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *MetricsBatchMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *MetricsBatchMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *MetricsBatchMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *MetricsBatchMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *MetricsBatchMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetCollectedAt sets the "collected_at" field.
func (m *MetricsBatchMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *MetricsBatchMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *MetricsBatchMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// SetWindowStartStr sets the "window_start_str" field.
func (m *MetricsBatchMutation) SetWindowStartStr(s string) {
	m.window_start_str = &s
}

// WindowStartStr returns the value of the "window_start_str" field in the mutation.
func (m *MetricsBatchMutation) WindowStartStr() (r string, exists bool) {
	v := m.window_start_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStartStr returns the old "window_start_str" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldWindowStartStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStartStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStartStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStartStr: %w", err)
	}
	return oldValue.WindowStartStr, nil
}

// ResetWindowStartStr resets all changes to the "window_start_str" field.
func (m *MetricsBatchMutation) ResetWindowStartStr() {
	m.window_start_str = nil
}

// SetWindowEndStr sets the "window_end_str" field.
func (m *MetricsBatchMutation) SetWindowEndStr(s string) {
	m.window_end_str = &s
}

// WindowEndStr returns the value of the "window_end_str" field in the mutation.
func (m *MetricsBatchMutation) WindowEndStr() (r string, exists bool) {
	v := m.window_end_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEndStr returns the old "window_end_str" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldWindowEndStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEndStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEndStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEndStr: %w", err)
	}
	return oldValue.WindowEndStr, nil
}

// ResetWindowEndStr resets all changes to the "window_end_str" field.
func (m *MetricsBatchMutation) ResetWindowEndStr() {
	m.window_end_str = nil
}

// SetCollectedAtStr sets the "collected_at_str" field.
func (m *MetricsBatchMutation) SetCollectedAtStr(s string) {
	m.collected_at_str = &s
}

// CollectedAtStr returns the value of the "collected_at_str" field in the mutation.
func (m *MetricsBatchMutation) CollectedAtStr() (r string, exists bool) {
	v := m.collected_at_str
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAtStr returns the old "collected_at_str" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldCollectedAtStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAtStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAtStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAtStr: %w", err)
	}
	return oldValue.CollectedAtStr, nil
}

// ResetCollectedAtStr resets all changes to the "collected_at_str" field.
func (m *MetricsBatchMutation) ResetCollectedAtStr() {
	m.collected_at_str = nil
}

// SetTimezone sets the "timezone" field.
func (m *MetricsBatchMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *MetricsBatchMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *MetricsBatchMutation) ResetTimezone() {
	m.timezone = nil
}

// SetMetrics sets the "metrics" field.
func (m *MetricsBatchMutation) SetMetrics(value []map[string]interface{}) {
	m.metrics = &value
	m.appendmetrics = nil
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *MetricsBatchMutation) Metrics() (r []map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldMetrics(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// AppendMetrics adds value to the "metrics" field.
func (m *MetricsBatchMutation) AppendMetrics(value []map[string]interface{}) {
	m.appendmetrics = append(m.appendmetrics, value...)
}

// AppendedMetrics returns the list of values that were appended to the "metrics" field in this mutation.
func (m *MetricsBatchMutation) AppendedMetrics() ([]map[string]interface{}, bool) {
	if len(m.appendmetrics) == 0 {
		return nil, false
	}
	return m.appendmetrics, true
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *MetricsBatchMutation) ResetMetrics() {
	m.metrics = nil
	m.appendmetrics = nil
}

// SetMetricsCount sets the "metrics_count" field.
func (m *MetricsBatchMutation) SetMetricsCount(i int) {
	m.metrics_count = &i
	m.addmetrics_count = nil
}

// MetricsCount returns the value of the "metrics_count" field in the mutation.
func (m *MetricsBatchMutation) MetricsCount() (r int, exists bool) {
	v := m.metrics_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsCount returns the old "metrics_count" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldMetricsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsCount: %w", err)
	}
	return oldValue.MetricsCount, nil
}

// AddMetricsCount adds i to the "metrics_count" field.
func (m *MetricsBatchMutation) AddMetricsCount(i int) {
	if m.addmetrics_count != nil {
		*m.addmetrics_count += i
	} else {
		m.addmetrics_count = &i
	}
}

// AddedMetricsCount returns the value that was added to the "metrics_count" field in this mutation.
func (m *MetricsBatchMutation) AddedMetricsCount() (r int, exists bool) {
	v := m.addmetrics_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMetricsCount resets all changes to the "metrics_count" field.
func (m *MetricsBatchMutation) ResetMetricsCount() {
	m.metrics_count = nil
	m.addmetrics_count = nil
}

// SetPrimaryInstance sets the "primary_instance" field.
func (m *MetricsBatchMutation) SetPrimaryInstance(s string) {
	m.primary_instance = &s
}

// PrimaryInstance returns the value of the "primary_instance" field in the mutation.
func (m *MetricsBatchMutation) PrimaryInstance() (r string, exists bool) {
	v := m.primary_instance
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryInstance returns the old "primary_instance" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldPrimaryInstance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryInstance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryInstance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryInstance: %w", err)
	}
	return oldValue.PrimaryInstance, nil
}

// ResetPrimaryInstance resets all changes to the "primary_instance" field.
func (m *MetricsBatchMutation) ResetPrimaryInstance() {
	m.primary_instance = nil
}

// SetIP sets the "ip" field.
func (m *MetricsBatchMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *MetricsBatchMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *MetricsBatchMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[metricsbatch.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *MetricsBatchMutation) IPCleared() bool {
	_, ok := m.clearedFields[metricsbatch.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *MetricsBatchMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, metricsbatch.FieldIP)
}

// SetPort sets the "port" field.
func (m *MetricsBatchMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *MetricsBatchMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *MetricsBatchMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *MetricsBatchMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *MetricsBatchMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[metricsbatch.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *MetricsBatchMutation) PortCleared() bool {
	_, ok := m.clearedFields[metricsbatch.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *MetricsBatchMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, metricsbatch.FieldPort)
}

// SetSessionID sets the "session_id" field.
func (m *MetricsBatchMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MetricsBatchMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MetricsBatch entity.
// If the MetricsBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsBatchMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MetricsBatchMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the MetricsBatchMutation builder.
func (m *MetricsBatchMutation) Where(ps ...predicate.MetricsBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricsBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricsBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricsBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricsBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricsBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricsBatch).
func (m *MetricsBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricsBatchMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, metricsbatch.FieldUserID)
	}
	if m.window_start != nil {
		fields = append(fields, metricsbatch.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, metricsbatch.FieldWindowEnd)
	}
	if m.collected_at != nil {
		fields = append(fields, metricsbatch.FieldCollectedAt)
	}
	if m.window_start_str != nil {
		fields = append(fields, metricsbatch.FieldWindowStartStr)
	}
	if m.window_end_str != nil {
		fields = append(fields, metricsbatch.FieldWindowEndStr)
	}
	if m.collected_at_str != nil {
		fields = append(fields, metricsbatch.FieldCollectedAtStr)
	}
	if m.timezone != nil {
		fields = append(fields, metricsbatch.FieldTimezone)
	}
	if m.metrics != nil {
		fields = append(fields, metricsbatch.FieldMetrics)
	}
	if m.metrics_count != nil {
		fields = append(fields, metricsbatch.FieldMetricsCount)
	}
	if m.primary_instance != nil {
		fields = append(fields, metricsbatch.FieldPrimaryInstance)
	}
	if m.ip != nil {
		fields = append(fields, metricsbatch.FieldIP)
	}
	if m.port != nil {
		fields = append(fields, metricsbatch.FieldPort)
	}
	if m.session_id != nil {
		fields = append(fields, metricsbatch.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricsBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricsbatch.FieldUserID:
		return m.UserID()
	case metricsbatch.FieldWindowStart:
		return m.WindowStart()
	case metricsbatch.FieldWindowEnd:
		return m.WindowEnd()
	case metricsbatch.FieldCollectedAt:
		return m.CollectedAt()
	case metricsbatch.FieldWindowStartStr:
		return m.WindowStartStr()
	case metricsbatch.FieldWindowEndStr:
		return m.WindowEndStr()
	case metricsbatch.FieldCollectedAtStr:
		return m.CollectedAtStr()
	case metricsbatch.FieldTimezone:
		return m.Timezone()
	case metricsbatch.FieldMetrics:
		return m.Metrics()
	case metricsbatch.FieldMetricsCount:
		return m.MetricsCount()
	case metricsbatch.FieldPrimaryInstance:
		return m.PrimaryInstance()
	case metricsbatch.FieldIP:
		return m.IP()
	case metricsbatch.FieldPort:
		return m.Port()
	case metricsbatch.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricsBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricsbatch.FieldUserID:
		return m.OldUserID(ctx)
	case metricsbatch.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case metricsbatch.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case metricsbatch.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	case metricsbatch.FieldWindowStartStr:
		return m.OldWindowStartStr(ctx)
	case metricsbatch.FieldWindowEndStr:
		return m.OldWindowEndStr(ctx)
	case metricsbatch.FieldCollectedAtStr:
		return m.OldCollectedAtStr(ctx)
	case metricsbatch.FieldTimezone:
		return m.OldTimezone(ctx)
	case metricsbatch.FieldMetrics:
		return m.OldMetrics(ctx)
	case metricsbatch.FieldMetricsCount:
		return m.OldMetricsCount(ctx)
	case metricsbatch.FieldPrimaryInstance:
		return m.OldPrimaryInstance(ctx)
	case metricsbatch.FieldIP:
		return m.OldIP(ctx)
	case metricsbatch.FieldPort:
		return m.OldPort(ctx)
	case metricsbatch.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown MetricsBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricsbatch.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case metricsbatch.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case metricsbatch.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case metricsbatch.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	case metricsbatch.FieldWindowStartStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStartStr(v)
		return nil
	case metricsbatch.FieldWindowEndStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEndStr(v)
		return nil
	case metricsbatch.FieldCollectedAtStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAtStr(v)
		return nil
	case metricsbatch.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case metricsbatch.FieldMetrics:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case metricsbatch.FieldMetricsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsCount(v)
		return nil
	case metricsbatch.FieldPrimaryInstance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryInstance(v)
		return nil
	case metricsbatch.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case metricsbatch.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case metricsbatch.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricsBatchMutation) AddedFields() []string {
	var fields []string
	if m.addmetrics_count != nil {
		fields = append(fields, metricsbatch.FieldMetricsCount)
	}
	if m.addport != nil {
		fields = append(fields, metricsbatch.FieldPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricsBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricsbatch.FieldMetricsCount:
		return m.AddedMetricsCount()
	case metricsbatch.FieldPort:
		return m.AddedPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricsbatch.FieldMetricsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetricsCount(v)
		return nil
	case metricsbatch.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricsBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(metricsbatch.FieldIP) {
		fields = append(fields, metricsbatch.FieldIP)
	}
	if m.FieldCleared(metricsbatch.FieldPort) {
		fields = append(fields, metricsbatch.FieldPort)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricsBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricsBatchMutation) ClearField(name string) error {
	switch name {
	case metricsbatch.FieldIP:
		m.ClearIP()
		return nil
	case metricsbatch.FieldPort:
		m.ClearPort()
		return nil
	}
	return fmt.Errorf("unknown MetricsBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricsBatchMutation) ResetField(name string) error {
	switch name {
	case metricsbatch.FieldUserID:
		m.ResetUserID()
		return nil
	case metricsbatch.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case metricsbatch.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case metricsbatch.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	case metricsbatch.FieldWindowStartStr:
		m.ResetWindowStartStr()
		return nil
	case metricsbatch.FieldWindowEndStr:
		m.ResetWindowEndStr()
		return nil
	case metricsbatch.FieldCollectedAtStr:
		m.ResetCollectedAtStr()
		return nil
	case metricsbatch.FieldTimezone:
		m.ResetTimezone()
		return nil
	case metricsbatch.FieldMetrics:
		m.ResetMetrics()
		return nil
	case metricsbatch.FieldMetricsCount:
		m.ResetMetricsCount()
		return nil
	case metricsbatch.FieldPrimaryInstance:
		m.ResetPrimaryInstance()
		return nil
	case metricsbatch.FieldIP:
		m.ResetIP()
		return nil
	case metricsbatch.FieldPort:
		m.ResetPort()
		return nil
	case metricsbatch.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown MetricsBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricsBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricsBatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricsBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricsBatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricsBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricsBatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricsBatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MetricsBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricsBatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MetricsBatch edge %s", name)
}

// NotificationConfigMutation represents an operation that mutates the NotificationConfig nodes in the graph.
type NotificationConfigMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	channel          *notificationconfig.Channel
	enabled          *bool
	webhook_url      *string
	recipients       *[]string
	appendrecipients []string
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*NotificationConfig, error)
	predicates       []predicate.NotificationConfig
}

var _ ent.Mutation = (*NotificationConfigMutation)(nil)

// notificationconfigOption allows management of the mutation configuration using functional options.
type notificationconfigOption func(*NotificationConfigMutation)

// newNotificationConfigMutation creates new mutation for the NotificationConfig entity.
func newNotificationConfigMutation(c config, op Op, opts ...notificationconfigOption) *NotificationConfigMutation {
	m := &NotificationConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationConfigID sets the ID field of the mutation.
func withNotificationConfigID(id string) notificationconfigOption {
	return func(m *NotificationConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationConfig
		)
		m.oldValue = func(ctx context.Context) (*NotificationConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationConfig sets the old NotificationConfig of the mutation.
func withNotificationConfig(node *NotificationConfig) notificationconfigOption {
	return func(m *NotificationConfigMutation) {
		m.oldValue = func(context.Context) (*NotificationConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationConfig entities.
func (m *NotificationConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NotificationConfigMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationConfigMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationConfigMutation) ResetUserID() {
	m.user_id = nil
}

// SetChannel sets the "channel" field.
func (m *NotificationConfigMutation) SetChannel(n notificationconfig.Channel) {
	m.channel = &n
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NotificationConfigMutation) Channel() (r notificationconfig.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldChannel(ctx context.Context) (v notificationconfig.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NotificationConfigMutation) ResetChannel() {
	m.channel = nil
}

// SetEnabled sets the "enabled" field.
func (m *NotificationConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *NotificationConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *NotificationConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetWebhookURL sets the "webhook_url" field.
func (m *NotificationConfigMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *NotificationConfigMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldWebhookURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *NotificationConfigMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[notificationconfig.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *NotificationConfigMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[notificationconfig.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *NotificationConfigMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, notificationconfig.FieldWebhookURL)
}

// SetRecipients sets the "recipients" field.
func (m *NotificationConfigMutation) SetRecipients(s []string) {
	m.recipients = &s
	m.appendrecipients = nil
}

// Recipients returns the value of the "recipients" field in the mutation.
func (m *NotificationConfigMutation) Recipients() (r []string, exists bool) {
	v := m.recipients
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipients returns the old "recipients" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldRecipients(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipients: %w", err)
	}
	return oldValue.Recipients, nil
}

// AppendRecipients adds s to the "recipients" field.
func (m *NotificationConfigMutation) AppendRecipients(s []string) {
	m.appendrecipients = append(m.appendrecipients, s...)
}

// AppendedRecipients returns the list of values that were appended to the "recipients" field in this mutation.
func (m *NotificationConfigMutation) AppendedRecipients() ([]string, bool) {
	if len(m.appendrecipients) == 0 {
		return nil, false
	}
	return m.appendrecipients, true
}

// ClearRecipients clears the value of the "recipients" field.
func (m *NotificationConfigMutation) ClearRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	m.clearedFields[notificationconfig.FieldRecipients] = struct{}{}
}

// RecipientsCleared returns if the "recipients" field was cleared in this mutation.
func (m *NotificationConfigMutation) RecipientsCleared() bool {
	_, ok := m.clearedFields[notificationconfig.FieldRecipients]
	return ok
}

// ResetRecipients resets all changes to the "recipients" field.
func (m *NotificationConfigMutation) ResetRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	delete(m.clearedFields, notificationconfig.FieldRecipients)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationConfig entity.
// If the NotificationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NotificationConfigMutation builder.
func (m *NotificationConfigMutation) Where(ps ...predicate.NotificationConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationConfig).
func (m *NotificationConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, notificationconfig.FieldUserID)
	}
	if m.channel != nil {
		fields = append(fields, notificationconfig.FieldChannel)
	}
	if m.enabled != nil {
		fields = append(fields, notificationconfig.FieldEnabled)
	}
	if m.webhook_url != nil {
		fields = append(fields, notificationconfig.FieldWebhookURL)
	}
	if m.recipients != nil {
		fields = append(fields, notificationconfig.FieldRecipients)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationconfig.FieldUserID:
		return m.UserID()
	case notificationconfig.FieldChannel:
		return m.Channel()
	case notificationconfig.FieldEnabled:
		return m.Enabled()
	case notificationconfig.FieldWebhookURL:
		return m.WebhookURL()
	case notificationconfig.FieldRecipients:
		return m.Recipients()
	case notificationconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationconfig.FieldUserID:
		return m.OldUserID(ctx)
	case notificationconfig.FieldChannel:
		return m.OldChannel(ctx)
	case notificationconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case notificationconfig.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case notificationconfig.FieldRecipients:
		return m.OldRecipients(ctx)
	case notificationconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationconfig.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationconfig.FieldChannel:
		v, ok := value.(notificationconfig.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case notificationconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case notificationconfig.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case notificationconfig.FieldRecipients:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipients(v)
		return nil
	case notificationconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationconfig.FieldWebhookURL) {
		fields = append(fields, notificationconfig.FieldWebhookURL)
	}
	if m.FieldCleared(notificationconfig.FieldRecipients) {
		fields = append(fields, notificationconfig.FieldRecipients)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationConfigMutation) ClearField(name string) error {
	switch name {
	case notificationconfig.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case notificationconfig.FieldRecipients:
		m.ClearRecipients()
		return nil
	}
	return fmt.Errorf("unknown NotificationConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationConfigMutation) ResetField(name string) error {
	switch name {
	case notificationconfig.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationconfig.FieldChannel:
		m.ResetChannel()
		return nil
	case notificationconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case notificationconfig.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case notificationconfig.FieldRecipients:
		m.ResetRecipients()
		return nil
	case notificationconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationConfig edge %s", name)
}

// RCARecordMutation represents an operation that mutates the RCARecord nodes in the graph.
type RCARecordMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	batch_id         *string
	incident_id      *string
	timestamp        *time.Time
	timestamp_str    *string
	window_start_str *string
	window_end_str   *string
	timezone         *string
	summary          *string
	cause            *string
	fix              *[]string
	appendfix        []string
	raw              *map[string]interface{}
	instance         *string
	ip               *string
	port             *int
	addport          *int
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*RCARecord, error)
	predicates       []predicate.RCARecord
}

var _ ent.Mutation = (*RCARecordMutation)(nil)

// rcarecordOption allows management of the mutation configuration using functional options.
type rcarecordOption func(*RCARecordMutation)

// newRCARecordMutation creates new mutation for the RCARecord entity.
func newRCARecordMutation(c config, op Op, opts ...rcarecordOption) *RCARecordMutation {
	m := &RCARecordMutation{
		config:        c,
		op:            op,
		typ:           TypeRCARecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRCARecordID sets the ID field of the mutation.
func withRCARecordID(id string) rcarecordOption {
	return func(m *RCARecordMutation) {
		var (
			err   error
			once  sync.Once
			value *RCARecord
		)
		m.oldValue = func(ctx context.Context) (*RCARecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RCARecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRCARecord sets the old RCARecord of the mutation.
func withRCARecord(node *RCARecord) rcarecordOption {
	return func(m *RCARecordMutation) {
		m.oldValue = func(context.Context) (*RCARecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RCARecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RCARecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RCARecord entities.
func (m *RCARecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RCARecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RCARecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RCARecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RCARecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RCARecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RCARecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetBatchID sets the "batch_id" field.
func (m *RCARecordMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *RCARecordMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *RCARecordMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *RCARecordMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *RCARecordMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *RCARecordMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RCARecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RCARecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RCARecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTimestampStr sets the "timestamp_str" field.
func (m *RCARecordMutation) SetTimestampStr(s string) {
	m.timestamp_str = &s
}

// TimestampStr returns the value of the "timestamp_str" field in the mutation.
func (m *RCARecordMutation) TimestampStr() (r string, exists bool) {
	v := m.timestamp_str
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampStr returns the old "timestamp_str" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldTimestampStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampStr: %w", err)
	}
	return oldValue.TimestampStr, nil
}

// ResetTimestampStr resets all changes to the "timestamp_str" field.
func (m *RCARecordMutation) ResetTimestampStr() {
	m.timestamp_str = nil
}

// SetWindowStartStr sets the "window_start_str" field.
func (m *RCARecordMutation) SetWindowStartStr(s string) {
	m.window_start_str = &s
}

// WindowStartStr returns the value of the "window_start_str" field in the mutation.
func (m *RCARecordMutation) WindowStartStr() (r string, exists bool) {
	v := m.window_start_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStartStr returns the old "window_start_str" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldWindowStartStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStartStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStartStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStartStr: %w", err)
	}
	return oldValue.WindowStartStr, nil
}

// ResetWindowStartStr resets all changes to the "window_start_str" field.
func (m *RCARecordMutation) ResetWindowStartStr() {
	m.window_start_str = nil
}

// SetWindowEndStr sets the "window_end_str" field.
func (m *RCARecordMutation) SetWindowEndStr(s string) {
	m.window_end_str = &s
}

// WindowEndStr returns the value of the "window_end_str" field in the mutation.
func (m *RCARecordMutation) WindowEndStr() (r string, exists bool) {
	v := m.window_end_str
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEndStr returns the old "window_end_str" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldWindowEndStr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEndStr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEndStr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEndStr: %w", err)
	}
	return oldValue.WindowEndStr, nil
}

// ResetWindowEndStr resets all changes to the "window_end_str" field.
func (m *RCARecordMutation) ResetWindowEndStr() {
	m.window_end_str = nil
}

// SetTimezone sets the "timezone" field.
func (m *RCARecordMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *RCARecordMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *RCARecordMutation) ResetTimezone() {
	m.timezone = nil
}

// SetSummary sets the "summary" field.
func (m *RCARecordMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RCARecordMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *RCARecordMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[rcarecord.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *RCARecordMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *RCARecordMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, rcarecord.FieldSummary)
}

// SetCause sets the "cause" field.
func (m *RCARecordMutation) SetCause(s string) {
	m.cause = &s
}

// Cause returns the value of the "cause" field in the mutation.
func (m *RCARecordMutation) Cause() (r string, exists bool) {
	v := m.cause
	if v == nil {
		return
	}
	return *v, true
}

// OldCause returns the old "cause" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCause: %w", err)
	}
	return oldValue.Cause, nil
}

// ClearCause clears the value of the "cause" field.
func (m *RCARecordMutation) ClearCause() {
	m.cause = nil
	m.clearedFields[rcarecord.FieldCause] = struct{}{}
}

// CauseCleared returns if the "cause" field was cleared in this mutation.
func (m *RCARecordMutation) CauseCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldCause]
	return ok
}

// ResetCause resets all changes to the "cause" field.
func (m *RCARecordMutation) ResetCause() {
	m.cause = nil
	delete(m.clearedFields, rcarecord.FieldCause)
}

// SetFix sets the "fix" field.
func (m *RCARecordMutation) SetFix(s []string) {
	m.fix = &s
	m.appendfix = nil
}

// Fix returns the value of the "fix" field in the mutation.
func (m *RCARecordMutation) Fix() (r []string, exists bool) {
	v := m.fix
	if v == nil {
		return
	}
	return *v, true
}

// OldFix returns the old "fix" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldFix(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFix: %w", err)
	}
	return oldValue.Fix, nil
}

// AppendFix adds s to the "fix" field.
func (m *RCARecordMutation) AppendFix(s []string) {
	m.appendfix = append(m.appendfix, s...)
}

// AppendedFix returns the list of values that were appended to the "fix" field in this mutation.
func (m *RCARecordMutation) AppendedFix() ([]string, bool) {
	if len(m.appendfix) == 0 {
		return nil, false
	}
	return m.appendfix, true
}

// ClearFix clears the value of the "fix" field.
func (m *RCARecordMutation) ClearFix() {
	m.fix = nil
	m.appendfix = nil
	m.clearedFields[rcarecord.FieldFix] = struct{}{}
}

// FixCleared returns if the "fix" field was cleared in this mutation.
func (m *RCARecordMutation) FixCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldFix]
	return ok
}

// ResetFix resets all changes to the "fix" field.
func (m *RCARecordMutation) ResetFix() {
	m.fix = nil
	m.appendfix = nil
	delete(m.clearedFields, rcarecord.FieldFix)
}

// SetRaw sets the "raw" field.
func (m *RCARecordMutation) SetRaw(value map[string]interface{}) {
	m.raw = &value
}

// Raw returns the value of the "raw" field in the mutation.
func (m *RCARecordMutation) Raw() (r map[string]interface{}, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldRaw(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ClearRaw clears the value of the "raw" field.
func (m *RCARecordMutation) ClearRaw() {
	m.raw = nil
	m.clearedFields[rcarecord.FieldRaw] = struct{}{}
}

// RawCleared returns if the "raw" field was cleared in this mutation.
func (m *RCARecordMutation) RawCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldRaw]
	return ok
}

// ResetRaw resets all changes to the "raw" field.
func (m *RCARecordMutation) ResetRaw() {
	m.raw = nil
	delete(m.clearedFields, rcarecord.FieldRaw)
}

// SetInstance sets the "instance" field.
func (m *RCARecordMutation) SetInstance(s string) {
	m.instance = &s
}

// Instance returns the value of the "instance" field in the mutation.
func (m *RCARecordMutation) Instance() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstance returns the old "instance" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldInstance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstance: %w", err)
	}
	return oldValue.Instance, nil
}

// ResetInstance resets all changes to the "instance" field.
func (m *RCARecordMutation) ResetInstance() {
	m.instance = nil
}

// SetIP sets the "ip" field.
func (m *RCARecordMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *RCARecordMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *RCARecordMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[rcarecord.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *RCARecordMutation) IPCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *RCARecordMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, rcarecord.FieldIP)
}

// SetPort sets the "port" field.
func (m *RCARecordMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *RCARecordMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *RCARecordMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *RCARecordMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *RCARecordMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[rcarecord.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *RCARecordMutation) PortCleared() bool {
	_, ok := m.clearedFields[rcarecord.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *RCARecordMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, rcarecord.FieldPort)
}

// SetSessionID sets the "session_id" field.
func (m *RCARecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RCARecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RCARecord entity.
// If the RCARecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RCARecordMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the RCARecordMutation builder.
func (m *RCARecordMutation) Where(ps ...predicate.RCARecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RCARecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RCARecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RCARecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RCARecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RCARecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RCARecord).
func (m *RCARecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RCARecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, rcarecord.FieldUserID)
	}
	if m.batch_id != nil {
		fields = append(fields, rcarecord.FieldBatchID)
	}
	if m.incident_id != nil {
		fields = append(fields, rcarecord.FieldIncidentID)
	}
	if m.timestamp != nil {
		fields = append(fields, rcarecord.FieldTimestamp)
	}
	if m.timestamp_str != nil {
		fields = append(fields, rcarecord.FieldTimestampStr)
	}
	if m.window_start_str != nil {
		fields = append(fields, rcarecord.FieldWindowStartStr)
	}
	if m.window_end_str != nil {
		fields = append(fields, rcarecord.FieldWindowEndStr)
	}
	if m.timezone != nil {
		fields = append(fields, rcarecord.FieldTimezone)
	}
	if m.summary != nil {
		fields = append(fields, rcarecord.FieldSummary)
	}
	if m.cause != nil {
		fields = append(fields, rcarecord.FieldCause)
	}
	if m.fix != nil {
		fields = append(fields, rcarecord.FieldFix)
	}
	if m.raw != nil {
		fields = append(fields, rcarecord.FieldRaw)
	}
	if m.instance != nil {
		fields = append(fields, rcarecord.FieldInstance)
	}
	if m.ip != nil {
		fields = append(fields, rcarecord.FieldIP)
	}
	if m.port != nil {
		fields = append(fields, rcarecord.FieldPort)
	}
	if m.session_id != nil {
		fields = append(fields, rcarecord.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RCARecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rcarecord.FieldUserID:
		return m.UserID()
	case rcarecord.FieldBatchID:
		return m.BatchID()
	case rcarecord.FieldIncidentID:
		return m.IncidentID()
	case rcarecord.FieldTimestamp:
		return m.Timestamp()
	case rcarecord.FieldTimestampStr:
		return m.TimestampStr()
	case rcarecord.FieldWindowStartStr:
		return m.WindowStartStr()
	case rcarecord.FieldWindowEndStr:
		return m.WindowEndStr()
	case rcarecord.FieldTimezone:
		return m.Timezone()
	case rcarecord.FieldSummary:
		return m.Summary()
	case rcarecord.FieldCause:
		return m.Cause()
	case rcarecord.FieldFix:
		return m.Fix()
	case rcarecord.FieldRaw:
		return m.Raw()
	case rcarecord.FieldInstance:
		return m.Instance()
	case rcarecord.FieldIP:
		return m.IP()
	case rcarecord.FieldPort:
		return m.Port()
	case rcarecord.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RCARecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rcarecord.FieldUserID:
		return m.OldUserID(ctx)
	case rcarecord.FieldBatchID:
		return m.OldBatchID(ctx)
	case rcarecord.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case rcarecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case rcarecord.FieldTimestampStr:
		return m.OldTimestampStr(ctx)
	case rcarecord.FieldWindowStartStr:
		return m.OldWindowStartStr(ctx)
	case rcarecord.FieldWindowEndStr:
		return m.OldWindowEndStr(ctx)
	case rcarecord.FieldTimezone:
		return m.OldTimezone(ctx)
	case rcarecord.FieldSummary:
		return m.OldSummary(ctx)
	case rcarecord.FieldCause:
		return m.OldCause(ctx)
	case rcarecord.FieldFix:
		return m.OldFix(ctx)
	case rcarecord.FieldRaw:
		return m.OldRaw(ctx)
	case rcarecord.FieldInstance:
		return m.OldInstance(ctx)
	case rcarecord.FieldIP:
		return m.OldIP(ctx)
	case rcarecord.FieldPort:
		return m.OldPort(ctx)
	case rcarecord.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown RCARecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCARecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rcarecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case rcarecord.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case rcarecord.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case rcarecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case rcarecord.FieldTimestampStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampStr(v)
		return nil
	case rcarecord.FieldWindowStartStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStartStr(v)
		return nil
	case rcarecord.FieldWindowEndStr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEndStr(v)
		return nil
	case rcarecord.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case rcarecord.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case rcarecord.FieldCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCause(v)
		return nil
	case rcarecord.FieldFix:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFix(v)
		return nil
	case rcarecord.FieldRaw:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case rcarecord.FieldInstance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstance(v)
		return nil
	case rcarecord.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case rcarecord.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case rcarecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown RCARecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RCARecordMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, rcarecord.FieldPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RCARecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rcarecord.FieldPort:
		return m.AddedPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCARecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rcarecord.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	}
	return fmt.Errorf("unknown RCARecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RCARecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rcarecord.FieldSummary) {
		fields = append(fields, rcarecord.FieldSummary)
	}
	if m.FieldCleared(rcarecord.FieldCause) {
		fields = append(fields, rcarecord.FieldCause)
	}
	if m.FieldCleared(rcarecord.FieldFix) {
		fields = append(fields, rcarecord.FieldFix)
	}
	if m.FieldCleared(rcarecord.FieldRaw) {
		fields = append(fields, rcarecord.FieldRaw)
	}
	if m.FieldCleared(rcarecord.FieldIP) {
		fields = append(fields, rcarecord.FieldIP)
	}
	if m.FieldCleared(rcarecord.FieldPort) {
		fields = append(fields, rcarecord.FieldPort)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RCARecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RCARecordMutation) ClearField(name string) error {
	switch name {
	case rcarecord.FieldSummary:
		m.ClearSummary()
		return nil
	case rcarecord.FieldCause:
		m.ClearCause()
		return nil
	case rcarecord.FieldFix:
		m.ClearFix()
		return nil
	case rcarecord.FieldRaw:
		m.ClearRaw()
		return nil
	case rcarecord.FieldIP:
		m.ClearIP()
		return nil
	case rcarecord.FieldPort:
		m.ClearPort()
		return nil
	}
	return fmt.Errorf("unknown RCARecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RCARecordMutation) ResetField(name string) error {
	switch name {
	case rcarecord.FieldUserID:
		m.ResetUserID()
		return nil
	case rcarecord.FieldBatchID:
		m.ResetBatchID()
		return nil
	case rcarecord.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case rcarecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case rcarecord.FieldTimestampStr:
		m.ResetTimestampStr()
		return nil
	case rcarecord.FieldWindowStartStr:
		m.ResetWindowStartStr()
		return nil
	case rcarecord.FieldWindowEndStr:
		m.ResetWindowEndStr()
		return nil
	case rcarecord.FieldTimezone:
		m.ResetTimezone()
		return nil
	case rcarecord.FieldSummary:
		m.ResetSummary()
		return nil
	case rcarecord.FieldCause:
		m.ResetCause()
		return nil
	case rcarecord.FieldFix:
		m.ResetFix()
		return nil
	case rcarecord.FieldRaw:
		m.ResetRaw()
		return nil
	case rcarecord.FieldInstance:
		m.ResetInstance()
		return nil
	case rcarecord.FieldIP:
		m.ResetIP()
		return nil
	case rcarecord.FieldPort:
		m.ResetPort()
		return nil
	case rcarecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown RCARecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RCARecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RCARecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RCARecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RCARecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RCARecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RCARecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RCARecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RCARecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RCARecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RCARecord edge %s", name)
}

// TargetMutation represents an operation that mutates the Target nodes in the graph.
type TargetMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	name          *string
	endpoint      *string
	labels        *map[string]string
	enabled       *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Target, error)
	predicates    []predicate.Target
}

var _ ent.Mutation = (*TargetMutation)(nil)

// targetOption allows management of the mutation configuration using functional options.
type targetOption func(*TargetMutation)

// newTargetMutation creates new mutation for the Target entity.
func newTargetMutation(c config, op Op, opts ...targetOption) *TargetMutation {
	m := &TargetMutation{
		config:        c,
		op:            op,
		typ:           TypeTarget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTargetID sets the ID field of the mutation.
func withTargetID(id string) targetOption {
	return func(m *TargetMutation) {
		var (
			err   error
			once  sync.Once
			value *Target
		)
		m.oldValue = func(ctx context.Context) (*Target, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Target.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTarget sets the old Target of the mutation.
func withTarget(node *Target) targetOption {
	return func(m *TargetMutation) {
		m.oldValue = func(context.Context) (*Target, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TargetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TargetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Target entities.
func (m *TargetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TargetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TargetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Target.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TargetMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TargetMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TargetMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *TargetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TargetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TargetMutation) ResetName() {
	m.name = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *TargetMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *TargetMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *TargetMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetLabels sets the "labels" field.
func (m *TargetMutation) SetLabels(value map[string]string) {
	m.labels = &value
}

// Labels returns the value of the "labels" field in the mutation.
func (m *TargetMutation) Labels() (r map[string]string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// ClearLabels clears the value of the "labels" field.
func (m *TargetMutation) ClearLabels() {
	m.labels = nil
	m.clearedFields[target.FieldLabels] = struct{}{}
}

// LabelsCleared returns if the "labels" field was cleared in this mutation.
func (m *TargetMutation) LabelsCleared() bool {
	_, ok := m.clearedFields[target.FieldLabels]
	return ok
}

// ResetLabels resets all changes to the "labels" field.
func (m *TargetMutation) ResetLabels() {
	m.labels = nil
	delete(m.clearedFields, target.FieldLabels)
}

// SetEnabled sets the "enabled" field.
func (m *TargetMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TargetMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TargetMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TargetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TargetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TargetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TargetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TargetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TargetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TargetMutation builder.
func (m *TargetMutation) Where(ps ...predicate.Target) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TargetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TargetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Target, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TargetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TargetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Target).
func (m *TargetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TargetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, target.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, target.FieldName)
	}
	if m.endpoint != nil {
		fields = append(fields, target.FieldEndpoint)
	}
	if m.labels != nil {
		fields = append(fields, target.FieldLabels)
	}
	if m.enabled != nil {
		fields = append(fields, target.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, target.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, target.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TargetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case target.FieldUserID:
		return m.UserID()
	case target.FieldName:
		return m.Name()
	case target.FieldEndpoint:
		return m.Endpoint()
	case target.FieldLabels:
		return m.Labels()
	case target.FieldEnabled:
		return m.Enabled()
	case target.FieldCreatedAt:
		return m.CreatedAt()
	case target.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TargetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case target.FieldUserID:
		return m.OldUserID(ctx)
	case target.FieldName:
		return m.OldName(ctx)
	case target.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case target.FieldLabels:
		return m.OldLabels(ctx)
	case target.FieldEnabled:
		return m.OldEnabled(ctx)
	case target.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case target.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Target field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case target.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case target.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case target.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case target.FieldLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case target.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case target.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case target.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TargetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TargetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Target numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TargetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(target.FieldLabels) {
		fields = append(fields, target.FieldLabels)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TargetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TargetMutation) ClearField(name string) error {
	switch name {
	case target.FieldLabels:
		m.ClearLabels()
		return nil
	}
	return fmt.Errorf("unknown Target nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TargetMutation) ResetField(name string) error {
	switch name {
	case target.FieldUserID:
		m.ResetUserID()
		return nil
	case target.FieldName:
		m.ResetName()
		return nil
	case target.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case target.FieldLabels:
		m.ResetLabels()
		return nil
	case target.FieldEnabled:
		m.ResetEnabled()
		return nil
	case target.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case target.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TargetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TargetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TargetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TargetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TargetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TargetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TargetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Target unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TargetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Target edge %s", name)
}
