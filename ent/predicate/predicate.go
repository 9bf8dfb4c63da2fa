// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AlertWindow is the predicate function for alertwindow builders.
type AlertWindow func(*sql.Selector)

// Anomaly is the predicate function for anomaly builders.
type Anomaly func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// MetricsBatch is the predicate function for metricsbatch builders.
type MetricsBatch func(*sql.Selector)

// NotificationConfig is the predicate function for notificationconfig builders.
type NotificationConfig func(*sql.Selector)

// RCARecord is the predicate function for rcarecord builders.
type RCARecord func(*sql.Selector)

// Target is the predicate function for target builders.
type Target func(*sql.Selector)
