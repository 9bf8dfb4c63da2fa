// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/notificationconfig"
	"github.com/promsight/promsight/ent/rcarecord"
	"github.com/promsight/promsight/ent/schema"
	"github.com/promsight/promsight/ent/target"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anomalyFields := schema.Anomaly{}.Fields()
	_ = anomalyFields
	// anomalyDescSeverity is the schema descriptor for severity field.
	anomalyDescSeverity := anomalyFields[12].Descriptor()
	// anomaly.DefaultSeverity holds the default value on creation for the severity field.
	anomaly.DefaultSeverity = anomalyDescSeverity.Default.(string)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescTitle is the schema descriptor for title field.
	incidentDescTitle := incidentFields[10].Descriptor()
	// incident.DefaultTitle holds the default value on creation for the title field.
	incident.DefaultTitle = incidentDescTitle.Default.(string)
	// incidentDescConfidence is the schema descriptor for confidence field.
	incidentDescConfidence := incidentFields[12].Descriptor()
	// incident.DefaultConfidence holds the default value on creation for the confidence field.
	incident.DefaultConfidence = incidentDescConfidence.Default.(float64)
	// incidentDescPrimaryInstance is the schema descriptor for primary_instance field.
	incidentDescPrimaryInstance := incidentFields[21].Descriptor()
	// incident.DefaultPrimaryInstance holds the default value on creation for the primary_instance field.
	incident.DefaultPrimaryInstance = incidentDescPrimaryInstance.Default.(string)
	metricsbatchFields := schema.MetricsBatch{}.Fields()
	_ = metricsbatchFields
	// metricsbatchDescPrimaryInstance is the schema descriptor for primary_instance field.
	metricsbatchDescPrimaryInstance := metricsbatchFields[11].Descriptor()
	// metricsbatch.DefaultPrimaryInstance holds the default value on creation for the primary_instance field.
	metricsbatch.DefaultPrimaryInstance = metricsbatchDescPrimaryInstance.Default.(string)
	notificationconfigFields := schema.NotificationConfig{}.Fields()
	_ = notificationconfigFields
	// notificationconfigDescEnabled is the schema descriptor for enabled field.
	notificationconfigDescEnabled := notificationconfigFields[3].Descriptor()
	// notificationconfig.DefaultEnabled holds the default value on creation for the enabled field.
	notificationconfig.DefaultEnabled = notificationconfigDescEnabled.Default.(bool)
	// notificationconfigDescUpdatedAt is the schema descriptor for updated_at field.
	notificationconfigDescUpdatedAt := notificationconfigFields[6].Descriptor()
	// notificationconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationconfig.DefaultUpdatedAt = notificationconfigDescUpdatedAt.Default.(func() time.Time)
	// notificationconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationconfig.UpdateDefaultUpdatedAt = notificationconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	rcarecordFields := schema.RCARecord{}.Fields()
	_ = rcarecordFields
	// rcarecordDescInstance is the schema descriptor for instance field.
	rcarecordDescInstance := rcarecordFields[13].Descriptor()
	// rcarecord.DefaultInstance holds the default value on creation for the instance field.
	rcarecord.DefaultInstance = rcarecordDescInstance.Default.(string)
	targetFields := schema.Target{}.Fields()
	_ = targetFields
	// targetDescEnabled is the schema descriptor for enabled field.
	targetDescEnabled := targetFields[5].Descriptor()
	// target.DefaultEnabled holds the default value on creation for the enabled field.
	target.DefaultEnabled = targetDescEnabled.Default.(bool)
	// targetDescCreatedAt is the schema descriptor for created_at field.
	targetDescCreatedAt := targetFields[6].Descriptor()
	// target.DefaultCreatedAt holds the default value on creation for the created_at field.
	target.DefaultCreatedAt = targetDescCreatedAt.Default.(func() time.Time)
	// targetDescUpdatedAt is the schema descriptor for updated_at field.
	targetDescUpdatedAt := targetFields[7].Descriptor()
	// target.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	target.DefaultUpdatedAt = targetDescUpdatedAt.Default.(func() time.Time)
	// target.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	target.UpdateDefaultUpdatedAt = targetDescUpdatedAt.UpdateDefault.(func() time.Time)
}
