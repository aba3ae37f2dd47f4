package sos

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// SOSGW delivers alerts to the operator-facing SOS service
type SOSGW interface {
	// CreateAlert posts the alert to the SOS service. This is the
	// authoritative delivery; a failure fails the escalation.
	CreateAlert(ctx context.Context, alert *models.SOSAlert) error

	// PublishSOSCreated announces the alert on the realtime channel for
	// operator dashboards. Best effort.
	PublishSOSCreated(ctx context.Context, alert *models.SOSAlert) error
}
