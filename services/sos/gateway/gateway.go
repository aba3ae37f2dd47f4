package gateway

import (
	"context"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/constants"
	httppkg "github.com/ridepulse/ridepulse/internal/pkg/http"
	"github.com/ridepulse/ridepulse/internal/pkg/models"
	natspkg "github.com/ridepulse/ridepulse/internal/pkg/nats"
	"github.com/ridepulse/ridepulse/services/sos"
)

// SOSGW delivers alerts over HTTP and announces them on NATS
type SOSGW struct {
	sosClient *httppkg.Client
	producer  *natspkg.Producer
}

// NewSOSGW creates a new SOS gateway instance
func NewSOSGW(cfg *models.Config, natsClient *natspkg.Client) sos.SOSGW {
	timeout := time.Duration(cfg.Dispatch.RequestTimeoutSec) * time.Second
	return &SOSGW{
		sosClient: httppkg.NewClient(cfg.Services.SOSServiceURL, timeout),
		producer:  natspkg.NewProducer(natsClient),
	}
}

// CreateAlert posts the alert to the SOS service
func (g *SOSGW) CreateAlert(ctx context.Context, alert *models.SOSAlert) error {
	return g.sosClient.PostJSON(ctx, "/sos/create", alert, nil)
}

// PublishSOSCreated announces the alert for operator dashboards
func (g *SOSGW) PublishSOSCreated(ctx context.Context, alert *models.SOSAlert) error {
	return g.producer.Publish(constants.SubjectSOSCreated, alert)
}
