package location

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// LocationGW publishes accepted location samples on the realtime channel
type LocationGW interface {
	PublishLocation(ctx context.Context, update *models.LocationUpdate) error
}
