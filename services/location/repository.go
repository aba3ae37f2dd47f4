package location

import (
	"context"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
)

// LocationRepo defines the interface for driver presence and location storage
type LocationRepo interface {
	SavePresence(ctx context.Context, presence *models.DriverPresence) error
	GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)
	DeletePresence(ctx context.Context, driverID string) error

	UpdateDriverLocation(ctx context.Context, driverID string, loc models.Location) error
	RemoveDriverLocation(ctx context.Context, driverID string) error
}
