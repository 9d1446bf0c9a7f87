package servicesRepo

import (
	"context"

	"cooptaxi/models"
)

// Backend is the storage strategy for service records. Two implementations
// share the contract: the sqlite-backed local store and the webhook gateway.
// The fleet service picks one per call from the driver's settings.
type Backend interface {
	List(ctx context.Context) ([]models.ServiceRecord, error)
	Create(ctx context.Context, draft models.ServiceDraft) (models.ServiceRecord, error)
}
