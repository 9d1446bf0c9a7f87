package fleet

import (
	"context"

	"cooptaxi/models"
)

// DataService is the only road to the service-record collection. Handlers and
// the assistant go through it rather than touching storage directly.
type DataService interface {
	ListServices(ctx context.Context) ([]models.ServiceRecord, error)
	AddService(ctx context.Context, draft models.ServiceDraft) (models.ServiceRecord, error)
	DeleteService(ctx context.Context, id string) error
}
