package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	servicesRepo "cooptaxi/database/repository/services"
	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/models"

	"go.uber.org/zap"
)

// ErrInvalidDraft is returned when a submitted draft fails validation.
var ErrInvalidDraft = errors.New("invalid service draft")

// DefaultDataService routes reads and writes between the local durable store
// and the webhook gateway. The backend choice is re-evaluated on every call
// so flipping the setting mid-session takes effect immediately.
type DefaultDataService struct {
	Local      *servicesRepo.LocalBackend
	Remote     servicesRepo.Backend
	Settings   settingsRepo.Repository
	OwnerEmail string
	Logger     *zap.Logger
}

func (s *DefaultDataService) remoteEnabled(ctx context.Context) bool {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		s.Logger.Warn("fleet: failed to read settings, using local store", zap.Error(err))
		return false
	}
	return settings.UseRemoteBackend && strings.TrimSpace(settings.RemoteBackendURL) != ""
}

// ListServices returns the current record set. A remote failure is logged and
// answered from the local store instead; the read path never fails over a
// backend problem.
func (s *DefaultDataService) ListServices(ctx context.Context) ([]models.ServiceRecord, error) {
	if s.remoteEnabled(ctx) {
		records, err := s.Remote.List(ctx)
		if err == nil {
			return clampAmounts(records), nil
		}
		s.Logger.Warn("fleet: remote list failed, falling back to local store", zap.Error(err))
	}

	records, err := s.Local.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return clampAmounts(records), nil
}

// AddService creates a record on the selected backend. Unlike the read path a
// remote failure is surfaced: silently writing locally would leave the driver
// believing a ride was saved remotely when it was not.
func (s *DefaultDataService) AddService(ctx context.Context, draft models.ServiceDraft) (models.ServiceRecord, error) {
	if !draft.Type.Valid() {
		return models.ServiceRecord{}, fmt.Errorf("%w: unknown service type %q", ErrInvalidDraft, draft.Type)
	}
	if draft.Amount.Sign() < 0 {
		return models.ServiceRecord{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidDraft)
	}
	if draft.DriverEmail == "" {
		draft.DriverEmail = s.OwnerEmail
	}

	if s.remoteEnabled(ctx) {
		record, err := s.Remote.Create(ctx, draft)
		if err != nil {
			return models.ServiceRecord{}, fmt.Errorf("add service: %w", err)
		}
		record.Amount = record.Amount.Clamped()
		return record, nil
	}

	record, err := s.Local.Create(ctx, draft)
	if err != nil {
		return models.ServiceRecord{}, fmt.Errorf("add service: %w", err)
	}
	return record, nil
}

// DeleteService removes a record by id. This always operates on the local
// store: the webhook gateway has no delete endpoint yet, so remote-mode
// deletes do not reach the remote collection.
func (s *DefaultDataService) DeleteService(ctx context.Context, id string) error {
	if err := s.Local.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func clampAmounts(records []models.ServiceRecord) []models.ServiceRecord {
	for i := range records {
		records[i].Amount = records[i].Amount.Clamped()
	}
	return records
}
