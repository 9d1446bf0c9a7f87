package servicesRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cooptaxi/database/kv"
	"cooptaxi/models"

	"github.com/google/uuid"
)

const servicesKey = "services"

// LocalBackend stores the record collection as one JSON document in the local
// durable store, most-recent-first. Unlike the webhook gateway it also
// supports deletion.
type LocalBackend struct {
	kv         *kv.Store
	ownerEmail string
}

// NewLocalBackend returns a Backend over the local durable store.
func NewLocalBackend(store *kv.Store, ownerEmail string) *LocalBackend {
	return &LocalBackend{kv: store, ownerEmail: ownerEmail}
}

// List returns the stored records. The first read of an empty store seeds the
// demonstration dataset and persists it before returning.
func (b *LocalBackend) List(ctx context.Context) ([]models.ServiceRecord, error) {
	raw, ok, err := b.kv.Get(ctx, servicesKey)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		seed := SeedRecords(b.ownerEmail)
		if err := b.save(ctx, seed); err != nil {
			return nil, fmt.Errorf("persist seed dataset: %w", err)
		}
		return seed, nil
	}

	var records []models.ServiceRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode stored services: %w", err)
	}
	return records, nil
}

// Create assigns an id and timestamps, prepends the record and persists the
// collection.
func (b *LocalBackend) Create(ctx context.Context, draft models.ServiceDraft) (models.ServiceRecord, error) {
	records, err := b.List(ctx)
	if err != nil {
		return models.ServiceRecord{}, err
	}

	now := time.Now().UTC()
	record := models.ServiceRecord{
		ID:          uuid.New().String(),
		DriverEmail: draft.DriverEmail,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Date:        draft.Date,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	records = append([]models.ServiceRecord{record}, records...)
	if err := b.save(ctx, records); err != nil {
		return models.ServiceRecord{}, err
	}
	return record, nil
}

// Delete removes the record with the given id. An absent id is a no-op.
func (b *LocalBackend) Delete(ctx context.Context, id string) error {
	raw, ok, err := b.kv.Get(ctx, servicesKey)
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var records []models.ServiceRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return fmt.Errorf("decode stored services: %w", err)
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return b.save(ctx, kept)
}

func (b *LocalBackend) save(ctx context.Context, records []models.ServiceRecord) error {
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	return b.kv.Put(ctx, servicesKey, string(encoded))
}
