package settingsRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cooptaxi/database/kv"
	"cooptaxi/models"
)

const settingsKey = "user_settings"

// Repository reads and writes the driver settings singleton.
type Repository interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

type kvRepo struct {
	kv *kv.Store
}

// NewKVRepo returns a Repository backed by the local durable store.
func NewKVRepo(store *kv.Store) Repository {
	return &kvRepo{kv: store}
}

// Get returns the stored settings merged key-by-key over the defaults, so
// fields missing from an older saved document keep their default values.
func (r *kvRepo) Get(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, ok, err := r.kv.Get(ctx, settingsKey)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return settings, nil
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode stored settings: %w", err)
	}
	return settings, nil
}

// Save overwrites the stored settings wholesale.
func (r *kvRepo) Save(ctx context.Context, settings models.Settings) error {
	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.kv.Put(ctx, settingsKey, string(encoded))
}
