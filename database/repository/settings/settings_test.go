package settingsRepo_test

import (
	"context"
	"testing"

	"cooptaxi/database"
	"cooptaxi/database/kv"
	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/models"

	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (settingsRepo.Repository, *kv.Store) {
	t.Helper()
	db, err := database.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := kv.NewStore(db)
	return settingsRepo.NewKVRepo(store), store
}

func TestSettings_DefaultsOnEmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.DefaultSettings(), settings)
}

func TestSettings_SaveThenGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	saved := models.DefaultSettings()
	saved.OpenRouterAPIKey = "sk-or-test"
	saved.UseRemoteBackend = true
	saved.EnableRAG = false
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestSettings_MergeOverDefaults(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	// An older build saved settings before remoteBackendUrl existed; the
	// missing fields must come back as defaults.
	require.NoError(t, store.Put(ctx, "user_settings", `{"openRouterApiKey":"sk-old","model":"gpt-4o"}`))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "sk-old", got.OpenRouterAPIKey)
	require.Equal(t, "gpt-4o", got.Model)
	require.True(t, got.EnableRAG)
	require.Equal(t, models.DefaultSettings().RemoteBackendURL, got.RemoteBackendURL)
	require.Equal(t, models.DefaultSettings().SystemPrompt, got.SystemPrompt)
	require.False(t, got.UseRemoteBackend)
}
