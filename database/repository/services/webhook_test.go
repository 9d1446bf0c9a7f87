package servicesRepo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	servicesRepo "cooptaxi/database/repository/services"
	"cooptaxi/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestWebhookBackend_ListCoercesStringAmounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/services/list/"+testOwner, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"services":[
			{"id":"r1","driver_email":"chauffeur@cooptaxi.com","type":"Regular","amount":"45.50","date":"2026-08-27T10:00:00Z","created_at":"2026-08-27T10:00:00Z","updated_at":"2026-08-27T10:00:00Z"},
			{"id":"r2","driver_email":"chauffeur@cooptaxi.com","type":"TCT","amount":120,"date":"2026-08-26T10:00:00Z","created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	backend := servicesRepo.NewWebhookBackend(func() string { return srv.URL }, testOwner)

	records, err := backend.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.True(t, records[0].Amount.Equal(decimal.RequireFromString("45.50")))
	require.True(t, records[1].Amount.Equal(decimal.RequireFromString("120")))
}

func TestWebhookBackend_ListFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "workflow not active", http.StatusInternalServerError)
		}},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":tr`))
		}},
		{"success false", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		}},
		{"missing services", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			backend := servicesRepo.NewWebhookBackend(func() string { return srv.URL }, testOwner)
			_, err := backend.List(context.Background())
			require.Error(t, err)
		})
	}
}

func TestWebhookBackend_CreateReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/services/create", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var draft models.ServiceDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		require.Equal(t, models.ServiceTypeOlymel, draft.Type)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"service":{"id":"srv-42","driver_email":"chauffeur@cooptaxi.com","type":"Olymel","amount":"32.00","date":"2026-08-28T09:00:00Z","created_at":"2026-08-28T09:05:00Z","updated_at":"2026-08-28T09:05:00Z"}}`))
	}))
	defer srv.Close()

	backend := servicesRepo.NewWebhookBackend(func() string { return srv.URL }, testOwner)

	record, err := backend.Create(context.Background(), models.ServiceDraft{
		DriverEmail: testOwner,
		Type:        models.ServiceTypeOlymel,
		Amount:      models.AmountFromFloat(32),
	})
	require.NoError(t, err)
	require.Equal(t, "srv-42", record.ID)
	require.True(t, record.Amount.Equal(decimal.RequireFromString("32")))
}

func TestWebhookBackend_CreateFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	backend := servicesRepo.NewWebhookBackend(func() string { return srv.URL }, testOwner)
	_, err := backend.Create(context.Background(), models.ServiceDraft{Type: models.ServiceTypeRegular})
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}
