package models_test

import (
	"encoding/json"
	"testing"

	"cooptaxi/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalNumberOrString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"number", `{"amount": 45.5}`, "45.5"},
		{"string", `{"amount": "45.50"}`, "45.5"},
		{"integer string", `{"amount": "120"}`, "120"},
		{"null", `{"amount": null}`, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var record models.ServiceRecord
			require.NoError(t, json.Unmarshal([]byte(tc.in), &record))
			require.True(t, record.Amount.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", record.Amount.String(), tc.want)
		})
	}
}

func TestAmount_UnmarshalRejectsGarbage(t *testing.T) {
	var record models.ServiceRecord
	err := json.Unmarshal([]byte(`{"amount": "not-a-number"}`), &record)
	require.Error(t, err)
}

func TestAmount_MarshalPlainNumber(t *testing.T) {
	amount, err := models.NewAmount("45.50")
	require.NoError(t, err)

	encoded, err := json.Marshal(amount)
	require.NoError(t, err)
	require.Equal(t, "45.5", string(encoded))
}

func TestAmount_Clamped(t *testing.T) {
	negative := models.AmountFromFloat(-3)
	require.True(t, negative.Clamped().IsZero())

	positive := models.AmountFromFloat(12.5)
	require.True(t, positive.Clamped().Equal(decimal.RequireFromString("12.5")))
}

func TestServiceType_Valid(t *testing.T) {
	require.True(t, models.ServiceTypeOlymel.Valid())
	require.True(t, models.ServiceTypeJamesMiron.Valid())
	require.False(t, models.ServiceType("Uber").Valid())
}
