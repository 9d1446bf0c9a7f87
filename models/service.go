package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType identifies the corporate account a ride is billed to.
type ServiceType string

const (
	ServiceTypeRegular    ServiceType = "Regular"
	ServiceTypeTCT        ServiceType = "TCT"
	ServiceTypeOlymel     ServiceType = "Olymel"
	ServiceTypeBombardier ServiceType = "Bombardier"
	ServiceTypeHandami    ServiceType = "Handami"
	ServiceTypeJamesMiron ServiceType = "James Miron"
)

// ServiceTypes lists every billable account type.
var ServiceTypes = []ServiceType{
	ServiceTypeRegular,
	ServiceTypeTCT,
	ServiceTypeOlymel,
	ServiceTypeBombardier,
	ServiceTypeHandami,
	ServiceTypeJamesMiron,
}

// Valid reports whether t is one of the known account types.
func (t ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Amount is a dollar amount on a service record. The webhook backend returns
// amounts either as JSON numbers or as numeric strings, so decoding accepts
// both; encoding always emits a plain number.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses a decimal string into an Amount.
func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Amount{Decimal: d}, nil
}

// AmountFromFloat converts a float into an Amount.
func AmountFromFloat(value float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(value)}
}

// Clamped returns the amount with negatives collapsed to zero. Stored records
// must always read back as finite non-negative numbers.
func (a Amount) Clamped() Amount {
	if a.Decimal.Sign() < 0 {
		return Amount{Decimal: decimal.Zero}
	}
	return a
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// ServiceRecord is a billed ride attributed to a driver and an account type.
// The id and timestamps are assigned by whichever backend created the record.
type ServiceRecord struct {
	ID          string      `json:"id"`
	DriverEmail string      `json:"driver_email"`
	Type        ServiceType `json:"type"`
	Amount      Amount      `json:"amount"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ServiceDraft is the caller-supplied portion of a ServiceRecord.
type ServiceDraft struct {
	DriverEmail string      `json:"driver_email"`
	Type        ServiceType `json:"type"`
	Amount      Amount      `json:"amount"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description,omitempty"`
}
