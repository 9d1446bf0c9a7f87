package servicesRepo

import (
	"time"

	"cooptaxi/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedRecords builds the demonstration dataset a fresh local store starts
// with: five rides over the last four days across a mix of account types.
func SeedRecords(ownerEmail string) []models.ServiceRecord {
	now := time.Now().UTC()

	seed := []struct {
		typ     models.ServiceType
		amount  string
		daysAgo int
	}{
		{models.ServiceTypeRegular, "45.50", 1},
		{models.ServiceTypeOlymel, "32.00", 1},
		{models.ServiceTypeTCT, "120.00", 2},
		{models.ServiceTypeRegular, "15.00", 3},
		{models.ServiceTypeBombardier, "65.00", 4},
	}

	records := make([]models.ServiceRecord, 0, len(seed))
	for _, s := range seed {
		records = append(records, models.ServiceRecord{
			ID:          uuid.New().String(),
			DriverEmail: ownerEmail,
			Type:        s.typ,
			Amount:      models.Amount{Decimal: decimal.RequireFromString(s.amount)},
			Date:        now.AddDate(0, 0, -s.daysAgo),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return records
}
