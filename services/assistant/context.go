package assistant

import (
	"fmt"
	"strings"

	"cooptaxi/models"

	"github.com/shopspring/decimal"
)

// recentHistorySize is how many rides make it into the prompt block.
const recentHistorySize = 10

// ContextSummary is the compact statistical view of the driver's records that
// gets injected into the system prompt when RAG is enabled.
type ContextSummary struct {
	TotalRevenue  decimal.Decimal
	RideCount     int
	RecentHistory string
}

// BuildContext summarizes the record set as given: no re-sorting, the first
// ten entries in collection order make up the recent history. Callers wanting
// a specific order sort beforehand.
func BuildContext(records []models.ServiceRecord) ContextSummary {
	summary := ContextSummary{TotalRevenue: decimal.Zero, RideCount: len(records)}

	for _, r := range records {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Amount.Decimal)
	}

	recent := records
	if len(recent) > recentHistorySize {
		recent = recent[:recentHistorySize]
	}
	lines := make([]string, 0, len(recent))
	for _, r := range recent {
		lines = append(lines, fmt.Sprintf("%s: %s - %s$", r.Date.Format("2006-01-02"), r.Type, r.Amount.Decimal.String()))
	}
	summary.RecentHistory = strings.Join(lines, "\n")

	return summary
}

// promptBlock renders the summary as the RAG section appended to the system
// prompt.
func (c ContextSummary) promptBlock() string {
	return fmt.Sprintf(
		"\n\n[CONTEXTE DE DONNÉES EN TEMPS RÉEL (RAG)]:\nVoici les statistiques actuelles du chauffeur:\n- Revenu Total: %s$\n- Nombre de courses: %d\n- 10 dernières courses:\n%s",
		c.TotalRevenue.StringFixed(2), c.RideCount, c.RecentHistory)
}
