package assistant

import (
	"strings"
	"time"
)

// Demo replies served while no OpenRouter key is configured.
const (
	DemoRevenueReply  = "(Mode Démo) D'après vos données récentes, vos revenus sont stables. Le secteur Olymel semble le plus performant cette semaine. Configurer une clé API pour une vraie analyse."
	DemoGreetingReply = "(Mode Démo) Bonjour ! Je suis l'assistant IA de Co-op Taxi Terrebonne. Configurez ma clé API dans les paramètres pour m'activer pleinement."
	DemoFallbackReply = "(Mode Démo) Je suis en mode simulation. Veuillez entrer une clé OpenRouter dans les paramètres pour activer l'intelligence réelle."
)

// cannedDelay mimics provider latency so demo mode feels like the real thing.
const cannedDelay = time.Second

// cannedReply classifies the lowered message by keyword. This path performs
// no network I/O.
func cannedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "revenu") || strings.Contains(lower, "argent") || strings.Contains(lower, "gagné"):
		return DemoRevenueReply
	case strings.Contains(lower, "bonjour") || strings.Contains(lower, "salut"):
		return DemoGreetingReply
	default:
		return DemoFallbackReply
	}
}
