package assistant

import (
	"context"
	"encoding/json"

	"cooptaxi/models"
)

// Assistant is the chat surface. Each Send produces exactly one persisted
// ConversationTurn, whether the reply came from the model, the canned
// responder or a provider failure diagnostic.
type Assistant interface {
	Send(ctx context.Context, message string, contextData json.RawMessage) (models.ConversationTurn, error)
	GetConversations(ctx context.Context) ([]models.ConversationTurn, error)
}
