package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	conversationsRepo "cooptaxi/database/repository/conversations"
	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/models"
	"cooptaxi/services/fleet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAssistant implements the chat pipeline: canned responder without a
// credential, otherwise RAG-augmented prompt plus an OpenRouter call. The
// RAG block is computed over a fresh fetch of the record set at send time,
// not over the caller-supplied snapshot (which is only stored for audit).
type DefaultAssistant struct {
	Settings    settingsRepo.Repository
	Fleet       fleet.DataService
	Log         conversationsRepo.Log
	Completions *CompletionClient
	OwnerEmail  string
	Logger      *zap.Logger
}

func (s *DefaultAssistant) Send(ctx context.Context, message string, contextData json.RawMessage) (models.ConversationTurn, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return models.ConversationTurn{}, fmt.Errorf("read settings: %w", err)
	}

	var aiResponse string
	if strings.TrimSpace(settings.OpenRouterAPIKey) == "" {
		select {
		case <-time.After(cannedDelay):
		case <-ctx.Done():
			return models.ConversationTurn{}, ctx.Err()
		}
		aiResponse = cannedReply(message)
	} else {
		systemPrompt := settings.SystemPrompt
		if settings.EnableRAG {
			records, err := s.Fleet.ListServices(ctx)
			if err != nil {
				s.Logger.Warn("assistant: context fetch failed, sending prompt without RAG block", zap.Error(err))
			} else {
				systemPrompt += BuildContext(records).promptBlock()
			}
		}
		aiResponse = s.Completions.Complete(ctx, settings.OpenRouterAPIKey, settings.Model, systemPrompt, message)
	}

	turn := models.ConversationTurn{
		ID:          uuid.New().String(),
		DriverEmail: s.OwnerEmail,
		UserMessage: message,
		AIResponse:  aiResponse,
		ContextData: contextData,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Log.Append(ctx, turn); err != nil {
		return models.ConversationTurn{}, fmt.Errorf("persist conversation: %w", err)
	}
	return turn, nil
}

func (s *DefaultAssistant) GetConversations(ctx context.Context) ([]models.ConversationTurn, error) {
	return s.Log.All(ctx)
}
