package conversationsRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cooptaxi/database/kv"
	"cooptaxi/models"
)

const conversationsKey = "conversations"

// Log is the append-only conversation history. Turns are never updated or
// removed once written.
type Log interface {
	All(ctx context.Context) ([]models.ConversationTurn, error)
	Append(ctx context.Context, turn models.ConversationTurn) error
}

type kvLog struct {
	kv *kv.Store
}

// NewKVLog returns a Log backed by the local durable store.
func NewKVLog(store *kv.Store) Log {
	return &kvLog{kv: store}
}

func (l *kvLog) All(ctx context.Context) ([]models.ConversationTurn, error) {
	raw, ok, err := l.kv.Get(ctx, conversationsKey)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.ConversationTurn{}, nil
	}

	var turns []models.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil, fmt.Errorf("decode stored conversations: %w", err)
	}
	return turns, nil
}

func (l *kvLog) Append(ctx context.Context, turn models.ConversationTurn) error {
	turns, err := l.All(ctx)
	if err != nil {
		return err
	}
	turns = append(turns, turn)

	encoded, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("encode conversations: %w", err)
	}
	return l.kv.Put(ctx, conversationsKey, string(encoded))
}
