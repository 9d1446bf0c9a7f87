package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// OpenRouterURL is the chat-completions endpoint of the external provider.
const OpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// User-facing diagnostics produced when the provider cannot answer. The chat
// flow never raises over a provider problem; it replies with one of these.
const (
	ConnectionErrorReply = "Erreur de connexion à OpenRouter. Veuillez vérifier votre connexion internet."
	ModelShapeErrorReply = "Erreur de réponse du modèle."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CompletionClient sends a system+user message pair to OpenRouter. The
// Referer and AppName headers identify the calling application, which
// OpenRouter requires.
type CompletionClient struct {
	Client  *resty.Client
	URL     string
	Referer string
	AppName string
	Logger  *zap.Logger
}

// NewCompletionClient returns a client against the public OpenRouter
// endpoint.
func NewCompletionClient(logger *zap.Logger) *CompletionClient {
	return &CompletionClient{
		Client:  resty.New().SetTimeout(60 * time.Second),
		URL:     OpenRouterURL,
		Referer: "https://cooptaxi-terrebonne.ca",
		AppName: "Co-op Taxi Dashboard",
		Logger:  logger,
	}
}

// Complete returns the assistant text for the given prompt pair. Provider
// failures come back as user-facing diagnostic text, never as an error.
func (c *CompletionClient) Complete(ctx context.Context, apiKey, model, systemPrompt, userMessage string) string {
	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	resp, err := c.Client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", c.Referer).
		SetHeader("X-Title", c.AppName).
		SetBody(payload).
		Post(c.URL)
	if err != nil {
		c.Logger.Error("openrouter: request failed", zap.Error(err))
		return ConnectionErrorReply
	}

	if !resp.IsSuccess() {
		detail := "Vérifiez votre clé API."
		var apiErr chatErrorResponse
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		c.Logger.Error("openrouter: non-2xx response",
			zap.Int("status", resp.StatusCode()), zap.String("detail", detail))
		return fmt.Sprintf("Erreur API (%d): %s", resp.StatusCode(), detail)
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil || len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		c.Logger.Warn("openrouter: unexpected response shape")
		return ModelShapeErrorReply
	}
	return out.Choices[0].Message.Content
}
