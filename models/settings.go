package models

// DefaultSystemPrompt is the assistant persona used until the driver edits it.
const DefaultSystemPrompt = `Tu es un assistant expert pour les chauffeurs de taxi. Tu réponds de manière concise, professionnelle et utile. Tu utilises les données fournies pour analyser les performances.`

// Settings are the driver-tunable options persisted in the local durable
// store. The JSON field names are a stable contract: settings saved by older
// builds are merged key-by-key over the defaults on read, so fields added
// later keep their default values.
type Settings struct {
	OpenRouterAPIKey string `json:"openRouterApiKey"`
	Model            string `json:"model"`
	EnableRAG        bool   `json:"enableRAG"`
	SystemPrompt     string `json:"systemPrompt"`
	RemoteBackendURL string `json:"remoteBackendUrl"`
	UseRemoteBackend bool   `json:"useRemoteBackend"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		OpenRouterAPIKey: "",
		Model:            "moonshot/moonshot-v1-32k",
		EnableRAG:        true,
		SystemPrompt:     DefaultSystemPrompt,
		RemoteBackendURL: "http://localhost:5678/webhook",
		UseRemoteBackend: false,
	}
}
