package config

import "os"

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	// ServerPort is the listen port for the HTTP server.
	ServerPort string
	// BackendAPIURL is the base URL of the remote auction store. When empty
	// the service runs against the in-memory store with seed data.
	BackendAPIURL string
	// GenAIAPIKey authenticates the chat-completion client. When empty the
	// chat endpoint is disabled.
	GenAIAPIKey string
	// GenAIModel selects the completion model.
	GenAIModel string
	// EscrowWallet receives held payments until delivery is confirmed.
	EscrowWallet string
}

// LoadConfig loads configuration from environment variables, applying
// development defaults where a variable is unset.
func LoadConfig() *AppConfig {
	cfg := &AppConfig{
		ServerPort:    os.Getenv("PORT"),
		BackendAPIURL: os.Getenv("BACKEND_API_URL"),
		GenAIAPIKey:   os.Getenv("GENAI_API_KEY"),
		GenAIModel:    os.Getenv("GENAI_MODEL"),
		EscrowWallet:  os.Getenv("ESCROW_WALLET"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.GenAIModel == "" {
		cfg.GenAIModel = "gemini-2.0-flash"
	}
	if cfg.EscrowWallet == "" {
		cfg.EscrowWallet = "0x0c892815f0b058e69987920a23fbb33c834289cf"
	}

	return cfg
}
