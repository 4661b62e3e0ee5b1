package constants

// Centralized constants for env keys, routes and the OpenAI integration.
const (
	// Environment variable keys
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvOpenAIModel  = "OPENAI_MODEL"
	EnvConfigPath   = "SPECTRUM_CONFIG"
	EnvDBPath       = "SPECTRUM_DB"
	EnvAPIBaseURL   = "SPECTRUM_API"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenAI API endpoints and base URL
	OpenAIBaseURL             = "https://api.openai.com"
	OpenAIChatCompletionsPath = "/v1/chat/completions"

	// Default chat model; override with OPENAI_MODEL.
	OpenAIChatModelDefault = "gpt-4o-mini"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteHealth    = "/health"
	RouteVersion   = "/version"
	RouteRound     = "/round"
	RouteReveal    = "/reveal"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
	JSONKeyOK      = "ok"
)

// Common error messages used across API handlers. The round/reveal texts
// are part of the public API contract and must not be reworded casually.
const (
	ErrInvalidRequest        = "Invalid request"
	ErrThemeRequired         = "theme is required"
	ErrGuessRequired         = "guess is required"
	ErrGuessNotInteger       = "guess must be an integer 0-100"
	ErrGuessOutOfRange       = "guess out of range"
	ErrUnknownOrExpiredRound = "unknown_or_expired_round"
	ErrGenerationFailed      = "generation_failed"
	ErrModelOutputInvalid    = "model_output_invalid"

	// Generic client-side fallback used when a failure response carries no
	// error field.
	ErrRoundServiceFailed = "round service request failed"
)

// Logging field names
const (
	LogFieldRoundID = "round_id"
	LogFieldTheme   = "theme"
	LogFieldTarget  = "target"
	LogFieldGuess   = "guess"
	LogFieldAddr    = "addr"
	LogFieldCount   = "count"
)
