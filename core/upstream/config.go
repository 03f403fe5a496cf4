package upstream

// Config holds configuration for the external APIs the service relays to.
type Config struct {
	// TranscriptionURL is the base URL of the transcription API.
	TranscriptionURL string `mapstructure:"transcription_url" default:"http://localhost:8001"`
	// TranscriptionKey is the bearer token for the transcription API.
	TranscriptionKey string `mapstructure:"transcription_key" default:""`
	// ProcessingURL is the base URL of the processing API.
	ProcessingURL string `mapstructure:"processing_url" default:"http://localhost:8000"`
	// TimeoutSeconds is the request timeout for upstream calls in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
