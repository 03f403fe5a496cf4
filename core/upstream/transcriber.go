package upstream

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transcriber converts an audio stream into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// TranscriptionClient talks to the external transcription API.
type TranscriptionClient struct {
	client *resty.Client
}

// NewTranscriptionClient creates a transcription client from the upstream
// configuration.
func NewTranscriptionClient(cfg Config) *TranscriptionClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	client := resty.New().
		SetBaseURL(cfg.TranscriptionURL).
		SetTimeout(time.Duration(timeout) * time.Second)

	if cfg.TranscriptionKey != "" {
		client.SetAuthToken(cfg.TranscriptionKey)
	}

	return &TranscriptionClient{client: client}
}

// transcriptionResult covers both response shapes the API is known to use.
type transcriptionResult struct {
	Text          string `json:"text"`
	Transcription string `json:"transcription"`
}

// Transcribe uploads the audio stream and returns the transcribed text.
func (c *TranscriptionClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var result transcriptionResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("audio", filename, audio).
		SetResult(&result).
		Post("/transcribe")
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	if resp.IsError() {
		return "", &Error{Service: "transcription", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	if result.Text != "" {
		return result.Text, nil
	}
	return result.Transcription, nil
}
