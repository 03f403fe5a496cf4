package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// Processor talks to the external processing API, which accepts raw JSON or
// file uploads and answers with product bundles.
type Processor interface {
	// ProcessJSON relays a JSON payload verbatim.
	ProcessJSON(ctx context.Context, payload []byte) (*ProcessResponse, error)
	// ProcessFile relays an uploaded file.
	ProcessFile(ctx context.Context, filename string, file io.Reader) (*ProcessResponse, error)
	// ProcessOCR relays an uploaded document to the OCR endpoint.
	ProcessOCR(ctx context.Context, filename string, file io.Reader) (*ProcessResponse, error)
	// FetchCatalog pulls the current product feed.
	FetchCatalog(ctx context.Context) (*ProcessResponse, error)
}

// ProcessResponse is the normalized answer of the processing API.
//
// The API returns either a single bundle object or a list of bundles under
// an "items" key. Both shapes are normalized into Items; Raw always carries
// the unmodified body for pass-through responses.
type ProcessResponse struct {
	Message string
	Items   []json.RawMessage
	Raw     json.RawMessage
}

// ProcessingClient is the resty-backed Processor implementation.
type ProcessingClient struct {
	client *resty.Client
}

// NewProcessingClient creates a processing client from the upstream
// configuration.
func NewProcessingClient(cfg Config) *ProcessingClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	client := resty.New().
		SetBaseURL(cfg.ProcessingURL).
		SetTimeout(time.Duration(timeout) * time.Second)

	return &ProcessingClient{client: client}
}

func (c *ProcessingClient) ProcessJSON(ctx context.Context, payload []byte) (*ProcessResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/process")
	if err != nil {
		return nil, fmt.Errorf("processing request failed: %w", err)
	}
	return parseProcessResponse(resp)
}

func (c *ProcessingClient) ProcessFile(ctx context.Context, filename string, file io.Reader) (*ProcessResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		Post("/process")
	if err != nil {
		return nil, fmt.Errorf("processing upload failed: %w", err)
	}
	return parseProcessResponse(resp)
}

func (c *ProcessingClient) ProcessOCR(ctx context.Context, filename string, file io.Reader) (*ProcessResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		Post("/ocr")
	if err != nil {
		return nil, fmt.Errorf("ocr upload failed: %w", err)
	}
	return parseProcessResponse(resp)
}

func (c *ProcessingClient) FetchCatalog(ctx context.Context) (*ProcessResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/catalog")
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	return parseProcessResponse(resp)
}

func parseProcessResponse(resp *resty.Response) (*ProcessResponse, error) {
	if resp.IsError() {
		return nil, &Error{Service: "processing", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	body := resp.Body()
	out := &ProcessResponse{Raw: json.RawMessage(body)}

	var envelope struct {
		Message string            `json:"message"`
		Items   []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Non-object bodies are still valid pass-through responses.
		return out, nil
	}
	out.Message = envelope.Message
	out.Items = envelope.Items

	// Single-bundle responses carry the bundle at the top level.
	if len(out.Items) == 0 {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(body, &probe); err == nil {
			if _, ok := probe["product"]; ok {
				out.Items = []json.RawMessage{json.RawMessage(body)}
			}
		}
	}

	return out, nil
}
