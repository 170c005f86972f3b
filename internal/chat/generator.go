// Package chat models the external text-generation model as an
// injected capability. The core never depends on a concrete model,
// runtime or transport; the CLI wires in the HTTP client and surfaces
// any failure inline without touching the simulation path.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoCandidates indicates the model returned an empty candidate list.
var ErrNoCandidates = errors.New("chat: model returned no candidates")

// Generator produces text continuations for a prompt. Implementations
// own their latency and non-determinism; callers treat every error as
// a reportable, non-fatal condition.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxLength int) ([]string, error)
}

// Client calls a hosted text-generation endpoint over HTTP using the
// inference-API convention: POST {endpoint}/{model} with a JSON body,
// JSON array of generated candidates back.
type Client struct {
	endpoint   string
	model      string
	token      string
	candidates int
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithCandidates sets how many continuations to request.
func WithCandidates(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.candidates = n
		}
	}
}

// WithTimeout bounds each generation call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a generation client for one model behind endpoint.
func NewClient(endpoint, model string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		model:      model,
		candidates: 1,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxLength          int `json:"max_length"`
	NumReturnSequences int `json:"num_return_sequences"`
}

type generateCandidate struct {
	GeneratedText string `json:"generated_text"`
}

// Generate requests continuations of prompt bounded by maxLength
// tokens. It returns the model's candidates in order; the caller
// displays the first.
func (c *Client) Generate(ctx context.Context, prompt string, maxLength int) ([]string, error) {
	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxLength:          maxLength,
			NumReturnSequences: c.candidates,
		},
	})
	if err != nil {
		return nil, err
	}

	url := c.endpoint + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation model returned %s: %s",
			resp.Status, strings.TrimSpace(string(payload)))
	}

	var candidates []generateCandidate
	if err := json.Unmarshal(payload, &candidates); err != nil {
		return nil, fmt.Errorf("malformed generation response: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.GeneratedText
	}
	return out, nil
}
