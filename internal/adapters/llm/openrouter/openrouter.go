// Package openrouter sends chat completions to OpenRouter through its OpenAI compatible API
package openrouter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"langrelay/internal/platform/config"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/logger"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the OpenRouter API root
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is used when no model is configured
	DefaultModel   = "openai/gpt-4"
	defaultTimeout = 60 * time.Second
)

// Options configures the Client
type Options struct {
	APIKey  string
	BaseURL string
	Model   string

	// Referer and Title identify the app on openrouter.ai rankings
	Referer string
	Title   string
	Timeout time.Duration
}

// OptionsFromConfig reads API_KEY, BASE_URL, MODEL, REFERER, TITLE and TIMEOUT
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		APIKey:  cfg.MayString("API_KEY", ""),
		BaseURL: cfg.MayString("BASE_URL", DefaultBaseURL),
		Model:   cfg.MayString("MODEL", DefaultModel),
		Referer: cfg.MayString("REFERER", ""),
		Title:   cfg.MayString("TITLE", "langrelay"),
		Timeout: cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Usage is the token accounting of one completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the first choice of a chat completion plus its metadata
type Completion struct {
	ID           string    `json:"id"`
	Model        string    `json:"model"`
	Content      string    `json:"content"`
	FinishReason string    `json:"finish_reason"`
	Usage        Usage     `json:"usage"`
	CreatedAt    time.Time `json:"created_at"`
}

type completer interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client submits single prompt conversations
type Client struct {
	api   completer
	model string
	keyed bool
	log   logger.Logger
}

// New builds a Client; an empty APIKey yields a client whose calls fail Unauthorized
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	hdr := http.Header{}
	if o.Referer != "" {
		hdr.Set("HTTP-Referer", o.Referer)
	}
	if o.Title != "" {
		hdr.Set("X-Title", o.Title)
	}

	cc := openai.DefaultConfig(o.APIKey)
	cc.BaseURL = strings.TrimRight(o.BaseURL, "/")
	cc.HTTPClient = &http.Client{
		Timeout:   o.Timeout,
		Transport: headerTransport{base: http.DefaultTransport, headers: hdr},
	}

	return &Client{
		api:   openai.NewClientWithConfig(cc),
		model: o.Model,
		keyed: o.APIKey != "",
		log:   *logger.Named("openrouter"),
	}
}

// FromConfig builds a Client from a CORE_PROMPTS_ scoped config
func FromConfig(cfg config.Conf) *Client { return New(OptionsFromConfig(cfg)) }

// Model returns the configured model name
func (c *Client) Model() string { return c.model }

// Complete sends prompt as the only user message
func (c *Client) Complete(ctx context.Context, prompt string) (Completion, error) {
	if !c.keyed {
		return Completion{}, perr.Unauthorizedf("model provider api key not configured")
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.log.Warn().Err(err).Str("model", c.model).Dur("latency", time.Since(start)).Msg("chat completion failed")
		return Completion{}, classify(err)
	}
	if len(resp.Choices) == 0 {
		return Completion{}, perr.Unavailablef("model provider returned no choices")
	}

	c.log.Debug().Str("model", resp.Model).Int("tokens", resp.Usage.TotalTokens).
		Dur("latency", time.Since(start)).Msg("chat completion")

	created := time.Now().UTC()
	if resp.Created > 0 {
		created = time.Unix(resp.Created, 0).UTC()
	}
	ch := resp.Choices[0]
	return Completion{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      ch.Message.Content,
		FinishReason: string(ch.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		CreatedAt: created,
	}, nil
}

// classify maps provider failures onto error codes by HTTP status
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return perr.Wrap(err, codeFor(apiErr.HTTPStatusCode), "model provider: "+apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return perr.Wrap(err, codeFor(reqErr.HTTPStatusCode), "model provider request failed")
	}
	return perr.Wrap(err, perr.ErrorCodeUnavailable, "model provider unreachable")
}

func codeFor(status int) perr.ErrorCode {
	return perr.CodeOf(perr.FromStatus(status, ""))
}

type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		r.Header[k] = v
	}
	return t.base.RoundTrip(r)
}
