// Package service submits prompts to the model and caches the completions
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"langrelay/internal/adapters/llm/openrouter"
	"langrelay/internal/platform/cache"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/logger"
	"langrelay/internal/services/api/prompts/domain"

	"github.com/google/uuid"
)

// Completer is the model seam; *openrouter.Client satisfies it
type Completer interface {
	Complete(ctx context.Context, prompt string) (openrouter.Completion, error)
}

// Service defines the prompts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service
type Svc struct {
	llm   Completer
	cache cache.Store
	ttl   time.Duration
	newID func() string
	keyOf func(string) string
}

// New constructs a prompts service; ttl <= 0 uses cache.DefaultTTL
func New(llm Completer, c cache.Store, ttl time.Duration) *Svc {
	if llm == nil || c == nil {
		panic("prompts.Service requires a Completer and a cache.Store")
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Svc{
		llm:   llm,
		cache: c,
		ttl:   ttl,
		newID: uuid.NewString,
		keyOf: func(id string) string { return "prompt:" + id },
	}
}

// Submit runs the prompt and caches the completion under a fresh id
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.Submitted, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return domain.Submitted{}, perr.WithField(perr.Validationf("prompt is required"), "prompt")
	}

	c, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return domain.Submitted{}, err
	}

	resp := domain.Response{
		ID:           s.newID(),
		UpstreamID:   c.ID,
		Model:        c.Model,
		Content:      c.Content,
		FinishReason: c.FinishReason,
		Usage: domain.Usage{
			PromptTokens:     c.Usage.PromptTokens,
			CompletionTokens: c.Usage.CompletionTokens,
			TotalTokens:      c.Usage.TotalTokens,
		},
		CreatedAt: c.CreatedAt,
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return domain.Submitted{}, perr.Wrap(err, perr.ErrorCodeUnknown, "encode completion")
	}
	if err := s.cache.Set(ctx, s.keyOf(resp.ID), raw, s.ttl); err != nil {
		return domain.Submitted{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "cache completion")
	}

	logger.C(ctx).Info().
		Str("id", resp.ID).
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("prompt completed")
	return domain.Submitted{ID: resp.ID}, nil
}

// Get returns a cached completion; a missing or expired id is NotFound
func (s *Svc) Get(ctx context.Context, id string) (domain.Response, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Response{}, perr.NotFoundf("response %q not found", id)
	}
	raw, ok, err := s.cache.Get(ctx, s.keyOf(id))
	if err != nil {
		return domain.Response{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "read cached completion")
	}
	if !ok {
		return domain.Response{}, perr.NotFoundf("response %q not found", id)
	}
	var out domain.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.Response{}, perr.Wrap(err, perr.ErrorCodeUnknown, "decode cached completion")
	}
	return out, nil
}
