// Package domain holds prompt submission types and ports
package domain

import (
	"context"
	"time"
)

// MaxPromptChars bounds a submitted prompt
const MaxPromptChars = 32768

// SubmitInput is the submission payload
type SubmitInput struct {
	Prompt string `json:"prompt" validate:"required,max=32768" example:"Write a haiku about autumn"`
}

// Submitted carries the id a response is cached under
type Submitted struct {
	ID string `json:"id" example:"5f0c6a52-6f0e-4c39-9a0e-6c7a3c1f2b9d"`
}

// Usage is token accounting reported by the model
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a cached completion
type Response struct {
	ID           string    `json:"id"            example:"5f0c6a52-6f0e-4c39-9a0e-6c7a3c1f2b9d"`
	UpstreamID   string    `json:"upstream_id,omitempty"`
	Model        string    `json:"model"         example:"openai/gpt-4"`
	Content      string    `json:"content"`
	FinishReason string    `json:"finish_reason" example:"stop"`
	Usage        Usage     `json:"usage"`
	CreatedAt    time.Time `json:"created_at"`
}

// ServicePort is consumed by the http layer
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (Submitted, error)
	Get(ctx context.Context, id string) (Response, error)
}
