// Package domain holds detect DTOs and ports
package domain

import (
	"context"
	"time"

	"langrelay/internal/core/langid"
)

// DetectInput asks for one detection; Segment adds per sentence runs
type DetectInput struct {
	Text    string `json:"text"              example:"Der Hund ist müde. The cat sleeps."`
	Segment bool   `json:"segment,omitempty" example:"true"`
}

// Detection is the detect endpoint payload
// with Segment the top level lang is the summary and may be mixed
type Detection struct {
	Lang       string            `json:"lang"             example:"de"`
	Confidence langid.Confidence `json:"confidence"       example:"medium"`
	Method     langid.Method     `json:"method,omitempty" example:"dictionary"`
	Runs       []langid.Run      `json:"runs,omitempty"`
}

// StatsInput selects the analytics window in days
type StatsInput struct {
	Days int `json:"days" validate:"min=1,max=365" example:"7"`
}

// StatRow counts detections of one language and confidence
type StatRow struct {
	Lang       string `json:"lang"       example:"de"`
	Confidence string `json:"confidence" example:"medium"`
	Count      uint64 `json:"count"      example:"12"`
}

// Record is one detection offered to analytics; it never carries the text
type Record struct {
	At         time.Time
	Lang       string
	Confidence string
	Chars      int
	Source     string
}

// Detection sources
const (
	SourceDetect    = "detect"
	SourceTranslate = "translate"
)

// Recorder accepts detection records; implementations must not block callers on I/O
type Recorder interface {
	Record(ctx context.Context, r Record)
}

// DetectorPort identifies a text and records the result under source
type DetectorPort interface {
	DetectText(ctx context.Context, text, source string) langid.Result
	DefaultLang() string
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (Detection, error)
	Stats(ctx context.Context, in StatsInput) ([]StatRow, error)
}

// Info describes the running identifier and its analytics sink
type Info struct {
	DefaultLang string   `json:"default_lang,omitempty" example:"es"`
	Languages   []string `json:"languages"`
	Analytics   bool     `json:"analytics"`
	Dropped     int64    `json:"dropped"`
	Failed      int64    `json:"failed"`
}
