// Package domain holds messages types and ports
package domain

import (
	"context"
	"time"
)

// MaxBodyBytes caps a received message body
const MaxBodyBytes = 1 << 20

// Message is one stored row
// Lang and TranslatedText stay nil until the translation workflow fills them
type Message struct {
	ID             int64     `json:"id"              example:"42"`
	Message        string    `json:"message"         example:"Der Hund ist müde"`
	Lang           *string   `json:"lang,omitempty"  example:"de"`
	TranslatedText *string   `json:"translated_text,omitempty" example:"The dog is tired"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Translated reports whether a translation was already persisted
func (m Message) Translated() bool {
	return m.Lang != nil && m.TranslatedText != nil && *m.Lang != ""
}

// ReceiveInput is the JSON form of a received message
type ReceiveInput struct {
	Message string `json:"message" example:"Der Hund ist müde"`
}

// Stored acknowledges a received message
type Stored struct {
	ID     int64  `json:"id"     example:"42"`
	Status string `json:"status" example:"Message stored"`
}

// StoredStatus is the acknowledgement text
const StoredStatus = "Message stored"

// MessagesPort is what other modules may do with messages
type MessagesPort interface {
	Receive(ctx context.Context, raw string) (Stored, error)
	Latest(ctx context.Context) (Message, error)
	UpdateTranslation(ctx context.Context, id int64, lang, translated string) error
}
