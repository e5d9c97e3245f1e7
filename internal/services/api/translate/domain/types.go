// Package domain holds translate DTOs and ports
package domain

import (
	"context"

	detdom "langrelay/internal/services/api/detect/domain"
	msgdom "langrelay/internal/services/api/messages/domain"
)

// DefaultTarget is the language everything is translated into
const DefaultTarget = "en"

// TranslateInput is an ad hoc translation request; an empty Source means detect
type TranslateInput struct {
	Text   string `json:"text"             validate:"required,max=10000" example:"Der Hund ist müde"`
	Source string `json:"source,omitempty" validate:"omitempty,alpha,min=2,max=8" example:"de"`
}

// Translation is the result of the detect then translate workflow
// Translated is false when the language could not be identified and the text is returned as is
type Translation struct {
	ID             int64  `json:"id,omitempty"         example:"42"`
	Message        string `json:"message"              example:"Der Hund ist müde"`
	Lang           string `json:"lang"                 example:"de"`
	Confidence     string `json:"confidence,omitempty" example:"medium"`
	Translated     bool   `json:"translated"           example:"true"`
	TranslatedText string `json:"translated_text"      example:"The dog is tired"`
	Backend        string `json:"backend,omitempty"    example:"libre"`
	Cached         bool   `json:"cached"               example:"false"`
}

// Ports are the upstream modules translate depends on
type Ports struct {
	Messages msgdom.MessagesPort
	Detector detdom.DetectorPort
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Latest(ctx context.Context) (Translation, error)
	Translate(ctx context.Context, in TranslateInput) (Translation, error)
}
