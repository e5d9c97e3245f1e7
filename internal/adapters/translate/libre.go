package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	perr "langrelay/internal/platform/errors"
)

// Libre talks to a LibreTranslate instance
type Libre struct {
	hc  *http.Client
	url string
	key string
}

// NewLibre returns a LibreTranslate backend; key may be empty for self hosted instances
func NewLibre(hc *http.Client, baseURL, key string) *Libre {
	return &Libre{hc: hc, url: strings.TrimRight(baseURL, "/"), key: key}
}

// Name implements Backend
func (l *Libre) Name() string { return "libre" }

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate implements Backend
func (l *Libre) Translate(ctx context.Context, text, source, target string) (string, error) {
	payload, err := json.Marshal(libreRequest{Q: text, Source: source, Target: target, Format: "text", APIKey: l.key})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "libre encode")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "libre new request")
	}
	req.Header.Set("Content-Type", "application/json")

	var out libreResponse
	if err := do(l.hc, req, "libre", &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", perr.Unavailablef("libre: %s", out.Error)
	}
	if out.TranslatedText == "" {
		return "", perr.Unavailablef("libre returned an empty translation")
	}
	return out.TranslatedText, nil
}
