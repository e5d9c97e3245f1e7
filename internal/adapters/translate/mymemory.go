package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	perr "langrelay/internal/platform/errors"
)

// MyMemory talks to the MyMemory translation memory API
type MyMemory struct {
	hc    *http.Client
	url   string
	email string
}

// NewMyMemory returns a MyMemory backend; email raises the anonymous daily quota
func NewMyMemory(hc *http.Client, baseURL, email string) *MyMemory {
	return &MyMemory{hc: hc, url: strings.TrimRight(baseURL, "/"), email: email}
}

// Name implements Backend
func (m *MyMemory) Name() string { return "mymemory" }

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// numeric on success, sometimes a quoted string on errors
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

// Translate implements Backend
func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)
	if m.email != "" {
		q.Set("de", m.email)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "mymemory new request")
	}

	var out myMemoryResponse
	if err := do(m.hc, req, "mymemory", &out); err != nil {
		return "", err
	}
	if out.ResponseStatus.String() != "200" {
		return "", perr.Unavailablef("mymemory status %s: %s", out.ResponseStatus.String(), out.ResponseDetails)
	}
	if out.ResponseData.TranslatedText == "" {
		return "", perr.Unavailablef("mymemory returned an empty translation")
	}
	return out.ResponseData.TranslatedText, nil
}
