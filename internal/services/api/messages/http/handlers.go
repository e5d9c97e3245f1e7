// Package http provides http transport for messages
package http

import (
	"mime"
	stdhttp "net/http"

	"langrelay/internal/modkit/httpkit"
	"langrelay/internal/platform/net/http/bind"
	"langrelay/internal/services/api/messages/domain"
	svc "langrelay/internal/services/api/messages/service"
)

// Register mounts message endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/receive", httpkit.Call(h.receive))
	httpkit.Get(r, "/latest", h.latest)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /messages/receive Messages messagesReceive
// @Summary Store one message
// @Tags Messages
// @Accept plain
// @Accept json
// @Produce json
// @Param payload body string true "raw text, or {\"message\": \"...\"} with a JSON content type"
// @Success 201 {object} domain.Stored "stored"
// @Router /messages/receive [post]
func (h *handlers) receive(r *stdhttp.Request) (any, error) {
	raw, err := bind.Body(r, domain.MaxBodyBytes)
	if err != nil {
		return nil, err
	}

	text := string(raw)
	if isJSON(r.Header.Get("Content-Type")) {
		in, err := bind.DecodeJSON[domain.ReceiveInput](raw, bind.JSONOptions{AllowEmptyBody: true})
		if err != nil {
			return nil, err
		}
		text = in.Message
	}

	out, err := h.svc.Receive(r.Context(), text)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route GET /messages/latest Messages messagesLatest
// @Summary Latest stored message
// @Tags Messages
// @Produce json
// @Success 200 {object} domain.Message "ok"
// @Router /messages/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	return h.svc.Latest(r.Context())
}

func isJSON(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && (mt == "application/json" || mt == "text/json")
}
