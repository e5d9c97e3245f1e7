// Package http provides http transport for translate
package http

import (
	stdhttp "net/http"

	"langrelay/internal/modkit/httpkit"
	"langrelay/internal/services/api/translate/domain"
)

// Register mounts the ad hoc translate endpoint
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TranslateInput](r, "/", h.translate)
}

// RegisterLatest mounts the latest message translation on a messages router
func RegisterLatest(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/latest/translation", h.latest)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /messages/latest/translation Translate translateLatest
// @Summary Detect and translate the latest message to English
// @Tags Translate
// @Produce json
// @Success 200 {object} domain.Translation "ok"
// @Router /messages/latest/translation [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	return h.svc.Latest(r.Context())
}

// swagger:route POST /translate Translate translateText
// @Summary Translate ad hoc text to English
// @Tags Translate
// @Accept json
// @Produce json
// @Param payload body domain.TranslateInput true "Text"
// @Success 200 {object} domain.Translation "ok"
// @Router /translate [post]
func (h *handlers) translate(r *stdhttp.Request, in domain.TranslateInput) (any, error) {
	return h.svc.Translate(r.Context(), in)
}
