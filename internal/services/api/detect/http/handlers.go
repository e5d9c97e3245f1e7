// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"
	"strconv"

	"langrelay/internal/modkit/httpkit"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/services/api/detect/domain"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /detect Detect detectText
// @Summary Identify the language of a text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.Detection "ok"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route GET /detect/stats Detect detectStats
// @Summary Detection counts per language and confidence
// @Tags Detect
// @Produce json
// @Param days query int false "window in days" default(7)
// @Success 200 {array} domain.StatRow "ok"
// @Router /detect/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	in := domain.StatsInput{Days: 7}
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("days must be an integer"), "days")
		}
		in.Days = n
	}
	return h.svc.Stats(r.Context(), in)
}
