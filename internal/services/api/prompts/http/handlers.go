// Package http provides http transport for prompts
package http

import (
	stdhttp "net/http"

	"langrelay/internal/modkit/httpkit"
	"langrelay/internal/services/api/prompts/domain"
)

// Register mounts the prompt endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SubmitInput](r, "/submit", h.submit)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /prompts/submit Prompts promptsSubmit
// @Summary Submit a prompt to the language model
// @Tags Prompts
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Prompt"
// @Success 201 {object} domain.Submitted "created"
// @Router /prompts/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	out, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route GET /prompts/{id} Prompts promptsGet
// @Summary Read a cached completion
// @Tags Prompts
// @Produce json
// @Param id path string true "Response id"
// @Success 200 {object} domain.Response "ok"
// @Router /prompts/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}
