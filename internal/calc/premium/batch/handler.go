package batch

import (
	"net/http"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/httpx"
)

type Handler struct {
	Service *guide.Service
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if apiErr := httpx.DecodeJSON(w, r, &input); apiErr != nil {
		httpx.WriteError(w, apiErr)
		return
	}
	items, err := h.Service.Items(r.Context())
	if err != nil {
		httpx.WriteError(w, guide.HTTPError(err))
		return
	}
	res, err := Calculate(h.Service.Engine, input.Items, items)
	if err != nil {
		httpx.WriteError(w, httpx.NewBadRequestError("calculation error", err))
		return
	}
	httpx.Write(w, r, http.StatusOK, res)
}
