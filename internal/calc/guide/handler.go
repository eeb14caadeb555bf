package guide

import (
	"errors"
	"log/slog"
	"net/http"

	"Railcalc/internal/httpx"
)

type Handler struct {
	Service *Service
	Log     *slog.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if apiErr := httpx.DecodeJSON(w, r, &input); apiErr != nil {
		httpx.WriteError(w, apiErr)
		return
	}
	res, err := h.Service.Run(r.Context(), input)
	if err != nil {
		h.Log.Warn("calculation rejected", "id", httpx.RequestIDFrom(r.Context()), "err", err)
		httpx.WriteError(w, HTTPError(err))
		return
	}
	httpx.Write(w, r, http.StatusOK, res)
}

type variantInfo struct {
	Order   int    `json:"order"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func (h *Handler) Variants(w http.ResponseWriter, r *http.Request) {
	vs := h.Service.Engine.Variants()
	out := make([]variantInfo, 0, len(vs))
	for i, v := range vs {
		out = append(out, variantInfo{Order: i + 1, Name: v.Name, Summary: v.Summary})
	}
	httpx.Write(w, r, http.StatusOK, out)
}

// HTTPError maps pipeline errors onto API errors. An unmatched configuration
// never reaches here: it is a successful result with OK=false.
func HTTPError(err error) *httpx.APIError {
	var apiErr *httpx.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, ErrInvalidInput):
		return httpx.NewValidationError(err)
	case errors.Is(err, ErrInvalidConfiguration):
		return httpx.NewConfigurationError(err)
	case errors.Is(err, ErrCatalog):
		return httpx.NewBadGatewayError("catalog unavailable", err)
	default:
		return httpx.NewInternalError("calculation error", err)
	}
}
