package report

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/httpx"

	"github.com/google/uuid"
)

type Input struct {
	Meta
	Config guide.Input `json:"config"`
}

type Handler struct {
	Service *guide.Service
}

type renderer func(io.Writer, Meta, guide.Input, guide.Result) error

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, PDF, "application/pdf", "pdf")
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, XLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, render renderer, contentType, ext string) {
	var input Input
	if apiErr := httpx.DecodeJSON(w, r, &input); apiErr != nil {
		httpx.WriteError(w, apiErr)
		return
	}
	res, err := h.Service.Run(r.Context(), input.Config)
	if err != nil {
		httpx.WriteError(w, guide.HTTPError(err))
		return
	}
	input.Meta.Date = time.Now()

	var buf bytes.Buffer
	if err := render(&buf, input.Meta, input.Config, res); err != nil {
		httpx.WriteError(w, httpx.NewInternalError("report generation error", err))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"report-%s.%s\"", uuid.NewString()[:8], ext))
	w.Write(buf.Bytes())
}
