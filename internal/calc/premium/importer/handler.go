package importer

import (
	"net/http"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/calc/premium/batch"
	"Railcalc/internal/httpx"
)

const MaxUploadSize = 10 << 20

type Handler struct {
	Service *guide.Service
}

type ImportResult struct {
	batch.Result
	Skipped []Skipped `json:"skipped,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, httpx.NewBadRequestError("file required", err))
		return
	}
	defer file.Close()

	inputs, skipped, err := ReadConfigurations(file)
	if err != nil {
		httpx.WriteError(w, httpx.NewBadRequestError("invalid file", err))
		return
	}
	items, err := h.Service.Items(r.Context())
	if err != nil {
		httpx.WriteError(w, guide.HTTPError(err))
		return
	}
	res, err := batch.Calculate(h.Service.Engine, inputs, items)
	if err != nil {
		httpx.WriteError(w, httpx.NewBadRequestError("no configurations in file", err))
		return
	}
	httpx.Write(w, r, http.StatusOK, ImportResult{Result: res, Skipped: skipped})
}

func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"configurations.xlsx\"")
	if err := WriteTemplate(w); err != nil {
		httpx.WriteError(w, httpx.NewInternalError("template error", err))
	}
}
