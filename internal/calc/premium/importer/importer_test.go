package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheet(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	for i, r := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(name, addr, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func header() []interface{} {
	h := make([]interface{}, len(Columns))
	for i, c := range Columns {
		h[i] = c
	}
	return h
}

func TestReadConfigurations(t *testing.T) {
	buf := sheet(t,
		header(),
		[]interface{}{"flat", 100, 2, 2, 0, 0, 0, 0, 0},
		[]interface{}{"horizontal", "37,5", 2, 2, "0,05", -0.12, 0, 0.4, 0.3, 60, "да", "true"},
		[]interface{}{"wall", 10, 1.5, 1, 0, 0, 0, 0, 0},
		[]interface{}{"wall", 10, 1},
		[]interface{}{"wall", "ten", 1, 1, 0, 0, 0, 0, 0},
	)

	inputs, skipped, err := ReadConfigurations(buf)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, guide.Input{Mass: 100, GuideCount: 2, CarriageCount: 2, Plane: guide.PlaneFlat}, inputs[0])
	assert.Equal(t, guide.Input{
		Plane: guide.PlaneHorizontal, Mass: 37.5, GuideCount: 2, CarriageCount: 2,
		L1: 0.05, L2: -0.12, L4: 0.4, L5: 0.3,
		MaxTemperature: 60, AggressiveEnv: true, IsCompact: true,
	}, inputs[1])

	require.Len(t, skipped, 3)
	assert.Equal(t, 4, skipped[0].Row)
	assert.Contains(t, skipped[0].Reason, "integers")
	assert.Equal(t, 5, skipped[1].Row)
	assert.Contains(t, skipped[1].Reason, "required columns")
	assert.Equal(t, 6, skipped[2].Row)
	assert.Contains(t, skipped[2].Reason, "mass")
}

func TestReadConfigurationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))
	_, _, err := ReadConfigurations(&buf)
	assert.ErrorContains(t, err, "empty sheet")

	_, _, err = ReadConfigurations(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{Service: &guide.Service{
		Engine:  guide.NewEngine(nil),
		Catalog: catalog.Static{{Name: "A", Axial: catalog.Value(1000)}},
	}}
	file := sheet(t, header(),
		[]interface{}{"flat", 100, 2, 2, 0, 0, 0, 0, 0},
		[]interface{}{"flat"},
	)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "configurations.xlsx")
	require.NoError(t, err)
	_, err = part.Write(file.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/batch/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Row)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/user/batch/import", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerTemplate(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Template(rec, httptest.NewRequest(http.MethodGet, "/api/user/batch/template", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Columns, rows[0])
}
