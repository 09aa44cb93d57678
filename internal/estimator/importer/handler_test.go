package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		wantErr bool
	}{
		{"full row", []string{"100", "5.5", "6.5", "22", "12", "50000", "3000"}, false},
		{"defaults filled in", []string{"100", "5.5", "6.5"}, false},
		{"too short", []string{"100", "5.5"}, true},
		{"non-numeric area", []string{"big", "5.5", "6.5"}, true},
		{"trailing garbage rejected", []string{"100", "5.5abc", "6.5"}, true},
		{"padded cells accepted", []string{" 100 ", " 5.5", "6.5 "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := parseRow(tt.row)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 100.0, in.AreaM2)
			assert.Equal(t, 5.5, in.IrradianceKwhM2Day)
		})
	}
}

func TestParseRow_Defaults(t *testing.T) {
	in, err := parseRow([]string{"100", "5.5", "6.5"})
	require.NoError(t, err)
	assert.Equal(t, 20.0, in.PanelEfficiencyPct)
	assert.Equal(t, 15.0, in.SystemLossesPct)
	assert.Equal(t, 65000.0, in.InstallCostPerKw)
	assert.Equal(t, 4000.0, in.AnnualMaintenance)
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func uploadRequest(t *testing.T, content *bytes.Buffer) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "scenarios.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/solar/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImport_SkipsBadRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"area_m2", "irradiance", "tariff"},
		{100, 5.5, 6.5},
		{"garbage", 5.5, 6.5},
		{5, 5.5, 6.5}, // area below range, skipped by validation
		{200, 6.0, 7.0},
	})

	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Import(rec, uploadRequest(t, buf))

	require.Equal(t, http.StatusOK, rec.Code)
	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)
	assert.Greater(t, res.Results[1].AnnualOutputKwh, res.Results[0].AnnualOutputKwh)
}

func TestImport_NoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/solar/import", nil)
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Import(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
