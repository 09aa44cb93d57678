package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	estimator "Solara/internal/estimator"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Results []estimator.Result `json:"results"`
}

// Import reads one estimation scenario per spreadsheet row. Malformed or
// out-of-range rows are skipped rather than failing the whole upload.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []estimator.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		if err := estimator.ValidateInput(input); err != nil {
			continue
		}
		results = append(results, estimator.Calculate(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

func parseRow(row []string) (estimator.Input, error) {
	// expected: area_m2, irradiance, tariff, efficiency(optional),
	// losses(optional), install_cost(optional), maintenance(optional)
	if len(row) < 3 {
		return estimator.Input{}, fmt.Errorf("bad row")
	}
	area, err := toFloat(row[0])
	if err != nil {
		return estimator.Input{}, err
	}
	irradiance, err := toFloat(row[1])
	if err != nil {
		return estimator.Input{}, err
	}
	tariff, err := toFloat(row[2])
	if err != nil {
		return estimator.Input{}, err
	}
	efficiency := 20.0
	if len(row) > 3 && row[3] != "" {
		efficiency, _ = toFloat(row[3])
	}
	losses := 15.0
	if len(row) > 4 && row[4] != "" {
		losses, _ = toFloat(row[4])
	}
	install := 65000.0
	if len(row) > 5 && row[5] != "" {
		install, _ = toFloat(row[5])
	}
	maintenance := 4000.0
	if len(row) > 6 && row[6] != "" {
		maintenance, _ = toFloat(row[6])
	}
	return estimator.Input{
		AreaM2:             area,
		IrradianceKwhM2Day: irradiance,
		TariffPerKwh:       tariff,
		PanelEfficiencyPct: efficiency,
		SystemLossesPct:    losses,
		InstallCostPerKw:   install,
		AnnualMaintenance:  maintenance,
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
