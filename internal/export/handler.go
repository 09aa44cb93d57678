package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	estimator "Solara/internal/estimator"
	"github.com/xuri/excelize/v2"
)

type Input struct {
	Name   string          `json:"name"`
	Params estimator.Input `json:"params"`
}

type Handler struct{}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := estimator.ValidateInput(input.Params); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	res := estimator.Calculate(input.Params)
	f, err := BuildWorkbook(input, res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"solar-estimate.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// BuildWorkbook renders the estimate into Summary, Monthly Output and
// Cumulative Savings sheets.
func BuildWorkbook(input Input, res estimator.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := f.GetSheetName(0)
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Parameter", "Value"},
		{"Scenario", input.Name},
		{"Rooftop Area (m2)", input.Params.AreaM2},
		{"Irradiance (kWh/m2/day)", input.Params.IrradianceKwhM2Day},
		{"Tariff (Rs/kWh)", input.Params.TariffPerKwh},
		{"Panel Efficiency (%)", input.Params.PanelEfficiencyPct},
		{"System Losses (%)", input.Params.SystemLossesPct},
		{"Performance Ratio", res.PerformanceRatio},
		{"System Size (approx. kW)", estimator.SystemSizeKw(res.AnnualOutputKwh)},
		{"Annual Energy Output (kWh)", res.AnnualOutputKwh},
		{"Total Installation Cost (Rs)", res.TotalSystemCost},
		{"Annual Savings (Rs)", res.AnnualSavings},
		{"Net Annual Benefit (Rs)", res.NetAnnualSavings},
		{"Payback Period (years)", res.PaybackYears},
		{"CO2 Reduction (kg/year)", res.CO2ReductionKg},
		{fmt.Sprintf("%d-Year Total Savings (Rs)", estimator.LifetimeYears), estimator.LifetimeSavings(res)},
	}
	if err := writeRows(f, "Summary", summaryRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Monthly Output"); err != nil {
		return nil, err
	}
	monthlyRows := [][]interface{}{{"Month", "Output (kWh)", "Savings (Rs)"}}
	savings := estimator.MonthlySavings(res, input.Params.TariffPerKwh)
	for i, name := range estimator.MonthNames {
		monthlyRows = append(monthlyRows, []interface{}{name, res.MonthlyOutputKwh[i], savings[i]})
	}
	if err := writeRows(f, "Monthly Output", monthlyRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Cumulative Savings"); err != nil {
		return nil, err
	}
	cumulativeRows := [][]interface{}{{"Year", "Cumulative Savings (Rs)"}}
	for i, v := range res.CumulativeSavings {
		cumulativeRows = append(cumulativeRows, []interface{}{i + 1, v})
	}
	if err := writeRows(f, "Cumulative Savings", cumulativeRows); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
