package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	estimator "Solara/internal/estimator"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string          `json:"project"`
	Author  string          `json:"author"`
	Title   string          `json:"title"`
	Notes   string          `json:"notes"`
	Params  estimator.Input `json:"params"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := estimator.ValidateInput(input.Params); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if input.Title == "" {
		input.Title = "Solar Estimate Report"
	}

	res := estimator.Calculate(input.Params)

	pdf := Build(input, res)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"solar-estimate.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Build lays out the full estimate report: header, key metrics, financial
// summary and the month-by-month production table.
func Build(input Input, res estimator.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Key Metrics")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	metricRow(pdf, "Annual Energy Output", fmt.Sprintf("%.0f kWh", res.AnnualOutputKwh))
	metricRow(pdf, "Potential Score", fmt.Sprintf("%.0f / 100", estimator.PotentialScore(res.AnnualOutputKwh, input.Params.AreaM2)))
	metricRow(pdf, "Payback Period", paybackLabel(res.PaybackYears))
	metricRow(pdf, "CO2 Reduction", fmt.Sprintf("%.0f kg/year", res.CO2ReductionKg))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Financial Summary")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	metricRow(pdf, "System Size (approx. kW)", fmt.Sprintf("%.1f", estimator.SystemSizeKw(res.AnnualOutputKwh)))
	metricRow(pdf, "Total Installation Cost (Rs)", fmt.Sprintf("%.0f", res.TotalSystemCost))
	metricRow(pdf, "Annual Savings (Rs)", fmt.Sprintf("%.0f", res.AnnualSavings))
	metricRow(pdf, "Annual Maintenance (Rs)", fmt.Sprintf("%.0f", input.Params.AnnualMaintenance))
	metricRow(pdf, "Net Annual Benefit (Rs)", fmt.Sprintf("%.0f", res.NetAnnualSavings))
	metricRow(pdf, fmt.Sprintf("%d-Year Total Savings (Rs)", estimator.LifetimeYears), fmt.Sprintf("%.0f", estimator.LifetimeSavings(res)))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Monthly Production Estimate")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	savings := estimator.MonthlySavings(res, input.Params.TariffPerKwh)
	for i, name := range estimator.MonthNames {
		pdf.CellFormat(30, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.0f kWh", res.MonthlyOutputKwh[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("Rs %.0f", savings[i]), "1", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}
	return pdf
}

func metricRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(75, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 0, "L", false, 0, "")
	pdf.Ln(6)
}

func paybackLabel(years float64) string {
	if years == 0 {
		return "no positive payback"
	}
	return fmt.Sprintf("%.1f years", years)
}
