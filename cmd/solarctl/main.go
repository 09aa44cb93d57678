package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"

	estimator "Solara/internal/estimator"

	"github.com/spf13/pflag"
)

type output struct {
	Input          estimator.Input  `json:"input"`
	Result         estimator.Result `json:"result"`
	SystemSizeKw   float64          `json:"system_size_kw"`
	PotentialScore float64          `json:"potential_score"`
}

func main() {
	in := estimator.Input{
		AreaM2:             100,
		IrradianceKwhM2Day: 5.5,
		TariffPerKwh:       6.5,
		PanelEfficiencyPct: 20,
		SystemLossesPct:    15,
		InstallCostPerKw:   65000,
		AnnualMaintenance:  4000,
	}
	var format string

	pflag.Float64VarP(&in.AreaM2, "area", "a", in.AreaM2, "Rooftop area in m2")
	pflag.Float64VarP(&in.IrradianceKwhM2Day, "irradiance", "i", in.IrradianceKwhM2Day, "Solar irradiance in kWh/m2/day")
	pflag.Float64VarP(&in.TariffPerKwh, "tariff", "t", in.TariffPerKwh, "Electricity tariff per kWh")
	pflag.Float64Var(&in.PanelEfficiencyPct, "efficiency", in.PanelEfficiencyPct, "Panel efficiency in percent")
	pflag.Float64Var(&in.SystemLossesPct, "losses", in.SystemLossesPct, "System losses in percent")
	pflag.Float64Var(&in.InstallCostPerKw, "install-cost", in.InstallCostPerKw, "Installation cost per kW")
	pflag.Float64Var(&in.AnnualMaintenance, "maintenance", in.AnnualMaintenance, "Annual maintenance cost")
	pflag.StringVarP(&format, "format", "f", "json", "Output format: json or csv")
	pflag.Parse()

	if err := estimator.ValidateInput(in); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	res := estimator.Calculate(in)
	out := output{
		Input:          in,
		Result:         res,
		SystemSizeKw:   estimator.SystemSizeKw(res.AnnualOutputKwh),
		PotentialScore: estimator.PotentialScore(res.AnnualOutputKwh, in.AreaM2),
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatalf("failed to marshal JSON: %v", err)
		}
		fmt.Println(string(data))
	case "csv":
		if err := writeCSV(os.Stdout, out); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
	default:
		log.Fatalf("unknown format %q", format)
	}
}

func writeCSV(f *os.File, out output) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{
		"Area (m2)", "Irradiance (kWh/m2/day)", "Tariff (Rs/kWh)",
		"Efficiency (%)", "Losses (%)",
		"Annual Output (kWh)", "Annual Savings (Rs)", "Total Cost (Rs)",
		"Net Annual Savings (Rs)", "Payback (years)", "CO2 Reduction (kg)",
		"System Size (kW)", "Potential Score",
	}
	data := []string{
		fmt.Sprintf("%.1f", out.Input.AreaM2),
		fmt.Sprintf("%.2f", out.Input.IrradianceKwhM2Day),
		fmt.Sprintf("%.2f", out.Input.TariffPerKwh),
		fmt.Sprintf("%.1f", out.Input.PanelEfficiencyPct),
		fmt.Sprintf("%.1f", out.Input.SystemLossesPct),
		fmt.Sprintf("%.1f", out.Result.AnnualOutputKwh),
		fmt.Sprintf("%.2f", out.Result.AnnualSavings),
		fmt.Sprintf("%.2f", out.Result.TotalSystemCost),
		fmt.Sprintf("%.2f", out.Result.NetAnnualSavings),
		fmt.Sprintf("%.2f", out.Result.PaybackYears),
		fmt.Sprintf("%.1f", out.Result.CO2ReductionKg),
		fmt.Sprintf("%.2f", out.SystemSizeKw),
		fmt.Sprintf("%.1f", out.PotentialScore),
	}

	if err := w.Write(headers); err != nil {
		return err
	}
	return w.Write(data)
}
