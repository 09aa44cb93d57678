package estimator

import "math"

// Baseline panel efficiency the output formula is normalized against.
const ReferenceEfficiencyPct = 20.0

// Grid emission factor, kg CO2 avoided per kWh generated.
const EmissionFactorKgPerKwh = 0.82

// System lifetime used for the long-horizon savings figure.
const LifetimeYears = 25

// Relative yield per calendar month, Jan..Dec. The factors model seasonal
// skew and intentionally do not sum to 12.
var SeasonalFactors = [12]float64{0.8, 0.9, 1.1, 1.2, 1.3, 1.2, 1.1, 1.1, 1.0, 0.9, 0.8, 0.7}

var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type Input struct {
	AreaM2             float64 `json:"area_m2" validate:"required,min=10,max=1000"`
	IrradianceKwhM2Day float64 `json:"irradiance_kwh_m2_day" validate:"required,min=3,max=7"`
	TariffPerKwh       float64 `json:"tariff_per_kwh" validate:"required,min=3,max=15"`
	PanelEfficiencyPct float64 `json:"panel_efficiency_pct" validate:"required,min=15,max=25"`
	SystemLossesPct    float64 `json:"system_losses_pct" validate:"required,min=10,max=25"`
	InstallCostPerKw   float64 `json:"install_cost_per_kw" validate:"required,min=40000,max=80000"`
	AnnualMaintenance  float64 `json:"annual_maintenance" validate:"required,min=2000,max=8000"`
}

type Result struct {
	PerformanceRatio  float64   `json:"performance_ratio"`
	AnnualOutputKwh   float64   `json:"annual_output_kwh"`
	AnnualSavings     float64   `json:"annual_savings"`
	TotalSystemCost   float64   `json:"total_system_cost"`
	NetAnnualSavings  float64   `json:"net_annual_savings"`
	PaybackYears      float64   `json:"payback_years"`
	CO2ReductionKg    float64   `json:"co2_reduction_kg"`
	MonthlyOutputKwh  []float64 `json:"monthly_output_kwh"`
	CumulativeSavings []float64 `json:"cumulative_savings_by_year"`
}

// Calculate derives every output metric from a single pass over the input.
// It is a pure function: no state, no I/O, and identical inputs always
// produce identical results. Inputs are assumed to be inside the validated
// ranges; out-of-range values are the caller's problem.
func Calculate(in Input) Result {
	pr := (100 - in.SystemLossesPct) / 100
	annual := in.AreaM2 * in.IrradianceKwhM2Day * 365 * pr * (in.PanelEfficiencyPct / ReferenceEfficiencyPct)
	savings := annual * in.TariffPerKwh
	totalCost := SystemSizeKw(annual) * in.InstallCostPerKw
	net := savings - in.AnnualMaintenance

	// A system that never recoups its cost reports payback 0. The zero is a
	// sentinel meaning "no positive payback", not a division failure.
	payback := 0.0
	if net > 0 {
		payback = totalCost / net
	}

	monthly := make([]float64, 12)
	for i, f := range SeasonalFactors {
		monthly[i] = annual / 12 * f
	}

	years := int(payback) + 4
	if years < 5 {
		years = 5
	}
	cumulative := make([]float64, years)
	for y := 1; y <= years; y++ {
		cumulative[y-1] = float64(y)*net - totalCost
	}

	return Result{
		PerformanceRatio:  pr,
		AnnualOutputKwh:   annual,
		AnnualSavings:     savings,
		TotalSystemCost:   totalCost,
		NetAnnualSavings:  net,
		PaybackYears:      payback,
		CO2ReductionKg:    annual * EmissionFactorKgPerKwh,
		MonthlyOutputKwh:  monthly,
		CumulativeSavings: cumulative,
	}
}

// SystemSizeKw approximates installed capacity as annual output over 1000.
// Not true rated kW; kept deliberately to match the published figures.
func SystemSizeKw(annualOutputKwh float64) float64 {
	return annualOutputKwh / 1000
}

// PotentialScore normalizes output per square meter into a 0-100 gauge value.
func PotentialScore(annualOutputKwh, areaM2 float64) float64 {
	return math.Min(100, annualOutputKwh/areaM2*10)
}

// LifetimeSavings is the cumulative net benefit over the full system lifetime.
func LifetimeSavings(r Result) float64 {
	return float64(LifetimeYears)*r.NetAnnualSavings - r.TotalSystemCost
}

// MonthlySavings prices each month's output at the configured tariff.
func MonthlySavings(r Result, tariffPerKwh float64) []float64 {
	out := make([]float64, len(r.MonthlyOutputKwh))
	for i, kwh := range r.MonthlyOutputKwh {
		out[i] = kwh * tariffPerKwh
	}
	return out
}
