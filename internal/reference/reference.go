// Package reference serves the static informational content shown beside the
// calculator: a regional irradiance guide and installation tips. The data is
// illustrative and has no dependency on the estimator.
package reference

type Region struct {
	Name       string  `json:"name"`
	Irradiance float64 `json:"avg_irradiance_kwh_m2_day"`
	Potential  string  `json:"potential"`
}

type TipSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

var Regions = []Region{
	{Name: "Rajasthan", Irradiance: 6.2, Potential: "Excellent"},
	{Name: "Gujarat", Irradiance: 5.8, Potential: "Excellent"},
	{Name: "Karnataka", Irradiance: 5.5, Potential: "Very Good"},
	{Name: "Andhra Pradesh", Irradiance: 5.4, Potential: "Very Good"},
	{Name: "Tamil Nadu", Irradiance: 5.2, Potential: "Good"},
	{Name: "Maharashtra", Irradiance: 5.0, Potential: "Good"},
	{Name: "Punjab", Irradiance: 4.8, Potential: "Good"},
	{Name: "Haryana", Irradiance: 4.6, Potential: "Moderate"},
}

var Tips = []TipSection{
	{
		Title: "Optimal Conditions",
		Items: []string{
			"South-facing roofs are ideal",
			"Tilt angle of 15-30 degrees for maximum efficiency",
			"Minimize shadows from trees and buildings",
			"Ensure the roof can support panels for 25+ years",
		},
	},
	{
		Title: "Financial Benefits",
		Items: []string{
			"Government subsidies of up to 40% available",
			"Net metering lets you sell excess power back to the grid",
			"Depreciation advantages for businesses",
			"Increases property value by 3-4%",
		},
	},
	{
		Title: "Environmental Impact",
		Items: []string{
			"A typical system saves 1-2 tons of CO2 per year",
			"Reduces dependence on fossil fuels",
			"Zero emissions during operation",
			"25-30 year lifespan",
		},
	},
	{
		Title: "Technical Considerations",
		Items: []string{
			"Panel types: monocrystalline, polycrystalline, thin-film",
			"Inverters: string vs. power optimizers vs. microinverters",
			"Track system performance remotely",
			"Maintenance is minimal: mostly cleaning and inspections",
		},
	},
}

// LookupRegion returns the irradiance entry for a region name, if present.
func LookupRegion(name string) (Region, bool) {
	for _, r := range Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
