package main

import (
	"fmt"
	"strconv"

	"github.com/Zander1983/WindAndSolar/pkg/engine"
	"github.com/Zander1983/WindAndSolar/pkg/presets"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			if w.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", w.ConflictWith)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printHeader(sc *spec.Scenario) {
	title := sc.Country
	if title == "" {
		title = sc.Name
	}
	fmt.Printf("Fossil Fuel Phase-Out: %s\n", title)
	fmt.Println("======================")
	fmt.Println()
}

func printSectors(res *engine.Result) {
	fmt.Printf("%-14s %16s %16s\n", "Sector", "Electricity TWh", "Emissions Mt")
	fmt.Printf("%-14s %16s %16s\n", "--------------", "----------------", "----------------")

	for _, o := range res.Sectors.Outputs() {
		fmt.Printf("%-14s %16.2f %16.2f\n", o.Sector, o.ElectricityTWh, o.EmissionsMt)
	}
	fmt.Printf("%-14s %16.2f %16.2f\n", "TOTAL", res.Grid.TotalNewTWh, res.Emissions.ExistingTotalMt)
}

func printGrid(res *engine.Result) {
	g := res.Grid
	fmt.Println("New Grid")
	fmt.Println("--------")
	fmt.Printf("  Current grid:              %10.2f TWh\n", g.CurrentGridTWh)
	fmt.Printf("  New electricity needed:    %10.2f TWh\n", g.TotalNewTWh)
	fmt.Printf("  Total energy of new grid:  %10.2f TWh\n", g.TotalEnergyOfNewGridTWh)
	fmt.Println()
	fmt.Printf("  Wind:   %8.2f TWh  %12s turbines  %8.2f GW extra\n",
		g.WindTWh, formatCount(g.NumTurbines), g.ExtraWindGW)
	fmt.Printf("  Solar:  %8.2f TWh  %12s panels    %8.2f GW extra\n",
		g.SolarTWh, formatCount(g.NumSolarPanels), g.ExtraSolarGW)
}

func printStorage(res *engine.Result) {
	st := res.Storage
	fmt.Println("Pumped-Hydro Storage")
	fmt.Println("--------------------")
	fmt.Printf("  Daily storage target:      %10.2f GWh\n", st.DailyTargetGWh)
	fmt.Printf("  Demand growth factor:      %10.3f\n", st.GrowthFactor)
	fmt.Printf("  Wind:  %8.2f GWh/day storable, %8.2f GW extra (%s turbines)\n",
		st.Wind.StorableGWh, st.Wind.IncrementalGW, formatCount(st.Wind.AdditionalUnits))
	fmt.Printf("  Solar: %8.2f GWh/day storable, %8.2f GW extra (%s panels)\n",
		st.Solar.StorableGWh, st.Solar.IncrementalGW, formatCount(st.Solar.AdditionalUnits))
	fmt.Printf("  Reservoir volume:          %s m³\n", formatCount(st.ReservoirVolumeM3))
	if !st.Converged {
		fmt.Printf("  (did not converge after %d iterations)\n", st.Iterations)
	}
}

func printEmissions(res *engine.Result) {
	e := res.Emissions
	fmt.Println("Emissions (Mt CO2e/yr)")
	fmt.Println("----------------------")
	fmt.Printf("  Today:      %8.2f\n", e.ExistingTotalMt)
	fmt.Printf("  New grid:   %8.2f\n", e.NewGridMt)
	fmt.Printf("  Reduction:  %8.2f\n", e.ReductionMt)
}

func printPresetList(list []presets.Summary) {
	fmt.Printf("%-20s %s\n", "Name", "Country")
	fmt.Printf("%-20s %s\n", "--------------------", "--------------------")
	for _, p := range list {
		fmt.Printf("%-20s %s\n", p.Name, p.Country)
	}
}

// formatCount renders n with thousands separators.
func formatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
