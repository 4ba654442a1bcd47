package spec

// Road-fleet category keys, in display order.
const (
	CategoryCars        = "cars"
	CategoryBusesSmall  = "busesSmall"
	CategoryBusesLarge  = "busesLarge"
	CategoryLightGoods  = "lightGoods"
	CategoryHeavyGoods  = "heavyGoods"
	CategoryTractors    = "tractors"
	CategoryMotorcycles = "motorcycles"
	CategoryOther       = "other"
)

// Categories lists the canonical fleet categories in order.
var Categories = []string{
	CategoryCars,
	CategoryBusesSmall,
	CategoryBusesLarge,
	CategoryLightGoods,
	CategoryHeavyGoods,
	CategoryTractors,
	CategoryMotorcycles,
	CategoryOther,
}

// Intensity is the per-km energy and emissions of a vehicle category.
type Intensity struct {
	KWhPerKm  float64
	GCO2PerKm float64
	Label     string
}

// CategoryDefaults holds per-category intensities. Large buses, heavy goods
// vehicles and tractors are assumed to run on hydrogen fuel cells:
// 0.0802 kg H2/km at 52.5 kWh/kg plus 10 % grid losses.
var CategoryDefaults = map[string]Intensity{
	CategoryCars:        {0.19, 130, "Cars"},
	CategoryBusesSmall:  {0.23, 153, "Small buses"},
	CategoryBusesLarge:  {4.63, 822, "Large buses"},
	CategoryLightGoods:  {0.23, 193, "Light goods vehicles"},
	CategoryHeavyGoods:  {4.63, 1045, "Heavy goods vehicles"},
	CategoryTractors:    {4.63, 1045, "Tractors"},
	CategoryMotorcycles: {0.11, 113, "Motorcycles"},
	CategoryOther:       {0.23, 193, "Other vehicles"},
}

// CategoryLabel returns a human-readable name for a category key.
func CategoryLabel(category string) string {
	if d, ok := CategoryDefaults[category]; ok {
		return d.Label
	}
	return category
}
