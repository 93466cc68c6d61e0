package engine

// ImpactFactors are the per-serving conversion assumptions behind the impact
// metrics. They are averages, not measurements, so they are carried as
// configuration with defaults rather than buried constants.
type ImpactFactors struct {
	FoodKgPerServing      float64
	CO2KgPerServing       float64
	WaterLitersPerServing float64
}

func DefaultImpactFactors() ImpactFactors {
	return ImpactFactors{
		FoodKgPerServing:      0.5,
		CO2KgPerServing:       2.5,
		WaterLitersPerServing: 1000,
	}
}

type Impact struct {
	MealsSaved       int     `json:"meals_saved"`
	FoodSavedKg      float64 `json:"food_saved_kg"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
}

// Compute derives the impact of delivering quantityServings servings.
func (f ImpactFactors) Compute(quantityServings int) Impact {
	q := float64(quantityServings)
	return Impact{
		MealsSaved:       quantityServings,
		FoodSavedKg:      q * f.FoodKgPerServing,
		CO2SavedKg:       q * f.CO2KgPerServing,
		WaterSavedLiters: q * f.WaterLitersPerServing,
	}
}
