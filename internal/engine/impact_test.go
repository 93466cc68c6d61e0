package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodbridge/foodbridge/internal/engine"
)

func TestImpactFactors_Compute(t *testing.T) {
	t.Parallel()

	t.Run("default factors", func(t *testing.T) {
		t.Parallel()
		got := engine.DefaultImpactFactors().Compute(40)

		assert.Equal(t, 40, got.MealsSaved)
		assert.InDelta(t, 20.0, got.FoodSavedKg, 1e-9)
		assert.InDelta(t, 100.0, got.CO2SavedKg, 1e-9)
		assert.InDelta(t, 40000.0, got.WaterSavedLiters, 1e-9)
	})

	t.Run("zero servings", func(t *testing.T) {
		t.Parallel()
		got := engine.DefaultImpactFactors().Compute(0)

		assert.Zero(t, got.MealsSaved)
		assert.Zero(t, got.FoodSavedKg)
		assert.Zero(t, got.CO2SavedKg)
		assert.Zero(t, got.WaterSavedLiters)
	})

	t.Run("custom factors", func(t *testing.T) {
		t.Parallel()
		factors := engine.ImpactFactors{
			FoodKgPerServing:      0.4,
			CO2KgPerServing:       2.0,
			WaterLitersPerServing: 800,
		}
		got := factors.Compute(10)

		assert.Equal(t, 10, got.MealsSaved)
		assert.InDelta(t, 4.0, got.FoodSavedKg, 1e-9)
		assert.InDelta(t, 20.0, got.CO2SavedKg, 1e-9)
		assert.InDelta(t, 8000.0, got.WaterSavedLiters, 1e-9)
	})
}
