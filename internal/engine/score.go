package engine

// Food categories accepted on a post.
const (
	CategoryMeals      = "meals"
	CategoryVegetables = "vegetables"
	CategoryBaked      = "baked"
	CategoryDairy      = "dairy"
	CategoryFruits     = "fruits"
	CategoryOthers     = "others"
)

var validCategories = map[string]bool{
	CategoryMeals:      true,
	CategoryVegetables: true,
	CategoryBaked:      true,
	CategoryDairy:      true,
	CategoryFruits:     true,
	CategoryOthers:     true,
}

// highDemand categories get the larger category bonus.
var highDemand = map[string]bool{
	CategoryMeals:      true,
	CategoryVegetables: true,
	CategoryBaked:      true,
}

func ValidCategory(category string) bool {
	return validCategories[category]
}

const (
	scoreBaseline = 0.5

	distanceBandNearKm = 2
	distanceBandMidKm  = 5
	distanceBandFarKm  = 10

	distanceTermNear    = 0.35
	distanceTermMid     = 0.25
	distanceTermFar     = 0.15
	distanceTermBeyond  = 0.05
	capacityTermWeight  = 0.3
	categoryTermHigh    = 0.15
	categoryTermDefault = 0.05
)

// MatchScore produces the compatibility score for a food post and an org.
// Inputs: pickup distance in km, the org's remaining capacity as a percent of
// its daily capacity, and the post's food category. The result is in
// [0.5, 1.0] for any valid input: the additive terms keep each factor
// auditable on its own.
func MatchScore(distanceKm, capacityPercent float64, category string) float64 {
	score := scoreBaseline

	switch {
	case distanceKm <= distanceBandNearKm:
		score += distanceTermNear
	case distanceKm <= distanceBandMidKm:
		score += distanceTermMid
	case distanceKm <= distanceBandFarKm:
		score += distanceTermFar
	default:
		score += distanceTermBeyond
	}

	score += capacityPercent / 100 * capacityTermWeight

	if highDemand[category] {
		score += categoryTermHigh
	} else {
		score += categoryTermDefault
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
