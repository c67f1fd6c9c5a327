package services

import (
	"sort"

	"github.com/nutriclin/nutriclin/internal/models"
)

type NutrientTotals struct {
	Kcal         float64 `json:"kcal"`
	Protein      float64 `json:"protein_g"`
	Carbohydrate float64 `json:"carbohydrate_g"`
	Lipid        float64 `json:"lipid_g"`
	Fiber        float64 `json:"fiber_g"`
}

func (totals *NutrientTotals) add(other NutrientTotals) {
	totals.Kcal += other.Kcal
	totals.Protein += other.Protein
	totals.Carbohydrate += other.Carbohydrate
	totals.Lipid += other.Lipid
	totals.Fiber += other.Fiber
}

// PortionFactor converts a gram quantity and a serving count into a per-100g
// multiplier. A serving count of 0 (unset) counts as a single serving so it
// never zeroes an item out.
func PortionFactor(gramQuantity float64, unitQuantity float64) float64 {
	units := unitQuantity
	if units < 1 {
		units = 1
	}
	return gramQuantity * units / 100
}

// PortionTotals scales per-100g nutrients by a portion factor.
func PortionTotals(nutrients models.FoodNutrients, gramQuantity float64, unitQuantity float64) NutrientTotals {
	factor := PortionFactor(gramQuantity, unitQuantity)
	return NutrientTotals{
		Kcal:         nutrients.KcalPer100g * factor,
		Protein:      nutrients.ProteinPer100g * factor,
		Carbohydrate: nutrients.CarbPer100g * factor,
		Lipid:        nutrients.LipidPer100g * factor,
		Fiber:        nutrients.FiberPer100g * factor,
	}
}

func ItemTotals(item models.DietItem) NutrientTotals {
	return PortionTotals(item.FoodNutrients, item.GramQuantity, item.UnitQuantity)
}

func SubstituteTotals(substitute models.DietSubstitute) NutrientTotals {
	return PortionTotals(substitute.FoodNutrients, substitute.GramQuantity, substitute.UnitQuantity)
}

// SumItems accumulates the principal items only. Substitutes are "OR"
// alternatives and never add to a sum.
func SumItems(items []models.DietItem) NutrientTotals {
	totals := NutrientTotals{}
	for _, item := range items {
		totals.add(ItemTotals(item))
	}
	return totals
}

func MealTotals(meal models.DietMeal) NutrientTotals {
	return SumItems(meal.Items)
}

func PlanTotals(plan models.DietPlan) NutrientTotals {
	totals := NutrientTotals{}
	for _, meal := range plan.Meals {
		totals.add(MealTotals(meal))
	}
	return totals
}

// SortMealsByTime orders meals by their HH:MM label. The sort is stable:
// meals sharing a time keep their insertion order.
func SortMealsByTime(meals []models.DietMeal) {
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Time < meals[j].Time
	})
}
