package services

import (
	"github.com/google/uuid"

	"github.com/nutriclin/nutriclin/internal/models"
)

// Tree operations over a diet plan working copy. The caller owns the copy
// and persists the whole document after a successful mutation; nothing here
// touches storage.

const (
	DefaultMealName = "Breakfast"
	DefaultMealTime = "08:00"
)

// NewPlan builds an unsaved plan with one default meal.
func NewPlan(patientID uint, title string) models.DietPlan {
	return models.DietPlan{
		PatientID: patientID,
		Title:     title,
		Meals:     []models.DietMeal{NewMeal(DefaultMealName, DefaultMealTime, models.MealKindMeal)},
	}
}

func NewMeal(name string, timeOfDay string, kind string) models.DietMeal {
	if kind != models.MealKindHabit {
		kind = models.MealKindMeal
	}
	return models.DietMeal{
		ID:    uuid.NewString(),
		Name:  name,
		Time:  timeOfDay,
		Kind:  kind,
		Items: []models.DietItem{},
	}
}

// NewItemFromFood snapshots the catalog entry's per-100g nutrients into a
// plan item.
func NewItemFromFood(food models.FoodItem, gramQuantity float64, unitQuantity float64) models.DietItem {
	return models.DietItem{
		ID:            uuid.NewString(),
		FoodID:        food.ID,
		Name:          food.Name,
		GramQuantity:  gramQuantity,
		UnitQuantity:  unitQuantity,
		FoodNutrients: food.FoodNutrients,
		Substitutes:   []models.DietSubstitute{},
	}
}

func NewSubstituteFromFood(food models.FoodItem, gramQuantity float64, unitQuantity float64) models.DietSubstitute {
	return models.DietSubstitute{
		ID:            uuid.NewString(),
		FoodID:        food.ID,
		Name:          food.Name,
		GramQuantity:  gramQuantity,
		UnitQuantity:  unitQuantity,
		FoodNutrients: food.FoodNutrients,
	}
}

func AddMeal(plan *models.DietPlan, meal models.DietMeal) {
	plan.Meals = append(plan.Meals, meal)
	SortMealsByTime(plan.Meals)
}

// RemoveMeal drops the meal and, with it, every item and substitute it
// owns. Reports whether the meal existed.
func RemoveMeal(plan *models.DietPlan, mealID string) bool {
	for index := range plan.Meals {
		if plan.Meals[index].ID == mealID {
			plan.Meals = append(plan.Meals[:index], plan.Meals[index+1:]...)
			return true
		}
	}
	return false
}

func FindMeal(plan *models.DietPlan, mealID string) *models.DietMeal {
	for index := range plan.Meals {
		if plan.Meals[index].ID == mealID {
			return &plan.Meals[index]
		}
	}
	return nil
}

func AddItem(plan *models.DietPlan, mealID string, item models.DietItem) bool {
	meal := FindMeal(plan, mealID)
	if meal == nil {
		return false
	}
	meal.Items = append(meal.Items, item)
	return true
}

// AddSubstitute attaches an alternative to the targeted item, wherever it
// lives in the plan.
func AddSubstitute(plan *models.DietPlan, targetItemID string, substitute models.DietSubstitute) bool {
	item := findItem(plan, targetItemID)
	if item == nil {
		return false
	}
	item.Substitutes = append(item.Substitutes, substitute)
	return true
}

// ItemUpdate carries optional field changes; nil fields are left untouched.
type ItemUpdate struct {
	Name         *string  `json:"name"`
	GramQuantity *float64 `json:"gram_quantity"`
	UnitQuantity *float64 `json:"unit_quantity"`
}

func UpdateItem(plan *models.DietPlan, itemID string, update ItemUpdate) bool {
	item := findItem(plan, itemID)
	if item == nil {
		return false
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.GramQuantity != nil {
		item.GramQuantity = *update.GramQuantity
	}
	if update.UnitQuantity != nil {
		item.UnitQuantity = *update.UnitQuantity
	}
	return true
}

func UpdateSubstitute(plan *models.DietPlan, substituteID string, update ItemUpdate) bool {
	substitute := findSubstitute(plan, substituteID)
	if substitute == nil {
		return false
	}
	if update.Name != nil {
		substitute.Name = *update.Name
	}
	if update.GramQuantity != nil {
		substitute.GramQuantity = *update.GramQuantity
	}
	if update.UnitQuantity != nil {
		substitute.UnitQuantity = *update.UnitQuantity
	}
	return true
}

// RemoveItem removes a principal item and its substitutes from whichever
// meal owns it.
func RemoveItem(plan *models.DietPlan, itemID string) bool {
	for mealIndex := range plan.Meals {
		items := plan.Meals[mealIndex].Items
		for itemIndex := range items {
			if items[itemIndex].ID == itemID {
				plan.Meals[mealIndex].Items = append(items[:itemIndex], items[itemIndex+1:]...)
				return true
			}
		}
	}
	return false
}

func RemoveSubstitute(plan *models.DietPlan, itemID string, substituteID string) bool {
	item := findItem(plan, itemID)
	if item == nil {
		return false
	}
	for index := range item.Substitutes {
		if item.Substitutes[index].ID == substituteID {
			item.Substitutes = append(item.Substitutes[:index], item.Substitutes[index+1:]...)
			return true
		}
	}
	return false
}

func findItem(plan *models.DietPlan, itemID string) *models.DietItem {
	for mealIndex := range plan.Meals {
		items := plan.Meals[mealIndex].Items
		for itemIndex := range items {
			if items[itemIndex].ID == itemID {
				return &items[itemIndex]
			}
		}
	}
	return nil
}

func findSubstitute(plan *models.DietPlan, substituteID string) *models.DietSubstitute {
	for mealIndex := range plan.Meals {
		items := plan.Meals[mealIndex].Items
		for itemIndex := range items {
			substitutes := items[itemIndex].Substitutes
			for subIndex := range substitutes {
				if substitutes[subIndex].ID == substituteID {
					return &substitutes[subIndex]
				}
			}
		}
	}
	return nil
}
