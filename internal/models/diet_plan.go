package models

import "time"

const (
	MealKindMeal  = "meal"
	MealKindHabit = "habit"
)

// DietPlan is persisted as one document: the whole meal tree lives in a
// single JSON column so a save replaces the plan atomically.
type DietPlan struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`
	Title     string     `gorm:"not null;default:''" json:"title"`
	Meals     []DietMeal `gorm:"serializer:json" json:"meals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type DietMeal struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Time  string     `json:"time"`
	Kind  string     `json:"kind"`
	Notes string     `json:"notes"`
	Items []DietItem `json:"items"`
}

// DietItem references a catalog food by id and carries a per-100g nutrient
// snapshot taken when the food was attached, so totals stay computable
// without a catalog round trip.
type DietItem struct {
	ID            string           `json:"id"`
	FoodID        uint             `json:"food_id"`
	Name          string           `json:"name"`
	GramQuantity  float64          `json:"gram_quantity"`
	UnitQuantity  float64          `json:"unit_quantity"`
	FoodNutrients                  // snapshot, per 100 g
	Substitutes   []DietSubstitute `json:"substitutes"`
}

// DietSubstitute is an "OR" alternative for one item. Substitutes nest one
// level only and never contribute to meal or day totals.
type DietSubstitute struct {
	ID            string  `json:"id"`
	FoodID        uint    `json:"food_id"`
	Name          string  `json:"name"`
	GramQuantity  float64 `json:"gram_quantity"`
	UnitQuantity  float64 `json:"unit_quantity"`
	FoodNutrients         // snapshot, per 100 g
}
