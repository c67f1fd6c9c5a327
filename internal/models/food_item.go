package models

import "time"

// FoodNutrients holds reference nutrient values per 100 g of a food.
type FoodNutrients struct {
	KcalPer100g    float64 `gorm:"column:kcal_per_100g;not null;default:0" json:"kcal_per_100g"`
	ProteinPer100g float64 `gorm:"column:protein_per_100g;not null;default:0" json:"protein_g_per_100g"`
	CarbPer100g    float64 `gorm:"column:carb_per_100g;not null;default:0" json:"carbohydrate_g_per_100g"`
	LipidPer100g   float64 `gorm:"column:lipid_per_100g;not null;default:0" json:"lipid_g_per_100g"`
	FiberPer100g   float64 `gorm:"column:fiber_per_100g;not null;default:0" json:"fiber_g_per_100g"`
}

type FoodItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;index" json:"name"`
	FoodGroup string `gorm:"not null;default:''" json:"food_group"`
	FoodNutrients `gorm:"embedded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
