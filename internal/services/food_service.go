package services

import (
	"errors"
	"strings"

	"github.com/nutriclin/nutriclin/internal/models"
)

var ErrFoodNameRequired = errors.New("food name required")

type FoodRepository interface {
	List() ([]models.FoodItem, error)
	Search(query string) ([]models.FoodItem, error)
	FindByID(foodID uint) (models.FoodItem, error)
	Create(food *models.FoodItem) error
	Save(food *models.FoodItem) error
	Delete(foodID uint) error
}

type FoodService struct {
	foods FoodRepository
}

func NewFoodService(foods FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

// Search returns catalog entries matching the query by name or group. No
// match is an empty result, not an error.
func (service *FoodService) Search(query string) ([]models.FoodItem, error) {
	return service.foods.Search(query)
}

func (service *FoodService) Get(foodID uint) (models.FoodItem, error) {
	return service.foods.FindByID(foodID)
}

func normalizeFood(food *models.FoodItem) error {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return ErrFoodNameRequired
	}
	food.FoodGroup = strings.TrimSpace(food.FoodGroup)
	return nil
}

func (service *FoodService) Create(food *models.FoodItem) error {
	if err := normalizeFood(food); err != nil {
		return err
	}
	return service.foods.Create(food)
}

// Update rewrites a catalog entry. Plan items keep the nutrient snapshot
// taken when the food was attached; editing the catalog never rewrites
// existing plans.
func (service *FoodService) Update(foodID uint, updated models.FoodItem) (models.FoodItem, error) {
	existing, err := service.foods.FindByID(foodID)
	if err != nil {
		return models.FoodItem{}, err
	}
	if err := normalizeFood(&updated); err != nil {
		return models.FoodItem{}, err
	}

	existing.Name = updated.Name
	existing.FoodGroup = updated.FoodGroup
	existing.FoodNutrients = updated.FoodNutrients

	if err := service.foods.Save(&existing); err != nil {
		return models.FoodItem{}, err
	}
	return existing, nil
}

func (service *FoodService) Delete(foodID uint) error {
	if _, err := service.foods.FindByID(foodID); err != nil {
		return err
	}
	return service.foods.Delete(foodID)
}
