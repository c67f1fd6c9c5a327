package db

import (
	"strings"

	"github.com/nutriclin/nutriclin/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) List() ([]models.FoodItem, error) {
	foods := make([]models.FoodItem, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Search matches the query case-insensitively against food names and
// groups. No match yields an empty slice, never nil.
func (repo *FoodRepository) Search(query string) ([]models.FoodItem, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return repo.List()
	}

	foods := make([]models.FoodItem, 0)
	pattern := "%" + strings.ToLower(trimmed) + "%"
	if err := repo.database.
		Where("lower(name) LIKE ? OR lower(food_group) LIKE ?", pattern, pattern).
		Order("name ASC, id ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *FoodRepository) FindByID(foodID uint) (models.FoodItem, error) {
	var food models.FoodItem
	if err := repo.database.First(&food, foodID).Error; err != nil {
		return models.FoodItem{}, err
	}
	return food, nil
}

func (repo *FoodRepository) Create(food *models.FoodItem) error {
	return repo.database.Create(food).Error
}

func (repo *FoodRepository) Save(food *models.FoodItem) error {
	return repo.database.Save(food).Error
}

func (repo *FoodRepository) Delete(foodID uint) error {
	return repo.database.Delete(&models.FoodItem{}, foodID).Error
}
