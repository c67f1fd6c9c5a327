package db

import (
	"github.com/nutriclin/nutriclin/internal/models"
	"gorm.io/gorm"
)

type DietPlanRepository struct {
	database *gorm.DB
}

func NewDietPlanRepository(database *gorm.DB) *DietPlanRepository {
	return &DietPlanRepository{database: database}
}

func (repo *DietPlanRepository) ListByPatient(patientID uint) ([]models.DietPlan, error) {
	plans := make([]models.DietPlan, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at ASC, id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *DietPlanRepository) FindByID(planID uint) (models.DietPlan, error) {
	var plan models.DietPlan
	if err := repo.database.First(&plan, planID).Error; err != nil {
		return models.DietPlan{}, err
	}
	return plan, nil
}

func (repo *DietPlanRepository) Create(plan *models.DietPlan) error {
	return repo.database.Create(plan).Error
}

// Save writes the whole plan document, meal tree included, in one row
// update.
func (repo *DietPlanRepository) Save(plan *models.DietPlan) error {
	return repo.database.Save(plan).Error
}

func (repo *DietPlanRepository) Delete(planID uint) error {
	return repo.database.Delete(&models.DietPlan{}, planID).Error
}
