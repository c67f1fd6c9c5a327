package db

import (
	"github.com/nutriclin/nutriclin/internal/models"
	"gorm.io/gorm"
)

type EnergyRepository struct {
	database *gorm.DB
}

func NewEnergyRepository(database *gorm.DB) *EnergyRepository {
	return &EnergyRepository{database: database}
}

func (repo *EnergyRepository) ListByPatient(patientID uint) ([]models.EnergyCalculation, error) {
	calculations := make([]models.EnergyCalculation, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at ASC, id ASC").
		Find(&calculations).Error; err != nil {
		return nil, err
	}
	return calculations, nil
}

func (repo *EnergyRepository) FindByID(calculationID uint) (models.EnergyCalculation, error) {
	var calculation models.EnergyCalculation
	if err := repo.database.First(&calculation, calculationID).Error; err != nil {
		return models.EnergyCalculation{}, err
	}
	return calculation, nil
}

func (repo *EnergyRepository) Create(calculation *models.EnergyCalculation) error {
	return repo.database.Create(calculation).Error
}

func (repo *EnergyRepository) Save(calculation *models.EnergyCalculation) error {
	return repo.database.Save(calculation).Error
}

func (repo *EnergyRepository) Delete(calculationID uint) error {
	return repo.database.Delete(&models.EnergyCalculation{}, calculationID).Error
}
