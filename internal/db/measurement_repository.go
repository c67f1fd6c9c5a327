package db

import (
	"github.com/nutriclin/nutriclin/internal/models"
	"gorm.io/gorm"
)

type MeasurementRepository struct {
	database *gorm.DB
}

func NewMeasurementRepository(database *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{database: database}
}

func (repo *MeasurementRepository) ListByPatient(patientID uint) ([]models.Measurement, error) {
	measurements := make([]models.Measurement, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("taken_at ASC, id ASC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (repo *MeasurementRepository) FindByID(measurementID uint) (models.Measurement, error) {
	var measurement models.Measurement
	if err := repo.database.First(&measurement, measurementID).Error; err != nil {
		return models.Measurement{}, err
	}
	return measurement, nil
}

func (repo *MeasurementRepository) Create(measurement *models.Measurement) error {
	return repo.database.Create(measurement).Error
}

func (repo *MeasurementRepository) Save(measurement *models.Measurement) error {
	return repo.database.Save(measurement).Error
}

func (repo *MeasurementRepository) Delete(measurementID uint) error {
	return repo.database.Delete(&models.Measurement{}, measurementID).Error
}
