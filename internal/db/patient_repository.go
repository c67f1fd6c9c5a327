package db

import (
	"strings"

	"github.com/nutriclin/nutriclin/internal/models"
	"gorm.io/gorm"
)

type PatientRepository struct {
	database *gorm.DB
}

func NewPatientRepository(database *gorm.DB) *PatientRepository {
	return &PatientRepository{database: database}
}

func (repo *PatientRepository) List() ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := repo.database.Order("full_name ASC, id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Search matches the query case-insensitively against patient names. An
// empty query lists everyone.
func (repo *PatientRepository) Search(query string) ([]models.Patient, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return repo.List()
	}

	patients := make([]models.Patient, 0)
	pattern := "%" + strings.ToLower(trimmed) + "%"
	if err := repo.database.
		Where("lower(full_name) LIKE ?", pattern).
		Order("full_name ASC, id ASC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (repo *PatientRepository) FindByID(patientID uint) (models.Patient, error) {
	var patient models.Patient
	if err := repo.database.First(&patient, patientID).Error; err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (repo *PatientRepository) Create(patient *models.Patient) error {
	return repo.database.Create(patient).Error
}

func (repo *PatientRepository) Save(patient *models.Patient) error {
	return repo.database.Save(patient).Error
}

// DeleteWithRelatedData removes the patient together with every record
// captured for them.
func (repo *PatientRepository) DeleteWithRelatedData(patientID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.Measurement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.EnergyCalculation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.DietPlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, patientID).Error
	})
}
