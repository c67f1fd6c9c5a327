package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nutriclin/nutriclin/internal/models"
)

var ErrPatientNameRequired = errors.New("patient name required")

type PatientRepository interface {
	List() ([]models.Patient, error)
	Search(query string) ([]models.Patient, error)
	FindByID(patientID uint) (models.Patient, error)
	Create(patient *models.Patient) error
	Save(patient *models.Patient) error
	DeleteWithRelatedData(patientID uint) error
}

type PatientService struct {
	patients PatientRepository
}

func NewPatientService(patients PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// PatientView pairs the stored record with the derived age.
type PatientView struct {
	models.Patient
	AgeYears int `json:"age_years"`
}

func (service *PatientService) buildView(patient models.Patient, now time.Time) PatientView {
	return PatientView{Patient: patient, AgeYears: patient.AgeAt(now)}
}

func (service *PatientService) ListViews(query string, now time.Time) ([]PatientView, error) {
	patients, err := service.patients.Search(query)
	if err != nil {
		return nil, err
	}

	views := make([]PatientView, 0, len(patients))
	for _, patient := range patients {
		views = append(views, service.buildView(patient, now))
	}
	return views, nil
}

func (service *PatientService) GetView(patientID uint, now time.Time) (PatientView, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return PatientView{}, err
	}
	return service.buildView(patient, now), nil
}

func (service *PatientService) Get(patientID uint) (models.Patient, error) {
	return service.patients.FindByID(patientID)
}

func normalizePatient(patient *models.Patient) error {
	patient.FullName = strings.TrimSpace(patient.FullName)
	if patient.FullName == "" {
		return ErrPatientNameRequired
	}
	if !strings.EqualFold(patient.Sex, models.SexMale) {
		patient.Sex = models.SexFemale
	} else {
		patient.Sex = models.SexMale
	}
	patient.Email = strings.TrimSpace(patient.Email)
	patient.Phone = strings.TrimSpace(patient.Phone)
	return nil
}

func (service *PatientService) Create(patient *models.Patient) error {
	if err := normalizePatient(patient); err != nil {
		return err
	}
	return service.patients.Create(patient)
}

// Update rewrites the editable fields of an existing record, leaving id and
// timestamps to the store.
func (service *PatientService) Update(patientID uint, updated models.Patient) (models.Patient, error) {
	existing, err := service.patients.FindByID(patientID)
	if err != nil {
		return models.Patient{}, err
	}
	if err := normalizePatient(&updated); err != nil {
		return models.Patient{}, err
	}

	existing.FullName = updated.FullName
	existing.Email = updated.Email
	existing.Phone = updated.Phone
	existing.Sex = updated.Sex
	existing.BirthDate = updated.BirthDate
	existing.HeightCm = updated.HeightCm
	existing.Notes = updated.Notes

	if err := service.patients.Save(&existing); err != nil {
		return models.Patient{}, err
	}
	return existing, nil
}

// Delete removes the patient and every measurement, calculation and plan
// recorded for them.
func (service *PatientService) Delete(patientID uint) error {
	if _, err := service.patients.FindByID(patientID); err != nil {
		return err
	}
	return service.patients.DeleteWithRelatedData(patientID)
}
