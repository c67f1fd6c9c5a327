package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nutriclin/nutriclin/internal/models"
)

var ErrEnergyPatientMismatch = errors.New("energy calculation belongs to another patient")

type EnergyRepository interface {
	ListByPatient(patientID uint) ([]models.EnergyCalculation, error)
	FindByID(calculationID uint) (models.EnergyCalculation, error)
	Create(calculation *models.EnergyCalculation) error
	Save(calculation *models.EnergyCalculation) error
	Delete(calculationID uint) error
}

type EnergyPatientReader interface {
	FindByID(patientID uint) (models.Patient, error)
}

type EnergyService struct {
	calculations EnergyRepository
	patients     EnergyPatientReader
}

func NewEnergyService(calculations EnergyRepository, patients EnergyPatientReader) *EnergyService {
	return &EnergyService{calculations: calculations, patients: patients}
}

// EnergyView returns the stored inputs together with outputs recomputed on
// this read.
type EnergyView struct {
	models.EnergyCalculation
	Result EnergyResult `json:"result"`
}

func buildEnergyView(calculation models.EnergyCalculation) EnergyView {
	return EnergyView{EnergyCalculation: calculation, Result: ComputeEnergy(calculation)}
}

func (service *EnergyService) ListViews(patientID uint) ([]EnergyView, error) {
	if _, err := service.patients.FindByID(patientID); err != nil {
		return nil, err
	}

	calculations, err := service.calculations.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}

	views := make([]EnergyView, 0, len(calculations))
	for _, calculation := range calculations {
		views = append(views, buildEnergyView(calculation))
	}
	return views, nil
}

func (service *EnergyService) GetView(calculationID uint) (EnergyView, error) {
	calculation, err := service.calculations.FindByID(calculationID)
	if err != nil {
		return EnergyView{}, err
	}
	return buildEnergyView(calculation), nil
}

// normalizeCalculation fills unset identity inputs from the patient record
// so a bare payload still computes something sensible.
func normalizeCalculation(calculation *models.EnergyCalculation, patient models.Patient, now time.Time) {
	if strings.TrimSpace(calculation.Sex) == "" {
		calculation.Sex = patient.Sex
	}
	if !strings.EqualFold(calculation.Sex, models.SexMale) {
		calculation.Sex = models.SexFemale
	} else {
		calculation.Sex = models.SexMale
	}
	if calculation.AgeYears <= 0 {
		calculation.AgeYears = patient.AgeAt(now)
	}
	if calculation.HeightCm <= 0 {
		calculation.HeightCm = patient.HeightCm
	}
	calculation.Label = strings.TrimSpace(calculation.Label)
	calculation.Formula = strings.TrimSpace(calculation.Formula)
}

func (service *EnergyService) Create(patientID uint, calculation models.EnergyCalculation, now time.Time) (EnergyView, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return EnergyView{}, err
	}

	calculation.ID = 0
	calculation.PatientID = patientID
	normalizeCalculation(&calculation, patient, now)

	if err := service.calculations.Create(&calculation); err != nil {
		return EnergyView{}, err
	}
	return buildEnergyView(calculation), nil
}

func (service *EnergyService) Update(calculationID uint, updated models.EnergyCalculation, now time.Time) (EnergyView, error) {
	existing, err := service.calculations.FindByID(calculationID)
	if err != nil {
		return EnergyView{}, err
	}
	if updated.PatientID != 0 && updated.PatientID != existing.PatientID {
		return EnergyView{}, ErrEnergyPatientMismatch
	}

	patient, err := service.patients.FindByID(existing.PatientID)
	if err != nil {
		return EnergyView{}, err
	}

	updated.ID = existing.ID
	updated.PatientID = existing.PatientID
	updated.CreatedAt = existing.CreatedAt
	normalizeCalculation(&updated, patient, now)

	if err := service.calculations.Save(&updated); err != nil {
		return EnergyView{}, err
	}
	return buildEnergyView(updated), nil
}

func (service *EnergyService) Delete(calculationID uint) error {
	if _, err := service.calculations.FindByID(calculationID); err != nil {
		return err
	}
	return service.calculations.Delete(calculationID)
}
