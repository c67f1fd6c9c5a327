package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nutriclin/nutriclin/internal/models"
)

var ErrMeasurementPatientMismatch = errors.New("measurement belongs to another patient")

type MeasurementRepository interface {
	ListByPatient(patientID uint) ([]models.Measurement, error)
	FindByID(measurementID uint) (models.Measurement, error)
	Create(measurement *models.Measurement) error
	Save(measurement *models.Measurement) error
	Delete(measurementID uint) error
}

type MeasurementPatientReader interface {
	FindByID(patientID uint) (models.Patient, error)
}

type MeasurementService struct {
	measurements MeasurementRepository
	patients     MeasurementPatientReader
}

func NewMeasurementService(measurements MeasurementRepository, patients MeasurementPatientReader) *MeasurementService {
	return &MeasurementService{measurements: measurements, patients: patients}
}

// MeasurementView returns the raw record together with the indicators
// derived from it. Device (bioimpedance) fields travel inside the raw
// record, untouched.
type MeasurementView struct {
	models.Measurement
	AgeYears   int        `json:"age_years"`
	Indicators Indicators `json:"indicators"`
}

func (service *MeasurementService) buildView(measurement models.Measurement, patient models.Patient) MeasurementView {
	ageYears := patient.AgeAt(measurement.TakenAt)
	return MeasurementView{
		Measurement: measurement,
		AgeYears:    ageYears,
		Indicators:  ComputeIndicators(measurement, ageYears),
	}
}

func (service *MeasurementService) ListViews(patientID uint) ([]MeasurementView, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return nil, err
	}

	measurements, err := service.measurements.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}

	views := make([]MeasurementView, 0, len(measurements))
	for _, measurement := range measurements {
		views = append(views, service.buildView(measurement, patient))
	}
	return views, nil
}

func (service *MeasurementService) GetView(measurementID uint) (MeasurementView, error) {
	measurement, err := service.measurements.FindByID(measurementID)
	if err != nil {
		return MeasurementView{}, err
	}
	patient, err := service.patients.FindByID(measurement.PatientID)
	if err != nil {
		return MeasurementView{}, err
	}
	return service.buildView(measurement, patient), nil
}

func normalizeMeasurement(measurement *models.Measurement, now time.Time) {
	if measurement.TakenAt.IsZero() {
		measurement.TakenAt = now
	}
	if !strings.EqualFold(measurement.Kind, models.MeasurementKindChild) {
		measurement.Kind = models.MeasurementKindAdult
	} else {
		measurement.Kind = models.MeasurementKindChild
	}
}

func (service *MeasurementService) Create(patientID uint, measurement models.Measurement, now time.Time) (MeasurementView, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return MeasurementView{}, err
	}

	measurement.ID = 0
	measurement.PatientID = patientID
	normalizeMeasurement(&measurement, now)

	if err := service.measurements.Create(&measurement); err != nil {
		return MeasurementView{}, err
	}
	return service.buildView(measurement, patient), nil
}

// Update replaces the raw fields of an existing record. The patient binding
// is immutable; a payload naming another patient is rejected.
func (service *MeasurementService) Update(measurementID uint, updated models.Measurement, now time.Time) (MeasurementView, error) {
	existing, err := service.measurements.FindByID(measurementID)
	if err != nil {
		return MeasurementView{}, err
	}
	if updated.PatientID != 0 && updated.PatientID != existing.PatientID {
		return MeasurementView{}, ErrMeasurementPatientMismatch
	}

	patient, err := service.patients.FindByID(existing.PatientID)
	if err != nil {
		return MeasurementView{}, err
	}

	updated.ID = existing.ID
	updated.PatientID = existing.PatientID
	updated.CreatedAt = existing.CreatedAt
	normalizeMeasurement(&updated, now)

	if err := service.measurements.Save(&updated); err != nil {
		return MeasurementView{}, err
	}
	return service.buildView(updated, patient), nil
}

func (service *MeasurementService) Delete(measurementID uint) error {
	if _, err := service.measurements.FindByID(measurementID); err != nil {
		return err
	}
	return service.measurements.Delete(measurementID)
}
