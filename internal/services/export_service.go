package services

import (
	"strconv"
	"time"
)

const exportDateLayout = "2006-01-02"

// ExportCSVHeaders are the measurement-history columns of the CSV export.
// The CSV carries computed indicators, not raw skinfold readings.
var ExportCSVHeaders = []string{
	"Date",
	"Weight (kg)",
	"Height (cm)",
	"BMI",
	"BMI class",
	"Waist-hip ratio",
	"Waist-hip risk",
	"Body fat (%)",
	"Fat mass (kg)",
	"Bone mass (kg)",
	"Residual mass (kg)",
	"Muscle mass (kg)",
	"Fat-free mass (kg)",
}

type ExportService struct {
	patients     *PatientService
	measurements *MeasurementService
	energy       *EnergyService
	plans        *DietPlanService
}

func NewExportService(patients *PatientService, measurements *MeasurementService, energy *EnergyService, plans *DietPlanService) *ExportService {
	return &ExportService{
		patients:     patients,
		measurements: measurements,
		energy:       energy,
		plans:        plans,
	}
}

// ExportPlanEntry flattens one plan into its recomputed totals.
type ExportPlanEntry struct {
	PlanID    uint             `json:"plan_id"`
	Title     string           `json:"title"`
	Meals     []MealTotalsView `json:"meals"`
	DayTotals NutrientTotals   `json:"day_totals"`
}

// ExportBundle is the JSON export payload: every stored record for the
// patient with its derived outputs attached.
type ExportBundle struct {
	GeneratedAt  string            `json:"generated_at"`
	Patient      PatientView       `json:"patient"`
	Measurements []MeasurementView `json:"measurements"`
	Energy       []EnergyView      `json:"energy_calculations"`
	Plans        []ExportPlanEntry `json:"diet_plans"`
}

func (service *ExportService) BuildBundle(patientID uint, now time.Time) (ExportBundle, error) {
	patient, err := service.patients.GetView(patientID, now)
	if err != nil {
		return ExportBundle{}, err
	}

	measurements, err := service.measurements.ListViews(patientID)
	if err != nil {
		return ExportBundle{}, err
	}
	energy, err := service.energy.ListViews(patientID)
	if err != nil {
		return ExportBundle{}, err
	}
	plans, err := service.plans.ListViews(patientID)
	if err != nil {
		return ExportBundle{}, err
	}

	planEntries := make([]ExportPlanEntry, 0, len(plans))
	for _, plan := range plans {
		totals, err := service.plans.Totals(plan.ID)
		if err != nil {
			return ExportBundle{}, err
		}
		planEntries = append(planEntries, ExportPlanEntry{
			PlanID:    plan.ID,
			Title:     plan.Title,
			Meals:     totals.Meals,
			DayTotals: totals.Day,
		})
	}

	return ExportBundle{
		GeneratedAt:  now.UTC().Format(time.RFC3339),
		Patient:      patient,
		Measurements: measurements,
		Energy:       energy,
		Plans:        planEntries,
	}, nil
}

type ExportCSVRow struct {
	Date       string
	WeightKg   float64
	HeightCm   float64
	Indicators Indicators
}

// BuildCSVRows flattens the measurement history into indicator rows,
// ordered by capture date.
func (service *ExportService) BuildCSVRows(patientID uint, location *time.Location) ([]ExportCSVRow, error) {
	views, err := service.measurements.ListViews(patientID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(views))
	for _, view := range views {
		rows = append(rows, ExportCSVRow{
			Date:       view.TakenAt.In(location).Format(exportDateLayout),
			WeightKg:   view.WeightKg,
			HeightCm:   view.HeightCm,
			Indicators: view.Indicators,
		})
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		csvNumber(row.WeightKg),
		csvNumber(row.HeightCm),
		csvNumber(row.Indicators.BMI),
		row.Indicators.BMIClass,
		csvNumber(row.Indicators.WaistHipRatio),
		row.Indicators.WaistHipRisk,
		csvNumber(row.Indicators.BodyFatPercent),
		csvNumber(row.Indicators.FatMassKg),
		csvNumber(row.Indicators.BoneMassKg),
		csvNumber(row.Indicators.ResidualMassKg),
		csvNumber(row.Indicators.MuscleMassKg),
		csvNumber(row.Indicators.FatFreeMassKg),
	}
}

func csvNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
