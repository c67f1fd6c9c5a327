package services

import (
	"math"

	"github.com/nutriclin/nutriclin/internal/models"
)

const (
	BMIClassUnderweight = "Underweight"
	BMIClassNormal      = "Normal"
	BMIClassOverweight  = "Overweight"
	BMIClassObesity     = "Obesity"

	WaistHipRiskHigh = "High risk"
	WaistHipRiskLow  = "Low risk"
)

// Indicators is the full set of values derived from one measurement.
// Zero means the underlying inputs were not measured; classification
// strings are empty in that case.
type Indicators struct {
	BMI                float64 `json:"bmi"`
	BMIClass           string  `json:"bmi_class"`
	IdealWeightMinKg   float64 `json:"ideal_weight_min_kg"`
	IdealWeightMaxKg   float64 `json:"ideal_weight_max_kg"`
	WaistHipRatio      float64 `json:"waist_hip_ratio"`
	WaistHipRisk       string  `json:"waist_hip_risk"`
	CorrectedArmMuscle float64 `json:"corrected_arm_muscle_cm"`
	SkinfoldSum3       float64 `json:"skinfold_sum3_mm"`
	BodyDensity        float64 `json:"body_density"`
	BodyFatPercent     float64 `json:"body_fat_percent"`
	FatMassKg          float64 `json:"fat_mass_kg"`
	BoneMassKg         float64 `json:"bone_mass_kg"`
	ResidualMassKg     float64 `json:"residual_mass_kg"`
	MuscleMassKg       float64 `json:"muscle_mass_kg"`
	FatFreeMassKg      float64 `json:"fat_free_mass_kg"`
}

// ComputeIndicators derives every indicator from the raw measurement and the
// patient's age in years. Pure; unmeasured (zero) inputs degrade to zero
// results instead of failing.
func ComputeIndicators(measurement models.Measurement, ageYears int) Indicators {
	indicators := Indicators{}

	weight := measurement.WeightKg
	heightM := measurement.HeightCm / 100

	if weight > 0 && heightM > 0 {
		indicators.BMI = BMI(weight, measurement.HeightCm)
		indicators.BMIClass = ClassifyBMI(indicators.BMI)
	}
	if heightM > 0 {
		indicators.IdealWeightMinKg = 18.5 * heightM * heightM
		indicators.IdealWeightMaxKg = 24.9 * heightM * heightM
	}

	if measurement.WaistCirc > 0 && measurement.HipCirc > 0 {
		indicators.WaistHipRatio = measurement.WaistCirc / measurement.HipCirc
		indicators.WaistHipRisk = ClassifyWaistHipRisk(indicators.WaistHipRatio)
	}

	if measurement.RelaxedArmCirc > 0 {
		indicators.CorrectedArmMuscle = measurement.RelaxedArmCirc - math.Pi*(measurement.TricepsFold/10)
	}

	indicators.SkinfoldSum3 = measurement.TricepsFold + measurement.AbdominalFold + measurement.ThighFold
	if indicators.SkinfoldSum3 > 0 {
		indicators.BodyDensity = BodyDensity(indicators.SkinfoldSum3, ageYears)
	}
	if indicators.BodyDensity > 0 {
		indicators.BodyFatPercent = BodyFatPercent(indicators.BodyDensity)
	}

	if weight > 0 {
		indicators.FatMassKg = weight * indicators.BodyFatPercent / 100
		indicators.ResidualMassKg = weight * 0.24
		indicators.FatFreeMassKg = weight - indicators.FatMassKg
	}

	if heightM > 0 && measurement.WristDiameter > 0 && measurement.FemurDiameter > 0 {
		indicators.BoneMassKg = heightM * heightM *
			(measurement.WristDiameter / 100) * (measurement.FemurDiameter / 100) * 400 * 0.06
	}

	if weight > 0 {
		indicators.MuscleMassKg = weight - (indicators.FatMassKg + indicators.BoneMassKg + indicators.ResidualMassKg)
	}

	return indicators
}

// BMI is weight in kg over squared height in metres.
func BMI(weightKg float64, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return BMIClassUnderweight
	case bmi < 25:
		return BMIClassNormal
	case bmi < 30:
		return BMIClassOverweight
	default:
		return BMIClassObesity
	}
}

func ClassifyWaistHipRisk(ratio float64) string {
	if ratio <= 0 {
		return ""
	}
	if ratio > 0.90 {
		return WaistHipRiskHigh
	}
	return WaistHipRiskLow
}

// BodyDensity applies the generalized Jackson-Pollock 3-skinfold equation
// to the triceps+abdominal+thigh sum (mm) and the age in years.
func BodyDensity(skinfoldSumMm float64, ageYears int) float64 {
	sum := skinfoldSumMm
	return 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574*float64(ageYears)
}

// BodyFatPercent converts a body density into a fat percentage (Siri form).
// Densities at or below zero are not convertible and yield 0.
func BodyFatPercent(density float64) float64 {
	if density <= 0 {
		return 0
	}
	return (4.57/density - 4.142) * 100
}
