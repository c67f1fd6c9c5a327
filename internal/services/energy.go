package services

import (
	"strings"

	"github.com/nutriclin/nutriclin/internal/models"
)

const (
	FormulaHarrisBenedict    = "Harris-Benedict (1984)"
	FormulaMifflinObesity    = "Mifflin-St Jeor (Obesity)"
	FormulaMifflinOverweight = "Mifflin-St Jeor (Overweight)"
	FormulaCunningham        = "Cunningham (1980)"
	FormulaKatchMcArdle      = "Katch-McArdle (1996)"
	FormulaFAOWHO            = "FAO/WHO (2004)"
)

// Extra daily kcal applied when the pregnancy flag is set.
const pregnancyAdditionKcal = 300

type ActivityFactorPreset struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ActivityFactorPresets lists the advisory multipliers offered in the UI.
// Any positive factor is accepted and applied verbatim; the calculator is
// not limited to this list.
func ActivityFactorPresets() []ActivityFactorPreset {
	return []ActivityFactorPreset{
		{Value: 1.000, Label: "not used"},
		{Value: 1.200, Label: "sedentary"},
		{Value: 1.375, Label: "light"},
		{Value: 1.550, Label: "moderate"},
		{Value: 1.725, Label: "intense"},
		{Value: 1.900, Label: "very intense"},
	}
}

// EnergyFormulas lists the supported BMR formula names.
func EnergyFormulas() []string {
	return []string{
		FormulaHarrisBenedict,
		FormulaMifflinObesity,
		FormulaMifflinOverweight,
		FormulaCunningham,
		FormulaKatchMcArdle,
		FormulaFAOWHO,
	}
}

type EnergyResult struct {
	BMR      float64 `json:"bmr_kcal"`
	BMRPerKg float64 `json:"bmr_kcal_per_kg"`
	TEE      float64 `json:"tee_kcal"`
	TEEPerKg float64 `json:"tee_kcal_per_kg"`
}

// ComputeEnergy derives BMR and TEE from stored inputs. Pure; called on
// every read so the outputs can never drift from edited inputs.
func ComputeEnergy(calc models.EnergyCalculation) EnergyResult {
	result := EnergyResult{}
	result.BMR = BasalMetabolicRate(calc)

	factor := calc.ActivityFactor
	if factor <= 0 {
		factor = 1
	}
	additional := 0.0
	if calc.Pregnant {
		additional = pregnancyAdditionKcal
	}
	result.TEE = result.BMR*factor + calc.MetabolicAdjKcal + calc.OtherAdjKcal + additional

	if calc.WeightKg > 0 {
		result.BMRPerKg = result.BMR / calc.WeightKg
		result.TEEPerKg = result.TEE / calc.WeightKg
	}
	return result
}

// BasalMetabolicRate dispatches on the formula name. Unrecognized names
// fall back to Harris-Benedict, mirroring the historical behavior of the
// clinic forms (a silent default, kept deliberately).
func BasalMetabolicRate(calc models.EnergyCalculation) float64 {
	weight := calc.WeightKg
	height := calc.HeightCm
	age := float64(calc.AgeYears)
	male := strings.EqualFold(calc.Sex, models.SexMale)

	switch calc.Formula {
	case FormulaMifflinObesity, FormulaMifflinOverweight:
		if male {
			return 10*weight + 6.25*height - 5*age + 5
		}
		return 10*weight + 6.25*height - 5*age - 161
	case FormulaCunningham:
		return 500 + 22*leanBodyMass(calc)
	case FormulaKatchMcArdle:
		return 370 + 21.6*leanBodyMass(calc)
	case FormulaFAOWHO:
		return faoWHORate(male, weight, calc.AgeYears)
	default:
		if male {
			return 88.36 + 13.4*weight + 4.8*height - 5.7*age
		}
		return 447.6 + 9.2*weight + 3.1*height - 4.3*age
	}
}

// leanBodyMass prefers the user-supplied fat-free-mass override and falls
// back to an 80% of body weight estimate.
func leanBodyMass(calc models.EnergyCalculation) float64 {
	if calc.LeanMassKg > 0 {
		return calc.LeanMassKg
	}
	return calc.WeightKg * 0.8
}

func faoWHORate(male bool, weight float64, age int) float64 {
	if male {
		switch {
		case age < 30:
			return 15.057*weight + 679
		case age < 60:
			return 11.6*weight + 879
		default:
			return 13.5*weight + 487
		}
	}
	switch {
	case age < 30:
		return 14.7*weight + 496
	case age < 60:
		return 8.7*weight + 829
	default:
		return 10.5*weight + 596
	}
}
