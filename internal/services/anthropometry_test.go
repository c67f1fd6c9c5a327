package services

import (
	"math"
	"testing"

	"github.com/nutriclin/nutriclin/internal/models"
)

func TestClassifyBMI_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		bmi  float64
		want string
	}{
		{name: "just under underweight cutoff", bmi: 18.499, want: BMIClassUnderweight},
		{name: "normal lower bound", bmi: 18.5, want: BMIClassNormal},
		{name: "normal upper edge", bmi: 24.999, want: BMIClassNormal},
		{name: "overweight lower bound", bmi: 25, want: BMIClassOverweight},
		{name: "overweight upper edge", bmi: 29.999, want: BMIClassOverweight},
		{name: "obesity lower bound", bmi: 30, want: BMIClassObesity},
		{name: "not computed", bmi: 0, want: ""},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := ClassifyBMI(testCase.bmi); got != testCase.want {
				t.Fatalf("expected class %q for bmi %.3f, got %q", testCase.want, testCase.bmi, got)
			}
		})
	}
}

func TestBMI_MatchesDefinition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		weight float64
		height float64
	}{
		{weight: 80, height: 180},
		{weight: 52.4, height: 161.5},
		{weight: 103, height: 172},
	}

	for _, testCase := range cases {
		heightM := testCase.height / 100
		want := testCase.weight / (heightM * heightM)
		if got := BMI(testCase.weight, testCase.height); math.Abs(got-want) > 1e-9 {
			t.Fatalf("expected BMI %.6f for %.1fkg/%.1fcm, got %.6f", want, testCase.weight, testCase.height, got)
		}
	}
}

func TestBodyDensity_DecreasesWithAge(t *testing.T) {
	t.Parallel()

	const skinfoldSum = 45.0
	previous := BodyDensity(skinfoldSum, 18)
	for age := 19; age <= 80; age++ {
		current := BodyDensity(skinfoldSum, age)
		if current >= previous {
			t.Fatalf("expected density to strictly decrease with age, got %.6f at age %d after %.6f", current, age, previous)
		}
		previous = current
	}
}

func TestBodyFatPercent_NonPositiveDensity(t *testing.T) {
	t.Parallel()

	if got := BodyFatPercent(0); got != 0 {
		t.Fatalf("expected 0 fat percent for zero density, got %.4f", got)
	}
	if got := BodyFatPercent(-0.2); got != 0 {
		t.Fatalf("expected 0 fat percent for negative density, got %.4f", got)
	}
}

func TestComputeIndicators_ReferenceScenario(t *testing.T) {
	t.Parallel()

	measurement := models.Measurement{
		WeightKg:  80,
		HeightCm:  180,
		WaistCirc: 95,
		HipCirc:   100,
	}

	indicators := ComputeIndicators(measurement, 30)

	if math.Abs(indicators.WaistHipRatio-0.95) > 1e-9 {
		t.Fatalf("expected WHR 0.95, got %.4f", indicators.WaistHipRatio)
	}
	if indicators.WaistHipRisk != WaistHipRiskHigh {
		t.Fatalf("expected %q, got %q", WaistHipRiskHigh, indicators.WaistHipRisk)
	}
	if math.Abs(indicators.BMI-24.69) > 0.005 {
		t.Fatalf("expected BMI 24.69, got %.4f", indicators.BMI)
	}
	if indicators.BMIClass != BMIClassNormal {
		t.Fatalf("expected %q, got %q", BMIClassNormal, indicators.BMIClass)
	}
}

func TestComputeIndicators_ZeroInputsDegrade(t *testing.T) {
	t.Parallel()

	indicators := ComputeIndicators(models.Measurement{}, 42)

	if indicators.BMI != 0 || indicators.BMIClass != "" {
		t.Fatalf("expected empty BMI result for empty measurement, got %.4f %q", indicators.BMI, indicators.BMIClass)
	}
	if indicators.WaistHipRatio != 0 || indicators.WaistHipRisk != "" {
		t.Fatalf("expected empty WHR result, got %.4f %q", indicators.WaistHipRatio, indicators.WaistHipRisk)
	}
	if indicators.BodyDensity != 0 || indicators.BodyFatPercent != 0 {
		t.Fatalf("expected zero density and fat percent, got %.4f %.4f", indicators.BodyDensity, indicators.BodyFatPercent)
	}
	if indicators.BoneMassKg != 0 || indicators.MuscleMassKg != 0 {
		t.Fatalf("expected zero masses, got bone %.4f muscle %.4f", indicators.BoneMassKg, indicators.MuscleMassKg)
	}
}

func TestComputeIndicators_IdealWeightRange(t *testing.T) {
	t.Parallel()

	indicators := ComputeIndicators(models.Measurement{WeightKg: 70, HeightCm: 170}, 25)

	wantMin := 18.5 * 1.7 * 1.7
	wantMax := 24.9 * 1.7 * 1.7
	if math.Abs(indicators.IdealWeightMinKg-wantMin) > 1e-9 {
		t.Fatalf("expected ideal minimum %.4f, got %.4f", wantMin, indicators.IdealWeightMinKg)
	}
	if math.Abs(indicators.IdealWeightMaxKg-wantMax) > 1e-9 {
		t.Fatalf("expected ideal maximum %.4f, got %.4f", wantMax, indicators.IdealWeightMaxKg)
	}
}

func TestComputeIndicators_CorrectedArmMuscle(t *testing.T) {
	t.Parallel()

	measurement := models.Measurement{RelaxedArmCirc: 30, TricepsFold: 12}
	indicators := ComputeIndicators(measurement, 30)

	want := 30 - math.Pi*1.2
	if math.Abs(indicators.CorrectedArmMuscle-want) > 1e-9 {
		t.Fatalf("expected corrected arm muscle %.4f, got %.4f", want, indicators.CorrectedArmMuscle)
	}
}

func TestComputeIndicators_BoneMassRequiresAllDiameters(t *testing.T) {
	t.Parallel()

	withAll := models.Measurement{WeightKg: 70, HeightCm: 170, WristDiameter: 5.5, FemurDiameter: 9}
	indicators := ComputeIndicators(withAll, 30)

	want := 1.7 * 1.7 * (5.5 / 100) * (9.0 / 100) * 400 * 0.06
	if math.Abs(indicators.BoneMassKg-want) > 1e-9 {
		t.Fatalf("expected bone mass %.4f, got %.4f", want, indicators.BoneMassKg)
	}

	missingFemur := withAll
	missingFemur.FemurDiameter = 0
	if got := ComputeIndicators(missingFemur, 30).BoneMassKg; got != 0 {
		t.Fatalf("expected zero bone mass without femur diameter, got %.4f", got)
	}
}

func TestComputeIndicators_MassDecomposition(t *testing.T) {
	t.Parallel()

	measurement := models.Measurement{
		WeightKg:      72,
		HeightCm:      175,
		TricepsFold:   11,
		AbdominalFold: 22,
		ThighFold:     16,
		WristDiameter: 5.4,
		FemurDiameter: 9.2,
	}
	indicators := ComputeIndicators(measurement, 34)

	if got := indicators.SkinfoldSum3; got != 49 {
		t.Fatalf("expected skinfold sum 49, got %.2f", got)
	}
	if indicators.BodyFatPercent <= 0 {
		t.Fatalf("expected positive fat percent, got %.4f", indicators.BodyFatPercent)
	}

	wantFatMass := 72 * indicators.BodyFatPercent / 100
	if math.Abs(indicators.FatMassKg-wantFatMass) > 1e-9 {
		t.Fatalf("expected fat mass %.4f, got %.4f", wantFatMass, indicators.FatMassKg)
	}
	if math.Abs(indicators.ResidualMassKg-72*0.24) > 1e-9 {
		t.Fatalf("expected residual mass %.4f, got %.4f", 72*0.24, indicators.ResidualMassKg)
	}
	wantMuscle := 72 - (indicators.FatMassKg + indicators.BoneMassKg + indicators.ResidualMassKg)
	if math.Abs(indicators.MuscleMassKg-wantMuscle) > 1e-9 {
		t.Fatalf("expected muscle mass %.4f, got %.4f", wantMuscle, indicators.MuscleMassKg)
	}
	if math.Abs(indicators.FatFreeMassKg-(72-indicators.FatMassKg)) > 1e-9 {
		t.Fatalf("expected fat-free mass %.4f, got %.4f", 72-indicators.FatMassKg, indicators.FatFreeMassKg)
	}
}
