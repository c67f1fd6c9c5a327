package models

import "time"

// EnergyCalculation stores the inputs of one TEE estimate. BMR and TEE are
// derived on every read (see services.ComputeEnergy), never persisted.
type EnergyCalculation struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Label     string  `gorm:"not null;default:''" json:"label"`
	Formula   string  `gorm:"not null;default:''" json:"formula"`
	Sex       string  `gorm:"not null;default:female" json:"sex"`
	WeightKg  float64 `gorm:"not null;default:0" json:"weight_kg"`
	HeightCm  float64 `gorm:"not null;default:0" json:"height_cm"`
	AgeYears  int     `gorm:"not null;default:0" json:"age_years"`

	// Lean body mass override, kg. 0 falls back to weight * 0.8 for the
	// lean-mass formulas.
	LeanMassKg float64 `gorm:"not null;default:0" json:"lean_mass_kg"`

	ActivityFactor   float64 `gorm:"not null;default:0" json:"activity_factor"`
	MetabolicAdjKcal float64 `gorm:"not null;default:0" json:"metabolic_adj_kcal"`
	OtherAdjKcal     float64 `gorm:"not null;default:0" json:"other_adj_kcal"`
	Pregnant         bool    `gorm:"not null;default:false" json:"pregnant"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
