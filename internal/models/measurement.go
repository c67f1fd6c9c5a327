package models

import "time"

const (
	MeasurementKindAdult = "adult"
	MeasurementKindChild = "child"
)

// Measurement is one anthropometric evaluation snapshot. Every numeric
// field defaults to 0, meaning "not measured"; derived indicators are
// recomputed from these raw values on every read and never stored.
type Measurement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	TakenAt   time.Time `gorm:"not null" json:"taken_at"`
	Kind      string    `gorm:"not null;default:adult" json:"kind"`

	WeightKg        float64 `gorm:"not null;default:0" json:"weight_kg"`
	HeightCm        float64 `gorm:"not null;default:0" json:"height_cm"`
	SittingHeightCm float64 `gorm:"not null;default:0" json:"sitting_height_cm"`
	KneeHeightCm    float64 `gorm:"not null;default:0" json:"knee_height_cm"`

	// Skinfolds, millimetres.
	SkinfoldFormula string  `gorm:"not null;default:''" json:"skinfold_formula"`
	TricepsFold     float64 `gorm:"not null;default:0" json:"triceps_fold"`
	BicepsFold      float64 `gorm:"not null;default:0" json:"biceps_fold"`
	AbdominalFold   float64 `gorm:"not null;default:0" json:"abdominal_fold"`
	SubscapularFold float64 `gorm:"not null;default:0" json:"subscapular_fold"`
	MidAxillaryFold float64 `gorm:"not null;default:0" json:"mid_axillary_fold"`
	ThighFold       float64 `gorm:"not null;default:0" json:"thigh_fold"`
	ChestFold       float64 `gorm:"not null;default:0" json:"chest_fold"`
	SuprailiacFold  float64 `gorm:"not null;default:0" json:"suprailiac_fold"`
	CalfFold        float64 `gorm:"not null;default:0" json:"calf_fold"`
	SupraspinalFold float64 `gorm:"not null;default:0" json:"supraspinal_fold"`

	// Circumferences, centimetres.
	NeckCirc          float64 `gorm:"not null;default:0" json:"neck_circ"`
	ChestCirc         float64 `gorm:"not null;default:0" json:"chest_circ"`
	ShoulderCirc      float64 `gorm:"not null;default:0" json:"shoulder_circ"`
	WaistCirc         float64 `gorm:"not null;default:0" json:"waist_circ"`
	AbdomenCirc       float64 `gorm:"not null;default:0" json:"abdomen_circ"`
	RelaxedArmCirc    float64 `gorm:"not null;default:0" json:"relaxed_arm_circ"`
	ContractedArmCirc float64 `gorm:"not null;default:0" json:"contracted_arm_circ"`
	ForearmCirc       float64 `gorm:"not null;default:0" json:"forearm_circ"`
	ProximalThighCirc float64 `gorm:"not null;default:0" json:"proximal_thigh_circ"`
	MidThighCirc      float64 `gorm:"not null;default:0" json:"mid_thigh_circ"`
	DistalThighCirc   float64 `gorm:"not null;default:0" json:"distal_thigh_circ"`
	CalfCirc          float64 `gorm:"not null;default:0" json:"calf_circ"`
	HipCirc           float64 `gorm:"not null;default:0" json:"hip_circ"`

	// Bone diameters, centimetres.
	HumerusDiameter float64 `gorm:"not null;default:0" json:"humerus_diameter"`
	WristDiameter   float64 `gorm:"not null;default:0" json:"wrist_diameter"`
	FemurDiameter   float64 `gorm:"not null;default:0" json:"femur_diameter"`

	// Bioimpedance device readings, surfaced as-is next to the computed
	// indicators and never recomputed or reconciled.
	BioFatPercent    float64 `gorm:"not null;default:0" json:"bio_fat_percent"`
	BioFatMassKg     float64 `gorm:"not null;default:0" json:"bio_fat_mass_kg"`
	BioMusclePercent float64 `gorm:"not null;default:0" json:"bio_muscle_percent"`
	BioMuscleMassKg  float64 `gorm:"not null;default:0" json:"bio_muscle_mass_kg"`
	BioFatFreeMassKg float64 `gorm:"not null;default:0" json:"bio_fat_free_mass_kg"`
	BioBoneMassKg    float64 `gorm:"not null;default:0" json:"bio_bone_mass_kg"`
	BioVisceralFat   float64 `gorm:"not null;default:0" json:"bio_visceral_fat"`
	BioBodyWaterPct  float64 `gorm:"not null;default:0" json:"bio_body_water_pct"`
	BioMetabolicAge  float64 `gorm:"not null;default:0" json:"bio_metabolic_age"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
