package models

import "time"

const (
	SexMale   = "male"
	SexFemale = "female"
)

type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null;index" json:"full_name"`
	Email     string    `gorm:"not null;default:''" json:"email"`
	Phone     string    `gorm:"not null;default:''" json:"phone"`
	Sex       string    `gorm:"not null;default:female" json:"sex"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	HeightCm  float64   `gorm:"not null;default:0" json:"height_cm"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgeAt reports the patient's age in full years at the given moment.
// A zero birth date yields 0.
func (patient Patient) AgeAt(now time.Time) int {
	if patient.BirthDate.IsZero() {
		return 0
	}
	age := now.Year() - patient.BirthDate.Year()
	if now.Before(patient.BirthDate.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
