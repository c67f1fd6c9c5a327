package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Patients     *PatientRepository
	Measurements *MeasurementRepository
	Energy       *EnergyRepository
	Foods        *FoodRepository
	DietPlans    *DietPlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Patients:     NewPatientRepository(database),
		Measurements: NewMeasurementRepository(database),
		Energy:       NewEnergyRepository(database),
		Foods:        NewFoodRepository(database),
		DietPlans:    NewDietPlanRepository(database),
	}
}
