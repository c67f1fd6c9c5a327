package api

import (
	"github.com/nutriclin/nutriclin/internal/db"
	"github.com/nutriclin/nutriclin/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.patientService = services.NewPatientService(handler.repositories.Patients)
	handler.measurementService = services.NewMeasurementService(handler.repositories.Measurements, handler.repositories.Patients)
	handler.energyService = services.NewEnergyService(handler.repositories.Energy, handler.repositories.Patients)
	handler.foodService = services.NewFoodService(handler.repositories.Foods)
	handler.planService = services.NewDietPlanService(handler.repositories.DietPlans, handler.repositories.Patients, handler.repositories.Foods)
	handler.exportService = services.NewExportService(
		handler.patientService,
		handler.measurementService,
		handler.energyService,
		handler.planService,
	)
	return handler
}
