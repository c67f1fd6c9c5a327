package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/setup", handler.Setup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)

	patients := api.Group("/patients", handler.AuthRequired)
	patients.Get("", handler.ListPatients)
	patients.Post("", handler.CreatePatient)
	patients.Get("/:id", handler.GetPatient)
	patients.Put("/:id", handler.UpdatePatient)
	patients.Delete("/:id", handler.DeletePatient)
	patients.Get("/:id/measurements", handler.ListMeasurements)
	patients.Post("/:id/measurements", handler.CreateMeasurement)
	patients.Get("/:id/energy", handler.ListEnergyCalculations)
	patients.Post("/:id/energy", handler.CreateEnergyCalculation)
	patients.Get("/:id/plans", handler.ListPlans)
	patients.Post("/:id/plans", handler.CreatePlan)
	patients.Get("/:id/export/csv", handler.ExportCSV)
	patients.Get("/:id/export/json", handler.ExportJSON)

	measurements := api.Group("/measurements", handler.AuthRequired)
	measurements.Get("/:id", handler.GetMeasurement)
	measurements.Put("/:id", handler.UpdateMeasurement)
	measurements.Delete("/:id", handler.DeleteMeasurement)

	energy := api.Group("/energy", handler.AuthRequired)
	energy.Get("/options", handler.EnergyOptions)
	energy.Get("/:id", handler.GetEnergyCalculation)
	energy.Put("/:id", handler.UpdateEnergyCalculation)
	energy.Delete("/:id", handler.DeleteEnergyCalculation)

	foods := api.Group("/foods", handler.AuthRequired)
	foods.Get("", handler.ListFoods)
	foods.Post("", handler.CreateFood)
	foods.Get("/:id", handler.GetFood)
	foods.Put("/:id", handler.UpdateFood)
	foods.Delete("/:id", handler.DeleteFood)

	plans := api.Group("/plans", handler.AuthRequired)
	plans.Get("/:id", handler.GetPlan)
	plans.Put("/:id", handler.UpdatePlan)
	plans.Delete("/:id", handler.DeletePlan)
	plans.Get("/:id/totals", handler.GetPlanTotals)
	plans.Post("/:id/meals", handler.AddPlanMeal)
	plans.Delete("/:id/meals/:mealID", handler.RemovePlanMeal)
	plans.Post("/:id/meals/:mealID/items", handler.AddPlanItem)
	plans.Patch("/:id/items/:itemID", handler.UpdatePlanItem)
	plans.Delete("/:id/items/:itemID", handler.RemovePlanItem)
	plans.Delete("/:id/items/:itemID/substitutes/:subID", handler.RemovePlanSubstitute)
}
