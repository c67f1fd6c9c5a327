package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/models"
	"github.com/nutriclin/nutriclin/internal/services"
)

// EnergyOptions exposes the formula menu and the advisory activity factor
// presets.
func (handler *Handler) EnergyOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"formulas":         services.EnergyFormulas(),
		"activity_factors": services.ActivityFactorPresets(),
	})
}

func (handler *Handler) ListEnergyCalculations(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	views, err := handler.energyService.ListViews(patientID)
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.JSON(views)
}

func (handler *Handler) CreateEnergyCalculation(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	calculation := models.EnergyCalculation{}
	if err := c.BodyParser(&calculation); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.energyService.Create(patientID, calculation, handler.now())
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) GetEnergyCalculation(c *fiber.Ctx) error {
	calculationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid calculation id")
	}

	view, err := handler.energyService.GetView(calculationID)
	if err != nil {
		return notFoundOrStoreError(c, err, "calculation not found")
	}
	return c.JSON(view)
}

func (handler *Handler) UpdateEnergyCalculation(c *fiber.Ctx) error {
	calculationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid calculation id")
	}

	calculation := models.EnergyCalculation{}
	if err := c.BodyParser(&calculation); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.energyService.Update(calculationID, calculation, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrEnergyPatientMismatch) {
			return apiError(c, fiber.StatusBadRequest, "calculation belongs to another patient")
		}
		return notFoundOrStoreError(c, err, "calculation not found")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteEnergyCalculation(c *fiber.Ctx) error {
	calculationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid calculation id")
	}

	if err := handler.energyService.Delete(calculationID); err != nil {
		return notFoundOrStoreError(c, err, "calculation not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
