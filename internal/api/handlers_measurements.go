package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/models"
	"github.com/nutriclin/nutriclin/internal/services"
)

func (handler *Handler) ListMeasurements(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	views, err := handler.measurementService.ListViews(patientID)
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.JSON(views)
}

func (handler *Handler) CreateMeasurement(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	measurement := models.Measurement{}
	if err := c.BodyParser(&measurement); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.measurementService.Create(patientID, measurement, handler.now())
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) GetMeasurement(c *fiber.Ctx) error {
	measurementID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid measurement id")
	}

	view, err := handler.measurementService.GetView(measurementID)
	if err != nil {
		return notFoundOrStoreError(c, err, "measurement not found")
	}
	return c.JSON(view)
}

func (handler *Handler) UpdateMeasurement(c *fiber.Ctx) error {
	measurementID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid measurement id")
	}

	measurement := models.Measurement{}
	if err := c.BodyParser(&measurement); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.measurementService.Update(measurementID, measurement, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrMeasurementPatientMismatch) {
			return apiError(c, fiber.StatusBadRequest, "measurement belongs to another patient")
		}
		return notFoundOrStoreError(c, err, "measurement not found")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteMeasurement(c *fiber.Ctx) error {
	measurementID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid measurement id")
	}

	if err := handler.measurementService.Delete(measurementID); err != nil {
		return notFoundOrStoreError(c, err, "measurement not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
