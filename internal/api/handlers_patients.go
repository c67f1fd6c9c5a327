package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/models"
	"github.com/nutriclin/nutriclin/internal/services"
)

const birthDateLayout = "2006-01-02"

func (handler *Handler) buildPatientFromInput(input patientInput) (models.Patient, error) {
	patient := models.Patient{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Sex:      input.Sex,
		HeightCm: input.HeightCm,
		Notes:    input.Notes,
	}

	if raw := strings.TrimSpace(input.BirthDate); raw != "" {
		birthDate, err := time.ParseInLocation(birthDateLayout, raw, handler.location)
		if err != nil {
			return models.Patient{}, errors.New("invalid birth date")
		}
		patient.BirthDate = birthDate
	}
	return patient, nil
}

func (handler *Handler) ListPatients(c *fiber.Ctx) error {
	views, err := handler.patientService.ListViews(c.Query("q"), handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
	return c.JSON(views)
}

func (handler *Handler) CreatePatient(c *fiber.Ctx) error {
	input := patientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	patient, err := handler.buildPatientFromInput(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.patientService.Create(&patient); err != nil {
		if errors.Is(err, services.ErrPatientNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "patient name required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create patient")
	}

	view, err := handler.patientService.GetView(patient.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) GetPatient(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	view, err := handler.patientService.GetView(patientID, handler.now())
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.JSON(view)
}

func (handler *Handler) UpdatePatient(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	input := patientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	patient, err := handler.buildPatientFromInput(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := handler.patientService.Update(patientID, patient)
	if err != nil {
		if errors.Is(err, services.ErrPatientNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "patient name required")
		}
		return notFoundOrStoreError(c, err, "patient not found")
	}

	view, err := handler.patientService.GetView(updated.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
	return c.JSON(view)
}

func (handler *Handler) DeletePatient(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	if err := handler.patientService.Delete(patientID); err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
