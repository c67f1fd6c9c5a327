package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/services"
)

func (handler *Handler) planServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPlanNodeNotFound):
		return apiError(c, fiber.StatusNotFound, "plan node not found")
	case errors.Is(err, services.ErrMealTimeInvalid):
		return apiError(c, fiber.StatusBadRequest, "meal time must be HH:MM")
	default:
		return notFoundOrStoreError(c, err, "plan not found")
	}
}

func (handler *Handler) ListPlans(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	views, err := handler.planService.ListViews(patientID)
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.JSON(views)
}

func (handler *Handler) CreatePlan(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	input := planInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.planService.Create(patientID, input.Title)
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	view, err := handler.planService.GetView(planID)
	if err != nil {
		return notFoundOrStoreError(c, err, "plan not found")
	}
	return c.JSON(view)
}

func (handler *Handler) UpdatePlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	input := planInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.planService.UpdateTitle(planID, input.Title)
	if err != nil {
		return notFoundOrStoreError(c, err, "plan not found")
	}
	return c.JSON(view)
}

func (handler *Handler) DeletePlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	if err := handler.planService.Delete(planID); err != nil {
		return notFoundOrStoreError(c, err, "plan not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AddPlanMeal(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	input := mealInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.planService.AddMeal(planID, input.Name, input.Time, input.Kind, input.Notes)
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) RemovePlanMeal(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	view, err := handler.planService.RemoveMeal(planID, c.Params("mealID"))
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.JSON(view)
}

// AddPlanItem attaches a catalog food to a meal, or to an existing item as
// its substitute when ?substitute_of names one.
func (handler *Handler) AddPlanItem(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	input := planItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.FoodID == 0 {
		return apiError(c, fiber.StatusBadRequest, "food id required")
	}

	substituteOf := strings.TrimSpace(c.Query("substitute_of"))
	view, err := handler.planService.AttachFood(planID, c.Params("mealID"), input.FoodID, input.GramQuantity, input.UnitQuantity, substituteOf)
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (handler *Handler) UpdatePlanItem(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	update := services.ItemUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	view, err := handler.planService.UpdateNode(planID, c.Params("itemID"), update)
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) RemovePlanItem(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	view, err := handler.planService.RemoveItem(planID, c.Params("itemID"))
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) RemovePlanSubstitute(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	view, err := handler.planService.RemoveSubstitute(planID, c.Params("itemID"), c.Params("subID"))
	if err != nil {
		return handler.planServiceError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) GetPlanTotals(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	totals, err := handler.planService.Totals(planID)
	if err != nil {
		return notFoundOrStoreError(c, err, "plan not found")
	}
	return c.JSON(totals)
}
