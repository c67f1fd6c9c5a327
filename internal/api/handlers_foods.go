package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/models"
	"github.com/nutriclin/nutriclin/internal/services"
)

func (handler *Handler) ListFoods(c *fiber.Ctx) error {
	foods, err := handler.foodService.Search(c.Query("q"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
	return c.JSON(foods)
}

func (handler *Handler) CreateFood(c *fiber.Ctx) error {
	food := models.FoodItem{}
	if err := c.BodyParser(&food); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.foodService.Create(&food); err != nil {
		if errors.Is(err, services.ErrFoodNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "food name required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create food")
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

func (handler *Handler) GetFood(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := handler.foodService.Get(foodID)
	if err != nil {
		return notFoundOrStoreError(c, err, "food not found")
	}
	return c.JSON(food)
}

func (handler *Handler) UpdateFood(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food := models.FoodItem{}
	if err := c.BodyParser(&food); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.foodService.Update(foodID, food)
	if err != nil {
		if errors.Is(err, services.ErrFoodNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "food name required")
		}
		return notFoundOrStoreError(c, err, "food not found")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteFood(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	if err := handler.foodService.Delete(foodID); err != nil {
		return notFoundOrStoreError(c, err, "food not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
