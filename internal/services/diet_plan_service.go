package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nutriclin/nutriclin/internal/models"
)

var (
	ErrPlanNodeNotFound = errors.New("plan node not found")
	ErrMealTimeInvalid  = errors.New("meal time invalid")
)

var mealTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type DietPlanRepository interface {
	ListByPatient(patientID uint) ([]models.DietPlan, error)
	FindByID(planID uint) (models.DietPlan, error)
	Create(plan *models.DietPlan) error
	Save(plan *models.DietPlan) error
	Delete(planID uint) error
}

type DietPlanPatientReader interface {
	FindByID(patientID uint) (models.Patient, error)
}

type DietPlanFoodReader interface {
	FindByID(foodID uint) (models.FoodItem, error)
}

type DietPlanService struct {
	plans    DietPlanRepository
	patients DietPlanPatientReader
	foods    DietPlanFoodReader
}

func NewDietPlanService(plans DietPlanRepository, patients DietPlanPatientReader, foods DietPlanFoodReader) *DietPlanService {
	return &DietPlanService{plans: plans, patients: patients, foods: foods}
}

// PlanView pairs the stored document with its recomputed day totals.
type PlanView struct {
	models.DietPlan
	DayTotals NutrientTotals `json:"day_totals"`
}

// MealTotalsView reports one meal's contribution to the day.
type MealTotalsView struct {
	MealID string         `json:"meal_id"`
	Name   string         `json:"name"`
	Time   string         `json:"time"`
	Kind   string         `json:"kind"`
	Totals NutrientTotals `json:"totals"`
}

// PlanTotalsView is the /totals payload: per-meal rows plus the day sum.
type PlanTotalsView struct {
	PlanID uint             `json:"plan_id"`
	Meals  []MealTotalsView `json:"meals"`
	Day    NutrientTotals   `json:"day"`
}

func buildPlanView(plan models.DietPlan) PlanView {
	return PlanView{DietPlan: plan, DayTotals: PlanTotals(plan)}
}

func (service *DietPlanService) ListViews(patientID uint) ([]PlanView, error) {
	if _, err := service.patients.FindByID(patientID); err != nil {
		return nil, err
	}

	plans, err := service.plans.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}

	views := make([]PlanView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, buildPlanView(plan))
	}
	return views, nil
}

func (service *DietPlanService) GetView(planID uint) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

// Create stores a fresh plan seeded with one default meal.
func (service *DietPlanService) Create(patientID uint, title string) (PlanView, error) {
	if _, err := service.patients.FindByID(patientID); err != nil {
		return PlanView{}, err
	}

	plan := NewPlan(patientID, strings.TrimSpace(title))
	if err := service.plans.Create(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

func (service *DietPlanService) UpdateTitle(planID uint, title string) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	plan.Title = strings.TrimSpace(title)
	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

func (service *DietPlanService) Delete(planID uint) error {
	if _, err := service.plans.FindByID(planID); err != nil {
		return err
	}
	return service.plans.Delete(planID)
}

// AddMeal appends a meal and re-sorts the document, then saves it whole.
func (service *DietPlanService) AddMeal(planID uint, name string, timeOfDay string, kind string, notes string) (PlanView, error) {
	if !mealTimePattern.MatchString(timeOfDay) {
		return PlanView{}, ErrMealTimeInvalid
	}

	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}

	meal := NewMeal(strings.TrimSpace(name), timeOfDay, kind)
	meal.Notes = strings.TrimSpace(notes)
	AddMeal(&plan, meal)

	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

func (service *DietPlanService) RemoveMeal(planID uint, mealID string) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	if !RemoveMeal(&plan, mealID) {
		return PlanView{}, ErrPlanNodeNotFound
	}
	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

// AttachFood snapshots a catalog entry into the plan, as a principal item
// of the meal or, when substituteOf names an item, as that item's
// substitute.
func (service *DietPlanService) AttachFood(planID uint, mealID string, foodID uint, gramQuantity float64, unitQuantity float64, substituteOf string) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	food, err := service.foods.FindByID(foodID)
	if err != nil {
		return PlanView{}, err
	}

	if substituteOf != "" {
		if !AddSubstitute(&plan, substituteOf, NewSubstituteFromFood(food, gramQuantity, unitQuantity)) {
			return PlanView{}, ErrPlanNodeNotFound
		}
	} else {
		if !AddItem(&plan, mealID, NewItemFromFood(food, gramQuantity, unitQuantity)) {
			return PlanView{}, ErrPlanNodeNotFound
		}
	}

	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

// UpdateNode applies a partial update to whichever node carries the id,
// principal item first, substitute second.
func (service *DietPlanService) UpdateNode(planID uint, nodeID string, update ItemUpdate) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	if !UpdateItem(&plan, nodeID, update) && !UpdateSubstitute(&plan, nodeID, update) {
		return PlanView{}, ErrPlanNodeNotFound
	}
	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

func (service *DietPlanService) RemoveItem(planID uint, itemID string) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	if !RemoveItem(&plan, itemID) {
		return PlanView{}, ErrPlanNodeNotFound
	}
	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

func (service *DietPlanService) RemoveSubstitute(planID uint, itemID string, substituteID string) (PlanView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanView{}, err
	}
	if !RemoveSubstitute(&plan, itemID, substituteID) {
		return PlanView{}, ErrPlanNodeNotFound
	}
	if err := service.plans.Save(&plan); err != nil {
		return PlanView{}, err
	}
	return buildPlanView(plan), nil
}

// Totals recomputes the per-meal rows and the day sum for one plan.
func (service *DietPlanService) Totals(planID uint) (PlanTotalsView, error) {
	plan, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanTotalsView{}, err
	}

	view := PlanTotalsView{
		PlanID: plan.ID,
		Meals:  make([]MealTotalsView, 0, len(plan.Meals)),
		Day:    PlanTotals(plan),
	}
	for _, meal := range plan.Meals {
		view.Meals = append(view.Meals, MealTotalsView{
			MealID: meal.ID,
			Name:   meal.Name,
			Time:   meal.Time,
			Kind:   meal.Kind,
			Totals: MealTotals(meal),
		})
	}
	return view, nil
}
