package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nutriclin/nutriclin/internal/models"
)

func TestUserRepository_UniqueEmailIndex(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "users.db"))
	repo := NewUserRepository(database)

	first := models.User{
		Email:        "clinic@nutriclin.local",
		PasswordHash: "hash-1",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	second := models.User{
		Email:        "clinic@nutriclin.local",
		PasswordHash: "hash-2",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(&second); err == nil {
		t.Fatal("expected duplicate email insert to fail")
	}

	exists, err := repo.ExistsByNormalizedEmail("clinic@nutriclin.local")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized lookup to find the user")
	}
}

func TestDietPlanRepository_DocumentRoundTrip(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "plans.db"))
	repo := NewDietPlanRepository(database)

	plan := models.DietPlan{
		PatientID: 7,
		Title:     "Week one",
		Meals: []models.DietMeal{
			{
				ID:   "meal-1",
				Name: "Lunch",
				Time: "12:30",
				Kind: models.MealKindMeal,
				Items: []models.DietItem{
					{
						ID:           "item-1",
						FoodID:       3,
						Name:         "Cooked rice",
						GramQuantity: 150,
						UnitQuantity: 1,
						FoodNutrients: models.FoodNutrients{
							KcalPer100g:    128,
							ProteinPer100g: 2.5,
							CarbPer100g:    28.1,
							LipidPer100g:   0.2,
							FiberPer100g:   1.6,
						},
						Substitutes: []models.DietSubstitute{
							{
								ID:           "sub-1",
								FoodID:       4,
								Name:         "Baked potato",
								GramQuantity: 180,
								UnitQuantity: 1,
							},
						},
					},
				},
			},
		},
	}
	if err := repo.Create(&plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	reloaded, err := repo.FindByID(plan.ID)
	if err != nil {
		t.Fatalf("find plan: %v", err)
	}
	if len(reloaded.Meals) != 1 {
		t.Fatalf("expected one meal after reload, got %d", len(reloaded.Meals))
	}
	item := reloaded.Meals[0].Items[0]
	if item.Name != "Cooked rice" || item.KcalPer100g != 128 {
		t.Fatalf("unexpected item after reload: %+v", item)
	}
	if len(item.Substitutes) != 1 || item.Substitutes[0].ID != "sub-1" {
		t.Fatalf("expected substitute to survive reload, got %+v", item.Substitutes)
	}

	reloaded.Meals[0].Items = nil
	if err := repo.Save(&reloaded); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	again, err := repo.FindByID(plan.ID)
	if err != nil {
		t.Fatalf("find plan after save: %v", err)
	}
	if len(again.Meals[0].Items) != 0 {
		t.Fatalf("expected save to replace the whole document, got %d items", len(again.Meals[0].Items))
	}
}

func TestFoodRepository_SearchMatchesNameAndGroup(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "foods.db"))
	repo := NewFoodRepository(database)

	foods := []models.FoodItem{
		{Name: "Cooked rice", FoodGroup: "Cereals"},
		{Name: "Black beans", FoodGroup: "Legumes"},
		{Name: "Rice flour", FoodGroup: "Cereals"},
	}
	for index := range foods {
		if err := repo.Create(&foods[index]); err != nil {
			t.Fatalf("create food: %v", err)
		}
	}

	byName, err := repo.Search("RICE")
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected two rice matches, got %d", len(byName))
	}

	byGroup, err := repo.Search("legume")
	if err != nil {
		t.Fatalf("search by group: %v", err)
	}
	if len(byGroup) != 1 || byGroup[0].Name != "Black beans" {
		t.Fatalf("expected the legume entry, got %+v", byGroup)
	}

	noMatch, err := repo.Search("quinoa")
	if err != nil {
		t.Fatalf("search without match: %v", err)
	}
	if noMatch == nil || len(noMatch) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", noMatch)
	}
}

func TestPatientRepository_DeleteWithRelatedData(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "patients.db"))
	repos := NewRepositories(database)

	patient := models.Patient{FullName: "Ana Souza", Sex: models.SexFemale}
	if err := repos.Patients.Create(&patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	measurement := models.Measurement{PatientID: patient.ID, TakenAt: time.Now().UTC()}
	if err := repos.Measurements.Create(&measurement); err != nil {
		t.Fatalf("create measurement: %v", err)
	}
	calculation := models.EnergyCalculation{PatientID: patient.ID, WeightKg: 60}
	if err := repos.Energy.Create(&calculation); err != nil {
		t.Fatalf("create energy calculation: %v", err)
	}
	plan := models.DietPlan{PatientID: patient.ID, Title: "Plan"}
	if err := repos.DietPlans.Create(&plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	if err := repos.Patients.DeleteWithRelatedData(patient.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	if _, err := repos.Patients.FindByID(patient.ID); err == nil {
		t.Fatal("expected patient lookup to fail after delete")
	}
	measurements, err := repos.Measurements.ListByPatient(patient.ID)
	if err != nil {
		t.Fatalf("list measurements: %v", err)
	}
	if len(measurements) != 0 {
		t.Fatalf("expected measurements removed, got %d", len(measurements))
	}
	plans, err := repos.DietPlans.ListByPatient(patient.ID)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected plans removed, got %d", len(plans))
	}
}
