package api

import (
	"fmt"
	"math"
	"net/http"
	"testing"
)

func TestEnergyOptionsListsFormulasAndFactors(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	options := struct {
		Formulas        []string `json:"formulas"`
		ActivityFactors []struct {
			Value float64 `json:"value"`
			Label string  `json:"label"`
		} `json:"activity_factors"`
	}{}
	requireJSON(t, performJSON(t, app, http.MethodGet, "/api/energy/options", authCookie, nil), http.StatusOK, &options)

	if len(options.Formulas) != 6 {
		t.Fatalf("formula count = %d, want 6", len(options.Formulas))
	}
	if len(options.ActivityFactors) != 6 {
		t.Fatalf("activity factor count = %d, want 6", len(options.ActivityFactors))
	}
	if options.ActivityFactors[0].Value != 1.0 {
		t.Fatalf("first activity factor = %v, want 1.0", options.ActivityFactors[0].Value)
	}
}

func TestEnergyCalculationLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	patientID := createTestPatient(t, app, authCookie, "Paula Reis", "female", "1986-08-29", 160)
	listPath := fmt.Sprintf("/api/patients/%d/energy", patientID)

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, listPath, authCookie, map[string]any{
		"label":           "Baseline",
		"formula":         "Mifflin-St Jeor (Obesity)",
		"sex":             "female",
		"weight_kg":       70.0,
		"height_cm":       160.0,
		"age_years":       40,
		"activity_factor": 1.2,
	})
	requireJSON(t, response, http.StatusCreated, &created)

	result, ok := created["result"].(map[string]any)
	if !ok {
		t.Fatalf("result missing in %v", created)
	}

	wantBMR := 10*70.0 + 6.25*160.0 - 5*40.0 - 161
	gotBMR, _ := result["bmr_kcal"].(float64)
	if math.Abs(gotBMR-wantBMR) > 0.01 {
		t.Fatalf("bmr_kcal = %v, want %.2f", result["bmr_kcal"], wantBMR)
	}
	wantTEE := wantBMR * 1.2
	gotTEE, _ := result["tee_kcal"].(float64)
	if math.Abs(gotTEE-wantTEE) > 0.01 {
		t.Fatalf("tee_kcal = %v, want %.2f", result["tee_kcal"], wantTEE)
	}

	calculationID := uint(created["id"].(float64))

	// Editing inputs recomputes outputs on the way back.
	updated := map[string]any{}
	updateResponse := performJSON(t, app, http.MethodPut, fmt.Sprintf("/api/energy/%d", calculationID), authCookie, map[string]any{
		"label":           "Pregnancy follow-up",
		"formula":         "Mifflin-St Jeor (Obesity)",
		"sex":             "female",
		"weight_kg":       70.0,
		"height_cm":       160.0,
		"age_years":       40,
		"activity_factor": 1.2,
		"pregnant":        true,
	})
	requireJSON(t, updateResponse, http.StatusOK, &updated)

	result = updated["result"].(map[string]any)
	gotTEE, _ = result["tee_kcal"].(float64)
	if math.Abs(gotTEE-(wantTEE+300)) > 0.01 {
		t.Fatalf("pregnant tee_kcal = %v, want %.2f", result["tee_kcal"], wantTEE+300)
	}

	requireJSON(t, performJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/energy/%d", calculationID), authCookie, nil), http.StatusOK, nil)

	listed := []map[string]any{}
	requireJSON(t, performJSON(t, app, http.MethodGet, listPath, authCookie, nil), http.StatusOK, &listed)
	if len(listed) != 0 {
		t.Fatalf("calculation count after delete = %d, want 0", len(listed))
	}
}

func TestEnergyDefaultsFromPatientProfile(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	patientID := createTestPatient(t, app, authCookie, "Paula Reis", "female", "1986-01-01", 160)

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, fmt.Sprintf("/api/patients/%d/energy", patientID), authCookie, map[string]any{
		"weight_kg": 62.0,
	})
	requireJSON(t, response, http.StatusCreated, &created)

	if created["sex"] != "female" {
		t.Fatalf("sex = %v, want patient default female", created["sex"])
	}
	if height, _ := created["height_cm"].(float64); height != 160 {
		t.Fatalf("height_cm = %v, want patient default 160", created["height_cm"])
	}
	if age, _ := created["age_years"].(float64); age < 39 {
		t.Fatalf("age_years = %v, want derived from birth date", created["age_years"])
	}
}
