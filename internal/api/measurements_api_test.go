package api

import (
	"fmt"
	"math"
	"net/http"
	"testing"
)

func TestMeasurementCreateComputesIndicators(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	patientID := createTestPatient(t, app, authCookie, "Joana Alves", "female", "1992-05-10", 165)

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, fmt.Sprintf("/api/patients/%d/measurements", patientID), authCookie, map[string]any{
		"taken_at":   "2026-08-01T09:00:00Z",
		"weight_kg":  60.0,
		"height_cm":  165.0,
		"waist_circ": 70.0,
		"hip_circ":   95.0,
	})
	requireJSON(t, response, http.StatusCreated, &created)

	indicators, ok := created["indicators"].(map[string]any)
	if !ok {
		t.Fatalf("indicators missing in %v", created)
	}

	wantBMI := 60.0 / (1.65 * 1.65)
	gotBMI, _ := indicators["bmi"].(float64)
	if math.Abs(gotBMI-wantBMI) > 0.01 {
		t.Fatalf("bmi = %v, want %.2f", indicators["bmi"], wantBMI)
	}
	if indicators["bmi_class"] != "Normal" {
		t.Fatalf("bmi_class = %v, want Normal", indicators["bmi_class"])
	}

	wantRatio := 70.0 / 95.0
	gotRatio, _ := indicators["waist_hip_ratio"].(float64)
	if math.Abs(gotRatio-wantRatio) > 0.001 {
		t.Fatalf("waist_hip_ratio = %v, want %.3f", indicators["waist_hip_ratio"], wantRatio)
	}

	// No skinfolds were measured, so density-derived values stay zero.
	if density, _ := indicators["body_density"].(float64); density != 0 {
		t.Fatalf("body_density = %v, want 0 without skinfolds", indicators["body_density"])
	}
}

func TestMeasurementUpdateRecomputesIndicators(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	patientID := createTestPatient(t, app, authCookie, "Joana Alves", "female", "1992-05-10", 165)

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, fmt.Sprintf("/api/patients/%d/measurements", patientID), authCookie, map[string]any{
		"weight_kg": 90.0,
		"height_cm": 165.0,
	})
	requireJSON(t, response, http.StatusCreated, &created)
	measurementID := uint(created["id"].(float64))

	indicators := created["indicators"].(map[string]any)
	if indicators["bmi_class"] != "Obesity" {
		t.Fatalf("bmi_class = %v, want Obesity at 90 kg", indicators["bmi_class"])
	}

	updated := map[string]any{}
	updateResponse := performJSON(t, app, http.MethodPut, fmt.Sprintf("/api/measurements/%d", measurementID), authCookie, map[string]any{
		"weight_kg": 62.0,
		"height_cm": 165.0,
	})
	requireJSON(t, updateResponse, http.StatusOK, &updated)

	indicators = updated["indicators"].(map[string]any)
	if indicators["bmi_class"] != "Normal" {
		t.Fatalf("bmi_class after update = %v, want Normal", indicators["bmi_class"])
	}
}

func TestMeasurementListOrderAndDelete(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	patientID := createTestPatient(t, app, authCookie, "Joana Alves", "female", "1992-05-10", 165)
	listPath := fmt.Sprintf("/api/patients/%d/measurements", patientID)

	for _, takenAt := range []string{"2026-03-01T09:00:00Z", "2026-01-01T09:00:00Z", "2026-02-01T09:00:00Z"} {
		response := performJSON(t, app, http.MethodPost, listPath, authCookie, map[string]any{
			"taken_at":  takenAt,
			"weight_kg": 60.0,
			"height_cm": 165.0,
		})
		requireJSON(t, response, http.StatusCreated, nil)
	}

	listed := []map[string]any{}
	requireJSON(t, performJSON(t, app, http.MethodGet, listPath, authCookie, nil), http.StatusOK, &listed)
	if len(listed) != 3 {
		t.Fatalf("measurement count = %d, want 3", len(listed))
	}
	stringsContainAll(t, listed[0]["taken_at"].(string), "2026-01-01")
	stringsContainAll(t, listed[2]["taken_at"].(string), "2026-03-01")

	firstID := uint(listed[0]["id"].(float64))
	requireJSON(t, performJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/measurements/%d", firstID), authCookie, nil), http.StatusOK, nil)

	requireJSON(t, performJSON(t, app, http.MethodGet, listPath, authCookie, nil), http.StatusOK, &listed)
	if len(listed) != 2 {
		t.Fatalf("measurement count after delete = %d, want 2", len(listed))
	}
}

func TestMeasurementForUnknownPatient(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	response := performJSON(t, app, http.MethodPost, "/api/patients/999/measurements", authCookie, map[string]any{
		"weight_kg": 60.0,
	})
	requireJSON(t, response, http.StatusNotFound, nil)
}
