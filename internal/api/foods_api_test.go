package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestFoodSearchAndLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := setupTestAccount(t, app)

	riceID := createTestFood(t, app, authCookie, "Cooked rice", 128, 2.5, 26.2, 0.2, 1.6)
	createTestFood(t, app, authCookie, "Black beans", 77, 4.5, 14, 0.5, 8.4)

	all := []map[string]any{}
	requireJSON(t, performJSON(t, app, http.MethodGet, "/api/foods", authCookie, nil), http.StatusOK, &all)
	if len(all) != 2 {
		t.Fatalf("food count = %d, want 2", len(all))
	}

	filtered := []map[string]any{}
	requireJSON(t, performJSON(t, app, http.MethodGet, "/api/foods?q=rice", authCookie, nil), http.StatusOK, &filtered)
	if len(filtered) != 1 || filtered[0]["name"] != "Cooked rice" {
		t.Fatalf("search q=rice returned %v", filtered)
	}

	noMatch := []map[string]any{}
	requireJSON(t, performJSON(t, app, http.MethodGet, "/api/foods?q=zzz", authCookie, nil), http.StatusOK, &noMatch)
	if len(noMatch) != 0 {
		t.Fatalf("search q=zzz returned %v, want empty list", noMatch)
	}

	noName := performJSON(t, app, http.MethodPost, "/api/foods", authCookie, map[string]any{
		"kcal_per_100g": 100,
	})
	requireJSON(t, noName, http.StatusBadRequest, nil)

	foodPath := fmt.Sprintf("/api/foods/%d", riceID)
	updated := map[string]any{}
	response := performJSON(t, app, http.MethodPut, foodPath, authCookie, map[string]any{
		"name":          "Cooked rice",
		"food_group":    "Cereals",
		"kcal_per_100g": 130,
	})
	requireJSON(t, response, http.StatusOK, &updated)
	if updated["food_group"] != "Cereals" {
		t.Fatalf("food_group = %v, want Cereals", updated["food_group"])
	}

	requireJSON(t, performJSON(t, app, http.MethodDelete, foodPath, authCookie, nil), http.StatusOK, nil)
	requireJSON(t, performJSON(t, app, http.MethodGet, foodPath, authCookie, nil), http.StatusNotFound, nil)
}
