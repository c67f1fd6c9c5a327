package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/db"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	testAccountEmail    = "dietitian@example.com"
	testAccountPassword = "StrongPass1"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "nutriclin-api-test.db")
	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "0123456789abcdef0123456789abcdef", time.UTC, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

// setupTestAccount runs the first-launch setup and returns the auth cookie
// issued with the 201 response.
func setupTestAccount(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/setup", "", map[string]any{
		"email":        testAccountEmail,
		"password":     testAccountPassword,
		"display_name": "Dr. Example",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("setup status = %d, want 201", response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie not set on response")
	return ""
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

// requireJSON asserts the status code and decodes the body into out.
func requireJSON(t *testing.T, response *http.Response, wantStatus int, out any) {
	t.Helper()
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("status = %d, want %d", response.StatusCode, wantStatus)
	}
	if out == nil {
		return
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createTestPatient(t *testing.T, app *fiber.App, authCookie string, fullName string, sex string, birthDate string, heightCm float64) uint {
	t.Helper()

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, "/api/patients", authCookie, map[string]any{
		"full_name":  fullName,
		"sex":        sex,
		"birth_date": birthDate,
		"height_cm":  heightCm,
	})
	requireJSON(t, response, http.StatusCreated, &created)

	id, ok := created["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("created patient id missing in %v", created)
	}
	return uint(id)
}

func createTestFood(t *testing.T, app *fiber.App, authCookie string, name string, kcal float64, protein float64, carb float64, lipid float64, fiber float64) uint {
	t.Helper()

	created := map[string]any{}
	response := performJSON(t, app, http.MethodPost, "/api/foods", authCookie, map[string]any{
		"name":                    name,
		"kcal_per_100g":           kcal,
		"protein_g_per_100g":      protein,
		"carbohydrate_g_per_100g": carb,
		"lipid_g_per_100g":        lipid,
		"fiber_g_per_100g":        fiber,
	})
	requireJSON(t, response, http.StatusCreated, &created)

	id, ok := created["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("created food id missing in %v", created)
	}
	return uint(id)
}

func stringsContainAll(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			t.Fatalf("expected %q to contain %q", haystack, needle)
		}
	}
}
