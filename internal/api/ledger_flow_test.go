package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/calrank/calrank/internal/models"
	"github.com/gofiber/fiber/v2"
)

func TestMealLifecycle(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookies := registerTestUser(t, app, "alice@example.com", "Alice")

	meal := fiber.Map{"name": "oats", "calories": 420, "protein": 18, "category": "breakfast"}
	response := doRequest(t, app, http.MethodPost, "/api/meals", meal, cookies)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("add meal returned %d", response.StatusCode)
	}
	added := struct {
		Meal     models.Meal `json:"meal"`
		Calories int         `json:"calories"`
		Protein  int         `json:"protein"`
	}{}
	decodeBody(t, response, &added)
	if added.Calories != 420 || added.Protein != 18 {
		t.Fatalf("unexpected aggregates after add: %+v", added)
	}
	if added.Meal.ID == 0 || added.Meal.Name != "oats" {
		t.Fatalf("unexpected meal: %+v", added.Meal)
	}

	response = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/meals/%d", added.Meal.ID), nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("delete meal returned %d", response.StatusCode)
	}
	deleted := struct {
		Calories int `json:"calories"`
		Protein  int `json:"protein"`
	}{}
	decodeBody(t, response, &deleted)
	if deleted.Calories != 0 || deleted.Protein != 0 {
		t.Fatalf("aggregates not rolled back: %+v", deleted)
	}

	response = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/meals/%d", added.Meal.ID), nil, cookies)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an already removed meal, got %d", response.StatusCode)
	}
}

func TestAddMealValidationOverHTTP(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookies := registerTestUser(t, app, "alice@example.com", "Alice")

	meal := fiber.Map{"name": "mystery", "calories": 100, "protein": 5, "category": "brunch"}
	response := doRequest(t, app, http.MethodPost, "/api/meals", meal, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown category, got %d", response.StatusCode)
	}
}

func TestSetSteps(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookies := registerTestUser(t, app, "alice@example.com", "Alice")

	response := doRequest(t, app, http.MethodPut, "/api/steps", fiber.Map{"steps": 8000}, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("set steps returned %d", response.StatusCode)
	}

	response = doRequest(t, app, http.MethodPut, "/api/steps", fiber.Map{"steps": 4321}, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("set steps returned %d", response.StatusCode)
	}
	result := struct {
		Steps         int `json:"steps"`
		StepsCalories int `json:"stepsCalories"`
	}{}
	decodeBody(t, response, &result)
	if result.Steps != 4321 || result.StepsCalories != 173 {
		t.Fatalf("unexpected steps result: %+v", result)
	}

	response = doRequest(t, app, http.MethodPut, "/api/steps", fiber.Map{"steps": -5}, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative steps, got %d", response.StatusCode)
	}
}

func TestUpsertWeight(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookies := registerTestUser(t, app, "alice@example.com", "Alice")

	// Registration already seeded today's entry, so a dated write makes
	// the first fresh entry.
	payload := fiber.Map{"date": "2026-01-05", "weight": 91.0}
	response := doRequest(t, app, http.MethodPut, "/api/weight", payload, cookies)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for a new dated entry, got %d", response.StatusCode)
	}

	payload = fiber.Map{"date": "2026-01-05", "weight": 90.5}
	response = doRequest(t, app, http.MethodPut, "/api/weight", payload, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for an overwrite, got %d", response.StatusCode)
	}
	result := struct {
		CurrentWeight float64 `json:"currentWeight"`
	}{}
	decodeBody(t, response, &result)
	// The backdated entry must not displace today's seeded weight.
	if result.CurrentWeight != 90.0 {
		t.Fatalf("expected current weight 90.0, got %v", result.CurrentWeight)
	}

	response = doRequest(t, app, http.MethodPut, "/api/weight", fiber.Map{"weight": 0.0}, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-positive weight, got %d", response.StatusCode)
	}
}

func TestWeightsRange(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookies := registerTestUser(t, app, "alice@example.com", "Alice")

	response := doRequest(t, app, http.MethodGet, "/api/weights?days=30", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("weights returned %d", response.StatusCode)
	}
	result := struct {
		Entries []models.WeightEntry `json:"entries"`
	}{}
	decodeBody(t, response, &result)
	// Only the registration-seeded entry is in range.
	if len(result.Entries) != 1 || result.Entries[0].Weight != 90.0 {
		t.Fatalf("unexpected entries: %+v", result.Entries)
	}
}
