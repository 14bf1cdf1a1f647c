package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/calrank/calrank/internal/db"
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "calrank.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	repos := db.NewRepositories(database)
	feed := services.NewLeaderboardFeed(repos.States, services.LeaderboardLimit)
	t.Cleanup(feed.Close)

	handler := NewHandler(repos, feed, "test-secret", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, path string, body any, cookies []*http.Cookie) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()

	response, err := app.Test(jsonRequest(t, method, path, body, cookies), 10000)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func validRegisterInput(email string, name string) fiber.Map {
	return fiber.Map{
		"email":    email,
		"password": "secret123",
		"profile": fiber.Map{
			"name":           name,
			"age":            30,
			"sex":            "male",
			"height":         180.0,
			"current_weight": 90.0,
			"target_weight":  80.0,
			"activity_level": 1.55,
			"deficit":        500,
		},
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string, name string) []*http.Cookie {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/auth/register", validRegisterInput(email, name), nil)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d", response.StatusCode)
	}
	cookies := response.Cookies()
	if len(cookies) == 0 {
		t.Fatal("register set no session cookie")
	}
	return cookies
}
