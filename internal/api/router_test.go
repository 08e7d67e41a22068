package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/config"
	"github.com/casinoapp/casino-games/internal/db"
	"github.com/casinoapp/casino-games/internal/models"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Game{}, &models.Favorite{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	if err := db.SeedGames(gdb); err != nil {
		t.Fatalf("Failed to seed games: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey: []byte("test_secret"),
			TokenTTL:  7 * 24 * time.Hour,
		},
	}

	return SetupRouter(gdb, nil, cfg)
}

func doRequest(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestLivenessAndHealth(t *testing.T) {
	router := newTestRouter(t)

	res := doRequest(t, router, "GET", "/", "", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 at root, got %d", res.Code)
	}
	var root map[string]string
	decode(t, res, &root)
	if root["message"] != "Casino API is running" {
		t.Errorf("Unexpected liveness message: %q", root["message"])
	}

	res = doRequest(t, router, "GET", "/api/health", "", nil)
	if res.Code != http.StatusOK {
		t.Errorf("Expected 200 from health check, got %d", res.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/games", "/favorites", "/games/sports"} {
		res := doRequest(t, router, "GET", path, "", nil)
		if res.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 for %s without token, got %d", path, res.Code)
		}
	}

	res := doRequest(t, router, "POST", "/favorites/1", "", nil)
	if res.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for unauthenticated toggle, got %d", res.Code)
	}

	res = doRequest(t, router, "GET", "/games", "not-a-token", nil)
	if res.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for malformed token, got %d", res.Code)
	}
}

func TestRegisterValidationAndConflict(t *testing.T) {
	router := newTestRouter(t)

	res := doRequest(t, router, "POST", "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com",
	})
	if res.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing password, got %d", res.Code)
	}

	res = doRequest(t, router, "POST", "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d (%s)", res.Code, res.Body.String())
	}
	registerBody := res.Body.String()
	var created struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := json.Unmarshal([]byte(registerBody), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.User.ID == 0 {
		t.Errorf("Expected the created user in the response")
	}
	if strings.Contains(registerBody, "secret123") {
		t.Errorf("Password must never be returned to clients")
	}

	res = doRequest(t, router, "POST", "/auth/register", "", map[string]string{
		"name": "Other Name", "email": "alice@example.com", "password": "different",
	})
	if res.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for duplicate email, got %d", res.Code)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, "POST", "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})

	wrongPass := doRequest(t, router, "POST", "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	unknownUser := doRequest(t, router, "POST", "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})

	if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for both failures, got %d and %d", wrongPass.Code, unknownUser.Code)
	}
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Errorf("Wrong password and unknown user must be indistinguishable: %q vs %q",
			wrongPass.Body.String(), unknownUser.Body.String())
	}
}

// TestBrowseAndToggleScenario walks the full flow: register, login, browse
// the seeded catalog, toggle a favorite on and off.
func TestBrowseAndToggleScenario(t *testing.T) {
	router := newTestRouter(t)

	res := doRequest(t, router, "POST", "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from register, got %d", res.Code)
	}

	res = doRequest(t, router, "POST", "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from login, got %d", res.Code)
	}
	var login models.LoginResponse
	decode(t, res, &login)
	if login.Token == "" {
		t.Fatalf("Expected a token from login")
	}

	res = doRequest(t, router, "GET", "/games", login.Token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from games list, got %d", res.Code)
	}
	var games []models.GameWithFavorite
	decode(t, res, &games)
	if len(games) != 12 {
		t.Fatalf("Expected 12 games, got %d", len(games))
	}
	for _, game := range games {
		if game.IsFavorite {
			t.Errorf("Expected all games unflagged initially, game %d is flagged", game.ID)
		}
	}

	res = doRequest(t, router, "POST", "/favorites/1", login.Token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from toggle, got %d", res.Code)
	}
	var toggled map[string]interface{}
	decode(t, res, &toggled)
	if toggled["added"] != true {
		t.Errorf("Expected added:true, got %v", toggled)
	}

	res = doRequest(t, router, "GET", "/games", login.Token, nil)
	decode(t, res, &games)
	for _, game := range games {
		if game.ID == 1 && !game.IsFavorite {
			t.Errorf("Expected game 1 to be flagged after the toggle")
		}
		if game.ID != 1 && game.IsFavorite {
			t.Errorf("Expected game %d to stay unflagged", game.ID)
		}
	}

	// Sport filter returns exact matches only
	res = doRequest(t, router, "GET", "/games?sport=Cricket", login.Token, nil)
	decode(t, res, &games)
	if len(games) != 4 {
		t.Errorf("Expected 4 cricket games, got %d", len(games))
	}
	for _, game := range games {
		if game.Sport != "Cricket" {
			t.Errorf("Expected only Cricket rows, got %q", game.Sport)
		}
	}

	// Toggling again removes; DELETE is an alias for the same toggle
	res = doRequest(t, router, "DELETE", "/favorites/1", login.Token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from toggle, got %d", res.Code)
	}
	toggled = map[string]interface{}{}
	decode(t, res, &toggled)
	if toggled["removed"] != true {
		t.Errorf("Expected removed:true, got %v", toggled)
	}

	res = doRequest(t, router, "GET", "/favorites", login.Token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from favorites list, got %d", res.Code)
	}
	var favorites []models.GameWithFavorite
	decode(t, res, &favorites)
	if len(favorites) != 0 {
		t.Errorf("Expected an empty favorites list, got %d", len(favorites))
	}

	// Unknown game id
	res = doRequest(t, router, "POST", "/favorites/999", login.Token, nil)
	if res.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown game, got %d", res.Code)
	}

	// Sports endpoint reflects the seeded categories
	res = doRequest(t, router, "GET", "/games/sports", login.Token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200 from sports list, got %d", res.Code)
	}
	var sports []string
	decode(t, res, &sports)
	if len(sports) != 3 {
		t.Errorf("Expected 3 sports, got %v", sports)
	}
}
