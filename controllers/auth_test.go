package controllers_test

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"github.com/probook/booking-app/controllers"
)

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)
	doJSON(t, app, http.MethodPost, "/pros", proBody("ana@example.com", "ana"))

	resp := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if _, ok := body["access_token"]; ok {
		t.Fatalf("token issued for wrong password")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLoginIssuesTokenWithProIdentity(t *testing.T) {
	app, _ := newTestApp(t)
	doJSON(t, app, http.MethodPost, "/pros", proBody("ana@example.com", "ana"))

	resp := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	tokenString, ok := body["access_token"].(string)
	if !ok || tokenString == "" {
		t.Fatalf("no access_token in response: %v", body)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return controllers.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not validate: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if uint(claims["id"].(float64)) != 1 {
		t.Fatalf("token identity = %v, want 1", claims["id"])
	}
}

func TestDashboardRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)
	doJSON(t, app, http.MethodPost, "/pros", proBody("ana@example.com", "ana"))

	resp := doJSON(t, app, http.MethodGet, "/dashboard", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", resp.StatusCode)
	}

	resp = doAuthJSON(t, app, http.MethodGet, "/dashboard", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", resp.StatusCode)
	}

	login := decodeMap(t, doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email":    "ana@example.com",
		"password": "secret123",
	}))
	token := login["access_token"].(string)

	resp = doAuthJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if uint(body["logged_in_as"].(float64)) != 1 {
		t.Fatalf("logged_in_as = %v, want 1", body["logged_in_as"])
	}
}

func TestGetTokensRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)
	doJSON(t, app, http.MethodPost, "/pros", proBody("ana@example.com", "ana"))

	resp := doJSON(t, app, http.MethodGet, "/pros/1/tokens", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	login := decodeMap(t, doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email":    "ana@example.com",
		"password": "secret123",
	}))
	token := login["access_token"].(string)

	resp = doAuthJSON(t, app, http.MethodGet, "/pros/1/tokens", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	for _, key := range []string{"access_token", "refresh_token", "expires_in"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %s in projection: %v", key, body)
		}
	}

	resp = doAuthJSON(t, app, http.MethodGet, "/pros/99/tokens", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing pro status = %d, want 404", resp.StatusCode)
	}
}
