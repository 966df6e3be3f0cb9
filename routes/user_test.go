package routes

import (
	"encoding/json"
	"image"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/EgyRem/advan/models"
)

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

func TestRegisterAndLogin(t *testing.T) {
	app := buildTestApp(t)

	resp := postForm(app, "/register", url.Values{
		"new_username":     {"mia"},
		"new_password":     {"secret"},
		"confirm_password": {"secret"},
	}, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = postJSON(app, "/login", map[string]string{"username": "mia", "password": "secret"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 login, got %d: %s", resp.Code, resp.Body.String())
	}
	var login struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if login.User.Role != models.RoleMember || login.User.LastLogin == nil {
		t.Fatalf("unexpected logged-in user: %+v", login.User)
	}

	resp = postJSON(app, "/login", map[string]string{"username": "mia", "password": "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.Code)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	app := buildTestApp(t)

	resp := postForm(app, "/register", url.Values{
		"new_username":     {"mia"},
		"new_password":     {"secret"},
		"confirm_password": {"other"},
	}, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := buildTestApp(t)

	form := url.Values{
		"new_username":     {"mia"},
		"new_password":     {"secret"},
		"confirm_password": {"secret"},
	}
	postForm(app, "/register", form, nil)
	resp := postForm(app, "/register", form, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", resp.Code)
	}
}

func TestDefaultAdminCanLogin(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(app, "/login", map[string]string{"username": "advan", "password": "advan"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected seeded admin login, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAddUserAdminGate(t *testing.T) {
	app := buildTestApp(t)

	postForm(app, "/register", url.Values{
		"new_username":     {"mia"},
		"new_password":     {"pw"},
		"confirm_password": {"pw"},
	}, nil)

	// A member may not add an admin.
	resp := postForm(app, "/api/add-user", url.Values{
		"username":         {"boss"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
		"role":             {"admin"},
		"added_by":         {"mia"},
	}, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	// The seeded admin may.
	resp = postForm(app, "/api/add-user", url.Values{
		"username":         {"boss"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
		"role":             {"admin"},
		"added_by":         {"advan"},
	}, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = postForm(app, "/api/add-user", url.Values{
		"username":         {"weird"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
		"role":             {"overlord"},
		"added_by":         {"advan"},
	}, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid role, got %d", resp.Code)
	}
}

func TestLogoutAndDeleteAccount(t *testing.T) {
	app := buildTestApp(t)

	postForm(app, "/register", url.Values{
		"new_username":     {"mia"},
		"new_password":     {"pw"},
		"confirm_password": {"pw"},
	}, nil)

	resp := postJSON(app, "/logout", map[string]string{"username": "mia"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 logout, got %d", resp.Code)
	}
	resp = postJSON(app, "/logout", map[string]string{"username": "ghost"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 logout for unknown user, got %d", resp.Code)
	}

	resp = postJSON(app, "/delete-account", map[string]string{"username": "mia"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d", resp.Code)
	}
	resp = postJSON(app, "/delete-account", map[string]string{"username": "mia"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", resp.Code)
	}

	var users []models.User
	resp = get(app, "/users")
	if err := json.Unmarshal(resp.Body.Bytes(), &users); err != nil {
		t.Fatalf("decoding users: %v", err)
	}
	for _, u := range users {
		if u.Username == "mia" {
			t.Fatal("deleted user still listed")
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	app := buildTestApp(t)

	postForm(app, "/register", url.Values{
		"new_username":     {"mia"},
		"new_password":     {"pw"},
		"confirm_password": {"pw"},
	}, nil)

	data, _ := json.Marshal(map[string]string{"whatsapp": "+628123", "instagram": "mia.gram"})
	req, resp := jsonRequest(http.MethodPost, "/api/update-profile", data)
	req.Header.Set("X-Username", "mia")
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	getResp := get(app, "/api/profile?username=mia")
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.Code)
	}
	if !strings.Contains(getResp.Body.String(), "mia.gram") {
		t.Fatalf("expected saved instagram handle, got %s", getResp.Body.String())
	}

	if got := get(app, "/api/profile?username=ghost"); got.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", got.Code)
	}
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp := get(app, "/")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "OK") {
		t.Fatalf("unexpected health response: %d %s", resp.Code, resp.Body.String())
	}
}
