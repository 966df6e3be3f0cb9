package routes

import (
	"bytes"
	"encoding/json"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EgyRem/advan/models"
)

func uploadWallpaper(t *testing.T, app http.Handler) models.Wallpaper {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("wallpaper", "bg.png")
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(part, testImage()); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload-wallpaper", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		FilePath string `json:"filePath"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding upload response: %v", err)
	}
	path := out.FilePath
	return models.Wallpaper{Path: &path}
}

func TestWallpaperLifecycle(t *testing.T) {
	app := buildTestApp(t)

	// Nothing set yet: both fields null.
	resp := get(app, "/wallpaper")
	var current models.Wallpaper
	if err := json.Unmarshal(resp.Body.Bytes(), &current); err != nil {
		t.Fatalf("decoding wallpaper: %v", err)
	}
	if current.Path != nil || current.Type != nil {
		t.Fatalf("expected unset wallpaper, got %+v", current)
	}

	uploaded := uploadWallpaper(t, app)
	if !strings.HasPrefix(*uploaded.Path, "/wallpaper/") {
		t.Fatalf("unexpected wallpaper path %q", *uploaded.Path)
	}

	resp = get(app, "/wallpaper")
	json.Unmarshal(resp.Body.Bytes(), &current)
	if current.Path == nil || *current.Path != *uploaded.Path {
		t.Fatalf("expected current wallpaper %q, got %+v", *uploaded.Path, current)
	}

	// The uploaded file shows up in the listing.
	resp = get(app, "/wallpapers")
	var listing struct {
		Wallpapers []models.WallpaperFile `json:"wallpapers"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(listing.Wallpapers) != 1 || listing.Wallpapers[0].Type != "image" {
		t.Fatalf("unexpected listing: %+v", listing.Wallpapers)
	}

	// Deleting the current wallpaper resets the pointer.
	resp = postJSON(app, "/delete-wallpaper", map[string]string{"path": *uploaded.Path})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = get(app, "/wallpaper")
	json.Unmarshal(resp.Body.Bytes(), &current)
	if current.Path != nil {
		t.Fatalf("expected reset wallpaper, got %+v", current)
	}

	resp = postJSON(app, "/delete-wallpaper", map[string]string{"path": *uploaded.Path})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d", resp.Code)
	}
}

func TestSetWallpaperRequiresPath(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(app, "/set-wallpaper", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	resp = postJSON(app, "/set-wallpaper", map[string]string{"path": "/wallpaper/bg.png"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
