package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/EgyRem/advan/models"
	"github.com/EgyRem/advan/storage"
	"github.com/EgyRem/advan/utils"
	"github.com/kataras/iris/v12"
)

// UploadWallpaper stores a new wallpaper file and makes it current.
func UploadWallpaper(ctx iris.Context) {
	file, fh, err := ctx.FormFile("wallpaper")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "File not found"})
		return
	}
	file.Close()

	if !utils.AllowedChatFile(fh) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Only images and videos are allowed"})
		return
	}

	name := utils.TimestampFilename(fh.Filename)
	if _, err := ctx.SaveFormFile(fh, filepath.Join(settings.WallpaperDir, name)); err != nil {
		ctx.Application().Logger().Errorf("saving wallpaper: %v", err)
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"message": "Upload failed: " + err.Error()})
		return
	}

	filePath := "/wallpaper/" + name
	fileType := fh.Header.Get("Content-Type")
	storage.Wallpapers.Set(&filePath, &fileType)

	ctx.JSON(iris.Map{"message": "Upload successful", "filePath": filePath})
}

// GetWallpaper returns the current wallpaper pointer (nulls when unset).
func GetWallpaper(ctx iris.Context) {
	ctx.JSON(storage.Wallpapers.Current())
}

// ListWallpapers lists every file in the wallpaper directory, classified as
// image or video by extension.
func ListWallpapers(ctx iris.Context) {
	entries, err := os.ReadDir(settings.WallpaperDir)
	if err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"message": "Error reading wallpapers"})
		return
	}

	wallpapers := []models.WallpaperFile{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileType := "image"
		if utils.IsVideoPath(entry.Name()) {
			fileType = "video"
		}
		wallpapers = append(wallpapers, models.WallpaperFile{
			Name: entry.Name(),
			Path: "/wallpaper/" + entry.Name(),
			Type: fileType,
		})
	}
	ctx.JSON(iris.Map{"wallpapers": wallpapers})
}

type setWallpaperInput struct {
	Path string `json:"path"`
}

// SetWallpaper points the current wallpaper at an already uploaded file.
func SetWallpaper(ctx iris.Context) {
	var input setWallpaperInput
	if err := ctx.ReadJSON(&input); err != nil || input.Path == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Path required"})
		return
	}
	storage.Wallpapers.Set(&input.Path, nil)
	ctx.JSON(iris.Map{"message": "Wallpaper set successfully"})
}

// DeleteWallpaper removes a wallpaper file, resetting the pointer when the
// current wallpaper is the one being deleted.
func DeleteWallpaper(ctx iris.Context) {
	var input setWallpaperInput
	if err := ctx.ReadJSON(&input); err != nil || input.Path == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Path required"})
		return
	}

	name := strings.TrimPrefix(input.Path, "/wallpaper/")
	fullPath := filepath.Join(settings.WallpaperDir, name)
	if err := os.Remove(fullPath); err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "File not found"})
		return
	}

	current := storage.Wallpapers.Current()
	if current.Path != nil && *current.Path == input.Path {
		storage.Wallpapers.Set(nil, nil)
	}
	ctx.JSON(iris.Map{"message": "Wallpaper deleted successfully"})
}
