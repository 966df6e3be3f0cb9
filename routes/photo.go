package routes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/EgyRem/advan/models"
	"github.com/EgyRem/advan/storage"
	"github.com/EgyRem/advan/utils"
	"github.com/kataras/iris/v12"
)

// UploadPhoto stores a gallery photo along with a sidecar text file holding
// its description and author.
func UploadPhoto(ctx iris.Context) {
	file, fh, err := ctx.FormFile("photo")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Photo file is required"})
		return
	}
	file.Close()

	description := ctx.FormValue("description")
	author := ctx.FormValue("author")
	if description == "" || author == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Description and author are required"})
		return
	}

	if !utils.AllowedImageFile(fh) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Only images are allowed"})
		return
	}
	if fh.Size > utils.MaxPhotoSize {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "File too large"})
		return
	}

	name := utils.UploadFilename("photo", fh.Filename)
	if _, err := ctx.SaveFormFile(fh, filepath.Join(settings.UploadsDir, name)); err != nil {
		ctx.Application().Logger().Errorf("saving photo: %v", err)
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"message": err.Error()})
		return
	}

	baseName := strings.TrimSuffix(name, filepath.Ext(name))
	textFilename := baseName + ".txt"
	textContent := fmt.Sprintf("Description: %s\nAuthor: %s", description, author)
	if err := os.WriteFile(filepath.Join(settings.UploadsDir, textFilename), []byte(textContent), 0o644); err != nil {
		ctx.Application().Logger().Errorf("writing photo sidecar: %v", err)
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"message": err.Error()})
		return
	}

	photo := storage.Photos.Add(models.Photo{
		Filename:     name,
		TextFilename: textFilename,
		Description:  description,
		Author:       author,
		Path:         "/uploads/" + name,
		TextPath:     "/uploads/" + textFilename,
	})
	ctx.JSON(iris.Map{"message": "Photo uploaded successfully", "photo": photo})
}

// ListPhotos returns every gallery photo.
func ListPhotos(ctx iris.Context) {
	ctx.JSON(iris.Map{"photos": storage.Photos.List()})
}
