package routes

import (
	"net/http"
	"path/filepath"

	"github.com/EgyRem/advan/models"
	"github.com/EgyRem/advan/storage"
	"github.com/EgyRem/advan/utils"
	"github.com/kataras/iris/v12"
)

// GetPortfolio returns the user's portfolio, or an empty one when nothing
// was ever saved.
func GetPortfolio(ctx iris.Context) {
	username := ctx.URLParam("username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	portfolio, ok := storage.Portfolios.Get(username)
	if !ok {
		portfolio = models.Portfolio{Description: "", Items: []models.PortfolioItem{}}
	}
	ctx.JSON(portfolio)
}

// GetPortfolioFiles returns only the uploaded items, 404 when the user never
// saved a portfolio.
func GetPortfolioFiles(ctx iris.Context) {
	username := ctx.URLParam("username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	portfolio, ok := storage.Portfolios.Get(username)
	if !ok {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "Portfolio not found"})
		return
	}
	items := portfolio.Items
	if items == nil {
		items = []models.PortfolioItem{}
	}
	ctx.JSON(iris.Map{"files": items})
}

// UploadPortfolio appends uploaded files to the portfolio of the user named
// by the X-Username header and updates the description when one is sent.
func UploadPortfolio(ctx iris.Context) {
	username := ctx.GetHeader("X-Username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	// FormValue parses the multipart body as a side effect; the description
	// stays untouched when the field was not sent at all.
	d := ctx.FormValue("description")
	var description *string
	if form := ctx.Request().MultipartForm; form != nil {
		if _, sent := form.Value["description"]; sent {
			description = &d
		}
	}

	items := []models.PortfolioItem{}
	if form := ctx.Request().MultipartForm; form != nil {
		for _, fh := range form.File["files"] {
			if !utils.AllowedImageFile(fh) {
				ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Only images are allowed"})
				return
			}
			name := utils.UploadFilename("files", fh.Filename)
			if _, err := ctx.SaveFormFile(fh, filepath.Join(settings.UploadsDir, name)); err != nil {
				ctx.Application().Logger().Errorf("saving portfolio upload: %v", err)
				utils.CreateInternalServerError(ctx)
				return
			}
			items = append(items, models.PortfolioItem{
				Type:         "file",
				Filename:     name,
				OriginalName: fh.Filename,
				MimeType:     fh.Header.Get("Content-Type"),
				URL:          "/uploads/" + name,
			})
		}
	}

	storage.Portfolios.Upsert(username, description, items)
	ctx.JSON(iris.Map{"message": "Portfolio updated successfully"})
}
