package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/EgyRem/advan/models"
	"github.com/EgyRem/advan/storage"
	"github.com/EgyRem/advan/utils"
	"github.com/kataras/iris/v12"
)

// Register creates a member account from the signup form. The profile photo
// part is optional.
func Register(ctx iris.Context) {
	username := ctx.FormValue("new_username")
	password := ctx.FormValue("new_password")
	confirm := ctx.FormValue("confirm_password")

	if password != confirm {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Passwords do not match"})
		return
	}

	photo, ok := saveProfilePhoto(ctx)
	if !ok {
		return
	}

	user := models.User{
		Username:     username,
		Password:     password,
		ProfilePhoto: photo,
		CreatedAt:    time.Now().UTC(),
		Role:         models.RoleMember,
	}
	if !storage.Users.Create(user) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username already exists"})
		return
	}

	ctx.JSON(iris.Map{"message": "Account created successfully"})
}

// AddUser lets the dashboard create accounts with an explicit role. Only an
// existing admin may add another admin.
func AddUser(ctx iris.Context) {
	username := ctx.FormValue("username")
	password := ctx.FormValue("password")
	confirm := ctx.FormValue("confirm_password")
	role := ctx.FormValue("role")
	addedBy := ctx.FormValue("added_by")

	if username == "" || password == "" || confirm == "" || role == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "All fields are required"})
		return
	}
	if password != confirm {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Passwords do not match"})
		return
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Invalid role"})
		return
	}
	if role == models.RoleAdmin {
		adder, ok := storage.Users.FindByUsername(addedBy)
		if !ok || adder.Role != models.RoleAdmin {
			ctx.StopWithJSON(http.StatusForbidden, iris.Map{"message": "Only admins can add admins"})
			return
		}
	}

	photo, ok := saveProfilePhoto(ctx)
	if !ok {
		return
	}

	user := models.User{
		Username:     username,
		Password:     password,
		ProfilePhoto: photo,
		CreatedAt:    time.Now().UTC(),
		Role:         role,
	}
	if !storage.Users.Create(user) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username already exists"})
		return
	}

	ctx.JSON(iris.Map{"message": "User added successfully"})
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login compares the credentials in full against the stored record; there is
// no session, every call re-authenticates.
func Login(ctx iris.Context) {
	var input loginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, ok := storage.Users.Authenticate(input.Username, input.Password)
	if !ok {
		ctx.StopWithJSON(http.StatusUnauthorized, iris.Map{"message": "Incorrect username or password"})
		return
	}

	user, _ = storage.Users.TouchLogin(user.Username)
	ctx.Application().Logger().Infof("login user: %s role: %s", user.Username, user.Role)
	ctx.JSON(iris.Map{"message": "Login successful", "user": user})
}

type logoutInput struct {
	Username string `json:"username" validate:"required"`
}

// Logout only stamps lastLogout; nothing is invalidated.
func Logout(ctx iris.Context) {
	var input logoutInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !storage.Users.TouchLogout(input.Username) {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "User not found"})
		return
	}
	ctx.JSON(iris.Map{"message": "Logout successful"})
}

// ListUsers returns the whole user collection for the dashboard.
func ListUsers(ctx iris.Context) {
	ctx.JSON(storage.Users.List())
}

type deleteAccountInput struct {
	Username string `json:"username" validate:"required"`
}

// DeleteAccount removes the user and their profile photo file.
func DeleteAccount(ctx iris.Context) {
	var input deleteAccountInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, ok := storage.Users.Delete(input.Username)
	if !ok {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "User not found"})
		return
	}
	if user.ProfilePhoto != nil && *user.ProfilePhoto != "" {
		if err := os.Remove(filepath.Join(settings.UploadsDir, *user.ProfilePhoto)); err != nil && !os.IsNotExist(err) {
			ctx.Application().Logger().Warnf("removing profile photo: %v", err)
		}
	}
	ctx.JSON(iris.Map{"message": "Account deleted successfully"})
}

// GetProfile returns the contact links shown on the profile page.
func GetProfile(ctx iris.Context) {
	username := ctx.URLParam("username")
	if username == "" {
		username = ctx.GetHeader("X-Username")
	}
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	user, ok := storage.Users.FindByUsername(username)
	if !ok {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "User not found"})
		return
	}
	ctx.JSON(iris.Map{"whatsapp": user.Whatsapp, "instagram": user.Instagram})
}

type updateProfileInput struct {
	Whatsapp  *string `json:"whatsapp"`
	Instagram *string `json:"instagram"`
}

// UpdateProfile replaces the contact links for the user named by the
// X-Username header.
func UpdateProfile(ctx iris.Context) {
	username := ctx.GetHeader("X-Username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	var input updateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	ok := storage.Users.Update(username, func(u *models.User) {
		u.Whatsapp = input.Whatsapp
		u.Instagram = input.Instagram
	})
	if !ok {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "User not found"})
		return
	}
	ctx.JSON(iris.Map{"message": "Profile updated successfully"})
}

// UpdateProfilePhoto swaps the user's photo, deleting the previous file.
func UpdateProfilePhoto(ctx iris.Context) {
	username := ctx.GetHeader("X-Username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Username required"})
		return
	}

	user, ok := storage.Users.FindByUsername(username)
	if !ok {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"message": "User not found"})
		return
	}

	photo, ok := saveProfilePhoto(ctx)
	if !ok {
		return
	}
	if photo == nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Photo file is required"})
		return
	}

	if user.ProfilePhoto != nil && *user.ProfilePhoto != "" {
		if err := os.Remove(filepath.Join(settings.UploadsDir, *user.ProfilePhoto)); err != nil && !os.IsNotExist(err) {
			ctx.Application().Logger().Warnf("removing old profile photo: %v", err)
		}
	}
	storage.Users.Update(username, func(u *models.User) {
		u.ProfilePhoto = photo
	})
	ctx.JSON(iris.Map{"message": "Profile photo updated successfully", "profile_photo": *photo})
}

// saveProfilePhoto stores an optional profile_photo part and returns the
// stored filename. A false second return means the request was already
// rejected.
func saveProfilePhoto(ctx iris.Context) (*string, bool) {
	file, fh, err := ctx.FormFile("profile_photo")
	if err != nil {
		return nil, true // no photo part, still fine
	}
	file.Close()

	if !utils.AllowedImageFile(fh) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "Only images are allowed"})
		return nil, false
	}
	if fh.Size > utils.MaxPhotoSize {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"message": "File too large"})
		return nil, false
	}

	name := utils.UploadFilename("profile_photo", fh.Filename)
	if _, err := ctx.SaveFormFile(fh, filepath.Join(settings.UploadsDir, name)); err != nil {
		ctx.Application().Logger().Errorf("saving profile photo: %v", err)
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	return &name, true
}
