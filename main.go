package main

import (
	"fmt"
	"log"
	"os"

	"github.com/EgyRem/advan/config"
	"github.com/EgyRem/advan/routes"
	"github.com/EgyRem/advan/storage"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func main() {
	settings := config.Load()

	// Initialize services
	storage.Initialize(storage.InitializeBackend(settings.StorageBackend, settings.DataDir))
	routes.Configure(settings)

	for _, dir := range []string{settings.UploadsDir, settings.WallpaperDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Panic("error creating directory " + dir + ": " + err.Error())
		}
	}

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With, X-Username")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression plus the global upload cap
	app.Use(iris.Compression)
	app.Use(iris.LimitRequestBodySize(64 << 20))

	// Health check endpoint
	app.Get("/", routes.Health)

	// Account routes
	app.Post("/register", routes.Register)
	app.Post("/login", routes.Login)
	app.Post("/logout", routes.Logout)
	app.Get("/users", routes.ListUsers)
	app.Post("/delete-account", routes.DeleteAccount)

	// Wallpaper routes
	app.Post("/upload-wallpaper", routes.UploadWallpaper)
	app.Get("/wallpaper", routes.GetWallpaper)
	app.Get("/wallpapers", routes.ListWallpapers)
	app.Post("/set-wallpaper", routes.SetWallpaper)
	app.Post("/delete-wallpaper", routes.DeleteWallpaper)

	// Photo gallery routes
	app.Post("/upload-photo", routes.UploadPhoto)
	app.Get("/photos", routes.ListPhotos)

	api := app.Party("/api")
	{
		api.Post("/add-user", routes.AddUser)

		api.Get("/chats/{username}", routes.GetChats)
		api.Get("/messages", routes.GetMessages)
		api.Post("/messages", routes.SendMessage)
		api.Post("/messages/read", routes.MarkMessagesRead)

		api.Get("/portfolio", routes.GetPortfolio)
		api.Get("/portfolio/files", routes.GetPortfolioFiles)
		api.Post("/portfolio/upload", routes.UploadPortfolio)

		api.Get("/profile", routes.GetProfile)
		api.Post("/update-profile", routes.UpdateProfile)
		api.Post("/update-profile-photo", routes.UpdateProfilePhoto)
	}

	// Uploaded files are served directly
	app.HandleDir("/uploads", iris.Dir(settings.UploadsDir))
	app.HandleDir("/wallpaper", iris.Dir(settings.WallpaperDir))

	addr := ":" + settings.Port
	fmt.Println("🚀 Starting server on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
