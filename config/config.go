package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings holds everything configurable through the environment.
type Settings struct {
	Port           string `envconfig:"PORT" default:"3000"`
	DataDir        string `envconfig:"DATA_DIR" default:"data"`
	UploadsDir     string `envconfig:"UPLOADS_DIR" default:"uploads"`
	WallpaperDir   string `envconfig:"WALLPAPER_DIR" default:"wallpaper"`
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file"` // file, memory, badger
}

// Load reads .env in development and populates Settings from the
// environment.
func Load() Settings {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		log.Panic("error reading configuration: " + err.Error())
	}
	return s
}
