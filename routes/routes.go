package routes

import "github.com/EgyRem/advan/config"

var settings config.Settings

// Configure hands the loaded settings to the handlers (upload directories,
// port for the health endpoint).
func Configure(s config.Settings) {
	settings = s
}
