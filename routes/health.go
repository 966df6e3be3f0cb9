package routes

import (
	"time"

	"github.com/kataras/iris/v12"
)

// Health answers the platform healthcheck.
func Health(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      settings.Port,
	})
}
