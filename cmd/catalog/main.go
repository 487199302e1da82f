package main

import (
	"os"

	"github.com/playstack/video-catalog/internal/app"
)

func main() {
	os.Exit(app.Run("catalog", run))
}
