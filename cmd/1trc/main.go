package main

import (
	"github.com/glentner/1trc/internal/builder/app"
)

var (
	version string
)

func main() {
	application := app.NewApp(version)
	application.Run()
}
