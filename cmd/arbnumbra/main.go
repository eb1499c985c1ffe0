package main

import (
	"os"

	"github.com/bgorlick/arbnumbra/cmd/arbnumbra/app"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
