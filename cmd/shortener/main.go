package main

import (
	"log"

	"github.com/avc-dev/linkboard/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
