package main

import (
	"log"

	"github.com/jsundh/regidi/cmd/regidi/app"
)

func main() {
	err := app.New().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
