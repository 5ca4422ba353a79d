package main

import (
	"os"

	"github.com/civilapp/user-management/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
