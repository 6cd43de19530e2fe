package main

import (
	"os"

	"github.com/dgallion1/aidemo/cmd/aidemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
