package main

import (
	"os"

	"github.com/andywolf/skillseed/internal/cli"
	"github.com/andywolf/skillseed/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
