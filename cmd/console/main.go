package main

import (
	"consultas/cmd/internal/bootstrap"
	"consultas/cmd/internal/cli"
	"os"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cli.NewRootCommand(bootstrap.OpenStore).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
