package main

import (
	"consultas/cmd/internal/bootstrap"
	"consultas/cmd/internal/config"
	"consultas/cmd/internal/console"
	"consultas/cmd/internal/routes"
	"consultas/cmd/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel)

	store, closeStore, err := bootstrap.OpenStore(cfg)
	if err != nil {
		log.Fatal("failed to open appointment store: ", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Errorf("failed to close storage: %v", err)
		}
	}()

	validate := service.NewValidator()
	apptService := service.NewAppointmentService(store, validate)

	apptRoutes := routes.NewAppointmentDefault(apptService)
	consoleRoutes := routes.NewConsoleDefault(console.NewInterpreter(store))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.Register(e, apptRoutes, consoleRoutes)

	err = e.Start(cfg.ListenAddr)
	if err != nil {
		e.Logger.Fatal(err)
	}
}
