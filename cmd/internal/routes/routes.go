package routes

import "github.com/labstack/echo/v4"

func Register(e *echo.Echo, apptRoutes *DefaultAppointmentRoute, consoleRoutes *DefaultConsoleRoute) {
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.DELETE("/api/appointments/:id", apptRoutes.DeleteAppointment)
	e.GET("/api/stats", apptRoutes.GetStats)

	e.POST("/api/console", consoleRoutes.ExecuteCommand)
}
