package routes

import (
	"consultas/cmd/internal/console"
	"consultas/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CommandRequest struct {
	Command string `json:"command"`
}

type ConsoleInterpreter interface {
	Execute(input string) console.Response
}

type DefaultConsoleRoute struct {
	Interpreter ConsoleInterpreter
}

func NewConsoleDefault(interp ConsoleInterpreter) *DefaultConsoleRoute {
	return &DefaultConsoleRoute{Interpreter: interp}
}

func (r *DefaultConsoleRoute) ExecuteCommand(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp := r.Interpreter.Execute(req.Command)
	if resp.Lines == nil {
		resp.Lines = []console.Line{}
	}
	return c.JSON(http.StatusOK, resp)
}
