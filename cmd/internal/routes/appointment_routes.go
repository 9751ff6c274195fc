package routes

import (
	"consultas/cmd/internal/service"
	"consultas/cmd/internal/utils/apierror"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAppointments() []*service.AppointmentResponse
	SearchAppointments(term string) []*service.AppointmentResponse
	CreateAppointment(req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	CancelAppointment(id int64) (*service.AppointmentResponse, apierror.ErrorResponse)
	GetStats() *service.StatsResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

// GetAppointments lists appointments nearest date first, or the ones
// matching ?q= in scheduling order.
func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	var appts []*service.AppointmentResponse
	if term := strings.TrimSpace(c.QueryParam("q")); term != "" {
		appts = a.AppointmentService.SearchAppointments(term)
	} else {
		appts = a.AppointmentService.GetAppointments()
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errResp := apierror.NewInvalidParamTypeError("id", "int64")
		return c.JSON(errResp.Code(), errResp)
	}

	appt, apierr := a.AppointmentService.CancelAppointment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, a.AppointmentService.GetStats())
}
