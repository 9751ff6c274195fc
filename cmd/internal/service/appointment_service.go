package service

import (
	"consultas/cmd/internal/domain/entity"
	"consultas/cmd/internal/utils"
	"consultas/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	IdentifierNumber string `json:"identifier_number"`
	Specialty        string `json:"specialty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	CreatedAt        string `json:"created_at"`

	// Display forms, as shown in the appointment list.
	DisplayIdentifier string `json:"display_identifier"`
	DisplayDate       string `json:"display_date"`
	DisplayCreatedAt  string `json:"display_created_at"`
}

type StatsResponse struct {
	Total       int              `json:"total"`
	Specialties []SpecialtyCount `json:"specialties"`
}

type DefaultAppointmentService struct {
	Store    *AppointmentStore
	Validate *validator.Validate
}

func NewAppointmentService(store *AppointmentStore, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{Store: store, Validate: validate}
}

// GetAppointments lists every appointment, nearest date first.
func (a *DefaultAppointmentService) GetAppointments() []*AppointmentResponse {
	return toAppointmentResponses(a.Store.SortedByDate())
}

// SearchAppointments keeps the order in which appointments were scheduled.
func (a *DefaultAppointmentService) SearchAppointments(term string) []*AppointmentResponse {
	return toAppointmentResponses(a.Store.Filter(term))
}

func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	if apierr := ValidateAppointment(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	appt, err := a.Store.Add(req)
	if err != nil {
		log.Errorf("failed to save appointment for %s: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}

	log.Infof("appointment %d scheduled: %s for %s on %s at %s", appt.ID, appt.Specialty, appt.Name, appt.Date, appt.Time)
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) CancelAppointment(id int64) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, found, err := a.Store.RemoveByID(id)
	if err != nil {
		log.Errorf("failed to cancel appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if !found {
		return nil, apierror.NotFoundError
	}

	log.Infof("appointment %d cancelled: %s for %s", appt.ID, appt.Specialty, appt.Name)
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) GetStats() *StatsResponse {
	counts := a.Store.CountBySpecialty()
	if counts == nil {
		counts = []SpecialtyCount{}
	}
	return &StatsResponse{Total: TotalCount(counts), Specialties: counts}
}

func toAppointmentResponses(appts []entity.Appointment) []*AppointmentResponse {
	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response
}

func toAppointmentResponse(appt entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                appt.ID,
		Name:              appt.Name,
		IdentifierNumber:  appt.IdentifierNumber,
		Specialty:         appt.Specialty,
		Date:              appt.Date,
		Time:              appt.Time,
		CreatedAt:         utils.FormatEpoch(appt.CreatedAt),
		DisplayIdentifier: utils.FormatIdentifier(appt.IdentifierNumber),
		DisplayDate:       utils.FormatDate(appt.Date),
		DisplayCreatedAt:  utils.FormatDateTime(appt.CreatedAt),
	}
}
