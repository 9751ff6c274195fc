package service

import (
	"consultas/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppointment(t *testing.T) {
	validate := NewValidator()

	tests := []struct {
		name string
		req  AppointmentRequest
		want apierror.ErrorResponse
	}{
		{
			name: "valid with punctuation",
			req:  AppointmentRequest{"João", "111.222.333-44", "Cardio", "2024-01-01", "10:00"},
		},
		{
			name: "missing name",
			req:  AppointmentRequest{"", "123", "Cardio", "2024-01-01", "10:00"},
			want: apierror.MissingFieldError,
		},
		{
			name: "blank time",
			req:  AppointmentRequest{"João", "11122233344", "Cardio", "2024-01-01", "   "},
			want: apierror.MissingFieldError,
		},
		{
			name: "missing identifier",
			req:  AppointmentRequest{"João", "", "Cardio", "2024-01-01", "10:00"},
			want: apierror.MissingFieldError,
		},
		{
			name: "short identifier",
			req:  AppointmentRequest{"João", "123", "Cardio", "2024-01-01", "10:00"},
			want: apierror.InvalidIdentifierError,
		},
		{
			name: "ten digits",
			req:  AppointmentRequest{"João", "111.222.333-4", "Cardio", "2024-01-01", "10:00"},
			want: apierror.InvalidIdentifierError,
		},
		{
			name: "twelve digits",
			req:  AppointmentRequest{"João", "111222333445", "Cardio", "2024-01-01", "10:00"},
			want: apierror.InvalidIdentifierError,
		},
		{
			name: "past dates are not checked",
			req:  AppointmentRequest{"João", "11122233344", "Cardio", "1999-01-01", "25:99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			got := ValidateAppointment(validate, &req)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAppointment_TrimsInPlace(t *testing.T) {
	req := &AppointmentRequest{"  João ", " 11122233344", "Cardio ", "2024-01-01", "10:00 "}
	assert.Nil(t, ValidateAppointment(NewValidator(), req))
	assert.Equal(t, "João", req.Name)
	assert.Equal(t, "Cardio", req.Specialty)
	assert.Equal(t, "10:00", req.Time)
}
