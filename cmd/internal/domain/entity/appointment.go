package entity

import (
	"consultas/cmd/internal/utils"
	"encoding/json"
)

// Appointment is one scheduled consultation. Records are never edited,
// only created and removed.
type Appointment struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	IdentifierNumber string `json:"identifierNumber"`
	Specialty        string `json:"specialty"`
	Date             string `json:"date"` // YYYY-MM-DD
	Time             string `json:"time"`
	CreatedAt        int64  `json:"createdAt"` // epoch millis, UTC
}

// UnmarshalJSON also understands blobs written by the browser version of
// the scheduler, which used "cpf" and an ISO "timestamp".
func (a *Appointment) UnmarshalJSON(data []byte) error {
	type plain Appointment
	var aux struct {
		plain
		CPF       *string `json:"cpf"`
		Timestamp *string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*a = Appointment(aux.plain)
	if a.IdentifierNumber == "" && aux.CPF != nil {
		a.IdentifierNumber = *aux.CPF
	}
	if a.CreatedAt == 0 && aux.Timestamp != nil {
		millis, err := utils.FromEpoch(*aux.Timestamp)
		if err != nil {
			return err
		}
		a.CreatedAt = millis
	}
	return nil
}
