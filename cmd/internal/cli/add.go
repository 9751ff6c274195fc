package cli

import (
	"consultas/cmd/internal/service"
	"consultas/cmd/internal/utils"
	"fmt"

	"github.com/spf13/cobra"
)

func NewAddCommand(root *RootOptions, open StoreOpener) *cobra.Command {
	req := &service.AppointmentRequest{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(root, open, func(store *service.AppointmentStore) error {
				svc := service.NewAppointmentService(store, service.NewValidator())
				appt, apierr := svc.CreateAppointment(req)
				if apierr != nil {
					return apierr
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Appointment scheduled: %s for %s on %s at %s (id %d)\n",
					appt.Specialty, appt.Name, utils.FormatDate(appt.Date), appt.Time, appt.ID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "patient name")
	cmd.Flags().StringVar(&req.IdentifierNumber, "id-number", "", "patient identifier number (11 digits)")
	cmd.Flags().StringVar(&req.Specialty, "specialty", "", "medical specialty")
	cmd.Flags().StringVar(&req.Date, "date", "", "appointment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Time, "time", "", "appointment time (HH:MM)")

	return cmd
}
