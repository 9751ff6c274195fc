package cli

import (
	"consultas/cmd/internal/service"
	"consultas/cmd/internal/utils/apierror"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func NewCancelCommand(root *RootOptions, open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return apierror.NewInvalidParamTypeError("id", "int64")
			}

			return withStore(root, open, func(store *service.AppointmentStore) error {
				svc := service.NewAppointmentService(store, service.NewValidator())
				appt, apierr := svc.CancelAppointment(id)
				out := cmd.OutOrStdout()
				switch {
				case apierr != nil && apierr.Kind() == apierror.NotFound:
					_, err := fmt.Fprintf(out, "Appointment %d not found\n", id)
					return err
				case apierr != nil:
					return apierr
				}
				_, err := fmt.Fprintf(out, "Appointment cancelled: %s for %s\n", appt.Specialty, appt.Name)
				return err
			})
		},
	}
}
