package cmd

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	exportCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/export_calendar"
	exportCalendarUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_calendar"
)

var (
	exportVenue   string
	exportYear    int
	exportMonth   int
	exportPerCell int

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Print the printable month calendar of a venue as JSON",
		Long: `Print the printable month calendar of one venue. Each day cell carries
at most --per-cell approved bookings; the rest go to the overflow list.

Examples:
  calendarctl export --file bookings.json --venue "Hall A" --year 2024 --month 2
  calendarctl export --config config.toml --venue 42 --per-cell 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.log.Close()

			year, month, err := resolveMonth(exportYear, exportMonth, time.Now())
			if err != nil {
				return err
			}

			return runExport(cmd.Context(), env, &exportCalendarUC.Request{
				Year:    year,
				Month:   month,
				Venue:   exportVenue,
				PerCell: exportPerCell,
			}, cmd.OutOrStdout())
		},
	}
)

func init() {
	exportCmd.Flags().StringVar(&exportVenue, "venue", "", "venue name or ID (required)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "calendar year (current if omitted)")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "calendar month 1-12 (current if omitted)")
	exportCmd.Flags().IntVar(&exportPerCell, "per-cell", 0, "bookings per day cell, 0 uses calendar.export_per_cell")
}

func runExport(ctx context.Context, env *environment, req *exportCalendarUC.Request, out io.Writer) error {
	uc := exportCalendarUC.NewUseCase(env.bookings, env.defaultPerCell, nil, env.log)

	resp, err := uc.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, exportCalendarUC.ErrInvalidParameters) || errors.Is(err, exportCalendarUC.ErrVenueNotFound) {
			return &usageError{err: err}
		}
		return err
	}

	return writeJSON(out, exportCalendarHandler.FromUseCaseResponse(resp))
}
