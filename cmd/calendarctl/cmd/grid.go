package cmd

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	getMonthCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_month_calendar"
	getMonthCalendarUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_month_calendar"
)

var (
	gridVenue      string
	gridDepartment string
	gridYear       int
	gridMonth      int

	gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Print the month occupancy grid as JSON",
		Long: `Print the month occupancy grid: leading blanks for the first week
followed by one cell per day with its bookings and occupancy.

Examples:
  calendarctl grid --file bookings.json --venue "Hall A" --year 2024 --month 2
  calendarctl grid --api http://localhost:8081 --department CSE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer env.log.Close()

			year, month, err := resolveMonth(gridYear, gridMonth, time.Now())
			if err != nil {
				return err
			}

			return runGrid(cmd.Context(), env, &getMonthCalendarUC.Request{
				Year:       year,
				Month:      month,
				Venue:      gridVenue,
				Department: gridDepartment,
			}, cmd.OutOrStdout())
		},
	}
)

func init() {
	gridCmd.Flags().StringVar(&gridVenue, "venue", "", "venue name or ID (all venues if empty)")
	gridCmd.Flags().StringVar(&gridDepartment, "department", "", "department filter")
	gridCmd.Flags().IntVar(&gridYear, "year", 0, "calendar year (current if omitted)")
	gridCmd.Flags().IntVar(&gridMonth, "month", 0, "calendar month 1-12 (current if omitted)")
}

func runGrid(ctx context.Context, env *environment, req *getMonthCalendarUC.Request, out io.Writer) error {
	uc := getMonthCalendarUC.NewUseCase(env.bookings, nil, env.log)

	resp, err := uc.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, getMonthCalendarUC.ErrInvalidParameters) {
			return &usageError{err: err}
		}
		return err
	}

	return writeJSON(out, getMonthCalendarHandler.FromUseCaseResponse(resp))
}
