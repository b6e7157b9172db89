package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitFailure      = 1
	exitInvalidUsage = 2
)

var (
	// Global flags
	configPath string
	logLevel   string
	filePath   string
	apiURL     string

	rootCmd = &cobra.Command{
		Use:   "calendarctl",
		Short: "Venue calendar builder - occupancy grids and printable exports",
		Long: `calendarctl builds venue occupancy calendars from booking records.

Bookings are read either from a JSON dump of the hall service
(--file, a bare array or {"seminars": [...]}) or from the hall service itself
(--api, or hall_service.url from --config). Results are printed as JSON to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// usageError ошибка параметров командной строки, завершает процесс с кодом 2
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var usage *usageError
		if errors.As(err, &usage) {
			os.Exit(exitInvalidUsage)
		}
		os.Exit(exitFailure)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (hall_service section is used with --api)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "JSON dump with booking records")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "hall service base URL, overrides hall_service.url")

	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(exportCmd)
}
