package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/config"
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/file"
	hallServiceClient "github.com/m04kA/SMC-VenueCalendar/internal/integrations/hallservice"
	bookingsService "github.com/m04kA/SMC-VenueCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

const (
	sourceFile = "file"

	envHallServiceToken = "HALL_SERVICE_TOKEN"
	defaultAPITimeout   = 10 * time.Second
)

var errNoSource = errors.New("one of --file, --api or --config is required")

// environment источник бронирований и настройки для команд
type environment struct {
	log            *logger.Logger
	bookings       *bookingsService.Service
	defaultPerCell int
}

// newEnvironment собирает сервис бронирований по глобальным флагам.
// --file важнее --api, --api важнее hall_service.url из конфигурации.
func newEnvironment() (*environment, error) {
	log, err := logger.NewWithWriter(os.Stderr, logLevel)
	if err != nil {
		return nil, &usageError{err: err}
	}

	env := &environment{
		log:            log,
		defaultPerCell: domain.DefaultExportPerCell,
	}

	var (
		source     bookingsService.Source
		sourceName string
	)

	switch {
	case filePath != "":
		source, sourceName = file.NewSource(filePath), sourceFile
	case configPath != "":
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		url := cfg.HallService.URL
		if apiURL != "" {
			url = apiURL
		}
		env.defaultPerCell = cfg.Calendar.ExportPerCell
		source = hallServiceClient.NewClient(url, cfg.HallService.Token, time.Duration(cfg.HallService.Timeout)*time.Second, log)
		sourceName = config.SourceAPI
	case apiURL != "":
		source = hallServiceClient.NewClient(apiURL, os.Getenv(envHallServiceToken), defaultAPITimeout, log)
		sourceName = config.SourceAPI
	default:
		return nil, &usageError{err: errNoSource}
	}

	adapter := ingest.NewAdapter(log, nil)
	env.bookings = bookingsService.NewService(source, sourceName, adapter, nil, log)

	log.Debug("calendarctl: source=%s", sourceName)
	return env, nil
}

// resolveMonth без --year и --month берёт текущий месяц; одного из них недостаточно
func resolveMonth(year, month int, now time.Time) (int, int, error) {
	switch {
	case year == 0 && month == 0:
		return now.Year(), int(now.Month()), nil
	case year == 0 || month == 0:
		return 0, 0, &usageError{err: fmt.Errorf("--year and --month must be given together")}
	default:
		return year, month, nil
	}
}
