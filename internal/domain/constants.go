package domain

// Рабочее окно, относительно которого считается загруженность дня.
// Не зависит от реальных часов работы площадки.
const (
	WorkStartMinutes = 9 * 60  // 09:00
	WorkEndMinutes   = 17 * 60 // 17:00
	WorkSpanMinutes  = WorkEndMinutes - WorkStartMinutes

	MaxPercentFull = 100
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// Границы параметров календаря
const (
	MinCalendarYear  = 1
	MaxCalendarYear  = 9999
	MinCalendarMonth = 1
	MaxCalendarMonth = 12
)

// Параметры печатного календаря
const (
	DefaultExportPerCell = 2
	MaxExportPerCell     = 10

	// DepartmentLabelMaxLength названия длиннее сокращаются до аббревиатуры
	DepartmentLabelMaxLength = 20
	DefaultDepartmentLabel   = "GEN"
)

// Значения по умолчанию для отображения
const (
	FullDayLabel         = "Full day"
	UntitledBookingTitle = "Untitled Seminar"
	UntitledExportTitle  = "Event"
	SyntheticKeyPrefix   = "idx-"
)

// CountedStatuses статусы, которые учитываются в загруженности
var CountedStatuses = []BookingStatus{
	StatusApproved,
}

// KnownStatuses все известные статусы бронирования
var KnownStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelRequested,
	StatusCancelled,
}
