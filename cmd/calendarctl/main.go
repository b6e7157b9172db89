package main

import "github.com/m04kA/SMC-VenueCalendar/cmd/calendarctl/cmd"

func main() {
	cmd.Execute()
}
