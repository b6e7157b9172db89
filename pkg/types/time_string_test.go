package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "24h with leading zero", input: "09:30", want: 570, wantOK: true},
		{name: "24h single digit hour", input: "9:05", want: 545, wantOK: true},
		{name: "midnight", input: "00:00", want: 0, wantOK: true},
		{name: "last minute of day", input: "23:59", want: 1439, wantOK: true},
		{name: "12h pm", input: "2:30 PM", want: 870, wantOK: true},
		{name: "12h lower case suffix", input: "02:30 pm", want: 870, wantOK: true},
		{name: "12h no space", input: "11:15AM", want: 675, wantOK: true},
		{name: "12 am is midnight", input: "12:00 AM", want: 0, wantOK: true},
		{name: "12 pm stays noon", input: "12:45 PM", want: 765, wantOK: true},
		{name: "surrounding whitespace", input: "  10:00  ", want: 600, wantOK: true},
		{name: "rfc3339 timestamp", input: "2024-03-01T14:20:00Z", want: 860, wantOK: true},
		{name: "local timestamp", input: "2024-03-01T08:05", want: 485, wantOK: true},
		{name: "garbage", input: "garbage", wantOK: false},
		{name: "written date with time", input: "March 1, 2024 14:20", want: 860, wantOK: true},
		{name: "relative phrase", input: "in 2 hours", wantOK: false},
		{name: "bare number", input: "5", wantOK: false},
		{name: "time without date", input: "5 o'clock", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "blank", input: "   ", wantOK: false},
		{name: "hour out of range", input: "25:00", wantOK: false},
		{name: "minute out of range", input: "10:75", wantOK: false},
		{name: "12h hour zero", input: "0:30 PM", wantOK: false},
		{name: "12h hour thirteen", input: "13:00 PM", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTimeString(t *testing.T) {
	ts, err := NewTimeStringFromString("2:05 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:05"), ts)
	assert.Equal(t, 845, ts.Minutes())

	_, err = NewTimeStringFromString("nope")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.Equal(t, -1, TimeString("bad").Minutes())
	assert.True(t, TimeString("").IsZero())
}
