package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire and export representation of every stored date.
const DateLayout = "2006-01-02"

// CalendarDate drops the clock part of t, keeping the calendar day t falls on
// in its own location.
func CalendarDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// FormatDate renders d as YYYY-MM-DD. The zero date renders as "".
func FormatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
