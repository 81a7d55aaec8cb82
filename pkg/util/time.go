package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	// MonthFormat is the month key used by upstream monthly series.
	MonthFormat = "2006-01"
)

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

func Now() time.Time {
	return time.Now().In(GetDefaultTimezone())
}

func GetDefaultTimezone() *time.Location {
	localTimeZone, _ := time.LoadLocation("Local")
	return localTimeZone
}
