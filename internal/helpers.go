package internal

import "time"

const (
	formatDDMMYYYY     = "02.01.2006"
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

func FormatWithTime(date time.Time) string {
	return date.Format(formatDDMMYYYYHHMM)
}
