package services

import "time"

const dayLayout = "2006-01-02"

// DateString formats a moment as its local calendar day. Day keys sort
// lexicographically in chronological order.
func DateString(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(dayLayout)
}

func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayLayout, value)
}

func IsValidDay(value string) bool {
	_, err := ParseDay(value)
	return err == nil
}
