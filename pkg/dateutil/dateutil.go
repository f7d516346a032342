package dateutil

import (
	"time"
)

// Age calculates the age in whole years at a given date.
// A February 29 birthday is reached on March 1 in non-leap years.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DateOnly strips the clock from t, keeping its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
