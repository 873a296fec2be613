package model

import (
	"slices"
	"time"
)

// Weekdays lists the days in the order they are rendered, starting on Monday
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Position of the day within Weekdays
func dayOrder(day time.Weekday) int {
	return (int(day) + 6) % 7
}

func compareDays(a, b time.Weekday) int {
	return dayOrder(a) - dayOrder(b)
}

func sortDays(days []time.Weekday) {
	slices.SortFunc(days, compareDays)
}
