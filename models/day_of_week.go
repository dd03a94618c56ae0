package models

import (
	"sort"
	"strings"
)

// DayOfWeek is the weekday key of an opening hour, stored lowercase as submitted by clients.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var weekOrder = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDayOfWeek accepts only the exact lowercase english weekday names.
func ParseDayOfWeek(raw string) (DayOfWeek, bool) {
	for _, d := range weekOrder {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}

// Index returns the position of the day in a monday-first week, or -1.
func (d DayOfWeek) Index() int {
	for i, w := range weekOrder {
		if w == d {
			return i
		}
	}
	return -1
}

// Days lists the weekdays monday first.
func Days() []DayOfWeek {
	out := make([]DayOfWeek, len(weekOrder))
	copy(out, weekOrder)
	return out
}

// SortOpeningHours orders hours monday first.
func SortOpeningHours(hours []OpeningHour) {
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].DayOfWeek.Index() < hours[j].DayOfWeek.Index()
	})
}

// ClockHHMM trims the seconds Postgres appends to time columns ("18:00:00" -> "18:00").
func ClockHHMM(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 5 && value[5] == ':' {
		return value[:5]
	}
	return value
}
