package domain

import (
	"errors"
	"fmt"
	"time"
)

// BookingPolicy carries the calendar eligibility knobs. A single policy is
// enforced uniformly across every booking flow.
type BookingPolicy struct {
	// LookaheadDays bounds how far past today a date may be booked.
	LookaheadDays int
	// FirstSlotHour and LastSlotHour bound the fixed on-the-hour slot list,
	// both inclusive.
	FirstSlotHour int
	LastSlotHour  int
	// DisclosureWindow is how long after the scheduled instant interview
	// questions stay readable.
	DisclosureWindow time.Duration
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		LookaheadDays:    14,
		FirstSlotHour:    9,
		LastSlotHour:     18,
		DisclosureWindow: 30 * time.Minute,
	}
}

// CivilDate normalizes t to its calendar date, expressed at midnight UTC so
// that dates from different zones compare at day granularity.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDateDisabled reports whether target may not be booked given today.
// Past dates and weekends are always rejected; dates beyond the look-ahead
// bound are rejected when the bound is positive.
func IsDateDisabled(today, target time.Time, p BookingPolicy) bool {
	d := CivilDate(target)
	t := CivilDate(today)
	if d.Before(t) {
		return true
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	if p.LookaheadDays > 0 && d.After(t.AddDate(0, 0, p.LookaheadDays)) {
		return true
	}
	return false
}

// Slot is one selectable time-of-day on a given date.
type Slot struct {
	Time     string `json:"time"` // "15:04"
	Hour     int    `json:"-"`
	Disabled bool   `json:"disabled"`
}

// DaySlots expands the fixed slot list for date. When date is today in now's
// location, slots whose time-of-day has already passed are disabled.
func DaySlots(now, date time.Time, p BookingPolicy) []Slot {
	sameDay := CivilDate(now).Equal(CivilDate(date))
	out := make([]Slot, 0, p.LastSlotHour-p.FirstSlotHour+1)
	for h := p.FirstSlotHour; h <= p.LastSlotHour; h++ {
		disabled := sameDay && now.Hour() >= h
		out = append(out, Slot{
			Time:     fmt.Sprintf("%02d:00", h),
			Hour:     h,
			Disabled: disabled,
		})
	}
	return out
}

// SlotHour validates an "HH:MM" value against the fixed slot list and
// returns its hour. Only on-the-hour values inside the policy bounds are
// accepted.
func SlotHour(value string, p BookingPolicy) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, errors.New("invalid time")
	}
	if t.Minute() != 0 || t.Hour() < p.FirstSlotHour || t.Hour() > p.LastSlotHour {
		return 0, errors.New("time is not a selectable slot")
	}
	return t.Hour(), nil
}

// MonthGrid returns the Monday-aligned grid of calendar dates covering the
// given month, padded with leading and trailing days so every row is a whole
// week. The result length is always a multiple of 7.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := mondayOf(first)
	end := mondayOf(last).AddDate(0, 0, 7)

	days := int(end.Sub(start) / (24 * time.Hour))
	out := make([]time.Time, 0, days)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func mondayOf(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return CivilDate(t).AddDate(0, 0, -offset)
}

// ComposeInstant interprets the (date, "HH:MM") wall clock in the named zone
// and converts it to the UTC reference instant used for storage.
func ComposeInstant(date time.Time, hour int, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, errors.New("invalid timezone")
	}
	local := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, loc)
	return local.UTC(), nil
}
