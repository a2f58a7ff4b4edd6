// Package forecast holds the computational core of the timeline: recurring
// transaction projection, loan amortization, and monthly aggregation. Every
// function is a pure view over the entity snapshot it is given; nothing here
// mutates stored state or retains state between calls.
package forecast

import (
	"sort"
	"time"

	"github.com/hanishin/moneyline/internal/model"
)

// OccurrencesInMonth expands the stored transactions into the occurrences
// that materialize in (year, month). One-time transactions pass through
// unchanged; recurring transactions are returned as copies with the date
// resolved into the target month. Results are sorted by resolved date
// ascending, stable on ties.
//
// A monthly anchor day that exceeds the target month's length rolls over
// into the next month by calendar normalization (anchor day 31 projected
// into June resolves to July 1).
func OccurrencesInMonth(transactions []model.Transaction, year, month int) []model.Transaction {
	var out []model.Transaction

	for _, t := range transactions {
		switch t.Recurrence {
		case model.RecurrenceOnce:
			if t.Date.Year() == year && int(t.Date.Month()) == month {
				out = append(out, t)
			}

		case model.RecurrenceMonthly:
			resolved := resolveDay(year, month, t.Date.Day())
			if occursOn(resolved, t) {
				c := t
				c.Date = resolved
				out = append(out, c)
			}

		case model.RecurrenceYearly:
			if int(t.Date.Month()) != month {
				continue
			}
			resolved := resolveDay(year, month, t.Date.Day())
			if occursOn(resolved, t) {
				c := t
				c.Date = resolved
				out = append(out, c)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// resolveDay builds the synthetic occurrence date for a recurring
// transaction. time.Date normalizes an out-of-range day into the following
// month, which is the rollover policy this package commits to.
func resolveDay(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// occursOn reports whether a recurring transaction fires on the resolved
// date: on or after the anchor's full calendar date, and on or before the
// end date when one is set.
func occursOn(resolved time.Time, t model.Transaction) bool {
	anchor := dateOnly(t.Date)
	if resolved.Before(anchor) {
		return false
	}
	if t.RecurrenceEnd != nil && resolved.After(dateOnly(*t.RecurrenceEnd)) {
		return false
	}
	return true
}

// dateOnly truncates a timestamp to its calendar date in UTC so date
// comparisons ignore any time-of-day component the store may carry.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
