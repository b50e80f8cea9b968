package medication

import (
	"fmt"
	"sort"
	"time"
)

// DoseStatus is the derived state of a medication's dosing for one day.
type DoseStatus string

const (
	DoseTaken    DoseStatus = "taken"
	DoseDue      DoseStatus = "due"
	DoseOverdue  DoseStatus = "overdue"
	DoseUpcoming DoseStatus = "upcoming"
)

// overdueGrace is how long past a scheduled time an unlogged dose stays
// "due" before becoming "overdue".
const overdueGrace = time.Hour

// StatusReport is the response shape of the dose status endpoint.
type StatusReport struct {
	MedicationID string     `json:"medicationId"`
	Date         string     `json:"date"`
	Status       DoseStatus `json:"status"`
}

// DeriveDoseStatus derives today's dose status from the medication's
// schedule slots and the logs recorded for today. Logs carry no slot
// reference, so passed slots are matched against logs by count: with more
// passed slots than logged doses, the earliest uncovered slot decides
// between due and overdue.
func DeriveDoseStatus(now time.Time, schedules []*Schedule, todaysLogs []*Log) DoseStatus {
	for _, l := range todaysLogs {
		if l.Status == LogStatusTaken {
			return DoseTaken
		}
	}

	var passed []time.Time
	for _, s := range schedules {
		at, err := clockToday(now, s.ScheduledTime)
		if err != nil {
			continue
		}
		if !at.After(now) {
			passed = append(passed, at)
		}
	}
	sort.Slice(passed, func(i, j int) bool { return passed[i].Before(passed[j]) })

	if len(passed) > len(todaysLogs) {
		earliestUncovered := passed[len(todaysLogs)]
		if now.Sub(earliestUncovered) > overdueGrace {
			return DoseOverdue
		}
		return DoseDue
	}

	for _, l := range todaysLogs {
		if l.Status == LogStatusSnoozed {
			return DoseDue
		}
	}

	return DoseUpcoming
}

// clockToday places an "HH:MM" or "HH:MM:SS" wall-clock value on now's
// calendar day in now's location.
func clockToday(now time.Time, clock string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err = time.Parse(layout, clock)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse scheduled time %q: %w", clock, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
}

// dayBounds returns the [start, end) window of now's calendar day in now's
// location. "Today" means the server's local day.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
