package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock slot start, e.g. 10:00.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func At(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Label is the short form shown to customers, e.g. "9:00".
func (t TimeOfDay) Label() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DefaultTime is the slot a new draft starts on.
var DefaultTime = At(10, 0)

// OfferedTimes are the slot starts the salon takes bookings for.
var OfferedTimes = []TimeOfDay{
	At(9, 0), At(10, 0), At(11, 0), At(12, 0),
	At(14, 0), At(15, 0), At(16, 0), At(17, 0), At(18, 0),
}

func IsOffered(t TimeOfDay) bool {
	for _, o := range OfferedTimes {
		if o == t {
			return true
		}
	}
	return false
}

// Slot is the (date, time) pair a booking occupies. At most one live
// booking may hold a given slot.
type Slot struct {
	Date Date
	Time TimeOfDay
}

func (s Slot) String() string {
	return s.Date.String() + " " + s.Time.String()
}

// SlotAvailability is one offered time on a given date.
type SlotAvailability struct {
	Time  TimeOfDay `json:"time"`
	Taken bool      `json:"taken"`
}
