package availability

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "healthcare/internal/errors"
)

const (
	DateLayout = "2006-01-02"

	DefaultLookaheadDays   = 14
	DefaultMaxAlternatives = 5
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts an English day name in any letter case.
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, apperrors.InvalidArgument("unknown weekday %q", name)
	}
	return d, nil
}

// WeekdaySet is the set of days a provider accepts bookings on.
type WeekdaySet map[time.Weekday]struct{}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	s := make(WeekdaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func ParseWeekdays(names []string) (WeekdaySet, error) {
	s := make(WeekdaySet, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		s[d] = struct{}{}
	}
	return s, nil
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	_, ok := s[d]
	return ok
}

// WeeklyAvailability is a provider's recurring schedule. TimeRange is display
// text only ("9:00 AM - 5:00 PM") and does not shape the slot list.
type WeeklyAvailability struct {
	Days      WeekdaySet
	TimeRange string
}

// Result is the answer for one availability check.
type Result struct {
	IsAvailable        bool
	AvailableTimeSlots []string
	AlternativeDates   []time.Time
}

func (r Result) MarshalJSON() ([]byte, error) {
	dates := make([]string, len(r.AlternativeDates))
	for i, d := range r.AlternativeDates {
		dates[i] = d.Format(DateLayout)
	}
	slots := r.AvailableTimeSlots
	if slots == nil {
		slots = []string{}
	}
	return json.Marshal(struct {
		IsAvailable        bool     `json:"isAvailable"`
		AvailableTimeSlots []string `json:"availableTimeSlots"`
		AlternativeDates   []string `json:"alternativeDates"`
	}{r.IsAvailable, slots, dates})
}

type Config struct {
	LookaheadDays   int
	MaxAlternatives int
	Slots           []Slot
}

func DefaultConfig() Config {
	return Config{
		LookaheadDays:   DefaultLookaheadDays,
		MaxAlternatives: DefaultMaxAlternatives,
		Slots:           DefaultSlots,
	}
}

// Planner answers same-day availability and proposes alternative dates.
// It holds no mutable state and may be shared between goroutines.
type Planner struct {
	LookaheadDays   int
	MaxAlternatives int
	Slots           []Slot

	// Clock is read only to anchor alternatives when no reference date is given.
	Clock func() time.Time
}

func NewPlanner(cfg Config) *Planner {
	p := &Planner{
		LookaheadDays:   cfg.LookaheadDays,
		MaxAlternatives: cfg.MaxAlternatives,
		Slots:           cfg.Slots,
		Clock:           time.Now,
	}
	if p.LookaheadDays <= 0 {
		p.LookaheadDays = DefaultLookaheadDays
	}
	if p.MaxAlternatives <= 0 {
		p.MaxAlternatives = DefaultMaxAlternatives
	}
	if len(p.Slots) == 0 {
		p.Slots = DefaultSlots
	}
	return p
}

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.InvalidArgument("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// Check evaluates avail against ref. A nil ref is never treated as today:
// the result is unavailable with no slots.
func (p *Planner) Check(avail WeeklyAvailability, ref *time.Time) Result {
	res := Result{AvailableTimeSlots: []string{}}

	var anchor time.Time
	if ref != nil {
		anchor = dateOf(*ref)
		if avail.Days.Has(anchor.Weekday()) {
			res.IsAvailable = true
			res.AvailableTimeSlots = Labels(p.Slots)
		}
	} else {
		clock := p.Clock
		if clock == nil {
			clock = time.Now
		}
		anchor = dateOf(clock())
	}

	res.AlternativeDates = p.alternatives(avail.Days, anchor)
	return res
}

// CheckDate is Check with the reference date given as text; empty text means none.
func (p *Planner) CheckDate(avail WeeklyAvailability, dateText string) (Result, error) {
	if strings.TrimSpace(dateText) == "" {
		return p.Check(avail, nil), nil
	}
	ref, err := ParseDate(dateText)
	if err != nil {
		return Result{}, err
	}
	return p.Check(avail, &ref), nil
}

func (p *Planner) alternatives(days WeekdaySet, anchor time.Time) []time.Time {
	dates := []time.Time{}
	if len(days) == 0 {
		return dates
	}
	for i := 1; i <= p.LookaheadDays && len(dates) < p.MaxAlternatives; i++ {
		d := anchor.AddDate(0, 0, i)
		if days.Has(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

// dateOf drops the clock part, keeping the calendar day of t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
