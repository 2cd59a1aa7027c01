package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func validationError(msg string) error {
	return NewValidationError(msg)
}

// Service reconciles a candidate's single interview appointment against the
// store. It never mutates local state on failure; after every successful
// write the row is re-read so callers see the store's value.
type Service struct {
	appts      store.AppointmentRepository
	candidates store.CandidateRepository
	policy     domain.BookingPolicy

	now func() time.Time
}

func NewService(appts store.AppointmentRepository, candidates store.CandidateRepository, policy domain.BookingPolicy) *Service {
	return &Service{
		appts:      appts,
		candidates: candidates,
		policy:     policy,
		now:        time.Now,
	}
}

// Resolution is a candidate's appointment as seen through a display
// timezone. LocalTime is the stored UTC instant converted for presentation;
// the stored value itself is never rewritten on timezone changes.
type Resolution struct {
	State       domain.BookingState `json:"state"`
	Appointment *domain.Appointment `json:"appointment,omitempty"`
	LocalTime   *time.Time          `json:"local_time,omitempty"`
	Timezone    string              `json:"timezone"`
}

// Resolve fetches the candidate's appointment row. An absent row is the
// normal "nothing booked" outcome, not an error.
func (s *Service) Resolve(ctx context.Context, candidateID, displayTZ string) (Resolution, error) {
	if strings.TrimSpace(candidateID) == "" {
		return Resolution{}, validationError("candidate id is required")
	}
	loc, tz, err := displayLocation(displayTZ)
	if err != nil {
		return Resolution{}, err
	}

	appt, err := s.appts.GetByCandidate(ctx, candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Resolution{State: domain.BookingStateNone, Timezone: tz}, nil
		}
		return Resolution{}, err
	}

	res := Resolution{
		State:       appt.State(),
		Appointment: &appt,
		Timezone:    tz,
	}
	if appt.ScheduledAt != nil {
		local := appt.ScheduledAt.In(loc)
		res.LocalTime = &local
	}
	return res, nil
}

type ScheduleInput struct {
	CandidateID string
	Date        string // "2006-01-02"
	Time        string // "15:04", on the hour
	Timezone    string
}

// Schedule books or rebooks the candidate's interview. The wall clock
// (Date, Time) is interpreted in the selected timezone and stored as a UTC
// instant through a conflict-safe upsert keyed on candidate id, so prior
// state (none, pending, or scheduled) does not change the call.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (domain.Appointment, error) {
	if strings.TrimSpace(in.CandidateID) == "" {
		return domain.Appointment{}, validationError("candidate id is required")
	}
	if in.Date == "" || in.Time == "" {
		return domain.Appointment{}, validationError("date and time are required")
	}

	loc, _, err := displayLocation(in.Timezone)
	if err != nil {
		return domain.Appointment{}, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return domain.Appointment{}, validationError("invalid date")
	}
	hour, err := domain.SlotHour(in.Time, s.policy)
	if err != nil {
		return domain.Appointment{}, validationError(err.Error())
	}

	today := s.now().In(loc)
	if domain.IsDateDisabled(today, date, s.policy) {
		return domain.Appointment{}, validationError("date is not selectable")
	}
	if domain.CivilDate(today).Equal(domain.CivilDate(date)) && today.Hour() >= hour {
		return domain.Appointment{}, validationError("time slot has already passed")
	}

	cand, err := s.candidates.Get(ctx, in.CandidateID)
	if err != nil {
		return domain.Appointment{}, err
	}

	instant, err := domain.ComposeInstant(date, hour, tzOrUTC(in.Timezone))
	if err != nil {
		return domain.Appointment{}, validationError(err.Error())
	}

	position := cand.Position
	return s.appts.Upsert(ctx, domain.Appointment{
		CandidateID: in.CandidateID,
		ScheduledAt: &instant,
		Position:    &position,
	})
}

// Cancel clears the scheduled instant, keeping the row. Afterwards no
// scheduled instant is readable for the candidate and a later Schedule
// updates the surviving row without a uniqueness conflict.
func (s *Service) Cancel(ctx context.Context, candidateID string) error {
	if strings.TrimSpace(candidateID) == "" {
		return validationError("candidate id is required")
	}
	return s.appts.ClearInstant(ctx, candidateID)
}

// Day is one grid cell of the booking month view.
type Day struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"in_month"`
	Disabled bool   `json:"disabled"`
}

// MonthDays renders the Monday-aligned grid for a "2006-01" month in the
// display timezone, with each day's selectability evaluated against now.
func (s *Service) MonthDays(month, displayTZ string) ([]Day, error) {
	loc, _, err := displayLocation(displayTZ)
	if err != nil {
		return nil, err
	}
	m, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, validationError("invalid month")
	}

	today := s.now().In(loc)
	grid := domain.MonthGrid(m.Year(), m.Month())
	out := make([]Day, 0, len(grid))
	for _, d := range grid {
		out = append(out, Day{
			Date:     d.Format("2006-01-02"),
			InMonth:  d.Month() == m.Month(),
			Disabled: domain.IsDateDisabled(today, d, s.policy),
		})
	}
	return out, nil
}

// Slots lists the fixed time slots for a "2006-01-02" date in the display
// timezone.
func (s *Service) Slots(date, displayTZ string) ([]domain.Slot, error) {
	loc, _, err := displayLocation(displayTZ)
	if err != nil {
		return nil, err
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, validationError("invalid date")
	}
	return domain.DaySlots(s.now().In(loc), d, s.policy), nil
}

func displayLocation(tz string) (*time.Location, string, error) {
	name := tzOrUTC(tz)
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, "", validationError(fmt.Sprintf("invalid timezone %q", name))
	}
	return loc, name, nil
}

func tzOrUTC(tz string) string {
	if strings.TrimSpace(tz) == "" {
		return "UTC"
	}
	return strings.TrimSpace(tz)
}
