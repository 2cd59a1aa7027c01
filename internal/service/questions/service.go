package questions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/store"
)

var (
	// ErrNotScheduled means the candidate has no confirmed appointment.
	ErrNotScheduled = errors.New("no scheduled interview")
	// ErrTooEarly means the disclosure window has not opened yet.
	ErrTooEarly = errors.New("interview has not started")
	// ErrExpired means the disclosure window has closed.
	ErrExpired = errors.New("interview window has passed")
)

// Service gates interview-question reads behind the appointment time. The
// questions for a position are only readable inside a bounded window
// starting at the scheduled instant.
type Service struct {
	questions store.QuestionRepository
	appts     store.AppointmentRepository
	window    time.Duration

	now func() time.Time
}

func NewService(questions store.QuestionRepository, appts store.AppointmentRepository, window time.Duration) *Service {
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &Service{
		questions: questions,
		appts:     appts,
		window:    window,
		now:       time.Now,
	}
}

// Disclosable reports whether now falls within [scheduledAt, scheduledAt+window].
func (s *Service) Disclosable(now, scheduledAt time.Time) bool {
	return !now.Before(scheduledAt) && !now.After(scheduledAt.Add(s.window))
}

// Fetch returns the question set for the candidate's position, provided the
// candidate's appointment is scheduled and the current moment is inside the
// disclosure window.
func (s *Service) Fetch(ctx context.Context, candidateID string) ([]domain.Question, error) {
	if strings.TrimSpace(candidateID) == "" {
		return nil, ErrNotScheduled
	}

	appt, err := s.appts.GetByCandidate(ctx, candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotScheduled
		}
		return nil, err
	}
	if appt.State() != domain.BookingStateScheduled {
		return nil, ErrNotScheduled
	}

	now := s.now()
	if now.Before(*appt.ScheduledAt) {
		return nil, ErrTooEarly
	}
	if now.After(appt.ScheduledAt.Add(s.window)) {
		return nil, ErrExpired
	}

	position := ""
	if appt.Position != nil {
		position = *appt.Position
	}
	return s.questions.ListByPosition(ctx, position)
}
