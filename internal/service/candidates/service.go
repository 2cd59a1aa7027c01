package candidates

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service is the candidate directory. Every mutation re-reads the stored row
// before returning, so directory views never show an optimistic local patch.
type Service struct {
	repo  store.CandidateRepository
	appts store.AppointmentRepository
}

func NewService(repo store.CandidateRepository, appts store.AppointmentRepository) *Service {
	return &Service{repo: repo, appts: appts}
}

func (s *Service) List(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error) {
	switch order {
	case "", store.OrderByScore:
		order = store.OrderByScore
	case store.OrderByRecent:
	default:
		return nil, validationError("invalid order")
	}
	return s.repo.List(ctx, strings.TrimSpace(status), order)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Candidate, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Candidate{}, validationError("candidate id is required")
	}
	return s.repo.Get(ctx, id)
}

type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Position  string
	Status    string
	Score     *float64
}

func (s *Service) Create(ctx context.Context, in Input) (domain.Candidate, error) {
	c, err := validate(in)
	if err != nil {
		return domain.Candidate{}, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (domain.Candidate, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Candidate{}, validationError("candidate id is required")
	}
	c, err := validate(in)
	if err != nil {
		return domain.Candidate{}, err
	}
	c.ID = id
	return s.repo.Update(ctx, c)
}

// Delete removes the candidate and, when one exists, hard-deletes their
// appointment row by its store-assigned id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationError("candidate id is required")
	}

	appt, err := s.appts.GetByCandidate(ctx, id)
	switch {
	case err == nil:
		if err := s.appts.Delete(ctx, appt.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		return err
	}

	return s.repo.Delete(ctx, id)
}

func validate(in Input) (domain.Candidate, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return domain.Candidate{}, validationError("first and last name are required")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return domain.Candidate{}, validationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Candidate{}, validationError("invalid email")
	}

	position := strings.TrimSpace(in.Position)
	if position == "" {
		return domain.Candidate{}, validationError("position is required")
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = domain.StatusApplied
	}

	if in.Score != nil && (*in.Score < 0 || *in.Score > 100) {
		return domain.Candidate{}, validationError("score must be between 0 and 100")
	}

	return domain.Candidate{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     in.Phone,
		Position:  position,
		Status:    status,
		Score:     in.Score,
	}, nil
}
