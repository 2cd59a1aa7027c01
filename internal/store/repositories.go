package store

import (
	"context"

	"github.com/briandean03/interview-form/internal/domain"
)

// CandidateOrder selects the directory listing order.
type CandidateOrder string

const (
	// OrderByScore sorts by evaluation score descending, unscored last.
	OrderByScore CandidateOrder = "score"
	// OrderByRecent sorts by creation time descending.
	OrderByRecent CandidateOrder = "recent"
)

type CandidateRepository interface {
	List(ctx context.Context, status string, order CandidateOrder) ([]domain.Candidate, error)
	Get(ctx context.Context, id string) (domain.Candidate, error)
	Create(ctx context.Context, c domain.Candidate) (domain.Candidate, error)
	Update(ctx context.Context, c domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository owns the one-row-per-candidate appointments table.
// Upsert relies on the store's unique constraint on candidate_id, so a
// concurrent duplicate submission can never create a second row.
type AppointmentRepository interface {
	GetByCandidate(ctx context.Context, candidateID string) (domain.Appointment, error)
	Upsert(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	ClearInstant(ctx context.Context, candidateID string) error
	Delete(ctx context.Context, id int64) error
}

type QuestionRepository interface {
	ListByPosition(ctx context.Context, position string) ([]domain.Question, error)
}
