package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/store"
)

type AppointmentRepo struct {
	client *Client
}

func NewAppointmentRepo(client *Client) *AppointmentRepo {
	return &AppointmentRepo{client: client}
}

func (r *AppointmentRepo) GetByCandidate(ctx context.Context, candidateID string) (domain.Appointment, error) {
	var a domain.Appointment
	err := r.client.DB().NewSelect().
		Model(&a).
		Where("candidate_id = ?", candidateID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return a, nil
}

// Upsert inserts the candidate's appointment row or, when one already
// exists, overwrites its scheduled instant in place. The unique constraint
// on candidate_id makes this safe under concurrent duplicate submissions.
// The returned value is re-read from the store.
func (r *AppointmentRepo) Upsert(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	_, err := r.client.DB().NewInsert().
		Model(&m).
		On("CONFLICT (candidate_id) DO UPDATE").
		Set("scheduled_at = EXCLUDED.scheduled_at").
		Set("position = EXCLUDED.position").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// candidate row is gone
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return r.GetByCandidate(ctx, appt.CandidateID)
}

// ClearInstant nulls out the scheduled instant while keeping the row, so a
// later booking updates it through the same upsert path instead of hitting a
// uniqueness conflict.
func (r *AppointmentRepo) ClearInstant(ctx context.Context, candidateID string) error {
	res, err := r.client.DB().NewUpdate().
		Model((*domain.Appointment)(nil)).
		Set("scheduled_at = NULL").
		Set("updated_at = ?", time.Now().UTC()).
		Where("candidate_id = ?", candidateID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.client.DB().NewDelete().
		Model((*domain.Appointment)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
