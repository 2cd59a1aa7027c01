package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/store"
)

type CandidateRepo struct {
	client *Client
}

func NewCandidateRepo(client *Client) *CandidateRepo {
	return &CandidateRepo{client: client}
}

func (r *CandidateRepo) List(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error) {
	var rows []domain.Candidate
	q := r.client.DB().NewSelect().Model(&rows)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	switch order {
	case store.OrderByRecent:
		q = q.OrderExpr("created_at DESC")
	default:
		q = q.OrderExpr("score DESC NULLS LAST")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CandidateRepo) Get(ctx context.Context, id string) (domain.Candidate, error) {
	var c domain.Candidate
	err := r.client.DB().NewSelect().
		Model(&c).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Candidate{}, store.ErrNotFound
		}
		return domain.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepo) Create(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	m := c
	if _, err := r.client.DB().NewInsert().Model(&m).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return domain.Candidate{}, store.ErrConflict
		}
		return domain.Candidate{}, err
	}
	return r.Get(ctx, m.ID)
}

// Update writes the mutable fields and re-reads the row, so callers see the
// store's post-write value rather than a local guess.
func (r *CandidateRepo) Update(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	m := c
	res, err := r.client.DB().NewUpdate().
		Model(&m).
		Column("first_name", "last_name", "email", "phone", "position", "status", "score", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Candidate{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Candidate{}, err
	}
	if affected == 0 {
		return domain.Candidate{}, store.ErrNotFound
	}
	return r.Get(ctx, c.ID)
}

func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.client.DB().NewDelete().
		Model((*domain.Candidate)(nil)).
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
