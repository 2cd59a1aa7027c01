package postgres

import (
	"context"

	"github.com/briandean03/interview-form/internal/domain"
)

type QuestionRepo struct {
	client *Client
}

func NewQuestionRepo(client *Client) *QuestionRepo {
	return &QuestionRepo{client: client}
}

func (r *QuestionRepo) ListByPosition(ctx context.Context, position string) ([]domain.Question, error) {
	var rows []domain.Question
	err := r.client.DB().NewSelect().
		Model(&rows).
		Where("position = ?", position).
		OrderExpr("idx ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
