package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Candidate statuses form an open enumeration; these are the values the
// recruiting pipeline currently writes. Unknown statuses are preserved as-is.
const (
	StatusForInterview = "For Interview"
	StatusApplied      = "Applied"
	StatusHired        = "Hired"
	StatusRejected     = "Rejected"
)

type Candidate struct {
	bun.BaseModel `bun:"table:candidates"`

	ID        string    `bun:"id,pk" json:"id"`
	FirstName string    `bun:"first_name,notnull" json:"first_name"`
	LastName  string    `bun:"last_name,notnull" json:"last_name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Phone     *string   `bun:"phone" json:"phone,omitempty"`
	Position  string    `bun:"position,notnull" json:"position"`
	Status    string    `bun:"status,notnull" json:"status"`
	Score     *float64  `bun:"score" json:"score,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

func (c *Candidate) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if c.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			c.ID = id.String()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		c.UpdatedAt = now
	}
	return nil
}
