package domain

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Appointment is the single interview booking for a candidate. At most one
// row exists per candidate, enforced by a unique constraint on candidate_id.
// A row with a nil ScheduledAt means the slot was cleared or never confirmed.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          int64      `bun:"id,pk,autoincrement" json:"id"`
	CandidateID string     `bun:"candidate_id,notnull" json:"candidate_id"`
	ScheduledAt *time.Time `bun:"scheduled_at" json:"scheduled_at,omitempty"`
	Position    *string    `bun:"position" json:"position,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

// BookingState classifies a candidate's appointment row.
type BookingState string

const (
	BookingStateNone      BookingState = "none"      // no row
	BookingStatePending   BookingState = "pending"   // row exists, instant cleared
	BookingStateScheduled BookingState = "scheduled" // row exists, instant set
)

// State derives the booking state from a fetched row. A nil receiver stands
// for the no-row case.
func (a *Appointment) State() BookingState {
	if a == nil {
		return BookingStateNone
	}
	if a.ScheduledAt == nil {
		return BookingStatePending
	}
	return BookingStateScheduled
}
