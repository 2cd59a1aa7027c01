package domain

import "github.com/uptrace/bun"

// Question is one interview question for a position. Questions are read in
// ascending Idx order; the table is maintained outside this service.
type Question struct {
	bun.BaseModel `bun:"table:questions"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Position string `bun:"position,notnull" json:"position"`
	Idx      int    `bun:"idx,notnull" json:"idx"`
	Text     string `bun:"text,notnull" json:"text"`
}
