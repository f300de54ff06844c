package domain

import (
	"time"
)

// BaseModel contains the timestamps every table carries. Both are assigned
// server side and ignored on input.
type BaseModel struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewBaseModel stamps a new record
func NewBaseModel(now time.Time) BaseModel {
	now = now.UTC()
	return BaseModel{CreatedAt: now, UpdatedAt: now}
}

// Touch moves UpdatedAt forward
func (b *BaseModel) Touch(now time.Time) {
	b.UpdatedAt = now.UTC()
}
