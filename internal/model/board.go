package model

import (
	"time"

	"github.com/google/uuid"
)

// Board holds its column/task layout as an opaque string blob in Data;
// the server never parses it. Timestamps are assigned by the service
// layer at the point of mutation, so gorm's automatic tracking is off.
type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Data        string    `gorm:"not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (Board) TableName() string {
	return "board"
}
