package model

import (
	"time"

	"github.com/google/uuid"
)

// DropModel mirrors the 'drops' table. The partial unique index on
// is_current would be ideal; GORM cannot express it, so SetCurrent flips
// the flag inside one transaction instead.
type DropModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Code        int       `gorm:"unique;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ReleasedAt  time.Time
	IsCurrent   bool `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DropModel) TableName() string {
	return "drops"
}
