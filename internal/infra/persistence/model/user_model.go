package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Roles are a small JSONB array; they
// are read whole on every authentication, never filtered in SQL.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Roles        []string  `gorm:"serializer:json;type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
