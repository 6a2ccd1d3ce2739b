// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. The unique index on username is the
// authoritative guard against duplicate registrations: a concurrent
// check-then-insert race resolves here, not in application code.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
