// Package model contains the GORM persistence models, kept separate from the
// pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. PostgreSQL assigns IDs via bigserial.
type UserModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	Email          string     `gorm:"type:varchar(255);unique;not null"`
	Username       string     `gorm:"type:varchar(100);unique;not null"`
	PasswordDigest string     `gorm:"type:varchar(255);not null"`
	Role           string     `gorm:"type:varchar(50);not null;default:'User'"`
	IsActive       bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time
	LastLoginAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
