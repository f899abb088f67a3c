// Package model holds the GORM persistence models mirroring the database
// schema. They are kept separate from the domain entities so schema details
// never leak into the domain layer.
package model

import "time"

// AccountModel mirrors the 'accounts' table. Ids are database-assigned
// bigserial values; the email column carries the unique index that is the
// sole guard against concurrent duplicate signups.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
