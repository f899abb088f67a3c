package model

import "time"

// FlowerModel mirrors the 'flowers' table. A check constraint keeps stock
// counts non-negative at the schema level.
type FlowerModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Count     int     `gorm:"not null;default:1;check:count >= 0"`
	Cost      float64 `gorm:"not null;check:cost >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FlowerModel) TableName() string {
	return "flowers"
}
