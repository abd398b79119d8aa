package model

import "time"

// WeightRecordModel mirrors the 'weight_records' table.
type WeightRecordModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;index"`
	Weight     float64   `gorm:"not null"`
	Unit       string    `gorm:"type:varchar(10);default:'kg'"`
	Notes      string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (WeightRecordModel) TableName() string {
	return "weight_records"
}
