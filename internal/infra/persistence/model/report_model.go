package model

import "time"

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"type:varchar(1000)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
