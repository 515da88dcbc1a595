package model

import "time"

// SchemaVersion is one applied step of the gateway's schema history
type SchemaVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null;index"`
}

func (SchemaVersion) TableName() string {
	return "schema_versions"
}
