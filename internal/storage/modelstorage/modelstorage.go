// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import "time"

// LinkEntry is one row of the urls table.
type LinkEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" db:"id"`
	Code      string    `gorm:"column:code;type:text;uniqueIndex;not null" db:"code"`
	URL       string    `gorm:"column:url;type:text;not null" db:"url"`
	OwnerID   *string   `gorm:"column:owner_id;type:text;index" db:"owner_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" db:"created_at"`
}

// TableName pins the table name used by GORM.
func (LinkEntry) TableName() string {
	return "urls"
}
