package models

import (
	"time"
)

// Collection is a holding institution or digital archive referenced by
// book collection-location fields.
type Collection struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Location    *string `gorm:"column:location;type:varchar(1024)" json:"location,omitempty"`
	Address     *string `gorm:"column:address;type:varchar(1024)" json:"address,omitempty"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}
