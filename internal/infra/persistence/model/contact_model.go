package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. The primary key is a bigserial
// sequence, so ids are monotonic and never reused after deletion.
type ContactModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	PhoneNumber string     `gorm:"type:varchar(10);not null"`
	Email       string     `gorm:"type:varchar(255)"`
	Address     string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
