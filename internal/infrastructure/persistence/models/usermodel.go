package models

import "time"

// UserModel backs the local identity oracle.
type UserModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	DisplayName string    `gorm:"size:200;not null"`
	Sysadmin    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"precision:6;not null;autoCreateTime:false"`
}

func (UserModel) TableName() string {
	return "users"
}
