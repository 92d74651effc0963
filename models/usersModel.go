package models

import (
	"time"
)

// User represents a locally managed account. Only used when the service
// runs with its own authentication backend instead of Firebase Auth.
type User struct {
	UID           string    `gorm:"primaryKey;column:uid" json:"uid"`
	Email         string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password      string    `gorm:"size:255;not null;column:password" json:"-"`
	DisplayName   string    `gorm:"size:100;column:display_name" json:"displayName"`
	EmailVerified bool      `gorm:"not null;default:false;column:email_verified" json:"emailVerified"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
