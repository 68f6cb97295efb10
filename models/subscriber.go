package models

import "time"

type Subscriber struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Active       bool      `gorm:"default:true" json:"active"`
}
