package models

import "time"

type BlogPost struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"size:50;unique;not null" json:"title"`
	Subtitle      string    `gorm:"size:400" json:"subtitle"`
	Text          string    `gorm:"size:1000;not null" json:"text"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Author        string    `gorm:"size:50" json:"author"`
	PhotoFilename string    `gorm:"size:128" json:"photo_filename"`
}
