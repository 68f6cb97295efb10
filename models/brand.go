package models

type CarBrand struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;unique;not null" json:"name"`
}
