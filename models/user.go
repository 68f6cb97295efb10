package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeCompany    UserType = "company"
)

type User struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string   `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash  string   `gorm:"size:300;not null" json:"-"`
	Name          string   `gorm:"size:100" json:"name"`
	Phone         string   `gorm:"size:20" json:"phone"`
	UserType      UserType `gorm:"type:VARCHAR(20);default:'individual'" json:"user_type"`
	CompanyName   string   `gorm:"size:255" json:"company_name"`
	PhotoFilename string   `gorm:"size:128" json:"photo_filename"`
	IsAdmin       bool     `gorm:"default:false" json:"is_admin"`

	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// MissingCheckoutFields lists the profile fields that must be filled before an
// order can be placed. Company accounts additionally need a company name.
func (u *User) MissingCheckoutFields() []string {
	var missing []string
	if u.Name == "" {
		missing = append(missing, "name")
	}
	if u.Phone == "" {
		missing = append(missing, "phone")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.UserType == UserTypeCompany && u.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	return missing
}
