package domain

import "time"

type Role string

const (
	RoleRider   Role = "rider"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleRider, RolePartner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Phone           string    `json:"phone"`
	PasswordHash    string    `json:"-"`
	Role            Role      `gorm:"index" json:"role"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
