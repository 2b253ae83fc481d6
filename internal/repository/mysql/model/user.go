package model

import (
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"type:varchar(45);not null"`
	Username  string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	Password  string    `gorm:"type:varchar(100);not null"`
	Image     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Password:  m.Password,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Password:  u.Password,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
