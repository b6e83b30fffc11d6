package models

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"size:20;not null;uniqueIndex"`
	Email     string    `gorm:"size:50;not null;uniqueIndex"`
	Password  string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Tasks []Task `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
