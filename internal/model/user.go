package model

import "time"

const (
    RoleUser  = "user"
    RoleAdmin = "admin"
)

// User 使用者帳號
type User struct {
    ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Name         string    `gorm:"type:varchar(50);not null" json:"name"`
    Account      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"account"`
    Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
    Password     string    `gorm:"type:varchar(255);not null" json:"-"`
    Role         string    `gorm:"type:varchar(10);not null;default:user" json:"role"`
    Avatar       string    `gorm:"type:varchar(255)" json:"avatar"`
    Cover        string    `gorm:"type:varchar(255)" json:"cover"`
    Introduction string    `gorm:"type:text" json:"introduction"`
    CreatedAt    time.Time `json:"created_at"`
    UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
