package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	Name      string    `json:"name" gorm:"not null"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	AvatarID  string    `json:"-"` // External asset id of the current avatar
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
