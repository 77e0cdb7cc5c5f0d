package models

import "time"

type Parent struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome"`
	Email     string    `json:"email" gorm:"index"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
