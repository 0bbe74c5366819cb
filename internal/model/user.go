package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
