package models

import "time"

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	Settings     map[string]any `json:"settings"`
}

// UserResponse is the public view of a user, without the password hash.
type UserResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Settings  map[string]any `json:"settings"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		Settings:  u.Settings,
	}
}
