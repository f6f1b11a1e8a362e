package domain

import "time"

// User owns vacancies. Credentials are managed outside the vacancy API.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
