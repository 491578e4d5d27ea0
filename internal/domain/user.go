package domain

import "time"

// User is the session-facing profile record. It never carries a password.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential is one entry in the durable registered-accounts list.
type Credential struct {
	User
	PasswordHash string `json:"password"`
}
