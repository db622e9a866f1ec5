package domain

import "time"

// SeedUsername and SeedPassword identify the account created on first boot
// so the system is usable without manual provisioning. Seeding bypasses the
// password policy on purpose.
const (
	SeedUsername = "admin"
	SeedPassword = "1234"
)

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
