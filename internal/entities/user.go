package entities

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMerchant Role = "merchant"
	RoleCustomer Role = "customer"
)

type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Role                Role
	FailedLoginAttempts int
	LockedUntil         *time.Time
	RefreshTokenID      string
	CreatedAt           time.Time
}

func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// Claims identify the acting user of a request.
type Claims struct {
	UserID  string
	Role    Role
	TokenID string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
