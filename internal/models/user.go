package models

import "time"

// User is the full persisted account row. PasswordHash never leaves the server.
type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Avatar       string    `db:"avatar" json:"avatar"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Status       string    `db:"status" json:"status,omitempty"`
	LastSeen     time.Time `db:"last_seen" json:"-"`
}

// PublicUser is the account view returned by register and login.
type PublicUser struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Status      string `json:"status,omitempty"`
}

// Public strips credentials and presence data from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		Status:      u.Status,
	}
}

// UserProfile is a directory row. LastSeen is only populated on single-user
// fetches; search and listing omit it.
type UserProfile struct {
	ID          int        `db:"id" json:"id"`
	Username    string     `db:"username" json:"username"`
	DisplayName string     `db:"display_name" json:"display_name"`
	Avatar      string     `db:"avatar" json:"avatar"`
	Status      string     `db:"status" json:"status"`
	Online      bool       `db:"online" json:"online"`
	LastSeen    *time.Time `db:"last_seen" json:"last_seen,omitempty"`
}
