package models

import "time"

// Center represents a registered training center.
// The code doubles as the login username and is generated as
// "<first two letters of state>-<4 random digits>".
type Center struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Director  string    `json:"director"`
	Location  string    `json:"location"`
	State     string    `json:"state"`
	Wallet    int64     `json:"wallet"`
	ValidUpto string    `json:"valid_upto"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
}
