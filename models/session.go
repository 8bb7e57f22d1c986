package models

import "time"

// Session is the signed-in state the terminal client keeps between runs.
type Session struct {
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// AuthResponse is returned by the register and login endpoints. The token
// is also sent in the Authorization header.
type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}
