package model

import "github.com/golang-jwt/jwt/v5"

// Principal is the authenticated actor making a request, resolved by the
// auth middleware. Core services only ever see this, never credentials.
type Principal struct {
	ID        uint
	Email     string
	IsTeacher bool
}

// Claims is the JWT payload issued at login and resolved back into a
// Principal on every authenticated request.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IsTeacher bool   `json:"is_teacher"`
	jwt.RegisteredClaims
}
