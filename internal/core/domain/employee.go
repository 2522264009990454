package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmployeeNotFound   = errors.New("employee not found")
)

// Employee models a portal user. Accounts are provisioned out of band
// (seed admin at migration time, or hashpass + SQL); the API surface never
// mutates them.
type Employee struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	FullName     string `json:"full_name" gorm:"size:100;not null"`
	Email        string `json:"email,omitempty" gorm:"size:100"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// SessionUser is the slice of Employee that travels in the session and in
// API responses. The password hash never leaves the server.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// SessionUserOf projects an employee onto its session representation.
func SessionUserOf(e *Employee) SessionUser {
	return SessionUser{ID: e.ID, Username: e.Username, FullName: e.FullName}
}
