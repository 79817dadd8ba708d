package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleReceptionist   Role = "Receptionist"
	RoleAccountant     Role = "Accountant"
	RoleLibraryOfficer Role = "LibraryOfficer"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	Version      int32      `json:"-"`
}
