package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

var RoleValues = []string{
	string(RoleEmployee),
	string(RoleAdmin),
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	EmployeeID   string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
