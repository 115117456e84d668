package models

import "time"

// Role values the API knows about. The role column is an open-set string;
// only RoleAdmin carries meaning for authorization.
const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
