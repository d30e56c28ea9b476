package entity

import "time"

// User representa um usuário da oficina com acesso ao sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
