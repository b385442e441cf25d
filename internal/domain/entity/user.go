package entity

import "time"

// User representa un usuario del sistema. Un usuario puede ser dueño de cero o más empresas.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // "admin" | "external" (ver internal/domain/access)
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
