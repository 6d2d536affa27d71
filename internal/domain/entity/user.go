package entity

import "time"

// Roles válidos para User (conjunto cerrado).
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, operator
	CreatedAt    time.Time
}

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}
