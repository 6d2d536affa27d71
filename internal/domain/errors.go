package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado; los casos de uso los
// retornan tal cual y la transacción en curso se revierte completa.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente en el almacén origen")
	ErrOverAllocation    = errors.New("la suma de rotaciones supera la cantidad del despacho")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrAlreadyProcessed  = errors.New("la rotación ya fue procesada")
)
