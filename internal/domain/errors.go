package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrMissingField  = errors.New("campo requerido ausente")
	ErrInvalidAmount = errors.New("el monto debe ser mayor que cero")
	ErrOverpayment   = errors.New("el monto supera el saldo pendiente")
)
