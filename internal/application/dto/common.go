package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como número JSON (no como string) para que el frontend
	// pueda operar con ellos directamente.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. Error lleva el mensaje legible; Code el
// identificador estable para clientes.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse acuse de éxito sin datos.
type MessageResponse struct {
	Message string `json:"message"`
}
