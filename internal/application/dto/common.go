package dto

// ErrorResponse cuerpo de error HTTP.
// Code es el kind de dominio (VALIDATION, NOT_FOUND, ...); Details lleva datos estructurados
// como el estado actual y el solicitado de una transición rechazada.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// MessageResponse respuesta genérica con mensaje y recurso.
type MessageResponse struct {
	Message string `json:"message"`
}
