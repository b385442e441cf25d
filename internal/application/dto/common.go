package dto

// ErrorResponse cuerpo de error HTTP.
// Field se llena solo en errores de validación de campo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
