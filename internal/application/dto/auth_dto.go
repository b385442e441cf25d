package dto

// TokenRequest credenciales para obtener el par de tokens.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse par de tokens emitido al autenticar.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest token de refresco para emitir un nuevo acceso.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse nuevo token de acceso.
type RefreshResponse struct {
	Access string `json:"access"`
}
