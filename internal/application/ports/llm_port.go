package ports

import "context"

// CompletionService define el puerto de salida hacia el servicio externo de
// completado de texto. Cualquier adaptador (OpenAI, mock) implementa esta
// interfaz; la aplicación solo conoce el contrato (DIP).
type CompletionService interface {
	// RecommendProducts envía la descripción de la empresa embebida en el
	// prompt fijo de recomendaciones y devuelve el texto extraído de la
	// respuesta. El contexto debe llevar un timeout: la llamada es externa.
	RecommendProducts(ctx context.Context, description string) (string, error)
}
