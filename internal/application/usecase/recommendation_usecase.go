package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/ports"
	"github.com/tu-usuario/catalogo-api/internal/domain"
)

// RecommendationUseCase orquesta la recomendación de productos asistida por IA.
// Aplica un timeout de 10 segundos en cada llamada al servicio externo para
// evitar que las latencias ajenas bloqueen los goroutines del servidor.
type RecommendationUseCase struct {
	llm ports.CompletionService
}

// NewRecommendationUseCase construye el caso de uso inyectando el puerto CompletionService.
func NewRecommendationUseCase(llm ports.CompletionService) *RecommendationUseCase {
	return &RecommendationUseCase{llm: llm}
}

// Recommend valida la descripción y delega al servicio de completado.
// Descripción vacía es error del cliente; cualquier fallo del servicio se
// registra antes de propagarse (único punto donde se loggea antes de responder).
func (uc *RecommendationUseCase) Recommend(ctx context.Context, description string) (*dto.RecommendationResponse, error) {
	if description == "" {
		return nil, domain.NewValidationError("description", "la descripción de la empresa es requerida")
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.RecommendProducts(ctx, description)
	if err != nil {
		log.Error().Err(err).Msg("recomendación IA fallida")
		return nil, err
	}

	return &dto.RecommendationResponse{Recommendation: text}, nil
}
