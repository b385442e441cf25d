package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// RecommendationHandler expone el relé de recomendaciones de productos (protegido).
type RecommendationHandler struct {
	uc *usecase.RecommendationUseCase
}

// NewRecommendationHandler construye el handler.
func NewRecommendationHandler(uc *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// recommendationBody cuerpo opcional del POST.
type recommendationBody struct {
	Description string `json:"description"`
}

// Recommend godoc
// @Summary      Recomendación de productos por IA
// @Description  Acepta la descripción por query string (?description=) o en el cuerpo JSON.
// @Tags         recommendations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        description  query  string  false  "Descripción de la empresa"
// @Success      200  {object}  dto.RecommendationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/recommendation [get]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	description := strings.TrimSpace(c.Query("description"))
	if description == "" && len(c.Body()) > 0 {
		var body recommendationBody
		if err := c.BodyParser(&body); err == nil {
			description = strings.TrimSpace(body.Description)
		}
	}

	out, err := h.uc.Recommend(c.Context(), description)
	if err != nil {
		if strings.Contains(err.Error(), "OPENAI_API_KEY") {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "AI_NOT_CONFIGURED", Message: "el servicio de recomendaciones no está configurado",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
