package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/catalogo-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa CompletionService.
var _ ports.CompletionService = (*OpenAIService)(nil)

const (
	openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

	systemPrompt = "You are an AI that recommends the best dropshipping products based on the type of business the user has."

	// promptTemplate embebe la descripción de la empresa en la instrucción fija
	// de recomendaciones. %s recibe la descripción libre del usuario.
	promptTemplate = `
You are an AI that recommends the best dropshipping products based on the type of business the user has.
Ask the user: "What does your company do?"
Based on their answer, suggest 3 to 5 trending and profitable dropshipping products that match their niche.
Consider:
- Current product trends
- Market demand
- Shipping ease and supplier availability (AliExpress, CJ Dropshipping, etc.)
- Competition level
- Average price range of the niche
For each product, include a short explanation of why it's a good fit.
If helpful, suggest keywords for further research on TikTok, Google Trends, or Amazon.

User company description: %s
`
)

// OpenAIService adaptador que implementa CompletionService usando la API REST
// de chat completions de OpenAI. Usa net/http de la librería estándar; no
// requiere el SDK oficial.
type OpenAIService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-3.5-turbo".
// Si apiKey está vacío las llamadas devuelven error de configuración, nunca panic.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras del protocolo chat completions ───────────────────────────────

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ────────────────────────────────────────────────

// RecommendProducts envía la descripción de la empresa embebida en el prompt
// fijo y devuelve el texto de la primera choice. Cualquier respuesta con forma
// inesperada o estado no-200 se reporta con el detalle del upstream.
func (s *OpenAIService) RecommendProducts(ctx context.Context, description string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("IA: OPENAI_API_KEY no configurado")
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, description)},
		},
		MaxTokens:   600,
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("IA: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("IA: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("IA: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("IA: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("IA: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("IA: OpenAI error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("IA: OpenAI HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(rawBody, &chatResp); err != nil {
		return "", fmt.Errorf("IA: deserializar respuesta OpenAI: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("IA: la respuesta de OpenAI no trae choices: %s", string(rawBody))
	}

	return chatResp.Choices[0].Message.Content, nil
}
