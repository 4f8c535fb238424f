// Package gemini — клиент генеративного сервиса для черновиков карточек
// товара. Один запрос без повторов; любой сбой деградирует до отсутствия
// подсказки и не блокирует ручной ввод.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/shopspring/decimal"
)

type Copywriter struct {
	httpClient *http.Client
	cfg        *cfg.GeminiCfg
	logger     logger.Logger
}

func NewCopywriter(cfg *cfg.GeminiCfg, logger logger.Logger) *Copywriter {
	return &Copywriter{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// suggestionPayload — ожидаемый JSON от модели, цены в долларах.
type suggestionPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	Category    string  `json:"category"`
}

// SuggestProductCopy запрашивает черновик карточки товара.
// Возвращает nil при отсутствии ключа API и при любом сбое вызова.
func (c *Copywriter) SuggestProductCopy(ctx context.Context, productName string, niche string) *usecase.CopySuggestion {
	if c.cfg.APIKey == "" {
		c.logger.Warnf("copywriter: no API key configured, skipping call")
		return nil
	}

	prompt := fmt.Sprintf(`You are an expert dropshipping copywriter.
Create a high-converting product title and description for a product named %q in the %q niche.
Also suggest a retail price (USD) and a realistic supplier cost price (USD) for dropshipping.

Return JSON only:
{
  "title": "SEO Optimized Title",
  "description": "Persuasive 2-sentence description.",
  "price": 0.00,
  "costPrice": 0.00,
  "category": "Suggested Category"
}`, productName, niche)

	text := c.generate(ctx, prompt, true)
	if text == "" {
		return nil
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		c.logger.Warnf("copywriter: malformed suggestion payload: %v", err)
		return nil
	}

	return &usecase.CopySuggestion{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       dollarsToCents(payload.Price),
		CostPrice:   dollarsToCents(payload.CostPrice),
		Category:    payload.Category,
	}
}

// AnalyzeCompetitors возвращает короткий разбор ниши или пустую строку при сбое.
func (c *Copywriter) AnalyzeCompetitors(ctx context.Context, niche string) string {
	if c.cfg.APIKey == "" {
		c.logger.Warnf("copywriter: no API key configured, skipping call")
		return ""
	}

	prompt := fmt.Sprintf(
		"Provide a brief 3-point competitor analysis for the dropshipping niche: %s. Focus on pricing, marketing angles, and potential gaps.",
		niche,
	)

	return c.generate(ctx, prompt, false)
}

// generate выполняет один вызов generateContent и возвращает текст первого
// кандидата. Пустая строка означает сбой, подробности в логе.
func (c *Copywriter) generate(ctx context.Context, prompt string, jsonResponse bool) string {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonResponse {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Warnf("copywriter: marshal request: %v", err)
		return ""
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		c.logger.Warnf("copywriter: build request: %v", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("copywriter: request failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warnf("copywriter: unexpected status %d: %s", resp.StatusCode, body)
		return ""
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		c.logger.Warnf("copywriter: decode response: %v", err)
		return ""
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		c.logger.Warnf("copywriter: empty response")
		return ""
	}

	return genResp.Candidates[0].Content.Parts[0].Text
}

// dollarsToCents переводит долларовую цену модели в центы.
func dollarsToCents(v float64) int64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
