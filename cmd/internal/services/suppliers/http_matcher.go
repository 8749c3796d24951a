package suppliers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

// HTTPMatcher обращается к внешнему matcher-сервису (Python-воркер).
// Контракт: POST {name, threshold} -> {supplier_id, name, confidence, created}.
type HTTPMatcher struct {
	url    string
	client *http.Client
	logger *logging.Logger
}

// NewHTTPMatcher создает новый HTTPMatcher.
func NewHTTPMatcher(url string, logger *logging.Logger) *HTTPMatcher {
	return &HTTPMatcher{
		url: url,
		client: &http.Client{
			Timeout: time.Second * 30,
		},
		logger: logger,
	}
}

type matchRequest struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
}

// MatchOrCreate реализует Matcher.
func (m *HTTPMatcher) MatchOrCreate(ctx context.Context, name string, threshold float64) (MatchResult, error) {
	payload, err := json.Marshal(matchRequest{Name: name, Threshold: threshold})
	if err != nil {
		return MatchResult{}, fmt.Errorf("не удалось сериализовать запрос: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return MatchResult{}, fmt.Errorf("не удалось создать запрос: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return MatchResult{}, fmt.Errorf("ошибка обращения к matcher-сервису: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		m.logger.Errorf("matcher-сервис вернул статус %d: %s", resp.StatusCode, string(body))
		return MatchResult{}, fmt.Errorf("matcher-сервис вернул статус %d", resp.StatusCode)
	}

	var result MatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return MatchResult{}, fmt.Errorf("не удалось разобрать ответ matcher-сервиса: %w", err)
	}

	if result.SupplierID == 0 {
		return MatchResult{}, fmt.Errorf("matcher-сервис вернул пустой supplier_id для %q", name)
	}

	return result, nil
}
