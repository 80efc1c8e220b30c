package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"

	maxBodySize = 10 << 20
)

// Client клиент внешнего API маркетплейса
// Добавляет bearer токен к каждому запросу и разворачивает конверт {status, message, data, version, timestamp}
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента
// metrics может быть nil, если метрики выключены
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:  tokens,
		metrics: metrics,
		log:     log,
	}
}

// Do выполняет запрос и декодирует data из конверта в out
// body сериализуется в JSON, если не nil. out может быть nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	started := time.Now()
	endpoint := normalizeEndpoint(path)

	err := c.do(ctx, method, path, query, body, out)

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	if c.metrics != nil {
		c.metrics.ObserveUpstream(method, endpoint, outcome, time.Since(started))
	}

	if err != nil {
		if errors.Is(err, ErrTransport) || errors.Is(err, ErrUpstream) || errors.Is(err, ErrInvalidResponse) {
			c.log.Error("Gateway: %s %s failed: %v", method, endpoint, err)
		} else {
			c.log.Warn("Gateway: %s %s rejected: %v", method, endpoint, err)
		}
		return err
	}

	c.log.Info("Gateway: %s %s succeeded in %s", method, endpoint, time.Since(started).Round(time.Millisecond))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if envelope, decodeErr := DecodeEnvelope(raw); decodeErr == nil {
			message = envelope.Message
		}
		return NewAPIError(resp.StatusCode, message)
	}

	if resp.StatusCode == http.StatusNoContent {
		if out != nil {
			return fmt.Errorf("%w: empty response, data expected", ErrInvalidResponse)
		}
		return nil
	}

	envelope, err := DecodeEnvelope(raw)
	if err != nil {
		return err
	}

	if !envelope.Status {
		return NewAPIError(resp.StatusCode, envelope.Message)
	}

	return envelope.Unwrap(out)
}

// normalizeEndpoint заменяет идентификаторы в пути на :id, чтобы метрики не разрастались
func normalizeEndpoint(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if looksLikeID(segment) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func looksLikeID(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return len(segment) >= 20
}
