// Package openrouter talks to the OpenRouter chat completions API. It
// powers the assistant on the public site and derives UI hints from the
// generated reply.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры генерации и атрибуции запросов
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Referer     string
	Title       string
}

// Client клиент для работы с OpenRouter API
type Client struct {
	baseURL    string
	apiKey     string
	opts       Options
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OpenRouter
func NewClient(apiKey string, opts Options, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		opts:    opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ChatCompletion выполняет один запрос генерации и возвращает текст ответа
func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model:       c.opts.Model,
		Messages:    messages,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
		TopP:        c.opts.TopP,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.opts.Referer != "" {
		req.Header.Set("HTTP-Referer", c.opts.Referer)
	}
	if c.opts.Title != "" {
		req.Header.Set("X-Title", c.opts.Title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("openrouter: API returned status %d: %s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}
	if result.Error != nil {
		c.log.Error("openrouter: API error code=%d: %s", result.Error.Code, result.Error.Message)
		return "", fmt.Errorf("%w: %s", ErrUpstream, result.Error.Message)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	return result.Choices[0].Message.Content, nil
}
