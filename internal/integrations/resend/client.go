// Package resend relays contact form submissions as notification
// emails through the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Resend API
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	to         string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(apiKey, from, to string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		from:    from,
		to:      to,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendContactEmail отправляет письмо о новой заявке с контактной формы
func (c *Client) SendContactEmail(ctx context.Context, sub ContactSubmission) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	payload := emailRequest{
		From:    c.from,
		To:      c.to,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		HTML:    buildHTML(sub),
		ReplyTo: sub.Email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("resend: API returned status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	var result emailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Email accepted; a malformed body is not worth failing over
		c.log.Warn("resend: failed to decode response: %v", err)
		return nil
	}

	c.log.Info("resend: email sent id=%s from=%s", result.ID, sub.Email)
	return nil
}
